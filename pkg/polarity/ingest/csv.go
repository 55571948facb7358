package ingest

import "github.com/cognicore/polarity/pkg/polarity/text"

// ParseLine splits one decoded CSV line into fields.
//
// The rule is deliberately simpler than RFC 4180: a double-quote byte
// toggles the in-quotes flag and is dropped from the output, a comma splits
// fields only while outside quotes, and every other byte is appended to the
// current field verbatim. Two consecutive quotes are NOT an escape; the
// corpus format never produces them, and full RFC parsing would change
// field content. The trailing field is always emitted, even when empty.
//
// hasLabel records whether the caller reads a leading label column from the
// result (training and ground-truth layouts do, test layouts do not). The
// split itself is layout independent; callers check the field count they
// need and skip rows that come up short.
func ParseLine(line text.Text, hasLabel bool) []text.Text {
	var fields []text.Text
	var current []byte
	inQuotes := false

	for i := 0; i < line.Len(); i++ {
		c := line.At(i)

		if c == '"' {
			inQuotes = !inQuotes
			continue
		}
		if c == ',' && !inQuotes {
			fields = append(fields, text.FromBytes(current))
			current = current[:0]
			continue
		}
		current = append(current, c)
	}

	fields = append(fields, text.FromBytes(current))
	return fields
}
