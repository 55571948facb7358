package ingest

import "github.com/cognicore/polarity/pkg/polarity/text"

// delimiters is the fixed byte set that separates words. Anything not in
// this set is part of a token.
const delimiters = " ,.!?;:\"'()[]{}@#$%^&*-_=+<>/\\|~`"

// Tokenizer splits a text field into lowercase word tokens. It holds no
// state across calls, so one instance can serve any number of inputs.
type Tokenizer struct {
	isDelim [256]bool
}

// NewTokenizer creates a tokenizer with the fixed delimiter set.
func NewTokenizer() *Tokenizer {
	t := &Tokenizer{}
	for i := 0; i < len(delimiters); i++ {
		t.isDelim[delimiters[i]] = true
	}
	return t
}

// Tokenize lowercases the input and splits it into tokens on the delimiter
// set. A delimiter flushes the current token if one has accumulated; the
// final token is flushed at end of input. The full token sequence is
// produced eagerly and may be empty.
func (t *Tokenizer) Tokenize(field text.Text) []text.Text {
	lower := field.ToLower()

	var tokens []text.Text
	var current []byte

	for i := 0; i < lower.Len(); i++ {
		c := lower.At(i)

		if t.isDelim[c] {
			if len(current) > 0 {
				tokens = append(tokens, text.FromBytes(current))
				current = current[:0]
			}
			continue
		}
		current = append(current, c)
	}

	// Don't forget the last token.
	if len(current) > 0 {
		tokens = append(tokens, text.FromBytes(current))
	}

	return tokens
}
