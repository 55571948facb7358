package text

import "bytes"

// Text is an owned, immutable-by-copy byte sequence.
//
// Every constructor and derived operation copies its input, so no two live
// Text values ever share a buffer: mutating data a value was built from
// never changes the value, and values handed out via Bytes are snapshots.
// The zero Text is the empty value and is ready to use.
type Text struct {
	buf []byte
}

// New returns the empty value.
func New() Text {
	return Text{}
}

// FromString builds a Text from s. The string's bytes are copied.
func FromString(s string) Text {
	if len(s) == 0 {
		return Text{}
	}
	return Text{buf: []byte(s)}
}

// FromBytes builds a Text from b. A nil or empty slice yields the empty
// value; otherwise the bytes are copied so later writes to b do not leak in.
func FromBytes(b []byte) Text {
	if len(b) == 0 {
		return Text{}
	}
	buf := make([]byte, len(b))
	copy(buf, b)
	return Text{buf: buf}
}

// Clone returns an independent copy with identical content.
func (t Text) Clone() Text {
	return FromBytes(t.buf)
}

// Len returns the number of bytes in the value.
func (t Text) Len() int {
	return len(t.buf)
}

// IsEmpty reports whether the value holds no bytes.
func (t Text) IsEmpty() bool {
	return len(t.buf) == 0
}

// At returns the byte at position i. Access outside [0, Len()) fails with
// a runtime bounds panic at the access site.
func (t Text) At(i int) byte {
	return t.buf[i]
}

// Concat returns a new value holding t's bytes followed by other's bytes.
// Neither operand is modified.
func (t Text) Concat(other Text) Text {
	if other.IsEmpty() {
		return t.Clone()
	}
	if t.IsEmpty() {
		return other.Clone()
	}
	buf := make([]byte, 0, len(t.buf)+len(other.buf))
	buf = append(buf, t.buf...)
	buf = append(buf, other.buf...)
	return Text{buf: buf}
}

// Substring returns a new value with up to count bytes starting at start.
// A negative start, a start at or past the end, or a non-positive count
// yields the empty value. A range running past the end is clipped to the
// remaining bytes.
func (t Text) Substring(start, count int) Text {
	if start < 0 || start >= len(t.buf) || count <= 0 {
		return Text{}
	}
	end := start + count
	if end > len(t.buf) {
		end = len(t.buf)
	}
	return FromBytes(t.buf[start:end])
}

// ToLower returns a new value with ASCII 'A'..'Z' folded to lowercase.
// All other bytes pass through unchanged; the receiver is untouched.
func (t Text) ToLower() Text {
	if len(t.buf) == 0 {
		return Text{}
	}
	buf := make([]byte, len(t.buf))
	for i, c := range t.buf {
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		buf[i] = c
	}
	return Text{buf: buf}
}

// Compare orders two values lexicographically by byte, with a shorter
// value sorting before a longer one that it prefixes. Returns -1, 0, or 1.
func (t Text) Compare(other Text) int {
	return bytes.Compare(t.buf, other.buf)
}

// Equal reports full-content equality.
func (t Text) Equal(other Text) bool {
	return bytes.Equal(t.buf, other.buf)
}

// Less reports whether t orders before other.
func (t Text) Less(other Text) bool {
	return bytes.Compare(t.buf, other.buf) < 0
}

// String renders the raw byte sequence.
func (t Text) String() string {
	return string(t.buf)
}

// Bytes returns a copy of the underlying bytes; the caller may mutate the
// result freely without affecting t.
func (t Text) Bytes() []byte {
	if len(t.buf) == 0 {
		return nil
	}
	out := make([]byte, len(t.buf))
	copy(out, t.buf)
	return out
}
