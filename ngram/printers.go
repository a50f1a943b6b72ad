package ngram

import "strings"

// debug utilities

// Format renders the n-gram leftmost cell first.
func (g NGram) Format(r Radius) string {
	var b strings.Builder
	for i := uint(0); i < uint(r); i++ {
		b.WriteByte(bitChar(uint64(g), i))
	}
	return b.String()
}

// Format renders the window leftmost cell first, with the head cell and the
// state in brackets, for example 01[A1]00 at radius 2.
func (c LocalContext) Format(r Radius) string {
	var b strings.Builder
	for i := uint(0); i < WindowWidth(r); i++ {
		if i == uint(r) {
			b.WriteByte('[')
			b.WriteString(c.State.String())
			b.WriteByte(bitChar(c.Window, i))
			b.WriteByte(']')
			continue
		}
		b.WriteByte(bitChar(c.Window, i))
	}
	return b.String()
}

func bitChar(x uint64, i uint) byte {
	if x&(1<<i) != 0 {
		return '1'
	}
	return '0'
}
