package grapheme

import (
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// IsBoundary reports whether byte offset off is a grapheme cluster boundary
// in text. Offsets 0 and len(text) are always boundaries.
func IsBoundary(text string, off int) bool {
	if off <= 0 || off >= len(text) {
		return off == 0 || off == len(text)
	}
	g := uniseg.NewGraphemes(text)
	pos := 0
	for g.Next() {
		switch {
		case pos == off:
			return true
		case pos > off:
			return false
		}
		pos += len(g.Str())
	}
	return pos == off
}
