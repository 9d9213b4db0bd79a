package grapheme

// Text is the slice of the storage API that boundary scanning needs. Any
// engine that knows its byte length and can answer UAX #29 boundary queries
// can sit behind it.
type Text interface {
	// Len returns the text length in bytes.
	Len() int
	// IsBoundary reports whether the byte offset is a grapheme cluster
	// boundary. Offsets 0 and Len() must always be boundaries.
	IsBoundary(off int) bool
}

// PrevBoundary returns the nearest grapheme boundary strictly before off.
// ok is false when off == 0. An offset past the end clamps to Len().
func PrevBoundary(t Text, off int) (int, bool) {
	if off == 0 {
		return 0, false
	}
	if n := t.Len(); off > n {
		return n, true
	}
	for off > 0 {
		off--
		if t.IsBoundary(off) {
			return off, true
		}
	}
	// Offset 0 is always a boundary.
	return 0, true
}

// NextBoundary returns the nearest grapheme boundary strictly after off.
// ok is false when off >= Len().
func NextBoundary(t Text, off int) (int, bool) {
	n := t.Len()
	if off >= n {
		return 0, false
	}
	for off < n {
		off++
		if t.IsBoundary(off) {
			return off, true
		}
	}
	return n, true
}

// FloorBoundary returns off if it is a boundary, else the nearest boundary
// before it. An offset past the end clamps to Len().
func FloorBoundary(t Text, off int) int {
	if n := t.Len(); off > n {
		return n
	}
	if t.IsBoundary(off) {
		return off
	}
	prev, _ := PrevBoundary(t, off)
	return prev
}

// CeilBoundary returns off if it is a boundary, else the nearest boundary
// after it. An offset past the end clamps to Len().
func CeilBoundary(t Text, off int) int {
	if n := t.Len(); off > n {
		return n
	}
	if t.IsBoundary(off) {
		return off
	}
	next, _ := NextBoundary(t, off)
	return next
}
