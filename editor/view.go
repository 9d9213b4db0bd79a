package editor

import (
	"github.com/iw2rmb/sable/internal/grapheme"
)

// Rect is a rectangle of terminal cells.
type Rect struct {
	X, Y, Width, Height int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// OffsetRect maps a byte offset to the cell rectangle of the grapheme at
// that offset within area, honoring the vertical scroll. ok is false when
// the offset is out of buffer range or the cell falls outside area. The end
// of the buffer maps to a synthetic one-cell caret rectangle.
func (e *Editor) OffsetRect(area Rect, off int) (Rect, bool) {
	if off < 0 || off > e.text.Len() {
		return Rect{}, false
	}

	line := e.text.LineOfByte(grapheme.FloorBoundary(e.text, off))
	row := line - e.scroll
	if row < 0 || row >= area.Height {
		return Rect{}, false
	}

	start := e.text.LineStart(line)
	col := textWidth(e.text.Slice(start, off), 0)
	if col >= area.Width {
		return Rect{}, false
	}

	w := 1
	if off < e.text.Len() {
		if next, ok := grapheme.NextBoundary(e.text, off); ok {
			cluster := e.text.Slice(off, next)
			if cluster != "\n" {
				w = cellWidth(cluster, col)
				if w < 1 {
					w = 1
				}
			}
		}
	}
	if col+w > area.Width {
		w = area.Width - col
	}

	return Rect{X: area.X + col, Y: area.Y + row, Width: w, Height: 1}, true
}

// LineRect maps a line index to its full-width row rectangle, or ok=false
// when the line is scrolled out of view.
func (e *Editor) LineRect(area Rect, line int) (Rect, bool) {
	if line < 0 || line >= e.text.LineCount() {
		return Rect{}, false
	}
	row := line - e.scroll
	if row < 0 || row >= area.Height {
		return Rect{}, false
	}
	return Rect{X: area.X, Y: area.Y + row, Width: area.Width, Height: 1}, true
}

// OffsetAt is the inverse mapping: the byte offset addressed by the cell
// (x, y) in area. Rows past the last line resolve to the end of the buffer;
// columns past a line's content resolve to that line's end.
func (e *Editor) OffsetAt(area Rect, x, y int) int {
	row := y - area.Y
	if row < 0 {
		row = 0
	}
	line := e.scroll + row
	if line >= e.text.LineCount() {
		return e.text.Len()
	}

	col := x - area.X
	if col < 0 {
		col = 0
	}

	off := e.text.LineStart(line)
	prefix := 0
	for _, cluster := range grapheme.Split(e.text.Line(line)) {
		w := cellWidth(cluster, prefix)
		if col < prefix+w {
			return off
		}
		prefix += w
		off += len(cluster)
	}
	return off
}

// SelectionRects returns one highlight rectangle per line the selection
// covers, clipped to the exact start and end columns on the first and last
// line. A selected line terminator shows as one extra trailing cell. A caret
// yields no rectangles; its cell comes from OffsetRect.
func (e *Editor) SelectionRects(area Rect) []Rect {
	start, end := e.anchor, e.head
	if start > end {
		start, end = end, start
	}
	if start == end {
		return nil
	}

	firstLine := e.text.LineOfByte(start)
	lastLine := e.text.LineOfByte(end)
	lastDocLine := e.text.LineCount() - 1

	var rects []Rect
	for line := firstLine; line <= lastLine; line++ {
		row := line - e.scroll
		if row < 0 {
			continue
		}
		if row >= area.Height {
			break
		}

		ls := e.text.LineStart(line)
		le := e.text.LineEnd(line)
		segStart := maxInt(start, ls)
		segEnd := minInt(end, le)

		x := textWidth(e.text.Slice(ls, segStart), 0)
		w := textWidth(e.text.Slice(segStart, segEnd), x)
		if end > le && line < lastDocLine {
			w++ // the selected terminator occupies one cell
		}
		if w == 0 {
			continue
		}
		if x >= area.Width {
			continue
		}
		if x+w > area.Width {
			w = area.Width - x
		}
		rects = append(rects, Rect{X: area.X + x, Y: area.Y + row, Width: w, Height: 1})
	}
	return rects
}

// caretOffset is the byte offset of the selection's active cell: the head
// for a caret or a backward selection, the cluster before the head for a
// forward one.
func (e *Editor) caretOffset() int {
	if e.anchor == e.head || e.IsBackward() {
		return e.head
	}
	prev, ok := grapheme.PrevBoundary(e.text, e.head)
	if !ok {
		return e.head
	}
	return prev
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
