package editor

import (
	"github.com/iw2rmb/sable/internal/grapheme"
)

// The selection is the pair (anchor, head) of byte offsets. Both are always
// grapheme cluster boundaries. A selection is forward when anchor <= head; a
// caret is a selection collapsed to one offset.

func (e *Editor) IsForward() bool  { return e.anchor <= e.head }
func (e *Editor) IsBackward() bool { return !e.IsForward() }

// Reduce collapses the selection to the head.
func (e *Editor) Reduce() { e.anchor = e.head }

// Flip swaps anchor and head.
func (e *Editor) Flip() { e.anchor, e.head = e.head, e.anchor }

// FlipForward flips only a backward selection.
func (e *Editor) FlipForward() {
	if e.IsBackward() {
		e.Flip()
	}
}

// ExtendTo moves the head to cover the grapheme at off: a backward selection
// lands exactly on off, a forward one extends past the cluster starting
// there.
func (e *Editor) ExtendTo(off int) {
	if e.IsBackward() {
		e.head = off
	} else {
		e.head = grapheme.CeilBoundary(e.text, off+1)
	}
	e.clearDesiredCol()
}

// ExtendLeft moves the head up to count graphemes left, stopping at the
// start of the buffer.
func (e *Editor) ExtendLeft(count int) {
	e.stepLeft(count)
	e.clearDesiredCol()
}

// ExtendRight moves the head up to count graphemes right, stopping at the
// end of the buffer.
func (e *Editor) ExtendRight(count int) {
	e.stepRight(count)
	e.clearDesiredCol()
}

// ExtendUp moves the head up count lines, keeping the display column cached
// on entry, so repeated vertical moves through shorter lines restore the
// original column. The first line is a hard stop.
func (e *Editor) ExtendUp(count int) {
	e.ensureDesiredCol()
	for i := 0; i < count; i++ {
		line := e.text.LineOfByte(e.head)
		if line == 0 {
			break
		}
		e.head = e.offsetAtColumn(line-1, e.desiredCol)
	}
}

// ExtendDown is the symmetric downward move; past the last line the head
// lands on the end of the buffer.
func (e *Editor) ExtendDown(count int) {
	e.ensureDesiredCol()
	for i := 0; i < count; i++ {
		target := e.text.LineOfByte(e.head) + 1
		if target >= e.text.LineCount() {
			e.head = e.text.Len()
			break
		}
		e.head = e.offsetAtColumn(target, e.desiredCol)
	}
}

// ExtendLineStart moves the head to the start of its line. A forward
// selection then steps right one grapheme so the caret cell stays on the
// first cluster of the line.
func (e *Editor) ExtendLineStart() {
	line := e.text.LineOfByte(e.head)
	e.head = e.text.LineStart(line)
	if e.IsForward() {
		e.stepRight(1)
	}
	e.clearDesiredCol()
}

// ExtendLineEnd moves the head to the end of its line, excluding the
// terminator. A backward selection then steps left one grapheme, mirroring
// ExtendLineStart's caret convention.
func (e *Editor) ExtendLineEnd() {
	if e.head >= e.text.Len() {
		return
	}
	line := e.text.LineOfByte(e.head)
	e.head = e.text.LineEnd(line)
	if e.IsBackward() {
		e.stepLeft(1)
	}
	e.clearDesiredCol()
}

// MoveTo places a fresh forward caret on the grapheme at off. The head is
// extended to off, collapsed, stepped back one cluster, and flipped forward,
// so the highlighted cell lands exactly on the clicked grapheme while the
// selection stays forward for a following extension.
func (e *Editor) MoveTo(off int) {
	e.ExtendTo(off)
	e.Reduce()
	e.ExtendLeft(1)
	e.FlipForward()
}

func (e *Editor) MoveLeft(count int) {
	e.ExtendLeft(count)
	e.Reduce()
}

func (e *Editor) MoveRight(count int) {
	e.ExtendRight(count)
	e.Reduce()
}

func (e *Editor) MoveUp(count int) {
	e.ExtendUp(count)
	e.Reduce()
}

func (e *Editor) MoveDown(count int) {
	e.ExtendDown(count)
	e.Reduce()
}

func (e *Editor) MoveLineStart() {
	e.ExtendLineStart()
	e.Reduce()
}

func (e *Editor) MoveLineEnd() {
	e.ExtendLineEnd()
	e.Reduce()
}

// Insert splices text at the head, advances the head past it, and collapses
// the selection.
func (e *Editor) Insert(text string) {
	if text == "" {
		return
	}
	e.text.Insert(e.head, text)
	e.head += len(text)
	e.Reduce()
	e.modified = true
	e.clearDesiredCol()
}

// Delete removes the selected range and collapses both ends to its start.
func (e *Editor) Delete() {
	start, end := e.anchor, e.head
	if start > end {
		start, end = end, start
	}
	e.text.Delete(start, end)
	e.anchor = start
	e.head = start
	e.modified = true
	e.clearDesiredCol()
}

// DeleteBefore removes the grapheme cluster immediately before the head and
// collapses the selection onto the removal point. No-op at the buffer start.
func (e *Editor) DeleteBefore() {
	prev, ok := grapheme.PrevBoundary(e.text, e.head)
	if !ok {
		return
	}
	e.text.Delete(prev, e.head)
	e.head = prev
	e.Reduce()
	e.modified = true
	e.clearDesiredCol()
}

// DeleteAfter removes the grapheme cluster immediately after the head,
// leaving the head in place. No-op at the buffer end.
func (e *Editor) DeleteAfter() {
	next, ok := grapheme.NextBoundary(e.text, e.head)
	if !ok {
		return
	}
	e.text.Delete(e.head, next)
	switch {
	case e.anchor >= next:
		e.anchor -= next - e.head
	case e.anchor > e.head:
		e.anchor = e.head
	}
	e.modified = true
	e.clearDesiredCol()
}

// stepLeft moves the head without touching the desired-column cache.
func (e *Editor) stepLeft(count int) {
	for i := 0; i < count; i++ {
		prev, ok := grapheme.PrevBoundary(e.text, e.head)
		if !ok || prev == e.head {
			break
		}
		e.head = prev
	}
}

func (e *Editor) stepRight(count int) {
	for i := 0; i < count; i++ {
		next, ok := grapheme.NextBoundary(e.text, e.head)
		if !ok || next == e.head {
			break
		}
		e.head = next
	}
}

func (e *Editor) clearDesiredCol() {
	e.hasDesiredCol = false
	e.desiredCol = 0
}

// ensureDesiredCol caches the head's display column on the first vertical
// move of a gesture. Later moves in the same gesture reuse the cache even
// when an intermediate line is too short to reach it.
func (e *Editor) ensureDesiredCol() {
	if e.hasDesiredCol {
		return
	}
	line := e.text.LineOfByte(e.head)
	start := e.text.LineStart(line)
	e.desiredCol = textWidth(e.text.Slice(start, e.head), 0)
	e.hasDesiredCol = true
}

// offsetAtColumn walks line's graphemes and returns the offset of the last
// cluster that still fits entirely within col display cells. Truncating, not
// rounding: a cluster that would overshoot the column is excluded.
func (e *Editor) offsetAtColumn(line, col int) int {
	off := e.text.LineStart(line)
	prefix := 0
	for _, cluster := range grapheme.Split(e.text.Line(line)) {
		w := cellWidth(cluster, prefix)
		if prefix+w > col {
			break
		}
		prefix += w
		off += len(cluster)
	}
	return off
}
