package editor

import (
	"github.com/iw2rmb/sable/buffer"
	"github.com/iw2rmb/sable/internal/grapheme"
)

// CommandLine is the single-cursor editor behind the ":" prompt. A fresh one
// is created whenever Command mode is entered and discarded when it exits,
// whatever the outcome.
type CommandLine struct {
	text   *buffer.Buffer
	cursor int
}

func NewCommandLine() *CommandLine {
	return &CommandLine{text: buffer.New("")}
}

func (c *CommandLine) String() string { return c.text.String() }
func (c *CommandLine) Cursor() int    { return c.cursor }

// Insert splices text at the cursor and advances past it.
func (c *CommandLine) Insert(text string) {
	if text == "" {
		return
	}
	c.text.Insert(c.cursor, text)
	c.cursor += len(text)
}

// MoveLeft moves the cursor up to count graphemes left.
func (c *CommandLine) MoveLeft(count int) {
	for i := 0; i < count; i++ {
		prev, ok := grapheme.PrevBoundary(c.text, c.cursor)
		if !ok || prev == c.cursor {
			break
		}
		c.cursor = prev
	}
}

// MoveRight moves the cursor up to count graphemes right.
func (c *CommandLine) MoveRight(count int) {
	for i := 0; i < count; i++ {
		next, ok := grapheme.NextBoundary(c.text, c.cursor)
		if !ok || next == c.cursor {
			break
		}
		c.cursor = next
	}
}

func (c *CommandLine) MoveStart() { c.cursor = 0 }
func (c *CommandLine) MoveEnd()   { c.cursor = c.text.Len() }

// DeleteBefore removes the grapheme before the cursor.
func (c *CommandLine) DeleteBefore() {
	prev, ok := grapheme.PrevBoundary(c.text, c.cursor)
	if !ok {
		return
	}
	c.text.Delete(prev, c.cursor)
	c.cursor = prev
}

// DeleteAfter removes the grapheme after the cursor.
func (c *CommandLine) DeleteAfter() {
	next, ok := grapheme.NextBoundary(c.text, c.cursor)
	if !ok {
		return
	}
	c.text.Delete(c.cursor, next)
}

// KillToStart removes everything before the cursor.
func (c *CommandLine) KillToStart() {
	if c.cursor > 0 {
		c.text.Delete(0, c.cursor)
		c.cursor = 0
	}
}

// KillToEnd removes everything after the cursor.
func (c *CommandLine) KillToEnd() {
	if end := c.text.Len(); c.cursor < end {
		c.text.Delete(c.cursor, end)
	}
}
