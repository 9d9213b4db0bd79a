package buffer

import (
	"io"
	"strings"

	"github.com/iw2rmb/sable/internal/grapheme"
)

// Buffer is a mutable UTF-8 document addressed by byte offset, stored as
// logical lines with implicit single-byte "\n" separators.
type Buffer struct {
	lines []string
	size  int // total byte length, separators included
}

func New(text string) *Buffer {
	b := &Buffer{lines: splitLines(text)}
	b.size = len(text)
	return b
}

// Len returns the document length in bytes.
func (b *Buffer) Len() int { return b.size }

func (b *Buffer) String() string {
	return strings.Join(b.lines, "\n")
}

// WriteTo streams the full document, line by line, to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i, line := range b.lines {
		if i > 0 {
			n, err := io.WriteString(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
		n, err := io.WriteString(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// LineCount returns the number of logical lines. An empty document has one.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the content of line i without its terminator.
func (b *Buffer) Line(i int) string {
	i = clampInt(i, 0, len(b.lines)-1)
	return b.lines[i]
}

// LineStart returns the byte offset where line i begins.
func (b *Buffer) LineStart(i int) int {
	i = clampInt(i, 0, len(b.lines)-1)
	off := 0
	for row := 0; row < i; row++ {
		off += len(b.lines[row]) + 1
	}
	return off
}

// LineEnd returns the byte offset just past the content of line i,
// excluding the terminator.
func (b *Buffer) LineEnd(i int) int {
	i = clampInt(i, 0, len(b.lines)-1)
	return b.LineStart(i) + len(b.lines[i])
}

// LineOfByte returns the index of the line containing the byte offset.
// The end-of-line offset (just before the terminator) still belongs to that
// line; Len() belongs to the last line.
func (b *Buffer) LineOfByte(off int) int {
	row, _ := b.locate(off)
	return row
}

// Slice returns the document text in [start, end).
func (b *Buffer) Slice(start, end int) string {
	start = clampInt(start, 0, b.size)
	end = clampInt(end, start, b.size)
	if start == end {
		return ""
	}

	startRow, startCol := b.locate(start)
	endRow, endCol := b.locate(end)

	if startRow == endRow {
		return b.lines[startRow][startCol:endCol]
	}

	var sb strings.Builder
	sb.Grow(end - start)
	sb.WriteString(b.lines[startRow][startCol:])
	for row := startRow + 1; row < endRow; row++ {
		sb.WriteByte('\n')
		sb.WriteString(b.lines[row])
	}
	sb.WriteByte('\n')
	sb.WriteString(b.lines[endRow][:endCol])
	return sb.String()
}

// IsBoundary reports whether off is a grapheme cluster boundary. Both sides
// of a line terminator are boundaries, as are 0 and Len().
func (b *Buffer) IsBoundary(off int) bool {
	if off < 0 || off > b.size {
		return false
	}
	if off == 0 || off == b.size {
		return true
	}
	row, col := b.locate(off)
	line := b.lines[row]
	if col == 0 || col == len(line) {
		return true
	}
	return grapheme.IsBoundary(line, col)
}

// Insert splices text at the byte offset. The offset must be a grapheme
// boundary; text may contain newlines.
func (b *Buffer) Insert(off int, text string) {
	if text == "" {
		return
	}
	off = clampInt(off, 0, b.size)
	row, col := b.locate(off)
	line := b.lines[row]

	merged := splitLines(line[:col] + text + line[col:])
	b.lines = append(b.lines[:row], append(merged, b.lines[row+1:]...)...)
	b.size += len(text)
}

// Delete removes the bytes in [start, end). Both offsets must be grapheme
// boundaries.
func (b *Buffer) Delete(start, end int) {
	start = clampInt(start, 0, b.size)
	end = clampInt(end, start, b.size)
	if start == end {
		return
	}

	startRow, startCol := b.locate(start)
	endRow, endCol := b.locate(end)

	joined := b.lines[startRow][:startCol] + b.lines[endRow][endCol:]
	b.lines = append(b.lines[:startRow], append([]string{joined}, b.lines[endRow+1:]...)...)
	b.size -= end - start
}

// locate resolves a byte offset to (line index, byte column within line).
// The end-of-line offset resolves to (row, len(line)); Len() resolves to the
// end of the last line.
func (b *Buffer) locate(off int) (row, col int) {
	off = clampInt(off, 0, b.size)
	pos := 0
	for i, line := range b.lines {
		if off <= pos+len(line) {
			return i, off - pos
		}
		pos += len(line) + 1
	}
	last := len(b.lines) - 1
	return last, len(b.lines[last])
}

func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
