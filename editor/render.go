package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/sable/internal/grapheme"
)

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	area := m.contentArea()
	rows := make([]string, 0, m.height)
	for row := 0; row < area.Height; row++ {
		rows = append(rows, m.renderContentRow(area, row))
	}
	if m.height >= 2 {
		rows = append(rows, m.renderStatusBar())
	}
	if m.height >= 1 {
		rows = append(rows, m.renderBottomRow())
	}
	return strings.Join(rows, "\n")
}

// renderContentRow renders one viewport row: the document line at
// scroll+row, with selection, caret, and tab expansion applied per grapheme.
func (m Model) renderContentRow(area Rect, row int) string {
	e, s := m.ed, m.style

	line := e.scroll + row
	if line >= e.text.LineCount() {
		return ""
	}

	selStart, selEnd := e.anchor, e.head
	if selStart > selEnd {
		selStart, selEnd = selEnd, selStart
	}
	caretOff := e.caretOffset()

	var sb strings.Builder
	off := e.text.LineStart(line)
	col := 0
	for _, cluster := range grapheme.Split(e.text.Line(line)) {
		if col >= area.Width {
			return sb.String()
		}
		w := cellWidth(cluster, col)
		cell := cluster
		if cluster == "\t" {
			cell = strings.Repeat(" ", w)
		}

		style := s.Text
		if selStart <= off && off < selEnd && selStart != selEnd {
			style = s.Selection
		}
		if off == caretOff {
			style = s.Caret
		}
		sb.WriteString(style.Render(cell))

		col += w
		off += len(cluster)
	}

	// Trailing cell for the line terminator (or the synthetic end-of-buffer
	// caret on the last line).
	if col < area.Width {
		switch {
		case off == caretOff:
			sb.WriteString(s.Caret.Render(" "))
		case selStart <= off && off < selEnd:
			sb.WriteString(s.Selection.Render(" "))
		}
	}

	return sb.String()
}

func (m Model) renderStatusBar() string {
	e, s := m.ed, m.style

	name := e.DisplayPath()
	if name == "" {
		name = "[scratch]"
	}
	if e.modified {
		name += " [+]"
	}

	left := s.StatusMode.Render(" "+e.mode.Name()+" ") + s.StatusBar.Render(" "+name)
	if pad := m.width - lipgloss.Width(left); pad > 0 {
		left += s.StatusBar.Render(strings.Repeat(" ", pad))
	}
	return left
}

// renderBottomRow shows the command line while composing, else the status
// message from the last command.
func (m Model) renderBottomRow() string {
	e, s := m.ed, m.style

	if cm, ok := e.mode.(CommandMode); ok {
		return m.renderCommandLine(cm.Line)
	}

	msg, ok := e.Message()
	if !ok {
		return ""
	}
	style := s.MessageInfo
	if msg.Err {
		style = s.MessageError
	}
	return style.Render(truncate(msg.Text, m.width))
}

func (m Model) renderCommandLine(line *CommandLine) string {
	s := m.style

	var sb strings.Builder
	sb.WriteString(s.Text.Render(":"))

	off := 0
	for _, cluster := range grapheme.Split(line.String()) {
		style := s.Text
		if off == line.Cursor() {
			style = s.Caret
		}
		sb.WriteString(style.Render(cluster))
		off += len(cluster)
	}
	if line.Cursor() >= line.text.Len() {
		sb.WriteString(s.Caret.Render(" "))
	}
	return sb.String()
}

func truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	col, end := 0, 0
	for _, cluster := range grapheme.Split(text) {
		w := cellWidth(cluster, col)
		if col+w > width {
			return text[:end]
		}
		col += w
		end += len(cluster)
	}
	return text
}
