package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKey(msg tea.KeyMsg) Model {
	if key.Matches(msg, m.keys.Quit) {
		m.ed.exit(0)
		return m
	}

	switch mode := m.ed.mode.(type) {
	case NormalMode:
		m.handleNormalKey(msg)
	case GotoMode:
		m.handleGotoKey(msg)
	case InsertMode:
		m.handleInsertKey(msg)
	case CommandMode:
		m = m.handleCommandKey(mode, msg)
	}
	return m
}

func (m Model) handleNormalKey(msg tea.KeyMsg) {
	e, km := m.ed, m.keys
	switch {
	case key.Matches(msg, km.Left):
		e.MoveLeft(1)
	case key.Matches(msg, km.Down):
		e.MoveDown(1)
	case key.Matches(msg, km.Up):
		e.MoveUp(1)
	case key.Matches(msg, km.Right):
		e.MoveRight(1)

	case key.Matches(msg, km.ExtendLeft):
		e.ExtendLeft(1)
	case key.Matches(msg, km.ExtendDown):
		e.ExtendDown(1)
	case key.Matches(msg, km.ExtendUp):
		e.ExtendUp(1)
	case key.Matches(msg, km.ExtendRight):
		e.ExtendRight(1)

	case key.Matches(msg, km.LineStart):
		e.MoveLineStart()
	case key.Matches(msg, km.LineEnd):
		e.MoveLineEnd()

	case key.Matches(msg, km.Reduce):
		e.Reduce()
	case key.Matches(msg, km.Flip):
		e.Flip()

	case key.Matches(msg, km.Delete):
		e.Delete()

	case key.Matches(msg, km.Insert):
		e.mode = InsertMode{}
	case key.Matches(msg, km.Change):
		e.Delete()
		e.mode = InsertMode{}

	case key.Matches(msg, km.Goto):
		e.mode = GotoMode{}
	case key.Matches(msg, km.Command):
		e.mode = CommandMode{Line: NewCommandLine()}
	}
}

// handleGotoKey consumes exactly one key: the mode always falls back to
// Normal, and a key outside the goto table reports "Unknown key".
func (m Model) handleGotoKey(msg tea.KeyMsg) {
	e := m.ed
	e.mode = NormalMode{}

	switch msg.String() {
	case "g":
		e.MoveTo(0)
	case "e":
		e.MoveTo(e.text.Len())
	case "h":
		e.MoveLineStart()
	case "l":
		e.MoveLineEnd()
	default:
		e.setError("Unknown key")
	}
}

func (m Model) handleInsertKey(msg tea.KeyMsg) {
	e, km := m.ed, m.keys

	// Bracketed paste inserts literal text and never triggers bindings.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		e.Insert(string(msg.Runes))
		return
	}

	switch {
	case key.Matches(msg, km.Cancel):
		e.mode = NormalMode{}
	case key.Matches(msg, km.InsertNewline):
		e.Insert("\n")
	case key.Matches(msg, km.InsertDeleteBefore):
		e.DeleteBefore()
	case key.Matches(msg, km.InsertDeleteAfter):
		e.DeleteAfter()
	default:
		switch msg.Type {
		case tea.KeyRunes:
			if !msg.Alt && len(msg.Runes) > 0 {
				e.Insert(string(msg.Runes))
			}
		case tea.KeySpace:
			e.Insert(" ")
		case tea.KeyTab:
			e.Insert("\t")
		}
	}
}

func (m Model) handleCommandKey(mode CommandMode, msg tea.KeyMsg) Model {
	e, km := m.ed, m.keys
	line := mode.Line

	switch {
	case key.Matches(msg, km.Cancel):
		e.mode = NormalMode{}

	case key.Matches(msg, km.Confirm):
		input := line.String()
		e.mode = NormalMode{}
		if err := e.execCommand(input); err != nil {
			m.fatal = err
		}

	case key.Matches(msg, km.CmdLeft):
		line.MoveLeft(1)
	case key.Matches(msg, km.CmdRight):
		line.MoveRight(1)
	case key.Matches(msg, km.CmdStart):
		line.MoveStart()
	case key.Matches(msg, km.CmdEnd):
		line.MoveEnd()
	case key.Matches(msg, km.CmdDeleteBefore):
		line.DeleteBefore()
	case key.Matches(msg, km.CmdDeleteAfter):
		line.DeleteAfter()
	case key.Matches(msg, km.CmdKillToStart):
		line.KillToStart()
	case key.Matches(msg, km.CmdKillToEnd):
		line.KillToEnd()

	default:
		switch msg.Type {
		case tea.KeyRunes:
			if !msg.Alt && len(msg.Runes) > 0 {
				line.Insert(string(msg.Runes))
			}
		case tea.KeySpace:
			line.Insert(" ")
		}
	}
	return m
}
