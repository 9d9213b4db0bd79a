package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubble Tea program around one Editor. Input events mutate the
// editor synchronously; View is a pure read of the resulting state.
type Model struct {
	ed    *Editor
	keys  KeyMap
	style Style

	width  int
	height int

	dragging bool

	fatal error
}

func NewModel(ed *Editor) Model {
	return Model{
		ed:    ed,
		keys:  DefaultKeyMap(),
		style: DefaultStyle(),
	}
}

func (m Model) Editor() *Editor { return m.ed }

// Err returns the fatal error that ended the session, if any.
func (m Model) Err() error { return m.fatal }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		m.ed.ClearMessage()
		m = m.handleKey(msg)

	case tea.MouseMsg:
		m.ed.ClearMessage()
		m = m.handleMouse(msg)
	}

	if m.fatal != nil {
		return m, tea.Quit
	}
	if _, ok := m.ed.ExitCode(); ok {
		return m, tea.Quit
	}
	return m, nil
}

// contentArea is the text region: everything above the status bar and the
// message/command row.
func (m Model) contentArea() Rect {
	h := m.height - 2
	if h < 0 {
		h = 0
	}
	return Rect{X: 0, Y: 0, Width: m.width, Height: h}
}
