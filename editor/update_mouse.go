package editor

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Pointer input is mode-independent: a primary press places a fresh forward
// caret, a secondary press or any drag extends the head while the anchor
// stays put.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	area := m.contentArea()

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.ed.ScrollUp(3)
		case tea.MouseButtonWheelDown:
			m.ed.ScrollDown(3)
		case tea.MouseButtonLeft:
			x, y := clampToArea(area, msg.X, msg.Y)
			m.ed.MoveTo(m.ed.OffsetAt(area, x, y))
			m.dragging = true
		case tea.MouseButtonRight:
			x, y := clampToArea(area, msg.X, msg.Y)
			m.ed.ExtendTo(m.ed.OffsetAt(area, x, y))
			m.dragging = true
		}

	case tea.MouseActionMotion:
		if !m.dragging {
			return m
		}
		x, y := clampToArea(area, msg.X, msg.Y)
		m.ed.ExtendTo(m.ed.OffsetAt(area, x, y))

	case tea.MouseActionRelease:
		m.dragging = false
	}

	return m
}

func clampToArea(area Rect, x, y int) (int, int) {
	if area.Width > 0 {
		if x < area.X {
			x = area.X
		}
		if x >= area.X+area.Width {
			x = area.X + area.Width - 1
		}
	}
	if area.Height > 0 {
		if y < area.Y {
			y = area.Y
		}
		if y >= area.Y+area.Height {
			y = area.Y + area.Height - 1
		}
	}
	return x, y
}
