package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Text      lipgloss.Style
	Selection lipgloss.Style
	Caret     lipgloss.Style

	StatusBar  lipgloss.Style
	StatusMode lipgloss.Style

	MessageInfo  lipgloss.Style
	MessageError lipgloss.Style
}

func DefaultStyle() Style {
	bar := lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("250"))
	return Style{
		Text:      lipgloss.NewStyle(),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Caret:     lipgloss.NewStyle().Reverse(true),

		StatusBar:  bar,
		StatusMode: bar.Bold(true),

		MessageInfo:  lipgloss.NewStyle(),
		MessageError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
