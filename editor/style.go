package editor

import "github.com/charmbracelet/lipgloss"

// Style controls how field content is drawn. The frame around the field is
// left to the stylesheet.
type Style struct {
	Text   lipgloss.Style
	Cursor lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:   lipgloss.NewStyle(),
		Cursor: lipgloss.NewStyle().Reverse(true),
	}
}
