package markup

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/wordcounter/stylesheet"
)

// ProgressTextClass styles the text next to a progress bar.
const ProgressTextClass = "progress-text"

// BarFunc draws a progress element's bar for a completion ratio.
type BarFunc func(completion float64) string

// Renderer turns node trees into terminal output.
type Renderer struct {
	Sheet *stylesheet.Sheet
	Bar   BarFunc
}

func NewRenderer(sheet *stylesheet.Sheet, bar BarFunc) *Renderer {
	if sheet == nil {
		sheet = stylesheet.Default()
	}
	return &Renderer{Sheet: sheet, Bar: bar}
}

func (r *Renderer) Render(n *Node) string {
	if n == nil {
		return ""
	}
	st := r.Sheet.Style(n.Class)

	switch n.Tag {
	case "raw":
		return st.Render(n.Text)
	case "progress":
		bar := ""
		if r.Bar != nil {
			bar = r.Bar(n.Value)
		}
		text := r.Sheet.Style(ProgressTextClass).Render(n.Text)
		if bar == "" {
			return st.Render(text)
		}
		return st.Render(lipgloss.JoinHorizontal(lipgloss.Center, bar, " ", text))
	}

	if len(n.Children) == 0 {
		return st.Render(n.Text)
	}

	parts := make([]string, 0, len(n.Children)+1)
	if n.Text != "" {
		parts = append(parts, n.Text)
	}
	for _, c := range n.Children {
		parts = append(parts, r.Render(c))
	}

	var body string
	if r.Sheet.Layout(n.Class) == stylesheet.Row {
		body = lipgloss.JoinHorizontal(lipgloss.Top, spaced(parts)...)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, parts...)
	}
	return st.Render(body)
}

// spaced separates row items with a two-cell gap.
func spaced(parts []string) []string {
	if len(parts) < 2 {
		return parts
	}
	out := make([]string, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, p)
	}
	return out
}
