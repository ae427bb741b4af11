package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/wordcounter/internal/grapheme"
)

// View renders the field content: the visible rows with the cursor cell
// drawn when focused. Long lines wrap at the configured width and every row
// is padded to it, so the field keeps its size as the text changes.
func (m Model) View() string {
	rows, _ := m.layout()
	if m.height > 0 {
		start := min(m.yOffset, len(rows))
		end := min(start+m.height, len(rows))
		out := make([]string, 0, m.height)
		out = append(out, rows[start:end]...)
		for len(out) < m.height {
			out = append(out, "")
		}
		rows = out
	}
	if m.width > 0 {
		for i, row := range rows {
			if pad := m.width - lipgloss.Width(row); pad > 0 {
				rows[i] = row + strings.Repeat(" ", pad)
			}
		}
	}
	return strings.Join(rows, "\n")
}

// layout renders every visual row and reports the row holding the cursor.
func (m Model) layout() (rows []string, cursorRow int) {
	st := m.props.Style
	cursor := m.buf.Cursor()

	for row := 0; row < m.buf.LineCount(); row++ {
		line := m.buf.Line(row)
		hasCursor := row == cursor.Row

		var sb strings.Builder
		cells := 0
		flush := func() {
			rows = append(rows, sb.String())
			sb.Reset()
			cells = 0
		}
		place := func(rendered string, w int) {
			if m.width > 0 && cells > 0 && cells+w > m.width {
				flush()
			}
			sb.WriteString(rendered)
			cells += w
		}

		for col, g := range line {
			text := g
			w := grapheme.Width(g, m.props.TabWidth)
			if g == "\t" {
				text = strings.Repeat(" ", w)
			}
			if hasCursor && col == cursor.GraphemeCol {
				if m.width > 0 && cells > 0 && cells+w > m.width {
					flush()
				}
				cursorRow = len(rows)
				if m.focused {
					text = st.Cursor.Render(text)
				} else {
					text = st.Text.Render(text)
				}
				place(text, w)
				continue
			}
			place(st.Text.Render(text), w)
		}

		if hasCursor && cursor.GraphemeCol >= len(line) {
			// Cursor at EOL is a 1-cell placeholder.
			if m.width > 0 && cells > 0 && cells+1 > m.width {
				flush()
			}
			cursorRow = len(rows)
			if m.focused {
				place(st.Cursor.Render(" "), 1)
			}
		}
		flush()
	}
	return rows, cursorRow
}
