package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/wordcounter/buffer"
	"github.com/iw2rmb/wordcounter/markup"
)

// Model is a Bubble Tea component rendering a controlled text field.
type Model struct {
	props Props
	buf   *buffer.Buffer

	// draft holds the result of the last reported edit until the owner
	// answers with SetText, so the edit's cursor placement survives.
	draft *buffer.Buffer

	// synced is buf's version when it last matched props.Text.
	synced uint64

	focused bool

	width, height int
	yOffset       int
}

// New returns a focused editor displaying p.Text with the cursor at the end.
func New(p Props) (Model, error) {
	if p.OnTextChanged == nil {
		return Model{}, ErrNoChangeHandler
	}
	p = p.withDefaults()

	buf := buffer.New(p.Text)
	buf.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	m := Model{props: p, buf: buf, synced: buf.Version(), focused: true}
	m.followCursor()
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

// Value returns the displayed text.
func (m Model) Value() string { return m.buf.Text() }

func (m Model) Cursor() buffer.Pos { return m.buf.Cursor() }

func (m Model) ID() string { return m.props.ID }

func (m Model) KeyMap() KeyMap { return m.props.KeyMap }

// SetText is the owner's props update. Passing the value last reported
// through OnTextChanged keeps the cursor where the edit left it; any other
// value replaces the text with the cursor clamped into it.
func (m Model) SetText(text string) Model {
	if m.draft == nil && m.buf.Version() == m.synced && text == m.props.Text {
		return m
	}
	m.props.Text = text
	switch {
	case m.draft != nil && m.draft.Text() == text:
		m.buf = m.draft
	case m.buf.Text() != text:
		next := m.buf.Clone()
		next.SetText(text)
		m.buf = next
	}
	m.draft = nil
	m.synced = m.buf.Version()
	m.followCursor()
	return m
}

// SetSize bounds the field content. Zero means unbounded.
func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	m.followCursor()
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m *Model) followCursor() {
	if m.height <= 0 {
		m.yOffset = 0
		return
	}
	rows, cursorRow := m.layout()
	m.yOffset = min(m.yOffset, max(len(rows)-m.height, 0))
	if cursorRow < m.yOffset {
		m.yOffset = cursorRow
	}
	if cursorRow >= m.yOffset+m.height {
		m.yOffset = cursorRow - m.height + 1
	}
}

// Render returns the labelled field as markup.
func (m Model) Render() *markup.Node {
	return markup.Div("flex flex-column mv2",
		markup.Label("mv2 field-label", m.props.ID, m.props.Label),
		markup.Raw(m.props.ID, "field", m.View()),
	)
}
