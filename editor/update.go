package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/wordcounter/buffer"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg), nil
	default:
		return m, nil
	}
}

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused {
		return m
	}

	next := m.buf.Clone()
	if !applyKey(next, m.props.KeyMap, msg) {
		return m
	}

	text := next.Text()
	if text == m.buf.Text() {
		// Cursor movement only: the value is unchanged, nothing to report.
		m.buf = next
		m.followCursor()
		return m
	}

	m.draft = next
	m.props.OnTextChanged(text)
	return m
}

// applyKey applies msg to b and reports whether the key was handled.
func applyKey(b *buffer.Buffer, km KeyMap, msg tea.KeyMsg) bool {
	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Paste && len(msg.Runes) > 0 {
		s := strings.ReplaceAll(string(msg.Runes), "\r\n", "\n")
		b.InsertText(strings.ReplaceAll(s, "\r", "\n"))
		return true
	}

	switch {
	case key.Matches(msg, km.Left):
		b.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		b.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})

	case key.Matches(msg, km.WordLeft):
		b.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		b.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocHome):
		b.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		b.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		b.DeleteBackward()
	case key.Matches(msg, km.Delete):
		b.DeleteForward()
	case key.Matches(msg, km.Enter):
		b.InsertNewline()

	default:
		switch msg.Type {
		case tea.KeyTab:
			b.InsertText("\t")
		case tea.KeyRunes, tea.KeySpace:
			if len(msg.Runes) == 0 || msg.Alt {
				return false
			}
			b.InsertText(string(msg.Runes))
		default:
			return false
		}
	}
	return true
}
