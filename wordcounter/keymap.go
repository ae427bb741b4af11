package wordcounter

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/wordcounter/editor"
)

// KeyMap holds the widget-level bindings. Every other key goes to the editor.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding

	Editor editor.KeyMap
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
		Help:   key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "more keys")),
		Editor: editor.DefaultKeyMap(),
	}
}

func (k KeyMap) isZero() bool {
	return len(k.Quit.Keys()) == 0 && len(k.Help.Keys()) == 0
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return append([]key.Binding{k.Quit, k.Help}, k.Editor.ShortHelp()...)
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{k.Quit, k.Help}}, k.Editor.FullHelp()...)
}
