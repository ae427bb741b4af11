package editor

import "errors"

// ErrNoChangeHandler is returned by New when Props.OnTextChanged is nil. An
// unwired field would accept keystrokes that never reach the owner's state.
var ErrNoChangeHandler = errors.New("editor: OnTextChanged handler is required")

const (
	DefaultID    = "editor"
	DefaultLabel = "Enter your text:"
)

// Props configures the editor Model.
type Props struct {
	// Text is the value to display. Owners update it through SetText.
	Text string

	// OnTextChanged receives the full field value after every edit.
	OnTextChanged func(text string)

	// ID identifies the field; Label is associated with it. Empty values
	// fall back to DefaultID and DefaultLabel.
	ID    string
	Label string

	KeyMap   KeyMap
	Style    *Style // nil: DefaultStyle()
	TabWidth int // default: 4
}

func (p Props) withDefaults() Props {
	if p.ID == "" {
		p.ID = DefaultID
	}
	if p.Label == "" {
		p.Label = DefaultLabel
	}
	if p.KeyMap.isZero() {
		p.KeyMap = DefaultKeyMap()
	}
	if p.Style == nil {
		st := DefaultStyle()
		p.Style = &st
	}
	if p.TabWidth <= 0 {
		p.TabWidth = 4
	}
	return p
}
