package wordcounter

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/wordcounter/display"
	"github.com/iw2rmb/wordcounter/editor"
	"github.com/iw2rmb/wordcounter/markup"
	"github.com/iw2rmb/wordcounter/stylesheet"
	"github.com/iw2rmb/wordcounter/wordcount"
)

const (
	// DefaultText is the editable text before the first edit.
	DefaultText = "Hello, Harry"

	DefaultTargetWordCount = 10

	fieldWidth  = 52
	fieldHeight = 5
	barWidth    = 20

	helpClass = "help"
)

// Options configures New.
type Options struct {
	// TargetWordCount is used as given. It is not validated: 0 makes
	// Progress non-finite.
	TargetWordCount int

	Sheet  *stylesheet.Sheet // nil: stylesheet.Default()
	Logger *slog.Logger      // nil: discard
	KeyMap KeyMap
}

func DefaultOptions() Options {
	return Options{TargetWordCount: DefaultTargetWordCount}
}

// state is shared by every copy of a Model. The editor's change callback
// writes into it.
type state struct {
	text   string
	logger *slog.Logger
}

func (s *state) replaceText(text string) {
	s.text = text
	s.logger.Debug("text changed",
		"bytes", len(text),
		"words", wordcount.Count(text),
	)
}

// Model is the word counter container.
type Model struct {
	target int
	state  *state

	editor editor.Model
	sheet  *stylesheet.Sheet
	bar    display.Bar
	help   help.Model
	keys   KeyMap
}

// New returns the widget with DefaultText in a focused editor.
func New(opts Options) (Model, error) {
	target := opts.TargetWordCount
	sheet := opts.Sheet
	if sheet == nil {
		sheet = stylesheet.Default()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	keys := opts.KeyMap
	if keys.isZero() {
		keys = DefaultKeyMap()
	}

	st := &state{text: DefaultText, logger: logger}
	ed, err := editor.New(editor.Props{
		Text:          st.text,
		OnTextChanged: st.replaceText,
		KeyMap:        keys.Editor,
	})
	if err != nil {
		return Model{}, err
	}

	m := Model{
		target: target,
		state:  st,
		editor: ed.SetSize(fieldWidth, fieldHeight),
		sheet:  sheet,
		bar:    display.NewBar(barWidth),
		help:   help.New(),
		keys:   keys,
	}
	logger.Debug("word counter ready", "target_word_count", target)
	return m, nil
}

func (m Model) Init() tea.Cmd { return nil }

// HandleTextChanged replaces the editable text. It is the editor's change
// handler and may be called directly; calling it twice with the same value
// leaves the same state as calling it once.
func (m Model) HandleTextChanged(text string) { m.state.replaceText(text) }

func (m Model) Text() string { return m.state.text }

func (m Model) TargetWordCount() int { return m.target }

// WordCount is derived from the current text on every call.
func (m Model) WordCount() int { return wordcount.Count(m.state.text) }

// Progress is WordCount over TargetWordCount. It is not clamped and is
// +Inf or NaN when the target is 0.
func (m Model) Progress() float64 { return wordcount.Progress(m.WordCount(), m.target) }

// Editor returns the field with the current text pushed into it.
func (m Model) Editor() editor.Model { return m.editor.SetText(m.state.text) }

func (m Model) KeyMap() KeyMap { return m.keys }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.setSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	// The text may have been replaced through HandleTextChanged since the
	// last message; the key must apply to what is displayed.
	m.editor = m.editor.SetText(m.state.text)

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.editor = m.editor.SetText(m.state.text)
	return m, cmd
}

// setSize fits the field to the terminal. The frame, padding and field
// border take 10 columns; everything below the field takes about 14 rows.
func (m Model) setSize(width, height int) Model {
	w := fieldWidth
	if width > 0 {
		w = min(fieldWidth, max(width-10, 1))
	}
	h := fieldHeight
	if height > 0 {
		h = min(fieldHeight, max(height-14, 1))
	}
	m.editor = m.editor.SetSize(w, h)
	m.help.Width = width
	return m
}

// Tree returns the widget's markup for the current text:
//
//	form.measure.pa4.sans-serif
//	  editor
//	  div.flex.mt3
//	    counter
//	    progress bar
func (m Model) Tree() *markup.Node {
	wordCount := m.WordCount()
	progress := wordcount.Progress(wordCount, m.target)

	return markup.Form("measure pa4 sans-serif",
		m.Editor().Render(),
		markup.Div("flex mt3",
			display.Counter(wordCount),
			display.ProgressBar(progress),
		),
	)
}

// Classes lists the style classes the widget renders with.
func (m Model) Classes() []string {
	return append(m.Tree().Classes(), markup.ProgressTextClass, helpClass)
}

func (m Model) View() string {
	r := markup.NewRenderer(m.sheet, m.bar.View)
	return lipgloss.JoinVertical(lipgloss.Left,
		r.Render(m.Tree()),
		m.sheet.Style(helpClass).Render(m.help.View(m.keys)),
	)
}
