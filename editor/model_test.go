package editor

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/wordcounter/buffer"
)

type reports struct {
	texts []string
}

func (r *reports) handle(text string) { r.texts = append(r.texts, text) }

func newTestEditor(t *testing.T, text string) (Model, *reports) {
	t.Helper()
	r := &reports{}
	m, err := New(Props{Text: text, OnTextChanged: r.handle})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return m, r
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func viewLines(m Model) []string {
	lines := strings.Split(ansi.Strip(m.View()), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return lines
}

func TestNew_RequiresChangeHandler(t *testing.T) {
	_, err := New(Props{Text: "x"})
	if !errors.Is(err, ErrNoChangeHandler) {
		t.Fatalf("err=%v, want ErrNoChangeHandler", err)
	}
}

func TestNew_Defaults(t *testing.T) {
	m, _ := newTestEditor(t, "Hello, Harry")
	if got := m.ID(); got != DefaultID {
		t.Fatalf("id=%q, want %q", got, DefaultID)
	}
	if got, want := m.Cursor(), (buffer.Pos{Row: 0, GraphemeCol: 12}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if !m.Focused() {
		t.Fatalf("expected editor focused")
	}
}

func TestSetText_RoundTrip(t *testing.T) {
	m, r := newTestEditor(t, "Hello, Harry")
	for _, s := range []string{"", "one two", "multi\nline\ntext", "Hello, Harry"} {
		m = m.SetText(s)
		if got := m.Value(); got != s {
			t.Fatalf("Value() after SetText(%q)=%q", s, got)
		}
	}
	if len(r.texts) != 0 {
		t.Fatalf("SetText must not report changes, got %q", r.texts)
	}
}

func TestSetText_UnchangedValueKeepsBuffer(t *testing.T) {
	m, r := newTestEditor(t, "Hello, Harry")

	same := m.SetText("Hello, Harry")
	if same.buf != m.buf || same.synced != m.buf.Version() {
		t.Fatalf("echoing the displayed value must keep the buffer")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.buf.Version() == m.synced {
		t.Fatalf("cursor move should advance the buffer version")
	}
	m = m.SetText("Hello, Harry")
	if m.synced != m.buf.Version() {
		t.Fatalf("synced=%d, want %d", m.synced, m.buf.Version())
	}
	if got, want := m.Cursor(), (buffer.Pos{Row: 0, GraphemeCol: 11}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	m = m.SetText("Hi")
	if got := m.Value(); got != "Hi" {
		t.Fatalf("value=%q, want %q", got, "Hi")
	}
	if len(r.texts) != 0 {
		t.Fatalf("SetText must not report changes, got %q", r.texts)
	}
}

func TestUpdate_ReportsFullValueAndWaitsForOwner(t *testing.T) {
	m, r := newTestEditor(t, "Hello, Harry")

	m, _ = m.Update(runes("!"))
	if len(r.texts) != 1 || r.texts[0] != "Hello, Harry!" {
		t.Fatalf("reports=%q, want [\"Hello, Harry!\"]", r.texts)
	}
	if got := m.Value(); got != "Hello, Harry" {
		t.Fatalf("value changed before owner update: %q", got)
	}

	m = m.SetText(r.texts[0])
	if got := m.Value(); got != "Hello, Harry!" {
		t.Fatalf("value=%q, want %q", got, "Hello, Harry!")
	}
	if got, want := m.Cursor(), (buffer.Pos{Row: 0, GraphemeCol: 13}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestUpdate_OwnerRejectingChangeKeepsDisplay(t *testing.T) {
	m, r := newTestEditor(t, "abc")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if len(r.texts) != 1 || r.texts[0] != "ab" {
		t.Fatalf("reports=%q, want [\"ab\"]", r.texts)
	}

	m = m.SetText("abc")
	if got := m.Value(); got != "abc" {
		t.Fatalf("value=%q, want %q", got, "abc")
	}
}

func TestUpdate_OwnerOverrideClampsCursor(t *testing.T) {
	m, r := newTestEditor(t, "hello world")
	m, _ = m.Update(runes("!"))
	if len(r.texts) != 1 {
		t.Fatalf("expected one report, got %d", len(r.texts))
	}

	m = m.SetText("hi")
	if got := m.Value(); got != "hi" {
		t.Fatalf("value=%q, want %q", got, "hi")
	}
	if got, want := m.Cursor(), (buffer.Pos{Row: 0, GraphemeCol: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestUpdate_CursorMovesAreNotReported(t *testing.T) {
	m, r := newTestEditor(t, "ab")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	if len(r.texts) != 0 {
		t.Fatalf("reports=%q, want none", r.texts)
	}
	if got, want := m.Cursor(), (buffer.Pos{}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestUpdate_EditKeys(t *testing.T) {
	cases := []struct {
		name string
		text string
		keys []tea.KeyMsg
		want string
	}{
		{name: "space", text: "a", keys: []tea.KeyMsg{{Type: tea.KeySpace, Runes: []rune{' '}}}, want: "a "},
		{name: "backspace", text: "Hello, Harry", keys: []tea.KeyMsg{{Type: tea.KeyBackspace}}, want: "Hello, Harr"},
		{name: "delete at start", text: "ab", keys: []tea.KeyMsg{{Type: tea.KeyCtrlHome}, {Type: tea.KeyDelete}}, want: "b"},
		{name: "enter", text: "ab", keys: []tea.KeyMsg{{Type: tea.KeyLeft}, {Type: tea.KeyEnter}}, want: "a\nb"},
		{name: "tab", text: "", keys: []tea.KeyMsg{{Type: tea.KeyTab}}, want: "\t"},
		{name: "paste normalizes newlines", text: "", keys: []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune("a\r\nb\rc"), Paste: true}}, want: "a\nb\nc"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, r := newTestEditor(t, tc.text)
			for _, k := range tc.keys {
				m, _ = m.Update(k)
				if n := len(r.texts); n > 0 {
					m = m.SetText(r.texts[n-1])
				}
			}
			if got := m.Value(); got != tc.want {
				t.Fatalf("value=%q, want %q", got, tc.want)
			}
		})
	}
}

func TestUpdate_AltRunesIgnored(t *testing.T) {
	m, r := newTestEditor(t, "a")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true})
	if len(r.texts) != 0 || m.Value() != "a" {
		t.Fatalf("alt+x edited the field: reports=%q value=%q", r.texts, m.Value())
	}
}

func TestUpdate_BlurredIgnoresKeys(t *testing.T) {
	m, r := newTestEditor(t, "a")
	m = m.Blur()
	m, _ = m.Update(runes("b"))
	if len(r.texts) != 0 {
		t.Fatalf("reports=%q, want none", r.texts)
	}

	m = m.Focus()
	_, _ = m.Update(runes("b"))
	if len(r.texts) != 1 || r.texts[0] != "ab" {
		t.Fatalf("reports=%q, want [\"ab\"]", r.texts)
	}
}

func TestUpdate_NonKeyMessagesIgnored(t *testing.T) {
	m, r := newTestEditor(t, "a")
	m2, cmd := m.Update(tea.WindowSizeMsg{Width: 10, Height: 10})
	if cmd != nil || len(r.texts) != 0 || m2.Value() != "a" {
		t.Fatalf("unexpected handling of window size message")
	}
}

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m, _ := newTestEditor(t, "a\nb\nc")
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}

	m = m.SetSize(20, 5)
	if got := lipgloss.Height(m.View()); got != 5 {
		t.Fatalf("height after SetSize(20,5): got %d, want %d", got, 5)
	}
}

func TestView_CursorPlaceholderAtEOL(t *testing.T) {
	m, _ := newTestEditor(t, "ab\ncd")
	got := strings.Split(ansi.Strip(m.View()), "\n")
	want := []string{"ab", "cd "}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("view=%q, want %q", got, want)
	}

	m = m.Blur()
	got = strings.Split(ansi.Strip(m.View()), "\n")
	want = []string{"ab", "cd"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("blurred view=%q, want %q", got, want)
	}
}

func TestView_WrapsAtWidth(t *testing.T) {
	m, _ := newTestEditor(t, "abcdef")
	m = m.Blur().SetSize(4, 0)

	got := viewLines(m)
	want := []string{"abcd", "ef"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("view=%q, want %q", got, want)
	}
}

func TestView_EOLCursorWrapsToNextRow(t *testing.T) {
	m, _ := newTestEditor(t, "abcd")
	m = m.SetSize(4, 0)

	got := strings.Split(ansi.Strip(m.View()), "\n")
	want := []string{"abcd", "    "}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Fatalf("view=%q, want %q", got, want)
	}
}

func TestView_PadsRowsToWidth(t *testing.T) {
	m, _ := newTestEditor(t, "Hello, Harry\nx")
	m = m.SetSize(20, 4)

	lines := strings.Split(m.View(), "\n")
	if len(lines) != 4 {
		t.Fatalf("rows=%d, want 4", len(lines))
	}
	for i, line := range lines {
		if got := ansi.StringWidth(line); got != 20 {
			t.Fatalf("row %d width=%d, want 20 (%q)", i, got, ansi.Strip(line))
		}
	}

	m = m.SetText("")
	for i, line := range strings.Split(m.View(), "\n") {
		if got := ansi.StringWidth(line); got != 20 {
			t.Fatalf("empty field row %d width=%d, want 20", i, got)
		}
	}
}

func TestView_ExpandsTabs(t *testing.T) {
	r := &reports{}
	m, err := New(Props{Text: "\tx", OnTextChanged: r.handle, TabWidth: 2})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m = m.Blur()
	if got := viewLines(m)[0]; got != "  x" {
		t.Fatalf("view=%q, want %q", got, "  x")
	}
}

func TestView_FollowsCursor(t *testing.T) {
	m, r := newTestEditor(t, "1\n2\n3\n4")
	m = m.SetSize(10, 2)

	got := viewLines(m)
	if strings.Join(got, "|") != "3|4" {
		t.Fatalf("view=%q, want [3 4]", got)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlHome})
	got = viewLines(m)
	if strings.Join(got, "|") != "1|2" {
		t.Fatalf("view after ctrl+home=%q, want [1 2]", got)
	}
	if len(r.texts) != 0 {
		t.Fatalf("reports=%q, want none", r.texts)
	}
}

func TestRender_LabelAssociatedWithField(t *testing.T) {
	m, _ := newTestEditor(t, "Hello, Harry")
	n := m.Render()

	field := n.Find(DefaultID)
	if field == nil {
		t.Fatalf("field %q not found", DefaultID)
	}
	if got := ansi.Strip(field.Text); !strings.Contains(got, "Hello, Harry") {
		t.Fatalf("field text=%q, want it to contain the value", got)
	}
	label := n.LabelFor(DefaultID)
	if label == nil || label.Text != DefaultLabel {
		t.Fatalf("label=%+v, want %q", label, DefaultLabel)
	}
}

func TestKeyMap_Help(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) == 0 {
		t.Fatalf("expected short help bindings")
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 13 {
		t.Fatalf("full help bindings=%d, want 13", total)
	}
}
