package buffer

import (
	"strings"

	"github.com/iw2rmb/wordcounter/internal/grapheme"
)

// Buffer holds text as lines of grapheme clusters plus a cursor.
//
// Version increases on every effective change to text or cursor.
type Buffer struct {
	lines   [][]string
	version uint64
	cursor  Pos
}

func New(text string) *Buffer {
	return &Buffer{lines: splitLines(text)}
}

func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(grapheme.Join(line))
	}
	return sb.String()
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the grapheme clusters of row. The slice must not be modified.
func (b *Buffer) Line(row int) []string {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return b.lines[row]
}

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// SetText replaces the whole document. The cursor keeps its coordinates,
// clamped into the new bounds.
func (b *Buffer) SetText(text string) {
	if text == b.Text() {
		return
	}
	b.lines = splitLines(text)
	b.cursor = b.clampPos(b.cursor)
	b.version++
}

// Clone returns an independent copy sharing no mutable state with b.
func (b *Buffer) Clone() *Buffer {
	lines := make([][]string, len(b.lines))
	for i, l := range b.lines {
		lines[i] = append([]string(nil), l...)
	}
	return &Buffer{lines: lines, version: b.version, cursor: b.cursor}
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	if len(lines) == 0 {
		lines = append(lines, nil)
	}
	return lines
}
