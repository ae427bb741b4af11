package buffer

import (
	"strings"

	"github.com/iw2rmb/wordcounter/internal/grapheme"
)

// InsertText inserts text at the cursor. Text may contain '\n'.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}
	b.replace(Range{Start: b.cursor, End: b.cursor}, s)
}

// InsertNewline inserts a line break at the cursor.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	row, col := b.cursor.Row, b.cursor.GraphemeCol
	if row == 0 && col == 0 {
		return
	}
	if col > 0 {
		b.replace(Range{Start: Pos{Row: row, GraphemeCol: col - 1}, End: b.cursor}, "")
		return
	}
	// Join with previous line (delete the newline).
	prevRow := row - 1
	b.replace(Range{Start: Pos{Row: prevRow, GraphemeCol: len(b.lines[prevRow])}, End: b.cursor}, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	row, col := b.cursor.Row, b.cursor.GraphemeCol
	lastRow := len(b.lines) - 1
	if row == lastRow && col == len(b.lines[lastRow]) {
		return
	}
	if col < len(b.lines[row]) {
		b.replace(Range{Start: b.cursor, End: Pos{Row: row, GraphemeCol: col + 1}}, "")
		return
	}
	b.replace(Range{Start: b.cursor, End: Pos{Row: row + 1, GraphemeCol: 0}}, "")
}

func (b *Buffer) replace(r Range, text string) {
	r = NormalizeRange(Range{Start: b.clampPos(r.Start), End: b.clampPos(r.End)})
	if r.IsEmpty() && text == "" {
		return
	}

	startRow, startCol := r.Start.Row, r.Start.GraphemeCol
	endRow, endCol := r.End.Row, r.End.GraphemeCol

	prefix := append([]string(nil), b.lines[startRow][:startCol]...)
	suffix := append([]string(nil), b.lines[endRow][endCol:]...)

	parts := strings.Split(text, "\n")
	ins := make([][]string, 0, len(parts))
	for _, p := range parts {
		ins = append(ins, grapheme.Split(p))
	}

	repl := make([][]string, 0, len(ins))
	var next Pos
	if len(ins) == 1 {
		line := make([]string, 0, len(prefix)+len(ins[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins[0]...)
		line = append(line, suffix...)
		repl = append(repl, line)
		next = Pos{Row: startRow, GraphemeCol: len(prefix) + len(ins[0])}
	} else {
		repl = append(repl, append(prefix, ins[0]...))
		for i := 1; i < len(ins)-1; i++ {
			repl = append(repl, ins[i])
		}
		lastPart := ins[len(ins)-1]
		repl = append(repl, append(append([]string(nil), lastPart...), suffix...))
		next = Pos{Row: startRow + len(ins) - 1, GraphemeCol: len(lastPart)}
	}

	out := make([][]string, 0, len(b.lines)-(endRow-startRow+1)+len(repl))
	out = append(out, b.lines[:startRow]...)
	out = append(out, repl...)
	out = append(out, b.lines[endRow+1:]...)

	b.lines = out
	b.cursor = next
	b.version++
}
