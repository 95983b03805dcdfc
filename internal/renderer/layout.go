package renderer

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/dshills/celledit/internal/engine"
)

// Layout holds the display metrics of one cell.
type Layout struct {
	// Lines is the number of text lines. An empty cell has one line.
	Lines int

	// Width is the display width of the widest line, in screen cells.
	Width int

	// TabWidth is the tab stop used when the layout was computed.
	TabWidth int

	Revision engine.RevisionID
}

// Height returns the number of screen rows the cell occupies.
func (l Layout) Height() int {
	return max(l.Lines, 1)
}

// Measure computes the layout of e from a snapshot of its text and clears
// the engine's dirty flag.
func Measure(e *engine.Engine) Layout {
	snap := e.Snapshot()
	tab := e.TabWidth()

	l := Layout{
		Lines:    snap.LineCount(),
		TabWidth: tab,
		Revision: snap.RevisionID(),
	}
	for line := 0; line < l.Lines; line++ {
		l.Width = max(l.Width, uniseg.StringWidth(expandTabs(snap.LineText(line), tab)))
	}

	e.ClearDirty()
	return l
}

// nextTabStop returns the tab stop after col.
func nextTabStop(col, tab int) int {
	if tab < 1 {
		tab = 1
	}
	return col + tab - col%tab
}

// runeWidth returns the number of screen cells r advances at col.
func runeWidth(r rune, col, tab int) int {
	if r == '\t' {
		return nextTabStop(col, tab) - col
	}
	return runewidth.RuneWidth(r)
}

// expandTabs replaces tabs by spaces up to the next tab stop.
func expandTabs(s string, tab int) string {
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		w := runeWidth(r, col, tab)
		if r == '\t' {
			b.WriteString(strings.Repeat(" ", w))
		} else {
			b.WriteRune(r)
		}
		col += w
	}
	return b.String()
}

// columnToX returns the screen column of rune column c in line.
func columnToX(line string, c, tab int) int {
	x := 0
	for i, r := range []rune(line) {
		if i >= c {
			break
		}
		x += runeWidth(r, x, tab)
	}
	return x
}

// xToColumn returns the rune column displayed at screen column x of line.
// A position inside a wide rune or a tab resolves to the rune itself; a
// position past the end of the line resolves to the line end.
func xToColumn(line string, x, tab int) int {
	col := 0
	for i, r := range []rune(line) {
		w := runeWidth(r, col, tab)
		if x < col+w {
			return i
		}
		col += w
	}
	return len([]rune(line))
}
