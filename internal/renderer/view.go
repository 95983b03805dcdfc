package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/celledit/internal/engine"
)

// Rect is a screen rectangle. Y may be negative for cells scrolled partly
// off the top of the screen.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains returns true if the screen cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// View draws one cell into a screen rectangle.
type View struct {
	Engine *engine.Engine
	Rect   Rect
	Theme  Theme

	// Active cells show the caret, the selection and the bracket highlight.
	Active bool
}

// Draw paints the cell text onto s. Rows outside the screen are skipped
// and columns past the rectangle are clipped.
func (v View) Draw(s tcell.Screen) {
	_, screenH := s.Size()
	e := v.Engine
	state := e.State()
	tab := e.TabWidth()
	text := v.Theme.TextStyle(state.Kind)

	sel, err := state.Selection.Normalized()
	showSel := v.Active && err == nil
	showMatch := v.Active && !showSel && state.Match.Found()

	for line := 0; line < state.Text.LineCount() && line < v.Rect.Height; line++ {
		y := v.Rect.Y + line
		if y < 0 || y >= screenH {
			continue
		}

		off := state.Text.LineStart(line)
		col := 0
		var last struct {
			x     int
			main  rune
			comb  []rune
			style tcell.Style
			ok    bool
		}

		for _, r := range state.Text.LineText(line) {
			style := text
			switch {
			case showSel && sel.Contains(off):
				style = v.Theme.Selection
			case showMatch && (off == state.Match.Pivot() || off == state.Match.Partner()):
				style = v.Theme.Bracket
			}

			w := runeWidth(r, col, tab)
			switch {
			case r == '\t':
				for i := 0; i < w; i++ {
					v.put(s, col+i, y, ' ', nil, style)
				}
				last.ok = false
			case w == 0:
				// Combining marks join the previous glyph.
				if last.ok {
					last.comb = append(last.comb, r)
					v.put(s, last.x, y, last.main, last.comb, last.style)
				}
			default:
				v.put(s, col, y, r, nil, style)
				last.x, last.main, last.comb, last.style, last.ok = col, r, nil, style, true
			}
			col += w
			off++
		}

		// A selected line break shows as one highlighted cell.
		if showSel && line < state.Text.LineCount()-1 && sel.Contains(off) {
			v.put(s, col, y, ' ', nil, v.Theme.Selection)
		}
	}

	if v.Active {
		if x, y, ok := v.CaretPosition(); ok && y >= 0 && y < screenH {
			s.ShowCursor(x, y)
		}
	}
}

func (v View) put(s tcell.Screen, x, y int, r rune, comb []rune, style tcell.Style) {
	if x < 0 || x >= v.Rect.Width {
		return
	}
	s.SetContent(v.Rect.X+x, y, r, comb, style)
}

// CaretPosition returns the screen position of the caret. It returns false
// when the caret falls outside the rectangle.
func (v View) CaretPosition() (x, y int, ok bool) {
	c := v.Engine.CaretCoordinate()
	x = v.Rect.X + columnToX(v.Engine.LineText(c.Line), c.Column, v.Engine.TabWidth())
	y = v.Rect.Y + c.Line
	return x, y, v.Rect.Contains(x, y)
}

// HitTest maps the screen cell (x, y) to a text offset. Positions left of
// the text snap to the line start and positions right of it to the line
// end. It returns false when y is outside the cell.
func (v View) HitTest(x, y int) (engine.Offset, bool) {
	line := y - v.Rect.Y
	if line < 0 || line >= v.Rect.Height || line >= v.Engine.LineCount() {
		return 0, false
	}
	col := xToColumn(v.Engine.LineText(line), max(x-v.Rect.X, 0), v.Engine.TabWidth())
	return v.Engine.CoordinateToOffset(engine.Coordinate{Line: line, Column: col}), true
}
