package renderer

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/celledit/internal/document"
	"github.com/dshills/celledit/internal/engine"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func styleAt(s tcell.Screen, x, y int) tcell.Style {
	_, _, st, _ := s.GetContent(x, y)
	return st
}

func rowText(s tcell.Screen, y, from, to int) string {
	var out []rune
	for x := from; x < to; x++ {
		out = append(out, runeAt(s, x, y))
	}
	return string(out)
}

// Layout Tests

func TestMeasure(t *testing.T) {
	e := engine.New(engine.WithContent("ab\n\tc\n世界"))
	if !e.IsDirty() {
		t.Fatal("new engine should be dirty")
	}

	l := Measure(e)
	if l.Lines != 3 {
		t.Errorf("expected 3 lines, got %d", l.Lines)
	}
	if l.Width != 5 {
		t.Errorf("expected width 5, got %d", l.Width)
	}
	if e.IsDirty() {
		t.Error("Measure should clear the dirty flag")
	}
}

func TestMeasureEmpty(t *testing.T) {
	l := Measure(engine.New())
	if l.Height() != 1 || l.Width != 0 {
		t.Errorf("expected height 1 width 0, got %d %d", l.Height(), l.Width)
	}
}

func TestColumnMapping(t *testing.T) {
	tests := []struct {
		line string
		col  int
		x    int
	}{
		{"abc", 2, 2},
		{"a\tb", 2, 4},
		{"世界x", 2, 4},
		{"", 0, 0},
	}
	for _, tt := range tests {
		if got := columnToX(tt.line, tt.col, 4); got != tt.x {
			t.Errorf("columnToX(%q, %d) = %d, want %d", tt.line, tt.col, got, tt.x)
		}
		if got := xToColumn(tt.line, tt.x, 4); got != tt.col {
			t.Errorf("xToColumn(%q, %d) = %d, want %d", tt.line, tt.x, got, tt.col)
		}
	}

	if got := xToColumn("a\tb", 3, 4); got != 1 {
		t.Errorf("inside a tab should resolve to the tab, got %d", got)
	}
	if got := xToColumn("世界", 1, 4); got != 0 {
		t.Errorf("second half of a wide rune should resolve to it, got %d", got)
	}
	if got := xToColumn("ab", 10, 4); got != 2 {
		t.Errorf("past the end should resolve to line end, got %d", got)
	}
}

func TestExpandTabs(t *testing.T) {
	if got := expandTabs("a\tb", 4); got != "a   b" {
		t.Errorf("expected %q, got %q", "a   b", got)
	}
	if got := expandTabs("ab", 4); got != "ab" {
		t.Errorf("expected unchanged text, got %q", got)
	}
}

// View Tests

func TestViewDrawText(t *testing.T) {
	s := newScreen(t, 10, 4)
	e := engine.New(engine.WithContent("ab\ncd"))

	View{Engine: e, Rect: Rect{X: 1, Y: 1, Width: 9, Height: 2}, Theme: DefaultTheme()}.Draw(s)

	if got := rowText(s, 1, 1, 3); got != "ab" {
		t.Errorf("expected ab, got %q", got)
	}
	if got := rowText(s, 2, 1, 3); got != "cd" {
		t.Errorf("expected cd, got %q", got)
	}
}

func TestViewDrawClips(t *testing.T) {
	s := newScreen(t, 10, 2)
	e := engine.New(engine.WithContent("abcdef\nx\ny"))

	View{Engine: e, Rect: Rect{X: 0, Y: 0, Width: 3, Height: 2}, Theme: DefaultTheme()}.Draw(s)

	if got := rowText(s, 0, 0, 4); got != "abc " {
		t.Errorf("expected clipped row, got %q", got)
	}
}

func TestViewBracketHighlight(t *testing.T) {
	s := newScreen(t, 10, 2)
	theme := DefaultTheme()
	e := engine.New(engine.WithContent("f(x)"))
	e.Apply(engine.SetCaret{Offset: 4})

	View{Engine: e, Rect: Rect{Width: 10, Height: 1}, Theme: theme, Active: true}.Draw(s)

	for _, x := range []int{1, 3} {
		if styleAt(s, x, 0) != theme.Bracket {
			t.Errorf("expected bracket style at %d", x)
		}
	}
	if styleAt(s, 2, 0) == theme.Bracket {
		t.Error("x should not be highlighted")
	}
}

func TestViewInactiveHidesMarks(t *testing.T) {
	s := newScreen(t, 10, 2)
	theme := DefaultTheme()
	e := engine.New(engine.WithContent("f(x)"))
	e.Apply(engine.SetCaret{Offset: 4})

	View{Engine: e, Rect: Rect{Width: 10, Height: 1}, Theme: theme}.Draw(s)

	if styleAt(s, 1, 0) == theme.Bracket {
		t.Error("inactive cells should not show the bracket highlight")
	}
}

func TestViewSelection(t *testing.T) {
	s := newScreen(t, 10, 3)
	theme := DefaultTheme()
	e := engine.New(engine.WithContent("(ab\ncd)"))
	e.Apply(engine.SelectRange{From: 1, To: 5})

	View{Engine: e, Rect: Rect{Width: 10, Height: 2}, Theme: theme, Active: true}.Draw(s)

	tests := []struct {
		x, y     int
		selected bool
	}{
		{0, 0, false},
		{1, 0, true},
		{2, 0, true},
		{3, 0, true}, // line break
		{0, 1, true},
		{1, 1, false},
	}
	for _, tt := range tests {
		got := styleAt(s, tt.x, tt.y) == theme.Selection
		if got != tt.selected {
			t.Errorf("(%d, %d): expected selected=%t, got %t", tt.x, tt.y, tt.selected, got)
		}
	}
	if styleAt(s, 0, 0) == theme.Bracket || styleAt(s, 2, 1) == theme.Bracket {
		t.Error("bracket highlight should be hidden while a selection exists")
	}
}

func TestViewCaret(t *testing.T) {
	s := newScreen(t, 10, 3)
	e := engine.New(engine.WithContent("a\n\tb"))
	e.Apply(engine.SetCaret{Offset: 3})

	v := View{Engine: e, Rect: Rect{X: 2, Y: 1, Width: 8, Height: 2}, Theme: DefaultTheme(), Active: true}
	x, y, ok := v.CaretPosition()
	if !ok || x != 2+4 || y != 2 {
		t.Errorf("expected caret at (6, 2), got (%d, %d, %t)", x, y, ok)
	}

	v.Draw(s)
	s.Show()
	cx, cy, visible := s.GetCursor()
	if !visible || cx != 6 || cy != 2 {
		t.Errorf("expected visible cursor at (6, 2), got (%d, %d, %t)", cx, cy, visible)
	}
}

func TestViewHitTest(t *testing.T) {
	e := engine.New(engine.WithContent("ab\n世界\n"))
	v := View{Engine: e, Rect: Rect{X: 2, Y: 1, Width: 10, Height: 3}}

	tests := []struct {
		name string
		x, y int
		want engine.Offset
		ok   bool
	}{
		{"first rune", 2, 1, 0, true},
		{"second rune", 3, 1, 1, true},
		{"past line end", 9, 1, 2, true},
		{"gutter", 0, 1, 0, true},
		{"wide rune second half", 5, 2, 4, true},
		{"empty last line", 4, 3, 6, true},
		{"above cell", 2, 0, 0, false},
		{"below cell", 2, 4, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.HitTest(tt.x, tt.y)
			if ok != tt.ok || (ok && got != tt.want) {
				t.Errorf("HitTest(%d, %d) = %d, %t; want %d, %t", tt.x, tt.y, got, ok, tt.want, tt.ok)
			}
		})
	}
}

// Renderer Tests

func newDocument(texts ...string) *document.Document {
	d := document.New()
	for _, s := range texts {
		d.Append(engine.KindInput, s)
	}
	return d
}

func TestRendererStacksCells(t *testing.T) {
	s := newScreen(t, 20, 8)
	d := newDocument("a\nb", "c")
	d.At(1).Engine.Configure(engine.WithKind(engine.KindComment))
	r := New(s)

	r.Draw(d)

	if got := runeAt(s, GutterWidth, 0); got != 'a' {
		t.Errorf("expected a at row 0, got %q", got)
	}
	if got := runeAt(s, GutterWidth, 1); got != 'b' {
		t.Errorf("expected b at row 1, got %q", got)
	}
	if got := runeAt(s, GutterWidth, 3); got != 'c' {
		t.Errorf("expected c at row 3, got %q", got)
	}
	if got := runeAt(s, 0, 0); got != '›' {
		t.Errorf("expected input marker, got %q", got)
	}
	if got := runeAt(s, 0, 3); got != '#' {
		t.Errorf("expected comment marker, got %q", got)
	}

	if id, ok := r.CellAt(5, 3); !ok || id != d.At(1).ID {
		t.Error("row 3 should belong to the second cell")
	}
	if _, ok := r.CellAt(5, 2); ok {
		t.Error("separator row should belong to no cell")
	}
}

func TestRendererClearsDirty(t *testing.T) {
	s := newScreen(t, 20, 5)
	d := newDocument("x")
	r := New(s)

	r.Draw(d)
	e := d.At(0).Engine
	if e.IsDirty() {
		t.Error("drawing should clear the dirty flag")
	}

	e.Apply(engine.SplitLine{})
	if !e.IsDirty() {
		t.Fatal("edit should set the dirty flag")
	}
	r.Draw(d)
	if got := r.Layout(d.At(0)).Lines; got != 2 {
		t.Errorf("expected 2 lines after remeasure, got %d", got)
	}
}

func TestRendererHitTest(t *testing.T) {
	s := newScreen(t, 20, 8)
	d := newDocument("first", "second")
	r := New(s)

	if _, ok := r.HitTest(3, 0); ok {
		t.Error("hit test before any draw should fail")
	}

	_ = d.Activate(d.At(1).ID)
	r.Draw(d)

	off, ok := r.HitTest(GutterWidth+3, 2)
	if !ok || off != 3 {
		t.Errorf("expected offset 3, got %d (%t)", off, ok)
	}
	if _, ok := r.HitTest(GutterWidth, 0); ok {
		t.Error("hit outside the active cell should fail")
	}
}

func TestRendererFollowsCaret(t *testing.T) {
	s := newScreen(t, 20, 4)
	d := newDocument("1\n2\n3\n4\n5\n6")
	c := d.At(0)
	_ = d.Activate(c.ID)
	c.Engine.Apply(engine.MoveCaret{Direction: engine.BufferEnd})
	r := New(s)

	r.Draw(d)

	// Three text rows plus the status line; the caret line is the bottom one.
	if got := runeAt(s, GutterWidth, 2); got != '6' {
		t.Errorf("expected caret line at the bottom row, got %q", got)
	}
	cx, cy, visible := s.GetCursor()
	if !visible || cx != GutterWidth+1 || cy != 2 {
		t.Errorf("expected cursor at (%d, 2), got (%d, %d, %t)", GutterWidth+1, cx, cy, visible)
	}

	c.Engine.Apply(engine.MoveCaret{Direction: engine.BufferStart})
	r.Draw(d)
	if got := runeAt(s, GutterWidth, 0); got != '1' {
		t.Errorf("expected scroll back to the top, got %q", got)
	}
}

func TestRendererStatusLine(t *testing.T) {
	s := newScreen(t, 30, 4)
	d := newDocument("ab")
	_ = d.Activate(d.At(0).ID)
	r := New(s)
	r.SetStatus("ok")

	r.Draw(d)

	want := "input 1/1  1:1 [+]  ok"
	if got := rowText(s, 3, 0, len([]rune(want))); got != want {
		t.Errorf("expected status %q, got %q", want, got)
	}

	r = New(s, WithStatusLine(false))
	r.Draw(d)
	if got := runeAt(s, 0, 3); got != ' ' {
		t.Errorf("status line should be disabled, got %q", got)
	}
}
