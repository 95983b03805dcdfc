package renderer

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/dshills/celledit/internal/document"
	"github.com/dshills/celledit/internal/engine"
)

// GutterWidth is the number of screen columns left of the cell text.
const GutterWidth = 2

// region is where a cell was placed in document rows.
type region struct {
	id   uuid.UUID
	top  int
	rows int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTheme sets the theme.
func WithTheme(t Theme) Option {
	return func(r *Renderer) {
		r.theme = t
	}
}

// WithStatusLine enables or disables the bottom status line.
func WithStatusLine(enabled bool) Option {
	return func(r *Renderer) {
		r.statusLine = enabled
	}
}

// Renderer draws a whole document: cells stacked vertically, one blank row
// between cells, a gutter marking each cell's kind and the active cell, and
// an optional status line.
type Renderer struct {
	screen     tcell.Screen
	theme      Theme
	statusLine bool

	layouts map[uuid.UUID]Layout
	regions []region
	top     int
	doc     *document.Document
	status  string
}

// New creates a renderer drawing to screen.
func New(screen tcell.Screen, opts ...Option) *Renderer {
	r := &Renderer{
		screen:     screen,
		theme:      DefaultTheme(),
		statusLine: true,
		layouts:    make(map[uuid.UUID]Layout),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetStatus sets the message shown in the status line.
func (r *Renderer) SetStatus(msg string) {
	r.status = msg
}

// Layout returns the current layout of a cell, remeasuring it when the
// engine reports a content change.
func (r *Renderer) Layout(c *document.Cell) Layout {
	l, ok := r.layouts[c.ID]
	if !ok || c.Engine.IsDirty() || l.TabWidth != c.Engine.TabWidth() {
		l = Measure(c.Engine)
		r.layouts[c.ID] = l
	}
	return l
}

// textHeight returns the number of screen rows available to cells.
func (r *Renderer) textHeight() int {
	_, h := r.screen.Size()
	if r.statusLine {
		h--
	}
	return max(h, 0)
}

// Draw paints doc and shows the result.
func (r *Renderer) Draw(doc *document.Document) {
	r.doc = doc
	r.screen.Clear()
	r.screen.HideCursor()

	r.place(doc)
	r.follow(doc)

	w, _ := r.screen.Size()
	height := r.textHeight()
	active := doc.Active()

	for _, reg := range r.regions {
		c, _ := doc.Get(reg.id)
		y := reg.top - r.top
		if y+reg.rows <= 0 || y >= height {
			continue
		}
		isActive := c == active

		for row := 0; row < reg.rows; row++ {
			if y+row < 0 || y+row >= height {
				continue
			}
			gs := r.theme.Gutter
			if isActive {
				gs = r.theme.Active
			}
			if row == 0 {
				r.screen.SetContent(0, y, kindMarker(c.Kind()), nil, gs)
			} else if isActive {
				r.screen.SetContent(0, y+row, '│', nil, gs)
			}
		}

		rows := min(reg.rows, height-y)
		View{
			Engine: c.Engine,
			Rect:   Rect{X: GutterWidth, Y: y, Width: max(w-GutterWidth, 0), Height: rows},
			Theme:  r.theme,
			Active: isActive,
		}.Draw(r.screen)
	}

	if r.statusLine {
		r.drawStatus(doc)
	}
	r.screen.Show()
}

// place lays out the cells in document rows.
func (r *Renderer) place(doc *document.Document) {
	r.regions = r.regions[:0]
	seen := make(map[uuid.UUID]bool, doc.Len())
	y := 0
	for _, c := range doc.Cells() {
		rows := r.Layout(c).Height()
		r.regions = append(r.regions, region{id: c.ID, top: y, rows: rows})
		seen[c.ID] = true
		y += rows + 1
	}
	for id := range r.layouts {
		if !seen[id] {
			delete(r.layouts, id)
		}
	}
}

// follow scrolls so the caret of the active cell is on screen.
func (r *Renderer) follow(doc *document.Document) {
	height := r.textHeight()
	active := doc.Active()
	if active == nil || height == 0 {
		return
	}
	reg, ok := r.regionOf(active.ID)
	if !ok {
		return
	}
	caret := reg.top + active.Engine.CaretCoordinate().Line
	switch {
	case caret < r.top:
		r.top = caret
	case caret >= r.top+height:
		r.top = caret - height + 1
	}
	r.top = max(r.top, 0)
}

func (r *Renderer) regionOf(id uuid.UUID) (region, bool) {
	for _, reg := range r.regions {
		if reg.id == id {
			return reg, true
		}
	}
	return region{}, false
}

func (r *Renderer) drawStatus(doc *document.Document) {
	w, h := r.screen.Size()
	if h == 0 {
		return
	}
	y := h - 1
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, ' ', nil, r.theme.Status)
	}

	info := fmt.Sprintf("%d cells", doc.Len())
	if c := doc.Active(); c != nil {
		i, _ := doc.Index(c.ID)
		pos := c.Engine.CaretCoordinate()
		info = fmt.Sprintf("%s %d/%d  %d:%d", c.Kind(), i+1, doc.Len(), pos.Line+1, pos.Column+1)
	}
	if doc.IsModified() {
		info += " [+]"
	}
	if r.status != "" {
		info += "  " + r.status
	}

	x := 0
	for _, ch := range info {
		if x >= w {
			break
		}
		r.screen.SetContent(x, y, ch, nil, r.theme.Status)
		x += runeWidth(ch, x, 1)
	}
}

// CellAt returns the handle of the cell drawn at screen row y.
func (r *Renderer) CellAt(x, y int) (uuid.UUID, bool) {
	if x < 0 || y < 0 || y >= r.textHeight() {
		return uuid.Nil, false
	}
	row := y + r.top
	for _, reg := range r.regions {
		if row >= reg.top && row < reg.top+reg.rows {
			return reg.id, true
		}
	}
	return uuid.Nil, false
}

// HitTest maps the screen cell (x, y) to an offset in the active cell, as
// laid out by the last Draw.
func (r *Renderer) HitTest(x, y int) (engine.Offset, bool) {
	if r.doc == nil {
		return 0, false
	}
	active := r.doc.Active()
	if active == nil {
		return 0, false
	}
	reg, ok := r.regionOf(active.ID)
	if !ok || y < 0 || y >= r.textHeight() {
		return 0, false
	}
	w, _ := r.screen.Size()
	v := View{
		Engine: active.Engine,
		Rect:   Rect{X: GutterWidth, Y: reg.top - r.top, Width: max(w-GutterWidth, 0), Height: reg.rows},
	}
	return v.HitTest(x, y)
}
