// Package document holds the ordered cells of a notebook-style document.
//
// Each cell owns its own edit engine and is addressed by a stable UUID
// handle, so cells can be inserted and removed without invalidating the
// handles of their neighbours. At most one cell is active at a time; the
// active cell receives input.
package document

import (
	"errors"
	"slices"

	"github.com/google/uuid"

	"github.com/dshills/celledit/internal/engine"
)

// ErrCellNotFound indicates a handle that names no cell in the document.
var ErrCellNotFound = errors.New("cell not found")

// Cell is one editable cell.
type Cell struct {
	ID     uuid.UUID
	Engine *engine.Engine
}

// Kind returns the cell kind.
func (c *Cell) Kind() engine.Kind {
	return c.Engine.Kind()
}

// Document is an ordered sequence of cells.
type Document struct {
	// Path is the file the document was loaded from, if any.
	Path string

	cells  []*Cell
	active int
	opts   []engine.Option

	// saved records each cell's revision at the last load or save.
	saved      map[uuid.UUID]engine.RevisionID
	structural bool
}

// New creates an empty document. opts are applied to the engine of every
// cell the document creates.
func New(opts ...engine.Option) *Document {
	return &Document{
		active: -1,
		opts:   opts,
		saved:  make(map[uuid.UUID]engine.RevisionID),
	}
}

func (d *Document) newCell(kind engine.Kind, text string) *Cell {
	opts := append(slices.Clone(d.opts), engine.WithKind(kind), engine.WithContent(text))
	return &Cell{ID: uuid.New(), Engine: engine.New(opts...)}
}

// Len returns the number of cells.
func (d *Document) Len() int {
	return len(d.cells)
}

// Cells returns the cells in order.
func (d *Document) Cells() []*Cell {
	return slices.Clone(d.cells)
}

// At returns the cell at index i, or nil when i is out of range.
func (d *Document) At(i int) *Cell {
	if i < 0 || i >= len(d.cells) {
		return nil
	}
	return d.cells[i]
}

// Index returns the position of the cell with the given handle.
func (d *Document) Index(id uuid.UUID) (int, bool) {
	i := slices.IndexFunc(d.cells, func(c *Cell) bool { return c.ID == id })
	return i, i >= 0
}

// Get returns the cell with the given handle.
func (d *Document) Get(id uuid.UUID) (*Cell, bool) {
	i, ok := d.Index(id)
	if !ok {
		return nil, false
	}
	return d.cells[i], true
}

// Append adds a cell at the end of the document.
func (d *Document) Append(kind engine.Kind, text string) *Cell {
	c := d.newCell(kind, text)
	d.cells = append(d.cells, c)
	d.structural = true
	return c
}

// InsertAfter adds a cell right after the cell with the given handle.
func (d *Document) InsertAfter(id uuid.UUID, kind engine.Kind, text string) (*Cell, error) {
	i, ok := d.Index(id)
	if !ok {
		return nil, ErrCellNotFound
	}
	c := d.newCell(kind, text)
	d.cells = slices.Insert(d.cells, i+1, c)
	if d.active > i {
		d.active++
	}
	d.structural = true
	return c, nil
}

// Remove deletes the cell with the given handle. Removing the active cell
// activates its successor, or its predecessor when it was the last one.
func (d *Document) Remove(id uuid.UUID) error {
	i, ok := d.Index(id)
	if !ok {
		return ErrCellNotFound
	}
	d.cells = slices.Delete(d.cells, i, i+1)
	delete(d.saved, id)
	d.structural = true

	switch {
	case d.active > i:
		d.active--
	case d.active == i:
		d.active = min(d.active, len(d.cells)-1)
		if c := d.Active(); c != nil {
			c.Engine.ResetMarks()
		}
	}
	return nil
}

// Active returns the active cell, or nil when no cell is active.
func (d *Document) Active() *Cell {
	return d.At(d.active)
}

// Activate makes the cell with the given handle active. Both the previously
// and the newly active cell lose their selection and bracket highlight.
func (d *Document) Activate(id uuid.UUID) error {
	i, ok := d.Index(id)
	if !ok {
		return ErrCellNotFound
	}
	d.activateIndex(i)
	return nil
}

// Deactivate leaves the active cell, clearing its marks.
func (d *Document) Deactivate() {
	d.activateIndex(-1)
}

func (d *Document) activateIndex(i int) {
	if d.active == i {
		return
	}
	if prev := d.Active(); prev != nil {
		prev.Engine.ResetMarks()
	}
	d.active = i
	if next := d.Active(); next != nil {
		next.Engine.ResetMarks()
	}
}

// Next activates the cell after the active one. It returns false when
// there is no such cell; the active cell is then unchanged. With no active
// cell the first cell is activated.
func (d *Document) Next() (*Cell, bool) {
	return d.step(1)
}

// Prev activates the cell before the active one. With no active cell the
// last cell is activated.
func (d *Document) Prev() (*Cell, bool) {
	return d.step(-1)
}

func (d *Document) step(delta int) (*Cell, bool) {
	if len(d.cells) == 0 {
		return nil, false
	}
	i := d.active + delta
	if d.active < 0 {
		i = 0
		if delta < 0 {
			i = len(d.cells) - 1
		}
	}
	if i < 0 || i >= len(d.cells) {
		return d.Active(), false
	}
	d.activateIndex(i)
	return d.cells[i], true
}

// Configure applies engine options to every cell and to cells created
// later.
func (d *Document) Configure(opts ...engine.Option) {
	d.opts = append(d.opts, opts...)
	for _, c := range d.cells {
		c.Engine.Configure(opts...)
	}
}

// IsModified returns true if cells were added or removed, or any cell's
// text changed, since the last load or save.
func (d *Document) IsModified() bool {
	if d.structural {
		return true
	}
	for _, c := range d.cells {
		if rev, ok := d.saved[c.ID]; !ok || rev != c.Engine.RevisionID() {
			return true
		}
	}
	return false
}

// MarkSaved records the current state as saved.
func (d *Document) MarkSaved() {
	d.structural = false
	clear(d.saved)
	for _, c := range d.cells {
		d.saved[c.ID] = c.Engine.RevisionID()
	}
}
