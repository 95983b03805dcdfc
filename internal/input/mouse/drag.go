package mouse

import "github.com/dshills/celledit/internal/engine"

// dragTracker tracks a left-button drag inside the active cell.
type dragTracker struct {
	active  bool
	anchor  engine.Offset
	current engine.Offset
}

func newDragTracker() *dragTracker {
	return &dragTracker{}
}

// start begins a drag anchored at offset.
func (t *dragTracker) start(offset engine.Offset) {
	t.active = true
	t.anchor = offset
	t.current = offset
}

// update moves the drag end and reports whether it changed.
func (t *dragTracker) update(offset engine.Offset) bool {
	if !t.active || offset == t.current {
		return false
	}
	t.current = offset
	return true
}

func (t *dragTracker) end() {
	t.active = false
	t.anchor = 0
	t.current = 0
}

func (t *dragTracker) isActive() bool {
	return t.active
}
