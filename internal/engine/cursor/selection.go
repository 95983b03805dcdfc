package cursor

import (
	"errors"
	"fmt"

	"github.com/dshills/celledit/internal/engine/buffer"
)

// ErrEmptySelection is returned when reading the bounds of an unset selection.
var ErrEmptySelection = errors.New("empty selection")

// Range is an alias for buffer.Range for convenience.
type Range = buffer.Range

// Selection represents the optional selected range of a cell.
// The zero value is the unset selection. Selection is an immutable value type.
type Selection struct {
	anchor Offset
	active Offset
	set    bool
}

// NoSelection is the unset selection.
var NoSelection = Selection{}

// NewSelection creates a selection from anchor to active.
// Equal ends yield NoSelection.
func NewSelection(anchor, active Offset) Selection {
	if anchor == active {
		return NoSelection
	}
	return Selection{anchor: anchor, active: active, set: true}
}

// IsSet returns true if the selection covers at least one character.
func (s Selection) IsSet() bool {
	return s.set
}

// Anchor returns the fixed end of the selection.
func (s Selection) Anchor() Offset {
	return s.anchor
}

// Active returns the end that follows the caret.
func (s Selection) Active() Offset {
	return s.active
}

// Extend pins the anchor at from when the selection is unset, then moves the
// active end to to. An existing anchor is kept.
func (s Selection) Extend(from, to Offset) Selection {
	anchor := s.anchor
	if !s.set {
		anchor = from
	}
	return NewSelection(anchor, to)
}

// Clear returns the unset selection.
func (s Selection) Clear() Selection {
	return NoSelection
}

// Normalized returns the selection as an ordered range.
// Returns ErrEmptySelection when the selection is unset.
func (s Selection) Normalized() (Range, error) {
	if !s.set {
		return Range{}, ErrEmptySelection
	}
	return s.Range(), nil
}

// Range returns the selection as an ordered range (Start <= End).
// An unset selection yields the zero range.
func (s Selection) Range() Range {
	if !s.set {
		return Range{}
	}
	if s.anchor <= s.active {
		return Range{Start: s.anchor, End: s.active}
	}
	return Range{Start: s.active, End: s.anchor}
}

// Len returns the number of selected code points.
func (s Selection) Len() int {
	return s.Range().Len()
}

// IsBackward returns true if the selection extends backward (active < anchor).
func (s Selection) IsBackward() bool {
	return s.set && s.active < s.anchor
}

// Contains returns true if the given offset is within the selection.
func (s Selection) Contains(offset Offset) bool {
	return s.set && s.Range().Contains(offset)
}

// Clamp returns a selection clamped to [0, maxOffset]. A selection whose
// ends meet after clamping becomes unset.
func (s Selection) Clamp(maxOffset Offset) Selection {
	if !s.set {
		return s
	}
	return NewSelection(clamp(s.anchor, maxOffset), clamp(s.active, maxOffset))
}

// String returns a string representation of the selection.
func (s Selection) String() string {
	if !s.set {
		return "Selection(none)"
	}
	dir := "→"
	if s.IsBackward() {
		dir = "←"
	}
	return fmt.Sprintf("Selection(%d%s%d)", s.anchor, dir, s.active)
}

// Equals returns true if two selections have the same anchor and active end.
func (s Selection) Equals(other Selection) bool {
	return s == other
}

func clamp(offset, maxOffset Offset) Offset {
	if offset < 0 {
		return 0
	}
	if offset > maxOffset {
		return maxOffset
	}
	return offset
}
