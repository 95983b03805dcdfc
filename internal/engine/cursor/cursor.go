package cursor

import (
	"fmt"

	"github.com/dshills/celledit/internal/engine/buffer"
)

// Offset is an alias for buffer.Offset for convenience.
type Offset = buffer.Offset

// Coordinate is an alias for buffer.Coordinate for convenience.
type Coordinate = buffer.Coordinate

// Caret represents the single insertion point of a cell.
// Caret is an immutable value type.
type Caret struct {
	offset Offset
}

// NewCaret creates a caret at the given offset.
func NewCaret(offset Offset) Caret {
	if offset < 0 {
		offset = 0
	}
	return Caret{offset: offset}
}

// Offset returns the caret's offset.
func (c Caret) Offset() Offset {
	return c.offset
}

// MoveTo returns a new caret at the given offset.
func (c Caret) MoveTo(offset Offset) Caret {
	return NewCaret(offset)
}

// MoveBy returns a new caret shifted by delta code points.
func (c Caret) MoveBy(delta int) Caret {
	return NewCaret(c.offset + delta)
}

// Clamp returns a caret clamped to the valid range [0, maxOffset].
func (c Caret) Clamp(maxOffset Offset) Caret {
	if c.offset < 0 {
		return Caret{offset: 0}
	}
	if c.offset > maxOffset {
		return Caret{offset: maxOffset}
	}
	return c
}

// Coordinate returns the caret's derived line/column in t.
func (c Caret) Coordinate(t Text) Coordinate {
	return t.OffsetToCoordinate(c.offset)
}

// String returns a string representation of the caret.
func (c Caret) String() string {
	return fmt.Sprintf("Caret(%d)", c.offset)
}

// Equals returns true if two carets are at the same position.
func (c Caret) Equals(other Caret) bool {
	return c.offset == other.offset
}
