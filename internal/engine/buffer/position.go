package buffer

import (
	"fmt"
	"sync/atomic"
)

// Offset is a position between two code points in the buffer.
// Valid offsets lie in [0, Len()]; Len() means "after the last character".
type Offset = int

// Coordinate represents a line and column position.
// Both Line and Column are 0-indexed; Column counts code points from the
// start of the line and resets after every separator.
type Coordinate struct {
	Line   int
	Column int
}

// String returns a human-readable representation of the coordinate.
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d:%d)", c.Line, c.Column)
}

// Compare returns -1 if c < other, 0 if c == other, 1 if c > other.
func (c Coordinate) Compare(other Coordinate) int {
	if c.Line < other.Line {
		return -1
	}
	if c.Line > other.Line {
		return 1
	}
	if c.Column < other.Column {
		return -1
	}
	if c.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if c comes before other.
func (c Coordinate) Before(other Coordinate) bool {
	return c.Compare(other) < 0
}

// After returns true if c comes after other.
func (c Coordinate) After(other Coordinate) bool {
	return c.Compare(other) > 0
}

// IsZero returns true if this is the zero coordinate (0:0).
func (c Coordinate) IsZero() bool {
	return c.Line == 0 && c.Column == 0
}

// RevisionID uniquely identifies a buffer revision.
// Each modification to the buffer creates a new revision.
type RevisionID uint64

// revisionCounter is used to generate unique revision IDs.
var revisionCounter uint64

// NewRevisionID generates a new unique revision ID.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}
