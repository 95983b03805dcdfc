package cursor

// Text is the read-only view of a buffer that caret motion needs.
// Both *buffer.Buffer and *buffer.Snapshot satisfy it.
type Text interface {
	Len() int
	LineCount() int
	LineStart(line int) Offset
	LineEnd(line int) Offset
	CoordinateToOffset(c Coordinate) Offset
	OffsetToCoordinate(offset Offset) Coordinate
}

// Direction identifies a caret motion.
type Direction uint8

const (
	// Left moves one code point back.
	Left Direction = iota
	// Right moves one code point forward.
	Right
	// Up moves to the same column on the previous line.
	Up
	// Down moves to the same column on the next line.
	Down
	// LineStart moves to the start of the current line.
	LineStart
	// LineEnd moves to the end of the current line.
	LineEnd
	// BufferStart moves to offset 0.
	BufferStart
	// BufferEnd moves to the end of the buffer.
	BufferEnd
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	case LineStart:
		return "line-start"
	case LineEnd:
		return "line-end"
	case BufferStart:
		return "buffer-start"
	case BufferEnd:
		return "buffer-end"
	default:
		return "unknown"
	}
}

// Move returns the offset reached by moving from in direction dir.
// Results are always within [0, t.Len()].
//
// Vertical motion keeps the column, clamped to the target line's length.
// Moving up from the first line lands on offset 0; moving down from the
// last line lands on t.Len().
func Move(t Text, from Offset, dir Direction) Offset {
	from = clamp(from, t.Len())

	switch dir {
	case Left:
		if from > 0 {
			return from - 1
		}
		return 0
	case Right:
		if from < t.Len() {
			return from + 1
		}
		return from
	case Up:
		c := t.OffsetToCoordinate(from)
		if c.Line == 0 {
			return 0
		}
		return t.CoordinateToOffset(Coordinate{Line: c.Line - 1, Column: c.Column})
	case Down:
		c := t.OffsetToCoordinate(from)
		if c.Line >= t.LineCount()-1 {
			return t.Len()
		}
		return t.CoordinateToOffset(Coordinate{Line: c.Line + 1, Column: c.Column})
	case LineStart:
		return t.LineStart(t.OffsetToCoordinate(from).Line)
	case LineEnd:
		return t.LineEnd(t.OffsetToCoordinate(from).Line)
	case BufferStart:
		return 0
	case BufferEnd:
		return t.Len()
	default:
		return from
	}
}
