package buffer

// Separator is the line separator stored in the buffer.
const Separator = '\n'

// ToLineEnd is the end column sentinel for LineSlice meaning "up to the
// line's terminator, exclusive".
const ToLineEnd = -1

// text is the code point sequence shared by Buffer and Snapshot. All
// queries are linear walks; cells hold small amounts of text and the
// results are never cached across edits.
type text []rune

// Len returns the number of code points.
func (t text) Len() int {
	return len(t)
}

// IsEmpty returns true if there is no text.
func (t text) IsEmpty() bool {
	return len(t) == 0
}

// Text returns the content as a string.
func (t text) Text() string {
	return string(t)
}

// Clamp clamps an offset into [0, Len()].
func (t text) Clamp(offset Offset) Offset {
	if offset < 0 {
		return 0
	}
	if offset > len(t) {
		return len(t)
	}
	return offset
}

// RuneAt returns the code point at offset. The second result is false
// when offset does not address a character (including offset == Len()).
func (t text) RuneAt(offset Offset) (rune, bool) {
	if offset < 0 || offset >= len(t) {
		return 0, false
	}
	return t[offset], true
}

// Slice returns the text in [start, end) after clamping both ends.
func (t text) Slice(start, end Offset) string {
	start, end = t.Clamp(start), t.Clamp(end)
	if start >= end {
		return ""
	}
	return string(t[start:end])
}

// LineCount returns the number of separator-delimited lines.
// An empty buffer has one line.
func (t text) LineCount() int {
	n := 1
	for _, r := range t {
		if r == Separator {
			n++
		}
	}
	return n
}

// CoordinateToOffset converts a line/column coordinate to an offset.
// The column is clamped to the line's length; a line past the last line
// resolves to Len().
func (t text) CoordinateToOffset(c Coordinate) Offset {
	pos, line := 0, 0
	for pos < len(t) && line < c.Line {
		if t[pos] == Separator {
			line++
		}
		pos++
	}

	for col := 0; pos < len(t) && col < c.Column; col++ {
		if t[pos] == Separator {
			break
		}
		pos++
	}

	return pos
}

// OffsetToCoordinate converts an offset to a line/column coordinate.
// The offset is clamped to [0, Len()] first.
func (t text) OffsetToCoordinate(offset Offset) Coordinate {
	offset = t.Clamp(offset)

	var c Coordinate
	for _, r := range t[:offset] {
		if r == Separator {
			c.Line++
			c.Column = 0
		} else {
			c.Column++
		}
	}
	return c
}

// LineStart returns the offset of the first character of line.
func (t text) LineStart(line int) Offset {
	return t.CoordinateToOffset(Coordinate{Line: line})
}

// LineEnd returns the offset of the separator terminating line, or Len()
// for the last line.
func (t text) LineEnd(line int) Offset {
	pos := t.LineStart(line)
	for pos < len(t) && t[pos] != Separator {
		pos++
	}
	return pos
}

// LineLen returns the number of code points on line, excluding the separator.
func (t text) LineLen(line int) int {
	return t.LineEnd(line) - t.LineStart(line)
}

// LineText returns the text of a specific line (without separator).
func (t text) LineText(line int) string {
	return t.LineSlice(line, 0, ToLineEnd)
}

// LineSlice returns the part of line between startColumn and endColumn.
// An endColumn of ToLineEnd extends to the line terminator. For a concrete
// endColumn the result is empty when startColumn >= endColumn.
func (t text) LineSlice(line, startColumn, endColumn int) string {
	if endColumn != ToLineEnd && startColumn >= endColumn {
		return ""
	}
	if line < 0 || line >= t.LineCount() {
		return ""
	}
	if startColumn < 0 {
		startColumn = 0
	}

	start := t.CoordinateToOffset(Coordinate{Line: line, Column: startColumn})
	var end Offset
	if endColumn == ToLineEnd {
		end = t.LineEnd(line)
	} else {
		end = t.CoordinateToOffset(Coordinate{Line: line, Column: endColumn})
	}
	return t.Slice(start, end)
}
