// Package buffer provides the character buffer that backs a single editor
// cell. Text is stored as a sequence of Unicode code points with embedded
// line separators ('\n'); every position is a code-point offset.
//
// The buffer package provides:
//
//   - Offset and Coordinate (line/column) position types
//   - Lossless conversion between the two coordinate systems
//   - Line extraction by column range
//   - Range-based insert, delete and replace with line ending normalization
//   - Read-only snapshots for rendering collaborators
//   - Revision tracking for change detection
//
// Basic usage:
//
//	buf := buffer.NewBufferFromString("ab\ncd\nef")
//
//	buf.CoordinateToOffset(buffer.Coordinate{Line: 1, Column: 1}) // 4
//	buf.OffsetToCoordinate(4)                                    // (1:1)
//	buf.LineSlice(2, 0, buffer.ToLineEnd)                        // "ef"
//
//	buf.Insert(2, "!") // "ab!\ncd\nef"
//
// Coordinate Conversion:
//
// Conversions never fail. Offsets are clamped to [0, Len()]. A column past
// the end of its line clamps to the line end, and a line past the last line
// resolves to the end of the buffer. Within those extents the two
// conversions are mutual inverses.
//
// Thread Safety:
//
// A Buffer is owned by exactly one cell and is mutated by a single driver,
// so it carries no locks. Use Snapshot to hand a stable copy to another
// goroutine.
package buffer
