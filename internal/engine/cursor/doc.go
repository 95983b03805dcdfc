// Package cursor provides caret and selection state for a single editor cell.
//
// The cursor package handles:
//
//   - Caret positioning with the Caret type
//   - At most one selection with an anchor/active model via Selection
//   - Caret motion rules (character, line, line bounds, buffer bounds)
//
// Selection Model:
//
// A Selection is either unset or a pair of offsets:
//   - Anchor: where the selection started
//   - Active: the end that follows the caret
//
// Anchor and active may appear in either order so the extension direction is
// preserved, but every read through Normalized or Range yields (low, high).
// A selection whose ends meet is never stored: it collapses to unset.
//
// Basic usage:
//
//	sel := cursor.NoSelection
//	sel = sel.Extend(10, 12)  // anchor 10, active 12
//	sel = sel.Extend(99, 15)  // anchor stays 10, active 15
//	r, _ := sel.Normalized()  // [10:15)
//
//	next := cursor.Move(buf, 3, cursor.Down)
//
// Thread Safety:
//
// Caret and Selection are immutable value types and safe for concurrent use.
package cursor
