// Package engine provides the edit engine of a single multi-line text cell.
//
// The engine package is the facade over three sub-packages:
//
//   - buffer: code-point indexed text with line/column conversion
//   - cursor: caret, anchor/active selection and caret motion
//   - bracket: matching of (), [] and {} around the caret
//
// # Intents
//
// All editing goes through intents. The input layer translates key and
// mouse events into Intent values and hands them to Engine.Apply; each
// intent also has a method of the same name on Engine:
//
//	e := engine.New(engine.WithContent("f(x)"))
//	e.Apply(engine.SetCaret{Offset: 4})
//	r := e.Apply(engine.InsertChar{Char: ';'})
//	if r.NeedsLayout() {
//		// re-measure
//	}
//
// An intent either applies completely or leaves the buffer, caret,
// selection and bracket match exactly as they were. Intents whose
// precondition is not met report Applied == false. Offsets outside the
// buffer are clamped, never rejected.
//
// # Bracket Matching
//
// After every intent the bracket matcher runs at the new caret position.
// It is only active for KindInput cells and can be turned off with
// WithBracketMatching(false).
//
// # Dirty Flag
//
// Any change to the content raises the dirty flag. The layout pass reads
// it through IsDirty and lowers it with ClearDirty; the engine itself never
// clears it.
//
// # Thread Safety
//
// An Engine is not safe for concurrent use. It is driven by a single event
// loop that applies one intent at a time.
//
// # Configuration
//
// Engines are configured with functional options:
//
//	e := engine.New(
//		engine.WithContent("select 1"),
//		engine.WithTabWidth(2),
//		engine.WithAutoPair(false),
//		engine.WithClipboard(cb),
//	)
//
// Configure applies the same options to a live engine, which is how
// configuration reloads reach it.
package engine
