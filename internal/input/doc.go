// Package input turns key events into edit intents and application
// commands.
//
// Translate is a pure function of the key event and whether the active
// cell has a selection:
//
//	act := input.Translate(ev, eng.HasSelection())
//	switch {
//	case act.Intent != nil:
//		eng.Apply(act.Intent)
//	case act.Command != input.CommandNone:
//		// handled by the application
//	}
//
// # Bindings
//
//   - Arrows, Home, End, PageUp and PageDown move the caret; Shift extends
//     the selection and Ctrl+Home/Ctrl+End jump to the buffer bounds
//   - Enter splits the line, Tab indents, Backspace and Delete delete
//   - Printable characters insert, or wrap the selection when one exists
//   - Ctrl+C, Ctrl+X and Ctrl+V copy, cut and paste
//   - Ctrl+A selects everything and Ctrl+W selects the word at the caret
//   - Ctrl+E appends a statement terminator
//   - Ctrl+N adds a cell, Alt+Up and Alt+Down switch cells
//   - Ctrl+S saves the document and Ctrl+Q quits
//
// Mouse handling lives in the mouse sub-package.
package input
