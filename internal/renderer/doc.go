// Package renderer paints cells onto a tcell screen.
//
// It is the rendering collaborator of the edit engine: it reads engine
// state, never mutates text, and is the only caller of the engine's
// ClearDirty. Layout metrics are recomputed only for cells whose dirty flag
// is set.
//
// The package has three layers:
//
//   - Layout: per-cell metrics (line count and widest line) plus the
//     column arithmetic shared by painting and hit testing.
//   - View: one cell drawn into a screen rectangle, with selection, bracket
//     highlight and caret, and the inverse mapping from screen cells back to
//     text offsets.
//   - Renderer: the whole document stacked vertically with a kind gutter,
//     vertical scrolling that follows the caret, and a status line.
//
// Usage:
//
//	screen, _ := tcell.NewScreen()
//	_ = screen.Init()
//	r := renderer.New(screen)
//	r.Draw(doc)
//	off, ok := r.HitTest(x, y)
package renderer
