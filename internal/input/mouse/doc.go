// Package mouse turns mouse events into edit intents.
//
// A press of the left button places the caret at the offset under the
// pointer. Dragging with the button held selects from the press point to
// the pointer. A double click selects the word under the pointer and a
// triple click selects the whole cell. A middle click pastes from the
// clipboard at the pointer.
//
// Screen positions are turned into buffer offsets by a HitTester, normally
// the renderer's layout of the active cell:
//
//	h := mouse.NewHandler(mouse.DefaultConfig())
//	ev := h.Decode(tcellEvent)
//	for _, in := range h.Handle(ev, layout) {
//	    eng.Apply(in)
//	}
package mouse
