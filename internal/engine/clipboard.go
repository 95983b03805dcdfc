package engine

import "github.com/dshills/celledit/internal/engine/cursor"

// Clipboard is the system clipboard as seen by the engine.
type Clipboard interface {
	// Text returns the clipboard text, or false if it holds none.
	Text() (string, bool)
	// SetText replaces the clipboard text and reports success.
	SetText(text string) bool
}

// Copy writes the selected text to the clipboard. It does nothing without a
// selection, and Applied is false if the clipboard write fails.
func (e *Engine) Copy() Result {
	s, ok := e.SelectedText()
	if !ok {
		return Result{}
	}
	if !e.writeClipboard(s) {
		return Result{}
	}
	return Result{Applied: true}
}

// Cut copies the selection to the clipboard and then deletes it. The
// selection is only deleted if the clipboard accepted the text.
func (e *Engine) Cut() Result {
	if e.readOnly {
		return Result{Err: ErrReadOnly}
	}
	s, ok := e.SelectedText()
	if !ok {
		return Result{}
	}
	if !e.writeClipboard(s) {
		return Result{}
	}
	return e.deleteSelection()
}

// Paste inserts text at the caret, replacing any selection. Line endings are
// normalized and no auto-pairing takes place. Afterwards the selection spans
// the inserted text and the caret sits at its end. Pasting an empty string
// does nothing.
func (e *Engine) Paste(text string) Result {
	if e.readOnly {
		return Result{Err: ErrReadOnly}
	}
	n := runeLen(text)
	if n == 0 {
		return Result{}
	}
	before := e.capture()

	r := e.target()
	e.replace(r, text, r.Start+n)
	e.sel = cursor.NewSelection(r.Start, r.Start+n)
	return e.finish(before, true)
}

// PasteFromClipboard pastes the clipboard text. An empty or unavailable
// clipboard means there is nothing to paste.
func (e *Engine) PasteFromClipboard() Result {
	if e.readOnly {
		return Result{Err: ErrReadOnly}
	}
	if e.clipboard == nil {
		e.logger.Debug("paste: no clipboard configured")
		return Result{}
	}
	text, ok := e.clipboard.Text()
	if !ok {
		return Result{}
	}
	return e.Paste(text)
}

func (e *Engine) writeClipboard(s string) bool {
	if e.clipboard == nil {
		e.logger.Debug("copy: no clipboard configured")
		return false
	}
	if !e.clipboard.SetText(s) {
		e.logger.Debug("copy: clipboard rejected %d chars", runeLen(s))
		return false
	}
	return true
}
