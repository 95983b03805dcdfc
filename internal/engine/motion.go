package engine

import (
	"unicode"

	"github.com/dshills/celledit/internal/engine/bracket"
	"github.com/dshills/celledit/internal/engine/cursor"
)

// MoveCaret moves the caret one step in dir. Without extend the selection
// is cleared. With extend the anchor is pinned at the caret's position
// before the move if no selection exists yet.
func (e *Engine) MoveCaret(dir Direction, extend bool) Result {
	before := e.capture()

	from := e.caret.Offset()
	to := cursor.Move(e.buf, from, dir)
	if extend {
		e.sel = e.sel.Extend(from, to)
	} else {
		e.sel = cursor.NoSelection
	}
	e.caret = cursor.NewCaret(to)
	return e.finish(before, true)
}

// SetCaret places the caret at offset, clamped to the buffer, and clears
// the selection.
func (e *Engine) SetCaret(offset Offset) Result {
	before := e.capture()
	e.caret = cursor.NewCaret(offset).Clamp(e.buf.Len())
	e.sel = cursor.NoSelection
	return e.finish(before, true)
}

// SelectRange selects between from and to, clamped to the buffer, and
// places the caret at to. A non-empty selection hides the bracket match.
func (e *Engine) SelectRange(from, to Offset) Result {
	before := e.capture()
	n := e.buf.Len()
	from = min(max(from, 0), n)
	to = min(max(to, 0), n)

	e.sel = cursor.NewSelection(from, to)
	e.caret = cursor.NewCaret(to)
	r := e.finish(before, true)
	if e.sel.IsSet() {
		e.match = bracket.None
	}
	return r
}

// SelectWordAtCaret selects text around the caret. When the caret touches a
// matched bracket the interior of the pair is selected and the result word
// has kind WordBracketContent. Otherwise the run of word characters around
// the caret is selected and returned. Between two non-word characters the
// selection is cleared and the word kind is WordNone.
func (e *Engine) SelectWordAtCaret() Result {
	before := e.capture()

	if m := e.match; m.Found() {
		e.sel = cursor.NewSelection(m.Low()+1, m.High())
		e.caret = cursor.NewCaret(m.High())
		r := e.finish(before, true)
		r.Word = Word{Kind: WordBracketContent}
		return r
	}

	c := e.caret.Offset()
	left, right := c, c
	for left > 0 && e.isWordAt(left-1) {
		left--
	}
	for right < e.buf.Len() && e.isWordAt(right) {
		right++
	}

	if left == right {
		e.sel = cursor.NoSelection
		r := e.finish(before, true)
		r.Word = Word{Kind: WordNone}
		return r
	}

	e.sel = cursor.NewSelection(left, right)
	e.caret = cursor.NewCaret(right)
	r := e.finish(before, true)
	r.Word = Word{Kind: WordText, Text: e.buf.Slice(left, right)}
	return r
}

func (e *Engine) isWordAt(offset Offset) bool {
	r, ok := e.buf.RuneAt(offset)
	return ok && IsWordChar(r)
}

// IsWordChar reports whether r belongs to a word: a letter, a digit or an
// underscore.
func IsWordChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
