package engine

import (
	"strings"
	"unicode"

	"github.com/dshills/celledit/internal/engine/bracket"
	"github.com/dshills/celledit/internal/engine/cursor"
)

// Editing intents. Each one applies a single buffer edit, so a rejected
// intent leaves the engine untouched.

// InsertChar inserts ch at the caret, replacing the selection if one exists.
// With auto-pairing enabled an opening bracket also inserts its partner and
// the caret lands between them.
func (e *Engine) InsertChar(ch rune) Result {
	if e.readOnly {
		return Result{Err: ErrReadOnly}
	}
	before := e.capture()

	r := e.target()
	s := string(ch)
	if e.autoPair && bracket.IsOpen(ch) {
		closing, _ := bracket.Complement(ch)
		s += string(closing)
	}
	e.replace(r, s, r.Start+1)
	e.sel = cursor.NoSelection
	return e.finish(before, true)
}

// WrapOrDeleteSelection handles a typed character while a selection exists.
// A bracket wraps the selection in the matching pair; the caret goes to the
// opening side for an opening bracket and past the closing one otherwise.
// Any other character replaces the selection as InsertChar does.
func (e *Engine) WrapOrDeleteSelection(ch rune) Result {
	if e.readOnly {
		return Result{Err: ErrReadOnly}
	}
	if !e.sel.IsSet() {
		return Result{}
	}
	if !bracket.IsBracket(ch) {
		return e.InsertChar(ch)
	}
	before := e.capture()

	r := e.sel.Range()
	open, closing, _ := bracket.Pair(ch)
	wrapped := string(open) + e.buf.Slice(r.Start, r.End) + string(closing)

	caret := r.Start
	if bracket.IsClose(ch) {
		caret = r.End + 2
	}
	e.replace(r, wrapped, caret)
	e.sel = cursor.NoSelection
	return e.finish(before, true)
}

// DeleteForward deletes the selection, or the character after the caret.
func (e *Engine) DeleteForward() Result {
	if e.readOnly {
		return Result{Err: ErrReadOnly}
	}
	if e.sel.IsSet() {
		return e.deleteSelection()
	}
	c := e.caret.Offset()
	if c >= e.buf.Len() {
		return Result{}
	}
	before := e.capture()
	e.replace(Range{Start: c, End: c + 1}, "", c)
	return e.finish(before, true)
}

// DeleteBackward deletes the selection, or the character before the caret.
func (e *Engine) DeleteBackward() Result {
	if e.readOnly {
		return Result{Err: ErrReadOnly}
	}
	if e.sel.IsSet() {
		return e.deleteSelection()
	}
	c := e.caret.Offset()
	if c == 0 {
		return Result{}
	}
	before := e.capture()
	e.replace(Range{Start: c - 1, End: c}, "", c-1)
	return e.finish(before, true)
}

func (e *Engine) deleteSelection() Result {
	before := e.capture()
	r := e.sel.Range()
	e.replace(r, "", r.Start)
	e.sel = cursor.NoSelection
	return e.finish(before, true)
}

// SplitLine inserts a line separator at the caret, replacing the selection.
func (e *Engine) SplitLine() Result {
	if e.readOnly {
		return Result{Err: ErrReadOnly}
	}
	before := e.capture()
	r := e.target()
	e.replace(r, "\n", r.Start+1)
	e.sel = cursor.NoSelection
	return e.finish(before, true)
}

// IndentTab inserts spaces up to the next multiple of the tab width. With a
// selection it only deletes the selection.
func (e *Engine) IndentTab() Result {
	if e.readOnly {
		return Result{Err: ErrReadOnly}
	}
	if e.sel.IsSet() {
		return e.deleteSelection()
	}
	before := e.capture()

	c := e.caret.Offset()
	col := e.buf.OffsetToCoordinate(c).Column
	n := e.tabWidth - col%e.tabWidth
	e.replace(Range{Start: c, End: c}, strings.Repeat(" ", n), c+n)
	return e.finish(before, true)
}

// EnsureStatementTerminator appends the first configured terminator when the
// text, ignoring trailing whitespace, does not already end with one. The
// caret and the selection are not moved. Result.Applied reports whether a
// terminator was appended.
func (e *Engine) EnsureStatementTerminator() Result {
	if e.readOnly {
		return Result{Err: ErrReadOnly}
	}
	trimmed := strings.TrimRightFunc(e.buf.Text(), unicode.IsSpace)
	if trimmed != "" {
		last := []rune(trimmed)
		if e.isTerminator(last[len(last)-1]) {
			return Result{}
		}
	}
	before := e.capture()

	end := e.buf.Len()
	if _, err := e.buf.Insert(end, string(e.terminators[0])); err != nil {
		e.logger.Debug("append terminator: %v", err)
		return Result{}
	}
	return e.finish(before, true)
}
