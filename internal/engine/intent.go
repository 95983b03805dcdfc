package engine

import (
	"fmt"

	"github.com/dshills/celledit/internal/engine/cursor"
)

// Intent is a single editing request produced by the input layer.
// Intents are applied with Engine.Apply.
type Intent interface {
	fmt.Stringer
	apply(e *Engine) Result
}

// Directions re-exported from the cursor package.
const (
	Left        = cursor.Left
	Right       = cursor.Right
	Up          = cursor.Up
	Down        = cursor.Down
	LineStart   = cursor.LineStart
	LineEnd     = cursor.LineEnd
	BufferStart = cursor.BufferStart
	BufferEnd   = cursor.BufferEnd
)

// MoveCaret moves the caret one step in a direction. With Extend set the
// selection grows from the caret's original position.
type MoveCaret struct {
	Direction Direction
	Extend    bool
}

func (i MoveCaret) String() string {
	if i.Extend {
		return fmt.Sprintf("MoveCaret(%s, extend)", i.Direction)
	}
	return fmt.Sprintf("MoveCaret(%s)", i.Direction)
}

func (i MoveCaret) apply(e *Engine) Result { return e.MoveCaret(i.Direction, i.Extend) }

// SetCaret places the caret at an offset and clears the selection.
type SetCaret struct {
	Offset Offset
}

func (i SetCaret) String() string { return fmt.Sprintf("SetCaret(%d)", i.Offset) }
func (i SetCaret) apply(e *Engine) Result { return e.SetCaret(i.Offset) }

// SelectRange selects [From, To) and places the caret at To.
type SelectRange struct {
	From, To Offset
}

func (i SelectRange) String() string { return fmt.Sprintf("SelectRange(%d, %d)", i.From, i.To) }
func (i SelectRange) apply(e *Engine) Result { return e.SelectRange(i.From, i.To) }

// InsertChar types a single character.
type InsertChar struct {
	Char rune
}

func (i InsertChar) String() string { return fmt.Sprintf("InsertChar(%q)", i.Char) }
func (i InsertChar) apply(e *Engine) Result { return e.InsertChar(i.Char) }

// WrapOrDeleteSelection types a character over an existing selection.
type WrapOrDeleteSelection struct {
	Char rune
}

func (i WrapOrDeleteSelection) String() string {
	return fmt.Sprintf("WrapOrDeleteSelection(%q)", i.Char)
}
func (i WrapOrDeleteSelection) apply(e *Engine) Result { return e.WrapOrDeleteSelection(i.Char) }

// DeleteForward deletes the selection or the character after the caret.
type DeleteForward struct{}

func (DeleteForward) String() string { return "DeleteForward" }
func (DeleteForward) apply(e *Engine) Result { return e.DeleteForward() }

// DeleteBackward deletes the selection or the character before the caret.
type DeleteBackward struct{}

func (DeleteBackward) String() string { return "DeleteBackward" }
func (DeleteBackward) apply(e *Engine) Result { return e.DeleteBackward() }

// SplitLine inserts a line separator.
type SplitLine struct{}

func (SplitLine) String() string { return "SplitLine" }
func (SplitLine) apply(e *Engine) Result { return e.SplitLine() }

// IndentTab pads to the next tab stop, or deletes the selection.
type IndentTab struct{}

func (IndentTab) String() string { return "IndentTab" }
func (IndentTab) apply(e *Engine) Result { return e.IndentTab() }

// SelectWordAtCaret selects the word or bracket interior at the caret.
type SelectWordAtCaret struct{}

func (SelectWordAtCaret) String() string { return "SelectWordAtCaret" }
func (SelectWordAtCaret) apply(e *Engine) Result { return e.SelectWordAtCaret() }

// Copy writes the selection to the clipboard.
type Copy struct{}

func (Copy) String() string { return "Copy" }
func (Copy) apply(e *Engine) Result { return e.Copy() }

// Cut writes the selection to the clipboard and deletes it.
type Cut struct{}

func (Cut) String() string { return "Cut" }
func (Cut) apply(e *Engine) Result { return e.Cut() }

// Paste inserts Text at the caret, replacing any selection.
type Paste struct {
	Text string
}

func (i Paste) String() string { return fmt.Sprintf("Paste(%d chars)", runeLen(i.Text)) }
func (i Paste) apply(e *Engine) Result { return e.Paste(i.Text) }

// PasteFromClipboard reads the clipboard and pastes its text.
type PasteFromClipboard struct{}

func (PasteFromClipboard) String() string { return "PasteFromClipboard" }
func (PasteFromClipboard) apply(e *Engine) Result { return e.PasteFromClipboard() }

// EnsureStatementTerminator appends a terminator when the text lacks one.
type EnsureStatementTerminator struct{}

func (EnsureStatementTerminator) String() string { return "EnsureStatementTerminator" }
func (EnsureStatementTerminator) apply(e *Engine) Result { return e.EnsureStatementTerminator() }
