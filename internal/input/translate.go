package input

import (
	"math"

	"github.com/dshills/celledit/internal/engine"
	"github.com/dshills/celledit/internal/input/key"
)

// Command is an application-level request that the edit engine does not
// handle itself.
type Command uint8

const (
	// CommandNone means the event carries no command.
	CommandNone Command = iota
	// CommandQuit exits the application.
	CommandQuit
	// CommandNewCell inserts a cell after the active one.
	CommandNewCell
	// CommandNextCell activates the following cell.
	CommandNextCell
	// CommandPrevCell activates the preceding cell.
	CommandPrevCell
	// CommandDeactivate leaves the active cell.
	CommandDeactivate
	// CommandSave writes the document to its file.
	CommandSave
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CommandQuit:
		return "quit"
	case CommandNewCell:
		return "new-cell"
	case CommandNextCell:
		return "next-cell"
	case CommandPrevCell:
		return "prev-cell"
	case CommandDeactivate:
		return "deactivate"
	case CommandSave:
		return "save"
	default:
		return "none"
	}
}

// Action is the outcome of translating an event. At most one of Intent and
// Command is set.
type Action struct {
	Intent  engine.Intent
	Command Command
}

// IsZero returns true if the event maps to nothing.
func (a Action) IsZero() bool {
	return a.Intent == nil && a.Command == CommandNone
}

func intent(i engine.Intent) Action { return Action{Intent: i} }
func command(c Command) Action { return Action{Command: c} }
func move(d engine.Direction, ev key.Event) Action {
	return intent(engine.MoveCaret{Direction: d, Extend: ev.Modifiers.HasShift()})
}

// ctrlBindings maps Ctrl+letter to an action.
var ctrlBindings = map[rune]Action{
	'a': intent(engine.SelectRange{From: 0, To: math.MaxInt}),
	'c': intent(engine.Copy{}),
	'x': intent(engine.Cut{}),
	'v': intent(engine.PasteFromClipboard{}),
	'w': intent(engine.SelectWordAtCaret{}),
	'e': intent(engine.EnsureStatementTerminator{}),
	'n': command(CommandNewCell),
	'q': command(CommandQuit),
	's': command(CommandSave),
}

// Translate maps a key event to an action. hasSelection tells whether the
// active cell currently has a selection, which decides between inserting
// and wrapping a typed character.
func Translate(ev key.Event, hasSelection bool) Action {
	mods := ev.Modifiers

	if mods.HasAlt() && !mods.HasCtrl() {
		switch ev.Key {
		case key.KeyUp:
			return command(CommandPrevCell)
		case key.KeyDown:
			return command(CommandNextCell)
		}
		return Action{}
	}

	switch ev.Key {
	case key.KeyLeft:
		return move(engine.Left, ev)
	case key.KeyRight:
		return move(engine.Right, ev)
	case key.KeyUp, key.KeyPageUp:
		return move(engine.Up, ev)
	case key.KeyDown, key.KeyPageDown:
		return move(engine.Down, ev)
	case key.KeyHome:
		if mods.HasCtrl() {
			return move(engine.BufferStart, ev)
		}
		return move(engine.LineStart, ev)
	case key.KeyEnd:
		if mods.HasCtrl() {
			return move(engine.BufferEnd, ev)
		}
		return move(engine.LineEnd, ev)
	case key.KeyEnter:
		return intent(engine.SplitLine{})
	case key.KeyTab:
		return intent(engine.IndentTab{})
	case key.KeyBackspace:
		return intent(engine.DeleteBackward{})
	case key.KeyDelete:
		return intent(engine.DeleteForward{})
	case key.KeyEscape:
		return command(CommandDeactivate)
	case key.KeyRune:
		if mods.HasCtrl() {
			return ctrlBindings[ev.Rune]
		}
		if !ev.IsChar() {
			return Action{}
		}
		if hasSelection {
			return intent(engine.WrapOrDeleteSelection{Char: ev.Rune})
		}
		return intent(engine.InsertChar{Char: ev.Rune})
	}

	return Action{}
}
