package key

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// FromTcell converts a tcell key event. Keys with no counterpart yield an
// event with KeyNone.
func FromTcell(ev *tcell.EventKey) Event {
	e := Event{
		Modifiers: convertMod(ev.Modifiers()),
		Timestamp: ev.When(),
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		e.Key = KeyRune
		e.Rune = ev.Rune()
		switch {
		case e.Rune >= 1 && e.Rune <= 26:
			e.Rune = 'a' + e.Rune - 1
			e.Modifiers = e.Modifiers.With(ModCtrl)
		case e.Modifiers.HasCtrl():
			e.Rune = unicode.ToLower(e.Rune)
		}
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ && !isSpecialControl(k):
		e.Key = KeyRune
		e.Rune = 'a' + rune(k-tcell.KeyCtrlA)
		e.Modifiers = e.Modifiers.With(ModCtrl)
	default:
		e.Key = convertKey(k)
	}
	return e
}

// isSpecialControl reports whether a control code doubles as a named key.
func isSpecialControl(k tcell.Key) bool {
	switch k {
	case tcell.KeyTab, tcell.KeyEnter, tcell.KeyBackspace:
		return true
	}
	return false
}

// ToTcell converts an Event back into a tcell key event.
func ToTcell(e Event) *tcell.EventKey {
	if e.Key == KeyRune && e.Modifiers.HasCtrl() && e.Rune >= 'a' && e.Rune <= 'z' {
		k := tcell.KeyCtrlA + tcell.Key(e.Rune-'a')
		return tcell.NewEventKey(k, e.Rune, convertToTcellMod(e.Modifiers))
	}
	return tcell.NewEventKey(convertToTcellKey(e.Key), e.Rune, convertToTcellMod(e.Modifiers))
}

func convertKey(k tcell.Key) Key {
	switch k {
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyBacktab:
		return KeyBacktab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyDelete:
		return KeyDelete
	case tcell.KeyInsert:
		return KeyInsert
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	default:
		return KeyNone
	}
}

func convertToTcellKey(k Key) tcell.Key {
	switch k {
	case KeyEscape:
		return tcell.KeyEscape
	case KeyEnter:
		return tcell.KeyEnter
	case KeyTab:
		return tcell.KeyTab
	case KeyBacktab:
		return tcell.KeyBacktab
	case KeyBackspace:
		return tcell.KeyBackspace2
	case KeyDelete:
		return tcell.KeyDelete
	case KeyInsert:
		return tcell.KeyInsert
	case KeyHome:
		return tcell.KeyHome
	case KeyEnd:
		return tcell.KeyEnd
	case KeyPageUp:
		return tcell.KeyPgUp
	case KeyPageDown:
		return tcell.KeyPgDn
	case KeyUp:
		return tcell.KeyUp
	case KeyDown:
		return tcell.KeyDown
	case KeyLeft:
		return tcell.KeyLeft
	case KeyRight:
		return tcell.KeyRight
	default:
		return tcell.KeyRune
	}
}

func convertMod(m tcell.ModMask) Modifier {
	var result Modifier
	if m&tcell.ModShift != 0 {
		result |= ModShift
	}
	if m&tcell.ModCtrl != 0 {
		result |= ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		result |= ModAlt
	}
	if m&tcell.ModMeta != 0 {
		result |= ModMeta
	}
	return result
}

func convertToTcellMod(m Modifier) tcell.ModMask {
	var result tcell.ModMask
	if m&ModShift != 0 {
		result |= tcell.ModShift
	}
	if m&ModCtrl != 0 {
		result |= tcell.ModCtrl
	}
	if m&ModAlt != 0 {
		result |= tcell.ModAlt
	}
	if m&ModMeta != 0 {
		result |= tcell.ModMeta
	}
	return result
}
