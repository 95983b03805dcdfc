package renderer

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/celledit/internal/engine"
)

// Theme holds the styles used to paint cells.
type Theme struct {
	Text      map[engine.Kind]tcell.Style
	Selection tcell.Style
	Bracket   tcell.Style
	Gutter    tcell.Style
	Active    tcell.Style
	Status    tcell.Style
}

// DefaultTheme returns the theme used when none is configured.
func DefaultTheme() Theme {
	base := tcell.StyleDefault
	return Theme{
		Text: map[engine.Kind]tcell.Style{
			engine.KindInput:   base,
			engine.KindComment: base.Foreground(tcell.ColorGray).Italic(true),
			engine.KindSection: base.Bold(true).Underline(true),
			engine.KindTitle:   base.Bold(true),
		},
		Selection: base.Reverse(true),
		Bracket:   base.Background(tcell.ColorTeal).Foreground(tcell.ColorWhite).Bold(true),
		Gutter:    base.Foreground(tcell.ColorGray),
		Active:    base.Foreground(tcell.ColorYellow).Bold(true),
		Status:    base.Reverse(true),
	}
}

// TextStyle returns the body style for a cell kind.
func (t Theme) TextStyle(k engine.Kind) tcell.Style {
	if s, ok := t.Text[k]; ok {
		return s
	}
	return tcell.StyleDefault
}

// kindMarker is the gutter glyph for each cell kind.
func kindMarker(k engine.Kind) rune {
	switch k {
	case engine.KindComment:
		return '#'
	case engine.KindSection:
		return '§'
	case engine.KindTitle:
		return '='
	default:
		return '›'
	}
}
