package engine

// Result describes what an intent changed. The driver uses it to decide
// whether to request a re-layout or a repaint.
type Result struct {
	// Applied is false when the intent's precondition was not met or the
	// intent had nothing to do; no state changed in that case.
	Applied bool

	// ContentChanged is true when the buffer text changed.
	ContentChanged bool

	// CaretMoved is true when the caret offset changed.
	CaretMoved bool

	// SelectionChanged is true when the selection changed.
	SelectionChanged bool

	// Word is set by SelectWordAtCaret.
	Word Word

	// Err is ErrReadOnly when a mutating intent hit a read-only engine.
	Err error
}

// NeedsLayout returns true if visual metrics must be recomputed.
func (r Result) NeedsLayout() bool {
	return r.ContentChanged
}

// NeedsRedraw returns true if anything visible changed.
func (r Result) NeedsRedraw() bool {
	return r.ContentChanged || r.CaretMoved || r.SelectionChanged
}

// WordKind classifies the outcome of SelectWordAtCaret.
type WordKind uint8

const (
	// WordNone means the caret sat between two non-word characters.
	WordNone WordKind = iota
	// WordText means a word was selected; Word.Text holds it.
	WordText
	// WordBracketContent means the interior of the matched brackets was
	// selected rather than a literal word.
	WordBracketContent
)

// String returns the kind name.
func (k WordKind) String() string {
	switch k {
	case WordText:
		return "text"
	case WordBracketContent:
		return "bracket-content"
	default:
		return "none"
	}
}

// Word is the value returned by SelectWordAtCaret.
type Word struct {
	Kind WordKind
	Text string
}
