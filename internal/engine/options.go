package engine

// Default configuration values.
const (
	DefaultTabWidth    = 4
	DefaultTerminators = ";$"
)

// Option configures an Engine during creation or through Configure.
type Option func(*Engine)

// WithContent sets the initial content of the engine.
// It has no effect when passed to Configure.
func WithContent(content string) Option {
	return func(e *Engine) {
		e.initContent = content
	}
}

// WithTabWidth sets the indentation stop used by IndentTab.
func WithTabWidth(width int) Option {
	return func(e *Engine) {
		if width > 0 {
			e.tabWidth = width
		}
	}
}

// WithAutoPair controls whether typing an opening bracket also inserts its
// closing partner.
func WithAutoPair(enabled bool) Option {
	return func(e *Engine) {
		e.autoPair = enabled
	}
}

// WithBracketMatching controls whether the bracket match is computed after
// each intent. Matching only ever runs for KindInput cells.
func WithBracketMatching(enabled bool) Option {
	return func(e *Engine) {
		e.matchBrackets = enabled
	}
}

// WithKind sets the cell kind.
func WithKind(kind Kind) Option {
	return func(e *Engine) {
		e.kind = kind
	}
}

// WithTerminators sets the characters accepted as statement terminators by
// EnsureStatementTerminator. The first one is appended when none is present.
func WithTerminators(terminators string) Option {
	return func(e *Engine) {
		if terminators != "" {
			e.terminators = []rune(terminators)
		}
	}
}

// WithClipboard sets the clipboard used by Copy, Cut and PasteFromClipboard.
func WithClipboard(cb Clipboard) Option {
	return func(e *Engine) {
		e.clipboard = cb
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithReadOnly creates a read-only engine.
// Mutating intents will return ErrReadOnly.
func WithReadOnly() Option {
	return func(e *Engine) {
		e.readOnly = true
	}
}
