package engine

import (
	"io"
	"strings"

	"github.com/dshills/celledit/internal/engine/bracket"
	"github.com/dshills/celledit/internal/engine/buffer"
	"github.com/dshills/celledit/internal/engine/cursor"
)

// Re-export commonly used types for convenience.
type (
	Offset     = buffer.Offset
	Coordinate = buffer.Coordinate
	Range      = buffer.Range
	RevisionID = buffer.RevisionID
	Snapshot   = buffer.Snapshot
	Selection  = cursor.Selection
	Direction  = cursor.Direction
	Match      = bracket.Match
)

// Logger receives diagnostic messages from the engine.
type Logger interface {
	Debug(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}

// Engine is the edit engine of a single multi-line text cell. It owns the
// text buffer, the caret, the selection, the current bracket match and the
// dirty flag, and applies editing intents to them.
//
// An Engine is not safe for concurrent use. Intents are expected to arrive
// one at a time from a single event loop.
type Engine struct {
	buf   *buffer.Buffer
	caret cursor.Caret
	sel   cursor.Selection
	match bracket.Match
	dirty bool

	kind          Kind
	tabWidth      int
	autoPair      bool
	matchBrackets bool
	terminators   []rune
	readOnly      bool
	clipboard     Clipboard
	logger        Logger

	initContent string
}

// New creates a new Engine with the given options. The caret starts at
// offset 0 and the dirty flag starts set so the first layout runs.
func New(opts ...Option) *Engine {
	e := &Engine{
		kind:          KindInput,
		tabWidth:      DefaultTabWidth,
		autoPair:      true,
		matchBrackets: true,
		terminators:   []rune(DefaultTerminators),
		logger:        nopLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}

	e.buf = buffer.NewBufferFromString(e.initContent)
	e.initContent = ""
	e.dirty = true
	e.rematch()
	return e
}

// NewFromReader creates a new Engine with content read from r.
func NewFromReader(r io.Reader, opts ...Option) (*Engine, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	opts = append([]Option{WithContent(string(data))}, opts...)
	return New(opts...), nil
}

// Configure applies options to an existing engine and re-runs the bracket
// matcher. WithContent is ignored.
func (e *Engine) Configure(opts ...Option) {
	for _, opt := range opts {
		opt(e)
	}
	e.initContent = ""
	e.rematch()
}

// Read Operations

// Text returns the entire buffer content.
func (e *Engine) Text() string {
	return e.buf.Text()
}

// Len returns the buffer length in code points.
func (e *Engine) Len() int {
	return e.buf.Len()
}

// LineCount returns the number of lines.
func (e *Engine) LineCount() int {
	return e.buf.LineCount()
}

// LineText returns the text of a line without its separator.
func (e *Engine) LineText(line int) string {
	return e.buf.LineText(line)
}

// LineSlice returns columns [startColumn, endColumn) of a line.
// An endColumn of buffer.ToLineEnd extends to the end of the line.
func (e *Engine) LineSlice(line, startColumn, endColumn int) string {
	return e.buf.LineSlice(line, startColumn, endColumn)
}

// CoordinateToOffset converts a line/column coordinate to an offset.
func (e *Engine) CoordinateToOffset(c Coordinate) Offset {
	return e.buf.CoordinateToOffset(c)
}

// OffsetToCoordinate converts an offset to a line/column coordinate.
func (e *Engine) OffsetToCoordinate(offset Offset) Coordinate {
	return e.buf.OffsetToCoordinate(offset)
}

// Snapshot returns a read-only copy of the buffer.
func (e *Engine) Snapshot() *Snapshot {
	return e.buf.Snapshot()
}

// RevisionID returns the buffer revision.
func (e *Engine) RevisionID() RevisionID {
	return e.buf.RevisionID()
}

// Caret returns the caret offset.
func (e *Engine) Caret() Offset {
	return e.caret.Offset()
}

// CaretCoordinate returns the caret position as a line/column coordinate.
func (e *Engine) CaretCoordinate() Coordinate {
	return e.caret.Coordinate(e.buf)
}

// Selection returns the current selection.
func (e *Engine) Selection() Selection {
	return e.sel
}

// HasSelection returns true if a non-empty selection exists.
func (e *Engine) HasSelection() bool {
	return e.sel.IsSet()
}

// SelectedText returns the selected text, or false when nothing is selected.
func (e *Engine) SelectedText() (string, bool) {
	if !e.sel.IsSet() {
		return "", false
	}
	r := e.sel.Range()
	return e.buf.Slice(r.Start, r.End), true
}

// SelectionOrText returns the selected text, or the whole buffer when
// nothing is selected.
func (e *Engine) SelectionOrText() string {
	if s, ok := e.SelectedText(); ok {
		return s
	}
	return e.buf.Text()
}

// Match returns the current bracket match.
func (e *Engine) Match() Match {
	return e.match
}

// Kind returns the cell kind.
func (e *Engine) Kind() Kind {
	return e.kind
}

// TabWidth returns the indentation stop.
func (e *Engine) TabWidth() int {
	return e.tabWidth
}

// IsReadOnly returns true if mutating intents are rejected.
func (e *Engine) IsReadOnly() bool {
	return e.readOnly
}

// IsDirty returns true if the content changed since the last layout.
func (e *Engine) IsDirty() bool {
	return e.dirty
}

// ClearDirty clears the dirty flag. Only the layout pass calls this.
func (e *Engine) ClearDirty() {
	e.dirty = false
}

// State is a point-in-time view of everything a renderer needs.
type State struct {
	Text      *Snapshot
	Caret     Offset
	Selection Selection
	Match     Match
	Kind      Kind
	Dirty     bool
}

// State returns a snapshot of the engine state.
func (e *Engine) State() State {
	return State{
		Text:      e.buf.Snapshot(),
		Caret:     e.caret.Offset(),
		Selection: e.sel,
		Match:     e.match,
		Kind:      e.kind,
		Dirty:     e.dirty,
	}
}

// ResetMarks clears the selection and the bracket match. It is called when
// the cell is deactivated.
func (e *Engine) ResetMarks() Result {
	before := e.capture()
	e.sel = cursor.NoSelection
	e.match = bracket.None
	return e.report(before, true)
}

// SetContent replaces the whole buffer. The caret moves to offset 0 and the
// selection is cleared.
func (e *Engine) SetContent(content string) Result {
	if e.readOnly {
		return Result{Err: ErrReadOnly}
	}
	before := e.capture()
	_ = e.buf.Delete(0, e.buf.Len())
	_, _ = e.buf.Insert(0, content)
	e.caret = cursor.NewCaret(0)
	e.sel = cursor.NoSelection
	return e.finish(before, true)
}

// Apply applies an intent and reports what changed.
func (e *Engine) Apply(in Intent) Result {
	r := in.apply(e)
	if r.Err != nil {
		e.logger.Debug("intent %s rejected: %v", in, r.Err)
	} else if r.Applied {
		e.logger.Debug("intent %s applied: content=%t caret=%t selection=%t",
			in, r.ContentChanged, r.CaretMoved, r.SelectionChanged)
	}
	return r
}

// Internal state bookkeeping

type marks struct {
	rev   RevisionID
	caret Offset
	sel   Selection
}

func (e *Engine) capture() marks {
	return marks{rev: e.buf.RevisionID(), caret: e.caret.Offset(), sel: e.sel}
}

// finish re-runs the bracket matcher and reports the difference against
// before. The dirty flag is raised when the content changed.
func (e *Engine) finish(before marks, applied bool) Result {
	e.rematch()
	return e.report(before, applied)
}

func (e *Engine) report(before marks, applied bool) Result {
	r := Result{
		Applied:          applied,
		ContentChanged:   e.buf.RevisionID() != before.rev,
		CaretMoved:       e.caret.Offset() != before.caret,
		SelectionChanged: !e.sel.Equals(before.sel),
	}
	if r.ContentChanged {
		e.dirty = true
	}
	return r
}

func (e *Engine) rematch() {
	if !e.matchBrackets || e.kind != KindInput {
		e.match = bracket.None
		return
	}
	e.match = bracket.Find(e.buf, e.caret.Offset())
}

// replace performs a single edit over r and leaves the caret at caret.
// Ranges passed here always come from clamped engine state.
func (e *Engine) replace(r Range, s string, caret Offset) {
	if _, err := e.buf.Replace(r.Start, r.End, s); err != nil {
		e.logger.Debug("edit %v rejected: %v", r, err)
		return
	}
	e.caret = cursor.NewCaret(caret).Clamp(e.buf.Len())
}

// target returns the range an insertion replaces: the selection when one
// exists, or the empty range at the caret.
func (e *Engine) target() Range {
	if e.sel.IsSet() {
		return e.sel.Range()
	}
	c := e.caret.Offset()
	return Range{Start: c, End: c}
}

func runeLen(s string) int {
	return len([]rune(buffer.NormalizeLineEndings(s)))
}

func (e *Engine) isTerminator(r rune) bool {
	return strings.ContainsRune(string(e.terminators), r)
}
