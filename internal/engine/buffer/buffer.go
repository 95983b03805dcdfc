package buffer

import (
	"errors"
	"io"
	"strings"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// Buffer owns the character sequence of a cell.
// Read queries (coordinate conversion, line extraction) come from the
// embedded text; writes go through Insert, Delete, Replace and ApplyEdit.
type Buffer struct {
	text
	revisionID RevisionID
}

// NewBuffer creates a new empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{
		revisionID: NewRevisionID(),
	}
}

// NewBufferFromString creates a buffer with initial content.
func NewBufferFromString(s string) *Buffer {
	b := NewBuffer()
	b.text = text(NormalizeLineEndings(s))
	return b
}

// NewBufferFromReader creates a buffer from an io.Reader.
func NewBufferFromReader(r io.Reader) (*Buffer, error) {
	// Read everything first; a CRLF pair may straddle read boundaries.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBufferFromString(string(data)), nil
}

// NormalizeLineEndings converts CRLF and CR line endings to the buffer
// separator.
func NormalizeLineEndings(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Write Operations

// Insert inserts s at the given offset.
// Returns the offset just past the inserted text.
func (b *Buffer) Insert(offset Offset, s string) (Offset, error) {
	if offset < 0 || offset > len(b.text) {
		return 0, ErrOffsetOutOfRange
	}
	return b.Replace(offset, offset, s)
}

// Delete removes text in the given range.
func (b *Buffer) Delete(start, end Offset) error {
	_, err := b.Replace(start, end, "")
	return err
}

// Replace replaces text in the given range with s.
// Returns the offset just past the replacement text.
func (b *Buffer) Replace(start, end Offset, s string) (Offset, error) {
	res, err := b.ApplyEdit(Edit{Range: Range{Start: start, End: end}, NewText: s})
	if err != nil {
		return 0, err
	}
	return res.NewRange.End, nil
}

// ApplyEdit applies a single edit to the buffer.
func (b *Buffer) ApplyEdit(edit Edit) (EditResult, error) {
	r := edit.Range
	if r.Start < 0 || r.Start > r.End || r.End > len(b.text) {
		return EditResult{}, ErrRangeInvalid
	}

	oldText := string(b.text[r.Start:r.End])
	ins := []rune(NormalizeLineEndings(edit.NewText))

	next := make(text, 0, len(b.text)-r.Len()+len(ins))
	next = append(next, b.text[:r.Start]...)
	next = append(next, ins...)
	next = append(next, b.text[r.End:]...)
	b.text = next

	if oldText != "" || len(ins) > 0 {
		b.revisionID = NewRevisionID()
	}

	return EditResult{
		OldRange: r,
		NewRange: Range{Start: r.Start, End: r.Start + len(ins)},
		OldText:  oldText,
		Delta:    len(ins) - r.Len(),
	}, nil
}

// Buffer State

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	return b.revisionID
}

// Snapshot returns a read-only copy of the current buffer state.
func (b *Buffer) Snapshot() *Snapshot {
	return &Snapshot{
		text:       append(text(nil), b.text...),
		revisionID: b.revisionID,
	}
}
