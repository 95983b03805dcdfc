// Package bracket finds the partner of the bracket touching the caret.
//
// Recognized pairs are (), [] and {}. A caret "touches" a bracket when the
// bracket is the character at the caret offset or, failing that, the
// character just before it. The scan is a linear walk from the bracket
// toward its partner counting nesting depth; there is no precomputed index,
// since matching reruns only after an edit or caret move.
package bracket

import "fmt"

// Offset is a code point position in the scanned text.
type Offset = int

// Text is the read-only view of a buffer that matching needs.
// Both *buffer.Buffer and *buffer.Snapshot satisfy it.
type Text interface {
	Len() int
	RuneAt(offset Offset) (rune, bool)
}

// Match is the result of a bracket scan: either none or a pivot/partner pair.
// The zero value is none.
type Match struct {
	pivot   Offset
	partner Offset
	found   bool
}

// None is the empty match.
var None = Match{}

// NewMatch creates a match between pivot and partner.
// Equal offsets yield None.
func NewMatch(pivot, partner Offset) Match {
	if pivot == partner {
		return None
	}
	return Match{pivot: pivot, partner: partner, found: true}
}

// Found returns true if a balanced partner was found.
func (m Match) Found() bool {
	return m.found
}

// Pivot returns the offset of the bracket touching the caret.
func (m Match) Pivot() Offset {
	return m.pivot
}

// Partner returns the offset of the complementary bracket.
func (m Match) Partner() Offset {
	return m.partner
}

// Low returns the smaller of the two offsets.
func (m Match) Low() Offset {
	return min(m.pivot, m.partner)
}

// High returns the larger of the two offsets.
func (m Match) High() Offset {
	return max(m.pivot, m.partner)
}

// String returns a string representation of the match.
func (m Match) String() string {
	if !m.found {
		return "Match(none)"
	}
	return fmt.Sprintf("Match(%d↔%d)", m.pivot, m.partner)
}

// IsBracket reports whether r is one of ([{}]).
func IsBracket(r rune) bool {
	_, _, ok := complement(r)
	return ok
}

// IsOpen reports whether r is an opening bracket.
func IsOpen(r rune) bool {
	_, forward, ok := complement(r)
	return ok && forward
}

// IsClose reports whether r is a closing bracket.
func IsClose(r rune) bool {
	_, forward, ok := complement(r)
	return ok && !forward
}

// Complement returns the partner character of a bracket.
func Complement(r rune) (rune, bool) {
	c, _, ok := complement(r)
	return c, ok
}

// Pair returns the opening and closing characters of the pair r belongs to.
func Pair(r rune) (open, close rune, ok bool) {
	c, forward, ok := complement(r)
	if !ok {
		return 0, 0, false
	}
	if forward {
		return r, c, true
	}
	return c, r, true
}

// complement returns the matching bracket, the scan direction, and whether
// r is a bracket at all.
func complement(r rune) (rune, bool, bool) {
	switch r {
	case '(':
		return ')', true, true
	case ')':
		return '(', false, true
	case '[':
		return ']', true, true
	case ']':
		return '[', false, true
	case '{':
		return '}', true, true
	case '}':
		return '{', false, true
	}
	return 0, false, false
}

// Find looks for the bracket touching offset and scans for its partner.
// The character at offset is tried first, then the one at offset-1, exactly
// once. Running off either end of the text yields None.
func Find(t Text, offset Offset) Match {
	pivot := offset
	first, ok := bracketAt(t, pivot)
	if !ok {
		pivot--
		if first, ok = bracketAt(t, pivot); !ok {
			return None
		}
	}

	second, forward, _ := complement(first)
	dir := 1
	if !forward {
		dir = -1
	}

	depth := 1
	for pos := pivot + dir; pos >= 0 && pos < t.Len(); pos += dir {
		r, _ := t.RuneAt(pos)
		switch r {
		case second:
			depth--
		case first:
			depth++
		}
		if depth == 0 {
			return NewMatch(pivot, pos)
		}
	}

	return None
}

func bracketAt(t Text, offset Offset) (rune, bool) {
	r, ok := t.RuneAt(offset)
	if !ok || !IsBracket(r) {
		return 0, false
	}
	return r, true
}
