package engine

// Kind categorizes the cell an engine edits.
type Kind uint8

const (
	// KindInput is a code input cell. Only input cells match brackets.
	KindInput Kind = iota
	// KindComment is free text.
	KindComment
	// KindSection is a section heading.
	KindSection
	// KindTitle is a document title.
	KindTitle
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindComment:
		return "comment"
	case KindSection:
		return "section"
	case KindTitle:
		return "title"
	default:
		return "unknown"
	}
}

// ParseKind parses a kind name. Unknown names yield KindInput and false.
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "input", "":
		return KindInput, true
	case "comment":
		return KindComment, true
	case "section":
		return KindSection, true
	case "title":
		return KindTitle, true
	default:
		return KindInput, false
	}
}
