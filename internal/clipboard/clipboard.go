// Package clipboard provides clipboard backends for the edit engine.
//
// The System backend talks to the operating system clipboard. The Memory
// backend keeps text in process and is used in tests and on systems with
// no clipboard utility available.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// Errors returned when selecting a backend.
var (
	ErrUnavailable    = errors.New("system clipboard unavailable")
	ErrUnknownBackend = errors.New("unknown clipboard backend")
)

// Backend names accepted by New.
const (
	BackendSystem = "system"
	BackendMemory = "memory"
)

// Logger receives clipboard failures.
type Logger interface {
	Debug(msg string, args ...any)
}

// Clipboard is the interface satisfied by every backend.
type Clipboard interface {
	Text() (string, bool)
	SetText(text string) bool
}

// New returns the backend with the given name.
// ErrUnavailable is returned for "system" when the platform has no
// clipboard support.
func New(backend string, l Logger) (Clipboard, error) {
	switch backend {
	case BackendSystem, "":
		if clipboard.Unsupported {
			return nil, ErrUnavailable
		}
		return NewSystem(l), nil
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Memory is an in-process clipboard.
type Memory struct {
	text string
}

// NewMemory creates an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Text returns the stored text, or false if it is empty.
func (m *Memory) Text() (string, bool) {
	if m.text == "" {
		return "", false
	}
	return m.text, true
}

// SetText stores text. It always succeeds.
func (m *Memory) SetText(text string) bool {
	m.text = text
	return true
}

// System is the operating system clipboard.
type System struct {
	logger Logger
	read   func() (string, error)
	write  func(string) error
}

// NewSystem creates a System clipboard. Failures are reported to l, which
// may be nil.
func NewSystem(l Logger) *System {
	return &System{
		logger: l,
		read:   clipboard.ReadAll,
		write:  clipboard.WriteAll,
	}
}

// Text reads the system clipboard. A read failure or an empty clipboard
// both yield false.
func (s *System) Text() (string, bool) {
	text, err := s.read()
	if err != nil {
		s.debug("clipboard read failed: %v", err)
		return "", false
	}
	return text, text != ""
}

// SetText writes the system clipboard and reports success.
func (s *System) SetText(text string) bool {
	if err := s.write(text); err != nil {
		s.debug("clipboard write failed: %v", err)
		return false
	}
	return true
}

func (s *System) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
