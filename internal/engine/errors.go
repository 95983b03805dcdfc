package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrReadOnly indicates a mutating intent was applied to a read-only engine.
	ErrReadOnly = errors.New("engine is read-only")
)
