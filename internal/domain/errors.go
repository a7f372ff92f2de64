package domain

import "errors"

// Sentinel errors the store implementations translate driver failures
// into. Anything else coming out of a store is passed through unchanged.
var (
	// ErrNotFound marks a lookup that matched no row.
	ErrNotFound = errors.New("not found")
	// ErrDuplicate marks a write rejected by a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate key")
)
