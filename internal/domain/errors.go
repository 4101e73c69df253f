package domain

import "errors"

// Common domain errors
var (
	ErrNotFound = errors.New("resource not found")
	// ErrStaleState is returned by conditional writes whose guard no longer holds.
	ErrStaleState = errors.New("resource state changed")
)
