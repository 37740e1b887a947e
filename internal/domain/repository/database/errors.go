package database

import "errors"

var (
	// ErrNotFound is returned when no document matches the given id.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidDocument is returned when the store's schema validator rejects a write.
	ErrInvalidDocument = errors.New("document failed validation")
)
