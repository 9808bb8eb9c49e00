package storage

import "errors"

var (
	// ErrNotFound is returned when no blob exists at the key.
	ErrNotFound = errors.New("blob not found")
	// ErrEmptyKey is returned for an empty key.
	ErrEmptyKey = errors.New("storage key must not be empty")
	// ErrInvalidKey is returned for absolute keys and keys containing "..".
	ErrInvalidKey = errors.New("storage key contains invalid path segment")
)

// IsKeyError reports whether err was caused by a malformed key rather than
// by the backend.
func IsKeyError(err error) bool {
	return errors.Is(err, ErrEmptyKey) || errors.Is(err, ErrInvalidKey)
}
