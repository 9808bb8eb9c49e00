package database

import "errors"

// ErrNotReady wraps ping failures. Ready stays false until a ping succeeds.
var ErrNotReady = errors.New("database not ready")
