// Package docstore persists whole JSON documents addressed by (collection, id).
// Every write replaces the stored document; there is no history.
package docstore

import (
	"context"
	"errors"
	"time"
)

// MainID is the conventional id for single-document collections.
const MainID = "main"

// Backend names reported by System.Source.
const (
	SourceMemory   = "memory"
	SourcePostgres = "postgres"
)

// ErrNotFound indicates no document is stored under the requested address.
var ErrNotFound = errors.New("document not found")

// System reads and replaces JSON documents.
type System interface {
	// Get decodes the stored document into dest and returns its last write time.
	// Returns ErrNotFound when nothing has been stored.
	Get(ctx context.Context, collection, id string, dest any) (time.Time, error)
	// Put replaces the stored document with value and returns the write time.
	Put(ctx context.Context, collection, id string, value any) (time.Time, error)
	// Delete removes the stored document. Returns ErrNotFound when nothing is stored.
	Delete(ctx context.Context, collection, id string) error
	// Source names the backend ("memory" or "postgres").
	Source() string
}
