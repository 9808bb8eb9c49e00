package strategies

import (
	"context"
	"time"
)

// System defines the public contract for the strategy store.
// An empty store serves the built-in seed list.
type System interface {
	Handler() *Handler

	// Source names the document backend ("memory" or "postgres").
	Source() string

	Get(ctx context.Context) (*Snapshot, error)
	Set(ctx context.Context, list []Strategy) (time.Time, error)

	// Reset drops the stored list so the seed list is served again.
	Reset(ctx context.Context) error
}
