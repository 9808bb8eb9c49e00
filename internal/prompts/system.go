package prompts

import (
	"context"
	"time"
)

// System defines the public contract for the prompt store.
// Reads never fail on an empty store: the built-in defaults are served instead.
type System interface {
	Handler(basePath string) *Handler

	// Source names the document backend ("memory" or "postgres").
	Source() string

	Get(ctx context.Context) (*Snapshot, error)
	Set(ctx context.Context, sections Sections) (time.Time, error)
	GetAgent(ctx context.Context) (*AgentSnapshot, error)
	SetAgent(ctx context.Context, cfg AgentConfig) (time.Time, error)

	// Reset drops the stored sections and agent configuration so the
	// defaults are served again.
	Reset(ctx context.Context) error
}
