package chat

import "context"

// System defines the public contract for the chat relay.
type System interface {
	Handler() *Handler

	// Configured reports whether a webhook URL is set.
	Configured() bool

	Send(ctx context.Context, msg Message) (*Reply, error)
}
