package improve

import "context"

// System defines the public contract for the text improvement proxy.
type System interface {
	Handler() *Handler

	// Mode reports whether requests reach the model or are simulated.
	Mode() Mode

	Improve(ctx context.Context, cmd Command) (*Result, error)
}
