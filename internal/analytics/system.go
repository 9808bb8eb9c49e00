package analytics

import "log/slog"

// System exposes the dashboard data set.
type System interface {
	Handler() *Handler
	Dashboard() *Dashboard
}

type service struct {
	data   *Dashboard
	logger *slog.Logger
}

// New creates the analytics system over the built-in data set.
func New(logger *slog.Logger) System {
	return &service{
		data:   seed(),
		logger: logger.With("system", "analytics"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

// Dashboard returns a copy callers may modify freely.
func (s *service) Dashboard() *Dashboard {
	return s.data.clone()
}
