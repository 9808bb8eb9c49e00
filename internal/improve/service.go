package improve

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/latinta/dashboard/pkg/formatting"
)

type service struct {
	gen     Generator
	timeout time.Duration
	logger  *slog.Logger
}

// New creates the improvement proxy. A nil Generator selects simulated mode.
// A positive timeout bounds each model call.
func New(gen Generator, timeout time.Duration, logger *slog.Logger) System {
	s := &service{
		gen:     gen,
		timeout: timeout,
		logger:  logger.With("system", "improve"),
	}
	s.logger.Info("improve proxy ready", "mode", s.Mode())
	return s
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *service) Mode() Mode {
	if s.gen == nil {
		return ModeSimulated
	}
	return ModeLive
}

func (s *service) Improve(ctx context.Context, cmd Command) (*Result, error) {
	if strings.TrimSpace(cmd.CurrentText) == "" || strings.TrimSpace(cmd.Instruction) == "" {
		return nil, ErrMissingParams
	}

	if s.gen == nil {
		return &Result{ImprovedText: Simulate(cmd), Mode: ModeSimulated}, nil
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	out, err := s.gen.Generate(ctx, BuildPrompt(cmd))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	text := formatting.StripCodeFences(out)
	if text == "" {
		return nil, ErrEmpty
	}

	s.logger.Info("section improved",
		"section", cmd.SectionType,
		"chars_in", len(cmd.CurrentText),
		"chars_out", len(text),
		"duration", time.Since(start),
	)
	return &Result{ImprovedText: text, Mode: ModeLive}, nil
}
