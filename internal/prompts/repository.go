package prompts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/latinta/dashboard/pkg/docstore"
)

const (
	collectionSections = "prompt_sections"
	collectionAgent    = "agent_config"
)

type repo struct {
	docs   docstore.System
	logger *slog.Logger
}

// New creates a prompt store over the given document store.
func New(docs docstore.System, logger *slog.Logger) System {
	return &repo{
		docs:   docs,
		logger: logger.With("system", "prompts"),
	}
}

func (r *repo) Handler(basePath string) *Handler {
	return NewHandler(r, r.logger, basePath)
}

func (r *repo) Source() string {
	return r.docs.Source()
}

func (r *repo) Get(ctx context.Context) (*Snapshot, error) {
	var s Sections
	at, err := r.docs.Get(ctx, collectionSections, docstore.MainID, &s)
	if errors.Is(err, docstore.ErrNotFound) {
		return &Snapshot{Sections: DefaultSections()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load prompt sections: %w", err)
	}
	return &Snapshot{Sections: s, UpdatedAt: &at}, nil
}

func (r *repo) Set(ctx context.Context, sections Sections) (time.Time, error) {
	at, err := r.docs.Put(ctx, collectionSections, docstore.MainID, sections)
	if err != nil {
		return time.Time{}, fmt.Errorf("save prompt sections: %w", err)
	}

	r.logger.Info("prompt sections saved", "source", r.docs.Source(), "length", len(Compile(sections)))
	return at, nil
}

func (r *repo) GetAgent(ctx context.Context) (*AgentSnapshot, error) {
	var c AgentConfig
	at, err := r.docs.Get(ctx, collectionAgent, docstore.MainID, &c)
	if errors.Is(err, docstore.ErrNotFound) {
		return &AgentSnapshot{Config: DefaultAgentConfig()}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load agent config: %w", err)
	}
	return &AgentSnapshot{Config: c, UpdatedAt: &at}, nil
}

func (r *repo) SetAgent(ctx context.Context, cfg AgentConfig) (time.Time, error) {
	if err := ValidateAgentConfig(cfg); err != nil {
		return time.Time{}, err
	}

	at, err := r.docs.Put(ctx, collectionAgent, docstore.MainID, cfg)
	if err != nil {
		return time.Time{}, fmt.Errorf("save agent config: %w", err)
	}

	r.logger.Info("agent config saved", "source", r.docs.Source(), "tools", len(cfg.Tools), "templates", len(cfg.Templates))
	return at, nil
}

func (r *repo) Reset(ctx context.Context) error {
	for _, c := range []string{collectionSections, collectionAgent} {
		err := r.docs.Delete(ctx, c, docstore.MainID)
		if err != nil && !errors.Is(err, docstore.ErrNotFound) {
			return fmt.Errorf("reset %s: %w", c, err)
		}
	}

	r.logger.Info("prompt reset to defaults", "source", r.docs.Source())
	return nil
}

// ValidateAgentConfig checks the fields the compiled prompt cannot do without.
func ValidateAgentConfig(c AgentConfig) error {
	switch {
	case strings.TrimSpace(c.BusinessName) == "":
		return fmt.Errorf("%w: falta businessName", ErrInvalidConfig)
	case c.MaxCharsPerMessage < 1:
		return fmt.Errorf("%w: maxCharsPerMessage debe ser positivo", ErrInvalidConfig)
	case c.MaxQuestionsPerMessage < 1:
		return fmt.Errorf("%w: maxQuestionsPerMessage debe ser positivo", ErrInvalidConfig)
	case len(c.Tools) > 26:
		return fmt.Errorf("%w: maximo 26 herramientas", ErrInvalidConfig)
	}
	for i, t := range c.Tools {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("%w: la herramienta %d no tiene nombre", ErrInvalidConfig, i+1)
		}
	}
	return nil
}
