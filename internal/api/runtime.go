package api

import (
	"fmt"

	"github.com/latinta/dashboard/internal/config"
	"github.com/latinta/dashboard/internal/improve"
	"github.com/latinta/dashboard/internal/infrastructure"
)

// Runtime extends Infrastructure with API-specific dependencies.
// Generator is nil when no Gemini key is configured.
type Runtime struct {
	*infrastructure.Infrastructure
	Generator improve.Generator
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) (*Runtime, error) {
	rt := &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
			Docstore:  infra.Docstore,
		},
	}

	if cfg.Gemini.Live() {
		gen, err := improve.NewGemini(infra.Lifecycle.Context(), improve.GeminiConfig{
			APIKey:          cfg.Gemini.APIKey,
			Model:           cfg.Gemini.Model,
			MaxOutputTokens: cfg.Gemini.MaxOutputTokens,
		})
		if err != nil {
			return nil, fmt.Errorf("gemini init failed: %w", err)
		}
		rt.Generator = gen
	}

	return rt, nil
}
