// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"net/http"

	"github.com/latinta/dashboard/internal/config"
	"github.com/latinta/dashboard/internal/infrastructure"
	"github.com/latinta/dashboard/pkg/middleware"
	"github.com/latinta/dashboard/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime, err := NewRuntime(cfg, infra)
	if err != nil {
		return nil, err
	}
	domain := NewDomain(cfg, runtime)

	mux := http.NewServeMux()
	registerRoutes(mux, domain, cfg, runtime)

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.Recover(runtime.Logger))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.CORS(&cfg.API.CORS))

	return m, nil
}
