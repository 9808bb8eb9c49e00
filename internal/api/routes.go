package api

import (
	"net/http"

	"github.com/latinta/dashboard/internal/config"
	"github.com/latinta/dashboard/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	patterns := routes.Register(
		mux,
		domain.Prices.Handler(cfg.API.MaxUploadSizeBytes(), cfg.Prices.ExportName).Routes(),
		domain.Prompts.Handler(cfg.API.BasePath).Routes(),
		domain.Strategies.Handler().Routes(),
		domain.Improve.Handler().Routes(),
		domain.Chat.Handler().Routes(),
		domain.Analytics.Handler().Routes(),
		newOverviewHandler(domain, runtime.Logger).routes(),
	)
	runtime.Logger.Debug("api routes registered", "base", cfg.API.BasePath, "routes", patterns)
}
