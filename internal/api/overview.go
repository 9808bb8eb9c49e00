package api

import (
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/latinta/dashboard/internal/prices"
	"github.com/latinta/dashboard/internal/prompts"
	"github.com/latinta/dashboard/internal/strategies"
	"github.com/latinta/dashboard/pkg/handlers"
	"github.com/latinta/dashboard/pkg/routes"
)

type overviewHandler struct {
	domain *Domain
	logger *slog.Logger
}

func newOverviewHandler(domain *Domain, logger *slog.Logger) *overviewHandler {
	return &overviewHandler{
		domain: domain,
		logger: logger.With("handler", "overview"),
	}
}

func (h *overviewHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/overview",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.get},
		},
	}
}

type strategyCounts struct {
	Total     int        `json:"total"`
	Active    int        `json:"active"`
	UpdatedAt *time.Time `json:"updatedAt"`
	Source    string     `json:"source"`
}

type promptStatus struct {
	UpdatedAt *time.Time `json:"updatedAt"`
	Source    string     `json:"source"`
}

type bestMonth struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

type salesSummary struct {
	Period    string     `json:"period"`
	Revenue   int64      `json:"revenue"`
	BestMonth *bestMonth `json:"bestMonth"`
}

// get gathers the dashboard landing figures, loading the stores concurrently.
// Any store failure fails the whole response.
func (h *overviewHandler) get(w http.ResponseWriter, r *http.Request) {
	var (
		stats  *prices.Stats
		prompt *prompts.Snapshot
		strat  *strategies.Snapshot
	)

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() (err error) {
		stats, err = h.domain.Prices.Stats(ctx)
		return err
	})
	g.Go(func() (err error) {
		prompt, err = h.domain.Prompts.Get(ctx)
		return err
	})
	g.Go(func() (err error) {
		strat, err = h.domain.Strategies.Get(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		handlers.RespondError(w, h.logger, overviewStatus(err), err)
		return
	}

	dash := h.domain.Analytics.Dashboard()
	sales := salesSummary{Period: dash.Period, Revenue: dash.Revenue()}
	if m, ok := dash.BestMonth(); ok {
		sales.BestMonth = &bestMonth{Month: m.Month, Revenue: m.Revenue}
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"prices": map[string]any{
			"stats":  stats,
			"source": h.domain.Prices.Source(),
		},
		"prompt": promptStatus{
			UpdatedAt: prompt.UpdatedAt,
			Source:    h.domain.Prompts.Source(),
		},
		"strategies": strategyCounts{
			Total:     len(strat.Strategies),
			Active:    len(strategies.Active(strat.Strategies)),
			UpdatedAt: strat.UpdatedAt,
			Source:    h.domain.Strategies.Source(),
		},
		"sales":          sales,
		"improveMode":    h.domain.Improve.Mode(),
		"chatConfigured": h.domain.Chat.Configured(),
	})
}

// overviewStatus keeps the status each domain would have answered with.
func overviewStatus(err error) int {
	if s := prices.MapHTTPStatus(err); s != http.StatusInternalServerError {
		return s
	}
	if s := prompts.MapHTTPStatus(err); s != http.StatusInternalServerError {
		return s
	}
	return strategies.MapHTTPStatus(err)
}
