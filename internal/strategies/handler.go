package strategies

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/latinta/dashboard/pkg/handlers"
	"github.com/latinta/dashboard/pkg/routes"
)

// Handler provides HTTP endpoints for the strategy system prompt.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// SaveRequest carries the full strategy list, active and inactive.
type SaveRequest struct {
	Strategies json.RawMessage `json:"strategies"`
}

// NewHandler creates a Handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "strategies"),
	}
}

// Routes returns the route group definition for strategy endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/system-prompt",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Get},
			{Method: "POST", Pattern: "", Handler: h.Save},
			{Method: "DELETE", Pattern: "", Handler: h.Reset},
		},
	}
}

// Get returns the generated prompt with the active strategies. include=all
// lists inactive strategies as well so the dashboard can edit them.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.sys.Get(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	updated := time.Now().UTC()
	if snap.UpdatedAt != nil {
		updated = *snap.UpdatedAt
	}

	list := Active(snap.Strategies)
	if r.URL.Query().Get("include") == "all" {
		list = snap.Strategies
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"success":    true,
		"prompt":     Generate(snap.Strategies),
		"strategies": list,
		"updatedAt":  updated,
		"source":     h.sys.Source(),
	})
}

// Save replaces the whole strategy list.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidStrategies, err))
		return
	}

	raw := bytes.TrimSpace(req.Strategies)
	if len(raw) == 0 || raw[0] != '[' {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: se esperaba una lista", ErrInvalidStrategies))
		return
	}

	var list []Strategy
	if err := json.Unmarshal(raw, &list); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidStrategies, err))
		return
	}

	at, err := h.sys.Set(r.Context(), list)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Estrategias guardadas correctamente",
		"updatedAt": at,
		"source":    h.sys.Source(),
	})
}

// Reset restores the built-in strategy list.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.Reset(r.Context()); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Estrategias reseteadas",
		"source":  h.sys.Source(),
	})
}
