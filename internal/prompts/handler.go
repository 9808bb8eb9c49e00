package prompts

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/latinta/dashboard/pkg/handlers"
	"github.com/latinta/dashboard/pkg/routes"
)

// Handler provides HTTP endpoints for the prompt store.
type Handler struct {
	sys      System
	logger   *slog.Logger
	basePath string
}

// SaveRequest carries either the playground sections or an agent configuration.
type SaveRequest struct {
	Sections json.RawMessage `json:"sections"`
	Config   *AgentConfig    `json:"config"`
}

// NewHandler creates a Handler. basePath is the API prefix used to build the
// raw-prompt endpoint returned after a save.
func NewHandler(sys System, logger *slog.Logger, basePath string) *Handler {
	return &Handler{
		sys:      sys,
		logger:   logger.With("handler", "prompts"),
		basePath: basePath,
	}
}

// Routes returns the route group definition for prompt endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/prompt",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Get},
			{Method: "POST", Pattern: "", Handler: h.Save},
			{Method: "DELETE", Pattern: "", Handler: h.Reset},
			{Method: "GET", Pattern: "/agent", Handler: h.Agent},
		},
	}
}

// Get returns the compiled prompt. format=raw answers with plain text for the
// automation consumer, format=sections with the sections only, and anything
// else with the text, sections and metadata together.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	snap, err := h.sys.Get(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	switch r.URL.Query().Get("format") {
	case "raw":
		handlers.RespondText(w, http.StatusOK, Compile(snap.Sections))
	case "sections":
		handlers.RespondJSON(w, http.StatusOK, map[string]any{
			"success":   true,
			"sections":  snap.Sections,
			"updatedAt": snap.UpdatedAt,
			"source":    h.sys.Source(),
		})
	default:
		handlers.RespondJSON(w, http.StatusOK, map[string]any{
			"success":      true,
			"systemPrompt": Compile(snap.Sections),
			"sections":     snap.Sections,
			"updatedAt":    snap.UpdatedAt,
			"metadata":     DefaultMetadata,
			"source":       h.sys.Source(),
		})
	}
}

// Save replaces the stored sections, or the agent configuration when the
// body carries config instead of sections.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidSections, err))
		return
	}

	if len(req.Sections) == 0 && req.Config != nil {
		h.saveAgent(w, r, *req.Config)
		return
	}

	sections, err := ParseSections(req.Sections)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	at, err := h.sys.Set(r.Context(), sections)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Prompt guardado correctamente",
		"updatedAt": at,
		"endpoint":  h.basePath + "/prompt?format=raw",
		"source":    h.sys.Source(),
	})
}

func (h *Handler) saveAgent(w http.ResponseWriter, r *http.Request, cfg AgentConfig) {
	at, err := h.sys.SetAgent(r.Context(), cfg)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Configuracion del agente guardada correctamente",
		"updatedAt": at,
		"endpoint":  h.basePath + "/prompt/agent?format=raw",
		"source":    h.sys.Source(),
	})
}

// Agent returns the prompt compiled from the structured agent configuration.
func (h *Handler) Agent(w http.ResponseWriter, r *http.Request) {
	snap, err := h.sys.GetAgent(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if r.URL.Query().Get("format") == "raw" {
		handlers.RespondText(w, http.StatusOK, CompileAgent(snap.Config))
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"config":       snap.Config,
		"systemPrompt": CompileAgent(snap.Config),
		"updatedAt":    snap.UpdatedAt,
		"source":       h.sys.Source(),
	})
}

// Reset restores the built-in sections and agent configuration.
func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.sys.Reset(r.Context()); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Prompt reseteado",
		"source":  h.sys.Source(),
	})
}
