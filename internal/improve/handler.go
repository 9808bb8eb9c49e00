package improve

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/latinta/dashboard/pkg/handlers"
	"github.com/latinta/dashboard/pkg/routes"
)

// Handler provides the HTTP endpoint for section rewrites.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "improve"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/improve",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Improve},
		},
	}
}

func (h *Handler) Improve(w http.ResponseWriter, r *http.Request) {
	var cmd Command
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrMissingParams, err))
		return
	}

	res, err := h.sys.Improve(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"improvedText": res.ImprovedText,
		"mode":         res.Mode,
	})
}
