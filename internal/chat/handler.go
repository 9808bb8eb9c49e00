package chat

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/latinta/dashboard/pkg/handlers"
	"github.com/latinta/dashboard/pkg/routes"
)

// Handler provides the HTTP endpoint for the chat tester.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "chat"),
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/chat",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Send},
		},
	}
}

// Send relays the message. A webhook error status still returns 200 with
// success false so the tester can show what the workflow answered.
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	var msg Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidMessage, err))
		return
	}

	reply, err := h.sys.Send(r.Context(), msg)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]any{
		"success":        reply.OK(),
		"response":       reply.Response,
		"status":         reply.Status,
		"conversationId": reply.ConversationID,
	})
}
