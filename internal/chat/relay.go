package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/latinta/dashboard/pkg/formatting"
)

const maxReplyBytes = 1 << 20

type relay struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// New creates the relay. An empty url leaves it unconfigured and every Send
// fails with ErrNotConfigured.
func New(url string, timeout time.Duration, logger *slog.Logger) System {
	return &relay{
		url:    url,
		client: &http.Client{Timeout: timeout},
		logger: logger.With("system", "chat"),
	}
}

func (r *relay) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *relay) Configured() bool {
	return r.url != ""
}

func (r *relay) Send(ctx context.Context, msg Message) (*Reply, error) {
	if !r.Configured() {
		return nil, ErrNotConfigured
	}
	if strings.TrimSpace(msg.Message) == "" {
		return nil, ErrInvalidMessage
	}
	if msg.ConversationID == "" {
		msg.ConversationID = uuid.NewString()
	}

	body, err := json.Marshal(payload{Message: msg, Timestamp: time.Now().UTC()})
	if err != nil {
		return nil, fmt.Errorf("encode message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxReplyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}

	reply := &Reply{
		Response:       replyText(raw),
		Status:         resp.StatusCode,
		ConversationID: msg.ConversationID,
	}

	r.logger.Info("chat relayed",
		"conversation_id", msg.ConversationID,
		"status", resp.StatusCode,
		"reply_bytes", len(raw),
	)
	return reply, nil
}

// replyText prefers the webhook's "response" field and falls back to the raw body.
func replyText(raw []byte) string {
	type answer struct {
		Response string `json:"response"`
	}

	if a, err := formatting.Parse[answer](string(raw)); err == nil && a.Response != "" {
		return a.Response
	}
	return strings.TrimSpace(string(raw))
}
