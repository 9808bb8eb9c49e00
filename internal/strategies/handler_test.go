package strategies_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/latinta/dashboard/internal/strategies"
	"github.com/latinta/dashboard/pkg/docstore"
)

type mockSystem struct {
	getFn func(ctx context.Context) (*strategies.Snapshot, error)
	setFn   func(ctx context.Context, list []strategies.Strategy) (time.Time, error)
	resetFn func(ctx context.Context) error
}

func (m *mockSystem) Handler() *strategies.Handler {
	return strategies.NewHandler(m, discard())
}

func (m *mockSystem) Source() string { return docstore.SourceMemory }

func (m *mockSystem) Get(ctx context.Context) (*strategies.Snapshot, error) {
	return m.getFn(ctx)
}

func (m *mockSystem) Set(ctx context.Context, list []strategies.Strategy) (time.Time, error) {
	return m.setFn(ctx, list)
}

func (m *mockSystem) Reset(ctx context.Context) error {
	return m.resetFn(ctx)
}

func setupMux(h *strategies.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

type getResponse struct {
	Success    bool                  `json:"success"`
	Prompt     string                `json:"prompt"`
	Strategies []strategies.Strategy `json:"strategies"`
	UpdatedAt  time.Time             `json:"updatedAt"`
	Source     string                `json:"source"`
}

func TestHandlerGet(t *testing.T) {
	list := []strategies.Strategy{sample("a", true), sample("b", false)}
	mock := &mockSystem{
		getFn: func(ctx context.Context) (*strategies.Snapshot, error) {
			return &strategies.Snapshot{Strategies: list}, nil
		},
	}
	mux := setupMux(mock.Handler())

	t.Run("active only", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("GET", "/system-prompt", nil))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var res getResponse
		if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if !res.Success || res.Source != docstore.SourceMemory {
			t.Errorf("response = %+v", res)
		}
		if len(res.Strategies) != 1 || res.Strategies[0].ID != "a" {
			t.Errorf("strategies = %+v", res.Strategies)
		}
		if res.Prompt != strategies.Generate(list) {
			t.Error("prompt does not match generated text")
		}
		if res.UpdatedAt.IsZero() {
			t.Error("updatedAt should default to now")
		}
	})

	t.Run("include all", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest("GET", "/system-prompt?include=all", nil))

		var res getResponse
		if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(res.Strategies) != 2 {
			t.Errorf("strategies = %d, want 2", len(res.Strategies))
		}
	})
}

func TestHandlerGetError(t *testing.T) {
	mock := &mockSystem{
		getFn: func(ctx context.Context) (*strategies.Snapshot, error) {
			return nil, errors.New("db down")
		},
	}

	rec := httptest.NewRecorder()
	setupMux(mock.Handler()).ServeHTTP(rec, httptest.NewRequest("GET", "/system-prompt", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestHandlerSave(t *testing.T) {
	var saved []strategies.Strategy
	mock := &mockSystem{
		setFn: func(ctx context.Context, list []strategies.Strategy) (time.Time, error) {
			saved = list
			return time.Now(), nil
		},
	}
	mux := setupMux(mock.Handler())

	body := `{"strategies":[{"id":"a","title":"A","icon":"🎨","color":"green","description":"d","example":{"cliente":"c","agente":"g"},"isActive":false}]}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("POST", "/system-prompt", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if len(saved) != 1 || saved[0].Example.Agente != "g" || saved[0].IsActive {
		t.Errorf("saved = %+v", saved)
	}

	var res map[string]any
	json.NewDecoder(rec.Body).Decode(&res)
	if res["success"] != true || res["source"] != docstore.SourceMemory {
		t.Errorf("response = %v", res)
	}
}

func TestHandlerSaveInvalid(t *testing.T) {
	mock := &mockSystem{
		setFn: func(ctx context.Context, list []strategies.Strategy) (time.Time, error) {
			return time.Time{}, strategies.Validate(list)
		},
	}
	mux := setupMux(mock.Handler())

	tests := []struct {
		name string
		body string
	}{
		{"not json", `nope`},
		{"missing strategies", `{}`},
		{"strategies object", `{"strategies":{"id":"a"}}`},
		{"strategies null", `{"strategies":null}`},
		{"duplicate ids", `{"strategies":[{"id":"a"},{"id":"a"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest("POST", "/system-prompt", strings.NewReader(tt.body)))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestHandlerReset(t *testing.T) {
	mock := &mockSystem{
		resetFn: func(ctx context.Context) error { return nil },
	}

	rec := httptest.NewRecorder()
	setupMux(mock.Handler()).ServeHTTP(rec, httptest.NewRequest("DELETE", "/system-prompt", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
