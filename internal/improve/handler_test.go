package improve_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/latinta/dashboard/internal/improve"
)

func setupMux(h *improve.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	group := h.Routes()
	for _, route := range group.Routes {
		pattern := route.Method + " " + group.Prefix + route.Pattern
		mux.HandleFunc(pattern, route.Handler)
	}
	return mux
}

func TestHandlerImprove(t *testing.T) {
	mux := setupMux(improve.New(nil, 0, discard()).Handler())

	body := `{"currentText":"Hola! te cuento","instruction":"formal","sectionType":"tone"}`
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("POST", "/improve", strings.NewReader(body)))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var res struct {
		Success      bool   `json:"success"`
		ImprovedText string `json:"improvedText"`
		Mode         string `json:"mode"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !res.Success || res.Mode != "simulated" || res.ImprovedText != "Estimado cliente, le informamos" {
		t.Errorf("response = %+v", res)
	}
}

func TestHandlerImproveErrors(t *testing.T) {
	tests := []struct {
		name       string
		gen        improve.Generator
		body       string
		wantStatus int
	}{
		{"invalid json", nil, `{`, http.StatusBadRequest},
		{"missing text", nil, `{"instruction":"formal"}`, http.StatusBadRequest},
		{"upstream failure", &fakeGenerator{err: errors.New("down")}, `{"currentText":"a","instruction":"b"}`, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := setupMux(improve.New(tt.gen, 0, discard()).Handler())

			rec := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/improve", strings.NewReader(tt.body)).WithContext(context.Background())
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}
