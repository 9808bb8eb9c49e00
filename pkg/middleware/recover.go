package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/latinta/dashboard/pkg/handlers"
)

// Recover returns middleware that converts a handler panic into a 500 JSON error.
// http.ErrAbortHandler is re-raised so the server can abort the connection.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				v := recover()
				if v == nil {
					return
				}
				if v == http.ErrAbortHandler {
					panic(v)
				}
				logger.Error("panic recovered", "uri", r.URL.RequestURI(), "stack", string(debug.Stack()))
				handlers.RespondError(w, logger, http.StatusInternalServerError, fmt.Errorf("internal error: %v", v))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
