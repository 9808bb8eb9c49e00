// Package middleware holds the HTTP wrappers shared by mounted modules.
package middleware

import (
	"net/http"
	"slices"
)

// System collects middleware. The first one added is the outermost.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type stack []func(http.Handler) http.Handler

func New() System {
	return &stack{}
}

func (s *stack) Use(fn func(http.Handler) http.Handler) {
	*s = append(*s, fn)
}

func (s *stack) Apply(handler http.Handler) http.Handler {
	for _, wrap := range slices.Backward(*s) {
		handler = wrap(handler)
	}
	return handler
}
