// Package routes declares handler tables that domain packages hand to a ServeMux.
package routes

import "net/http"

// Route is one method-qualified pattern. Pattern is relative to the
// enclosing Group prefix and may be empty.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

func (r Route) pattern(prefix string) string {
	return r.Method + " " + prefix + r.Pattern
}
