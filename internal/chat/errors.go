package chat

import (
	"errors"
	"net/http"
)

var (
	ErrNotConfigured  = errors.New("webhook de chat no configurado")
	ErrInvalidMessage = errors.New("mensaje requerido")
	ErrUnreachable    = errors.New("error de conexion con el webhook")
)

// MapHTTPStatus maps chat domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidMessage):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotConfigured):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrUnreachable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
