package improve

import (
	"errors"
	"net/http"
)

var (
	ErrMissingParams = errors.New("faltan parametros requeridos")
	ErrUpstream      = errors.New("error en la api de gemini")
	ErrEmpty         = errors.New("no se pudo generar una respuesta")
)

// MapHTTPStatus maps improve domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrMissingParams) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
