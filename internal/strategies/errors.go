package strategies

import (
	"errors"
	"net/http"
)

// ErrInvalidStrategies indicates a strategy list that cannot be saved.
var ErrInvalidStrategies = errors.New("estrategias invalidas")

// MapHTTPStatus maps strategy domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidStrategies) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
