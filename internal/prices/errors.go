package prices

import (
	"errors"
	"net/http"

	"github.com/latinta/dashboard/pkg/tabular"
)

// Domain errors for price operations.
var (
	ErrNotFound      = errors.New("precio no encontrado")
	ErrDuplicate     = errors.New("ya existe un precio para ese papel y medida")
	ErrInvalidRecord = errors.New("precio invalido")
	ErrInvalidFile   = errors.New("tipo de archivo invalido, use .xlsx o .xls")
	ErrFileTooLarge  = errors.New("el archivo excede el tamano maximo")
	ErrReadFailed    = errors.New("error al leer los precios")
)

// MapHTTPStatus maps price domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicate):
		return http.StatusConflict
	case errors.Is(err, ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidRecord),
		errors.Is(err, ErrInvalidFile),
		errors.Is(err, tabular.ErrEmpty),
		errors.Is(err, tabular.ErrNoHeader),
		errors.Is(err, tabular.ErrMalformed):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
