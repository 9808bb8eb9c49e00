package tabular

import "errors"

var (
	// ErrEmpty indicates the document contains no data rows.
	ErrEmpty = errors.New("table has no data rows")
	// ErrNoHeader indicates the first row has no usable column names.
	ErrNoHeader = errors.New("table has no header row")
	// ErrMalformed indicates the document could not be decoded.
	ErrMalformed = errors.New("malformed table document")
)
