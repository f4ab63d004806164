package flattening

import "github.com/pkg/errors"

var (
	// ErrNoSalesData indicates an empty result set for the requested window.
	ErrNoSalesData = errors.New("no sales data found")

	// ErrMalformedPayload indicates the input was neither a list of sales nor
	// an object exposing one under "data".
	ErrMalformedPayload = errors.New("expected dict with 'data' key or list of sales")
)
