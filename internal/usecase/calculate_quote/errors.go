package calculate_quote

import "errors"

var (
	// ErrInvalidInput is returned for malformed input data
	ErrInvalidInput = errors.New("calculate_quote: invalid input data")

	// ErrInternal is returned on internal usecase errors
	ErrInternal = errors.New("calculate_quote: internal error")
)
