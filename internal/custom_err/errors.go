package custom_err

import "errors"

var (
	// Transaction errors
	ErrNotFound         = errors.New("resource not found")
	ErrDuplicateRequest = errors.New("duplicate request")

	// Validation errors
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidCurrency = errors.New("invalid currency")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidRate     = errors.New("invalid rate")
	ErrInvalidType     = errors.New("invalid transaction type")
)
