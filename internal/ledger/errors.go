package ledger

import "errors"

var (
	// ErrValidation marks a missing or malformed required field.
	ErrValidation = errors.New("validation failed")
	// ErrNotFound marks an absent customer or order.
	ErrNotFound = errors.New("not found")
	// ErrInvalidReference marks an order pointing at an absent product.
	ErrInvalidReference = errors.New("invalid reference")
	// ErrDuplicateKey marks a unique constraint violation.
	ErrDuplicateKey = errors.New("duplicate key")
)
