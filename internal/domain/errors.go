package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is the root of the validation error taxonomy. Every
// constructor failure wraps it, so errors.Is(err, ErrValidation) catches
// all of them. Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// The field-level sentinels below each wrap ErrValidation and identify the
// offending field. Constructors wrap them further with the concrete
// constraint that was violated, so a failure reads e.g.
// "validation error: invalid quantity: must be greater than 0, got -1.0".
var (
	// ErrQuantity — quantity not a positive, finite number.
	ErrQuantity = fmt.Errorf("%w: invalid quantity", ErrValidation)

	// ErrUnit — unit missing or not resolved through the measure registry.
	ErrUnit = fmt.Errorf("%w: invalid unit", ErrValidation)

	// ErrName — a name or description is missing or empty.
	ErrName = fmt.Errorf("%w: invalid name", ErrValidation)

	// ErrOrder — a step order below 1.
	ErrOrder = fmt.Errorf("%w: invalid order", ErrValidation)

	// ErrMissingField — a required field omitted entirely. Raised by the
	// HTTP layer, where "absent" and "empty" are distinguishable.
	ErrMissingField = fmt.Errorf("%w: missing field", ErrValidation)
)
