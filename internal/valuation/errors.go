package valuation

import "errors"

var (
	// ErrInvalidInput is returned for inputs that cannot be coerced into a
	// meaningful computation, such as a non-positive square footage.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDataUnavailable is returned when an upstream read failed and no
	// documented fallback applies.
	ErrDataUnavailable = errors.New("data unavailable")
)
