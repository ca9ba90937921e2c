package investment

import "errors"

// ErrInvalidInput is returned for projections that cannot produce a
// meaningful ratio, such as a zero total investment.
var ErrInvalidInput = errors.New("invalid input")
