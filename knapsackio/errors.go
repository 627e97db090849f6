package knapsackio

import "errors"

// ErrMalformedInput is returned when the instance stream ends before every
// declared token has been read, or a token cannot be parsed as a real.
var ErrMalformedInput = errors.New("knapsackio: malformed input")

// ErrUnsupportedConstraintCount is returned when k, the declared number of
// capacity constraints, is not 1 ("k = 1").
var ErrUnsupportedConstraintCount = errors.New("knapsackio: only a single capacity constraint (k=1) is supported")
