package numeric

import "errors"

// ErrDimensionMismatch indicates that two vectors of different lengths were
// compared or combined. This is fatal: callers that can recover
// locally (none do, at this layer) must catch it before it propagates.
var ErrDimensionMismatch = errors.New("numeric: dimension mismatch")

// ErrInvalidDimension indicates a requested vector dimension p is outside
// the supported {2,3} objective count, or is non-positive.
var ErrInvalidDimension = errors.New("numeric: invalid objective count")
