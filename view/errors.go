package view

import "errors"

// ErrNonPositiveWeight indicates a weighted-sum projection was requested
// with a non-positive lambda ("for weight vector lambda>0").
var ErrNonPositiveWeight = errors.New("view: weight vector must be strictly positive")

// ErrIndexOutOfRange indicates a subset view was built with an index
// outside [0,n).
var ErrIndexOutOfRange = errors.New("view: index out of range")

// ErrUnknownOrder indicates an OrderedView was requested with an order name
// not in the supported set.
var ErrUnknownOrder = errors.New("view: unknown order name")
