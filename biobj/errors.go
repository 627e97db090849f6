package biobj

import "errors"

// ErrNotBiObjective is returned when SolveBi is called on an instance whose
// objective count is not 2.
var ErrNotBiObjective = errors.New("biobj: instance is not bi-objective")
