package dp

import "errors"

// ErrEmptyTerminalLayer is returned when the DAG's terminal layer has been
// pruned down to nothing (the region accepts no complete solution).
var ErrEmptyTerminalLayer = errors.New("dp: terminal layer is empty")

// errBrokenPath signals a vertex whose recorded parents do not actually
// satisfy the skip/keep profit equalities; this is a bug in DAG
// construction, never a user-facing condition.
var errBrokenPath = errors.New("dp: no parent transition reproduces vertex profit")
