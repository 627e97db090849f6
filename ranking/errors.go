package ranking

import "errors"

// ErrEmptyTerminalLayer is returned when the DAG's terminal layer has no
// vertex reaching the region's minimum profit: there is nothing to rank.
var ErrEmptyTerminalLayer = errors.New("ranking: terminal layer is empty")

// errBrokenPath signals a vertex whose recorded parents do not reproduce
// the vertex's own profit on either transition; always an internal bug.
var errBrokenPath = errors.New("ranking: no parent transition reproduces vertex profit")
