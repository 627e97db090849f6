package fixing

import "errors"

// ErrInfeasible is returned when forcing the Set-variables alone already
// exceeds the instance's capacity ("the fixing then reports
// 'lower bound is optimal, everything else is unset'" is the caller's
// recovery, not this package's).
var ErrInfeasible = errors.New("fixing: forced set-variables exceed capacity")

// ErrConflict signals that two fixing passes disagreed on the same
// variable; this is an internal-consistency bug, not a recoverable input
// condition.
var ErrConflict = errors.New("fixing: conflicting forced value for the same item")
