package kpinstance

import "errors"

// Sentinel errors for instance construction and solution mutation.
var (
	// ErrEmptyInstance indicates an instance was built with zero items.
	ErrEmptyInstance = errors.New("kpinstance: instance has no items")

	// ErrInvalidObjectiveCount indicates p is not 2 or 3 (spec: p in {2,3}).
	ErrInvalidObjectiveCount = errors.New("kpinstance: objective count must be 2 or 3")

	// ErrNegativeWeight indicates an item weight is negative (non-goal: negative
	// weights/costs are out of scope here).
	ErrNegativeWeight = errors.New("kpinstance: negative item weight")

	// ErrNegativeCost indicates a negative cost component.
	ErrNegativeCost = errors.New("kpinstance: negative cost component")

	// ErrNegativeCapacity indicates capacity < 0.
	ErrNegativeCapacity = errors.New("kpinstance: negative capacity")

	// ErrCostDimensionMismatch indicates items carry cost vectors of unequal length.
	ErrCostDimensionMismatch = errors.New("kpinstance: items have inconsistent cost dimension")

	// ErrIndexOutOfRange indicates a variable index outside [0,n).
	ErrIndexOutOfRange = errors.New("kpinstance: item index out of range")
)

// invariantViolation is a dedicated panic value for conditions this package labels
// "invariant_violation": always fatal, always a bug, never recovered by a
// caller. Mirrors dijkstra.WithMaxDistance's pattern of panicking on
// caller-constructed invalid state rather than threading an error return
// through every mutator.
type invariantViolation struct{ msg string }

func (e invariantViolation) Error() string { return "kpinstance: invariant violation: " + e.msg }

// panicInvariant raises an invariant_violation. Used only for states that
// cannot arise unless a caller bypassed the package's own mutators (e.g.
// re-setting an already-set trit), never for ordinary user-input validation.
func panicInvariant(msg string) {
	panic(invariantViolation{msg})
}
