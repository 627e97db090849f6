package triobj

import "errors"

// ErrNotTriObjective is returned when SolveTri is called on an instance
// whose objective count is not 3.
var ErrNotTriObjective = errors.New("triobj: instance is not tri-objective")

// errBranchInfeasible signals that dominance diffusion forced a variable
// set that no longer fits the residual capacity: the branch that produced
// it is dropped, not propagated as a fatal error.
var errBranchInfeasible = errors.New("triobj: branch infeasible after dominance diffusion")
