package dag

import "github.com/jjorge/knapsack/numeric"

// Region abstracts the search region a DAG is built against: a half-line
// for a single scalar objective (mono DP, phase-1), or a triangle-front /
// bounded region for the bi- and tri-objective solvers (this package inputs:
// "a mono view ... and a region").
type Region interface {
	// MinProfit is the scalar threshold a vertex's best achievable profit
	// must reach (plus its relaxation) to stay viable.
	MinProfit() numeric.Real
	// Accepts reports whether a vertex carrying this component-wise max
	// path-profit can still reach the region ("the vertex is
	// 'feasible' in the region sense"). Mono regions accept unconditionally.
	Accepts(maxProfile numeric.Vector) bool
}

// HalfLine is the mono-objective region: accept every vertex whose profit
// (plus relaxation) reaches Threshold; there is no multi-objective
// component to check.
type HalfLine struct {
	Threshold numeric.Real
}

// MinProfit returns the half-line's threshold.
func (h HalfLine) MinProfit() numeric.Real { return h.Threshold }

// Accepts always returns true: a mono region has no geometric shape beyond
// the scalar threshold already checked via MinProfit.
func (h HalfLine) Accepts(numeric.Vector) bool { return true }
