package lexsolve

import (
	"github.com/jjorge/knapsack/dag"
	"github.com/jjorge/knapsack/dp"
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
	"github.com/jjorge/knapsack/view"
)

// Extreme solves the mono-objective problem maximising objective `primary`
// and, among every solution achieving that optimum, returns the one that is
// lexicographically best on the remaining objectives in instance order (the
// two lexicographic extrema x1 and x2, one per objective, lex-ordered by
// the other; generalised here to p objectives so triobj's
// utopian point can reuse it directly).
func Extreme(in *kpinstance.Instance, primary int) (kpinstance.KnapsackSolution, error) {
	v := view.ByObjective(in, primary)
	v.SortByDecreasingEfficiency()

	g, err := dag.Build(v, dag.HalfLine{Threshold: 0})
	if err != nil {
		return kpinstance.KnapsackSolution{}, err
	}

	cands, err := dp.MultiBest(g, v, in)
	if err != nil {
		return kpinstance.KnapsackSolution{}, err
	}

	best := cands[0]
	for _, c := range cands[1:] {
		if lexBetter(c, best, primary) {
			best = c
		}
	}

	return best, nil
}

// lexBetter reports whether a is lexicographically preferred over b once
// their (tied) primary-objective profit is set aside: compare every other
// objective in ascending index order, first difference decides.
func lexBetter(a, b kpinstance.KnapsackSolution, primary int) bool {
	for j := range a.Value.Cost {
		if j == primary {
			continue
		}
		if numeric.Greater(a.Value.Cost[j], b.Value.Cost[j]) {
			return true
		}
		if numeric.Less(a.Value.Cost[j], b.Value.Cost[j]) {
			return false
		}
	}

	return false
}
