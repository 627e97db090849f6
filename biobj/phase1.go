package biobj

import (
	"sort"

	"github.com/jjorge/knapsack/dag"
	"github.com/jjorge/knapsack/dp"
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/lexsolve"
	"github.com/jjorge/knapsack/numeric"
	"github.com/jjorge/knapsack/pareto"
	"github.com/jjorge/knapsack/view"
)

// Phase1Result is the output of the dichotomic phase-1: every
// supported solution found (extreme and non-extreme), plus the extreme
// points' images sorted by increasing z1, which phase-2 uses to build the
// triangle set.
type Phase1Result struct {
	Supported *pareto.MaximumCompleteSet
	Extremes  []numeric.Vector
}

// Phase1 runs the dichotomic scalarisation search for a bi-objective
// instance: the two lexicographic extrema seed a recursive
// bisection that, at each step, solves the weighted-sum problem for the
// scalarisation shared by the current bracket and either discovers a new
// extreme point between them (recurse on both halves) or confirms the
// bracket is a genuine hull edge.
func Phase1(in *kpinstance.Instance) (*Phase1Result, error) {
	x1, err := lexsolve.Extreme(in, 0)
	if err != nil {
		return nil, err
	}
	x2, err := lexsolve.Extreme(in, 1)
	if err != nil {
		return nil, err
	}

	supported := pareto.NewMaximumCompleteSet()
	if _, err := supported.Insert(x1); err != nil {
		return nil, err
	}
	if _, err := supported.Insert(x2); err != nil {
		return nil, err
	}

	extremeSet := pareto.New()
	if _, _, err := extremeSet.Insert(x1.Value.Cost); err != nil {
		return nil, err
	}
	if _, _, err := extremeSet.Insert(x2.Value.Cost); err != nil {
		return nil, err
	}

	left, right := x1, x2
	if numeric.Greater(left.Value.Cost[0], right.Value.Cost[0]) {
		left, right = right, left
	}

	if err := dichotomy(in, left, right, supported, extremeSet); err != nil {
		return nil, err
	}

	points := extremeSet.Points()
	sort.Slice(points, func(i, j int) bool { return points[i][0] < points[j][0] })

	return &Phase1Result{Supported: supported, Extremes: points}, nil
}

// dichotomy recurses on the bracket (left, right), left having the smaller
// z1. It solves the weighted-sum problem for the scalarisation the two
// corners share, collects every tied optimum as a supported solution, and
// recurses into whichever of the two extreme ties differs from the current
// bracket corners.
func dichotomy(in *kpinstance.Instance, left, right kpinstance.KnapsackSolution, supported *pareto.MaximumCompleteSet, extremeSet *pareto.Set) error {
	lambda1 := left.Value.Cost[1] - right.Value.Cost[1]
	lambda2 := right.Value.Cost[0] - left.Value.Cost[0]
	if !numeric.Greater(lambda1, 0) || !numeric.Greater(lambda2, 0) {
		// left and right already share a coordinate: no room for a new point
		// between them, the bracket is a degenerate (zero-width) edge.
		return nil
	}
	lambda := numeric.Vector{lambda1, lambda2}

	wv, err := view.NewWeightedSumView(in, lambda)
	if err != nil {
		return err
	}
	wv.SortByDecreasingEfficiency()

	g, err := dag.Build(wv, dag.HalfLine{Threshold: 0})
	if err != nil {
		return err
	}

	cands, err := dp.MultiBest(g, wv, in)
	if err != nil {
		return err
	}

	sort.Slice(cands, func(i, j int) bool { return cands[i].Value.Cost[0] < cands[j].Value.Cost[0] })
	lo, hi := cands[0], cands[len(cands)-1]

	for _, c := range cands {
		if _, err := supported.Insert(c); err != nil {
			return err
		}
	}

	if lo.Binary.Equal(left.Binary) && hi.Binary.Equal(right.Binary) {
		// No new extreme point between left and right: (left,right) is a
		// genuine hull edge.
		return nil
	}

	if !lo.Binary.Equal(left.Binary) {
		if _, _, err := extremeSet.Insert(lo.Value.Cost); err != nil {
			return err
		}
		// lo.z1 <= left.z1: lo is the smaller-z1 corner of this sub-bracket.
		if err := dichotomy(in, lo, left, supported, extremeSet); err != nil {
			return err
		}
	}
	if !hi.Binary.Equal(right.Binary) {
		if _, _, err := extremeSet.Insert(hi.Value.Cost); err != nil {
			return err
		}
		// hi.z1 >= right.z1: hi is the larger-z1 corner of this sub-bracket.
		if err := dichotomy(in, right, hi, supported, extremeSet); err != nil {
			return err
		}
	}

	return nil
}
