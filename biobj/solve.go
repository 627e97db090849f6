package biobj

import (
	"sort"

	"github.com/jjorge/knapsack/fixing"
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
	"github.com/jjorge/knapsack/view"
)

// SolveBi computes the maximum complete set of a bi-objective instance: the
// union of phase-1's supported solutions and phase-2's non-supported
// solutions, returned lexicographically sorted on Value.
func SolveBi(in *kpinstance.Instance) ([]kpinstance.KnapsackSolution, error) {
	if in.Objectives() != 2 {
		return nil, ErrNotBiObjective
	}

	p1, err := Phase1(in)
	if err != nil {
		return nil, err
	}

	if len(p1.Extremes) >= 2 {
		ts, err := NewTriangleSet(p1.Extremes)
		if err != nil {
			return nil, err
		}

		workIn, workTS, lift, err := reduceGlobally(in, ts)
		if err != nil {
			return nil, err
		}

		if err := phase2(workIn, workTS, p1.Supported, lift); err != nil {
			return nil, err
		}
	}

	out := p1.Supported.Solutions()
	sort.Slice(out, func(i, j int) bool {
		less, _ := out[i].Value.Less(out[j].Value)
		return less
	})

	return out, nil
}

// reduceGlobally runs fixing.Directional over every triangle's
// scalarisation before any triangle is ranked (spec.md:117-119's
// directional fixing: "for every pair of consecutive supported points,
// run a combined fixing with the triangle's lambda; a variable is fixed
// globally only when fixed to the same value in every triangle"). The
// per-objective lower bounds Combined fixing needs are the best values of
// z1 and z2 already certified by Phase1's extreme supported points.
//
// When nothing is globally fixed it returns in/ts unchanged and a nil
// lift, so phase2 behaves exactly as before. When a non-empty global fix
// is found it returns the sub-instance over the remaining free items, a
// TriangleSet re-expressed in that sub-instance's cost space (shifted by
// the forced items' guaranteed cost — a translation that leaves every
// triangle's Lambda unchanged, since Lambda depends only on the
// difference between Left and Right), and a lift closure restoring a
// solution found over the sub-instance to in's original index space.
func reduceGlobally(in *kpinstance.Instance, ts *TriangleSet) (*kpinstance.Instance, *TriangleSet, solutionLift, error) {
	triangles := ts.Triangles()
	if len(triangles) == 0 {
		return in, ts, nil, nil
	}

	var lbZ1, lbZ2 numeric.Real
	for _, tr := range triangles {
		if numeric.Greater(tr.Right[0], lbZ1) {
			lbZ1 = tr.Right[0]
		}
		if numeric.Greater(tr.Left[1], lbZ2) {
			lbZ2 = tr.Left[1]
		}
	}

	fixTriangles := make([]fixing.Triangle, len(triangles))
	for i, tr := range triangles {
		fixTriangles[i] = fixing.Triangle{Lambda: tr.Lambda(), LBZ1: lbZ1, LBZ2: lbZ2, LBComb: tr.MinProfit()}
	}

	forced, err := fixing.Directional(in, fixTriangles)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(forced) == 0 {
		return in, ts, nil, nil
	}

	guaranteedCost := make(numeric.Vector, in.Objectives())
	var guaranteedWeight numeric.Real
	free := make([]int, 0, in.Size())
	for i := 0; i < in.Size(); i++ {
		trit, ok := forced[i]
		if !ok {
			free = append(free, i)

			continue
		}
		if trit == kpinstance.Set {
			it := in.Item(i)
			for j := 0; j < in.Objectives(); j++ {
				guaranteedCost[j] += it.CostAt(j)
			}
			guaranteedWeight += it.Weight()
		}
	}

	if len(free) == 0 {
		// Every variable was fixed: nothing left for phase-2 to rank.
		// kpinstance.NewInstance rejects a zero-item instance, so fall back
		// to the unreduced instance/triangle-set rather than building one.
		return in, ts, nil, nil
	}

	subView, err := view.NewSubsetView(in, free, in.Capacity()-guaranteedWeight)
	if err != nil {
		return nil, nil, nil, err
	}
	workIn, err := subView.ToInstance()
	if err != nil {
		return nil, nil, nil, err
	}

	shifted := make([]*Triangle, len(triangles))
	for i, tr := range triangles {
		left, err := tr.Left.Sub(guaranteedCost)
		if err != nil {
			return nil, nil, nil, err
		}
		right, err := tr.Right.Sub(guaranteedCost)
		if err != nil {
			return nil, nil, nil, err
		}
		shiftedTr, err := NewTriangle(left, right)
		if err != nil {
			return nil, nil, nil, err
		}
		shifted[i] = shiftedTr
	}
	workTS := &TriangleSet{triangles: shifted}

	lift := func(s kpinstance.KnapsackSolution) (kpinstance.KnapsackSolution, error) {
		full := kpinstance.NewKnapsackSolution(in.Size(), in.Objectives())
		for src, t := range forced {
			if t == kpinstance.Set {
				full.SetItem(in, src)
			} else {
				full.UnsetItem(in, src)
			}
		}
		for i := 0; i < subView.Size(); i++ {
			src := subView.SourceIndex(i)
			if s.Binary.At(i) == kpinstance.Set {
				full.SetItem(in, src)
			} else {
				full.UnsetItem(in, src)
			}
		}

		return full, nil
	}

	return workIn, workTS, lift, nil
}
