package biobj

import (
	"github.com/jjorge/knapsack/dag"
	"github.com/jjorge/knapsack/fixing"
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/pareto"
	"github.com/jjorge/knapsack/ranking"
	"github.com/jjorge/knapsack/view"
)

// solutionLift restores a solution found over some reduced base instance
// to the caller's original index space. SolveBi's global directional-fixing
// reduction is the only caller that needs one; a nil lift means the base
// instance phase2 ranks over already is the original instance.
type solutionLift func(kpinstance.KnapsackSolution) (kpinstance.KnapsackSolution, error)

// phase2 ranks every non-supported solution strictly inside each triangle,
// processing the smallest-strip triangle first and routing out-of-triangle
// images found along the way to whichever neighbouring triangle they
// actually belong to (this package phase-2). in is the base instance the
// triangles and dag are built over, which lift (if non-nil) maps back to
// the original instance SolveBi was called with.
func phase2(in *kpinstance.Instance, ts *TriangleSet, supported *pareto.MaximumCompleteSet, lift solutionLift) error {
	for {
		tr := ts.Smallest()
		if tr == nil {
			break
		}

		if err := rankTriangle(in, ts, tr, supported, lift); err != nil {
			return err
		}
		tr.Lock()
	}

	return nil
}

// rankTriangle runs simple variable fixing for tr's scalarisation, then
// ranking.Rank over the resulting DAG, folding every accepted solution into
// supported and routing every out-of-triangle image that ranking.Rank
// surfaces to the triangle it actually falls in.
func rankTriangle(in *kpinstance.Instance, ts *TriangleSet, tr *Triangle, supported *pareto.MaximumCompleteSet, lift solutionLift) error {
	lambda := tr.Lambda()

	wv, err := view.NewWeightedSumView(in, lambda)
	if err != nil {
		return err
	}
	wv.SortByDecreasingEfficiency()

	fixed, err := fixing.Simple(wv, in, tr.MinProfit())
	if err != nil {
		if err == fixing.ErrInfeasible {
			// tr's own forced set-variables already exceed capacity: its
			// current lower bound is locally optimal, nothing more to rank
			// here. Recovered here, not propagated (fixing.ErrInfeasible's
			// doc comment), matching fixing.Directional's per-triangle
			// recovery.
			return nil
		}

		return err
	}

	sub, err := view.NewSubsetView(in, fixed.Free, in.Capacity()-fixed.GuaranteedWeight)
	if err != nil {
		return err
	}
	subIn, err := sub.ToInstance()
	if err != nil {
		return err
	}

	subWV, err := view.NewWeightedSumView(subIn, lambda)
	if err != nil {
		return err
	}
	subWV.SortByDecreasingEfficiency()

	g, err := dag.Build(subWV, tr)
	if err != nil {
		return err
	}

	outProfits := pareto.New()
	sols, err := ranking.Rank(g, subWV.Profit, subWV.SourceIndex, subIn, tr, outProfits)
	if err != nil {
		return err
	}

	for _, s := range sols {
		full, err := liftSolution(in, fixed, sub, s)
		if err != nil {
			return err
		}
		if lift != nil {
			full, err = lift(full)
			if err != nil {
				return err
			}
		}
		if _, err := supported.Insert(full); err != nil {
			return err
		}
	}

	for _, image := range outProfits.Points() {
		if dest := ts.Route(image); dest != nil && dest != tr {
			if _, _, err := dest.Insert(image); err != nil {
				return err
			}
		}
	}

	return nil
}

// liftSolution maps a solution found over the fixed-and-reindexed
// sub-instance back to the original instance's index space, folding in the
// guaranteed (forced-Set) items fixing already accounted for.
func liftSolution(in *kpinstance.Instance, fixed *fixing.Result, sub *view.SubsetView, s kpinstance.KnapsackSolution) (kpinstance.KnapsackSolution, error) {
	full := kpinstance.NewKnapsackSolution(in.Size(), in.Objectives())
	for src, t := range fixed.Forced {
		if t == kpinstance.Set {
			full.SetItem(in, src)
		} else {
			full.UnsetItem(in, src)
		}
	}
	for i := 0; i < sub.Size(); i++ {
		src := sub.SourceIndex(i)
		if s.Binary.At(i) == kpinstance.Set {
			full.SetItem(in, src)
		} else {
			full.UnsetItem(in, src)
		}
	}

	return full, nil
}
