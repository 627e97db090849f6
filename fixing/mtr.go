package fixing

import (
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
)

// MTR computes the Martello-Toth reduction fixing against a
// sorted mono view and a known lower bound: for each item, the upper bound
// achievable forcing it out (ub0) and forcing it in (ub1) are computed by
// relaxing the view with that one position skipped; whichever bound does
// not exceed lowerBound forces the item to the opposite trit.
//
// The classical MTR algorithm derives ub0/ub1 from the already-computed LP
// break index in O(1) per item; this reimplementation instead reruns the
// relaxation scan with the item skipped, O(n) per item. The two are
// numerically equivalent; the simpler form was chosen to avoid duplicating
// the break-index bookkeeping relax.MartelloToth already owns.
func MTR(v View, in *kpinstance.Instance, lowerBound numeric.Real) (*Result, error) {
	n := v.Size()
	cap_ := v.Capacity()
	res := newResult(in.Objectives())

	for i := 0; i < n; i++ {
		w := v.Weight(i)
		src := v.SourceIndex(i)
		if numeric.Greater(w, cap_) {
			if err := res.setForced(in, src, kpinstance.Unset); err != nil {
				return nil, err
			}

			continue
		}

		p := v.Profit(i)
		ub0 := relaxSkipping(v, i, cap_)
		ub1 := p + relaxSkipping(v, i, cap_-w)

		switch {
		case numeric.LessEqual(ub0, lowerBound):
			if err := res.setForced(in, src, kpinstance.Set); err != nil {
				return nil, err
			}
		case numeric.LessEqual(ub1, lowerBound):
			if err := res.setForced(in, src, kpinstance.Unset); err != nil {
				return nil, err
			}
		}
	}

	if err := res.finalize(in); err != nil {
		return nil, err
	}

	return res, nil
}

// Simple is the same computation as MTR ("same idea without
// maintaining the lower bound as a moving set"); it is exposed separately
// because call sites differ — Simple is meant for loops that already hold a
// bound and call it once per iteration, MTR for a one-shot top-level pass —
// not because the algorithm itself changes.
func Simple(v View, in *kpinstance.Instance, lowerBound numeric.Real) (*Result, error) {
	return MTR(v, in, lowerBound)
}

// relaxSkipping runs the same greedy fractional scan as relax.MartelloToth
// directly against View, omitting view position skip.
func relaxSkipping(v View, skip int, capacity numeric.Real) numeric.Real {
	if !numeric.Greater(capacity, 0) {
		return 0
	}

	n := v.Size()
	var cumWeight, cumProfit numeric.Real
	for i := 0; i < n; i++ {
		if i == skip {
			continue
		}
		w := v.Weight(i)
		if cumWeight+w > capacity {
			remaining := capacity - cumWeight

			return cumProfit + numeric.SafeDiv(remaining*v.Profit(i), w)
		}
		cumWeight += w
		cumProfit += v.Profit(i)
	}

	return cumProfit
}
