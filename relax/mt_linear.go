package relax

import (
	"github.com/jjorge/knapsack/numeric"
	"github.com/jjorge/knapsack/view"
)

// Result is the outcome of a linear relaxation: the relaxed objective value
// and whether the relaxation happens to be integral ("an
// 'optimal' flag (true iff the relaxation is integral)").
type Result struct {
	Value   numeric.Real
	Optimal bool
}

// MartelloToth computes the Martello-Toth linear relaxation of v, starting
// at view-position from with remaining capacity and a base profit already
// accumulated: it finds the split index s, the first item
// (scanning from `from`) whose cumulated weight would exceed capacity, and
// returns startProfit + profits[s-1] + (capacity - weights[s-1]) *
// efficiency(s), using a safe division that degrades to 0 when the split
// item has zero weight.
//
// v must already be sorted by decreasing efficiency (SortByDecreasingEfficiency)
// on the objective this relaxation reasons about; MartelloToth does not sort.
func MartelloToth(v *view.SortableMonoView, from int, capacity, startProfit numeric.Real) Result {
	n := v.Size()
	var cumWeight, cumProfit numeric.Real
	i := from
	for i < n {
		w := v.Weight(i)
		if cumWeight+w > capacity {
			break
		}
		cumWeight += w
		cumProfit += v.Profit(i)
		i++
	}

	value := startProfit + cumProfit
	if i >= n {
		// Every remaining item fits: the relaxation is exactly the profit of
		// taking them all, which is integral.
		return Result{Value: value, Optimal: true}
	}

	remaining := capacity - cumWeight
	value += numeric.SafeDiv(remaining*v.Profit(i), v.Weight(i))

	return Result{Value: value, Optimal: remaining == 0}
}
