package fixing

import (
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
	"github.com/jjorge/knapsack/view"
)

// Combined unions the sets fixed by the z1, z2 and lambda-weighted-sum MTR
// fixings, each evaluated against its own known lower bound
// since the three objectives live on different scales.
func Combined(in *kpinstance.Instance, lambda numeric.Vector, lbZ1, lbZ2, lbCombined numeric.Real) (*Result, error) {
	z1 := view.ByObjective(in, 0)
	z1.SortByDecreasingEfficiency()
	z2 := view.ByObjective(in, 1)
	z2.SortByDecreasingEfficiency()
	combined, err := view.NewWeightedSumView(in, lambda)
	if err != nil {
		return nil, err
	}
	combined.SortByDecreasingEfficiency()

	r1, err := MTR(z1, in, lbZ1)
	if err != nil {
		return nil, err
	}
	r2, err := MTR(z2, in, lbZ2)
	if err != nil {
		return nil, err
	}
	r3, err := MTR(combined, in, lbCombined)
	if err != nil {
		return nil, err
	}

	out := newResult(in.Objectives())
	for _, r := range []*Result{r1, r2, r3} {
		if err := out.merge(in, r); err != nil {
			return nil, err
		}
	}
	if err := out.finalize(in); err != nil {
		return nil, err
	}

	return out, nil
}
