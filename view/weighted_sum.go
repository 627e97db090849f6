package view

import (
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
)

// NewWeightedSumView returns a SortableMonoView whose scalar profit for
// item i is lambda.cost(i) ("weighted-sum view"). lambda must be
// strictly positive on every component.
func NewWeightedSumView(in *kpinstance.Instance, lambda numeric.Vector) (*SortableMonoView, error) {
	if len(lambda) != in.Objectives() {
		return nil, numeric.ErrDimensionMismatch
	}
	for _, l := range lambda {
		if l <= 0 {
			return nil, ErrNonPositiveWeight
		}
	}
	lam := lambda.Clone()
	proj := func(it kpinstance.Item) numeric.Real {
		var sum numeric.Real
		for j, l := range lam {
			sum += l * it.CostAt(j)
		}

		return sum
	}

	return NewSortableMonoView(in, proj), nil
}
