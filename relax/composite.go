package relax

import (
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
	"github.com/jjorge/knapsack/view"
)

// Objective selects which of the three pre-built mono views Composite.Relax
// reasons about.
type Objective int

const (
	// Combined is the weighted-sum (lambda.cost) view.
	Combined Objective = iota
	// Z1 is the first objective's view.
	Z1
	// Z2 is the second objective's view.
	Z2
)

// Composite pre-builds mono views on the linear combination, on z1 and on
// z2, each sorted by its own decreasing efficiency. Relax scans
// the relevant view filtering out items whose original instance index is
// below fromVar, so a call "from index i" never needs to re-sort: each
// relaxation call costs O(n).
type Composite struct {
	in       *kpinstance.Instance
	combined *view.SortableMonoView
	z1       *view.SortableMonoView
	z2       *view.SortableMonoView
}

// NewComposite builds the three mono views for the given lambda (this package:
// lambda1, lambda2 as derived by a Triangle) over in.
func NewComposite(in *kpinstance.Instance, lambda numeric.Vector) (*Composite, error) {
	combined, err := view.NewWeightedSumView(in, lambda)
	if err != nil {
		return nil, err
	}
	combined.SortByDecreasingEfficiency()

	z1 := view.ByObjective(in, 0)
	z1.SortByDecreasingEfficiency()
	z2 := view.ByObjective(in, 1)
	z2.SortByDecreasingEfficiency()

	return &Composite{in: in, combined: combined, z1: z1, z2: z2}, nil
}

func (c *Composite) viewFor(obj Objective) *view.SortableMonoView {
	switch obj {
	case Z1:
		return c.z1
	case Z2:
		return c.z2
	default:
		return c.combined
	}
}

// Relax runs the Martello-Toth relaxation of the chosen objective's
// pre-sorted view, restricted to items whose original index is >= fromVar.
func (c *Composite) Relax(obj Objective, fromVar int, capacity, startProfit numeric.Real) Result {
	v := c.viewFor(obj)
	n := v.Size()

	var cumWeight, cumProfit numeric.Real
	value := startProfit
	optimal := true
	for i := 0; i < n; i++ {
		if v.SourceIndex(i) < fromVar {
			continue
		}
		w := v.Weight(i)
		if cumWeight+w > capacity {
			remaining := capacity - cumWeight
			value += cumProfit + numeric.SafeDiv(remaining*v.Profit(i), w)
			optimal = remaining == 0

			return Result{Value: value, Optimal: optimal}
		}
		cumWeight += w
		cumProfit += v.Profit(i)
	}

	return Result{Value: value + cumProfit, Optimal: true}
}

// Interesting reports whether all three relaxations (combined, z1, z2),
// evaluated from fromVar with remaining capacity cap and the given
// per-objective accumulated profits, strictly exceed the matching
// component of bound ("interesting(...) returns true iff all
// three relaxations exceed the respective components of bound").
func (c *Composite) Interesting(fromVar int, cap_ numeric.Real, profitCombined, profitZ1, profitZ2 numeric.Real, bound numeric.Vector) bool {
	combined := c.Relax(Combined, fromVar, cap_, profitCombined)
	z1 := c.Relax(Z1, fromVar, cap_, profitZ1)
	z2 := c.Relax(Z2, fromVar, cap_, profitZ2)

	return numeric.Greater(combined.Value, bound[0]) &&
		numeric.Greater(z1.Value, bound[1]) &&
		numeric.Greater(z2.Value, bound[2])
}
