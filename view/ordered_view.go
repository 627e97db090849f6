package view

import (
	"math/rand"
	"sort"

	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
)

// OrderName selects one of the tri-objective branching orders .
// The chosen order is a decision variable of the tri-objective solver; it
// does not alter correctness, only performance.
type OrderName string

// Supported order names.
const (
	Topological     OrderName = "topological"
	MaxRank         OrderName = "max-rank"
	MinRank         OrderName = "min-rank"
	SumRank         OrderName = "sum-rank"
	Frequency       OrderName = "frequency"
	Random          OrderName = "random"
	DominationRank  OrderName = "domination-rank"
	DominationCount OrderName = "domination-count"
)

// OrderedView is a permutation-backed, read-only view exposing items of a
// multi-objective instance in one of the orders above.
type OrderedView struct {
	in   *kpinstance.Instance
	perm []int
}

// Size returns the number of items in the view.
func (v *OrderedView) Size() int { return len(v.perm) }

// Capacity returns the underlying instance's capacity.
func (v *OrderedView) Capacity() numeric.Real { return v.in.Capacity() }

// Objectives returns p.
func (v *OrderedView) Objectives() int { return v.in.Objectives() }

// Item returns the i-th item in view order.
func (v *OrderedView) Item(i int) kpinstance.Item { return v.in.Item(v.perm[i]) }

// SourceIndex maps a view position back to the original instance index.
func (v *OrderedView) SourceIndex(i int) int { return v.perm[i] }

// Efficiency returns cost[obj]/weight for the i-th item in view order.
func (v *OrderedView) Efficiency(obj, i int) numeric.Real {
	return v.Item(i).Efficiency(obj)
}

// efficiencyRanks returns, for each objective j, a rank[i] giving item i's
// position (0 = most efficient) when items are sorted by decreasing
// efficiency on objective j.
func efficiencyRanks(in *kpinstance.Instance) [][]int {
	p := in.Objectives()
	n := in.Size()
	ranks := make([][]int, p)
	for j := 0; j < p; j++ {
		order := make([]int, n)
		for i := range order {
			order[i] = i
		}
		sort.SliceStable(order, func(a, b int) bool {
			return in.Item(order[a]).Efficiency(j) > in.Item(order[b]).Efficiency(j)
		})
		rank := make([]int, n)
		for pos, idx := range order {
			rank[idx] = pos
		}
		ranks[j] = rank
	}

	return ranks
}

// dominationCounts returns, for each item, the number of items that
// dominate it (domCount) and the number of items it dominates
// (dominates), under plain cost-vector dominance (weight plays no role:
// this is a branching heuristic, not a feasibility test).
func dominationCounts(in *kpinstance.Instance) (dominatedBy, dominatesOthers []int) {
	n := in.Size()
	dominatedBy = make([]int, n)
	dominatesOthers = make([]int, n)
	for i := 0; i < n; i++ {
		ci := in.Item(i).Cost()
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			cj := in.Item(j).Cost()
			if dom, _ := ci.Dominates(cj); dom {
				dominatesOthers[i]++
			}
			if dom, _ := cj.Dominates(ci); dom {
				dominatedBy[i]++
			}
		}
	}

	return dominatedBy, dominatesOthers
}

// NewOrderedView builds the view for the given order name. seed feeds the
// Random order only.
func NewOrderedView(in *kpinstance.Instance, order OrderName, seed int64) (*OrderedView, error) {
	n := in.Size()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	switch order {
	case Topological, "":
		// identity order: items already appear in a valid DP layering order
		// since layer i only depends on items 0..i-1.

	case MaxRank, MinRank, SumRank:
		ranks := efficiencyRanks(in)
		key := make([]int, n)
		for i := 0; i < n; i++ {
			switch order {
			case MaxRank:
				m := ranks[0][i]
				for j := 1; j < len(ranks); j++ {
					if ranks[j][i] > m {
						m = ranks[j][i]
					}
				}
				key[i] = m
			case MinRank:
				m := ranks[0][i]
				for j := 1; j < len(ranks); j++ {
					if ranks[j][i] < m {
						m = ranks[j][i]
					}
				}
				key[i] = m
			case SumRank:
				var s int
				for j := range ranks {
					s += ranks[j][i]
				}
				key[i] = s
			}
		}
		sort.SliceStable(perm, func(a, b int) bool { return key[perm[a]] < key[perm[b]] })

	case Frequency:
		ranks := efficiencyRanks(in)
		half := n / 2
		freq := make([]int, n)
		for i := 0; i < n; i++ {
			for j := range ranks {
				if ranks[j][i] < half {
					freq[i]++
				}
			}
		}
		sort.SliceStable(perm, func(a, b int) bool { return freq[perm[a]] > freq[perm[b]] })

	case DominationRank:
		dominatedBy, _ := dominationCounts(in)
		sort.SliceStable(perm, func(a, b int) bool { return dominatedBy[perm[a]] < dominatedBy[perm[b]] })

	case DominationCount:
		_, dominatesOthers := dominationCounts(in)
		sort.SliceStable(perm, func(a, b int) bool { return dominatesOthers[perm[a]] > dominatesOthers[perm[b]] })

	case Random:
		rng := rand.New(rand.NewSource(seed))
		rng.Shuffle(n, func(a, b int) { perm[a], perm[b] = perm[b], perm[a] })

	default:
		return nil, ErrUnknownOrder
	}

	return &OrderedView{in: in, perm: perm}, nil
}

// NewOrderedViewByObjective returns the view sorted by strictly decreasing
// efficiency on objective obj (this package: solve_tri accepts "a non-negative
// integer denoting decreasing efficiency on that objective").
func NewOrderedViewByObjective(in *kpinstance.Instance, obj int) *OrderedView {
	n := in.Size()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return in.Item(perm[a]).Efficiency(obj) > in.Item(perm[b]).Efficiency(obj)
	})

	return &OrderedView{in: in, perm: perm}
}
