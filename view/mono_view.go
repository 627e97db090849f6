package view

import (
	"math"
	"sort"

	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
)

// MonoProjector reduces one item's cost vector to a single scalar profit,
// used to build a mono-objective view over a multi-objective instance
// (e.g. a single coordinate, or a weighted-sum lambda.cost).
type MonoProjector func(it kpinstance.Item) numeric.Real

// SortableMonoView is a permutation-backed view projecting a
// multi-objective instance to one scalar objective. The zero
// permutation is the identity; SortByDecreasingEfficiency rewrites it.
type SortableMonoView struct {
	in   *kpinstance.Instance
	proj MonoProjector
	perm []int // perm[i] = source index of the i-th item in view order
}

// NewSortableMonoView returns a view in the instance's original order.
func NewSortableMonoView(in *kpinstance.Instance, proj MonoProjector) *SortableMonoView {
	perm := make([]int, in.Size())
	for i := range perm {
		perm[i] = i
	}

	return &SortableMonoView{in: in, proj: proj, perm: perm}
}

// ByObjective returns a mono view projecting objective j (0-indexed).
func ByObjective(in *kpinstance.Instance, j int) *SortableMonoView {
	return NewSortableMonoView(in, func(it kpinstance.Item) numeric.Real { return it.CostAt(j) })
}

// Size returns the number of items in the view.
func (v *SortableMonoView) Size() int { return len(v.perm) }

// Capacity returns the underlying instance's capacity.
func (v *SortableMonoView) Capacity() numeric.Real { return v.in.Capacity() }

// Objectives returns the underlying instance's objective count (the view
// itself exposes a single scalar profit via Profit/Efficiency).
func (v *SortableMonoView) Objectives() int { return v.in.Objectives() }

// SourceIndex maps a view-order position back to the original instance
// index.
func (v *SortableMonoView) SourceIndex(i int) int { return v.perm[i] }

// Item returns the i-th item in view order.
func (v *SortableMonoView) Item(i int) kpinstance.Item { return v.in.Item(v.perm[i]) }

// Profit returns the scalar projection of the i-th item.
func (v *SortableMonoView) Profit(i int) numeric.Real { return v.proj(v.Item(i)) }

// Weight returns the weight of the i-th item.
func (v *SortableMonoView) Weight(i int) numeric.Real { return v.Item(i).Weight() }

// Efficiency returns Profit(i)/Weight(i) (this package: single scalar
// objective argument is implicit here since the view already committed to
// one projection; obj is accepted and ignored for interface symmetry with
// multi-objective views).
func (v *SortableMonoView) Efficiency(obj, i int) numeric.Real {
	_ = obj
	w := v.Weight(i)
	if w == 0 {
		if v.Profit(i) == 0 {
			return 0
		}

		return math.Inf(1)
	}

	return v.Profit(i) / w
}

// SortByDecreasingEfficiency rewrites the permutation so that items appear
// in non-increasing order of Profit(i)/Weight(i).
func (v *SortableMonoView) SortByDecreasingEfficiency() {
	sort.SliceStable(v.perm, func(a, b int) bool {
		ea := v.efficiencyOf(v.perm[a])
		eb := v.efficiencyOf(v.perm[b])

		return ea > eb
	})
}

func (v *SortableMonoView) efficiencyOf(sourceIdx int) numeric.Real {
	it := v.in.Item(sourceIdx)
	p := v.proj(it)
	w := it.Weight()
	if w == 0 {
		if p == 0 {
			return 0
		}

		return math.Inf(1)
	}

	return p / w
}
