package view

import (
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
)

// SubsetView restricts an instance to a chosen index subset with a
// possibly reduced capacity (this package "subset view"; used by variable
// fixing when a sub-instance is built over the free variables only).
type SubsetView struct {
	in       *kpinstance.Instance
	indices  []int // indices[i] = source index of the i-th item in the view
	capacity numeric.Real
}

// NewSubsetView validates indices against in and builds a SubsetView.
func NewSubsetView(in *kpinstance.Instance, indices []int, capacity numeric.Real) (*SubsetView, error) {
	for _, idx := range indices {
		if idx < 0 || idx >= in.Size() {
			return nil, ErrIndexOutOfRange
		}
	}
	cp := make([]int, len(indices))
	copy(cp, indices)

	return &SubsetView{in: in, indices: cp, capacity: capacity}, nil
}

// Size returns the number of items in the subset.
func (v *SubsetView) Size() int { return len(v.indices) }

// Capacity returns the (possibly reduced) capacity carried by this view.
func (v *SubsetView) Capacity() numeric.Real { return v.capacity }

// Objectives returns the underlying instance's objective count.
func (v *SubsetView) Objectives() int { return v.in.Objectives() }

// Item returns the i-th item of the subset.
func (v *SubsetView) Item(i int) kpinstance.Item { return v.in.Item(v.indices[i]) }

// SourceIndex maps a subset-view position back to the original instance
// index.
func (v *SubsetView) SourceIndex(i int) int { return v.indices[i] }

// Efficiency returns cost[obj]/weight for the i-th item.
func (v *SubsetView) Efficiency(obj, i int) numeric.Real {
	return v.in.Item(v.indices[i]).Efficiency(obj)
}

// Indices returns a defensive copy of the subset's source indices.
func (v *SubsetView) Indices() []int {
	out := make([]int, len(v.indices))
	copy(out, v.indices)

	return out
}

// ToInstance materialises the subset as a standalone Instance with the
// view's capacity, used by sub-solvers (e.g. phase-1 on a node's free
// variables) that need a full kpinstance.Instance rather than a view.
func (v *SubsetView) ToInstance() (*kpinstance.Instance, error) {
	items := make([]kpinstance.Item, v.Size())
	for i := 0; i < v.Size(); i++ {
		it := v.Item(i)
		ni, err := kpinstance.NewItem(i, it.Cost(), it.Weight())
		if err != nil {
			return nil, err
		}
		items[i] = ni
	}

	return kpinstance.NewInstance(items, v.capacity)
}
