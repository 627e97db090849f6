package pareto

import (
	"sort"

	"github.com/jjorge/knapsack/numeric"
)

// NadirUnit is the amount subtracted on differing coordinates when deriving
// a nadir point from two neighbours ("(x2-1, y2-1) in the
// integer-like setting"). Instances with integral costs should leave this at
// its default of 1; instances built from genuinely fractional costs may
// lower it (e.g. to numeric.Epsilon) to keep nadirs strictly dominated-free.
var NadirUnit numeric.Real = 1

// BoundSet holds the nadir-like points of the lower envelope of a Set: the
// local minima between consecutive non-dominated points, underapproximating
// the achievable value from below ("Bound set").
type BoundSet struct {
	points []numeric.Vector
}

// NewBoundSet returns an empty BoundSet.
func NewBoundSet() *BoundSet { return &BoundSet{} }

// Len returns the number of nadirs currently stored.
func (b *BoundSet) Len() int { return len(b.points) }

// Points returns a defensive copy of the stored nadirs.
func (b *BoundSet) Points() []numeric.Vector {
	out := make([]numeric.Vector, len(b.points))
	for i, p := range b.points {
		out[i] = p.Clone()
	}

	return out
}

// Nadir derives the nadir point of two neighbouring non-dominated points:
// the componentwise minimum of a and b, minus NadirUnit on every coordinate
// where a and b differ.
func Nadir(a, b numeric.Vector) (numeric.Vector, error) {
	m, err := numeric.ComponentwiseMin(a, b)
	if err != nil {
		return nil, err
	}
	out := make(numeric.Vector, len(m))
	for i := range m {
		out[i] = m[i]
		if !numeric.Equal(a[i], b[i]) {
			out[i] -= NadirUnit
		}
	}

	return out, nil
}

// insertSorted inserts v keeping b.points lexicographically sorted,
// skipping duplicates.
func (b *BoundSet) insertSorted(v numeric.Vector) {
	idx := sort.Search(len(b.points), func(i int) bool {
		less, _ := v.Less(b.points[i])

		return less
	})
	if idx > 0 {
		if eq, _ := b.points[idx-1].Equal(v); eq {
			return
		}
	}
	b.points = append(b.points, nil)
	copy(b.points[idx+1:], b.points[idx:])
	b.points[idx] = v
}

// Reduce applies the newly non-dominated point v (already inserted into
// pareto) to the bound set: every stored nadir n with n <= v elementwise is
// removed, and if v was inserted between two neighbours in pareto, the two
// newly formed nadirs (v,prev) and (v,next) are inserted. Reports whether
// the bound set changed ("triggers a lower-bound recomputation").
func (b *BoundSet) Reduce(pareto *Set, v numeric.Vector) (bool, error) {
	changed := false

	kept := b.points[:0:0]
	for _, n := range b.points {
		dom, err := v.WeaklyDominates(n)
		if err != nil {
			return false, err
		}
		if dom {
			changed = true

			continue
		}
		kept = append(kept, n)
	}
	b.points = kept

	prev, next, err := pareto.Neighbors(v)
	if err != nil {
		return false, err
	}
	if prev != nil {
		n, nErr := Nadir(v, prev)
		if nErr != nil {
			return false, nErr
		}
		b.insertSorted(n)
		changed = true
	}
	if next != nil {
		n, nErr := Nadir(v, next)
		if nErr != nil {
			return false, nErr
		}
		b.insertSorted(n)
		changed = true
	}

	return changed, nil
}

// DominatesAny reports whether v is weakly dominated by (lies at or above)
// no stored nadir, i.e. whether an upper bound of v would need to beat at
// least one nadir to be "interesting" (the bound cut: "for at least
// one nadir, weighted_relax(...) >= lambda.nadir must hold").
func (b *BoundSet) DominatesAny(v numeric.Vector) (bool, error) {
	for _, n := range b.points {
		dom, err := v.WeaklyDominates(n)
		if err != nil {
			return false, err
		}
		if dom {
			return true, nil
		}
	}

	return false, nil
}
