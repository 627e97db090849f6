package fixing

import (
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
)

// View is the read surface a fixing pass needs from a sorted mono view: the
// scalar profit/weight per view position plus the mapping back to the
// instance's original item index.
type View interface {
	Size() int
	Capacity() numeric.Real
	Weight(i int) numeric.Real
	Profit(i int) numeric.Real
	SourceIndex(i int) int
}

// Result is the sub-instance a fixing pass produces: every source index
// decided so far, the guaranteed cost/weight of the ones fixed Set, and the
// indices left free to branch on ("a sub-instance on a keep-set
// of free indices, a guaranteed profit vector, and maps back solutions").
type Result struct {
	Forced           map[int]kpinstance.Trit
	Free             []int
	GuaranteedCost   numeric.Vector
	GuaranteedWeight numeric.Real
}

func newResult(p int) *Result {
	return &Result{Forced: make(map[int]kpinstance.Trit), GuaranteedCost: make(numeric.Vector, p)}
}

func (r *Result) setForced(in *kpinstance.Instance, src int, t kpinstance.Trit) error {
	if existing, ok := r.Forced[src]; ok {
		if existing != t {
			return ErrConflict
		}

		return nil
	}
	r.Forced[src] = t
	if t == kpinstance.Set {
		it := in.Item(src)
		for j := range r.GuaranteedCost {
			r.GuaranteedCost[j] += it.CostAt(j)
		}
		r.GuaranteedWeight += it.Weight()
	}

	return nil
}

// finalize runs the post-fix pass: items too heavy for the
// residual capacity are force-unset, and if the remaining free items'
// aggregate weight still fits the residual, they are all force-set. Repeats
// until stable, then reports ErrInfeasible if the guaranteed weight alone
// exceeds capacity.
func (r *Result) finalize(in *kpinstance.Instance) error {
	if numeric.Greater(r.GuaranteedWeight, in.Capacity()) {
		return ErrInfeasible
	}

	free := make([]int, 0, in.Size())
	for i := 0; i < in.Size(); i++ {
		if _, ok := r.Forced[i]; !ok {
			free = append(free, i)
		}
	}

	for {
		residual := in.Capacity() - r.GuaranteedWeight
		var stillFree []int
		var freeWeight numeric.Real
		changed := false
		for _, i := range free {
			w := in.Item(i).Weight()
			if numeric.Greater(w, residual) {
				if err := r.setForced(in, i, kpinstance.Unset); err != nil {
					return err
				}
				changed = true

				continue
			}
			stillFree = append(stillFree, i)
			freeWeight += w
		}
		free = stillFree

		if len(free) > 0 && !numeric.Greater(freeWeight, in.Capacity()-r.GuaranteedWeight) {
			for _, i := range free {
				if err := r.setForced(in, i, kpinstance.Set); err != nil {
					return err
				}
			}
			free = nil
			changed = true
		}

		if !changed {
			break
		}
	}

	if numeric.Greater(r.GuaranteedWeight, in.Capacity()) {
		return ErrInfeasible
	}
	r.Free = free

	return nil
}

// merge folds every forced decision of o into r (used by Combined to union
// three independent fixings).
func (r *Result) merge(in *kpinstance.Instance, o *Result) error {
	for src, t := range o.Forced {
		if err := r.setForced(in, src, t); err != nil {
			return err
		}
	}

	return nil
}
