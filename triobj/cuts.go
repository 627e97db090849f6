package triobj

import (
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
	"github.com/jjorge/knapsack/pareto"
)

// diffuse applies dominance diffusion after branching x_src to t (this package
// step 1). Setting a variable propagates to every free variable that
// dominates an already-set one (aborting with errBranchInfeasible if one no
// longer fits); unsetting propagates to every free variable dominated by an
// already-unset one. Either way, anything now too heavy for the residual
// capacity is force-unset last.
func diffuse(in *kpinstance.Instance, sol *kpinstance.KnapsackSolution, t kpinstance.Trit) error {
	if t == kpinstance.Set {
		for {
			changed := false
			for i := 0; i < in.Size(); i++ {
				if sol.Binary.At(i) != kpinstance.Free {
					continue
				}
				dominatesSet := false
				for _, s := range sol.Binary.SetItems() {
					dom, err := in.Item(i).Cost().Dominates(in.Item(s).Cost())
					if err != nil {
						return err
					}
					if dom {
						dominatesSet = true

						break
					}
				}
				if !dominatesSet {
					continue
				}
				if numeric.Greater(sol.Value.Weight+in.Item(i).Weight(), in.Capacity()) {
					return errBranchInfeasible
				}
				sol.SetItem(in, i)
				changed = true
			}
			if !changed {
				break
			}
		}
	} else {
		for {
			changed := false
			for i := 0; i < in.Size(); i++ {
				if sol.Binary.At(i) != kpinstance.Free {
					continue
				}
				dominatedByUnset := false
				for j := 0; j < in.Size(); j++ {
					if sol.Binary.At(j) != kpinstance.Unset {
						continue
					}
					dom, err := in.Item(j).Cost().Dominates(in.Item(i).Cost())
					if err != nil {
						return err
					}
					if dom {
						dominatedByUnset = true

						break
					}
				}
				if dominatedByUnset {
					sol.UnsetItem(in, i)
					changed = true
				}
			}
			if !changed {
				break
			}
		}
	}

	for i := 0; i < in.Size(); i++ {
		if sol.Binary.At(i) == kpinstance.Free && numeric.Greater(sol.Value.Weight+in.Item(i).Weight(), in.Capacity()) {
			sol.UnsetItem(in, i)
		}
	}

	return nil
}

// utopianCut reports whether node's utopian point is already dominated by
// some solution in the global maximum complete set:
// nothing this node can reach could ever be non-dominated.
func utopianCut(node *Node, global *pareto.Set) (bool, error) {
	return global.Dominated(node.Utopian)
}

// boundAndHullCut reports whether node should be closed by the bound cut
//: among the bound set's nadirs weakly dominated by the
// utopian point, at least one must survive the weighted-sum relaxation bound
// using the utopian point as the weight vector; if none does, the node is
// closed.
//
// Step 5's hull cut additionally asks whether the surviving nadir is
// reachable from node's actual image set once shifted by the pending cost.
// node.Reachable is only a fixed-direction sample of the node's true
// reachable hull (see sampleDirections), not its exhaustive boundary: a
// nadir absent from the sample is not proven unreachable, only unsampled.
// Folding that absence into the closing decision would risk discarding a
// branch that still contains a genuine efficient solution, so the hull
// check is left out of the close condition entirely; only the
// relaxation-bound test, which is a true upper bound, is allowed to close a
// node.
func boundAndHullCut(in *kpinstance.Instance, node *Node, bound *pareto.BoundSet) (bool, error) {
	nadirs := bound.Points()
	if len(nadirs) == 0 {
		return false, nil
	}

	anySurvives := false
	for _, nadir := range nadirs {
		below, err := node.Utopian.WeaklyDominates(nadir)
		if err != nil {
			return false, err
		}
		if !below {
			continue
		}

		relaxed, err := node.weightedRelax(in, node.Utopian)
		if err != nil {
			return false, err
		}
		target, err := node.Utopian.Dot(nadir)
		if err != nil {
			return false, err
		}
		if numeric.GreaterEqual(relaxed, target) {
			anySurvives = true

			break
		}
	}

	return !anySurvives, nil
}
