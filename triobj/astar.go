package triobj

import (
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
	"github.com/jjorge/knapsack/pareto"
	"github.com/jjorge/knapsack/view"
)

// dominatedCount counts how many of node's reachable-hull images are
// dominated by the current global front, the figure the priority queue
// comparator sorts on and refreshes on every global
// insertion (step 6's "only cross-node coupling").
func dominatedCount(node *Node, global *pareto.Set) (int, error) {
	count := 0
	for _, img := range node.Reachable.Images().Points() {
		dom, err := global.Dominated(img)
		if err != nil {
			return 0, err
		}
		if dom {
			count++
		}
	}

	return count, nil
}

// pickBranchIndex chooses the next free index to branch on: one with mixed
// values across the reachable hull's sample solutions if any exists,
// otherwise the first free index in order's branching sequence (this package
// step 6).
func pickBranchIndex(node *Node, order *view.OrderedView) int {
	localOf := make(map[int]int, len(node.Free))
	for i, src := range node.Free {
		localOf[src] = i
	}

	sols := node.Reachable.Solutions()
	if len(sols) > 1 {
		for _, src := range node.Free {
			local, ok := localOf[src]
			if !ok {
				continue
			}
			sawSet, sawOther := false, false
			for _, s := range sols {
				if local >= s.Binary.Len() {
					continue
				}
				if s.Binary.At(local) == kpinstance.Set {
					sawSet = true
				} else {
					sawOther = true
				}
			}
			if sawSet && sawOther {
				return src
			}
		}
	}

	for i := 0; i < order.Size(); i++ {
		src := order.SourceIndex(i)
		if node.Sol.Binary.At(src) == kpinstance.Free {
			return src
		}
	}

	return -1
}

// expand produces node's two children by branching on idx, applying
// dominance diffusion to each. A child whose
// diffusion proves infeasible is dropped silently rather than returned.
func expand(in *kpinstance.Instance, node *Node, idx int) ([]*Node, error) {
	var out []*Node
	for _, t := range [2]kpinstance.Trit{kpinstance.Unset, kpinstance.Set} {
		sol := node.Sol.Clone()
		if t == kpinstance.Set {
			if numeric.Greater(sol.Value.Weight+in.Item(idx).Weight(), in.Capacity()) {
				continue
			}
			sol.SetItem(in, idx)
		} else {
			sol.UnsetItem(in, idx)
		}

		if err := diffuse(in, &sol, t); err != nil {
			if err == errBranchInfeasible {
				continue
			}

			return nil, err
		}

		free := sol.Binary.FreeItems()
		child, err := buildNode(in, sol, free)
		if err != nil {
			return nil, err
		}
		out = append(out, child)
	}

	return out, nil
}
