package triobj

import (
	"strconv"

	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/pareto"
	"github.com/jjorge/knapsack/view"
)

// SolveTri computes the maximum complete set of a tri-objective instance
// ("solve_tri"). order selects the branching sequence: one of
// view's named orders, or a base-10 non-negative integer denoting decreasing
// efficiency on that objective.
func SolveTri(in *kpinstance.Instance, order string) (*pareto.MaximumCompleteSet, error) {
	if in.Objectives() != 3 {
		return nil, ErrNotTriObjective
	}

	ordered, err := resolveOrder(in, order)
	if err != nil {
		return nil, err
	}

	global := pareto.NewMaximumCompleteSet()
	bound := pareto.NewBoundSet()

	root, err := NewRootNode(in)
	if err != nil {
		return nil, err
	}

	q := NewQueue(in)
	q.Push(root)

	for {
		node, ok := q.Pop()
		if !ok {
			break
		}

		if len(node.Free) == 0 {
			if err := acceptCandidate(in, node, global, bound, q); err != nil {
				return nil, err
			}

			continue
		}

		shouldClose, err := utopianCut(node, global.Images())
		if err != nil {
			return nil, err
		}
		if shouldClose {
			continue
		}

		shouldClose, err = boundAndHullCut(in, node, bound)
		if err != nil {
			return nil, err
		}
		if shouldClose {
			continue
		}

		idx := pickBranchIndex(node, ordered)
		children, err := expand(in, node, idx)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			q.Push(child)
		}
	}

	return global, nil
}

// acceptCandidate folds a fully-decided node's solution into the global
// front, updates the bound set, and refreshes every queued node's
// dominated-solution count (this package step 6's cross-node coupling).
func acceptCandidate(in *kpinstance.Instance, node *Node, global *pareto.MaximumCompleteSet, bound *pareto.BoundSet, q *Queue) error {
	outcome, err := global.Insert(node.Sol)
	if err != nil {
		return err
	}
	if outcome != pareto.Added && outcome != pareto.Replaced {
		return nil
	}

	if _, err := bound.Reduce(global.Images(), node.Sol.Value.Cost); err != nil {
		return err
	}

	return q.RefreshDominance(func(n *Node) (int, error) {
		return dominatedCount(n, global.Images())
	})
}

func resolveOrder(in *kpinstance.Instance, order string) (*view.OrderedView, error) {
	if obj, err := strconv.Atoi(order); err == nil && obj >= 0 {
		return view.NewOrderedViewByObjective(in, obj), nil
	}

	return view.NewOrderedView(in, view.OrderName(order), 1)
}
