package triobj

import (
	"sort"

	"github.com/jjorge/knapsack/dag"
	"github.com/jjorge/knapsack/dp"
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
	"github.com/jjorge/knapsack/pareto"
	"github.com/jjorge/knapsack/relax"
	"github.com/jjorge/knapsack/view"
)

// sampleDirections are the weighted-sum scalarisations used to approximate
// a node's reachable-supported-solutions hull ("the set of
// supported solutions reachable from this node, computed by a local
// phase-1 on the free variables"). A full tri-objective phase-1 recursed at
// every node is prohibitively expensive; this fixed direction sample (the
// three axes, the three pairwise averages, and the centre) is the
// deliberate reduction, grounded in the same weighted-sum view machinery
// (package view) package biobj's own phase-1 scalarises with.
var sampleDirections = []numeric.Vector{
	{1, 0, 0}, {0, 1, 0}, {0, 0, 1},
	{1, 1, 0}, {1, 0, 1}, {0, 1, 1},
	{1, 1, 1},
}

// Node is one partial solution of the tri-objective A* search.
type Node struct {
	Sol  kpinstance.KnapsackSolution
	Free []int // free source indices, ascending

	sub       *view.SubsetView
	Reachable *pareto.MaximumCompleteSet // approximate local hull
	Utopian   numeric.Vector             // exact per-objective ideal point

	dominatedCount int
}

// NewRootNode builds the search root: every variable free, the instance's
// full capacity available.
func NewRootNode(in *kpinstance.Instance) (*Node, error) {
	free := make([]int, in.Size())
	for i := range free {
		free[i] = i
	}
	sol := kpinstance.NewKnapsackSolution(in.Size(), in.Objectives())

	return buildNode(in, sol, free)
}

// buildNode materialises a node's free sub-instance, reachable hull
// approximation, and utopian point.
func buildNode(in *kpinstance.Instance, sol kpinstance.KnapsackSolution, free []int) (*Node, error) {
	sorted := make([]int, len(free))
	copy(sorted, free)
	sort.Ints(sorted)

	residual := in.Capacity() - sol.Value.Weight
	subView, err := view.NewSubsetView(in, sorted, residual)
	if err != nil {
		return nil, err
	}

	n := &Node{Sol: sol, Free: sorted, sub: subView}

	if len(sorted) == 0 {
		n.Reachable = pareto.NewMaximumCompleteSet()
		n.Utopian = sol.Value.Cost.Clone()

		return n, nil
	}

	subIn, err := subView.ToInstance()
	if err != nil {
		return nil, err
	}

	reachable, err := localReachable(subIn)
	if err != nil {
		return nil, err
	}
	n.Reachable = reachable

	utopianFree, err := exactUtopian(subIn)
	if err != nil {
		return nil, err
	}
	utopian, err := sol.Value.Cost.Add(utopianFree)
	if err != nil {
		return nil, err
	}
	n.Utopian = utopian

	return n, nil
}

// localReachable solves the weighted-sum problem along sampleDirections and
// folds every optimum into a maximum complete set, the node's approximation
// of its reachable supported-solutions hull.
func localReachable(subIn *kpinstance.Instance) (*pareto.MaximumCompleteSet, error) {
	out := pareto.NewMaximumCompleteSet()
	for _, lambda := range sampleDirections {
		wv, err := view.NewWeightedSumView(subIn, lambda)
		if err != nil {
			return nil, err
		}
		wv.SortByDecreasingEfficiency()

		g, err := dag.Build(wv, dag.HalfLine{Threshold: 0})
		if err != nil {
			return nil, err
		}

		sol, err := dp.SingleBest(g, wv, subIn)
		if err != nil {
			return nil, err
		}
		if _, err := out.Insert(sol); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// exactUtopian solves, for each objective independently, the mono DP
// maximising that objective alone over the free items ("a
// utopian (ideal) point estimated by solving, for each objective, a mono DP
// on the free variables").
func exactUtopian(subIn *kpinstance.Instance) (numeric.Vector, error) {
	p := subIn.Objectives()
	out := make(numeric.Vector, p)
	for j := 0; j < p; j++ {
		v := view.ByObjective(subIn, j)
		v.SortByDecreasingEfficiency()

		g, err := dag.Build(v, dag.HalfLine{Threshold: 0})
		if err != nil {
			return nil, err
		}

		best := numeric.Real(0)
		first := true
		for _, ref := range g.LayerVertices(g.Layers() - 1) {
			val := g.Vertex(ref).Profit
			if first || numeric.Greater(val, best) {
				best = val
				first = false
			}
		}
		out[j] = best
	}

	return out, nil
}

// weightedRelax computes the weighted-sum linear relaxation upper bound
// lambda.Value.Cost + relax(free items, residual capacity) over the node's
// free sub-instance, used by the bound cut.
func (n *Node) weightedRelax(in *kpinstance.Instance, lambda numeric.Vector) (numeric.Real, error) {
	base, err := lambda.Dot(n.Sol.Value.Cost)
	if err != nil {
		return 0, err
	}
	if len(n.Free) == 0 {
		return base, nil
	}

	subIn, err := n.sub.ToInstance()
	if err != nil {
		return 0, err
	}
	wv, err := view.NewWeightedSumView(subIn, lambda)
	if err != nil {
		return 0, err
	}
	wv.SortByDecreasingEfficiency()

	r := relax.MartelloToth(wv, 0, n.sub.Capacity(), 0)

	return base + r.Value, nil
}

// Cardinality returns the number of variables fixed Set so far.
func (n *Node) Cardinality() int { return len(n.Sol.Binary.SetItems()) }

// TightnessRatio is the fraction of capacity already used.
func (n *Node) TightnessRatio(in *kpinstance.Instance) numeric.Real {
	cap_ := in.Capacity()
	if cap_ == 0 {
		return 0
	}

	return n.Sol.Value.Weight / cap_
}

// Residual returns the capacity still available.
func (n *Node) Residual(in *kpinstance.Instance) numeric.Real {
	return in.Capacity() - n.Sol.Value.Weight
}
