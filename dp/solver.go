package dp

import (
	"github.com/jjorge/knapsack/dag"
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
)

// View is the read surface a dp walk needs from the mono view the graph was
// built over: dag.MonoView plus the view-to-source index mapping, so a
// backward walk can recover which original item a layer transition refers
// to. *view.SortableMonoView and *view.OrderedView both satisfy it.
type View interface {
	dag.MonoView
	SourceIndex(i int) int
}

// SingleBest walks g backward from the best-profit terminal vertex,
// reconstructing one optimal kpinstance.KnapsackSolution against in (spec
// §4.6). Ties among terminal vertices or among matching parents are broken
// by picking the first one encountered; any complete solution achieving the
// optimum is a valid answer.
func SingleBest(g *dag.Graph, v View, in *kpinstance.Instance) (kpinstance.KnapsackSolution, error) {
	best, ok := bestTerminal(g)
	if !ok {
		return kpinstance.KnapsackSolution{}, ErrEmptyTerminalLayer
	}

	sol := kpinstance.NewKnapsackSolution(in.Size(), in.Objectives())
	cur := g.Vertex(best)
	for cur.Layer > 0 {
		layerIdx := cur.Layer - 1
		itemProfit := v.Profit(layerIdx)
		srcIdx := v.SourceIndex(layerIdx)

		switch {
		case cur.ParentZero != dag.NoParent && numeric.Equal(g.Vertex(cur.ParentZero).Profit, cur.Profit):
			sol.UnsetItem(in, srcIdx)
			cur = g.Vertex(cur.ParentZero)
		case cur.ParentOne != dag.NoParent && numeric.Equal(g.Vertex(cur.ParentOne).Profit+itemProfit, cur.Profit):
			sol.SetItem(in, srcIdx)
			cur = g.Vertex(cur.ParentOne)
		default:
			return kpinstance.KnapsackSolution{}, errBrokenPath
		}
	}

	return sol, nil
}

// MultiBest returns every optimal binary solution, each produced exactly
// once, by recursing into both parents whenever both the skip and keep
// profit equalities hold at a vertex.
func MultiBest(g *dag.Graph, v View, in *kpinstance.Instance) ([]kpinstance.KnapsackSolution, error) {
	terminal := g.LayerVertices(g.Layers() - 1)
	if len(terminal) == 0 {
		return nil, ErrEmptyTerminalLayer
	}

	best := numeric.Real(0)
	first := true
	for _, ref := range terminal {
		p := g.Vertex(ref).Profit
		if first || numeric.Greater(p, best) {
			best = p
			first = false
		}
	}

	var out []kpinstance.KnapsackSolution
	for _, ref := range terminal {
		if !numeric.Equal(g.Vertex(ref).Profit, best) {
			continue
		}
		seed := kpinstance.NewKnapsackSolution(in.Size(), in.Objectives())
		if err := collect(g, v, in, ref, seed, &out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func collect(g *dag.Graph, v View, in *kpinstance.Instance, ref dag.VertexRef, partial kpinstance.KnapsackSolution, out *[]kpinstance.KnapsackSolution) error {
	cur := g.Vertex(ref)
	if cur.Layer == 0 {
		*out = append(*out, partial)
		return nil
	}

	layerIdx := cur.Layer - 1
	itemProfit := v.Profit(layerIdx)
	srcIdx := v.SourceIndex(layerIdx)

	took := false
	if cur.ParentZero != dag.NoParent && numeric.Equal(g.Vertex(cur.ParentZero).Profit, cur.Profit) {
		took = true
		next := partial.Clone()
		next.UnsetItem(in, srcIdx)
		if err := collect(g, v, in, cur.ParentZero, next, out); err != nil {
			return err
		}
	}
	if cur.ParentOne != dag.NoParent && numeric.Equal(g.Vertex(cur.ParentOne).Profit+itemProfit, cur.Profit) {
		took = true
		next := partial.Clone()
		next.SetItem(in, srcIdx)
		if err := collect(g, v, in, cur.ParentOne, next, out); err != nil {
			return err
		}
	}
	if !took {
		return errBrokenPath
	}

	return nil
}

func bestTerminal(g *dag.Graph) (dag.VertexRef, bool) {
	terminal := g.LayerVertices(g.Layers() - 1)
	if len(terminal) == 0 {
		return 0, false
	}

	best := terminal[0]
	for _, ref := range terminal[1:] {
		if numeric.Greater(g.Vertex(ref).Profit, g.Vertex(best).Profit) {
			best = ref
		}
	}

	return best, true
}
