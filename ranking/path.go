package ranking

import (
	"github.com/jjorge/knapsack/dag"
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
)

// side names which parent a step along a path takes.
type side int

const (
	sideZero side = iota // item not chosen ("skip")
	sideOne              // item chosen ("keep")
)

func (s side) flip() side {
	if s == sideZero {
		return sideOne
	}

	return sideZero
}

// turningNode is one link of the persistent, shared turning-list: vertex
// is the DAG vertex at which a Path takes the non-default parent; parent
// points to the next-shallower (closer to root) turning. A turning is
// appended by creating a new tail pointing at the old one, so sibling
// Paths can share the unchanged prefix of their turning lists.
type turningNode struct {
	parent *turningNode
	vertex dag.VertexRef
}

// Path is a structurally shared spine from a terminal vertex (Root) toward
// the source, recorded as the root plus the ordered turning list where it
// diverges from each vertex's own default (locally optimal) parent.
type Path struct {
	Root  dag.VertexRef
	Value numeric.Real
	tail  *turningNode
}

// ItemProfit reports the scalar profit of the item transitioning between
// layer and layer+1 in the mono view the graph was built over.
type ItemProfit func(layer int) numeric.Real

// SourceIndex reports the original instance index of the item transitioning
// between layer and layer+1 in the mono view the graph was built over.
type SourceIndex func(layer int) int

// seedPath returns the zero-turning Path rooted at ref, whose value is
// simply the vertex's own recorded profit. The table starts with one such
// Path per terminal-layer vertex.
func seedPath(g *dag.Graph, ref dag.VertexRef) *Path {
	return &Path{Root: ref, Value: g.Vertex(ref).Profit}
}

// step is one vertex visited while walking a Path from root to source.
type step struct {
	ref          dag.VertexRef
	v            dag.Vertex
	usedSide     side // the parent this path takes at v
	defaultSide  side // the parent that matches v's own recorded Profit
	isBranching  bool // both parents present: a candidate for Path.branches
	usedProfit   numeric.Real
	altProfit    numeric.Real
	altAvailable bool
}

// walk replays p from its root to the source, reporting one step per
// vertex. At every vertex it resolves whether this Path's own turning list
// marks a deviation here (flip from the vertex's default parent) and
// whether the vertex is a branching point (both parents available, hence a
// candidate the ranking engine can diverge from to produce the next-best
// Path).
func walk(g *dag.Graph, itemProfit ItemProfit, p *Path) []step {
	// Flatten the shared turning tail, shallowest (closest to root) first.
	var turns []dag.VertexRef
	for t := p.tail; t != nil; t = t.parent {
		turns = append(turns, t.vertex)
	}
	for i, j := 0, len(turns)-1; i < j; i, j = i+1, j-1 {
		turns[i], turns[j] = turns[j], turns[i]
	}

	var steps []step
	cur := g.Vertex(p.Root)
	ref := p.Root
	ti := 0
	for cur.Layer > 0 {
		layerIdx := cur.Layer - 1
		itemP := itemProfit(layerIdx)

		var zeroProfit, oneProfit numeric.Real
		zeroAvail := cur.ParentZero != dag.NoParent
		oneAvail := cur.ParentOne != dag.NoParent
		if zeroAvail {
			zeroProfit = g.Vertex(cur.ParentZero).Profit
		}
		if oneAvail {
			oneProfit = g.Vertex(cur.ParentOne).Profit + itemP
		}

		var def side
		switch {
		case zeroAvail && (!oneAvail || numeric.GreaterEqual(zeroProfit, oneProfit)):
			def = sideZero
		default:
			def = sideOne
		}

		used := def
		if ti < len(turns) && turns[ti] == ref {
			used = def.flip()
			ti++
		}

		st := step{ref: ref, v: cur, usedSide: used, defaultSide: def, isBranching: zeroAvail && oneAvail}
		if used == sideZero {
			st.usedProfit = zeroProfit
		} else {
			st.usedProfit = oneProfit
		}
		if st.isBranching {
			st.altAvailable = true
			if used == sideZero {
				st.altProfit = oneProfit
			} else {
				st.altProfit = zeroProfit
			}
		}
		steps = append(steps, st)

		if used == sideZero {
			ref = cur.ParentZero
		} else {
			ref = cur.ParentOne
		}
		cur = g.Vertex(ref)
	}

	return steps
}

// branches returns, for every branching vertex v at or below p's own
// deepest turn (p.tail), the single derived Path that takes v's
// non-p-used parent and follows the optimal suffix from there: value =
// p.value - (p's contribution at v) + (the alternative contribution).
//
// Branching vertices strictly above p.tail (shallower, closer to the
// root) were already exploited by whichever ancestor Path first turned
// at p.tail or above: that ancestor's own branches() call already
// produced the deviation at those vertices. Re-emitting them here would
// regenerate the same candidate a second time, so the walk only starts
// generating once it reaches p's own last turn (p.tail.vertex); a Path
// with no turn yet (a freshly seeded path) has nothing to restrict and
// generates from its root.
func (p *Path) branches(g *dag.Graph, itemProfit ItemProfit) []*Path {
	steps := walk(g, itemProfit, p)

	started := p.tail == nil
	var out []*Path
	var prefix *turningNode
	for _, st := range steps {
		if !started && st.ref == p.tail.vertex {
			started = true
		}
		if started && st.isBranching {
			out = append(out, &Path{
				Root:  p.Root,
				Value: p.Value - st.usedProfit + st.altProfit,
				tail:  &turningNode{parent: prefix, vertex: st.ref},
			})
		}
		if st.usedSide != st.defaultSide {
			prefix = &turningNode{parent: prefix, vertex: st.ref}
		}
	}

	return out
}

// Materialize walks p from root to source, producing the
// kpinstance.KnapsackSolution and its full cost-vector image. At every
// turning vertex it takes the recorded branch; at every other vertex it
// follows the unique optimal-value parent, setting each variable according
// to whether the weight changed across the edge.
func Materialize(g *dag.Graph, itemProfit ItemProfit, srcIndex SourceIndex, p *Path, in *kpinstance.Instance) (kpinstance.KnapsackSolution, error) {
	steps := walk(g, itemProfit, p)
	sol := kpinstance.NewKnapsackSolution(in.Size(), in.Objectives())
	for _, st := range steps {
		src := srcIndex(st.v.Layer - 1)
		if st.usedSide == sideOne {
			sol.SetItem(in, src)
		} else {
			sol.UnsetItem(in, src)
		}
	}

	return sol, nil
}
