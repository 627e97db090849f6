package dag

import (
	"sort"

	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
)

// MonoView is the minimal read surface Build needs from a mono-objective
// view: a decreasing-efficiency-sorted projection plus the real item behind
// each view position, so the DAG can accumulate the true multi-objective
// cost vector alongside the scalar profit.
type MonoView interface {
	Size() int
	Capacity() numeric.Real
	Weight(i int) numeric.Real
	Profit(i int) numeric.Real
	Item(i int) kpinstance.Item
}

// Graph is the built DP DAG: a per-layer slice of vertex references plus
// the arena backing them ("DP layer").
type Graph struct {
	arena  []Vertex
	layers [][]VertexRef
}

// Layers returns the number of layers (n+1).
func (g *Graph) Layers() int { return len(g.layers) }

// LayerVertices returns the vertex refs of layer i, sorted by weight.
func (g *Graph) LayerVertices(i int) []VertexRef { return g.layers[i] }

// Vertex dereferences a VertexRef.
func (g *Graph) Vertex(ref VertexRef) Vertex { return g.arena[ref] }

// Build constructs the DAG over v restricted to region.
//
// Layer 0 holds a single source vertex (weight 0, profit 0). Layer i+1 is
// built from layer i by, for each vertex in increasing-weight order,
// pushing a "skip" child at the same weight and, if it fits, a "keep"
// child at weight+item.Weight(); same-identity children are amalgamated.
// A vertex survives into its layer only if region.MinProfit() is still
// reachable from it (profit + Martello-Toth relaxation on the remaining
// items) and region.Accepts its component-wise max profile. The terminal
// layer additionally drops vertices whose profit alone does not reach
// region.MinProfit().
func Build(v MonoView, region Region) (*Graph, error) {
	n := v.Size()
	p := v.Item(0).Cost().Dim()
	cap_ := v.Capacity()

	g := &Graph{layers: make([][]VertexRef, n+1)}

	source := Vertex{Layer: 0, Weight: 0, Profit: 0, MaxProfile: make(numeric.Vector, p), ParentZero: NoParent, ParentOne: NoParent}
	g.arena = append(g.arena, source)
	g.layers[0] = []VertexRef{0}

	relaxCache := make(map[int]map[numeric.Real]numeric.Real, n)
	relaxFrom := func(layer int, capacity numeric.Real) numeric.Real {
		byCap, ok := relaxCache[layer]
		if !ok {
			byCap = make(map[numeric.Real]numeric.Real)
			relaxCache[layer] = byCap
		}
		if val, ok := byCap[capacity]; ok {
			return val
		}
		val := marttelloToth(v, layer, capacity)
		byCap[capacity] = val

		return val
	}

	for layer := 0; layer < n; layer++ {
		cur := g.layers[layer]
		item := v.Item(layer)
		itemWeight := v.Weight(layer)
		itemProfit := v.Profit(layer)
		itemCost := item.Cost()

		next := make(map[numeric.Real]VertexRef)

		pushChild := func(cand Vertex) {
			if existingRef, ok := next[cand.Weight]; ok {
				merged := amalgamate(g.arena[existingRef], cand)
				g.arena[existingRef] = merged

				return
			}
			g.arena = append(g.arena, cand)
			next[cand.Weight] = VertexRef(len(g.arena) - 1)
		}

		viable := func(weight, profit numeric.Real, maxProfile numeric.Vector) bool {
			// weight/profit describe the child at layer+1, whose own
			// remaining items start at layer+1 (item `layer` has already
			// been decided, kept or skipped, to reach this child) — relax
			// from there, not from `layer`, or item `layer` gets
			// double-counted into the bound.
			relaxed := relaxFrom(layer+1, cap_-weight)
			if !numeric.GreaterEqual(profit+relaxed, region.MinProfit()) {
				return false
			}

			return region.Accepts(maxProfile)
		}

		for _, ref := range cur {
			parent := g.arena[ref]

			// Skip child: same weight, item not chosen.
			skip := Vertex{
				Layer:      layer + 1,
				Weight:     parent.Weight,
				Profit:     parent.Profit,
				MaxProfile: parent.MaxProfile,
				ParentZero: ref,
				ParentOne:  NoParent,
				MaxCard:    parent.MaxCard,
			}
			if viable(skip.Weight, skip.Profit, skip.MaxProfile) {
				pushChild(skip)
			}

			// Keep child: item chosen, if it still fits.
			newWeight := parent.Weight + itemWeight
			if newWeight <= cap_ {
				newProfile, err := parent.MaxProfile.Add(itemCost)
				if err != nil {
					return nil, err
				}
				keep := Vertex{
					Layer:      layer + 1,
					Weight:     newWeight,
					Profit:     parent.Profit + itemProfit,
					MaxProfile: newProfile,
					ParentZero: NoParent,
					ParentOne:  ref,
					MaxCard:    parent.MaxCard + 1,
				}
				if viable(keep.Weight, keep.Profit, keep.MaxProfile) {
					pushChild(keep)
				}
			}
		}

		refs := make([]VertexRef, 0, len(next))
		for _, ref := range next {
			refs = append(refs, ref)
		}
		sort.Slice(refs, func(a, b int) bool { return g.arena[refs[a]].Weight < g.arena[refs[b]].Weight })
		g.layers[layer+1] = refs
	}

	// Terminal-layer filter: drop vertices whose profit alone does not
	// reach region.MinProfit() (no relaxation left to add).
	terminal := g.layers[n]
	kept := terminal[:0:0]
	for _, ref := range terminal {
		if numeric.GreaterEqual(g.arena[ref].Profit, region.MinProfit()) {
			kept = append(kept, ref)
		}
	}
	g.layers[n] = kept

	return g, nil
}

// marttelloToth adapts relax.MartelloToth to the dag.MonoView surface
// without importing package relax directly (it depends on view.SortableMonoView,
// a concrete type); Build only needs the scalar relaxation value, so it
// re-implements the same split-index scan directly against MonoView. Kept
// deliberately identical in shape to relax.MartelloToth.
func marttelloToth(v MonoView, from int, capacity numeric.Real) numeric.Real {
	n := v.Size()
	var cumWeight, cumProfit numeric.Real
	i := from
	for i < n {
		w := v.Weight(i)
		if cumWeight+w > capacity {
			break
		}
		cumWeight += w
		cumProfit += v.Profit(i)
		i++
	}
	if i >= n {
		return cumProfit
	}
	remaining := capacity - cumWeight

	return cumProfit + numeric.SafeDiv(remaining*v.Profit(i), v.Weight(i))
}
