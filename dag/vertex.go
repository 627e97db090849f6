package dag

import "github.com/jjorge/knapsack/numeric"

// VertexRef indexes into a Graph's arena. The zero value is not a valid
// reference into a non-empty graph except by convention; NoParent marks an
// absent parent.
type VertexRef int

// NoParent marks an absent "zero" or "one" parent.
const NoParent VertexRef = -1

// Vertex is a node of the DP DAG ("DP vertex"). Equality is
// (Layer, Weight); order is lexicographic on (Layer, Weight).
type Vertex struct {
	Layer  int
	Weight numeric.Real

	// Profit is the best scalar path-profit reaching this vertex (under the
	// view's projector).
	Profit numeric.Real

	// MaxProfile is the component-wise max, across every path amalgamated
	// into this vertex, of the true multi-objective cost vector accumulated
	// along that path.
	MaxProfile numeric.Vector

	// ParentZero is the predecessor reached by not taking the item between
	// Parent.Layer and Layer (NoParent if none).
	ParentZero VertexRef
	// ParentOne is the predecessor reached by taking that item (NoParent if
	// none).
	ParentOne VertexRef

	// MaxCard is the maximum cardinality (number of Set items) among every
	// path ending at this vertex.
	MaxCard int
}

// Equal reports vertex identity: same layer and same weight.
func (v Vertex) Equal(o Vertex) bool {
	return v.Layer == o.Layer && numeric.Equal(v.Weight, o.Weight)
}

// Less orders vertices lexicographically on (Layer, Weight).
func (v Vertex) Less(o Vertex) bool {
	if v.Layer != o.Layer {
		return v.Layer < o.Layer
	}

	return numeric.Less(v.Weight, o.Weight)
}

// amalgamate merges an incoming candidate into an existing vertex sharing
// its (Layer, Weight) identity: parents are unioned, the kept profit is the
// better of the two, the component-wise max profile is updated, and the
// cardinality is raised if necessary ("Amalgation").
func amalgamate(existing, incoming Vertex) Vertex {
	out := existing
	if numeric.Greater(incoming.Profit, out.Profit) {
		out.Profit = incoming.Profit
	}
	if incoming.ParentZero != NoParent {
		out.ParentZero = incoming.ParentZero
	}
	if incoming.ParentOne != NoParent {
		out.ParentOne = incoming.ParentOne
	}
	if incoming.MaxCard > out.MaxCard {
		out.MaxCard = incoming.MaxCard
	}
	merged := make(numeric.Vector, len(out.MaxProfile))
	for i := range merged {
		if out.MaxProfile[i] > incoming.MaxProfile[i] {
			merged[i] = out.MaxProfile[i]
		} else {
			merged[i] = incoming.MaxProfile[i]
		}
	}
	out.MaxProfile = merged

	return out
}
