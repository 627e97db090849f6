package ranking

import (
	"github.com/jjorge/knapsack/dag"
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
	"github.com/jjorge/knapsack/pareto"
)

// PathsRegion is the search region Rank enumerates against: a shape in cost
// space that tightens as new non-dominated images are discovered strictly
// inside it (this package "Triangle", §4.7 "paths region"). biobj.TriangleFront
// is the bi-objective implementation.
type PathsRegion interface {
	// MinProfit is the current lower bound on the weighted-sum value a path
	// must reach to still be worth popping.
	MinProfit() numeric.Real
	// Contains reports whether image lies strictly inside the region.
	Contains(image numeric.Vector) (bool, error)
	// Insert records a newly accepted image, possibly tightening MinProfit.
	// raised reports whether the bound strictly increased.
	Insert(image numeric.Vector) (raised bool, newMinProfit numeric.Real, err error)
}

// Rank enumerates every feasible solution whose image lies in region, in
// non-increasing order of the scalarised path value, until region's
// min-profit exceeds the best remaining candidate.
//
// outProfits, if non-nil, collects every accepted-as-feasible image that
// turned out to lie outside region ("out-profits set"); callers
// route these into neighbouring triangles.
//
// Every popped path spawns its branch derivatives
// regardless of whether it was itself accepted: only this keeps the table
// populated once the search has entered the triangle, since an accepted
// path's own branches are exactly the next candidates the algorithm must
// consider. The "otherwise" phrasing only disambiguates which paths
// must not be added to the output, not which paths generate successors.
func Rank(g *dag.Graph, itemProfit ItemProfit, srcIndex SourceIndex, in *kpinstance.Instance, region PathsRegion, outProfits *pareto.Set) ([]kpinstance.KnapsackSolution, error) {
	terminal := g.LayerVertices(g.Layers() - 1)
	if len(terminal) == 0 {
		return nil, ErrEmptyTerminalLayer
	}

	table := NewQualityTable()
	for _, ref := range terminal {
		if numeric.GreaterEqual(g.Vertex(ref).Profit, region.MinProfit()) {
			table.Insert(seedPath(g, ref))
		}
	}

	var out []kpinstance.KnapsackSolution
	for {
		maxVal, ok := table.Max()
		if !ok || numeric.Less(maxVal, region.MinProfit()) {
			break
		}
		p, _ := table.PopMax()

		sol, err := Materialize(g, itemProfit, srcIndex, p, in)
		if err != nil {
			return nil, err
		}

		inside, err := region.Contains(sol.Value.Cost)
		if err != nil {
			return nil, err
		}
		if inside {
			out = append(out, sol)
			raised, newMin, ierr := region.Insert(sol.Value.Cost)
			if ierr != nil {
				return nil, ierr
			}
			if raised {
				table.GC(newMin)
			}
		} else if outProfits != nil {
			if _, _, oerr := outProfits.Insert(sol.Value.Cost); oerr != nil {
				return nil, oerr
			}
		}

		for _, derived := range p.branches(g, itemProfit) {
			if numeric.GreaterEqual(derived.Value, region.MinProfit()) {
				table.Insert(derived)
			}
		}
	}

	return out, nil
}
