package biobj

import (
	"sort"

	"github.com/jjorge/knapsack/numeric"
)

// TriangleSet is the ordered collection of consecutive triangles spanning
// every pair of extreme supported points, keyed by increasing Left z1.
type TriangleSet struct {
	triangles []*Triangle
}

// NewTriangleSet builds one triangle per consecutive pair of extremes.
// extremes must be sorted by strictly increasing z1 (equivalently strictly
// decreasing z2) before calling.
func NewTriangleSet(extremes []numeric.Vector) (*TriangleSet, error) {
	sorted := make([]numeric.Vector, len(extremes))
	copy(sorted, extremes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i][0] < sorted[j][0]
	})

	ts := &TriangleSet{}
	for i := 0; i+1 < len(sorted); i++ {
		tr, err := NewTriangle(sorted[i], sorted[i+1])
		if err != nil {
			return nil, err
		}
		ts.triangles = append(ts.triangles, tr)
	}

	return ts, nil
}

// Triangles returns the triangles in increasing-z1 order.
func (ts *TriangleSet) Triangles() []*Triangle { return ts.triangles }

// Route returns the first unlocked triangle whose span contains image's z1
// coordinate, the one phase-2 should re-check image against after it was
// rejected by the triangle that produced it ("out-profits set").
func (ts *TriangleSet) Route(image numeric.Vector) *Triangle {
	for _, tr := range ts.triangles {
		if tr.locked {
			continue
		}
		if numeric.GreaterEqual(image[0], tr.Left[0]) && numeric.LessEqual(image[0], tr.Right[0]) {
			return tr
		}
	}

	return nil
}

// Smallest returns the unlocked triangle with the smallest (Right.z1 -
// Left.z1) strip, the order phase-2 processes triangles in (this package:
// "pick the smallest-strip triangle first").
func (ts *TriangleSet) Smallest() *Triangle {
	var best *Triangle
	var bestWidth numeric.Real
	for _, tr := range ts.triangles {
		if tr.locked {
			continue
		}
		width := tr.Right[0] - tr.Left[0]
		if best == nil || width < bestWidth {
			best = tr
			bestWidth = width
		}
	}

	return best
}
