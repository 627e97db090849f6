package weightset_test

import (
	"testing"

	"github.com/jjorge/knapsack/weightset"
	"github.com/stretchr/testify/require"
)

func TestSimplexContainsItsCentroid(t *testing.T) {
	s := weightset.NewSimplex()
	require.False(t, s.Empty())
	require.True(t, s.Contains(1.0/3, 1.0/3))
}

func TestAddConstraintClipsAwayExcludedRegion(t *testing.T) {
	s := weightset.NewSimplex()
	require.True(t, s.Contains(0.1, 0.1))

	// Cut the polygon down to l1 <= 0.2.
	s.AddConstraint(weightset.Facet{A: 1, B: 0, C: 0.2, Neighbor: 1})
	require.False(t, s.Empty())
	require.True(t, s.Contains(0.1, 0.1))
	require.False(t, s.Contains(0.5, 0.1))
}

func TestRepeatedCutsCanEmptyThePolygon(t *testing.T) {
	s := weightset.NewSimplex()
	s.AddConstraint(weightset.Facet{A: 1, B: 0, C: -0.1, Neighbor: 1})
	require.True(t, s.Empty())
	require.False(t, s.Contains(0, 0))
}
