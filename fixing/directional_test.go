package fixing_test

import (
	"testing"

	"github.com/jjorge/knapsack/fixing"
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
	"github.com/stretchr/testify/require"
)

func buildDirectionalInstance(t *testing.T) *kpinstance.Instance {
	t.Helper()
	// item 2 is too heavy for the capacity under any scalarisation: MTR's
	// post-fix pass unsets it regardless of lambda or lower bound.
	costs := []numeric.Vector{{10, 1}, {1, 10}, {1, 1}}
	weights := []numeric.Real{1, 1, 100}
	items := make([]kpinstance.Item, len(costs))
	for i := range costs {
		it, err := kpinstance.NewItem(i, costs[i], weights[i])
		require.NoError(t, err)
		items[i] = it
	}
	in, err := kpinstance.NewInstance(items, 2)
	require.NoError(t, err)

	return in
}

func TestDirectionalFixesItemTooHeavyInEveryTriangle(t *testing.T) {
	in := buildDirectionalInstance(t)

	triangles := []fixing.Triangle{
		{Lambda: numeric.Vector{1, 0}, LBZ1: 0, LBZ2: 0, LBComb: 0},
		{Lambda: numeric.Vector{0, 1}, LBZ1: 0, LBZ2: 0, LBComb: 0},
		{Lambda: numeric.Vector{1, 1}, LBZ1: 0, LBZ2: 0, LBComb: 0},
	}

	forced, err := fixing.Directional(in, triangles)
	require.NoError(t, err)
	require.Equal(t, kpinstance.Unset, forced[2])
}

func TestDirectionalSkipsInfeasibleTriangleRatherThanAborting(t *testing.T) {
	in := buildDirectionalInstance(t)

	// LBComb so strong that Combined's MTR pass forces every remaining item
	// Set, overflowing capacity (ErrInfeasible) for this one triangle; the
	// call as a whole must still succeed rather than aborting
	// (fixing.ErrInfeasible's own doc comment: "the caller's recovery, not
	// this package's"), exactly as fixing.Combined's own per-triangle
	// ErrInfeasible is recovered in biobj's phase-2.
	triangles := []fixing.Triangle{
		{Lambda: numeric.Vector{1, 1}, LBZ1: 1000, LBZ2: 1000, LBComb: 1000},
		{Lambda: numeric.Vector{1, 0}, LBZ1: 0, LBZ2: 0, LBComb: 0},
	}

	_, err := fixing.Directional(in, triangles)
	require.NoError(t, err)
}
