package dp_test

import (
	"testing"

	"github.com/jjorge/knapsack/dag"
	"github.com/jjorge/knapsack/dp"
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
	"github.com/jjorge/knapsack/view"
	"github.com/stretchr/testify/require"
)

func buildInstance(t *testing.T) *kpinstance.Instance {
	t.Helper()
	costs := []numeric.Vector{{3, 2}, {4, 3}, {2, 4}}
	weights := []numeric.Real{2, 3, 1}
	items := make([]kpinstance.Item, len(costs))
	for i := range costs {
		it, err := kpinstance.NewItem(i, costs[i], weights[i])
		require.NoError(t, err)
		items[i] = it
	}
	in, err := kpinstance.NewInstance(items, 4)
	require.NoError(t, err)

	return in
}

func buildGraph(t *testing.T) (*kpinstance.Instance, *view.SortableMonoView, *dag.Graph) {
	t.Helper()
	in := buildInstance(t)
	v := view.ByObjective(in, 0)
	v.SortByDecreasingEfficiency()
	g, err := dag.Build(v, dag.HalfLine{Threshold: 0})
	require.NoError(t, err)

	return in, v, g
}

func TestSingleBestReconstructsOptimalSolution(t *testing.T) {
	in, v, g := buildGraph(t)

	sol, err := dp.SingleBest(g, v, in)
	require.NoError(t, err)
	require.True(t, sol.IsFeasible(in))

	require.InDelta(t, 4.0, sol.Value.Weight, 1e-9)
	require.InDelta(t, 6.0, sol.Value.Cost[0], 1e-9)
	require.InDelta(t, 7.0, sol.Value.Cost[1], 1e-9)

	require.Equal(t, kpinstance.Set, sol.Binary.At(1))
	require.Equal(t, kpinstance.Set, sol.Binary.At(2))
	require.Equal(t, kpinstance.Unset, sol.Binary.At(0))
}

func TestMultiBestEachSolutionReachesTheOptimum(t *testing.T) {
	in, v, g := buildGraph(t)

	sols, err := dp.MultiBest(g, v, in)
	require.NoError(t, err)
	require.NotEmpty(t, sols)

	for _, sol := range sols {
		require.True(t, sol.IsFeasible(in))
		require.InDelta(t, 6.0, sol.Value.Cost[0], 1e-9)
	}

	seen := make(map[string]bool)
	for _, sol := range sols {
		key := ""
		for i := 0; i < sol.Binary.Len(); i++ {
			switch sol.Binary.At(i) {
			case kpinstance.Set:
				key += "1"
			case kpinstance.Unset:
				key += "0"
			default:
				key += "."
			}
		}
		require.False(t, seen[key], "duplicate solution %s", key)
		seen[key] = true
	}
}

func TestMultiBestIncludesSingleBestSolution(t *testing.T) {
	in, v, g := buildGraph(t)

	single, err := dp.SingleBest(g, v, in)
	require.NoError(t, err)

	multi, err := dp.MultiBest(g, v, in)
	require.NoError(t, err)

	found := false
	for _, sol := range multi {
		if sol.Binary.Equal(single.Binary) {
			found = true
			break
		}
	}
	require.True(t, found, "single-best solution must appear among multi-best solutions")
}
