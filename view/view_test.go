package view_test

import (
	"testing"

	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
	"github.com/jjorge/knapsack/view"
	"github.com/stretchr/testify/require"
)

func buildInstance(t *testing.T) *kpinstance.Instance {
	t.Helper()
	costs := []numeric.Vector{{6, 1}, {5, 2}, {4, 3}, {3, 4}}
	weights := []numeric.Real{2, 2, 2, 2}
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

func TestSortableMonoViewSortsByDecreasingEfficiency(t *testing.T) {
	in := buildInstance(t)
	v := view.ByObjective(in, 1) // cost[1] increasing across items
	v.SortByDecreasingEfficiency()
	require.Equal(t, 3, v.SourceIndex(0))
	require.Equal(t, 0, v.SourceIndex(3))
}

func TestWeightedSumViewRejectsNonPositiveLambda(t *testing.T) {
	in := buildInstance(t)
	_, err := view.NewWeightedSumView(in, numeric.Vector{1, 0})
	require.ErrorIs(t, err, view.ErrNonPositiveWeight)
}

func TestSubsetViewRestricts(t *testing.T) {
	in := buildInstance(t)
	sv, err := view.NewSubsetView(in, []int{1, 3}, 2)
	require.NoError(t, err)
	require.Equal(t, 2, sv.Size())
	require.Equal(t, 3, sv.SourceIndex(1))
}

func TestOrderedViewTopologicalIsIdentity(t *testing.T) {
	in := buildInstance(t)
	ov, err := view.NewOrderedView(in, view.Topological, 0)
	require.NoError(t, err)
	for i := 0; i < in.Size(); i++ {
		require.Equal(t, i, ov.SourceIndex(i))
	}
}

func TestOrderedViewUnknownOrder(t *testing.T) {
	in := buildInstance(t)
	_, err := view.NewOrderedView(in, "bogus", 0)
	require.ErrorIs(t, err, view.ErrUnknownOrder)
}
