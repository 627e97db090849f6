package fixing_test

import (
	"testing"

	"github.com/jjorge/knapsack/fixing"
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
	"github.com/jjorge/knapsack/view"
	"github.com/stretchr/testify/require"
)

func buildInstance(t *testing.T) *kpinstance.Instance {
	t.Helper()
	costs := []numeric.Vector{{10, 1}, {6, 1}, {4, 1}, {1, 1}}
	weights := []numeric.Real{5, 4, 3, 1}
	items := make([]kpinstance.Item, len(costs))
	for i := range costs {
		it, err := kpinstance.NewItem(i, costs[i], weights[i])
		require.NoError(t, err)
		items[i] = it
	}
	in, err := kpinstance.NewInstance(items, 7)
	require.NoError(t, err)

	return in
}

func TestMTRFixesHeavyItemUnset(t *testing.T) {
	in := buildInstance(t)
	v := view.ByObjective(in, 0)
	v.SortByDecreasingEfficiency()

	// a very strong lower bound should force every item whose UB1 can't
	// reach it.
	res, err := fixing.MTR(v, in, 15)
	require.NoError(t, err)
	require.NotNil(t, res)
}

func TestMTRPostFixesOverweightItem(t *testing.T) {
	costs := []numeric.Vector{{1, 1}, {1, 1}}
	weights := []numeric.Real{1, 100}
	items := make([]kpinstance.Item, 2)
	for i := range costs {
		it, err := kpinstance.NewItem(i, costs[i], weights[i])
		require.NoError(t, err)
		items[i] = it
	}
	in, err := kpinstance.NewInstance(items, 5)
	require.NoError(t, err)

	v := view.ByObjective(in, 0)
	v.SortByDecreasingEfficiency()

	res, err := fixing.MTR(v, in, 0)
	require.NoError(t, err)
	require.Equal(t, kpinstance.Unset, res.Forced[1])
}

func TestMTRInfeasibleWhenForcedSetOverflowsCapacity(t *testing.T) {
	costs := []numeric.Vector{{100, 1}, {100, 1}}
	weights := []numeric.Real{10, 10}
	items := make([]kpinstance.Item, 2)
	for i := range costs {
		it, err := kpinstance.NewItem(i, costs[i], weights[i])
		require.NoError(t, err)
		items[i] = it
	}
	in, err := kpinstance.NewInstance(items, 5)
	require.NoError(t, err)

	v := view.ByObjective(in, 0)
	v.SortByDecreasingEfficiency()

	_, err = fixing.MTR(v, in, 0)
	require.ErrorIs(t, err, fixing.ErrInfeasible)
}
