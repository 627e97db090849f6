package relax_test

import (
	"testing"

	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
	"github.com/jjorge/knapsack/relax"
	"github.com/jjorge/knapsack/view"
	"github.com/stretchr/testify/require"
)

func buildInstance(t *testing.T) *kpinstance.Instance {
	t.Helper()
	costs := []numeric.Vector{{6, 1}, {10, 2}, {12, 3}}
	weights := []numeric.Real{1, 2, 3}
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

func TestMartelloTothFractionalSplit(t *testing.T) {
	in := buildInstance(t)
	v := view.ByObjective(in, 0)
	v.SortByDecreasingEfficiency() // efficiencies: 6,5,4 -> already sorted
	r := relax.MartelloToth(v, 0, in.Capacity(), 0)
	// items 0,1 fit exactly (weight 3), remaining capacity 1 taken from item 2
	// at efficiency 4: value = 16 + 1*4 = 20
	require.InDelta(t, 20.0, r.Value, 1e-9)
	require.False(t, r.Optimal)
}

func TestMartelloTothAllItemsFit(t *testing.T) {
	in := buildInstance(t)
	v := view.ByObjective(in, 0)
	v.SortByDecreasingEfficiency()
	r := relax.MartelloToth(v, 0, 6, 0)
	require.InDelta(t, 28.0, r.Value, 1e-9)
	require.True(t, r.Optimal)
}

func TestCompositeInteresting(t *testing.T) {
	in := buildInstance(t)
	c, err := relax.NewComposite(in, numeric.Vector{1, 1})
	require.NoError(t, err)
	ok := c.Interesting(0, in.Capacity(), 0, 0, 0, numeric.Vector{23, 19, 3})
	require.True(t, ok)
	ok = c.Interesting(0, in.Capacity(), 0, 0, 0, numeric.Vector{25, 25, 25})
	require.False(t, ok)
}
