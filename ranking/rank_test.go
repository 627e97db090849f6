package ranking_test

import (
	"testing"

	"github.com/jjorge/knapsack/dag"
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
	"github.com/jjorge/knapsack/ranking"
	"github.com/jjorge/knapsack/view"
	"github.com/stretchr/testify/require"
)

// alwaysInside is a trivial PathsRegion accepting every image, used to
// exercise Rank's enumeration order in isolation from triangle geometry.
type alwaysInside struct {
	min numeric.Real
}

func (a *alwaysInside) MinProfit() numeric.Real { return a.min }
func (a *alwaysInside) Contains(numeric.Vector) (bool, error) {
	return true, nil
}
func (a *alwaysInside) Insert(numeric.Vector) (bool, numeric.Real, error) {
	return false, a.min, nil
}

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

func TestRankEnumeratesInNonIncreasingOrder(t *testing.T) {
	in := buildInstance(t)
	lambda := numeric.Vector{1, 1}
	wv, err := view.NewWeightedSumView(in, lambda)
	require.NoError(t, err)
	wv.SortByDecreasingEfficiency()

	g, err := dag.Build(wv, dag.HalfLine{Threshold: 0})
	require.NoError(t, err)

	region := &alwaysInside{min: 0}
	sols, err := ranking.Rank(g, wv.Profit, wv.SourceIndex, in, region, nil)
	require.NoError(t, err)
	require.NotEmpty(t, sols)

	var last numeric.Real
	first := true
	for _, s := range sols {
		v, err := lambda.Dot(s.Value.Cost)
		require.NoError(t, err)
		if !first {
			require.True(t, numeric.LessEqual(v, last))
		}
		last = v
		first = false
	}
}
