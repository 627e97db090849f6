package lexsolve_test

import (
	"testing"

	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/lexsolve"
	"github.com/jjorge/knapsack/numeric"
	"github.com/stretchr/testify/require"
)

func TestExtremeMaximisesPrimaryThenTieBreaksLexicographically(t *testing.T) {
	costs := []numeric.Vector{{5, 1}, {5, 9}, {3, 2}}
	weights := []numeric.Real{3, 3, 2}
	items := make([]kpinstance.Item, len(costs))
	for i := range costs {
		it, err := kpinstance.NewItem(i, costs[i], weights[i])
		require.NoError(t, err)
		items[i] = it
	}
	in, err := kpinstance.NewInstance(items, 3)
	require.NoError(t, err)

	sol, err := lexsolve.Extreme(in, 0)
	require.NoError(t, err)
	require.Equal(t, numeric.Real(5), sol.Value.Cost[0])
	// Items 0 and 1 both reach profit 5 on objective 0 alone; the
	// lexicographic tie-break must prefer item 1's far larger objective-1
	// contribution.
	require.Equal(t, numeric.Real(9), sol.Value.Cost[1])
}
