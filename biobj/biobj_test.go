package biobj_test

import (
	"fmt"
	"testing"

	"github.com/jjorge/knapsack/biobj"
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
	"github.com/stretchr/testify/require"
)

func buildBiInstance(t *testing.T) *kpinstance.Instance {
	t.Helper()
	costs := []numeric.Vector{{10, 2}, {6, 5}, {4, 8}, {2, 9}, {8, 1}}
	weights := []numeric.Real{5, 4, 3, 2, 4}
	items := make([]kpinstance.Item, len(costs))
	for i := range costs {
		it, err := kpinstance.NewItem(i, costs[i], weights[i])
		require.NoError(t, err)
		items[i] = it
	}
	in, err := kpinstance.NewInstance(items, 10)
	require.NoError(t, err)

	return in
}

// bruteForceEfficient enumerates every feasible subset and returns the
// non-dominated images, used as an independent oracle for SolveBi.
func bruteForceEfficient(t *testing.T, in *kpinstance.Instance) []numeric.Vector {
	t.Helper()
	n := in.Size()
	var images []numeric.Vector
	for mask := 0; mask < (1 << n); mask++ {
		var w numeric.Real
		cost := make(numeric.Vector, in.Objectives())
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				it := in.Item(i)
				w += it.Weight()
				for j := range cost {
					cost[j] += it.CostAt(j)
				}
			}
		}
		if w <= in.Capacity() {
			images = append(images, cost)
		}
	}

	var eff []numeric.Vector
	for _, a := range images {
		dominated := false
		for _, b := range images {
			eq, _ := a.Equal(b)
			if eq {
				continue
			}
			dom, _ := b.Dominates(a)
			if dom {
				dominated = true
				break
			}
		}
		if !dominated {
			eff = append(eff, a)
		}
	}

	return eff
}

func TestSolveBiMatchesBruteForceEfficientFrontier(t *testing.T) {
	in := buildBiInstance(t)

	got, err := biobj.SolveBi(in)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	want := bruteForceEfficient(t, in)

	gotImages := make(map[string]bool)
	for _, s := range got {
		require.True(t, s.IsFeasible(in))
		gotImages[imageKey(s.Value.Cost)] = true
	}

	for _, w := range want {
		require.True(t, gotImages[imageKey(w)], "missing efficient image %v", w)
	}
	require.Len(t, got, len(want), "SolveBi must not report dominated or duplicate images")
}

func imageKey(v numeric.Vector) string {
	return fmt.Sprintf("%v", []numeric.Real(v))
}
