package triobj_test

import (
	"fmt"
	"testing"

	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
	"github.com/jjorge/knapsack/triobj"
	"github.com/stretchr/testify/require"
)

func buildTriInstance(t *testing.T) *kpinstance.Instance {
	t.Helper()
	costs := []numeric.Vector{
		{10, 2, 4}, {6, 5, 1}, {4, 8, 6}, {2, 9, 3}, {8, 1, 7}, {5, 4, 9},
	}
	weights := []numeric.Real{5, 4, 3, 2, 4, 3}
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
// non-dominated images, used as an independent oracle for SolveTri.
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

func TestSolveTriMatchesBruteForceEfficientFrontier(t *testing.T) {
	in := buildTriInstance(t)

	got, err := triobj.SolveTri(in, "topological")
	require.NoError(t, err)
	require.True(t, got.Len() > 0)

	want := bruteForceEfficient(t, in)

	gotImages := make(map[string]bool)
	for _, s := range got.Solutions() {
		require.True(t, s.IsFeasible(in))
		gotImages[imageKey(s.Value.Cost)] = true
	}

	for _, w := range want {
		require.True(t, gotImages[imageKey(w)], "missing efficient image %v", w)
	}
	for key := range gotImages {
		require.Contains(t, wantKeys(want), key, "reported a dominated or infeasible image")
	}
}

func TestSolveTriRejectsWrongObjectiveCount(t *testing.T) {
	costs := []numeric.Vector{{1, 2}, {3, 4}}
	items := make([]kpinstance.Item, len(costs))
	for i := range costs {
		it, err := kpinstance.NewItem(i, costs[i], 1)
		require.NoError(t, err)
		items[i] = it
	}
	in, err := kpinstance.NewInstance(items, 2)
	require.NoError(t, err)

	_, err = triobj.SolveTri(in, "topological")
	require.ErrorIs(t, err, triobj.ErrNotTriObjective)
}

func wantKeys(want []numeric.Vector) []string {
	out := make([]string, len(want))
	for i, w := range want {
		out[i] = imageKey(w)
	}

	return out
}

func imageKey(v numeric.Vector) string {
	return fmt.Sprintf("%v", []numeric.Real(v))
}
