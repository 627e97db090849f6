package kpinstance_test

import (
	"testing"

	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
	"github.com/stretchr/testify/require"
)

func buildInstance(t *testing.T) *kpinstance.Instance {
	t.Helper()
	items := make([]kpinstance.Item, 0, 3)
	costs := []numeric.Vector{{3, 2}, {4, 3}, {2, 4}}
	weights := []numeric.Real{2, 3, 1}
	for i := range costs {
		it, err := kpinstance.NewItem(i, costs[i], weights[i])
		require.NoError(t, err)
		items = append(items, it)
	}
	in, err := kpinstance.NewInstance(items, 4)
	require.NoError(t, err)

	return in
}

func TestKnapsackSolutionValueTracksSetItems(t *testing.T) {
	in := buildInstance(t)
	s := kpinstance.NewKnapsackSolution(in.Size(), in.Objectives())

	s.SetItem(in, 0)
	s.SetItem(in, 2)

	require.Equal(t, numeric.Vector{5, 6}, s.Value.Cost)
	require.Equal(t, numeric.Real(3), s.Value.Weight)
	require.True(t, s.IsFeasible(in))

	s.UnsetItem(in, 0)
	require.Equal(t, numeric.Vector{2, 4}, s.Value.Cost)
	require.Equal(t, numeric.Real(1), s.Value.Weight)
}

func TestKnapsackSolutionSetTwicePanics(t *testing.T) {
	in := buildInstance(t)
	s := kpinstance.NewKnapsackSolution(in.Size(), in.Objectives())
	s.SetItem(in, 0)
	require.Panics(t, func() { s.SetItem(in, 0) })
}

func TestBinarySolutionOrderingAndEquality(t *testing.T) {
	a := kpinstance.NewBinarySolution(2)
	b := kpinstance.NewBinarySolution(2)
	require.True(t, a.Equal(b))

	b2 := a.Clone()
	b2.SetItems() // no-op read, just exercising the method on a fresh clone
	require.True(t, a.Equal(b2))
}

func TestNewInstanceRejectsBadObjectiveCount(t *testing.T) {
	it, err := kpinstance.NewItem(0, numeric.Vector{1}, 1)
	require.NoError(t, err)
	_, err = kpinstance.NewInstance([]kpinstance.Item{it}, 1)
	require.ErrorIs(t, err, kpinstance.ErrInvalidObjectiveCount)
}

func TestNewItemRejectsNegativeWeight(t *testing.T) {
	_, err := kpinstance.NewItem(0, numeric.Vector{1, 1}, -1)
	require.ErrorIs(t, err, kpinstance.ErrNegativeWeight)
}
