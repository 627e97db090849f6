package pareto_test

import (
	"testing"

	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
	"github.com/jjorge/knapsack/pareto"
	"github.com/stretchr/testify/require"
)

// newSolutionFixture builds a two-item instance where both items are
// equivalent (cost=(1,1), weight=1, capacity=1) and inserts both singleton
// solutions into a MaximumCompleteSet, mirroring a boundary scenario.
func newSolutionFixture(t *testing.T, _ numeric.Vector) *pareto.MaximumCompleteSet {
	t.Helper()
	it0, err := kpinstance.NewItem(0, numeric.Vector{1, 1}, 1)
	require.NoError(t, err)
	it1, err := kpinstance.NewItem(1, numeric.Vector{1, 1}, 1)
	require.NoError(t, err)
	in, err := kpinstance.NewInstance([]kpinstance.Item{it0, it1}, 1)
	require.NoError(t, err)

	m := pareto.NewMaximumCompleteSet()

	s0 := kpinstance.NewKnapsackSolution(in.Size(), in.Objectives())
	s0.SetItem(in, 0)
	s0.UnsetItem(in, 1)
	_, err = m.Insert(s0)
	require.NoError(t, err)

	s1 := kpinstance.NewKnapsackSolution(in.Size(), in.Objectives())
	s1.SetItem(in, 1)
	s1.UnsetItem(in, 0)
	_, err = m.Insert(s1)
	require.NoError(t, err)

	return m
}

func TestMaximumCompleteSetEqual(t *testing.T) {
	m1 := newSolutionFixture(t, nil)
	m2 := newSolutionFixture(t, nil)
	require.True(t, m1.Equal(m2))
}
