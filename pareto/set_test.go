package pareto_test

import (
	"testing"

	"github.com/jjorge/knapsack/numeric"
	"github.com/jjorge/knapsack/pareto"
	"github.com/stretchr/testify/require"
)

func TestSetInsertRejectsDominated(t *testing.T) {
	s := pareto.New()
	outcome, _, err := s.Insert(numeric.Vector{5, 5})
	require.NoError(t, err)
	require.Equal(t, pareto.Added, outcome)

	outcome, removed, err := s.Insert(numeric.Vector{4, 4})
	require.NoError(t, err)
	require.Equal(t, pareto.Rejected, outcome)
	require.Empty(t, removed)
}

func TestSetInsertReplacesDominatedPoints(t *testing.T) {
	s := pareto.New()
	_, _, err := s.Insert(numeric.Vector{1, 9})
	require.NoError(t, err)
	_, _, err = s.Insert(numeric.Vector{9, 1})
	require.NoError(t, err)

	outcome, removed, err := s.Insert(numeric.Vector{5, 8})
	require.NoError(t, err)
	require.Equal(t, pareto.Replaced, outcome)
	require.Len(t, removed, 1)
	require.Equal(t, numeric.Vector{1, 9}, removed[0])
	require.Equal(t, 2, s.Len())
}

func TestSetInsertEqualPoint(t *testing.T) {
	s := pareto.New()
	_, _, err := s.Insert(numeric.Vector{3, 3})
	require.NoError(t, err)

	outcome, _, err := s.Insert(numeric.Vector{3, 3})
	require.NoError(t, err)
	require.Equal(t, pareto.RejectedEqual, outcome)
	require.Equal(t, 1, s.Len())
}

func TestBoundSetReduceProducesNadirs(t *testing.T) {
	s := pareto.New()
	b := pareto.NewBoundSet()

	_, _, err := s.Insert(numeric.Vector{1, 9})
	require.NoError(t, err)
	_, err = b.Reduce(s, numeric.Vector{1, 9})
	require.NoError(t, err)
	require.Equal(t, 0, b.Len())

	_, _, err = s.Insert(numeric.Vector{9, 1})
	require.NoError(t, err)
	changed, err := b.Reduce(s, numeric.Vector{9, 1})
	require.NoError(t, err)
	require.True(t, changed)
	require.Equal(t, 1, b.Len())

	n := b.Points()[0]
	require.Equal(t, numeric.Vector{8, 0}, n)
}

func TestMaximumCompleteSetKeepsEquivalents(t *testing.T) {
	// Two equivalent solutions with identical image must both survive
	//.
	in := numeric.Vector{1, 1}
	m := newSolutionFixture(t, in)

	require.Equal(t, 2, m.Len())
}
