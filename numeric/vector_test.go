package numeric_test

import (
	"testing"

	"github.com/jjorge/knapsack/numeric"
	"github.com/stretchr/testify/require"
)

func TestVectorDominates(t *testing.T) {
	a := numeric.Vector{5, 6}
	b := numeric.Vector{5, 4}
	dom, err := a.Dominates(b)
	require.NoError(t, err)
	require.True(t, dom)

	dom, err = b.Dominates(a)
	require.NoError(t, err)
	require.False(t, dom)
}

func TestVectorDominatesEqualIsNotStrict(t *testing.T) {
	a := numeric.Vector{5, 6}
	b := numeric.Vector{5, 6}
	dom, err := a.Dominates(b)
	require.NoError(t, err)
	require.False(t, dom)
}

func TestVectorDimensionMismatch(t *testing.T) {
	a := numeric.Vector{1, 2}
	b := numeric.Vector{1, 2, 3}
	_, err := a.Dominates(b)
	require.ErrorIs(t, err, numeric.ErrDimensionMismatch)

	_, err = a.Dot(b)
	require.ErrorIs(t, err, numeric.ErrDimensionMismatch)
}

func TestComponentwiseMinMax(t *testing.T) {
	a := numeric.Vector{1, 5}
	b := numeric.Vector{3, 2}

	min, err := numeric.ComponentwiseMin(a, b)
	require.NoError(t, err)
	require.Equal(t, numeric.Vector{1, 2}, min)

	max, err := numeric.ComponentwiseMax(a, b)
	require.NoError(t, err)
	require.Equal(t, numeric.Vector{3, 5}, max)
}

func TestRealComparisons(t *testing.T) {
	require.True(t, numeric.Equal(1.0, 1.0+numeric.DefaultEpsilon/2))
	require.True(t, numeric.Less(1.0, 2.0))
	require.False(t, numeric.Less(1.0, 1.0))
	require.Equal(t, 0, numeric.Compare(1.0, 1.0))
	require.Equal(t, -1, numeric.Compare(1.0, 2.0))
	require.Equal(t, 1, numeric.Compare(2.0, 1.0))
}
