package biobj

import (
	"github.com/jjorge/knapsack/numeric"
	"github.com/jjorge/knapsack/pareto"
)

// Triangle is the region strictly between two consecutive extreme supported
// points in objective space: Left has the smaller z1 (and larger z2), Right
// the larger z1.
//
// Lambda1, Lambda2 is the scalarisation shared by both corners
// (Lambda1*z1 + Lambda2*z2 is constant along the Left-Right edge); Triangle
// implements both dag.Region (phase-2's DAG build) and ranking.PathsRegion
// (phase-2's k-best ranking).
type Triangle struct {
	Left, Right      numeric.Vector
	Lambda1, Lambda2 numeric.Real
	edgeValue        numeric.Real
	lowerBound       numeric.Real
	inner            *pareto.Set
	locked           bool
}

// NewTriangle builds the triangle spanned by two consecutive extreme
// supported points. left and right must already be sorted so that
// left[0] < right[0].
func NewTriangle(left, right numeric.Vector) (*Triangle, error) {
	if len(left) != 2 || len(right) != 2 {
		return nil, numeric.ErrDimensionMismatch
	}

	lambda1 := left[1] - right[1]
	lambda2 := right[0] - left[0]
	lambda := numeric.Vector{lambda1, lambda2}

	edgeValue, err := lambda.Dot(left)
	if err != nil {
		return nil, err
	}

	nadir, err := pareto.Nadir(left, right)
	if err != nil {
		return nil, err
	}
	lowerBound, err := lambda.Dot(nadir)
	if err != nil {
		return nil, err
	}

	return &Triangle{
		Left:       left.Clone(),
		Right:      right.Clone(),
		Lambda1:    lambda1,
		Lambda2:    lambda2,
		edgeValue:  edgeValue,
		lowerBound: lowerBound,
		inner:      pareto.New(),
	}, nil
}

// Lambda returns the shared scalarisation vector (Lambda1, Lambda2).
func (t *Triangle) Lambda() numeric.Vector { return numeric.Vector{t.Lambda1, t.Lambda2} }

// Locked reports whether the triangle has been closed to further routing
// ("locking freezes further routing").
func (t *Triangle) Locked() bool { return t.locked }

// Lock closes the triangle.
func (t *Triangle) Lock() { t.locked = true }

// Inner returns the pareto front of points found strictly inside the
// triangle so far.
func (t *Triangle) Inner() *pareto.Set { return t.inner }

// MinProfit is the current lower bound a path's weighted-sum value must
// reach to still be a candidate (dag.Region / ranking.PathsRegion).
func (t *Triangle) MinProfit() numeric.Real { return t.lowerBound }

// Accepts prunes a DAG vertex whose accumulated cost already guarantees its
// final image cannot land inside the triangle: cost only grows as more
// items are taken, so once z1 exceeds Right or z2 exceeds Left on this path
// there's no way back in (dag.Region).
func (t *Triangle) Accepts(maxProfile numeric.Vector) bool {
	if len(maxProfile) != 2 {
		return false
	}

	return numeric.LessEqual(maxProfile[0], t.Right[0]) && numeric.LessEqual(maxProfile[1], t.Left[1])
}

// Contains reports whether image lies strictly inside the open triangle:
// strictly between Left and Right on both coordinates and strictly under
// the Left-Right edge in weighted-sum value (ranking.PathsRegion).
func (t *Triangle) Contains(image numeric.Vector) (bool, error) {
	if len(image) != 2 {
		return false, numeric.ErrDimensionMismatch
	}
	if !(numeric.Greater(image[0], t.Left[0]) && numeric.Less(image[0], t.Right[0])) {
		return false, nil
	}
	if !(numeric.Greater(image[1], t.Right[1]) && numeric.Less(image[1], t.Left[1])) {
		return false, nil
	}

	lambda := t.Lambda()
	val, err := lambda.Dot(image)
	if err != nil {
		return false, err
	}

	return numeric.Less(val, t.edgeValue), nil
}

// Insert records a newly accepted inner image, tightening the lower bound
// to its own weighted-sum value when that value exceeds the current bound
// ("inserting its image into the paths region may raise its
// min-profit"). raised reports whether the bound strictly increased.
func (t *Triangle) Insert(image numeric.Vector) (bool, numeric.Real, error) {
	outcome, _, err := t.inner.Insert(image)
	if err != nil {
		return false, t.lowerBound, err
	}
	if outcome == pareto.Rejected || outcome == pareto.RejectedEqual {
		return false, t.lowerBound, nil
	}

	lambda := t.Lambda()
	val, err := lambda.Dot(image)
	if err != nil {
		return false, t.lowerBound, err
	}
	if numeric.Greater(val, t.lowerBound) {
		t.lowerBound = val

		return true, t.lowerBound, nil
	}

	return false, t.lowerBound, nil
}

// Tighten raises the triangle's lower bound directly, used when an external
// lower bound (e.g. from variable fixing) is known to be stronger than the
// nadir-derived one.
func (t *Triangle) Tighten(bound numeric.Real) {
	if numeric.Greater(bound, t.lowerBound) {
		t.lowerBound = bound
	}
}
