package kpinstance

import (
	"math"

	"github.com/jjorge/knapsack/numeric"
)

// Item is a single 0-1 decision variable: an index in the original instance,
// a cost vector of length p, and a non-negative weight. Item is immutable
// after construction.
type Item struct {
	index  int
	cost   numeric.Vector
	weight numeric.Real
}

// NewItem builds an Item, validating weight >= 0 and every cost component
// >= 0 (negative costs/weights are a declared non-goal).
func NewItem(index int, cost numeric.Vector, weight numeric.Real) (Item, error) {
	if weight < 0 {
		return Item{}, ErrNegativeWeight
	}
	for _, c := range cost {
		if c < 0 {
			return Item{}, ErrNegativeCost
		}
	}

	return Item{index: index, cost: cost.Clone(), weight: weight}, nil
}

// Index returns the item's position in the original instance.
func (it Item) Index() int { return it.index }

// Cost returns the item's cost vector. The returned slice is a copy.
func (it Item) Cost() numeric.Vector { return it.cost.Clone() }

// CostAt returns the j-th cost component without allocating.
func (it Item) CostAt(j int) numeric.Real { return it.cost[j] }

// Weight returns the item's weight.
func (it Item) Weight() numeric.Real { return it.weight }

// Efficiency returns cost[j]/weight. Items with zero weight have
// infinite efficiency on every objective; callers sort those first.
func (it Item) Efficiency(j int) numeric.Real {
	if it.weight == 0 {
		if it.cost[j] == 0 {
			return 0
		}

		return math.Inf(1) // a free item with positive profit dominates every ordering criterion.
	}

	return it.cost[j] / it.weight
}
