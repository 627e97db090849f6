package kpinstance

import "github.com/jjorge/knapsack/numeric"

// Value is a solution value: a cost vector plus the accumulated weight
//. Equality is component-wise on Cost and equal Weight;
// lexicographic order is cost-first, then weight.
type Value struct {
	Cost   numeric.Vector
	Weight numeric.Real
}

// NewValue returns a zero Value for a p-dimensional instance.
func NewValue(p int) Value {
	return Value{Cost: make(numeric.Vector, p)}
}

// Clone returns an independent copy.
func (v Value) Clone() Value {
	return Value{Cost: v.Cost.Clone(), Weight: v.Weight}
}

// Equal reports whether v and o carry the same cost vector and weight.
func (v Value) Equal(o Value) (bool, error) {
	eq, err := v.Cost.Equal(o.Cost)
	if err != nil || !eq {
		return false, err
	}

	return numeric.Equal(v.Weight, o.Weight), nil
}

// Less implements the lexicographic order: cost-first, then weight.
func (v Value) Less(o Value) (bool, error) {
	less, err := v.Cost.Less(o.Cost)
	if err != nil {
		return false, err
	}
	if less {
		return true, nil
	}
	eqCost, err := v.Cost.Equal(o.Cost)
	if err != nil {
		return false, err
	}
	if eqCost && numeric.Less(v.Weight, o.Weight) {
		return true, nil
	}

	return false, nil
}

// Dominates reports whether v's cost vector dominates o's (weight plays no
// role in dominance: the dominance is on the image in cost space).
func (v Value) Dominates(o Value) (bool, error) {
	return v.Cost.Dominates(o.Cost)
}

// Add returns v+delta on the cost vector and weight+deltaWeight.
func (v Value) Add(delta numeric.Vector, deltaWeight numeric.Real) (Value, error) {
	cost, err := v.Cost.Add(delta)
	if err != nil {
		return Value{}, err
	}

	return Value{Cost: cost, Weight: v.Weight + deltaWeight}, nil
}
