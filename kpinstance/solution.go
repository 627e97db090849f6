package kpinstance

// KnapsackSolution is a BinarySolution paired with an incrementally
// maintained Value. Invariant: Value equals the sum over items whose trit
// is Set; SetItem/UnsetItem/FreeItem keep the invariant without
// rescanning every variable.
type KnapsackSolution struct {
	Binary BinarySolution
	Value  Value
}

// NewKnapsackSolution returns the all-Free, zero-Value solution for an
// n-item, p-objective instance.
func NewKnapsackSolution(n, p int) KnapsackSolution {
	return KnapsackSolution{Binary: NewBinarySolution(n), Value: NewValue(p)}
}

// Clone returns an independent deep copy.
func (s KnapsackSolution) Clone() KnapsackSolution {
	return KnapsackSolution{Binary: s.Binary.Clone(), Value: s.Value.Clone()}
}

// SetItem marks item i as Set, folding its cost and weight into Value.
// Panics with an invariant_violation if i is already Set (this package: always a
// bug, never user-recoverable).
func (s *KnapsackSolution) SetItem(in *Instance, i int) {
	if s.Binary.At(i) == Set {
		panicInvariant("SetItem: variable already set")
	}
	it := in.Item(i)
	for j := range s.Value.Cost {
		s.Value.Cost[j] += it.CostAt(j)
	}
	s.Value.Weight += it.Weight()
	s.Binary.set(i)
}

// UnsetItem marks item i as Unset. If i was previously Set, its
// contribution is removed from Value first.
func (s *KnapsackSolution) UnsetItem(in *Instance, i int) {
	if s.Binary.At(i) == Set {
		it := in.Item(i)
		for j := range s.Value.Cost {
			s.Value.Cost[j] -= it.CostAt(j)
		}
		s.Value.Weight -= it.Weight()
	}
	s.Binary.unset(i)
}

// FreeItem resets item i to Free. If i was previously Set, its contribution
// is removed from Value first.
func (s *KnapsackSolution) FreeItem(in *Instance, i int) {
	if s.Binary.At(i) == Set {
		it := in.Item(i)
		for j := range s.Value.Cost {
			s.Value.Cost[j] -= it.CostAt(j)
		}
		s.Value.Weight -= it.Weight()
	}
	s.Binary.free(i)
}

// IsFeasible reports whether the accumulated Weight does not exceed
// capacity (equivalent to, but cheaper than, s.Binary.IsFeasible(in)).
func (s KnapsackSolution) IsFeasible(in *Instance) bool {
	return s.Value.Weight <= in.Capacity()
}
