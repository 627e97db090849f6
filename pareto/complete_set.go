package pareto

import (
	"github.com/jjorge/knapsack/kpinstance"
)

// MinimumCompleteSet keeps exactly one feasible solution per non-dominated
// image ("Minimum complete set").
type MinimumCompleteSet struct {
	images    *Set
	solutions []kpinstance.KnapsackSolution
}

// NewMinimumCompleteSet returns an empty minimum complete set.
func NewMinimumCompleteSet() *MinimumCompleteSet {
	return &MinimumCompleteSet{images: New()}
}

// Insert adds s if its image is non-dominated; it replaces any solution
// whose image s's image dominates, and silently drops s if its image is
// dominated by, or equal to, an existing one.
func (m *MinimumCompleteSet) Insert(s kpinstance.KnapsackSolution) (InsertOutcome, error) {
	outcome, removed, err := m.images.Insert(s.Value.Cost)
	if err != nil {
		return outcome, err
	}
	switch outcome {
	case Added:
		m.solutions = append(m.solutions, s)
	case Replaced:
		kept := m.solutions[:0:0]
		for _, old := range m.solutions {
			dominated := false
			for _, r := range removed {
				if eq, _ := old.Value.Cost.Equal(r); eq {
					dominated = true

					break
				}
			}
			if !dominated {
				kept = append(kept, old)
			}
		}
		m.solutions = append(kept, s)
	}

	return outcome, nil
}

// Solutions returns a defensive copy of the stored solutions.
func (m *MinimumCompleteSet) Solutions() []kpinstance.KnapsackSolution {
	out := make([]kpinstance.KnapsackSolution, len(m.solutions))
	copy(out, m.solutions)

	return out
}

// Len returns the number of solutions currently stored.
func (m *MinimumCompleteSet) Len() int { return len(m.solutions) }

// MaximumCompleteSet keeps every feasible solution mapping to a
// non-dominated image, i.e. it additionally stores equivalent solutions
// sharing one image (this package "Maximum complete set", §4.1 "Multi-solution
// set").
type MaximumCompleteSet struct {
	images    *Set
	solutions []kpinstance.KnapsackSolution
}

// NewMaximumCompleteSet returns an empty maximum complete set.
func NewMaximumCompleteSet() *MaximumCompleteSet {
	return &MaximumCompleteSet{images: New()}
}

// Insert inserts s's image; if rejected because an equal image already
// exists, s is still appended (every equivalent solution is kept); if
// accepted, every stored solution whose image was removed is dropped first.
func (m *MaximumCompleteSet) Insert(s kpinstance.KnapsackSolution) (InsertOutcome, error) {
	outcome, removed, err := m.images.Insert(s.Value.Cost)
	if err != nil {
		return outcome, err
	}
	switch outcome {
	case RejectedEqual:
		m.solutions = append(m.solutions, s)
	case Added:
		m.solutions = append(m.solutions, s)
	case Replaced:
		kept := m.solutions[:0:0]
		for _, old := range m.solutions {
			dominated := false
			for _, r := range removed {
				if eq, _ := old.Value.Cost.Equal(r); eq {
					dominated = true

					break
				}
			}
			if !dominated {
				kept = append(kept, old)
			}
		}
		m.solutions = append(kept, s)
	}

	return outcome, nil
}

// Solutions returns a defensive copy of the stored solutions, including
// every equivalent solution sharing a non-dominated image.
func (m *MaximumCompleteSet) Solutions() []kpinstance.KnapsackSolution {
	out := make([]kpinstance.KnapsackSolution, len(m.solutions))
	copy(out, m.solutions)

	return out
}

// Images returns the underlying Pareto set of images.
func (m *MaximumCompleteSet) Images() *Set { return m.images }

// Len returns the number of solutions currently stored (including
// equivalent ones).
func (m *MaximumCompleteSet) Len() int { return len(m.solutions) }

// Equal reports set-equality on the binary solutions contained in m and o
// ("equality between two such [maximum complete] sets is set
// equality on the binary solutions they contain").
func (m *MaximumCompleteSet) Equal(o *MaximumCompleteSet) bool {
	if len(m.solutions) != len(o.solutions) {
		return false
	}
	used := make([]bool, len(o.solutions))
	for _, s := range m.solutions {
		found := false
		for j, t := range o.solutions {
			if used[j] {
				continue
			}
			if s.Binary.Equal(t.Binary) {
				used[j] = true
				found = true

				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
