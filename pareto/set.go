package pareto

import (
	"sort"

	"github.com/jjorge/knapsack/numeric"
)

// InsertOutcome is the three-valued (actually four-valued, see RejectedEqual)
// result of Set.Insert ("insertion returns a three-valued outcome
// (no change | replaced dominated | added new)"; RejectedEqual refines the
// "no change" case so that MultiSolutionSet can still attach an equivalent
// solution).
type InsertOutcome int

const (
	// Rejected means v is strictly dominated by some stored point: no change.
	Rejected InsertOutcome = iota
	// RejectedEqual means a stored point has the same image as v: no change
	// to the Set, but the point already exists (multi-solution sets use this
	// to know they should still record v's binary solution).
	RejectedEqual
	// Added means v was inserted and dominated no existing point.
	Added
	// Replaced means v was inserted after removing at least one point it
	// dominates.
	Replaced
)

// Set is an ordered container of cost vectors holding only the maximal
// (non-dominated) elements under maximisation ("Pareto set").
type Set struct {
	points []numeric.Vector // kept sorted by Vector.Less (lexicographic)
}

// New returns an empty Set.
func New() *Set { return &Set{} }

// Len returns the number of points currently stored.
func (s *Set) Len() int { return len(s.points) }

// Points returns a defensive copy of the stored points, in lexicographic
// order.
func (s *Set) Points() []numeric.Vector {
	out := make([]numeric.Vector, len(s.points))
	for i, p := range s.points {
		out[i] = p.Clone()
	}

	return out
}

// Insert applies the Pareto-set insertion rule :
//   - if some stored y dominates v, or y equals v, reject (no change);
//   - else remove every stored y dominated by v, insert v, report Added or
//     Replaced depending on whether anything was removed.
//
// removed is the list of points evicted by this insertion (empty on
// Rejected/RejectedEqual/Added).
func (s *Set) Insert(v numeric.Vector) (outcome InsertOutcome, removed []numeric.Vector, err error) {
	for _, y := range s.points {
		eq, eqErr := y.Equal(v)
		if eqErr != nil {
			return Rejected, nil, eqErr
		}
		if eq {
			return RejectedEqual, nil, nil
		}
		dom, domErr := y.Dominates(v)
		if domErr != nil {
			return Rejected, nil, domErr
		}
		if dom {
			return Rejected, nil, nil
		}
	}

	kept := s.points[:0:0]
	for _, y := range s.points {
		dom, domErr := v.Dominates(y)
		if domErr != nil {
			return Rejected, nil, domErr
		}
		if dom {
			removed = append(removed, y)

			continue
		}
		kept = append(kept, y)
	}
	kept = append(kept, v.Clone())
	sort.Slice(kept, func(i, j int) bool {
		less, _ := kept[i].Less(kept[j])

		return less
	})
	s.points = kept

	if len(removed) > 0 {
		return Replaced, removed, nil
	}

	return Added, nil, nil
}

// Dominated reports whether v is dominated by, or equal to, any point
// currently stored (used by relaxations and cuts that only need a yes/no
// answer without mutating the set).
func (s *Set) Dominated(v numeric.Vector) (bool, error) {
	for _, y := range s.points {
		dom, err := y.Dominates(v)
		if err != nil {
			return false, err
		}
		if dom {
			return true, nil
		}
		eq, err := y.Equal(v)
		if err != nil {
			return false, err
		}
		if eq {
			return true, nil
		}
	}

	return false, nil
}

// Neighbors returns the predecessor and successor of v in the lexicographic
// order of the stored points (nil if none on that side). v need not be
// present in the set; this is used right after an Insert to find the two
// points the new point was inserted between (this package bound-set reduction).
func (s *Set) Neighbors(v numeric.Vector) (prev, next numeric.Vector, err error) {
	idx := sort.Search(len(s.points), func(i int) bool {
		less, _ := v.Less(s.points[i])

		return less
	})
	// idx is the first point strictly greater than v (by lex order); walk
	// back past any point equal to v itself.
	for idx > 0 {
		eq, eqErr := s.points[idx-1].Equal(v)
		if eqErr != nil {
			return nil, nil, eqErr
		}
		if !eq {
			break
		}
		idx--
	}
	if idx > 0 {
		prev = s.points[idx-1]
	}
	if idx < len(s.points) {
		next = s.points[idx]
	}

	return prev, next, nil
}
