package weightset

import "github.com/jjorge/knapsack/numeric"

// Facet is one half-plane cut of the weight-set polygon: every λ kept in
// the set must satisfy A*λ1 + B*λ2 <= C (in barycentric coordinates over
// the simplex, λ3 = 1 - λ1 - λ2). Neighbor names the extreme point whose
// scalarisation produced this cut ("facets record the
// neighbouring extreme point").
type Facet struct {
	A, B, C  numeric.Real
	Neighbor int
}

// point2 is a vertex of the polygon in (λ1, λ2) coordinates.
type point2 struct {
	x, y numeric.Real
}

// Set is the weight-set polygon for one supported extreme point: the
// simplex {λ1≥0, λ2≥0, λ1+λ2≤1}, progressively clipped by Facets.
// Invariants: facets are intersected in a consistent order,
// insertions only refine the polygon (never grow it), and an empty set
// means the point that owns it has been dominated by some later discovery.
type Set struct {
	vertices []point2
	facets   []Facet
}

// NewSimplex returns the weight-set polygon initialised to the full
// barycentric simplex, before any neighbour cuts are applied.
func NewSimplex() *Set {
	return &Set{vertices: []point2{{0, 0}, {1, 0}, {0, 1}}}
}

// Empty reports whether the polygon has been clipped away entirely.
func (s *Set) Empty() bool { return len(s.vertices) == 0 }

// Facets returns the cuts applied so far, in application order.
func (s *Set) Facets() []Facet {
	out := make([]Facet, len(s.facets))
	copy(out, s.facets)

	return out
}

// Vertices returns a defensive copy of the polygon's current vertices.
func (s *Set) Vertices() [][2]numeric.Real {
	out := make([][2]numeric.Real, len(s.vertices))
	for i, v := range s.vertices {
		out[i] = [2]numeric.Real{v.x, v.y}
	}

	return out
}

// AddConstraint clips the polygon by f's half-plane (Sutherland-Hodgman),
// recording f whether or not it actually removes any vertex: a facet that
// cuts nothing today may still matter if the polygon is later grown back by
// an (impossible, since insertions only refine) future relaxation, and
// keeping every applied facet lets callers replay the cut history.
func (s *Set) AddConstraint(f Facet) {
	s.facets = append(s.facets, f)
	if len(s.vertices) == 0 {
		return
	}

	var out []point2
	n := len(s.vertices)
	for i := 0; i < n; i++ {
		cur := s.vertices[i]
		prev := s.vertices[(i-1+n)%n]
		curIn := inside(f, cur)
		prevIn := inside(f, prev)

		if curIn {
			if !prevIn {
				out = append(out, intersect(f, prev, cur))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, intersect(f, prev, cur))
		}
	}
	s.vertices = out
}

// Contains reports whether (l1, l2) lies inside the polygon, within
// numeric.Epsilon of every edge.
func (s *Set) Contains(l1, l2 numeric.Real) bool {
	if len(s.vertices) == 0 {
		return false
	}
	p := point2{l1, l2}
	n := len(s.vertices)
	for i := 0; i < n; i++ {
		a := s.vertices[i]
		b := s.vertices[(i+1)%n]
		// cross(b-a, p-a) must be non-negative for every edge of a
		// counter-clockwise polygon; AddConstraint preserves orientation
		// since it only ever removes vertices outside a half-plane.
		cross := (b.x-a.x)*(p.y-a.y) - (b.y-a.y)*(p.x-a.x)
		if cross < -numeric.Epsilon {
			return false
		}
	}

	return true
}

func inside(f Facet, p point2) bool {
	return numeric.LessEqual(f.A*p.x+f.B*p.y, f.C)
}

// intersect returns the point where segment (a,b) crosses f's boundary
// line, assuming exactly one of a, b is inside and the other is outside.
func intersect(f Facet, a, b point2) point2 {
	da := f.A*a.x + f.B*a.y - f.C
	db := f.A*b.x + f.B*b.y - f.C
	t := da / (da - db)

	return point2{a.x + t*(b.x-a.x), a.y + t*(b.y-a.y)}
}
