// Package ranking implements the k-best-paths enumeration : the
// core of phase-2 of the bi-objective two-phase solver. Given a dag.Graph
// built on the weighted-sum projection of a triangle and a region tightened
// as new non-dominated points are discovered, Rank enumerates every
// feasible solution whose image lies in the triangle, in non-increasing
// order of the scalar path value, until the region's lower bound exceeds
// the best remaining candidate.
//
// A Path is a structurally shared spine from a terminal vertex toward the
// source: a root vertex plus an ordered list of "turning" vertices where
// the path diverges from the vertex's own locally optimal parent. The
// turning list is a persistent singly-linked tail (Design Notes: "model
// turning-lists as Rc<Node>"); Go has no manual refcounting primitive, so
// this package relies on the garbage collector to reclaim a tail exactly
// when its last referring Path is dropped, which is the idiomatic Go
// reading of the same sharing discipline.
package ranking
