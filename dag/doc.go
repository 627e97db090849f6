// Package dag builds the layered dynamic-programming DAG shared by the
// single/multi-best DP solvers and the k-best ranking engine (this package "DP
// vertex"/"DP layer", §4.5).
//
// Vertices live in a builder-owned arena and are referred to by VertexRef
// (a plain index), never by pointer: this keeps the graph safe to extend
// layer by layer without any reference dangling across the arena's backing
// array growing (Design Notes: "store them in an arena owned by the
// builder and refer to them by index; never by raw pointer that can
// dangle"). Pruned vertices are simply never appended to the arena, which
// is the Go-idiomatic equivalent of the original's "release on subtree
// finalisation": nothing unreachable is ever retained, and the garbage
// collector reclaims the whole arena once the DAG itself is dropped.
package dag
