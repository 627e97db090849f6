// Package view implements the read-only problem views : a
// permutation-backed mono-objective projection (SortableMonoView), a
// weighted-sum projection, a subset view used by variable fixing, and the
// tri-objective branching order views (OrderedView).
//
// Every view exposes the same read-only surface
// { Size, Capacity, Objectives, Item, Efficiency } plus SourceIndex where a
// view reorders or restricts the underlying instance, mirroring the
// teacher's pattern of small, composable, read-only projections (e.g.
// view.SortableMonoView over tsp's dense distance-matrix prefetch, or
// matrix.AdjacencyView over core.Graph).
package view
