// Package numeric provides the epsilon-tolerant real-number primitives,
// cost vectors and dominance comparisons shared by every other package in
// this module.
//
// A single definition of "real" and of "dominates" lives here so that
// pareto sets, bound sets, relaxations and the DP DAG all agree on the same
// tolerance, the same dimension-mismatch error and the same maximisation
// direction (spec: maximisation on every objective).
package numeric
