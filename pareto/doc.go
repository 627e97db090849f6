// Package pareto implements the non-dominated containers :
// the Pareto set of maximal cost vectors, the bound set of nadir-like
// points underapproximating it from below, and the minimum/maximum
// complete solution sets built on top of both.
//
// Every container fixes the same domination direction (maximisation on
// every objective, via numeric.Vector.Dominates) so that a point inserted
// into a Set and a nadir derived from it always agree on "better".
package pareto
