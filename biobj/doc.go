// Package biobj implements the bi-objective two-phase solver:
// phase-1 computes the extreme supported solutions by dichotomic
// scalarisation, phase-2 ranks every non-supported solution strictly inside
// each triangle using package ranking.
package biobj
