// Package lexsolve implements the lexicographic mono-objective solver
// reused by both the bi-objective phase-1 dichotomy (the two
// lexicographic extrema x1 and x2, one per objective, lex-ordered by the
// other) and the tri-objective A* node's per-objective utopian-point
// computation.
package lexsolve
