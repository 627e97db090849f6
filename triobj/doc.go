// Package triobj implements the tri-objective exact solver: an A*-style
// best-first branch-and-bound over trit-valued partial solutions, built on
// top of package biobj's bi-objective phase-1 machinery for each node's
// local hull, plus the bound set and a linear-relaxation upper bound. The
// open list is a container/heap priority queue ordered by each node's
// best-case scalarisation.
package triobj
