// Package knapsack is a multi-objective (bi- and tri-objective) 0-1
// knapsack Pareto-efficiency solver.
//
// Subpackages:
//
//	numeric/    — epsilon-tolerant reals and vectors
//	kpinstance/ — items, instances, trit-valued decision variables, solutions
//	pareto/     — non-dominated image sets (pareto.Set, bound set, complete sets)
//	view/       — problem projections (sortable, weighted-sum, subset, ordered)
//	relax/      — linear relaxations (Martello-Toth)
//	fixing/     — variable-fixing families
//	dag/        — the shared DP DAG builder
//	dp/         — single-best/multi-best backward reconstruction
//	ranking/    — k-best-paths ranking engine
//	lexsolve/   — lexicographic mono-objective extrema
//	biobj/      — bi-objective two-phase solver
//	weightset/  — tri-objective weight-set polygon
//	triobj/     — tri-objective A* branch-and-bound
//	knapsackio/ — instance/solution wire format
//	cmd/knapsack/ — CLI entry point
package knapsack
