// Package dp implements the single-best and multi-best DP solvers of spec
// §4.6: from the terminal layer of a dag.Graph, walk backward choosing the
// parent whose profit matches the current vertex's profit (the "skip"
// transition) or whose profit plus the transitioning item's profit matches
// it (the "keep" transition), reconstructing the corresponding
// kpinstance.KnapsackSolution against the original instance.
package dp
