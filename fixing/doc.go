// Package fixing implements the variable-fixing family : MTR
// fixing, simple fixing, combined fixing and directional fixing. Each
// producer returns a Result naming which source indices are forced Set or
// Unset, the guaranteed cost/weight those fixed-Set items contribute, and
// the remaining free indices a sub-solver should branch on. Directional
// fixing (package biobj's global pre-ranking reduction) is built on top of
// Combined, run once per triangle of the bi-objective phase-2 schedule.
package fixing
