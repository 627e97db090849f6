// Package knapsackio implements the external instance/solution wire format
// named in this package: a whitespace-separated token grammar for reading an
// Instance, and a plain line-oriented writer for reporting knapsack
// solutions. Neither belongs to the algorithmic core; both exist solely to
// make the module runnable end-to-end from a stream.
package knapsackio
