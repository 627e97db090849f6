// Command knapsack is a thin CLI around the multi-objective knapsack core
// (this package "programmatic entry points" exposed as a process): it reads an
// instance off stdin (or -in), dispatches to solve_bi or solve_tri by the
// instance's declared objective count, and writes the maximum complete set
// to stdout (or -out).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/jjorge/knapsack/biobj"
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/knapsackio"
	"github.com/jjorge/knapsack/triobj"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("knapsack", flag.ContinueOnError)
	fs.SetOutput(stderr)
	inPath := fs.String("in", "", "instance file (default: stdin)")
	outPath := fs.String("out", "", "solution file (default: stdout)")
	order := fs.String("order", "topological", "tri-objective branching order: one of "+
		"topological, max-rank, min-rank, sum-rank, frequency, random, domination-rank, "+
		"domination-count, or a non-negative objective index")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	in, err := openInput(*inPath, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "knapsack: %v\n", err)

		return 2
	}
	if c, ok := in.(io.Closer); ok {
		defer c.Close()
	}

	instance, err := knapsackio.Read(in)
	if err != nil {
		fmt.Fprintf(stderr, "knapsackio: %v\n", err)

		return 1
	}

	solutions, err := solve(instance, *order)
	if err != nil {
		fmt.Fprintf(stderr, "knapsack: %v\n", err)

		return 1
	}

	out, err := openOutput(*outPath, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "knapsack: %v\n", err)

		return 2
	}
	if c, ok := out.(io.Closer); ok {
		defer c.Close()
	}

	if err := knapsackio.Write(out, solutions); err != nil {
		fmt.Fprintf(stderr, "knapsackio: %v\n", err)

		return 1
	}

	return 0
}

func solve(in *kpinstance.Instance, order string) ([]kpinstance.KnapsackSolution, error) {
	switch in.Objectives() {
	case 2:
		return biobj.SolveBi(in)
	case 3:
		set, err := triobj.SolveTri(in, order)
		if err != nil {
			return nil, err
		}

		return set.Solutions(), nil
	default:
		return nil, kpinstance.ErrInvalidObjectiveCount
	}
}

func openInput(path string, stdin io.Reader) (io.Reader, error) {
	if path == "" {
		return stdin, nil
	}

	return os.Open(path)
}

func openOutput(path string, stdout io.Writer) (io.Writer, error) {
	if path == "" {
		return stdout, nil
	}

	return os.Create(path)
}
