package knapsackio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jjorge/knapsack/kpinstance"
)

// Write reports solutions to w, one line per solution: the cost vector, the
// weight, then a 0/1 string of length n (1 for Set, 0 for Unset — this package:
// "trit-vector of length n where only set/unset appear"). The first line is
// the solution count, so a caller can read the stream back without
// buffering it whole.
func Write(w io.Writer, solutions []kpinstance.KnapsackSolution) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, len(solutions)); err != nil {
		return err
	}

	for _, s := range solutions {
		if err := writeOne(bw, s); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func writeOne(bw *bufio.Writer, s kpinstance.KnapsackSolution) error {
	for _, c := range s.Value.Cost {
		if _, err := fmt.Fprintf(bw, "%g ", float64(c)); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "%g ", float64(s.Value.Weight)); err != nil {
		return err
	}

	n := s.Binary.Len()
	bits := make([]byte, n)
	for i := 0; i < n; i++ {
		if s.Binary.At(i) == kpinstance.Set {
			bits[i] = '1'
		} else {
			bits[i] = '0'
		}
	}
	_, err := fmt.Fprintln(bw, string(bits))

	return err
}
