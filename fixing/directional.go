package fixing

import (
	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
)

// Triangle is the minimal per-triangle input Directional needs: the lambda
// defining the triangle's scalarisation and the known lower bounds on each
// of the three objectives it fixes against.
type Triangle struct {
	Lambda numeric.Vector
	LBZ1   numeric.Real
	LBZ2   numeric.Real
	LBComb numeric.Real
}

// Directional runs a Combined fixing for every triangle and keeps only the
// variables fixed to the same value in every triangle; a
// triangle whose forced set-variables already exceed capacity (ErrInfeasible)
// is itself infeasible and contributes no votes, rather than aborting the
// whole pass.
func Directional(in *kpinstance.Instance, triangles []Triangle) (map[int]kpinstance.Trit, error) {
	votes := make(map[int]kpinstance.Trit)
	seenCount := make(map[int]int)
	conflicted := make(map[int]bool)

	for _, tr := range triangles {
		res, err := Combined(in, tr.Lambda, tr.LBZ1, tr.LBZ2, tr.LBComb)
		if err != nil {
			if err == ErrInfeasible {
				continue
			}

			return nil, err
		}
		for src, trit := range res.Forced {
			seenCount[src]++
			if conflicted[src] {
				continue
			}
			if existing, ok := votes[src]; ok {
				if existing != trit {
					conflicted[src] = true
					delete(votes, src)
				}
			} else {
				votes[src] = trit
			}
		}
	}

	out := make(map[int]kpinstance.Trit)
	for src, trit := range votes {
		if !conflicted[src] && seenCount[src] == len(triangles) {
			out[src] = trit
		}
	}

	return out, nil
}
