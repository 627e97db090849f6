package knapsackio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/numeric"
)

// tokenStream pulls whitespace-separated tokens out of r, skipping blank
// lines and lines whose first non-space rune is '#' ("#-prefixed
// comment lines allowed between blocks").
type tokenStream struct {
	tokens []string
	pos    int
}

func newTokenStream(r io.Reader) *tokenStream {
	ts := &tokenStream{}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ts.tokens = append(ts.tokens, strings.Fields(line)...)
	}

	return ts
}

func (ts *tokenStream) next() (string, bool) {
	if ts.pos >= len(ts.tokens) {
		return "", false
	}
	tok := ts.tokens[ts.pos]
	ts.pos++

	return tok, true
}

func (ts *tokenStream) nextInt() (int, error) {
	tok, ok := ts.next()
	if !ok {
		return 0, ErrMalformedInput
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, ErrMalformedInput
	}

	return v, nil
}

func (ts *tokenStream) nextReal() (numeric.Real, error) {
	tok, ok := ts.next()
	if !ok {
		return 0, ErrMalformedInput
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, ErrMalformedInput
	}

	return numeric.Real(v), nil
}

// Read parses an Instance from the token grammar:
//
//	<n>
//	<p>
//	<k>                # number of capacity constraints; must be 1
//	<c_1,1> ... <c_n,1>
//	<c_1,2> ... <c_n,2>
//	...
//	<c_1,p> ... <c_n,p>
//	<w_1> ... <w_n>
//	<capacity>
//
// Any truncated stream or unparsable token yields ErrMalformedInput; k != 1
// yields ErrUnsupportedConstraintCount. Every other invariant (p in {2,3},
// non-negative costs/weights/capacity) is enforced by kpinstance.NewItem and
// kpinstance.NewInstance on the parsed values.
func Read(r io.Reader) (*kpinstance.Instance, error) {
	ts := newTokenStream(r)

	n, err := ts.nextInt()
	if err != nil {
		return nil, err
	}
	p, err := ts.nextInt()
	if err != nil {
		return nil, err
	}
	k, err := ts.nextInt()
	if err != nil {
		return nil, err
	}
	if k != 1 {
		return nil, ErrUnsupportedConstraintCount
	}

	costs := make([]numeric.Vector, n)
	for i := range costs {
		costs[i] = make(numeric.Vector, p)
	}
	for j := 0; j < p; j++ {
		for i := 0; i < n; i++ {
			v, err := ts.nextReal()
			if err != nil {
				return nil, err
			}
			costs[i][j] = v
		}
	}

	weights := make([]numeric.Real, n)
	for i := 0; i < n; i++ {
		v, err := ts.nextReal()
		if err != nil {
			return nil, err
		}
		weights[i] = v
	}

	capacity, err := ts.nextReal()
	if err != nil {
		return nil, err
	}

	items := make([]kpinstance.Item, n)
	for i := 0; i < n; i++ {
		it, err := kpinstance.NewItem(i, costs[i], weights[i])
		if err != nil {
			return nil, err
		}
		items[i] = it
	}

	return kpinstance.NewInstance(items, capacity)
}
