package knapsackio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jjorge/knapsack/kpinstance"
	"github.com/jjorge/knapsack/knapsackio"
	"github.com/stretchr/testify/require"
)

const sample = `
# three items, two objectives, one capacity constraint
3
2
1
10 6 4
2 5 8
5 4 3
10
`

func TestReadParsesWellFormedInstance(t *testing.T) {
	in, err := knapsackio.Read(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, 3, in.Size())
	require.Equal(t, 2, in.Objectives())
	require.Equal(t, float64(10), float64(in.Capacity()))
	require.Equal(t, float64(10), float64(in.Item(0).CostAt(0)))
	require.Equal(t, float64(8), float64(in.Item(2).CostAt(1)))
	require.Equal(t, float64(4), float64(in.Item(1).Weight()))
}

func TestReadRejectsTruncatedStream(t *testing.T) {
	_, err := knapsackio.Read(strings.NewReader("3\n2\n1\n10 6 4\n"))
	require.ErrorIs(t, err, knapsackio.ErrMalformedInput)
}

func TestReadRejectsUnparsableToken(t *testing.T) {
	bad := "3\n2\n1\n10 6 four\n2 5 8\n5 4 3\n10\n"
	_, err := knapsackio.Read(strings.NewReader(bad))
	require.ErrorIs(t, err, knapsackio.ErrMalformedInput)
}

func TestReadRejectsMultipleCapacityConstraints(t *testing.T) {
	_, err := knapsackio.Read(strings.NewReader("3\n2\n2\n"))
	require.ErrorIs(t, err, knapsackio.ErrUnsupportedConstraintCount)
}

func TestWriteThenCountLine(t *testing.T) {
	in, err := knapsackio.Read(strings.NewReader(sample))
	require.NoError(t, err)

	sol := kpinstance.NewKnapsackSolution(in.Size(), in.Objectives())
	sol.SetItem(in, 0)
	sol.SetItem(in, 2)

	var buf bytes.Buffer
	require.NoError(t, knapsackio.Write(&buf, []kpinstance.KnapsackSolution{sol}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "1", lines[0])
	require.Equal(t, "101", lines[1][len(lines[1])-3:])
}
