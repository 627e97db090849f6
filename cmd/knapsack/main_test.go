package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const biInstance = `
3
2
1
10 6 4
2 5 8
5 4 3
10
`

func TestRunSolvesBiObjectiveInstance(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader(biInstance), &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Contains(t, stdout.String(), "\n")
	require.NotEmpty(t, stdout.String())
}

func TestRunReportsMalformedInput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(nil, strings.NewReader("3\n2\n1\n"), &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "knapsackio")
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-bogus"}, strings.NewReader(biInstance), &stdout, &stderr)
	require.Equal(t, 2, code)
}
