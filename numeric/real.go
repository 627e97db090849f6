package numeric

import "math"

// Real is the configurable numeric type used throughout the solver for
// costs, weights and scalarised values. It is a plain float64: the original
// bikp/kp implementation parameterises its "real_type" behind a typedef so
// that an integer build is a drop-in alternative when every input is
// integral (see bikp/tool/types.hpp); Go has no equivalent of a compile-time
// typedef swap, so this package keeps the float64 representation and
// confines every tolerance-sensitive comparison to this file.
type Real = float64

// DefaultEpsilon is the default tolerance for strict comparisons between
// Real values. It matches the order of magnitude used for local-search
// comparisons elsewhere in this codebase.
const DefaultEpsilon Real = 1e-9

// Epsilon is the package-wide comparison tolerance. Tests and callers that
// need determinism on integral instances may lower it (e.g. to 0) without
// recompiling; production callers should not need to touch it.
var Epsilon = DefaultEpsilon

// Equal reports whether a and b are equal within Epsilon.
func Equal(a, b Real) bool {
	return math.Abs(a-b) <= Epsilon
}

// Less reports whether a is strictly less than b, outside of Epsilon.
func Less(a, b Real) bool {
	return b-a > Epsilon
}

// Greater reports whether a is strictly greater than b, outside of Epsilon.
func Greater(a, b Real) bool {
	return a-b > Epsilon
}

// LessEqual reports whether a <= b within Epsilon.
func LessEqual(a, b Real) bool {
	return !Greater(a, b)
}

// GreaterEqual reports whether a >= b within Epsilon.
func GreaterEqual(a, b Real) bool {
	return !Less(a, b)
}

// Compare returns -1, 0 or 1 as a is less than, equal to or greater than b,
// using the same Epsilon tolerance as Equal.
func Compare(a, b Real) int {
	if Equal(a, b) {
		return 0
	}
	if a < b {
		return -1
	}

	return 1
}

// SafeDiv performs an integer-overflow-safe division used by the
// Martello-Toth relaxation: it evaluates (num * mulNum) / den as a floating
// point ratio without intermediate overflow, mirroring the original
// mt_linear_relaxation.hpp computation of
// (c - weights[s-1]) * efficiency(s).
func SafeDiv(num, den Real) Real {
	if den == 0 {
		return 0
	}

	return num / den
}
