package testhelper

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// DefaultEpsilon is the relative tolerance used when comparing the batch and
// incremental kernels.
const DefaultEpsilon = 1e-9

// AssertSeriesInDelta compares expected and actual element by element. A NaN in
// expected requires a NaN in actual.
func AssertSeriesInDelta(t testing.TB, expected, actual []float64, delta float64, offset int) {
	t.Helper()

	for i, want := range expected {
		got := actual[i+offset]
		if math.IsNaN(want) {
			assert.Truef(t, math.IsNaN(got), "index %d: expected NaN, got %v", i+offset, got)
			continue
		}

		assert.InDeltaf(t, want, got, delta, "index %d", i+offset)
	}
}

// AssertRelative checks that actual is within a relative tolerance of expected.
// Values that are both near zero are compared absolutely.
func AssertRelative(t testing.TB, expected, actual, epsilon float64, msgAndArgs ...interface{}) bool {
	t.Helper()

	if math.IsNaN(expected) || math.IsNaN(actual) {
		return assert.True(t, math.IsNaN(expected) && math.IsNaN(actual), msgAndArgs...)
	}

	diff := math.Abs(expected - actual)
	scale := math.Max(math.Abs(expected), math.Abs(actual))
	if scale < 1 {
		scale = 1
	}

	if diff > epsilon*scale {
		return assert.Fail(t, fmt.Sprintf("expected %v, got %v (diff %g, relative epsilon %g)",
			expected, actual, diff, epsilon), msgAndArgs...)
	}

	return true
}

// AssertAllNaN checks that every element of s is NaN.
func AssertAllNaN(t testing.TB, s []float64) {
	t.Helper()

	for i, v := range s {
		assert.Truef(t, math.IsNaN(v), "index %d: expected NaN, got %v", i, v)
	}
}

// Series returns a slice of n copies of v, used to detect untouched outputs.
func Series(n int, v float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = v
	}
	return s
}
