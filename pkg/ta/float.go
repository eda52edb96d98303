package ta

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Float is the numeric type shared by every series, parameter and output.
// Callers pick the width once (float32 or float64) and every kernel
// is instantiated with it.
type Float interface {
	constraints.Float
}

// NaN returns a quiet NaN of type T.
func NaN[T Float]() T {
	return T(math.NaN())
}

// IsNaN reports whether v is NaN.
func IsNaN[T Float](v T) bool {
	return v != v
}

// FMA returns x*y+z computed with a single rounding.
func FMA[T Float](x, y, z T) T {
	return T(math.FMA(float64(x), float64(y), float64(z)))
}

// Max returns the larger of a and b.
func Max[T Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of a and b.
func Min[T Float](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Abs returns the absolute value of v.
func Abs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Sqrt returns the square root of v.
func Sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}
