package floats

import "golang.org/x/exp/constraints"

// Sum returns the sum of arr.
func Sum[T constraints.Float](arr []T) T {
	var s T
	for _, a := range arr {
		s += a
	}
	return s
}

// Average returns the arithmetic mean of arr, or NaN when arr is empty.
func Average[T constraints.Float](arr []T) T {
	if len(arr) == 0 {
		var zero T
		return zero / zero
	}
	return Sum(arr) / T(len(arr))
}

// Fill sets every element of arr to v.
func Fill[T constraints.Float](arr []T, v T) {
	for i := range arr {
		arr[i] = v
	}
}

// IndexNaN returns the index of the first NaN in arr, or -1.
func IndexNaN[T constraints.Float](arr []T) int {
	for i, a := range arr {
		if a != a {
			return i
		}
	}
	return -1
}

// Subtract writes inReal0[i] - inReal1[i] into outReal.
// All three slices must have the same length.
func Subtract[T constraints.Float](inReal0, inReal1, outReal []T) {
	for i := range outReal {
		outReal[i] = inReal0[i] - inReal1[i]
	}
}
