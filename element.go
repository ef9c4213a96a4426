package vmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Element is the closed set of numeric types a buffer can hold.
type Element interface {
	float32 | int32 | uint32
}

// epsilon is the relative tolerance used by every approximate comparison.
const epsilon = 0.000001

// isFloat reports whether T is the float32 element type.
func isFloat[T Element]() bool {
	var zero T
	_, ok := any(zero).(float32)
	return ok
}

// suffix returns the short element-type suffix used in type names
// ("f", "i", "ui").
func suffix[T Element]() string {
	var zero T
	switch any(zero).(type) {
	case float32:
		return "f"
	case uint32:
		return "ui"
	}
	return "i"
}

// toElem converts a float64 result into T the way a typed numeric array
// stores it: float32 rounds, integers truncate toward zero and wrap modulo
// 2^32, and NaN or Inf store as 0.
func toElem[T Element](x float64) T {
	if isFloat[T]() {
		return T(float32(x))
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	x = math.Trunc(x)
	if x >= 1<<63 || x < -(1<<63) {
		x = math.Mod(x, 1<<32)
	}
	return T(uint32(int64(x)))
}

// load copies a window into a float64 array for computation.
func load[T Element](dst []float64, src []T) {
	for i, v := range src {
		dst[i] = float64(v)
	}
}

// store writes computed values back into a window.
func store[T Element](dst []T, src []float64) {
	for i := range dst {
		dst[i] = toElem[T](src[i])
	}
}

func minOf[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func maxOf[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

func clamp[T constraints.Ordered](x, low, high T) T {
	return minOf(maxOf(x, low), high)
}

// approxEqual is the tolerance test shared by every Equals method.
func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= epsilon*maxOf(1.0, maxOf(math.Abs(a), math.Abs(b)))
}
