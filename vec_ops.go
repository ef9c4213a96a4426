package vmath

import (
	"math"
	"math/rand/v2"
)

// Component-wise kernels shared by Vec2, Vec3 and Vec4. out may alias a or
// b; every kernel reads an index before writing it.

func addTo[T Element](out, a, b []T) {
	for i := range out {
		out[i] = a[i] + b[i]
	}
}

func subTo[T Element](out, a, b []T) {
	for i := range out {
		out[i] = a[i] - b[i]
	}
}

func mulTo[T Element](out, a, b []T) {
	for i := range out {
		out[i] = a[i] * b[i]
	}
}

// divTo divides through float64 so integer division by zero stores 0
// instead of panicking.
func divTo[T Element](out, a, b []T) {
	for i := range out {
		out[i] = toElem[T](float64(a[i]) / float64(b[i]))
	}
}

func addScalarTo[T Element](out, a []T, s T) {
	for i := range out {
		out[i] = a[i] + s
	}
}

func subScalarTo[T Element](out, a []T, s T) {
	for i := range out {
		out[i] = a[i] - s
	}
}

func mulScalarTo[T Element](out, a []T, s T) {
	for i := range out {
		out[i] = a[i] * s
	}
}

func divScalarTo[T Element](out, a []T, s T) {
	for i := range out {
		out[i] = toElem[T](float64(a[i]) / float64(s))
	}
}

func negTo[T Element](out, a []T) {
	for i := range out {
		out[i] = -a[i]
	}
}

func invTo[T Element](out, a []T) {
	for i := range out {
		out[i] = toElem[T](1 / float64(a[i]))
	}
}

func applyTo[T Element](out, a []T, fn func(float64) float64) {
	for i := range out {
		out[i] = toElem[T](fn(float64(a[i])))
	}
}

func scaleTo[T Element](out, a []T, s float32) {
	for i := range out {
		out[i] = toElem[T](float64(a[i]) * float64(s))
	}
}

// normalizeTo divides by the length. A zero-length input yields NaN
// components (stored as 0 for integer types).
func normalizeTo[T Element](out, a []T, kind string) {
	sq := sqLen(a)
	debugCheckZeroLength(kind, sq)
	l := math.Sqrt(sq)
	for i := range out {
		out[i] = toElem[T](float64(a[i]) / l)
	}
}

func setLengthTo[T Element](out, a []T, length float32, kind string) {
	sq := sqLen(a)
	debugCheckZeroLength(kind, sq)
	f := float64(length) / math.Sqrt(sq)
	for i := range out {
		out[i] = toElem[T](float64(a[i]) * f)
	}
}

func lerpTo[T Element](out, a, b []T, t float32) {
	tf := float64(t)
	for i := range out {
		av := float64(a[i])
		out[i] = toElem[T](av + tf*(float64(b[i])-av))
	}
}

func minTo[T Element](out, a, b []T) {
	for i := range out {
		out[i] = minOf(a[i], b[i])
	}
}

func maxTo[T Element](out, a, b []T) {
	for i := range out {
		out[i] = maxOf(a[i], b[i])
	}
}

func dot[T Element](a, b []T) float64 {
	var s float64
	for i := range a {
		s += float64(a[i]) * float64(b[i])
	}
	return s
}

func sqLen[T Element](a []T) float64 {
	return dot(a, a)
}

func sqDist[T Element](a, b []T) float64 {
	var s float64
	for i := range a {
		d := float64(b[i]) - float64(a[i])
		s += d * d
	}
	return s
}

func equals[T Element](a, b []T) bool {
	for i := range a {
		if !approxEqual(float64(a[i]), float64(b[i])) {
			return false
		}
	}
	return true
}

func exactEquals[T Element](a, b []T) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// randSource backs every random constructor. Nil means the global
// math/rand/v2 generator.
var randSource *rand.Rand

// SetRandSource makes RandomVec*, RandomQuat and friends draw from r.
// Passing nil restores the global generator.
func SetRandSource(r *rand.Rand) {
	randSource = r
}

func randFloat() float64 {
	if randSource != nil {
		return randSource.Float64()
	}
	return rand.Float64()
}
