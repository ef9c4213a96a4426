package vmath

import "golang.org/x/exp/constraints"

// Arg is one argument to Set or a New constructor. The set of
// implementations is closed: Scalar (one number), Values (a plain
// sequence) and every vector, matrix and quaternion type, which contribute
// all of their elements in order.
type Arg interface {
	appendTo(dst []float64) []float64
}

// Scalar contributes a single number.
type Scalar float64

func (s Scalar) appendTo(dst []float64) []float64 {
	return append(dst, float64(s))
}

// Values contributes every number it holds, in order.
type Values []float64

func (v Values) appendTo(dst []float64) []float64 {
	return append(dst, v...)
}

// Of builds a Values argument from numbers of any built-in numeric type.
func Of[N constraints.Integer | constraints.Float](vals ...N) Values {
	out := make(Values, len(vals))
	for i, v := range vals {
		out[i] = float64(v)
	}
	return out
}

// flatten expands args left to right into one sequence. Nil arguments,
// whether a nil interface or a typed nil pointer, contribute nothing.
func flatten(dst []float64, args []Arg) []float64 {
	for _, a := range args {
		if a == nil {
			continue
		}
		dst = a.appendTo(dst)
	}
	return dst
}

// assign implements the flexible assignment protocol for a window of
// len(dst) elements. name is the target type used in error messages.
//
// An empty argument list leaves a float32 window unmodified and
// zero-fills an integer one. Arguments that flatten to a count other than
// len(dst), including nil arguments that flatten to nothing, return a
// *CountError and write nothing.
func assign[T Element](dst []T, name string, args []Arg) error {
	if len(args) == 0 {
		if !isFloat[T]() {
			clear(dst)
		}
		return nil
	}
	var scratch [16]float64
	vals := flatten(scratch[:0], args)
	if len(vals) != len(dst) {
		return &CountError{Type: name, Want: len(dst), Got: len(vals)}
	}
	store(dst, vals)
	return nil
}

// appendElems is the appendTo body shared by vectors and matrices.
func appendElems[T Element](dst []float64, src []T) []float64 {
	for _, v := range src {
		dst = append(dst, float64(v))
	}
	return dst
}
