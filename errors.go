package vmath

import (
	"errors"
	"fmt"
)

var (
	// ErrArgCount is matched by every error from a Set or New call whose
	// flattened arguments do not hold exactly the required number of values.
	ErrArgCount = errors.New("vmath: argument count mismatch")

	// ErrInvalidSelector is matched by errors from transform facades given
	// an argument combination they do not recognize.
	ErrInvalidSelector = errors.New("vmath: invalid transform selector")
)

// CountError reports a flattened argument list of the wrong length. The
// target is left untouched when it is returned.
type CountError struct {
	Type string // target type name, e.g. "vec3f" or "mat4i"
	Want int
	Got  int
}

func (e *CountError) Error() string {
	plural := "s"
	if e.Got == 1 {
		plural = ""
	}
	return fmt.Sprintf("vmath: invalid parameters to %s.Set: arguments may be numbers, sequences, vectors, matrices or quaternions as long as they hold %d values in total; %d value%s found",
		e.Type, e.Want, e.Got, plural)
}

// Is reports whether target is ErrArgCount.
func (e *CountError) Is(target error) bool {
	return target == ErrArgCount
}

// SelectorError reports a facade call whose arguments select no transform.
type SelectorError struct {
	Func   string
	Reason string
}

func (e *SelectorError) Error() string {
	return fmt.Sprintf("vmath: invalid arguments to %s: %s", e.Func, e.Reason)
}

// Is reports whether target is ErrInvalidSelector.
func (e *SelectorError) Is(target error) bool {
	return target == ErrInvalidSelector
}

// must panics on err. It backs the Must* helpers, which are meant for
// arguments known to be valid at the call site.
func must[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}
