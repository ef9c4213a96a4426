package vmath

import (
	"fmt"
	"os"
)

// globalDebug enables the checks and stderr warnings below. It is process
// wide and unsynchronized; set it once at startup or from a single test.
var globalDebug bool

// SetDebugMode enables or disables debug checks. In debug mode vmath warns
// on stderr about numerically degenerate inputs (singular inverses,
// zero-length normalization, zero rotation axes) and panics when a view is
// created over a released buffer.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// debugWarnf writes a warning line to stderr.
func debugWarnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[vmath] warning: "+format+"\n", args...)
}

// debugCheckReleased panics with a descriptive message when a released
// buffer is used for op.
func debugCheckReleased[T Element](b *Buffer[T], op string) {
	if b.released {
		panic(fmt.Sprintf("vmath debug: %s on released %d-element buffer", op, len(b.data)))
	}
}

func debugCheckSingular(kind string, det float64) {
	if globalDebug && det == 0 {
		debugWarnf("inverse of singular %s (determinant 0) ignored", kind)
	}
}

func debugCheckZeroLength(kind string, sqLen float64) {
	if globalDebug && sqLen == 0 {
		debugWarnf("normalizing zero-length %s", kind)
	}
}

func debugCheckZeroAxis(op string, sqLen float64) {
	if globalDebug && sqLen < epsilon*epsilon {
		debugWarnf("%s about a zero-length axis ignored", op)
	}
}
