package vmath

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

// captureStderr runs fn and returns everything it wrote to stderr.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	buf.ReadFrom(r)
	return buf.String()
}

func TestDebugViewOverReleasedBuffer(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	v := NewVec3f(1, 2, 3)
	v.Release()
	assertPanics(t, "vmath debug", func() { NewVec2View[float32](v, 0) })
}

func TestDebugOffNoViewCheck(t *testing.T) {
	v := NewVec3f(1, 2, 3)
	v.Release()
	// The view is created; only access through it panics.
	w := NewVec2View[float32](v, 1)
	assertPanics(t, "released", func() { _ = w.X() })
}

func TestDebugZeroLengthNormalize(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	out := captureStderr(t, func() {
		NewVec3f(0, 0, 0).Normalize()
	})
	if !strings.Contains(out, "normalizing zero-length vec3f") {
		t.Errorf("expected zero-length warning, got: %q", out)
	}
}

func TestDebugZeroAxisRotate(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	out := captureStderr(t, func() {
		IdentityMat4[float32]().Rotate(NewVec3f(0, 0, 0), 30)
	})
	if !strings.Contains(out, "Mat4.Rotate about a zero-length axis ignored") {
		t.Errorf("expected zero-axis warning, got: %q", out)
	}
}

func TestDebugReleaseWithViews(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	v := NewVec4f(1, 2, 3, 4)
	_ = v.XYZ()
	_ = v.XYZ()
	_ = NewVec2View[float32](v, 2)
	out := captureStderr(t, func() { v.Release() })
	if !strings.Contains(out, "2 view(s) created over it") {
		t.Errorf("expected view count warning, got: %q", out)
	}
}

func TestDebugSilentWhenDisabled(t *testing.T) {
	out := captureStderr(t, func() {
		NewVec3f(0, 0, 0).Normalize()
		NewMat4f().Invert()
	})
	if out != "" {
		t.Errorf("unexpected output with debug off: %q", out)
	}
}
