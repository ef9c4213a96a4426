package vmath

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenVec3(t *testing.T) {
	v := NewVec3f(0, 0, 0)
	tw := TweenVec3(v, NewVec3f(2, 4, -8), 1, nil)

	tw.Update(0.5)
	assertElems(t, "halfway", v.Elements(), 1, 2, -4)
	if tw.Done {
		t.Error("tween should not be done at halfway")
	}

	tw.Update(0.5)
	assertElems(t, "end", v.Elements(), 2, 4, -8)
	if !tw.Done {
		t.Error("tween should be done")
	}

	// Further updates are ignored.
	v.SetX(100)
	tw.Update(1)
	if v.X() != 100 {
		t.Error("finished tween wrote to target")
	}
}

func TestTweenReset(t *testing.T) {
	v := NewVec2f(0, 0)
	tw := TweenVec2(v, NewVec2f(10, 10), 2, ease.Linear)
	tw.Update(2)
	tw.Reset()
	if tw.Done {
		t.Fatal("Reset should clear Done")
	}
	tw.Update(1)
	assertElems(t, "after reset", v.Elements(), 5, 5)
}

func TestTweenMatrixRowView(t *testing.T) {
	m := IdentityMat4[float32]()
	tw := TweenVec4(m.W(), NewVec4f(1, 2, 3, 1), 1, ease.InOutQuad)
	tw.Update(1)
	assertElems(t, "translation", m.Translation().Elements(), 1, 2, 3)
}

func TestTweenIntegerTarget(t *testing.T) {
	v := Vec2Of[int32](0, 0)
	tw := TweenVec2(v, Vec2Of[int32](10, -10), 1, nil)
	tw.Update(0.25)
	assertElems(t, "quarter", v.Elements(), 2, -2)
}

func TestTweenStopsOnRelease(t *testing.T) {
	v := NewVec3f(0, 0, 0)
	tw := TweenVec3(v, NewVec3f(1, 1, 1), 1, nil)
	v.Release()

	tw.Update(0.5)
	if !tw.Done {
		t.Error("tween over a released buffer should stop")
	}
}

func TestTweenQuat(t *testing.T) {
	q := MustQuat()
	target := QuatFromAxisAngle(zAxis, 90)
	tw := TweenQuat(q, target, 1, nil)

	tw.Update(0.5)
	if !q.Equals(QuatFromAxisAngle(zAxis, 45)) {
		t.Errorf("halfway = %s", q)
	}
	tw.Update(0.5)
	if !tw.Done || !q.Equals(target) {
		t.Errorf("end = %s, done=%v", q, tw.Done)
	}

	tw.Reset()
	tw.Update(0)
	if !q.Equals(MustQuat()) {
		t.Errorf("after reset = %s, want identity", q)
	}
}

func TestTweenPath(t *testing.T) {
	v := NewVec3f(0, 0, 0)
	tw := TweenPath(v, []*Vec3f{NewVec3f(1, 0, 0), NewVec3f(1, 1, 0)}, 1, nil)

	tw.Update(1)
	assertElems(t, "first waypoint", v.Elements(), 1, 0, 0)
	tw.Update(0.5)
	assertElems(t, "mid second leg", v.Elements(), 1, 0.5, 0)
	tw.Update(0.5)
	assertElems(t, "last waypoint", v.Elements(), 1, 1, 0)
	if !tw.Done {
		t.Error("path should be done")
	}
}

func TestTweenPathLoops(t *testing.T) {
	v := NewVec3f(0, 0, 0)
	tw := TweenPath(v, []*Vec3f{NewVec3f(2, 0, 0)}, 1, nil)
	tw.SetLoop(-1)
	for i := 0; i < 5; i++ {
		tw.Update(0.3)
	}
	if tw.Done {
		t.Error("looping path should never finish")
	}
}

func TestTweenPathEmpty(t *testing.T) {
	v := NewVec3f(1, 2, 3)
	tw := TweenPath(v, nil, 1, nil)
	if !tw.Done {
		t.Error("path without waypoints is done immediately")
	}
	tw.Update(1)
	assertElems(t, "unchanged", v.Elements(), 1, 2, 3)
}
