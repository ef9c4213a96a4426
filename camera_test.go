package vmath

import "testing"

func newTestCamera() *Camera2D {
	return NewCamera2D(Rect{X: 0, Y: 0, Width: 800, Height: 600})
}

func TestCameraDefaults(t *testing.T) {
	c := newTestCamera()
	if c.Zoom != 1 {
		t.Errorf("Zoom = %v, want 1", c.Zoom)
	}
	assertElems(t, "origin on screen", c.WorldToScreen(NewVec2f(0, 0)).Elements(), 400, 300)
}

func TestCameraWorldToScreen(t *testing.T) {
	c := newTestCamera()
	c.Position.Set(Of(100, 50))
	assertElems(t, "position at center", c.WorldToScreen(NewVec2f(100, 50)).Elements(), 400, 300)

	c.Zoom = 2
	assertElems(t, "zoomed", c.WorldToScreen(NewVec2f(110, 50)).Elements(), 420, 300)
}

func TestCameraRotation(t *testing.T) {
	c := newTestCamera()
	c.Rotation = 90
	assertElems(t, "rotated", c.WorldToScreen(NewVec2f(10, 0)).Elements(), 400, 290)
}

func TestCameraScreenToWorldRoundTrip(t *testing.T) {
	c := newTestCamera()
	c.Position.Set(Of(-30, 75))
	c.Zoom = 1.5
	c.Rotation = 33

	w := NewVec2f(12, -7)
	back := c.ScreenToWorld(c.WorldToScreen(w))
	assertElems(t, "round trip", back.Elements(), 12, -7)
}

func TestCameraViewIsCached(t *testing.T) {
	c := newTestCamera()
	v1 := c.View()
	before := v1.Clone()
	if c.View() != v1 {
		t.Error("View should return the cached matrix")
	}

	c.Position.SetX(10)
	c.View()
	if v1.ExactEquals(before) {
		t.Error("moving the camera should recompute the view")
	}
}

func TestCameraFollowView(t *testing.T) {
	c := newTestCamera()
	target := NewVec3f(10, 20, 99)
	c.Follow(target.XY(), NewVec2f(1, 1), 1)
	c.Update(1.0 / 60)
	assertElems(t, "snapped", c.Position.Elements(), 11, 21)

	c.Follow(target.XY(), nil, 0.5)
	target.SetXY(NewVec2f(31, 41))
	c.Update(1.0 / 60)
	assertElems(t, "lerped", c.Position.Elements(), 21, 31)

	target.Release()
	c.Update(1.0 / 60)
	assertElems(t, "unfollowed on release", c.Position.Elements(), 21, 31)
}

func TestCameraScrollTo(t *testing.T) {
	c := newTestCamera()
	c.ScrollTo(NewVec2f(100, 0), 1, nil)
	c.Update(0.5)
	assertElems(t, "halfway", c.Position.Elements(), 50, 0)
	c.Update(0.5)
	assertElems(t, "arrived", c.Position.Elements(), 100, 0)

	c.ScrollToTile(2, 3, 16, 16, 1, nil)
	c.Update(1)
	assertElems(t, "tile center", c.Position.Elements(), 40, 56)
}

func TestCameraBounds(t *testing.T) {
	c := newTestCamera()
	c.SetBounds(Rect{X: 0, Y: 0, Width: 1000, Height: 1000})
	c.Update(0)
	assertElems(t, "clamped", c.Position.Elements(), 400, 300)

	c.Bounds = Rect{X: 0, Y: 0, Width: 100, Height: 100}
	c.Update(0)
	assertElems(t, "small bounds centered", c.Position.Elements(), 50, 50)

	c.ClearBounds()
	c.Position.Set(Of(-500, -500))
	c.Update(0)
	assertElems(t, "unclamped", c.Position.Elements(), -500, -500)
}

func TestCameraVisibleBounds(t *testing.T) {
	c := newTestCamera()
	c.Zoom = 2
	b := c.VisibleBounds()
	assertNear(t, "X", b.X, -200)
	assertNear(t, "Y", b.Y, -150)
	assertNear(t, "Width", b.Width, 400)
	assertNear(t, "Height", b.Height, 300)
}
