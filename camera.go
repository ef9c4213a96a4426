package vmath

import "github.com/tanema/gween/ease"

// Rect is an axis-aligned rectangle in screen or world space.
type Rect struct {
	X, Y, Width, Height float32
}

// Camera2D maps a 2-D world onto a screen viewport: position, zoom,
// rotation and viewport, combined into a Mat3 view matrix.
type Camera2D struct {
	// Position is the world-space point the camera centers on.
	Position *Vec2f
	// Zoom is the scale factor (1 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float32
	// Rotation is the camera rotation in the process angle unit.
	Rotation float32
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	// BoundsEnabled clamps Position so the visible area stays within
	// Bounds.
	BoundsEnabled bool
	Bounds        Rect

	follow       *Vec2f
	followOffset *Vec2f
	followLerp   float32

	scroll *VecTween[float32]

	view    *Mat3f
	invView *Mat3f
	last    [4]float32
	dirty   bool
}

// NewCamera2D returns a camera centered on the world origin with zoom 1.
func NewCamera2D(viewport Rect) *Camera2D {
	return &Camera2D{
		Position: NewVec2f(0, 0),
		Zoom:     1,
		Viewport: viewport,
		view:     IdentityMat3[float32](),
		invView:  IdentityMat3[float32](),
		dirty:    true,
	}
}

// Follow makes the camera track target, which may be any Vec2 including a
// view such as a Vec3's XY. A lerp of 1 snaps; lower values smooth the
// motion. Following stops if target's buffer is released.
func (c *Camera2D) Follow(target *Vec2f, offset *Vec2f, lerp float32) {
	c.follow = target
	c.followOffset = NewVec2f(0, 0)
	if offset != nil {
		c.followOffset.Set(offset)
	}
	c.followLerp = lerp
}

func (c *Camera2D) Unfollow() {
	c.follow = nil
}

// ScrollTo eases the camera to the world position to over duration
// seconds. A nil fn means ease.Linear.
func (c *Camera2D) ScrollTo(to *Vec2f, duration float32, fn ease.TweenFunc) {
	c.scroll = TweenVec2(c.Position, to, duration, fn)
}

// ScrollToTile scrolls to the center of tile (tx, ty) in a grid of
// tileW×tileH cells.
func (c *Camera2D) ScrollToTile(tx, ty int, tileW, tileH float32, duration float32, fn ease.TweenFunc) {
	to := NewVec2f(float32(tx)*tileW+tileW/2, float32(ty)*tileH+tileH/2)
	c.ScrollTo(to, duration, fn)
}

func (c *Camera2D) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

func (c *Camera2D) ClearBounds() {
	c.BoundsEnabled = false
}

// Update advances following, scrolling and bounds clamping by dt seconds.
func (c *Camera2D) Update(dt float32) {
	if c.follow != nil {
		if c.follow.Buffer().IsReleased() {
			c.follow = nil
		} else {
			target := c.follow.Add(c.followOffset)
			c.Position.Set(LerpVec2(c.Position, target, c.followLerp))
		}
	}

	if c.scroll != nil {
		c.scroll.Update(dt)
		if c.scroll.Done {
			c.scroll = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds restricts Position so the visible area stays within
// Bounds. A bounds rectangle smaller than the view centers the camera.
func (c *Camera2D) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX, maxX := c.Bounds.X+halfW, c.Bounds.X+c.Bounds.Width-halfW
	minY, maxY := c.Bounds.Y+halfH, c.Bounds.Y+c.Bounds.Height-halfH

	x, y := c.Position.X(), c.Position.Y()
	if minX > maxX {
		x = c.Bounds.X + c.Bounds.Width/2
	} else {
		x = clamp(x, minX, maxX)
	}
	if minY > maxY {
		y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		y = clamp(y, minY, maxY)
	}
	c.Position.SetX(x).SetY(y)
}

// View returns the world-to-screen matrix. It is recomputed only when the
// position, zoom or rotation changed; callers must not modify it.
//
//	view = Translate(-Position) · Rotate(-Rotation) · Scale(Zoom) · Translate(viewport center)
func (c *Camera2D) View() *Mat3f {
	state := [4]float32{c.Position.X(), c.Position.Y(), c.Zoom, c.Rotation}
	if !c.dirty && state == c.last {
		return c.view
	}
	c.dirty = false
	c.last = state

	center := NewVec2f(c.Viewport.X+c.Viewport.Width/2, c.Viewport.Y+c.Viewport.Height/2)
	c.view.Identity().
		Translate(center).
		Scale(NewVec2f(c.Zoom, c.Zoom)).
		Rotate(-c.Rotation).
		Translate(c.Position.Negated())
	c.invView.Set(c.view.Inverse())
	return c.view
}

// MarkDirty forces View to recompute, e.g. after the viewport changed.
func (c *Camera2D) MarkDirty() {
	c.dirty = true
}

// WorldToScreen returns the screen position of the world point p.
func (c *Camera2D) WorldToScreen(p *Vec2f) *Vec2f {
	return p.Transformed(c.View())
}

// ScreenToWorld returns the world position under the screen point p.
func (c *Camera2D) ScreenToWorld(p *Vec2f) *Vec2f {
	c.View()
	return p.Transformed(c.invView)
}

// VisibleBounds returns the world-space bounding rectangle of the
// viewport.
func (c *Camera2D) VisibleBounds() Rect {
	v := c.Viewport
	lo := c.ScreenToWorld(NewVec2f(v.X, v.Y))
	hi := lo.Clone()
	for _, p := range []*Vec2f{
		NewVec2f(v.X+v.Width, v.Y),
		NewVec2f(v.X+v.Width, v.Y+v.Height),
		NewVec2f(v.X, v.Y+v.Height),
	} {
		w := c.ScreenToWorld(p)
		lo = MinVec2(lo, w)
		hi = MaxVec2(hi, w)
	}
	return Rect{X: lo.X(), Y: lo.Y(), Width: hi.X() - lo.X(), Height: hi.Y() - lo.Y()}
}
