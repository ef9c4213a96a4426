package vmath

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// VecTween eases the components of a vector (or of any view, such as a
// matrix row) from their values at creation time to a target. Call Update
// each frame. If the target's buffer is released the tween stops
// immediately without writing.
//
// There is no global tween manager; callers own and update their tweens.
type VecTween[T Element] struct {
	tween  *gween.Tween
	target Viewable[T]
	from   []float64
	to     []float64
	Done   bool
}

func newVecTween[T Element](target Viewable[T], to []T, duration float32, fn ease.TweenFunc) *VecTween[T] {
	if fn == nil {
		fn = ease.Linear
	}
	t := &VecTween[T]{
		tween:  gween.New(0, 1, duration, fn),
		target: target,
		from:   appendElems(nil, target.Elements()),
		to:     appendElems(nil, to),
	}
	return t
}

// TweenVec2 animates v toward to over duration seconds. A nil fn means
// ease.Linear.
func TweenVec2[T Element](v, to *Vec2[T], duration float32, fn ease.TweenFunc) *VecTween[T] {
	return newVecTween[T](v, to.e(), duration, fn)
}

func TweenVec3[T Element](v, to *Vec3[T], duration float32, fn ease.TweenFunc) *VecTween[T] {
	return newVecTween[T](v, to.e(), duration, fn)
}

func TweenVec4[T Element](v, to *Vec4[T], duration float32, fn ease.TweenFunc) *VecTween[T] {
	return newVecTween[T](v, to.e(), duration, fn)
}

// Update advances the tween by dt seconds and writes the interpolated
// components into the target.
func (t *VecTween[T]) Update(dt float32) {
	if t.Done {
		return
	}
	if t.target.Buffer().IsReleased() {
		t.Done = true
		return
	}

	p, finished := t.tween.Update(dt)
	e := t.target.Elements()
	for i := range e {
		e[i] = toElem[T](t.from[i] + float64(p)*(t.to[i]-t.from[i]))
	}
	t.Done = finished
}

// Reset rewinds the tween and restores the starting values on the next
// Update.
func (t *VecTween[T]) Reset() {
	t.tween.Reset()
	t.Done = false
}

// QuatTween rotates a quaternion from its orientation at creation time to a
// target along the shortest arc (Slerp).
type QuatTween struct {
	tween  *gween.Tween
	target *Quat
	from   *Quat
	to     *Quat
	Done   bool
}

// TweenQuat animates q toward to over duration seconds. A nil fn means
// ease.Linear.
func TweenQuat(q, to *Quat, duration float32, fn ease.TweenFunc) *QuatTween {
	if fn == nil {
		fn = ease.Linear
	}
	return &QuatTween{
		tween:  gween.New(0, 1, duration, fn),
		target: q,
		from:   q.Clone(),
		to:     to.Clone(),
	}
}

func (t *QuatTween) Update(dt float32) {
	if t.Done {
		return
	}
	if t.target.Buffer().IsReleased() {
		t.Done = true
		return
	}

	p, finished := t.tween.Update(dt)
	copy(t.target.e(), Slerp(t.from, t.to, p).e())
	t.Done = finished
}

func (t *QuatTween) Reset() {
	t.tween.Reset()
	t.Done = false
}

// PathTween moves a vector through a list of waypoints, spending duration
// seconds on each leg. Legs run one after another as a gween.Sequence; the
// sequence value k+f places the target a fraction f along leg k.
type PathTween[T Element] struct {
	seq    *gween.Sequence
	target Viewable[T]
	points [][]float64
	Done   bool
}

// TweenPath animates v from its current value through every waypoint in
// order. A nil fn means ease.Linear.
func TweenPath[T Element](v *Vec3[T], waypoints []*Vec3[T], duration float32, fn ease.TweenFunc) *PathTween[T] {
	if fn == nil {
		fn = ease.Linear
	}
	t := &PathTween[T]{target: v}
	t.points = append(t.points, appendElems(nil, v.e()))
	for _, w := range waypoints {
		t.points = append(t.points, appendElems(nil, w.e()))
	}
	legs := make([]*gween.Tween, 0, len(waypoints))
	for i := range waypoints {
		legs = append(legs, gween.New(float32(i), float32(i+1), duration, fn))
	}
	t.seq = gween.NewSequence(legs...)
	t.Done = len(legs) == 0
	return t
}

// SetLoop repeats the path n times; n < 0 loops forever.
func (t *PathTween[T]) SetLoop(n int) {
	t.seq.SetLoop(n)
}

func (t *PathTween[T]) Update(dt float32) {
	if t.Done {
		return
	}
	if t.target.Buffer().IsReleased() {
		t.Done = true
		return
	}

	v, _, finished := t.seq.Update(dt)
	k := clamp(int(v), 0, len(t.points)-2)
	f := float64(v) - float64(k)
	a, b := t.points[k], t.points[k+1]
	e := t.target.Elements()
	for i := range e {
		e[i] = toElem[T](a[i] + f*(b[i]-a[i]))
	}
	t.Done = finished
}
