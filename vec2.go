package vmath

import "math"

// Vec2 is a 2-component vector, owning or a view.
type Vec2[T Element] struct {
	slot[T]
}

type (
	Vec2f  = Vec2[float32]
	Vec2i  = Vec2[int32]
	Vec2ui = Vec2[uint32]
)

// Vec2Transformer is implemented by *Mat4, *Mat3 and *Mat2.
type Vec2Transformer interface {
	transformVec2(v [2]float64) [2]float64
}

func newVec2[T Element]() *Vec2[T] {
	return &Vec2[T]{slot: owningSlot[T](2)}
}

func newVec2View[T Element](buf *Buffer[T], off int) *Vec2[T] {
	return &Vec2[T]{slot: viewSlot(buf, off)}
}

func NewVec2[T Element](args ...Arg) (*Vec2[T], error) {
	v := newVec2[T]()
	if err := v.Set(args...); err != nil {
		return nil, err
	}
	return v, nil
}

func MustVec2[T Element](args ...Arg) *Vec2[T] {
	return must(NewVec2[T](args...))
}

func Vec2Of[T Element](x, y T) *Vec2[T] {
	v := newVec2[T]()
	e := v.e()
	e[0], e[1] = x, y
	return v
}

func NewVec2f(x, y float32) *Vec2f {
	return Vec2Of(x, y)
}

func (v *Vec2[T]) e() []T {
	return v.buf.window(v.off, 2)
}

func (v *Vec2[T]) viewBase() (*Buffer[T], int, int) {
	return v.buf, v.off, 2
}

func (v *Vec2[T]) appendTo(dst []float64) []float64 {
	if v == nil {
		return dst
	}
	return appendElems(dst, v.e())
}

func (v *Vec2[T]) typeName() string {
	return "vec2" + suffix[T]()
}

func (v *Vec2[T]) Elements() []T {
	return v.e()
}

// Set overwrites the vector from args; see Vec3.Set.
func (v *Vec2[T]) Set(args ...Arg) error {
	return assign(v.e(), v.typeName(), args)
}

func (v *Vec2[T]) Clone() *Vec2[T] {
	out := newVec2[T]()
	copy(out.e(), v.e())
	return out
}

func (v *Vec2[T]) X() T { return v.e()[0] }
func (v *Vec2[T]) Y() T { return v.e()[1] }

func (v *Vec2[T]) SetX(x T) *Vec2[T] { v.e()[0] = x; return v }
func (v *Vec2[T]) SetY(y T) *Vec2[T] { v.e()[1] = y; return v }

func (v *Vec2[T]) Add(o *Vec2[T]) *Vec2[T] { out := newVec2[T](); addTo(out.e(), v.e(), o.e()); return out }
func (v *Vec2[T]) Sub(o *Vec2[T]) *Vec2[T] { out := newVec2[T](); subTo(out.e(), v.e(), o.e()); return out }
func (v *Vec2[T]) Mul(o *Vec2[T]) *Vec2[T] { out := newVec2[T](); mulTo(out.e(), v.e(), o.e()); return out }
func (v *Vec2[T]) Div(o *Vec2[T]) *Vec2[T] { out := newVec2[T](); divTo(out.e(), v.e(), o.e()); return out }

func (v *Vec2[T]) AddEq(o *Vec2[T]) *Vec2[T] { addTo(v.e(), v.e(), o.e()); return v }
func (v *Vec2[T]) SubEq(o *Vec2[T]) *Vec2[T] { subTo(v.e(), v.e(), o.e()); return v }
func (v *Vec2[T]) MulEq(o *Vec2[T]) *Vec2[T] { mulTo(v.e(), v.e(), o.e()); return v }
func (v *Vec2[T]) DivEq(o *Vec2[T]) *Vec2[T] { divTo(v.e(), v.e(), o.e()); return v }

func (v *Vec2[T]) AddScalar(s T) *Vec2[T] { out := newVec2[T](); addScalarTo(out.e(), v.e(), s); return out }
func (v *Vec2[T]) SubScalar(s T) *Vec2[T] { out := newVec2[T](); subScalarTo(out.e(), v.e(), s); return out }
func (v *Vec2[T]) MulScalar(s T) *Vec2[T] { out := newVec2[T](); mulScalarTo(out.e(), v.e(), s); return out }
func (v *Vec2[T]) DivScalar(s T) *Vec2[T] { out := newVec2[T](); divScalarTo(out.e(), v.e(), s); return out }

func (v *Vec2[T]) AddScalarEq(s T) *Vec2[T] { addScalarTo(v.e(), v.e(), s); return v }
func (v *Vec2[T]) SubScalarEq(s T) *Vec2[T] { subScalarTo(v.e(), v.e(), s); return v }
func (v *Vec2[T]) MulScalarEq(s T) *Vec2[T] { mulScalarTo(v.e(), v.e(), s); return v }
func (v *Vec2[T]) DivScalarEq(s T) *Vec2[T] { divScalarTo(v.e(), v.e(), s); return v }

func (v *Vec2[T]) Negated() *Vec2[T] { out := newVec2[T](); negTo(out.e(), v.e()); return out }
func (v *Vec2[T]) Negate() *Vec2[T]  { negTo(v.e(), v.e()); return v }
func (v *Vec2[T]) Inverse() *Vec2[T] { out := newVec2[T](); invTo(out.e(), v.e()); return out }
func (v *Vec2[T]) Invert() *Vec2[T]  { invTo(v.e(), v.e()); return v }

func (v *Vec2[T]) Ceil() *Vec2[T]    { out := newVec2[T](); applyTo(out.e(), v.e(), math.Ceil); return out }
func (v *Vec2[T]) CeilEq() *Vec2[T]  { applyTo(v.e(), v.e(), math.Ceil); return v }
func (v *Vec2[T]) Floor() *Vec2[T]   { out := newVec2[T](); applyTo(out.e(), v.e(), math.Floor); return out }
func (v *Vec2[T]) FloorEq() *Vec2[T] { applyTo(v.e(), v.e(), math.Floor); return v }
func (v *Vec2[T]) Rounded() *Vec2[T] { out := newVec2[T](); applyTo(out.e(), v.e(), math.Round); return out }
func (v *Vec2[T]) Round() *Vec2[T]   { applyTo(v.e(), v.e(), math.Round); return v }

func (v *Vec2[T]) Scaled(s float32) *Vec2[T] { out := newVec2[T](); scaleTo(out.e(), v.e(), s); return out }
func (v *Vec2[T]) Scale(s float32) *Vec2[T]  { scaleTo(v.e(), v.e(), s); return v }

func (v *Vec2[T]) Zeroed() *Vec2[T] { return newVec2[T]() }
func (v *Vec2[T]) Zero() *Vec2[T]   { clear(v.e()); return v }

func (v *Vec2[T]) Normalized() *Vec2[T] {
	out := newVec2[T]()
	normalizeTo(out.e(), v.e(), v.typeName())
	return out
}

func (v *Vec2[T]) Normalize() *Vec2[T] {
	normalizeTo(v.e(), v.e(), v.typeName())
	return v
}

func (v *Vec2[T]) WithLength(length float32) *Vec2[T] {
	out := newVec2[T]()
	setLengthTo(out.e(), v.e(), length, v.typeName())
	return out
}

func (v *Vec2[T]) SetLength(length float32) *Vec2[T] {
	setLengthTo(v.e(), v.e(), length, v.typeName())
	return v
}

func (v *Vec2[T]) Transformed(m Vec2Transformer) *Vec2[T] {
	return v.Clone().Transform(m)
}

// Transform replaces v with v·M. A Mat3 treats v as a point (z=1); a Mat4
// uses z=0, w=1.
func (v *Vec2[T]) Transform(m Vec2Transformer) *Vec2[T] {
	if m == nil {
		return v
	}
	e := v.e()
	r := m.transformVec2([2]float64{float64(e[0]), float64(e[1])})
	store(e, r[:])
	return v
}

// Cross returns the z component of the 3-D cross product of v and o
// extended with z=0.
func (v *Vec2[T]) Cross(o *Vec2[T]) float32 {
	a, b := v.e(), o.e()
	return float32(float64(a[0])*float64(b[1]) - float64(a[1])*float64(b[0]))
}

func (v *Vec2[T]) Dot(o *Vec2[T]) float32             { return float32(dot(v.e(), o.e())) }
func (v *Vec2[T]) SquaredLength() float32             { return float32(sqLen(v.e())) }
func (v *Vec2[T]) Length() float32                    { return float32(math.Sqrt(sqLen(v.e()))) }
func (v *Vec2[T]) Distance(o *Vec2[T]) float32        { return float32(math.Sqrt(sqDist(v.e(), o.e()))) }
func (v *Vec2[T]) SquaredDistance(o *Vec2[T]) float32 { return float32(sqDist(v.e(), o.e())) }
func (v *Vec2[T]) Equals(o *Vec2[T]) bool             { return equals(v.e(), o.e()) }
func (v *Vec2[T]) ExactEquals(o *Vec2[T]) bool        { return exactEquals(v.e(), o.e()) }

func (v *Vec2[T]) String() string         { return v.Text(defaultDigits) }
func (v *Vec2[T]) Text(digits int) string { return formatVec(v.e(), digits) }

func MinVec2[T Element](a, b *Vec2[T]) *Vec2[T] {
	out := newVec2[T]()
	minTo(out.e(), a.e(), b.e())
	return out
}

func MaxVec2[T Element](a, b *Vec2[T]) *Vec2[T] {
	out := newVec2[T]()
	maxTo(out.e(), a.e(), b.e())
	return out
}

func LerpVec2[T Element](a, b *Vec2[T], t float32) *Vec2[T] {
	out := newVec2[T]()
	lerpTo(out.e(), a.e(), b.e(), t)
	return out
}

// RandomVec2 returns a vector of length scale in a uniformly random
// direction.
func RandomVec2[T Element](scale float32) *Vec2[T] {
	r := randFloat() * 2 * math.Pi
	out := newVec2[T]()
	store(out.e(), []float64{math.Cos(r) * float64(scale), math.Sin(r) * float64(scale)})
	return out
}

// Vec2Angle returns the angle between a and b in the process angle unit.
func Vec2Angle[T Element](a, b *Vec2[T]) float32 {
	return fromRad(vecAngle(a.e(), b.e()))
}

// Rotate2 rotates point about origin by angle (process angle unit).
func Rotate2[T Element](point, origin *Vec2[T], angle float32) *Vec2[T] {
	p, o := point.e(), origin.e()
	px := float64(p[0]) - float64(o[0])
	py := float64(p[1]) - float64(o[1])
	s, c := math.Sincos(float64(toRad(angle)))
	out := newVec2[T]()
	store(out.e(), []float64{
		px*c - py*s + float64(o[0]),
		px*s + py*c + float64(o[1]),
	})
	return out
}
