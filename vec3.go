package vmath

import "math"

// Vec3 is a 3-component vector. It either owns a 3-element buffer or is a
// view into a larger vector's or matrix's buffer; see Buffer.
type Vec3[T Element] struct {
	slot[T]
	xy, yz *Vec2[T]
}

type (
	Vec3f  = Vec3[float32]
	Vec3i  = Vec3[int32]
	Vec3ui = Vec3[uint32]
)

// Vec3Transformer is the closed set of values a Vec3 can be transformed
// by: *Mat4, *Mat3 and *Quat.
type Vec3Transformer interface {
	transformVec3(v [3]float64) [3]float64
}

func newVec3[T Element]() *Vec3[T] {
	return &Vec3[T]{slot: owningSlot[T](3)}
}

func newVec3View[T Element](buf *Buffer[T], off int) *Vec3[T] {
	return &Vec3[T]{slot: viewSlot(buf, off)}
}

// NewVec3 returns an owning vector initialized from args by the flexible
// assignment protocol (see Set).
func NewVec3[T Element](args ...Arg) (*Vec3[T], error) {
	v := newVec3[T]()
	if err := v.Set(args...); err != nil {
		return nil, err
	}
	return v, nil
}

// MustVec3 is like NewVec3 but panics on a count mismatch.
func MustVec3[T Element](args ...Arg) *Vec3[T] {
	return must(NewVec3[T](args...))
}

// Vec3Of returns an owning vector holding x, y, z.
func Vec3Of[T Element](x, y, z T) *Vec3[T] {
	v := newVec3[T]()
	e := v.e()
	e[0], e[1], e[2] = x, y, z
	return v
}

// NewVec3f returns an owning float vector holding x, y, z.
func NewVec3f(x, y, z float32) *Vec3f {
	return Vec3Of(x, y, z)
}

func (v *Vec3[T]) e() []T {
	return v.buf.window(v.off, 3)
}

func (v *Vec3[T]) viewBase() (*Buffer[T], int, int) {
	return v.buf, v.off, 3
}

func (v *Vec3[T]) appendTo(dst []float64) []float64 {
	if v == nil {
		return dst
	}
	return appendElems(dst, v.e())
}

func (v *Vec3[T]) typeName() string {
	return "vec3" + suffix[T]()
}

// Elements returns the live 3-element window. Writes through the slice are
// writes to the vector.
func (v *Vec3[T]) Elements() []T {
	return v.e()
}

// Set overwrites the vector from args. Numbers contribute one value,
// Values and algebra objects contribute all of theirs, nil arguments are
// skipped. Exactly 3 values must result; otherwise a *CountError is
// returned and the vector is unchanged. With no values at all a float
// vector is left as is and an integer vector is zeroed.
func (v *Vec3[T]) Set(args ...Arg) error {
	return assign(v.e(), v.typeName(), args)
}

// Clone returns an owning copy. Cloning a view copies the viewed elements.
func (v *Vec3[T]) Clone() *Vec3[T] {
	out := newVec3[T]()
	copy(out.e(), v.e())
	return out
}

func (v *Vec3[T]) X() T { return v.e()[0] }
func (v *Vec3[T]) Y() T { return v.e()[1] }
func (v *Vec3[T]) Z() T { return v.e()[2] }

func (v *Vec3[T]) SetX(x T) *Vec3[T] { v.e()[0] = x; return v }
func (v *Vec3[T]) SetY(y T) *Vec3[T] { v.e()[1] = y; return v }
func (v *Vec3[T]) SetZ(z T) *Vec3[T] { v.e()[2] = z; return v }

// --- Sub-views ---

// XY returns a view over components [0, 2). The view is created on first
// access and the same view is returned afterwards.
func (v *Vec3[T]) XY() *Vec2[T] {
	if v.xy == nil {
		v.xy = newVec2View(v.buf, v.off)
	}
	return v.xy
}

// YZ returns a view over components [1, 3).
func (v *Vec3[T]) YZ() *Vec2[T] {
	if v.yz == nil {
		v.yz = newVec2View(v.buf, v.off+1)
	}
	return v.yz
}

// SetXY copies o into components [0, 2).
func (v *Vec3[T]) SetXY(o *Vec2[T]) *Vec3[T] {
	copy(v.e()[0:2], o.e())
	return v
}

// SetYZ copies o into components [1, 3).
func (v *Vec3[T]) SetYZ(o *Vec2[T]) *Vec3[T] {
	copy(v.e()[1:3], o.e())
	return v
}

// --- Arithmetic ---

func (v *Vec3[T]) Add(o *Vec3[T]) *Vec3[T] { out := newVec3[T](); addTo(out.e(), v.e(), o.e()); return out }
func (v *Vec3[T]) Sub(o *Vec3[T]) *Vec3[T] { out := newVec3[T](); subTo(out.e(), v.e(), o.e()); return out }
func (v *Vec3[T]) Mul(o *Vec3[T]) *Vec3[T] { out := newVec3[T](); mulTo(out.e(), v.e(), o.e()); return out }
func (v *Vec3[T]) Div(o *Vec3[T]) *Vec3[T] { out := newVec3[T](); divTo(out.e(), v.e(), o.e()); return out }

func (v *Vec3[T]) AddEq(o *Vec3[T]) *Vec3[T] { addTo(v.e(), v.e(), o.e()); return v }
func (v *Vec3[T]) SubEq(o *Vec3[T]) *Vec3[T] { subTo(v.e(), v.e(), o.e()); return v }
func (v *Vec3[T]) MulEq(o *Vec3[T]) *Vec3[T] { mulTo(v.e(), v.e(), o.e()); return v }
func (v *Vec3[T]) DivEq(o *Vec3[T]) *Vec3[T] { divTo(v.e(), v.e(), o.e()); return v }

func (v *Vec3[T]) AddScalar(s T) *Vec3[T] { out := newVec3[T](); addScalarTo(out.e(), v.e(), s); return out }
func (v *Vec3[T]) SubScalar(s T) *Vec3[T] { out := newVec3[T](); subScalarTo(out.e(), v.e(), s); return out }
func (v *Vec3[T]) MulScalar(s T) *Vec3[T] { out := newVec3[T](); mulScalarTo(out.e(), v.e(), s); return out }
func (v *Vec3[T]) DivScalar(s T) *Vec3[T] { out := newVec3[T](); divScalarTo(out.e(), v.e(), s); return out }

func (v *Vec3[T]) AddScalarEq(s T) *Vec3[T] { addScalarTo(v.e(), v.e(), s); return v }
func (v *Vec3[T]) SubScalarEq(s T) *Vec3[T] { subScalarTo(v.e(), v.e(), s); return v }
func (v *Vec3[T]) MulScalarEq(s T) *Vec3[T] { mulScalarTo(v.e(), v.e(), s); return v }
func (v *Vec3[T]) DivScalarEq(s T) *Vec3[T] { divScalarTo(v.e(), v.e(), s); return v }

// --- Unary ---

func (v *Vec3[T]) Negated() *Vec3[T] { out := newVec3[T](); negTo(out.e(), v.e()); return out }
func (v *Vec3[T]) Negate() *Vec3[T]  { negTo(v.e(), v.e()); return v }

// Inverse returns the component-wise reciprocal.
func (v *Vec3[T]) Inverse() *Vec3[T] { out := newVec3[T](); invTo(out.e(), v.e()); return out }
func (v *Vec3[T]) Invert() *Vec3[T]  { invTo(v.e(), v.e()); return v }

func (v *Vec3[T]) Ceil() *Vec3[T]    { out := newVec3[T](); applyTo(out.e(), v.e(), math.Ceil); return out }
func (v *Vec3[T]) CeilEq() *Vec3[T]  { applyTo(v.e(), v.e(), math.Ceil); return v }
func (v *Vec3[T]) Floor() *Vec3[T]   { out := newVec3[T](); applyTo(out.e(), v.e(), math.Floor); return out }
func (v *Vec3[T]) FloorEq() *Vec3[T] { applyTo(v.e(), v.e(), math.Floor); return v }
func (v *Vec3[T]) Rounded() *Vec3[T] { out := newVec3[T](); applyTo(out.e(), v.e(), math.Round); return out }
func (v *Vec3[T]) Round() *Vec3[T]   { applyTo(v.e(), v.e(), math.Round); return v }

func (v *Vec3[T]) Scaled(s float32) *Vec3[T] { out := newVec3[T](); scaleTo(out.e(), v.e(), s); return out }
func (v *Vec3[T]) Scale(s float32) *Vec3[T]  { scaleTo(v.e(), v.e(), s); return v }

func (v *Vec3[T]) Zeroed() *Vec3[T] { return newVec3[T]() }
func (v *Vec3[T]) Zero() *Vec3[T]   { clear(v.e()); return v }

// Normalized returns the vector scaled to unit length. A zero vector
// yields NaN components.
func (v *Vec3[T]) Normalized() *Vec3[T] {
	out := newVec3[T]()
	normalizeTo(out.e(), v.e(), v.typeName())
	return out
}

func (v *Vec3[T]) Normalize() *Vec3[T] {
	normalizeTo(v.e(), v.e(), v.typeName())
	return v
}

// WithLength returns the vector normalized and scaled to length.
func (v *Vec3[T]) WithLength(length float32) *Vec3[T] {
	out := newVec3[T]()
	setLengthTo(out.e(), v.e(), length, v.typeName())
	return out
}

func (v *Vec3[T]) SetLength(length float32) *Vec3[T] {
	setLengthTo(v.e(), v.e(), length, v.typeName())
	return v
}

// Transformed returns v transformed by m (a *Mat4, *Mat3 or *Quat). A nil
// m returns an unchanged copy.
func (v *Vec3[T]) Transformed(m Vec3Transformer) *Vec3[T] {
	return v.Clone().Transform(m)
}

// Transform replaces v with v transformed by m. Points are row vectors:
// v' = v·M, and a Mat4 divides by the resulting w.
func (v *Vec3[T]) Transform(m Vec3Transformer) *Vec3[T] {
	if m == nil {
		return v
	}
	e := v.e()
	r := m.transformVec3([3]float64{float64(e[0]), float64(e[1]), float64(e[2])})
	store(e, r[:])
	return v
}

// Cross returns v × o.
func (v *Vec3[T]) Cross(o *Vec3[T]) *Vec3[T] {
	var a, b [3]float64
	load(a[:], v.e())
	load(b[:], o.e())
	out := newVec3[T]()
	store(out.e(), []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	})
	return out
}

// --- Queries ---

func (v *Vec3[T]) Dot(o *Vec3[T]) float32             { return float32(dot(v.e(), o.e())) }
func (v *Vec3[T]) SquaredLength() float32             { return float32(sqLen(v.e())) }
func (v *Vec3[T]) Length() float32                    { return float32(math.Sqrt(sqLen(v.e()))) }
func (v *Vec3[T]) Distance(o *Vec3[T]) float32        { return float32(math.Sqrt(sqDist(v.e(), o.e()))) }
func (v *Vec3[T]) SquaredDistance(o *Vec3[T]) float32 { return float32(sqDist(v.e(), o.e())) }

// Equals reports whether every component matches o within a relative
// tolerance of 1e-6.
func (v *Vec3[T]) Equals(o *Vec3[T]) bool { return equals(v.e(), o.e()) }

// ExactEquals reports whether every component equals o's exactly.
func (v *Vec3[T]) ExactEquals(o *Vec3[T]) bool { return exactEquals(v.e(), o.e()) }

// String renders the components with two decimals.
func (v *Vec3[T]) String() string { return v.Text(defaultDigits) }

// Text renders the components with the given number of decimals.
func (v *Vec3[T]) Text(digits int) string { return formatVec(v.e(), digits) }

// --- Static helpers ---

// MinVec3 returns the component-wise minimum of a and b.
func MinVec3[T Element](a, b *Vec3[T]) *Vec3[T] {
	out := newVec3[T]()
	minTo(out.e(), a.e(), b.e())
	return out
}

// MaxVec3 returns the component-wise maximum of a and b.
func MaxVec3[T Element](a, b *Vec3[T]) *Vec3[T] {
	out := newVec3[T]()
	maxTo(out.e(), a.e(), b.e())
	return out
}

// LerpVec3 interpolates linearly from a (t=0) to b (t=1).
func LerpVec3[T Element](a, b *Vec3[T], t float32) *Vec3[T] {
	out := newVec3[T]()
	lerpTo(out.e(), a.e(), b.e(), t)
	return out
}

// RandomVec3 returns a vector pointing in a uniformly random direction
// with length scale.
func RandomVec3[T Element](scale float32) *Vec3[T] {
	r := randFloat() * 2 * math.Pi
	z := randFloat()*2 - 1
	zScale := math.Sqrt(1-z*z) * float64(scale)
	out := newVec3[T]()
	store(out.e(), []float64{math.Cos(r) * zScale, math.Sin(r) * zScale, z * float64(scale)})
	return out
}

// Vec3Angle returns the angle between a and b in the process angle unit.
func Vec3Angle[T Element](a, b *Vec3[T]) float32 {
	return Mode{}.FromRadians(vecAngle(a.e(), b.e()))
}

// RotateX rotates point about the X axis through origin by angle (process
// angle unit).
func RotateX[T Element](point, origin *Vec3[T], angle float32) *Vec3[T] {
	return rotateVec3(point, origin, toRad(angle), 0)
}

// RotateY rotates point about the Y axis through origin.
func RotateY[T Element](point, origin *Vec3[T], angle float32) *Vec3[T] {
	return rotateVec3(point, origin, toRad(angle), 1)
}

// RotateZ rotates point about the Z axis through origin.
func RotateZ[T Element](point, origin *Vec3[T], angle float32) *Vec3[T] {
	return rotateVec3(point, origin, toRad(angle), 2)
}

// rotateVec3 rotates point about the given cardinal axis (0=X, 1=Y, 2=Z)
// through origin by rad radians.
func rotateVec3[T Element](point, origin *Vec3[T], rad float32, axis int) *Vec3[T] {
	var p, o [3]float64
	load(p[:], point.e())
	load(o[:], origin.e())
	for i := range p {
		p[i] -= o[i]
	}
	s, c := math.Sincos(float64(rad))
	var r [3]float64
	switch axis {
	case 0:
		r = [3]float64{p[0], p[1]*c - p[2]*s, p[1]*s + p[2]*c}
	case 1:
		r = [3]float64{p[2]*s + p[0]*c, p[1], p[2]*c - p[0]*s}
	default:
		r = [3]float64{p[0]*c - p[1]*s, p[0]*s + p[1]*c, p[2]}
	}
	for i := range r {
		r[i] += o[i]
	}
	out := newVec3[T]()
	store(out.e(), r[:])
	return out
}

// vecAngle returns the angle between a and b in radians; 90° when either
// is zero-length.
func vecAngle[T Element](a, b []T) float32 {
	mag := math.Sqrt(sqLen(a) * sqLen(b))
	var cosine float64
	if mag != 0 {
		cosine = dot(a, b) / mag
	}
	return float32(math.Acos(clamp(cosine, -1, 1)))
}
