package vmath

import "math"

// Vec4 is a 4-component vector, owning or a view. Its sub-views share its
// storage: writing through v.XYZ() writes v, and the reverse.
type Vec4[T Element] struct {
	slot[T]
	xyz, yzw   *Vec3[T]
	xy, yz, zw *Vec2[T]
}

type (
	Vec4f  = Vec4[float32]
	Vec4i  = Vec4[int32]
	Vec4ui = Vec4[uint32]
)

// Vec4Transformer is implemented by *Mat4 and *Quat.
type Vec4Transformer interface {
	transformVec4(v [4]float64) [4]float64
}

func newVec4[T Element]() *Vec4[T] {
	return &Vec4[T]{slot: owningSlot[T](4)}
}

func newVec4View[T Element](buf *Buffer[T], off int) *Vec4[T] {
	return &Vec4[T]{slot: viewSlot(buf, off)}
}

func NewVec4[T Element](args ...Arg) (*Vec4[T], error) {
	v := newVec4[T]()
	if err := v.Set(args...); err != nil {
		return nil, err
	}
	return v, nil
}

func MustVec4[T Element](args ...Arg) *Vec4[T] {
	return must(NewVec4[T](args...))
}

func Vec4Of[T Element](x, y, z, w T) *Vec4[T] {
	v := newVec4[T]()
	e := v.e()
	e[0], e[1], e[2], e[3] = x, y, z, w
	return v
}

func NewVec4f(x, y, z, w float32) *Vec4f {
	return Vec4Of(x, y, z, w)
}

func (v *Vec4[T]) e() []T {
	return v.buf.window(v.off, 4)
}

func (v *Vec4[T]) viewBase() (*Buffer[T], int, int) {
	return v.buf, v.off, 4
}

func (v *Vec4[T]) appendTo(dst []float64) []float64 {
	if v == nil {
		return dst
	}
	return appendElems(dst, v.e())
}

func (v *Vec4[T]) typeName() string {
	return "vec4" + suffix[T]()
}

func (v *Vec4[T]) Elements() []T {
	return v.e()
}

// Set overwrites the vector from args; see Vec3.Set.
func (v *Vec4[T]) Set(args ...Arg) error {
	return assign(v.e(), v.typeName(), args)
}

func (v *Vec4[T]) Clone() *Vec4[T] {
	out := newVec4[T]()
	copy(out.e(), v.e())
	return out
}

func (v *Vec4[T]) X() T { return v.e()[0] }
func (v *Vec4[T]) Y() T { return v.e()[1] }
func (v *Vec4[T]) Z() T { return v.e()[2] }
func (v *Vec4[T]) W() T { return v.e()[3] }

func (v *Vec4[T]) SetX(x T) *Vec4[T] { v.e()[0] = x; return v }
func (v *Vec4[T]) SetY(y T) *Vec4[T] { v.e()[1] = y; return v }
func (v *Vec4[T]) SetZ(z T) *Vec4[T] { v.e()[2] = z; return v }
func (v *Vec4[T]) SetW(w T) *Vec4[T] { v.e()[3] = w; return v }

// --- Sub-views (memoized) ---

func (v *Vec4[T]) XYZ() *Vec3[T] {
	if v.xyz == nil {
		v.xyz = newVec3View(v.buf, v.off)
	}
	return v.xyz
}

func (v *Vec4[T]) YZW() *Vec3[T] {
	if v.yzw == nil {
		v.yzw = newVec3View(v.buf, v.off+1)
	}
	return v.yzw
}

func (v *Vec4[T]) XY() *Vec2[T] {
	if v.xy == nil {
		v.xy = newVec2View(v.buf, v.off)
	}
	return v.xy
}

func (v *Vec4[T]) YZ() *Vec2[T] {
	if v.yz == nil {
		v.yz = newVec2View(v.buf, v.off+1)
	}
	return v.yz
}

func (v *Vec4[T]) ZW() *Vec2[T] {
	if v.zw == nil {
		v.zw = newVec2View(v.buf, v.off+2)
	}
	return v.zw
}

func (v *Vec4[T]) SetXYZ(o *Vec3[T]) *Vec4[T] { copy(v.e()[0:3], o.e()); return v }
func (v *Vec4[T]) SetYZW(o *Vec3[T]) *Vec4[T] { copy(v.e()[1:4], o.e()); return v }
func (v *Vec4[T]) SetXY(o *Vec2[T]) *Vec4[T]  { copy(v.e()[0:2], o.e()); return v }
func (v *Vec4[T]) SetYZ(o *Vec2[T]) *Vec4[T]  { copy(v.e()[1:3], o.e()); return v }
func (v *Vec4[T]) SetZW(o *Vec2[T]) *Vec4[T]  { copy(v.e()[2:4], o.e()); return v }

// --- Arithmetic ---

func (v *Vec4[T]) Add(o *Vec4[T]) *Vec4[T] { out := newVec4[T](); addTo(out.e(), v.e(), o.e()); return out }
func (v *Vec4[T]) Sub(o *Vec4[T]) *Vec4[T] { out := newVec4[T](); subTo(out.e(), v.e(), o.e()); return out }
func (v *Vec4[T]) Mul(o *Vec4[T]) *Vec4[T] { out := newVec4[T](); mulTo(out.e(), v.e(), o.e()); return out }
func (v *Vec4[T]) Div(o *Vec4[T]) *Vec4[T] { out := newVec4[T](); divTo(out.e(), v.e(), o.e()); return out }

func (v *Vec4[T]) AddEq(o *Vec4[T]) *Vec4[T] { addTo(v.e(), v.e(), o.e()); return v }
func (v *Vec4[T]) SubEq(o *Vec4[T]) *Vec4[T] { subTo(v.e(), v.e(), o.e()); return v }
func (v *Vec4[T]) MulEq(o *Vec4[T]) *Vec4[T] { mulTo(v.e(), v.e(), o.e()); return v }
func (v *Vec4[T]) DivEq(o *Vec4[T]) *Vec4[T] { divTo(v.e(), v.e(), o.e()); return v }

func (v *Vec4[T]) AddScalar(s T) *Vec4[T] { out := newVec4[T](); addScalarTo(out.e(), v.e(), s); return out }
func (v *Vec4[T]) SubScalar(s T) *Vec4[T] { out := newVec4[T](); subScalarTo(out.e(), v.e(), s); return out }
func (v *Vec4[T]) MulScalar(s T) *Vec4[T] { out := newVec4[T](); mulScalarTo(out.e(), v.e(), s); return out }
func (v *Vec4[T]) DivScalar(s T) *Vec4[T] { out := newVec4[T](); divScalarTo(out.e(), v.e(), s); return out }

func (v *Vec4[T]) AddScalarEq(s T) *Vec4[T] { addScalarTo(v.e(), v.e(), s); return v }
func (v *Vec4[T]) SubScalarEq(s T) *Vec4[T] { subScalarTo(v.e(), v.e(), s); return v }
func (v *Vec4[T]) MulScalarEq(s T) *Vec4[T] { mulScalarTo(v.e(), v.e(), s); return v }
func (v *Vec4[T]) DivScalarEq(s T) *Vec4[T] { divScalarTo(v.e(), v.e(), s); return v }

// --- Unary ---

func (v *Vec4[T]) Negated() *Vec4[T] { out := newVec4[T](); negTo(out.e(), v.e()); return out }
func (v *Vec4[T]) Negate() *Vec4[T]  { negTo(v.e(), v.e()); return v }
func (v *Vec4[T]) Inverse() *Vec4[T] { out := newVec4[T](); invTo(out.e(), v.e()); return out }
func (v *Vec4[T]) Invert() *Vec4[T]  { invTo(v.e(), v.e()); return v }

func (v *Vec4[T]) Ceil() *Vec4[T]    { out := newVec4[T](); applyTo(out.e(), v.e(), math.Ceil); return out }
func (v *Vec4[T]) CeilEq() *Vec4[T]  { applyTo(v.e(), v.e(), math.Ceil); return v }
func (v *Vec4[T]) Floor() *Vec4[T]   { out := newVec4[T](); applyTo(out.e(), v.e(), math.Floor); return out }
func (v *Vec4[T]) FloorEq() *Vec4[T] { applyTo(v.e(), v.e(), math.Floor); return v }
func (v *Vec4[T]) Rounded() *Vec4[T] { out := newVec4[T](); applyTo(out.e(), v.e(), math.Round); return out }
func (v *Vec4[T]) Round() *Vec4[T]   { applyTo(v.e(), v.e(), math.Round); return v }

func (v *Vec4[T]) Scaled(s float32) *Vec4[T] { out := newVec4[T](); scaleTo(out.e(), v.e(), s); return out }
func (v *Vec4[T]) Scale(s float32) *Vec4[T]  { scaleTo(v.e(), v.e(), s); return v }

func (v *Vec4[T]) Zeroed() *Vec4[T] { return newVec4[T]() }
func (v *Vec4[T]) Zero() *Vec4[T]   { clear(v.e()); return v }

func (v *Vec4[T]) Normalized() *Vec4[T] {
	out := newVec4[T]()
	normalizeTo(out.e(), v.e(), v.typeName())
	return out
}

func (v *Vec4[T]) Normalize() *Vec4[T] {
	normalizeTo(v.e(), v.e(), v.typeName())
	return v
}

func (v *Vec4[T]) WithLength(length float32) *Vec4[T] {
	out := newVec4[T]()
	setLengthTo(out.e(), v.e(), length, v.typeName())
	return out
}

func (v *Vec4[T]) SetLength(length float32) *Vec4[T] {
	setLengthTo(v.e(), v.e(), length, v.typeName())
	return v
}

func (v *Vec4[T]) Transformed(m Vec4Transformer) *Vec4[T] {
	return v.Clone().Transform(m)
}

// Transform replaces v with v·M for a *Mat4, or rotates the xyz part by a
// *Quat leaving w as is.
func (v *Vec4[T]) Transform(m Vec4Transformer) *Vec4[T] {
	if m == nil {
		return v
	}
	var in [4]float64
	e := v.e()
	load(in[:], e)
	r := m.transformVec4(in)
	store(e, r[:])
	return v
}

// --- Queries ---

func (v *Vec4[T]) Dot(o *Vec4[T]) float32             { return float32(dot(v.e(), o.e())) }
func (v *Vec4[T]) SquaredLength() float32             { return float32(sqLen(v.e())) }
func (v *Vec4[T]) Length() float32                    { return float32(math.Sqrt(sqLen(v.e()))) }
func (v *Vec4[T]) Distance(o *Vec4[T]) float32        { return float32(math.Sqrt(sqDist(v.e(), o.e()))) }
func (v *Vec4[T]) SquaredDistance(o *Vec4[T]) float32 { return float32(sqDist(v.e(), o.e())) }
func (v *Vec4[T]) Equals(o *Vec4[T]) bool             { return equals(v.e(), o.e()) }
func (v *Vec4[T]) ExactEquals(o *Vec4[T]) bool        { return exactEquals(v.e(), o.e()) }

func (v *Vec4[T]) String() string         { return v.Text(defaultDigits) }
func (v *Vec4[T]) Text(digits int) string { return formatVec(v.e(), digits) }

// --- Static helpers ---

func MinVec4[T Element](a, b *Vec4[T]) *Vec4[T] {
	out := newVec4[T]()
	minTo(out.e(), a.e(), b.e())
	return out
}

func MaxVec4[T Element](a, b *Vec4[T]) *Vec4[T] {
	out := newVec4[T]()
	maxTo(out.e(), a.e(), b.e())
	return out
}

func LerpVec4[T Element](a, b *Vec4[T], t float32) *Vec4[T] {
	out := newVec4[T]()
	lerpTo(out.e(), a.e(), b.e(), t)
	return out
}

// RandomVec4 returns a vector of length scale uniformly distributed on the
// 4-sphere (Marsaglia's method).
func RandomVec4[T Element](scale float32) *Vec4[T] {
	var v1, v2, v3, v4, s1, s2 float64
	for {
		v1 = randFloat()*2 - 1
		v2 = randFloat()*2 - 1
		s1 = v1*v1 + v2*v2
		if s1 < 1 {
			break
		}
	}
	for {
		v3 = randFloat()*2 - 1
		v4 = randFloat()*2 - 1
		s2 = v3*v3 + v4*v4
		if s2 < 1 && s2 > 0 {
			break
		}
	}
	d := math.Sqrt((1 - s1) / s2)
	sc := float64(scale)
	out := newVec4[T]()
	store(out.e(), []float64{sc * v1, sc * v2, sc * v3 * d, sc * v4 * d})
	return out
}

// Cross4 returns the vector orthogonal to u, v and w (the 4-D generalized
// cross product).
func Cross4[T Element](u, v, w *Vec4[T]) *Vec4[T] {
	var a, b, c [4]float64
	load(a[:], u.e())
	load(b[:], v.e())
	load(c[:], w.e())

	A := b[0]*c[1] - b[1]*c[0]
	B := b[0]*c[2] - b[2]*c[0]
	C := b[0]*c[3] - b[3]*c[0]
	D := b[1]*c[2] - b[2]*c[1]
	E := b[1]*c[3] - b[3]*c[1]
	F := b[2]*c[3] - b[3]*c[2]

	out := newVec4[T]()
	store(out.e(), []float64{
		a[1]*F - a[2]*E + a[3]*D,
		-(a[0] * F) + a[2]*C - a[3]*B,
		a[0]*E - a[1]*C + a[3]*A,
		-(a[0] * D) + a[1]*B - a[2]*A,
	})
	return out
}
