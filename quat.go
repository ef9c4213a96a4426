package vmath

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Quat is a rotation quaternion stored as (x, y, z, w). It always owns its
// four float32 elements; no views are ever created over it. The zero-arg
// constructor yields the identity rotation.
type Quat struct {
	slot[float32]
}

func newQuat() *Quat {
	q := &Quat{slot: owningSlot[float32](4)}
	q.e()[3] = 1
	return q
}

// NewQuat returns an identity quaternion overwritten by args, if any.
func NewQuat(args ...Arg) (*Quat, error) {
	q := newQuat()
	if err := q.Set(args...); err != nil {
		return nil, err
	}
	return q, nil
}

func MustQuat(args ...Arg) *Quat {
	return must(NewQuat(args...))
}

// QuatOf returns the quaternion (x, y, z, w).
func QuatOf(x, y, z, w float32) *Quat {
	q := newQuat()
	q.put(x, y, z, w)
	return q
}

func quatFrom(a [4]float64) *Quat {
	q := newQuat()
	store(q.e(), a[:])
	return q
}

func (q *Quat) e() []float32 {
	return q.buf.window(q.off, 4)
}

func (q *Quat) f() (a [4]float64) {
	load(a[:], q.e())
	return a
}

func (q *Quat) put(x, y, z, w float32) *Quat {
	e := q.e()
	e[0], e[1], e[2], e[3] = x, y, z, w
	return q
}

func (q *Quat) xyzw() (x, y, z, w float32) {
	e := q.e()
	return e[0], e[1], e[2], e[3]
}

func (q *Quat) appendTo(dst []float64) []float64 {
	if q == nil {
		return dst
	}
	return appendElems(dst, q.e())
}

func (q *Quat) Elements() []float32 {
	return q.e()
}

// Set overwrites q from args; 4 values must result. With no values q is
// left as is.
func (q *Quat) Set(args ...Arg) error {
	return assign(q.e(), "quat", args)
}

func (q *Quat) SetIdentity() *Quat {
	return q.put(0, 0, 0, 1)
}

func (q *Quat) Clone() *Quat {
	out := newQuat()
	copy(out.e(), q.e())
	return out
}

func (q *Quat) X() float32 { return q.e()[0] }
func (q *Quat) Y() float32 { return q.e()[1] }
func (q *Quat) Z() float32 { return q.e()[2] }
func (q *Quat) W() float32 { return q.e()[3] }

// --- Algebra ---

func (q *Quat) Add(o *Quat) *Quat   { return q.Clone().AddEq(o) }
func (q *Quat) AddEq(o *Quat) *Quat { addTo(q.e(), q.e(), o.e()); return q }

// Mul returns the Hamilton product q·o.
func (q *Quat) Mul(o *Quat) *Quat {
	return q.Clone().MulEq(o)
}

// MulEq sets q = q·o.
func (q *Quat) MulEq(o *Quat) *Quat {
	ax, ay, az, aw := q.xyzw()
	bx, by, bz, bw := o.xyzw()
	return q.put(
		ax*bw+aw*bx+ay*bz-az*by,
		ay*bw+aw*by+az*bx-ax*bz,
		az*bw+aw*bz+ax*by-ay*bx,
		aw*bw-ax*bx-ay*by-az*bz,
	)
}

func (q *Quat) Scaled(s float32) *Quat { return q.Clone().Scale(s) }
func (q *Quat) Scale(s float32) *Quat  { scaleTo(q.e(), q.e(), s); return q }

// RotateX rotates q about the X axis by angle (process angle unit).
func (q *Quat) RotateX(angle float32) *Quat {
	ax, ay, az, aw := q.xyzw()
	bx, bw := math32.Sincos(toRad(angle) * 0.5)
	return q.put(ax*bw+aw*bx, ay*bw+az*bx, az*bw-ay*bx, aw*bw-ax*bx)
}

func (q *Quat) RotateY(angle float32) *Quat {
	ax, ay, az, aw := q.xyzw()
	by, bw := math32.Sincos(toRad(angle) * 0.5)
	return q.put(ax*bw-az*by, ay*bw+aw*by, az*bw+ax*by, aw*bw-ay*by)
}

func (q *Quat) RotateZ(angle float32) *Quat {
	ax, ay, az, aw := q.xyzw()
	bz, bw := math32.Sincos(toRad(angle) * 0.5)
	return q.put(ax*bw+ay*bz, ay*bw-ax*bz, az*bw+aw*bz, aw*bw-az*bz)
}

func (q *Quat) RotatedX(angle float32) *Quat { return q.Clone().RotateX(angle) }
func (q *Quat) RotatedY(angle float32) *Quat { return q.Clone().RotateY(angle) }
func (q *Quat) RotatedZ(angle float32) *Quat { return q.Clone().RotateZ(angle) }

// Exp returns the exponential of q.
func (q *Quat) Exp() *Quat {
	x, y, z, w := q.xyzw()
	r := math32.Sqrt(x*x + y*y + z*z)
	et := math32.Exp(w)
	var s float32
	if r > 0 {
		s = et * math32.Sin(r) / r
	}
	return QuatOf(x*s, y*s, z*s, et*math32.Cos(r))
}

// Ln returns the natural logarithm of q.
func (q *Quat) Ln() *Quat {
	x, y, z, w := q.xyzw()
	r := math32.Sqrt(x*x + y*y + z*z)
	var t float32
	if r > 0 {
		t = math32.Atan2(r, w) / r
	}
	return QuatOf(x*t, y*t, z*t, 0.5*math32.Log(x*x+y*y+z*z+w*w))
}

// Pow returns q raised to the real power b.
func (q *Quat) Pow(b float32) *Quat {
	return q.Ln().Scale(b).Exp()
}

// Inverse returns q⁻¹; a zero quaternion inverts to zero.
func (q *Quat) Inverse() *Quat {
	return q.Clone().Invert()
}

func (q *Quat) Invert() *Quat {
	x, y, z, w := q.xyzw()
	d := x*x + y*y + z*z + w*w
	var inv float32
	if d != 0 {
		inv = 1 / d
	}
	return q.put(-x*inv, -y*inv, -z*inv, w*inv)
}

// Conjugate returns (-x, -y, -z, w).
func (q *Quat) Conjugate() *Quat {
	x, y, z, w := q.xyzw()
	return QuatOf(-x, -y, -z, w)
}

func (q *Quat) Normalized() *Quat { return q.Clone().Normalize() }

// Normalize scales q to unit length. A zero quaternion stays zero.
func (q *Quat) Normalize() *Quat {
	l := q.Length()
	if l > 0 {
		l = 1 / l
	}
	return q.Scale(l)
}

func (q *Quat) Dot(o *Quat) float32 { return float32(dot(q.e(), o.e())) }

func (q *Quat) SquaredLength() float32 { return float32(sqLen(q.e())) }

func (q *Quat) Length() float32 { return math32.Sqrt(q.SquaredLength()) }

// CalculateW returns the w that would give a unit quaternion with q's x,
// y and z. q is not modified.
func (q *Quat) CalculateW() float32 {
	x, y, z, _ := q.xyzw()
	return math32.Sqrt(math32.Abs(1 - x*x - y*y - z*z))
}

// --- Axis and angle ---

// SetAxisAngle makes q the rotation by angle (process angle unit) about
// axis. The axis is normalized first.
func (q *Quat) SetAxisAngle(axis *Vec3f, angle float32) *Quat {
	return q.setAxisAngle(axis, toRad(angle))
}

func (q *Quat) setAxisAngle(axis *Vec3f, rad float32) *Quat {
	ax, ay, az := axis.X(), axis.Y(), axis.Z()
	if l := math32.Sqrt(ax*ax + ay*ay + az*az); l > 0 {
		ax, ay, az = ax/l, ay/l, az/l
	} else {
		debugCheckZeroAxis("Quat.SetAxisAngle", 0)
	}
	s, c := math32.Sincos(rad * 0.5)
	return q.put(ax*s, ay*s, az*s, c)
}

// AxisAngle returns the rotation axis and the angle in the process angle
// unit. The identity reports axis (1, 0, 0).
func (q *Quat) AxisAngle() (*Vec3f, float32) {
	x, y, z, w := q.xyzw()
	rad := math32.Acos(clamp(w, -1, 1)) * 2
	s := math32.Sin(rad / 2)
	if s > epsilon {
		return NewVec3f(x/s, y/s, z/s), fromRad(rad)
	}
	return NewVec3f(1, 0, 0), fromRad(rad)
}

// SetAxes makes q the rotation whose basis is given by the view, right and
// up directions.
func (q *Quat) SetAxes(view, right, up *Vec3f) *Quat {
	v, r, u := view.e(), right.e(), up.e()
	b := [9]float64{
		float64(r[0]), float64(u[0]), -float64(v[0]),
		float64(r[1]), float64(u[1]), -float64(v[1]),
		float64(r[2]), float64(u[2]), -float64(v[2]),
	}
	res := quatFromBasis(b)
	store(q.e(), res[:])
	return q.Normalize()
}

// --- Transformer implementations ---

func (q *Quat) rotate(v [3]float64) [3]float64 {
	a := q.f()
	qx, qy, qz, qw := a[0], a[1], a[2], a[3]
	uv := cross3([3]float64{qx, qy, qz}, v)
	uuv := cross3([3]float64{qx, qy, qz}, uv)
	w2 := qw * 2
	return [3]float64{
		v[0] + uv[0]*w2 + uuv[0]*2,
		v[1] + uv[1]*w2 + uuv[1]*2,
		v[2] + uv[2]*w2 + uuv[2]*2,
	}
}

func (q *Quat) transformVec3(v [3]float64) [3]float64 {
	if q == nil {
		return v
	}
	return q.rotate(v)
}

func (q *Quat) transformVec4(v [4]float64) [4]float64 {
	if q == nil {
		return v
	}
	r := q.rotate([3]float64{v[0], v[1], v[2]})
	return [4]float64{r[0], r[1], r[2], v[3]}
}

// --- Comparison and formatting ---

// Equals reports whether q and o describe the same rotation within 1e-6.
// q and -q are equal.
func (q *Quat) Equals(o *Quat) bool {
	return math32.Abs(q.Dot(o)) >= 1-epsilon
}

func (q *Quat) ExactEquals(o *Quat) bool {
	return exactEquals(q.e(), o.e())
}

// String renders q as its axis and angle with two decimals.
func (q *Quat) String() string {
	return q.Text(defaultDigits)
}

func (q *Quat) Text(digits int) string {
	axis, angle := q.AxisAngle()
	return fmt.Sprintf("axis: %s angle: %.*f", axis.Text(digits), digits, angle)
}

// --- Static constructors ---

// LerpQuat interpolates component-wise; the result is not normalized.
func LerpQuat(a, b *Quat, t float32) *Quat {
	out := newQuat()
	lerpTo(out.e(), a.e(), b.e(), t)
	return out
}

// Slerp interpolates along the shortest great arc from a (t=0) to b (t=1).
func Slerp(a, b *Quat, t float32) *Quat {
	ax, ay, az, aw := a.xyzw()
	bx, by, bz, bw := b.xyzw()

	cosom := ax*bx + ay*by + az*bz + aw*bw
	if cosom < 0 {
		cosom = -cosom
		bx, by, bz, bw = -bx, -by, -bz, -bw
	}

	var s0, s1 float32
	if 1-cosom > epsilon {
		omega := math32.Acos(cosom)
		sinom := math32.Sin(omega)
		s0 = math32.Sin((1-t)*omega) / sinom
		s1 = math32.Sin(t*omega) / sinom
	} else {
		s0, s1 = 1-t, t
	}
	return QuatOf(s0*ax+s1*bx, s0*ay+s1*by, s0*az+s1*bz, s0*aw+s1*bw)
}

// Sqlerp performs spherical quadrangle interpolation through a and d with
// control points b and c.
func Sqlerp(a, b, c, d *Quat, t float32) *Quat {
	return Slerp(Slerp(a, d, t), Slerp(b, c, t), 2*t*(1-t))
}

// RotationTo returns the shortest-arc rotation taking unit vector a to unit
// vector b.
func RotationTo(a, b *Vec3f) *Quat {
	d := a.Dot(b)
	switch {
	case d < -0.999999:
		axis := NewVec3f(1, 0, 0).Cross(a)
		if axis.Length() < epsilon {
			axis = NewVec3f(0, 1, 0).Cross(a)
		}
		axis.Normalize()
		s, c := math32.Sincos(math32.Pi / 2)
		return QuatOf(axis.X()*s, axis.Y()*s, axis.Z()*s, c)
	case d > 0.999999:
		return newQuat()
	}
	axis := a.Cross(b)
	return QuatOf(axis.X(), axis.Y(), axis.Z(), 1+d).Normalize()
}

// QuatFromEuler builds a rotation from angles about X, Y and Z (process
// angle unit), applied in Z, Y, X order.
func QuatFromEuler(x, y, z float32) *Quat {
	return Mode{}.QuatFromEuler(x, y, z)
}

// QuatFromEuler is the package-level QuatFromEuler with this mode's unit.
func (m Mode) QuatFromEuler(x, y, z float32) *Quat {
	sx, cx := math32.Sincos(m.ToRadians(x) * 0.5)
	sy, cy := math32.Sincos(m.ToRadians(y) * 0.5)
	sz, cz := math32.Sincos(m.ToRadians(z) * 0.5)
	return QuatOf(
		sx*cy*cz-cx*sy*sz,
		cx*sy*cz+sx*cy*sz,
		cx*cy*sz-sx*sy*cz,
		cx*cy*cz+sx*sy*sz,
	)
}

// QuatFromMat3 extracts the rotation of a pure-rotation 3×3 matrix.
func QuatFromMat3[T Element](m *Mat3[T]) *Quat {
	return quatFrom(quatFromBasis(m.f()))
}

// QuatFromAxisAngle returns the rotation by angle (process angle unit)
// about axis.
func QuatFromAxisAngle(axis *Vec3f, angle float32) *Quat {
	return newQuat().SetAxisAngle(axis, angle)
}

// FromAxisAngle is QuatFromAxisAngle with this mode's unit.
func (m Mode) FromAxisAngle(axis *Vec3f, angle float32) *Quat {
	return newQuat().setAxisAngle(axis, m.ToRadians(angle))
}

// QuatAngle returns the angle between the rotations a and b in the process
// angle unit.
func QuatAngle(a, b *Quat) float32 {
	d := a.Dot(b)
	return fromRad(math32.Acos(clamp(2*d*d-1, -1, 1)))
}

// RandomQuat returns a uniformly distributed unit quaternion.
func RandomQuat() *Quat {
	u1 := float32(randFloat())
	u2 := float32(randFloat())
	u3 := float32(randFloat())
	a := math32.Sqrt(1 - u1)
	b := math32.Sqrt(u1)
	return QuatOf(
		a*math32.Sin(2*math32.Pi*u2),
		a*math32.Cos(2*math32.Pi*u2),
		b*math32.Sin(2*math32.Pi*u3),
		b*math32.Cos(2*math32.Pi*u3),
	)
}
