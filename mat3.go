package vmath

// Mat3 is a 3×3 row-major matrix, used both as a general 3×3 and as a 2-D
// affine transform whose translation lives in row Z. Rows are Vec3 views.
type Mat3[T Element] struct {
	slot[T]
	x, y, z *Vec3[T]
}

type (
	Mat3f  = Mat3[float32]
	Mat3i  = Mat3[int32]
	Mat3ui = Mat3[uint32]
)

func newMat3[T Element]() *Mat3[T] {
	return &Mat3[T]{slot: owningSlot[T](9)}
}

// NewMat3 returns an owning matrix initialized from args (9 values in
// row-major order). With no args the matrix is zero.
func NewMat3[T Element](args ...Arg) (*Mat3[T], error) {
	m := newMat3[T]()
	if err := m.Set(args...); err != nil {
		return nil, err
	}
	return m, nil
}

func MustMat3[T Element](args ...Arg) *Mat3[T] {
	return must(NewMat3[T](args...))
}

func NewMat3f() *Mat3f {
	return newMat3[float32]()
}

func IdentityMat3[T Element]() *Mat3[T] {
	return newMat3[T]().Identity()
}

func mat3From[T Element](a [9]float64) *Mat3[T] {
	m := newMat3[T]()
	m.put(a)
	return m
}

func (m *Mat3[T]) e() []T {
	return m.buf.window(m.off, 9)
}

func (m *Mat3[T]) f() (a [9]float64) {
	load(a[:], m.e())
	return a
}

func (m *Mat3[T]) put(a [9]float64) {
	store(m.e(), a[:])
}

func (m *Mat3[T]) viewBase() (*Buffer[T], int, int) {
	return m.buf, m.off, 9
}

func (m *Mat3[T]) appendTo(dst []float64) []float64 {
	if m == nil {
		return dst
	}
	return appendElems(dst, m.e())
}

func (m *Mat3[T]) typeName() string {
	return "mat3" + suffix[T]()
}

func (m *Mat3[T]) Elements() []T {
	return m.e()
}

func (m *Mat3[T]) Set(args ...Arg) error {
	return assign(m.e(), m.typeName(), args)
}

func (m *Mat3[T]) Clone() *Mat3[T] {
	out := newMat3[T]()
	copy(out.e(), m.e())
	return out
}

func (m *Mat3[T]) At(r, c int) T {
	return m.e()[r*3+c]
}

func (m *Mat3[T]) SetAt(r, c int, v T) *Mat3[T] {
	m.e()[r*3+c] = v
	return m
}

func (m *Mat3[T]) X() *Vec3[T] {
	if m.x == nil {
		m.x = newVec3View(m.buf, m.off)
	}
	return m.x
}

func (m *Mat3[T]) Y() *Vec3[T] {
	if m.y == nil {
		m.y = newVec3View(m.buf, m.off+3)
	}
	return m.y
}

func (m *Mat3[T]) Z() *Vec3[T] {
	if m.z == nil {
		m.z = newVec3View(m.buf, m.off+6)
	}
	return m.z
}

func (m *Mat3[T]) SetRowX(v *Vec3[T]) *Mat3[T] { copy(m.e()[0:3], v.e()); return m }
func (m *Mat3[T]) SetRowY(v *Vec3[T]) *Mat3[T] { copy(m.e()[3:6], v.e()); return m }
func (m *Mat3[T]) SetRowZ(v *Vec3[T]) *Mat3[T] { copy(m.e()[6:9], v.e()); return m }

func (m *Mat3[T]) Identity() *Mat3[T] {
	var a [9]float64
	identityInto(a[:], 3)
	m.put(a)
	return m
}

func (m *Mat3[T]) Add(o *Mat3[T]) *Mat3[T]   { out := newMat3[T](); addTo(out.e(), m.e(), o.e()); return out }
func (m *Mat3[T]) Sub(o *Mat3[T]) *Mat3[T]   { out := newMat3[T](); subTo(out.e(), m.e(), o.e()); return out }
func (m *Mat3[T]) AddEq(o *Mat3[T]) *Mat3[T] { addTo(m.e(), m.e(), o.e()); return m }
func (m *Mat3[T]) SubEq(o *Mat3[T]) *Mat3[T] { subTo(m.e(), m.e(), o.e()); return m }

func (m *Mat3[T]) MulScalar(s T) *Mat3[T]   { out := newMat3[T](); mulScalarTo(out.e(), m.e(), s); return out }
func (m *Mat3[T]) MulScalarEq(s T) *Mat3[T] { mulScalarTo(m.e(), m.e(), s); return m }

// Mul returns m·o.
func (m *Mat3[T]) Mul(o *Mat3[T]) *Mat3[T] {
	return m.Clone().MulEq(o)
}

// MulEq sets m = m·o.
func (m *Mat3[T]) MulEq(o *Mat3[T]) *Mat3[T] {
	a, b := m.f(), o.f()
	var out [9]float64
	matMul(out[:], a[:], b[:], 3)
	m.put(out)
	return m
}

func (m *Mat3[T]) premul(e [9]float64) *Mat3[T] {
	a := m.f()
	var out [9]float64
	matMul(out[:], e[:], a[:], 3)
	m.put(out)
	return m
}

func (m *Mat3[T]) Transposed() *Mat3[T] { return m.Clone().Transpose() }

func (m *Mat3[T]) Transpose() *Mat3[T] {
	a := m.f()
	var out [9]float64
	matTranspose(out[:], a[:], 3)
	m.put(out)
	return m
}

// Inverse returns m⁻¹, or a zero matrix when m is singular.
func (m *Mat3[T]) Inverse() *Mat3[T] {
	out := newMat3[T]()
	adj, det := mat3Adjugate(m.f())
	if det == 0 {
		debugCheckSingular(m.typeName(), det)
		return out
	}
	for i := range adj {
		adj[i] /= det
	}
	out.put(adj)
	return out
}

// Invert replaces m with its inverse; a singular m is left unchanged.
func (m *Mat3[T]) Invert() *Mat3[T] {
	adj, det := mat3Adjugate(m.f())
	if det == 0 {
		debugCheckSingular(m.typeName(), det)
		return m
	}
	for i := range adj {
		adj[i] /= det
	}
	m.put(adj)
	return m
}

func (m *Mat3[T]) Adjoint() *Mat3[T] {
	adj, _ := mat3Adjugate(m.f())
	return mat3From[T](adj)
}

func (m *Mat3[T]) Determinant() float32 {
	_, det := mat3Adjugate(m.f())
	return float32(det)
}

func (m *Mat3[T]) Frob() float32 {
	a := m.f()
	return float32(matFrob(a[:]))
}

// Rotate pre-multiplies a 2-D rotation by angle (process angle unit).
func (m *Mat3[T]) Rotate(angle float32) *Mat3[T] {
	return m.premul(mat3FromRotation(float64(toRad(angle))))
}

// Scale pre-multiplies a 2-D scaling.
func (m *Mat3[T]) Scale(v *Vec2[T]) *Mat3[T] {
	s := v.e()
	return m.premul(mat3FromScaling(float64(s[0]), float64(s[1])))
}

// Translate pre-multiplies a 2-D translation.
func (m *Mat3[T]) Translate(v *Vec2[T]) *Mat3[T] {
	t := v.e()
	return m.premul(mat3FromTranslation(float64(t[0]), float64(t[1])))
}

func (m *Mat3[T]) Rotated(angle float32) *Mat3[T]   { return m.Clone().Rotate(angle) }
func (m *Mat3[T]) Scaled(v *Vec2[T]) *Mat3[T]     { return m.Clone().Scale(v) }
func (m *Mat3[T]) Translated(v *Vec2[T]) *Mat3[T] { return m.Clone().Translate(v) }

func (m *Mat3[T]) transformVec2(v [2]float64) [2]float64 {
	if m == nil {
		return v
	}
	a := m.f()
	return [2]float64{
		a[0]*v[0] + a[3]*v[1] + a[6],
		a[1]*v[0] + a[4]*v[1] + a[7],
	}
}

func (m *Mat3[T]) transformVec3(v [3]float64) [3]float64 {
	if m == nil {
		return v
	}
	a := m.f()
	return [3]float64{
		v[0]*a[0] + v[1]*a[3] + v[2]*a[6],
		v[0]*a[1] + v[1]*a[4] + v[2]*a[7],
		v[0]*a[2] + v[1]*a[5] + v[2]*a[8],
	}
}

func (m *Mat3[T]) Equals(o *Mat3[T]) bool      { return equals(m.e(), o.e()) }
func (m *Mat3[T]) ExactEquals(o *Mat3[T]) bool { return exactEquals(m.e(), o.e()) }

func (m *Mat3[T]) String() string         { return m.Text(defaultDigits) }
func (m *Mat3[T]) Text(digits int) string { return formatMat(m.e(), 3, digits) }

// Mat3FromQuat returns the rotation matrix of q.
func Mat3FromQuat(q *Quat) *Mat3f {
	return mat3From[float32](quatBasis(q.f()))
}
