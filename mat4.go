package vmath

// Mat4 is a 4×4 row-major matrix. Points are row vectors (v' = v·M), so
// the translation lives in row W. Rows are Vec4 views into the matrix.
type Mat4[T Element] struct {
	slot[T]
	x, y, z, w *Vec4[T]
}

type (
	Mat4f  = Mat4[float32]
	Mat4i  = Mat4[int32]
	Mat4ui = Mat4[uint32]
)

func newMat4[T Element]() *Mat4[T] {
	return &Mat4[T]{slot: owningSlot[T](16)}
}

// NewMat4 returns an owning matrix initialized from args (16 values in
// row-major order). With no args the matrix is zero.
func NewMat4[T Element](args ...Arg) (*Mat4[T], error) {
	m := newMat4[T]()
	if err := m.Set(args...); err != nil {
		return nil, err
	}
	return m, nil
}

func MustMat4[T Element](args ...Arg) *Mat4[T] {
	return must(NewMat4[T](args...))
}

// NewMat4f returns a zero float matrix.
func NewMat4f() *Mat4f {
	return newMat4[float32]()
}

// IdentityMat4 returns an owning identity matrix.
func IdentityMat4[T Element]() *Mat4[T] {
	return newMat4[T]().Identity()
}

func mat4From[T Element](a [16]float64) *Mat4[T] {
	m := newMat4[T]()
	m.put(a)
	return m
}

func (m *Mat4[T]) e() []T {
	return m.buf.window(m.off, 16)
}

func (m *Mat4[T]) f() (a [16]float64) {
	load(a[:], m.e())
	return a
}

func (m *Mat4[T]) put(a [16]float64) {
	store(m.e(), a[:])
}

func (m *Mat4[T]) viewBase() (*Buffer[T], int, int) {
	return m.buf, m.off, 16
}

func (m *Mat4[T]) appendTo(dst []float64) []float64 {
	if m == nil {
		return dst
	}
	return appendElems(dst, m.e())
}

func (m *Mat4[T]) typeName() string {
	return "mat4" + suffix[T]()
}

func (m *Mat4[T]) Elements() []T {
	return m.e()
}

// Set overwrites the matrix from args; 16 values must result.
func (m *Mat4[T]) Set(args ...Arg) error {
	return assign(m.e(), m.typeName(), args)
}

func (m *Mat4[T]) Clone() *Mat4[T] {
	out := newMat4[T]()
	copy(out.e(), m.e())
	return out
}

// At returns element (r, c).
func (m *Mat4[T]) At(r, c int) T {
	return m.e()[r*4+c]
}

// SetAt writes element (r, c).
func (m *Mat4[T]) SetAt(r, c int, v T) *Mat4[T] {
	m.e()[r*4+c] = v
	return m
}

// --- Row views ---

func (m *Mat4[T]) X() *Vec4[T] {
	if m.x == nil {
		m.x = newVec4View(m.buf, m.off)
	}
	return m.x
}

func (m *Mat4[T]) Y() *Vec4[T] {
	if m.y == nil {
		m.y = newVec4View(m.buf, m.off+4)
	}
	return m.y
}

func (m *Mat4[T]) Z() *Vec4[T] {
	if m.z == nil {
		m.z = newVec4View(m.buf, m.off+8)
	}
	return m.z
}

func (m *Mat4[T]) W() *Vec4[T] {
	if m.w == nil {
		m.w = newVec4View(m.buf, m.off+12)
	}
	return m.w
}

func (m *Mat4[T]) SetRowX(v *Vec4[T]) *Mat4[T] { copy(m.e()[0:4], v.e()); return m }
func (m *Mat4[T]) SetRowY(v *Vec4[T]) *Mat4[T] { copy(m.e()[4:8], v.e()); return m }
func (m *Mat4[T]) SetRowZ(v *Vec4[T]) *Mat4[T] { copy(m.e()[8:12], v.e()); return m }
func (m *Mat4[T]) SetRowW(v *Vec4[T]) *Mat4[T] { copy(m.e()[12:16], v.e()); return m }

// --- Arithmetic ---

func (m *Mat4[T]) Identity() *Mat4[T] {
	var a [16]float64
	identityInto(a[:], 4)
	m.put(a)
	return m
}

func (m *Mat4[T]) Add(o *Mat4[T]) *Mat4[T] { out := newMat4[T](); addTo(out.e(), m.e(), o.e()); return out }
func (m *Mat4[T]) Sub(o *Mat4[T]) *Mat4[T] { out := newMat4[T](); subTo(out.e(), m.e(), o.e()); return out }

func (m *Mat4[T]) AddEq(o *Mat4[T]) *Mat4[T] { addTo(m.e(), m.e(), o.e()); return m }
func (m *Mat4[T]) SubEq(o *Mat4[T]) *Mat4[T] { subTo(m.e(), m.e(), o.e()); return m }

func (m *Mat4[T]) MulScalar(s T) *Mat4[T] {
	out := newMat4[T]()
	mulScalarTo(out.e(), m.e(), s)
	return out
}

func (m *Mat4[T]) MulScalarEq(s T) *Mat4[T] {
	mulScalarTo(m.e(), m.e(), s)
	return m
}

// Mul returns the product m·o. Transforming a point by the result applies
// m first, then o.
func (m *Mat4[T]) Mul(o *Mat4[T]) *Mat4[T] {
	return m.Clone().MulEq(o)
}

// MulEq sets m = m·o.
func (m *Mat4[T]) MulEq(o *Mat4[T]) *Mat4[T] {
	a, b := m.f(), o.f()
	var out [16]float64
	matMul(out[:], a[:], b[:], 4)
	m.put(out)
	return m
}

// premul sets m = e·m.
func (m *Mat4[T]) premul(e [16]float64) *Mat4[T] {
	a := m.f()
	var out [16]float64
	matMul(out[:], e[:], a[:], 4)
	m.put(out)
	return m
}

func (m *Mat4[T]) Transposed() *Mat4[T] { return m.Clone().Transpose() }

func (m *Mat4[T]) Transpose() *Mat4[T] {
	a := m.f()
	var out [16]float64
	matTranspose(out[:], a[:], 4)
	m.put(out)
	return m
}

// Inverse returns m⁻¹, or a zero matrix when m is singular.
func (m *Mat4[T]) Inverse() *Mat4[T] {
	out := newMat4[T]()
	if adj, det := mat4Adjugate(m.f()); det != 0 {
		out.put(scaled16(adj, 1/det))
	} else {
		debugCheckSingular(m.typeName(), det)
	}
	return out
}

// Invert replaces m with its inverse. A singular m is left unchanged.
func (m *Mat4[T]) Invert() *Mat4[T] {
	adj, det := mat4Adjugate(m.f())
	if det == 0 {
		debugCheckSingular(m.typeName(), det)
		return m
	}
	m.put(scaled16(adj, 1/det))
	return m
}

func scaled16(a [16]float64, s float64) [16]float64 {
	for i := range a {
		a[i] *= s
	}
	return a
}

// Adjoint returns the adjugate (classical adjoint) of m.
func (m *Mat4[T]) Adjoint() *Mat4[T] {
	adj, _ := mat4Adjugate(m.f())
	return mat4From[T](adj)
}

func (m *Mat4[T]) Determinant() float32 {
	_, det := mat4Adjugate(m.f())
	return float32(det)
}

// Frob returns the Frobenius norm.
func (m *Mat4[T]) Frob() float32 {
	a := m.f()
	return float32(matFrob(a[:]))
}

// --- Elementary transforms ---
//
// Each mutator pre-multiplies: m.Translate(t) sets m = T·m, so the new
// transform applies to a point before the existing ones.

// Rotate rotates m by angle (process angle unit) about axis. A zero-length
// axis leaves m unchanged.
func (m *Mat4[T]) Rotate(axis *Vec3[T], angle float32) *Mat4[T] {
	a := axis.e()
	r, ok := mat4FromAxisAngle(float64(a[0]), float64(a[1]), float64(a[2]), float64(toRad(angle)))
	if !ok {
		debugCheckZeroAxis("Mat4.Rotate", sqLen(a))
		return m
	}
	return m.premul(r)
}

func (m *Mat4[T]) RotateX(angle float32) *Mat4[T] {
	return m.premul(mat4FromXRotation(float64(toRad(angle))))
}

func (m *Mat4[T]) RotateY(angle float32) *Mat4[T] {
	return m.premul(mat4FromYRotation(float64(toRad(angle))))
}

func (m *Mat4[T]) RotateZ(angle float32) *Mat4[T] {
	return m.premul(mat4FromZRotation(float64(toRad(angle))))
}

func (m *Mat4[T]) Scale(v *Vec3[T]) *Mat4[T] {
	s := v.e()
	return m.premul(mat4FromScaling(float64(s[0]), float64(s[1]), float64(s[2])))
}

func (m *Mat4[T]) Translate(v *Vec3[T]) *Mat4[T] {
	t := v.e()
	return m.premul(mat4FromTranslation(float64(t[0]), float64(t[1]), float64(t[2])))
}

func (m *Mat4[T]) Rotated(axis *Vec3[T], angle float32) *Mat4[T] { return m.Clone().Rotate(axis, angle) }
func (m *Mat4[T]) RotatedX(angle float32) *Mat4[T]               { return m.Clone().RotateX(angle) }
func (m *Mat4[T]) RotatedY(angle float32) *Mat4[T]               { return m.Clone().RotateY(angle) }
func (m *Mat4[T]) RotatedZ(angle float32) *Mat4[T]               { return m.Clone().RotateZ(angle) }
func (m *Mat4[T]) Scaled(v *Vec3[T]) *Mat4[T]                    { return m.Clone().Scale(v) }
func (m *Mat4[T]) Translated(v *Vec3[T]) *Mat4[T]                { return m.Clone().Translate(v) }

// --- Decomposition ---

// Translation returns the translation row.
func (m *Mat4[T]) Translation() *Vec3[T] {
	out := newVec3[T]()
	copy(out.e(), m.e()[12:15])
	return out
}

// ScaleFactors returns the length of each basis row.
func (m *Mat4[T]) ScaleFactors() *Vec3[T] {
	s := mat4Scaling(m.f())
	out := newVec3[T]()
	store(out.e(), s[:])
	return out
}

// Rotation returns the rotation part of m with scaling divided out.
func (m *Mat4[T]) Rotation() *Quat {
	return quatFrom(mat4Rotation(m.f()))
}

// NormalMatrix returns the inverse-transpose of the upper 3×3, which maps
// normals under m. A singular basis yields a zero matrix.
func (m *Mat4[T]) NormalMatrix() *Mat3[T] {
	a := m.f()
	b := [9]float64{a[0], a[1], a[2], a[4], a[5], a[6], a[8], a[9], a[10]}
	out := newMat3[T]()
	adj, det := mat3Adjugate(b)
	if det == 0 {
		debugCheckSingular(m.typeName()+" basis", det)
		return out
	}
	var t [9]float64
	matTranspose(t[:], adj[:], 3)
	for i := range t {
		t[i] /= det
	}
	out.put(t)
	return out
}

// --- Transformer implementations ---

func (m *Mat4[T]) transformVec2(v [2]float64) [2]float64 {
	if m == nil {
		return v
	}
	a := m.f()
	return [2]float64{
		a[0]*v[0] + a[4]*v[1] + a[12],
		a[1]*v[0] + a[5]*v[1] + a[13],
	}
}

func (m *Mat4[T]) transformVec3(v [3]float64) [3]float64 {
	if m == nil {
		return v
	}
	a := m.f()
	w := a[3]*v[0] + a[7]*v[1] + a[11]*v[2] + a[15]
	if w == 0 {
		w = 1
	}
	return [3]float64{
		(a[0]*v[0] + a[4]*v[1] + a[8]*v[2] + a[12]) / w,
		(a[1]*v[0] + a[5]*v[1] + a[9]*v[2] + a[13]) / w,
		(a[2]*v[0] + a[6]*v[1] + a[10]*v[2] + a[14]) / w,
	}
}

func (m *Mat4[T]) transformVec4(v [4]float64) [4]float64 {
	if m == nil {
		return v
	}
	a := m.f()
	var out [4]float64
	for c := 0; c < 4; c++ {
		out[c] = a[c]*v[0] + a[4+c]*v[1] + a[8+c]*v[2] + a[12+c]*v[3]
	}
	return out
}

// --- Comparison and formatting ---

func (m *Mat4[T]) Equals(o *Mat4[T]) bool      { return equals(m.e(), o.e()) }
func (m *Mat4[T]) ExactEquals(o *Mat4[T]) bool { return exactEquals(m.e(), o.e()) }

// String renders one row per line with two decimals.
func (m *Mat4[T]) String() string         { return m.Text(defaultDigits) }
func (m *Mat4[T]) Text(digits int) string { return formatMat(m.e(), 4, digits) }

