package vmath

// Mat2 is a 2×2 row-major matrix. Rows are Vec2 views.
type Mat2[T Element] struct {
	slot[T]
	x, y *Vec2[T]
}

type (
	Mat2f  = Mat2[float32]
	Mat2i  = Mat2[int32]
	Mat2ui = Mat2[uint32]
)

func newMat2[T Element]() *Mat2[T] {
	return &Mat2[T]{slot: owningSlot[T](4)}
}

func NewMat2[T Element](args ...Arg) (*Mat2[T], error) {
	m := newMat2[T]()
	if err := m.Set(args...); err != nil {
		return nil, err
	}
	return m, nil
}

func MustMat2[T Element](args ...Arg) *Mat2[T] {
	return must(NewMat2[T](args...))
}

func NewMat2f() *Mat2f {
	return newMat2[float32]()
}

func IdentityMat2[T Element]() *Mat2[T] {
	return newMat2[T]().Identity()
}

func (m *Mat2[T]) e() []T {
	return m.buf.window(m.off, 4)
}

func (m *Mat2[T]) f() (a [4]float64) {
	load(a[:], m.e())
	return a
}

func (m *Mat2[T]) put(a [4]float64) {
	store(m.e(), a[:])
}

func (m *Mat2[T]) viewBase() (*Buffer[T], int, int) {
	return m.buf, m.off, 4
}

func (m *Mat2[T]) appendTo(dst []float64) []float64 {
	if m == nil {
		return dst
	}
	return appendElems(dst, m.e())
}

func (m *Mat2[T]) typeName() string {
	return "mat2" + suffix[T]()
}

func (m *Mat2[T]) Elements() []T {
	return m.e()
}

func (m *Mat2[T]) Set(args ...Arg) error {
	return assign(m.e(), m.typeName(), args)
}

func (m *Mat2[T]) Clone() *Mat2[T] {
	out := newMat2[T]()
	copy(out.e(), m.e())
	return out
}

func (m *Mat2[T]) At(r, c int) T {
	return m.e()[r*2+c]
}

func (m *Mat2[T]) SetAt(r, c int, v T) *Mat2[T] {
	m.e()[r*2+c] = v
	return m
}

func (m *Mat2[T]) X() *Vec2[T] {
	if m.x == nil {
		m.x = newVec2View(m.buf, m.off)
	}
	return m.x
}

func (m *Mat2[T]) Y() *Vec2[T] {
	if m.y == nil {
		m.y = newVec2View(m.buf, m.off+2)
	}
	return m.y
}

func (m *Mat2[T]) SetRowX(v *Vec2[T]) *Mat2[T] { copy(m.e()[0:2], v.e()); return m }
func (m *Mat2[T]) SetRowY(v *Vec2[T]) *Mat2[T] { copy(m.e()[2:4], v.e()); return m }

func (m *Mat2[T]) Identity() *Mat2[T] {
	e := m.e()
	e[0], e[1], e[2], e[3] = 1, 0, 0, 1
	return m
}

func (m *Mat2[T]) Add(o *Mat2[T]) *Mat2[T]   { out := newMat2[T](); addTo(out.e(), m.e(), o.e()); return out }
func (m *Mat2[T]) Sub(o *Mat2[T]) *Mat2[T]   { out := newMat2[T](); subTo(out.e(), m.e(), o.e()); return out }
func (m *Mat2[T]) AddEq(o *Mat2[T]) *Mat2[T] { addTo(m.e(), m.e(), o.e()); return m }
func (m *Mat2[T]) SubEq(o *Mat2[T]) *Mat2[T] { subTo(m.e(), m.e(), o.e()); return m }

func (m *Mat2[T]) MulScalar(s T) *Mat2[T]   { out := newMat2[T](); mulScalarTo(out.e(), m.e(), s); return out }
func (m *Mat2[T]) MulScalarEq(s T) *Mat2[T] { mulScalarTo(m.e(), m.e(), s); return m }

func (m *Mat2[T]) Mul(o *Mat2[T]) *Mat2[T] {
	return m.Clone().MulEq(o)
}

// MulEq sets m = m·o.
func (m *Mat2[T]) MulEq(o *Mat2[T]) *Mat2[T] {
	a, b := m.f(), o.f()
	var out [4]float64
	matMul(out[:], a[:], b[:], 2)
	m.put(out)
	return m
}

func (m *Mat2[T]) premul(e [4]float64) *Mat2[T] {
	a := m.f()
	var out [4]float64
	matMul(out[:], e[:], a[:], 2)
	m.put(out)
	return m
}

func (m *Mat2[T]) Transposed() *Mat2[T] { return m.Clone().Transpose() }

func (m *Mat2[T]) Transpose() *Mat2[T] {
	e := m.e()
	e[1], e[2] = e[2], e[1]
	return m
}

// Inverse returns m⁻¹, or a zero matrix when m is singular.
func (m *Mat2[T]) Inverse() *Mat2[T] {
	return m.Clone().invertOr(newMat2[T]())
}

// Invert replaces m with its inverse; a singular m is left unchanged.
func (m *Mat2[T]) Invert() *Mat2[T] {
	return m.invertOr(m)
}

// invertOr inverts m in place, or returns fallback when m is singular.
func (m *Mat2[T]) invertOr(fallback *Mat2[T]) *Mat2[T] {
	adj, det := mat2Adjugate(m.f())
	if det == 0 {
		debugCheckSingular(m.typeName(), det)
		return fallback
	}
	for i := range adj {
		adj[i] /= det
	}
	m.put(adj)
	return m
}

func (m *Mat2[T]) Adjoint() *Mat2[T] {
	adj, _ := mat2Adjugate(m.f())
	out := newMat2[T]()
	out.put(adj)
	return out
}

func (m *Mat2[T]) Determinant() float32 {
	_, det := mat2Adjugate(m.f())
	return float32(det)
}

func (m *Mat2[T]) Frob() float32 {
	a := m.f()
	return float32(matFrob(a[:]))
}

// Rotate pre-multiplies a rotation by angle (process angle unit).
func (m *Mat2[T]) Rotate(angle float32) *Mat2[T] {
	return m.premul(mat2FromRotation(float64(toRad(angle))))
}

func (m *Mat2[T]) Scale(v *Vec2[T]) *Mat2[T] {
	s := v.e()
	return m.premul(mat2FromScaling(float64(s[0]), float64(s[1])))
}

func (m *Mat2[T]) Rotated(angle float32) *Mat2[T] { return m.Clone().Rotate(angle) }
func (m *Mat2[T]) Scaled(v *Vec2[T]) *Mat2[T]     { return m.Clone().Scale(v) }

func (m *Mat2[T]) transformVec2(v [2]float64) [2]float64 {
	if m == nil {
		return v
	}
	a := m.f()
	return [2]float64{
		a[0]*v[0] + a[2]*v[1],
		a[1]*v[0] + a[3]*v[1],
	}
}

func (m *Mat2[T]) Equals(o *Mat2[T]) bool      { return equals(m.e(), o.e()) }
func (m *Mat2[T]) ExactEquals(o *Mat2[T]) bool { return exactEquals(m.e(), o.e()) }

func (m *Mat2[T]) String() string         { return m.Text(defaultDigits) }
func (m *Mat2[T]) Text(digits int) string { return formatMat(m.e(), 2, digits) }
