package vmath

import "math"

// Matrix kernels over row-major float64 arrays. Element (r, c) of an n×n
// matrix is a[r*n+c]. Every Mat type loads its window, calls one of these
// and stores the result back, so integer matrices compute in float64 and
// truncate once.

func identityInto(a []float64, n int) {
	clear(a)
	for i := 0; i < n; i++ {
		a[i*n+i] = 1
	}
}

// matMul writes a·b into out. out must not alias a or b.
func matMul(out, a, b []float64, n int) {
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			var s float64
			for k := 0; k < n; k++ {
				s += a[r*n+k] * b[k*n+c]
			}
			out[r*n+c] = s
		}
	}
}

// matTranspose writes aᵀ into out. out must not alias a.
func matTranspose(out, a []float64, n int) {
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			out[c*n+r] = a[r*n+c]
		}
	}
}

func matFrob(a []float64) float64 {
	var s float64
	for _, v := range a {
		s += v * v
	}
	return math.Sqrt(s)
}

// --- 2×2 ---

func mat2Adjugate(a [4]float64) (adj [4]float64, det float64) {
	return [4]float64{a[3], -a[1], -a[2], a[0]}, a[0]*a[3] - a[2]*a[1]
}

func mat2FromRotation(rad float64) [4]float64 {
	s, c := math.Sincos(rad)
	return [4]float64{c, s, -s, c}
}

func mat2FromScaling(x, y float64) [4]float64 {
	return [4]float64{x, 0, 0, y}
}

// --- 3×3 ---

func mat3Adjugate(a [9]float64) (adj [9]float64, det float64) {
	a00, a01, a02 := a[0], a[1], a[2]
	a10, a11, a12 := a[3], a[4], a[5]
	a20, a21, a22 := a[6], a[7], a[8]

	b01 := a22*a11 - a12*a21
	b11 := -a22*a10 + a12*a20
	b21 := a21*a10 - a11*a20

	det = a00*b01 + a01*b11 + a02*b21
	adj = [9]float64{
		b01, -a22*a01 + a02*a21, a12*a01 - a02*a11,
		b11, a22*a00 - a02*a20, -a12*a00 + a02*a10,
		b21, -a21*a00 + a01*a20, a11*a00 - a01*a10,
	}
	return adj, det
}

func mat3FromRotation(rad float64) [9]float64 {
	s, c := math.Sincos(rad)
	return [9]float64{
		c, s, 0,
		-s, c, 0,
		0, 0, 1,
	}
}

func mat3FromTranslation(x, y float64) [9]float64 {
	return [9]float64{
		1, 0, 0,
		0, 1, 0,
		x, y, 1,
	}
}

func mat3FromScaling(x, y float64) [9]float64 {
	return [9]float64{
		x, 0, 0,
		0, y, 0,
		0, 0, 1,
	}
}

// quatBasis returns the 3×3 rotation a unit quaternion (x, y, z, w)
// describes, in the row-vector layout.
func quatBasis(q [4]float64) [9]float64 {
	x, y, z, w := q[0], q[1], q[2], q[3]
	x2, y2, z2 := x+x, y+y, z+z
	xx, yx, yy := x*x2, y*x2, y*y2
	zx, zy, zz := z*x2, z*y2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2
	return [9]float64{
		1 - yy - zz, yx + wz, zx - wy,
		yx - wz, 1 - xx - zz, zy + wx,
		zx + wy, zy - wx, 1 - xx - yy,
	}
}

// --- 4×4 ---

func mat4Adjugate(a [16]float64) (adj [16]float64, det float64) {
	a00, a01, a02, a03 := a[0], a[1], a[2], a[3]
	a10, a11, a12, a13 := a[4], a[5], a[6], a[7]
	a20, a21, a22, a23 := a[8], a[9], a[10], a[11]
	a30, a31, a32, a33 := a[12], a[13], a[14], a[15]

	b00 := a00*a11 - a01*a10
	b01 := a00*a12 - a02*a10
	b02 := a00*a13 - a03*a10
	b03 := a01*a12 - a02*a11
	b04 := a01*a13 - a03*a11
	b05 := a02*a13 - a03*a12
	b06 := a20*a31 - a21*a30
	b07 := a20*a32 - a22*a30
	b08 := a20*a33 - a23*a30
	b09 := a21*a32 - a22*a31
	b10 := a21*a33 - a23*a31
	b11 := a22*a33 - a23*a32

	det = b00*b11 - b01*b10 + b02*b09 + b03*b08 - b04*b07 + b05*b06
	adj = [16]float64{
		a11*b11 - a12*b10 + a13*b09,
		a02*b10 - a01*b11 - a03*b09,
		a31*b05 - a32*b04 + a33*b03,
		a22*b04 - a21*b05 - a23*b03,

		a12*b08 - a10*b11 - a13*b07,
		a00*b11 - a02*b08 + a03*b07,
		a32*b02 - a30*b05 - a33*b01,
		a20*b05 - a22*b02 + a23*b01,

		a10*b10 - a11*b08 + a13*b06,
		a01*b08 - a00*b10 - a03*b06,
		a30*b04 - a31*b02 + a33*b00,
		a21*b02 - a20*b04 - a23*b00,

		a11*b07 - a10*b09 - a12*b06,
		a00*b09 - a01*b07 + a02*b06,
		a31*b01 - a30*b03 - a32*b00,
		a20*b03 - a21*b01 + a22*b00,
	}
	return adj, det
}

// mat4FromBasis embeds a 3×3 basis and a translation row.
func mat4FromBasis(m [9]float64, tx, ty, tz float64) [16]float64 {
	return [16]float64{
		m[0], m[1], m[2], 0,
		m[3], m[4], m[5], 0,
		m[6], m[7], m[8], 0,
		tx, ty, tz, 1,
	}
}

// mat4FromAxisAngle returns the rotation about (x, y, z). ok is false when
// the axis is shorter than epsilon.
func mat4FromAxisAngle(x, y, z, rad float64) (m [16]float64, ok bool) {
	l := math.Sqrt(x*x + y*y + z*z)
	if l < epsilon {
		return m, false
	}
	x, y, z = x/l, y/l, z/l
	s, c := math.Sincos(rad)
	t := 1 - c
	return mat4FromBasis([9]float64{
		x*x*t + c, y*x*t + z*s, z*x*t - y*s,
		x*y*t - z*s, y*y*t + c, z*y*t + x*s,
		x*z*t + y*s, y*z*t - x*s, z*z*t + c,
	}, 0, 0, 0), true
}

func mat4FromXRotation(rad float64) [16]float64 {
	s, c := math.Sincos(rad)
	return mat4FromBasis([9]float64{1, 0, 0, 0, c, s, 0, -s, c}, 0, 0, 0)
}

func mat4FromYRotation(rad float64) [16]float64 {
	s, c := math.Sincos(rad)
	return mat4FromBasis([9]float64{c, 0, -s, 0, 1, 0, s, 0, c}, 0, 0, 0)
}

func mat4FromZRotation(rad float64) [16]float64 {
	s, c := math.Sincos(rad)
	return mat4FromBasis([9]float64{c, s, 0, -s, c, 0, 0, 0, 1}, 0, 0, 0)
}

func mat4FromTranslation(x, y, z float64) [16]float64 {
	return mat4FromBasis([9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, x, y, z)
}

func mat4FromScaling(x, y, z float64) [16]float64 {
	return mat4FromBasis([9]float64{x, 0, 0, 0, y, 0, 0, 0, z}, 0, 0, 0)
}

// mat4FromRTSO composes scale about origin o, then rotation q, then
// translation t.
func mat4FromRTSO(q [4]float64, t, s, o [3]float64) [16]float64 {
	b := quatBasis(q)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			b[r*3+c] *= s[r]
		}
	}
	m := mat4FromBasis(b, t[0], t[1], t[2])
	for c := 0; c < 3; c++ {
		m[12+c] += o[c] - (b[c]*o[0] + b[3+c]*o[1] + b[6+c]*o[2])
	}
	return m
}

// mat4Scaling returns the length of each basis row.
func mat4Scaling(m [16]float64) [3]float64 {
	return [3]float64{
		math.Sqrt(m[0]*m[0] + m[1]*m[1] + m[2]*m[2]),
		math.Sqrt(m[4]*m[4] + m[5]*m[5] + m[6]*m[6]),
		math.Sqrt(m[8]*m[8] + m[9]*m[9] + m[10]*m[10]),
	}
}

// mat4Rotation extracts the rotation of m as a quaternion (x, y, z, w)
// after dividing each basis row by its scale.
func mat4Rotation(m [16]float64) [4]float64 {
	sc := mat4Scaling(m)
	var b [9]float64
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			b[r*3+c] = m[r*4+c] / sc[r]
		}
	}
	return quatFromBasis(b)
}

// quatFromBasis converts a pure rotation basis into a quaternion using the
// branch on the largest diagonal term.
func quatFromBasis(b [9]float64) [4]float64 {
	m00, m01, m02 := b[0], b[1], b[2]
	m10, m11, m12 := b[3], b[4], b[5]
	m20, m21, m22 := b[6], b[7], b[8]
	trace := m00 + m11 + m22
	switch {
	case trace > 0:
		s := math.Sqrt(trace+1) * 2
		return [4]float64{(m12 - m21) / s, (m20 - m02) / s, (m01 - m10) / s, 0.25 * s}
	case m00 > m11 && m00 > m22:
		s := math.Sqrt(1+m00-m11-m22) * 2
		return [4]float64{0.25 * s, (m01 + m10) / s, (m20 + m02) / s, (m12 - m21) / s}
	case m11 > m22:
		s := math.Sqrt(1+m11-m00-m22) * 2
		return [4]float64{(m01 + m10) / s, 0.25 * s, (m12 + m21) / s, (m20 - m02) / s}
	default:
		s := math.Sqrt(1+m22-m00-m11) * 2
		return [4]float64{(m20 + m02) / s, (m12 + m21) / s, 0.25 * s, (m01 - m10) / s}
	}
}

func mat4Frustum(left, right, bottom, top, near, far float64) [16]float64 {
	rl := 1 / (right - left)
	tb := 1 / (top - bottom)
	nf := 1 / (near - far)
	return [16]float64{
		near * 2 * rl, 0, 0, 0,
		0, near * 2 * tb, 0, 0,
		(right + left) * rl, (top + bottom) * tb, (far + near) * nf, -1,
		0, 0, far * near * 2 * nf, 0,
	}
}

// mat4Perspective builds a projection with vertical field of view fovy
// (radians). An infinite far gives an infinite far plane.
func mat4Perspective(fovy, aspect, near, far float64) [16]float64 {
	f := 1 / math.Tan(fovy/2)
	m := [16]float64{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, -1, -1,
		0, 0, -2 * near, 0,
	}
	if !math.IsInf(far, 1) {
		nf := 1 / (near - far)
		m[10] = (far + near) * nf
		m[14] = 2 * far * near * nf
	}
	return m
}

// mat4PerspectiveFOV builds a projection from four half-angles in degrees.
func mat4PerspectiveFOV(up, down, left, right, near, far float64) [16]float64 {
	upTan := math.Tan(up * math.Pi / 180)
	downTan := math.Tan(down * math.Pi / 180)
	leftTan := math.Tan(left * math.Pi / 180)
	rightTan := math.Tan(right * math.Pi / 180)
	xScale := 2 / (leftTan + rightTan)
	yScale := 2 / (upTan + downTan)
	return [16]float64{
		xScale, 0, 0, 0,
		0, yScale, 0, 0,
		-((leftTan - rightTan) * xScale * 0.5), (upTan - downTan) * yScale * 0.5, far / (near - far), -1,
		0, 0, far * near / (near - far), 0,
	}
}

func mat4Ortho(left, right, bottom, top, near, far float64) [16]float64 {
	lr := 1 / (left - right)
	bt := 1 / (bottom - top)
	nf := 1 / (near - far)
	return [16]float64{
		-2 * lr, 0, 0, 0,
		0, -2 * bt, 0, 0,
		0, 0, 2 * nf, 0,
		(left + right) * lr, (top + bottom) * bt, (far + near) * nf, 1,
	}
}

func sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

func cross3(a, b [3]float64) [3]float64 {
	return [3]float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// normalize3 scales a to unit length; a zero vector stays zero.
func normalize3(a [3]float64) [3]float64 {
	l := math.Sqrt(dot3(a, a))
	if l == 0 {
		return a
	}
	return [3]float64{a[0] / l, a[1] / l, a[2] / l}
}

// mat4LookAt builds a view matrix. An eye that coincides with center gives
// the identity.
func mat4LookAt(eye, center, up [3]float64) [16]float64 {
	d := sub3(eye, center)
	if math.Abs(d[0]) < epsilon && math.Abs(d[1]) < epsilon && math.Abs(d[2]) < epsilon {
		var m [16]float64
		identityInto(m[:], 4)
		return m
	}
	z := normalize3(d)
	x := normalize3(cross3(up, z))
	y := normalize3(cross3(z, x))
	return [16]float64{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		-dot3(x, eye), -dot3(y, eye), -dot3(z, eye), 1,
	}
}

// mat4TargetTo builds the model matrix that places an object at eye facing
// target; it is the inverse of the matching LookAt.
func mat4TargetTo(eye, target, up [3]float64) [16]float64 {
	z := normalize3(sub3(eye, target))
	x := normalize3(cross3(up, z))
	y := cross3(z, x)
	return [16]float64{
		x[0], x[1], x[2], 0,
		y[0], y[1], y[2], 0,
		z[0], z[1], z[2], 0,
		eye[0], eye[1], eye[2], 1,
	}
}
