package vmath

import (
	"fmt"
	"math"
)

// Rotation3D selects the rotation built by Rotation: a *Quat or an
// AxisAngle.
type Rotation3D interface {
	rotation3D()
}

// AxisAngle is a rotation of Angle (in the mode's unit) about Axis.
type AxisAngle struct {
	Axis  *Vec3f
	Angle float32
}

func (*Quat) rotation3D()     {}
func (AxisAngle) rotation3D() {}

// PlanarRotation selects the rotation built by Rotation2D: a *Quat or an
// Angle.
type PlanarRotation interface {
	rotation2D()
}

// Angle is a planar rotation angle in the mode's unit.
type Angle float32

func (*Quat) rotation2D() {}
func (Angle) rotation2D() {}

// FieldOfView holds the four half-angles of an asymmetric frustum, always
// in degrees.
type FieldOfView struct {
	Up, Down, Left, Right float32
}

// Affine2D describes a 2-D placement the way scene graphs store it. The
// matrix built from it applies, in order: Translate(-Pivot), Scale, Skew,
// Rotate, Translate(X, Y). Rotation and skew angles are in the mode's unit.
type Affine2D struct {
	X, Y           float32
	ScaleX, ScaleY float32
	SkewX, SkewY   float32
	Rotation       float32
	PivotX, PivotY float32
}

func vec3Arr(v *Vec3f) [3]float64 {
	var a [3]float64
	load(a[:], v.e())
	return a
}

// --- 3-D transforms ---

// RotationTranslation returns the matrix that rotates by q then translates
// by t.
func (Mode) RotationTranslation(q *Quat, t *Vec3f) *Mat4f {
	return mat4From[float32](mat4FromRTSO(q.f(), vec3Arr(t), [3]float64{1, 1, 1}, [3]float64{}))
}

// RotationTranslationScale returns the matrix that scales by s, rotates by
// q, then translates by t.
func (Mode) RotationTranslationScale(q *Quat, t, s *Vec3f) *Mat4f {
	return mat4From[float32](mat4FromRTSO(q.f(), vec3Arr(t), vec3Arr(s), [3]float64{}))
}

// RotationTranslationScaleOrigin is RotationTranslationScale with scaling
// and rotation performed about the pivot o.
func (Mode) RotationTranslationScaleOrigin(q *Quat, t, s, o *Vec3f) *Mat4f {
	return mat4From[float32](mat4FromRTSO(q.f(), vec3Arr(t), vec3Arr(s), vec3Arr(o)))
}

func (m Mode) RotationX(angle float32) *Mat4f {
	return mat4From[float32](mat4FromXRotation(float64(m.ToRadians(angle))))
}

func (m Mode) RotationY(angle float32) *Mat4f {
	return mat4From[float32](mat4FromYRotation(float64(m.ToRadians(angle))))
}

func (m Mode) RotationZ(angle float32) *Mat4f {
	return mat4From[float32](mat4FromZRotation(float64(m.ToRadians(angle))))
}

// Rotation returns the rotation described by sel. A nil quaternion, a nil
// axis or a nil selector is reported as a *SelectorError. A zero-length
// axis yields the identity.
func (m Mode) Rotation(sel Rotation3D) (*Mat4f, error) {
	switch s := sel.(type) {
	case *Quat:
		if s == nil {
			return nil, &SelectorError{Func: "Rotation", Reason: "nil quaternion"}
		}
		return mat4From[float32](mat4FromBasis(quatBasis(s.f()), 0, 0, 0)), nil
	case AxisAngle:
		if s.Axis == nil {
			return nil, &SelectorError{Func: "Rotation", Reason: "axis-angle without an axis"}
		}
		a := vec3Arr(s.Axis)
		r, ok := mat4FromAxisAngle(a[0], a[1], a[2], float64(m.ToRadians(s.Angle)))
		if !ok {
			debugCheckZeroAxis("Rotation", dot3(a, a))
			return IdentityMat4[float32](), nil
		}
		return mat4From[float32](r), nil
	}
	return nil, &SelectorError{Func: "Rotation", Reason: fmt.Sprintf("want *Quat or AxisAngle, got %T", sel)}
}

func (Mode) Translation(t *Vec3f) *Mat4f {
	a := vec3Arr(t)
	return mat4From[float32](mat4FromTranslation(a[0], a[1], a[2]))
}

func (Mode) Scaling(s *Vec3f) *Mat4f {
	a := vec3Arr(s)
	return mat4From[float32](mat4FromScaling(a[0], a[1], a[2]))
}

// TargetTo returns the model matrix that places an object at eye oriented
// toward target.
func (Mode) TargetTo(eye, target, up *Vec3f) *Mat4f {
	return mat4From[float32](mat4TargetTo(vec3Arr(eye), vec3Arr(target), vec3Arr(up)))
}

// --- 2-D transforms ---

// Rotation2D returns the 3×3 rotation described by sel.
func (m Mode) Rotation2D(sel PlanarRotation) (*Mat3f, error) {
	switch s := sel.(type) {
	case *Quat:
		if s == nil {
			return nil, &SelectorError{Func: "Rotation2D", Reason: "nil quaternion"}
		}
		return mat3From[float32](quatBasis(s.f())), nil
	case Angle:
		return mat3From[float32](mat3FromRotation(float64(m.ToRadians(float32(s))))), nil
	}
	return nil, &SelectorError{Func: "Rotation2D", Reason: fmt.Sprintf("want *Quat or Angle, got %T", sel)}
}

func (Mode) Translation2D(t *Vec2f) *Mat3f {
	e := t.e()
	return mat3From[float32](mat3FromTranslation(float64(e[0]), float64(e[1])))
}

func (Mode) Scaling2D(s *Vec2f) *Mat3f {
	e := s.e()
	return mat3From[float32](mat3FromScaling(float64(e[0]), float64(e[1])))
}

// Affine returns the 2-D affine matrix for a.
func (m Mode) Affine(a Affine2D) *Mat3f {
	sx, sy := float64(a.ScaleX), float64(a.ScaleY)
	sin, cos := math.Sincos(float64(m.ToRadians(a.Rotation)))

	var tanSkewX, tanSkewY float64
	if a.SkewX != 0 {
		tanSkewX = math.Tan(float64(m.ToRadians(a.SkewX)))
	}
	if a.SkewY != 0 {
		tanSkewY = math.Tan(float64(m.ToRadians(a.SkewY)))
	}

	// Scale and skew, with the pivot already subtracted.
	b00 := sx
	b01 := tanSkewY * sx
	b10 := tanSkewX * sy
	b11 := sy

	px, py := float64(a.PivotX), float64(a.PivotY)
	preTx := -px*sx - tanSkewX*py*sy
	preTy := -tanSkewY*px*sx - py*sy

	return mat3From[float32]([9]float64{
		cos*b00 - sin*b01, sin*b00 + cos*b01, 0,
		cos*b10 - sin*b11, sin*b10 + cos*b11, 0,
		cos*preTx - sin*preTy + float64(a.X), sin*preTx + cos*preTy + float64(a.Y), 1,
	})
}

// --- View and projection ---

// LookAt returns a view matrix for a camera at eye looking at center.
func (Mode) LookAt(eye, center, up *Vec3f) *Mat4f {
	return mat4From[float32](mat4LookAt(vec3Arr(eye), vec3Arr(center), vec3Arr(up)))
}

func (Mode) Frustum(left, right, bottom, top, near, far float32) *Mat4f {
	return mat4From[float32](mat4Frustum(float64(left), float64(right), float64(bottom), float64(top), float64(near), float64(far)))
}

func (Mode) Ortho(left, right, bottom, top, near, far float32) *Mat4f {
	return mat4From[float32](mat4Ortho(float64(left), float64(right), float64(bottom), float64(top), float64(near), float64(far)))
}

// Perspective returns a projection with vertical field of view fovy in the
// mode's unit. Pass math32.Inf(1) as far for an infinite far plane.
func (m Mode) Perspective(fovy, aspect, near, far float32) *Mat4f {
	return mat4From[float32](mat4Perspective(float64(m.ToRadians(fovy)), float64(aspect), float64(near), float64(far)))
}

// PerspectiveFromFieldOfView returns a projection for the asymmetric field
// of view fov. Its angles are degrees whatever the mode.
func (Mode) PerspectiveFromFieldOfView(fov FieldOfView, near, far float32) *Mat4f {
	return mat4From[float32](mat4PerspectiveFOV(
		float64(fov.Up), float64(fov.Down), float64(fov.Left), float64(fov.Right),
		float64(near), float64(far),
	))
}

// --- Package-level forms using the process angle unit ---

func RotationTranslation(q *Quat, t *Vec3f) *Mat4f { return Mode{}.RotationTranslation(q, t) }

func RotationTranslationScale(q *Quat, t, s *Vec3f) *Mat4f {
	return Mode{}.RotationTranslationScale(q, t, s)
}

func RotationTranslationScaleOrigin(q *Quat, t, s, o *Vec3f) *Mat4f {
	return Mode{}.RotationTranslationScaleOrigin(q, t, s, o)
}

func RotationX(angle float32) *Mat4f                { return Mode{}.RotationX(angle) }
func RotationY(angle float32) *Mat4f                { return Mode{}.RotationY(angle) }
func RotationZ(angle float32) *Mat4f                { return Mode{}.RotationZ(angle) }
func Rotation(sel Rotation3D) (*Mat4f, error)       { return Mode{}.Rotation(sel) }
func Translation(t *Vec3f) *Mat4f                   { return Mode{}.Translation(t) }
func Scaling(s *Vec3f) *Mat4f                       { return Mode{}.Scaling(s) }
func TargetTo(eye, target, up *Vec3f) *Mat4f        { return Mode{}.TargetTo(eye, target, up) }
func Rotation2D(sel PlanarRotation) (*Mat3f, error) { return Mode{}.Rotation2D(sel) }
func Translation2D(t *Vec2f) *Mat3f                 { return Mode{}.Translation2D(t) }
func Scaling2D(s *Vec2f) *Mat3f                     { return Mode{}.Scaling2D(s) }
func NewAffine2D(a Affine2D) *Mat3f                 { return Mode{}.Affine(a) }
func LookAt(eye, center, up *Vec3f) *Mat4f          { return Mode{}.LookAt(eye, center, up) }

func Perspective(fovy, aspect, near, far float32) *Mat4f {
	return Mode{}.Perspective(fovy, aspect, near, far)
}

func Frustum(left, right, bottom, top, near, far float32) *Mat4f {
	return Mode{}.Frustum(left, right, bottom, top, near, far)
}

func Ortho(left, right, bottom, top, near, far float32) *Mat4f {
	return Mode{}.Ortho(left, right, bottom, top, near, far)
}

func PerspectiveFromFieldOfView(fov FieldOfView, near, far float32) *Mat4f {
	return Mode{}.PerspectiveFromFieldOfView(fov, near, far)
}
