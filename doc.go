// Package vmath is a fixed-size linear algebra library for real-time
// rendering and simulation code running on [Ebitengine].
//
// It provides 2, 3 and 4 component vectors, 2×2, 3×3 and 4×4 matrices and
// quaternions over float32, int32 and uint32 elements.
//
// # Storage and views
//
// Every vector and matrix either owns a [Buffer] or is a view into another
// value's buffer. Views read and write the same memory as their owner:
//
//	v := vmath.NewVec4f(1, 2, 3, 4)
//	v.XYZ().SetX(9)      // v is now (9, 2, 3, 4)
//
//	m := vmath.IdentityMat4[float32]()
//	m.Y().SetZ(7)        // element (1, 2) of m is now 7
//
// Sub-views such as [Vec4.XYZ] and matrix rows such as [Mat4.Y] are created
// on first access and reused afterwards. [NewVec2View], [NewVec3View] and
// [NewVec4View] create a view at any offset of a vector or matrix.
//
// Calling Release on an owner kills its buffer; any later access through
// the owner or one of its views panics.
//
// # Construction
//
// NewXxx constructors and every Set method accept a flexible argument
// list: [Scalar] values, [Values] sequences and other vectors, matrices or
// quaternions, flattened left to right. The flattened count must match the
// target exactly or a [*CountError] is returned:
//
//	v, err := vmath.NewVec4[float32](vmath.NewVec2f(1, 2), vmath.Scalar(3), vmath.Scalar(4))
//
// # Conventions
//
// Matrices are row-major and points are row vectors, so v' = v·M and a
// translation lives in the last row. [Mat4.Mul] returns the plain product
// A·B; transforming by the result applies A first. Elementary mutators
// ([Mat4.Translate], [Mat4.Rotate], ...) pre-multiply.
//
// Every operation taking or reporting an angle uses the process-wide unit,
// degrees by default. [UseRadians] switches it; a [Mode] value fixes the
// unit for a single call without touching process state.
//
// # Ebitengine integration
//
// [Mat3.GeoM] and [Mat3FromGeoM] convert 2-D affine matrices to and from
// [ebiten.GeoM]. [TweenVec3], [TweenQuat] and [TweenPath] animate values
// with [gween] easing.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package vmath
