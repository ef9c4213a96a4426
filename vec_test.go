package vmath

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/chewxy/math32"
)

func TestVecArithmeticDoesNotMutateReceiver(t *testing.T) {
	a, b := NewVec3f(1, 2, 3), NewVec3f(4, 5, 6)

	assertElems(t, "Add", a.Add(b).Elements(), 5, 7, 9)
	assertElems(t, "Sub", a.Sub(b).Elements(), -3, -3, -3)
	assertElems(t, "Mul", a.Mul(b).Elements(), 4, 10, 18)
	assertElems(t, "Div", b.Div(a).Elements(), 4, 2.5, 2)
	assertElems(t, "MulScalar", a.MulScalar(2).Elements(), 2, 4, 6)
	assertElems(t, "Negated", a.Negated().Elements(), -1, -2, -3)
	assertElems(t, "Scaled", a.Scaled(0.5).Elements(), 0.5, 1, 1.5)
	assertElems(t, "Normalized", NewVec3f(0, 3, 4).Normalized().Elements(), 0, 0.6, 0.8)

	assertElems(t, "receiver", a.Elements(), 1, 2, 3)
	assertElems(t, "argument", b.Elements(), 4, 5, 6)
}

func TestVecInPlaceReturnsReceiver(t *testing.T) {
	v := NewVec2f(1, 2)
	if got := v.AddEq(NewVec2f(1, 1)).MulScalarEq(3); got != v {
		t.Error("in-place ops should return the receiver")
	}
	assertElems(t, "chained", v.Elements(), 6, 9)

	w := NewVec4f(1, 2, 3, 4)
	w.SubScalarEq(1).DivScalarEq(2).Negate()
	assertElems(t, "vec4 chained", w.Elements(), 0, -0.5, -1, -1.5)
}

func TestNormalizeIdempotent(t *testing.T) {
	v := NewVec3f(3, -4, 12).Normalize()
	assertNear(t, "length", v.Length(), 1)

	again := v.Normalized()
	if !again.Equals(v) {
		t.Errorf("normalize twice = %v, want %v", again, v)
	}
}

func TestNormalizeZero(t *testing.T) {
	f := NewVec3f(0, 0, 0).Normalized()
	if !math.IsNaN(float64(f.X())) {
		t.Errorf("normalized zero float vector = %v, want NaN", f.Elements())
	}

	i := Vec3Of[int32](0, 0, 0).Normalized()
	assertElems(t, "normalized zero int vector", i.Elements(), 0, 0, 0)
}

func TestSetLength(t *testing.T) {
	v := NewVec2f(3, 4).SetLength(10)
	assertElems(t, "SetLength", v.Elements(), 6, 8)
	assertNear(t, "WithLength", NewVec4f(1, 1, 1, 1).WithLength(4).Length(), 4)
}

func TestCross(t *testing.T) {
	x, y := NewVec3f(1, 0, 0), NewVec3f(0, 1, 0)
	assertElems(t, "x × y", x.Cross(y).Elements(), 0, 0, 1)
	assertElems(t, "y × x", y.Cross(x).Elements(), 0, 0, -1)

	assertNear(t, "2-D cross", NewVec2f(1, 0).Cross(NewVec2f(0, 1)), 1)

	ic := Vec3Of[int32](1, 0, 0).Cross(Vec3Of[int32](0, 1, 0))
	assertElems(t, "int cross", ic.Elements(), 0, 0, 1)
}

func TestCross4(t *testing.T) {
	u, v, w := NewVec4f(1, 0, 0, 0), NewVec4f(0, 1, 0, 0), NewVec4f(0, 0, 1, 0)
	c := Cross4(u, v, w)
	assertElems(t, "cross4", c.Elements(), 0, 0, 0, -1)
	for _, in := range []*Vec4f{u, v, w} {
		assertNear(t, "orthogonal", c.Dot(in), 0)
	}
}

func TestIntegerArithmetic(t *testing.T) {
	v := Vec2Of[int32](7, -7)
	assertElems(t, "int32 DivScalar", v.DivScalar(2).Elements(), 3, -3)
	assertElems(t, "int32 divide by zero", v.Div(Vec2Of[int32](0, 1)).Elements(), 0, -7)

	u := Vec3Of[uint32](1, 2, 3)
	assertElems(t, "uint32 wraps", u.SubScalar(2).Elements(), math.MaxUint32, 0, 1)
	assertElems(t, "uint32 Scaled", u.Scaled(1.5).Elements(), 1, 3, 4)
}

func TestRounding(t *testing.T) {
	v := NewVec3f(1.2, -1.5, 2.5)
	assertElems(t, "Ceil", v.Ceil().Elements(), 2, -1, 3)
	assertElems(t, "Floor", v.Floor().Elements(), 1, -2, 2)
	assertElems(t, "Rounded", v.Rounded().Elements(), 1, -2, 3)
	assertElems(t, "Inverse", NewVec2f(2, 4).Inverse().Elements(), 0.5, 0.25)
}

func TestQueries(t *testing.T) {
	a, b := NewVec3f(1, 2, 2), NewVec3f(4, 6, 2)
	assertNear(t, "Length", a.Length(), 3)
	assertNear(t, "SquaredLength", a.SquaredLength(), 9)
	assertNear(t, "Distance", a.Distance(b), 5)
	assertNear(t, "SquaredDistance", a.SquaredDistance(b), 25)
	assertNear(t, "Dot", a.Dot(b), 20)
}

func TestEquals(t *testing.T) {
	a := NewVec3f(1, 2, 3)
	b := NewVec3f(1, 2, 3+1e-7)
	if !a.Equals(b) {
		t.Error("values within tolerance should be Equal")
	}
	if a.Equals(NewVec3f(1, 2, 3.001)) {
		t.Error("values outside tolerance should not be Equal")
	}
	if !a.ExactEquals(NewVec3f(1, 2, 3)) {
		t.Error("identical values should be ExactEqual")
	}
	if a.ExactEquals(NewVec3f(1, 2, 3.001)) {
		t.Error("different values should not be ExactEqual")
	}
}

func TestMinMaxLerp(t *testing.T) {
	a, b := NewVec2f(1, 5), NewVec2f(3, 2)
	assertElems(t, "Min", MinVec2(a, b).Elements(), 1, 2)
	assertElems(t, "Max", MaxVec2(a, b).Elements(), 3, 5)
	assertElems(t, "Lerp", LerpVec2(a, b, 0.5).Elements(), 2, 3.5)

	c, d := NewVec4f(0, 0, 0, 0), NewVec4f(4, 8, -4, 2)
	assertElems(t, "Lerp4", LerpVec4(c, d, 0.25).Elements(), 1, 2, -1, 0.5)
	assertElems(t, "Min4", MinVec4(c, d).Elements(), 0, 0, -4, 0)
	assertElems(t, "Max3", MaxVec3(NewVec3f(1, 9, 1), NewVec3f(2, 0, 2)).Elements(), 2, 9, 2)
	assertElems(t, "Lerp3", LerpVec3(NewVec3f(0, 0, 0), NewVec3f(2, 2, 2), 1).Elements(), 2, 2, 2)
}

func TestAngles(t *testing.T) {
	assertNear(t, "Vec2Angle", Vec2Angle(NewVec2f(1, 0), NewVec2f(0, 3)), 90)
	assertNear(t, "Vec3Angle opposite", Vec3Angle(NewVec3f(1, 0, 0), NewVec3f(-2, 0, 0)), 180)
	assertNear(t, "Vec3Angle zero vector", Vec3Angle(NewVec3f(0, 0, 0), NewVec3f(1, 0, 0)), 90)
}

func TestRotateAboutAxes(t *testing.T) {
	origin := NewVec3f(0, 0, 0)
	assertElems(t, "RotateZ", RotateZ(NewVec3f(1, 0, 0), origin, 90).Elements(), 0, 1, 0)
	assertElems(t, "RotateX", RotateX(NewVec3f(0, 1, 0), origin, 90).Elements(), 0, 0, 1)
	assertElems(t, "RotateY", RotateY(NewVec3f(0, 0, 1), origin, 90).Elements(), 1, 0, 0)

	around := RotateZ(NewVec3f(2, 1, 5), NewVec3f(1, 1, 0), 180)
	assertElems(t, "RotateZ about point", around.Elements(), 0, 1, 5)

	assertElems(t, "Rotate2", Rotate2(NewVec2f(2, 0), NewVec2f(1, 0), 90).Elements(), 1, 1)
}

func TestTransformByEachKind(t *testing.T) {
	m4 := IdentityMat4[float32]().Translate(NewVec3f(1, 2, 3))
	assertElems(t, "vec3·mat4", NewVec3f(1, 1, 1).Transform(m4).Elements(), 2, 3, 4)
	assertElems(t, "vec2·mat4", NewVec2f(1, 1).Transform(m4).Elements(), 2, 3)
	assertElems(t, "vec4·mat4", NewVec4f(1, 1, 1, 0).Transform(m4).Elements(), 1, 1, 1, 0)
	assertElems(t, "point vec4·mat4", NewVec4f(1, 1, 1, 1).Transform(m4).Elements(), 2, 3, 4, 1)

	m3 := IdentityMat3[float32]().Translate(NewVec2f(5, 6))
	assertElems(t, "vec2·mat3", NewVec2f(1, 1).Transform(m3).Elements(), 6, 7)
	assertElems(t, "vec3·mat3", NewVec3f(1, 1, 1).Transform(m3).Elements(), 6, 7, 1)

	m2 := IdentityMat2[float32]().Scale(NewVec2f(2, 3))
	assertElems(t, "vec2·mat2", NewVec2f(1, 1).Transform(m2).Elements(), 2, 3)

	q := Mode{Unit: Degrees}.FromAxisAngle(NewVec3f(0, 0, 1), 90)
	assertElems(t, "vec3·quat", NewVec3f(1, 0, 0).Transform(q).Elements(), 0, 1, 0)
	assertElems(t, "vec4·quat", NewVec4f(1, 0, 0, 7).Transform(q).Elements(), 0, 1, 0, 7)
}

func TestTransformNil(t *testing.T) {
	v := NewVec3f(1, 2, 3)
	v.Transform(nil)
	var m *Mat4f
	v.Transform(m)
	var q *Quat
	v.Transform(q)
	assertElems(t, "unchanged", v.Elements(), 1, 2, 3)

	c := v.Transformed(nil)
	if c == v {
		t.Error("Transformed should return a copy")
	}
}

func TestTransformedLeavesReceiver(t *testing.T) {
	v := NewVec3f(1, 0, 0)
	_ = v.Transformed(Scaling(NewVec3f(3, 3, 3)))
	assertElems(t, "receiver", v.Elements(), 1, 0, 0)
}

func TestRandomVectors(t *testing.T) {
	SetRandSource(rand.New(rand.NewPCG(1, 2)))
	defer SetRandSource(nil)

	for i := 0; i < 20; i++ {
		assertNear(t, "RandomVec2 length", RandomVec2[float32](2).Length(), 2)
		assertNear(t, "RandomVec3 length", RandomVec3[float32](3).Length(), 3)
		assertNear(t, "RandomVec4 length", RandomVec4[float32](1).Length(), 1)
	}

	SetRandSource(rand.New(rand.NewPCG(7, 7)))
	a := RandomVec3[float32](1)
	SetRandSource(rand.New(rand.NewPCG(7, 7)))
	b := RandomVec3[float32](1)
	if !a.ExactEquals(b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func TestVecString(t *testing.T) {
	if got := NewVec3f(1, 2.5, -3).String(); got != "1.00, 2.50, -3.00" {
		t.Errorf("String = %q", got)
	}
	if got := Vec2Of[int32](1, -2).String(); got != "1.00, -2.00" {
		t.Errorf("int String = %q", got)
	}
	if got := NewVec4f(math32.Pi, 0, 0, 1).Text(4); got != "3.1416, 0.0000, 0.0000, 1.0000" {
		t.Errorf("Text(4) = %q", got)
	}
}
