package vmath

import (
	"math"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestMatDefaults(t *testing.T) {
	assertElems(t, "NewMat2f", NewMat2f().Elements(), 0, 0, 0, 0)
	assertElems(t, "NewMat3f", NewMat3f().Elements(), make([]float32, 9)...)
	assertElems(t, "IdentityMat3", IdentityMat3[int32]().Elements(), 1, 0, 0, 0, 1, 0, 0, 0, 1)

	m := NewMat4f()
	if m.Identity() != m {
		t.Error("Identity should return the receiver")
	}
	if !m.ExactEquals(IdentityMat4[float32]()) {
		t.Errorf("Identity = \n%s", m)
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	m := IdentityMat4[float32]().
		Translate(NewVec3f(1, 2, 3)).
		RotateX(30).
		RotateY(-45).
		Scale(NewVec3f(2, 3, 0.5))

	got := m.Mul(m.Inverse())
	assertElems(t, "m·m⁻¹", got.Elements(), IdentityMat4[float32]().Elements()...)

	inv := m.Clone().Invert()
	assertElems(t, "Invert vs Inverse", inv.Elements(), m.Inverse().Elements()...)

	p := NewVec3f(4, -1, 2)
	assertElems(t, "point round trip", p.Transformed(m).Transform(inv).Elements(), 4, -1, 2)
}

func TestMat4InverseRoundTripRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 17))
	SetRandSource(r)
	defer SetRandSource(nil)

	id := IdentityMat4[float32]().Elements()
	for i := 0; i < 50; i++ {
		s := NewVec3f(0.5+2*r.Float32(), 0.5+2*r.Float32(), 0.5+2*r.Float32())
		m := RotationTranslationScale(RandomQuat(), RandomVec3[float32](5), s)
		if math.Abs(float64(m.Determinant())) < 1e-3 {
			continue
		}
		got := m.Mul(m.Inverse()).Elements()
		for j := range got {
			if math.Abs(float64(got[j]-id[j])) > 1e-4 {
				t.Fatalf("draw %d: m·m⁻¹[%d] = %v, want %v\n%s", i, j, got[j], id[j], m)
			}
		}
	}
}

func TestMat3And2InverseRoundTrip(t *testing.T) {
	m3 := IdentityMat3[float32]().Translate(NewVec2f(3, 4)).Rotate(30).Scale(NewVec2f(2, 5))
	assertElems(t, "mat3 m·m⁻¹", m3.Mul(m3.Inverse()).Elements(), IdentityMat3[float32]().Elements()...)

	m2 := MustMat2[float32](Of(1, 2, 3, 4))
	assertElems(t, "mat2 inverse", m2.Inverse().Elements(), -2, 1, 1.5, -0.5)
	assertElems(t, "mat2 m·m⁻¹", m2.Mul(m2.Inverse()).Elements(), 1, 0, 0, 1)
}

func TestSingularInverse(t *testing.T) {
	zero4 := NewMat4f()
	assertElems(t, "Mat4 Inverse of singular", zero4.Inverse().Elements(), make([]float32, 16)...)

	m := MustMat4[float32](Of(1, 2, 3, 4, 2, 4, 6, 8, 0, 0, 1, 0, 0, 0, 0, 1))
	before := m.Clone()
	m.Invert()
	if !m.ExactEquals(before) {
		t.Errorf("Invert on singular matrix changed it: \n%s", m)
	}

	m3 := MustMat3[float32](Of(1, 2, 3, 2, 4, 6, 0, 0, 1))
	assertElems(t, "Mat3 Inverse of singular", m3.Inverse().Elements(), make([]float32, 9)...)
	if !m3.Clone().Invert().ExactEquals(m3) {
		t.Error("Mat3 Invert on singular matrix should be a no-op")
	}

	m2 := MustMat2[float32](Of(1, 2, 2, 4))
	assertElems(t, "Mat2 Inverse of singular", m2.Inverse().Elements(), 0, 0, 0, 0)
	if !m2.Clone().Invert().ExactEquals(m2) {
		t.Error("Mat2 Invert on singular matrix should be a no-op")
	}
}

func TestSingularInverseWarnsInDebugMode(t *testing.T) {
	SetDebugMode(true)
	defer SetDebugMode(false)

	out := captureStderr(t, func() { NewMat4f().Invert() })
	if !strings.Contains(out, "[vmath] warning") || !strings.Contains(out, "singular mat4f") {
		t.Errorf("expected singular warning, got: %q", out)
	}
}

func TestMulOrder(t *testing.T) {
	tr := Translation(NewVec3f(1, 0, 0))
	sc := Scaling(NewVec3f(2, 2, 2))
	p := NewVec3f(1, 0, 0)

	// A·B applies A first.
	assertElems(t, "translate then scale", p.Transformed(tr.Mul(sc)).Elements(), 4, 0, 0)
	assertElems(t, "scale then translate", p.Transformed(sc.Mul(tr)).Elements(), 3, 0, 0)

	a := tr.Clone()
	if a.MulEq(sc) != a {
		t.Error("MulEq should return the receiver")
	}
	assertElems(t, "MulEq", a.Elements(), tr.Mul(sc).Elements()...)
}

func TestElementaryTransformsPremultiply(t *testing.T) {
	m := IdentityMat4[float32]().Scale(NewVec3f(2, 2, 2))
	m.Translate(NewVec3f(1, 0, 0))

	// The newest transform applies first.
	assertElems(t, "origin", NewVec3f(0, 0, 0).Transform(m).Elements(), 2, 0, 0)

	n := IdentityMat4[float32]().Translate(NewVec3f(1, 0, 0)).RotateZ(90)
	assertElems(t, "rotate then translate", NewVec3f(1, 0, 0).Transform(n).Elements(), 1, 1, 0)

	axis := IdentityMat4[float32]().Rotate(NewVec3f(0, 0, 5), 90)
	assertElems(t, "Rotate about axis", axis.Elements(), IdentityMat4[float32]().RotateZ(90).Elements()...)
}

func TestImmutableTransformForms(t *testing.T) {
	m := IdentityMat4[float32]()
	_ = m.Translated(NewVec3f(1, 2, 3))
	_ = m.RotatedX(45)
	_ = m.Scaled(NewVec3f(2, 2, 2))
	_ = m.Transposed()
	if !m.ExactEquals(IdentityMat4[float32]()) {
		t.Errorf("receiver changed: \n%s", m)
	}

	m3 := IdentityMat3[float32]()
	_ = m3.Rotated(10)
	_ = m3.Translated(NewVec2f(1, 1))
	if !m3.ExactEquals(IdentityMat3[float32]()) {
		t.Errorf("mat3 receiver changed: \n%s", m3)
	}
}

func TestRotateZeroAxisIsNoop(t *testing.T) {
	m := IdentityMat4[float32]().Translate(NewVec3f(1, 2, 3))
	before := m.Clone()
	m.Rotate(NewVec3f(0, 0, 0), 45)
	if !m.ExactEquals(before) {
		t.Errorf("rotation about zero axis changed matrix: \n%s", m)
	}
}

func TestDeterminantAdjointFrob(t *testing.T) {
	m4 := IdentityMat4[float32]().Scale(NewVec3f(2, 3, 4))
	assertNear(t, "det4", m4.Determinant(), 24)
	assertNear(t, "frob identity", IdentityMat4[float32]().Frob(), 2)

	m3 := MustMat3[float32](Of(2, 0, 0, 0, 3, 0, 0, 0, 4))
	assertNear(t, "det3", m3.Determinant(), 24)
	assertElems(t, "adj3", m3.Adjoint().Elements(), 12, 0, 0, 0, 8, 0, 0, 0, 6)

	m2 := MustMat2[float32](Of(1, 2, 3, 4))
	assertNear(t, "det2", m2.Determinant(), -2)
	assertElems(t, "adj2", m2.Adjoint().Elements(), 4, -2, -3, 1)

	// adj(M) = det(M)·M⁻¹
	m := IdentityMat4[float32]().RotateY(30).Translate(NewVec3f(1, 2, 3))
	want := m.Inverse().MulScalar(m.Determinant())
	assertElems(t, "adj4", m.Adjoint().Elements(), want.Elements()...)
}

func TestTranspose(t *testing.T) {
	m := MustMat3[int32](Of(1, 2, 3, 4, 5, 6, 7, 8, 9))
	assertElems(t, "transpose3", m.Transposed().Elements(), 1, 4, 7, 2, 5, 8, 3, 6, 9)

	m2 := MustMat2[float32](Of(1, 2, 3, 4)).Transpose()
	assertElems(t, "transpose2", m2.Elements(), 1, 3, 2, 4)

	m4 := IdentityMat4[float32]().Translate(NewVec3f(1, 2, 3)).Transpose()
	if m4.At(0, 3) != 1 || m4.At(2, 3) != 3 {
		t.Errorf("transpose4 = \n%s", m4)
	}
}

func TestMatArithmetic(t *testing.T) {
	a := IdentityMat2[int32]()
	b := MustMat2[int32](Of(1, 2, 3, 4))
	assertElems(t, "Add", a.Add(b).Elements(), 2, 2, 3, 5)
	assertElems(t, "Sub", b.Sub(a).Elements(), 0, 2, 3, 3)
	assertElems(t, "MulScalar", b.MulScalar(3).Elements(), 3, 6, 9, 12)
	assertElems(t, "Mul", b.Mul(b).Elements(), 7, 10, 15, 22)
	assertElems(t, "receiver", b.Elements(), 1, 2, 3, 4)

	m := IdentityMat4[int32]()
	m.AddEq(IdentityMat4[int32]()).MulScalarEq(2)
	if m.At(3, 3) != 4 {
		t.Errorf("int mat4 = \n%s", m)
	}
}

func TestMat4Decomposition(t *testing.T) {
	q := Mode{Unit: Degrees}.FromAxisAngle(NewVec3f(1, 1, 0), 70)
	m := RotationTranslationScale(q, NewVec3f(-1, 5, 2), NewVec3f(1, 2, 3))

	assertElems(t, "Translation", m.Translation().Elements(), -1, 5, 2)
	assertElems(t, "ScaleFactors", m.ScaleFactors().Elements(), 1, 2, 3)
	if r := m.Rotation(); !r.Equals(q) {
		t.Errorf("Rotation = %v, want %v", r.Elements(), q.Elements())
	}
}

func TestNormalMatrix(t *testing.T) {
	m := Scaling(NewVec3f(2, 4, 8)).Translate(NewVec3f(5, 5, 5))
	assertElems(t, "NormalMatrix", m.NormalMatrix().Elements(), 0.5, 0, 0, 0, 0.25, 0, 0, 0, 0.125)

	assertElems(t, "singular NormalMatrix", NewMat4f().NormalMatrix().Elements(), make([]float32, 9)...)
}

func TestMat3Rotate2D(t *testing.T) {
	m := IdentityMat3[float32]().Rotate(90)
	assertElems(t, "mat3 rotate", NewVec2f(1, 0).Transform(m).Elements(), 0, 1)

	m2 := IdentityMat2[float32]().Rotate(90)
	assertElems(t, "mat2 rotate", NewVec2f(1, 0).Transform(m2).Elements(), 0, 1)
}

func TestMat3FromQuatMatchesQuat(t *testing.T) {
	q := QuatFromEuler(15, -30, 60)
	m := Mat3FromQuat(q)
	v := NewVec3f(1, 2, 3)
	assertElems(t, "mat3 vs quat", v.Transformed(m).Elements(), v.Transformed(q).Elements()...)

	if back := QuatFromMat3(m); !back.Equals(q) {
		t.Errorf("QuatFromMat3 = %v, want %v", back.Elements(), q.Elements())
	}
}

func TestMatString(t *testing.T) {
	if got := IdentityMat2[float32]().String(); got != "1.00, 0.00\n0.00, 1.00" {
		t.Errorf("Mat2 String = %q", got)
	}
	lines := strings.Split(IdentityMat4[int32]().Text(0), "\n")
	if len(lines) != 4 || lines[3] != "0, 0, 0, 1" {
		t.Errorf("Mat4 Text(0) lines = %q", lines)
	}
}
