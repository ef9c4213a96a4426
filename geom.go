package vmath

import "github.com/hajimehoshi/ebiten/v2"

// GeoM returns m as an ebiten.GeoM. m is read as a 2-D affine transform in
// the row-vector layout; its third column is ignored.
func (m *Mat3[T]) GeoM() ebiten.GeoM {
	a := m.f()
	var g ebiten.GeoM
	g.SetElement(0, 0, a[0])
	g.SetElement(1, 0, a[1])
	g.SetElement(0, 1, a[3])
	g.SetElement(1, 1, a[4])
	g.SetElement(0, 2, a[6])
	g.SetElement(1, 2, a[7])
	return g
}

// Mat3FromGeoM returns the 2-D affine Mat3 equivalent to g.
func Mat3FromGeoM(g ebiten.GeoM) *Mat3f {
	return mat3From[float32]([9]float64{
		g.Element(0, 0), g.Element(1, 0), 0,
		g.Element(0, 1), g.Element(1, 1), 0,
		g.Element(0, 2), g.Element(1, 2), 1,
	})
}

// TransformVertices transforms the destination position of every vertex by
// m in place. Source coordinates and colors are untouched.
func TransformVertices(vs []ebiten.Vertex, m *Mat3f) {
	if m == nil {
		return
	}
	a := m.f()
	for i := range vs {
		x, y := float64(vs[i].DstX), float64(vs[i].DstY)
		vs[i].DstX = float32(a[0]*x + a[3]*y + a[6])
		vs[i].DstY = float32(a[1]*x + a[4]*y + a[7])
	}
}

// ProjectVertices writes the screen position of each point into the
// matching vertex: the point is transformed by the view-projection matrix
// mvp, divided by w, and mapped from clip space to a width×height target
// with y pointing down. Points behind the camera keep their previous
// position and are reported as false in the returned visibility slice.
func ProjectVertices(vs []ebiten.Vertex, points []*Vec3f, mvp *Mat4f, width, height int) []bool {
	a := mvp.f()
	visible := make([]bool, len(points))
	hw, hh := float64(width)/2, float64(height)/2
	for i, p := range points {
		if i >= len(vs) {
			break
		}
		e := p.e()
		x, y, z := float64(e[0]), float64(e[1]), float64(e[2])
		w := a[3]*x + a[7]*y + a[11]*z + a[15]
		if w <= 0 {
			continue
		}
		cx := (a[0]*x + a[4]*y + a[8]*z + a[12]) / w
		cy := (a[1]*x + a[5]*y + a[9]*z + a[13]) / w
		vs[i].DstX = float32(hw + cx*hw)
		vs[i].DstY = float32(hh - cy*hh)
		visible[i] = true
	}
	return visible
}
