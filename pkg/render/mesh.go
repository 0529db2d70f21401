package render

import "github.com/taigrr/orrery/pkg/math3d"

// MeshRenderer is the read-only view of a polygon mesh that edge drawing needs.
// models.Mesh implements it; the interface keeps render free of model loading.
type MeshRenderer interface {
	VertexCount() int
	FaceCount() int
	GetVertex(i int) math3d.Vec3
	GetFace(i int) []int
}

// FitTransform centers the box [lo, hi] on a width×height screen and scales
// its largest dimension to fill times the shorter screen side. Y is flipped
// so model up is screen up.
func FitTransform(lo, hi math3d.Vec3, width, height int, fill float32) math3d.Mat4 {
	size := hi.Sub(lo)
	extent := max(size.X, size.Y, size.Z)
	scale := float32(1)
	if extent > 0 {
		scale = float32(min(width, height)) * fill / extent
	}
	center := lo.Add(hi).Scale(0.5)

	return math3d.Translate(math3d.V3(float32(width)/2, float32(height)/2, 0)).
		Mul(math3d.Scale(math3d.V3(scale, -scale, scale))).
		Mul(math3d.Translate(center.Negate()))
}

// DrawMeshEdges draws the outline of every triangle in mesh after applying
// transform, which must already map into screen pixels. Polygons are split
// into a fan around their first vertex. Faces with out-of-range indices are
// skipped. It returns the number of triangles drawn.
func DrawMeshEdges(fb *Framebuffer, mesh MeshRenderer, transform math3d.Mat4, c math3d.Color) int {
	n := mesh.VertexCount()
	screen := make([][2]int, n)
	for i := range n {
		p := transform.MulVec3(mesh.GetVertex(i))
		screen[i] = [2]int{int(p.X), int(p.Y)}
	}

	drawn := 0
	for f := range mesh.FaceCount() {
		face := mesh.GetFace(f)
		if !validFace(face, n) {
			continue
		}
		for i := 1; i+1 < len(face); i++ {
			a, b, d := screen[face[0]], screen[face[i]], screen[face[i+1]]
			fb.DrawLine(a[0], a[1], b[0], b[1], c)
			fb.DrawLine(b[0], b[1], d[0], d[1], c)
			fb.DrawLine(d[0], d[1], a[0], a[1], c)
			drawn++
		}
	}
	return drawn
}

func validFace(face []int, n int) bool {
	if len(face) < 3 {
		return false
	}
	for _, idx := range face {
		if idx < 0 || idx >= n {
			return false
		}
	}
	return true
}
