package render

import (
	"testing"

	"github.com/taigrr/orrery/pkg/math3d"
)

// mockMesh implements MeshRenderer for testing.
type mockMesh struct {
	vertices []math3d.Vec3
	faces    [][]int
}

func (m *mockMesh) VertexCount() int            { return len(m.vertices) }
func (m *mockMesh) FaceCount() int              { return len(m.faces) }
func (m *mockMesh) GetVertex(i int) math3d.Vec3 { return m.vertices[i] }
func (m *mockMesh) GetFace(i int) []int         { return m.faces[i] }

func TestFitTransform(t *testing.T) {
	lo, hi := math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1)
	m := FitTransform(lo, hi, 800, 600, 0.6)

	tests := []struct {
		in, want math3d.Vec3
	}{
		{math3d.V3(0, 0, 0), math3d.V3(400, 300, 0)},
		{math3d.V3(1, 1, 0), math3d.V3(580, 120, 0)},
		{math3d.V3(-1, -1, 0), math3d.V3(220, 480, 0)},
	}
	for _, tc := range tests {
		if got := m.MulVec3(tc.in); !nearVec(got, tc.want) {
			t.Errorf("MulVec3(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFitTransformDegenerate(t *testing.T) {
	p := math3d.V3(3, 3, 3)
	m := FitTransform(p, p, 800, 600, 0.6)

	if got := m.MulVec3(p); !nearVec(got, math3d.V3(400, 300, 0)) {
		t.Errorf("single point maps to %v, want screen center", got)
	}
}

func TestDrawMeshEdges(t *testing.T) {
	mesh := &mockMesh{
		vertices: []math3d.Vec3{
			{X: 10, Y: 10}, {X: 50, Y: 10}, {X: 50, Y: 50}, {X: 10, Y: 50},
		},
		faces: [][]int{
			{0, 1, 2, 3}, // quad, fanned into two triangles
			{0, 1, 9},    // bad index
			{0, 1},       // not a polygon
		},
	}
	fb := NewFramebuffer(64, 64)
	yellow := math3d.RGB(255, 255, 0)

	if got := DrawMeshEdges(fb, mesh, math3d.Identity(), yellow); got != 2 {
		t.Errorf("triangles drawn = %d, want 2", got)
	}
	for _, p := range [][2]int{{10, 10}, {50, 10}, {50, 50}, {10, 50}, {30, 30}} {
		if fb.GetPixel(p[0], p[1]) != yellow {
			t.Errorf("pixel %v not drawn", p)
		}
	}
	if fb.GetPixel(30, 12) != (math3d.Color{}) {
		t.Error("triangle interior should stay empty")
	}
}
