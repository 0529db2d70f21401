package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/orrery/pkg/math3d"
)

func cube() *Mesh {
	m := NewMesh("cube")
	for _, z := range []float32{-1, 1} {
		m.AddVertex(math3d.V3(-1, -1, z))
		m.AddVertex(math3d.V3(1, -1, z))
		m.AddVertex(math3d.V3(1, 1, z))
		m.AddVertex(math3d.V3(-1, 1, z))
	}
	m.AddFace(0, 1, 2, 3)
	m.AddFace(4, 5, 6, 7)
	m.AddFace(0, 1, 5, 4)
	m.AddFace(2, 3, 7, 6)
	m.AddFace(0, 3, 7, 4)
	m.AddFace(1, 2, 6, 5)
	m.CalculateBounds()
	return m
}

func TestMeshCounts(t *testing.T) {
	m := cube()

	assert.Equal(t, 8, m.VertexCount())
	assert.Equal(t, 6, m.FaceCount())
	assert.Equal(t, 12, m.TriangleCount())
	assert.NoError(t, m.Validate())
}

func TestMeshValidate(t *testing.T) {
	tests := []struct {
		name string
		face []int
	}{
		{"too few vertices", []int{0, 1}},
		{"index past end", []int{0, 1, 8}},
		{"negative index", []int{-1, 0, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := cube()
			m.AddFace(tc.face...)
			require.Error(t, m.Validate())
		})
	}
}

func TestMeshBaseColor(t *testing.T) {
	m := cube()
	yellow := math3d.RGB(255, 255, 0)
	assert.Equal(t, yellow, m.BaseColor(yellow))

	m.Materials = []Material{{BaseColor: math3d.RGB(10, 20, 30)}}
	assert.Equal(t, math3d.RGB(10, 20, 30), m.BaseColor(yellow))
}

func TestEmptyMeshBounds(t *testing.T) {
	m := NewMesh("empty")
	m.CalculateBounds()

	assert.Equal(t, math3d.Vec3{}, m.Size())
	assert.Zero(t, m.TriangleCount())
}
