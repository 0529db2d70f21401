// Package models loads polygon meshes for the still-image model viewer.
package models

import (
	"fmt"

	"github.com/taigrr/orrery/pkg/math3d"
)

// Mesh is an indexed polygon mesh.
type Mesh struct {
	Name      string
	Vertices  []math3d.Vec3
	Faces     []Face
	Materials []Material

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// Face is a polygon with three or more vertex indices.
type Face struct {
	V        []int // Indices into Mesh.Vertices
	Material int   // Index into Mesh.Materials (-1 for no material)
}

// Material is the flat base color of a glTF material.
type Material struct {
	Name      string
	BaseColor math3d.Color
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(v math3d.Vec3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddFace appends a polygon without a material.
func (m *Mesh) AddFace(indices ...int) {
	m.Faces = append(m.Faces, Face{V: indices, Material: -1})
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Vec3{}, math3d.Vec3{}
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices)
}

// FaceCount returns the number of polygons.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// TriangleCount returns the number of triangles after fanning every polygon.
func (m *Mesh) TriangleCount() int {
	n := 0
	for _, f := range m.Faces {
		n += max(len(f.V)-2, 0)
	}
	return n
}

// GetVertex returns vertex i.
// Implements render.MeshRenderer interface.
func (m *Mesh) GetVertex(i int) math3d.Vec3 {
	return m.Vertices[i]
}

// GetFace returns the vertex indices for face i.
// Implements render.MeshRenderer interface.
func (m *Mesh) GetFace(i int) []int {
	return m.Faces[i].V
}

// GetBounds returns the axis-aligned bounding box.
func (m *Mesh) GetBounds() (lo, hi math3d.Vec3) {
	return m.BoundsMin, m.BoundsMax
}

// BaseColor returns the color of the first material, or fallback if the mesh
// has none.
func (m *Mesh) BaseColor(fallback math3d.Color) math3d.Color {
	if len(m.Materials) == 0 {
		return fallback
	}
	return m.Materials[0].BaseColor
}

// Validate reports the first face that is not a polygon or that references a
// missing vertex.
func (m *Mesh) Validate() error {
	for i, f := range m.Faces {
		if len(f.V) < 3 {
			return fmt.Errorf("face %d: %d vertices, need at least 3", i, len(f.V))
		}
		for _, idx := range f.V {
			if idx < 0 || idx >= len(m.Vertices) {
				return fmt.Errorf("face %d: vertex index %d out of range [0, %d)", i, idx, len(m.Vertices))
			}
		}
	}
	return nil
}
