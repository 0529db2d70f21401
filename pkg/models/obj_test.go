package models

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/orrery/pkg/math3d"
)

func TestParseOBJTriangle(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

	mesh, err := ParseOBJ(strings.NewReader(src))
	require.NoError(t, err)

	require.Len(t, mesh.Vertices, 3)
	require.Len(t, mesh.Faces, 1)
	assert.Equal(t, []int{0, 1, 2}, mesh.Faces[0].V)
	assert.Equal(t, math3d.V3(1, 0, 0), mesh.Vertices[1])
	assert.NoError(t, mesh.Validate())
}

func TestParseOBJFormats(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		verts int
		faces [][]int
	}{
		{
			name:  "slash suffixes",
			src:   "v 0 0 0\nv 1 0 0\nv 1 1 0\nvt 0 0\nvn 0 0 1\nf 1/1/1 2/1/1 3//1\n",
			verts: 3,
			faces: [][]int{{0, 1, 2}},
		},
		{
			name:  "quad",
			src:   "v 0 0 0\nv 1 0 0\nv 1 1 0\nv 0 1 0\nf 1 2 3 4\n",
			verts: 4,
			faces: [][]int{{0, 1, 2, 3}},
		},
		{
			name:  "negative indices",
			src:   "v 0 0 0\nv 1 0 0\nv 1 1 0\nf -3 -2 -1\n",
			verts: 3,
			faces: [][]int{{0, 1, 2}},
		},
		{
			name:  "comments and other records",
			src:   "# ship\no hull\ng body\nusemtl steel\ns off\n\nv 0 0 0\n  v 1 0 0\nv 0 0 1\nf 1 2 3\n",
			verts: 3,
			faces: [][]int{{0, 1, 2}},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mesh, err := ParseOBJ(strings.NewReader(tc.src))
			require.NoError(t, err)
			assert.Len(t, mesh.Vertices, tc.verts)

			got := make([][]int, len(mesh.Faces))
			for i, f := range mesh.Faces {
				got[i] = f.V
			}
			assert.Equal(t, tc.faces, got)
		})
	}
}

func TestParseOBJBadNumbers(t *testing.T) {
	mesh, err := ParseOBJ(strings.NewReader("v 1 nope 3\nv 4 5 6\nv 0 0 1\nf 1 x 2 3\nf bad\n"))
	require.NoError(t, err)

	require.Len(t, mesh.Vertices, 3)
	assert.Equal(t, math3d.V3(1, 0, 3), mesh.Vertices[0])

	require.Len(t, mesh.Faces, 1, "a face with no usable references is dropped")
	assert.Equal(t, []int{0, 1, 2}, mesh.Faces[0].V, "bad references drop out of the face")
	assert.NoError(t, mesh.Validate())
}

func TestParseOBJShortVertexSkipped(t *testing.T) {
	mesh, err := ParseOBJ(strings.NewReader("v 0 0 0\nv 1 2\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"))
	require.NoError(t, err)

	require.Len(t, mesh.Vertices, 3)
	assert.Equal(t, math3d.V3(1, 0, 0), mesh.Vertices[1])
	require.Len(t, mesh.Faces, 1)
	assert.Equal(t, []int{0, 1, 2}, mesh.Faces[0].V)
}

func TestParseOBJBounds(t *testing.T) {
	mesh, err := ParseOBJ(strings.NewReader("v -1 2 0\nv 3 -4 5\nv 0 0 0\n"))
	require.NoError(t, err)

	assert.Equal(t, math3d.V3(-1, -4, 0), mesh.BoundsMin)
	assert.Equal(t, math3d.V3(3, 2, 5), mesh.BoundsMax)
	assert.Equal(t, math3d.V3(1, -1, 2.5), mesh.Center())
	assert.Equal(t, math3d.V3(4, 6, 5), mesh.Size())
}

func TestLoadOBJ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ship.obj")
	require.NoError(t, os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0o644))

	mesh, err := LoadOBJ(path)
	require.NoError(t, err)
	assert.Equal(t, "ship.obj", mesh.Name)
	assert.Equal(t, 1, mesh.TriangleCount())
}

func TestLoadOBJMissing(t *testing.T) {
	_, err := LoadOBJ(filepath.Join(t.TempDir(), "missing.obj"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
