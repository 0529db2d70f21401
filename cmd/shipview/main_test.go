package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taigrr/orrery/internal/config"
	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/models"
)

const triangleOBJ = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

func writeModel(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestRunWritesPPM(t *testing.T) {
	model := writeModel(t, "ship.obj", triangleOBJ)
	out := filepath.Join(t.TempDir(), "out.ppm")
	var logs bytes.Buffer

	err := run([]string{"--width=40", "--height=30", "-o", out, model}, &logs)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "P3\n40 30\n255\n"))
	assert.Contains(t, string(data), "255 255 0 ", "edges are yellow")
	assert.Contains(t, logs.String(), "image saved")
}

func TestRunWritesPNG(t *testing.T) {
	model := writeModel(t, "ship.obj", triangleOBJ)
	out := filepath.Join(t.TempDir(), "out.png")

	require.NoError(t, run([]string{"--png", "--width=40", "--height=30", "-o", out, model}, &bytes.Buffer{}))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"missing model", []string{filepath.Join(t.TempDir(), "missing.obj")}},
		{"unknown format", []string{writeModel(t, "ship.stl", "solid")}},
		{"no model", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, run(tc.args, &bytes.Buffer{}))
		})
	}
}

func TestRenderStillFitsModel(t *testing.T) {
	mesh, err := models.ParseOBJ(strings.NewReader(triangleOBJ))
	require.NoError(t, err)
	cfg := config.Batch{Width: 800, Height: 600, Fill: 0.6, Color: "255,255,0"}

	fb, drawn, err := renderStill(mesh, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, drawn)

	// 0.6 * 600 = 360 pixels across, centered; y is flipped.
	yellow := math3d.RGB(255, 255, 0)
	assert.Equal(t, yellow, fb.GetPixel(220, 480), "bottom-left corner")
	assert.Equal(t, yellow, fb.GetPixel(580, 480), "bottom-right corner")
	assert.Equal(t, yellow, fb.GetPixel(220, 120), "top corner")
	assert.Equal(t, math3d.RGB(0, 0, 0), fb.GetPixel(300, 400), "interior stays empty")
}

func TestRenderStillMaterialColor(t *testing.T) {
	mesh, err := models.ParseOBJ(strings.NewReader(triangleOBJ))
	require.NoError(t, err)
	mesh.Materials = []models.Material{{Name: "hull", BaseColor: math3d.RGB(10, 200, 30)}}
	cfg := config.Batch{Width: 80, Height: 60, Fill: 0.6, Color: "255,255,0", Material: true}

	fb, _, err := renderStill(mesh, cfg)
	require.NoError(t, err)

	lit := 0
	for y := range fb.Height {
		for x := range fb.Width {
			if fb.GetPixel(x, y) == math3d.RGB(10, 200, 30) {
				lit++
			}
		}
	}
	assert.Positive(t, lit)
}
