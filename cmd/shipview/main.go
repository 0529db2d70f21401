// shipview - Wireframe Still Renderer
// Render the edges of an OBJ or GLB model, orthographically and fitted to the
// frame, into a PPM (or PNG) image.
//
// Usage:
//
//	shipview [options] <model.obj|model.glb>
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/taigrr/orrery/internal/config"
	"github.com/taigrr/orrery/internal/logging"
	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/models"
	"github.com/taigrr/orrery/pkg/render"
)

var background = math3d.RGB(0, 0, 0)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, logOut io.Writer) error {
	cfg, err := config.LoadBatch(args)
	if err != nil {
		if errors.Is(err, config.ErrNoModel) {
			fmt.Fprintf(os.Stderr, "Usage: shipview [options] <model.obj|model.glb>\n")
		}
		return err
	}
	log := logging.ForWriter(logOut, cfg.LogLevel)

	mesh, err := loadModel(cfg.Model)
	if err != nil {
		return fmt.Errorf("load model: %w", err)
	}
	if err := mesh.Validate(); err != nil {
		log.Warn().Err(err).Msg("model has bad faces; they will be skipped")
	}

	log.Info().
		Str("model", mesh.Name).
		Int("vertices", mesh.VertexCount()).
		Int("faces", mesh.FaceCount()).
		Msg("loaded")

	fb, drawn, err := renderStill(mesh, cfg)
	if err != nil {
		return err
	}
	log.Debug().
		Interface("center", mesh.Center()).
		Interface("size", mesh.Size()).
		Int("triangles", drawn).
		Msg("rendered")

	if err := save(fb, cfg); err != nil {
		return err
	}
	log.Info().Str("output", cfg.Output).Msg("image saved")
	return nil
}

func loadModel(path string) (*models.Mesh, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".glb", ".gltf":
		return models.LoadGLB(path)
	case ".obj":
		return models.LoadOBJ(path)
	default:
		return nil, fmt.Errorf("unsupported format: %s (use .obj or .glb)", ext)
	}
}

// renderStill draws mesh's edges centered and scaled into a new framebuffer.
func renderStill(mesh *models.Mesh, cfg config.Batch) (*render.Framebuffer, int, error) {
	edge, err := config.ParseColor(cfg.Color)
	if err != nil {
		return nil, 0, err
	}
	if cfg.Material {
		edge = mesh.BaseColor(edge)
	}

	fb := render.NewFramebuffer(cfg.Width, cfg.Height)
	fb.Clear(background)

	lo, hi := mesh.GetBounds()
	transform := render.FitTransform(lo, hi, cfg.Width, cfg.Height, float32(cfg.Fill))
	drawn := render.DrawMeshEdges(fb, mesh, transform, edge)
	return fb, drawn, nil
}

func save(fb *render.Framebuffer, cfg config.Batch) error {
	if cfg.PNG {
		if err := fb.SavePNG(cfg.Output); err != nil {
			return fmt.Errorf("save png: %w", err)
		}
		return nil
	}
	return fb.SavePPM(cfg.Output)
}
