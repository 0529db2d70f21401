package render

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/shade"
)

const (
	// CullDistance is the camera distance beyond which spheres are skipped.
	CullDistance = 250

	// OrbitSegments is the number of points plotted per orbit ring.
	OrbitSegments = 150
)

// Rasterizer draws world-space primitives for one camera view. It holds no
// buffers; every draw call takes the target framebuffer explicitly.
type Rasterizer struct {
	Projector Projector
	Time      float32 // Seconds, fed to animated materials
	Stats     RasterStats

	view    View
	frustum Frustum
}

// RasterStats counts work done since the last ResetStats.
type RasterStats struct {
	SpheresDrawn  int
	SpheresCulled int
	Fragments     int
}

// NewRasterizer creates a rasterizer for the given projection.
func NewRasterizer(p Projector, v View) *Rasterizer {
	r := &Rasterizer{Projector: p}
	r.SetView(v)
	return r
}

// SetView moves the camera. Call it whenever the camera changes.
func (r *Rasterizer) SetView(v View) {
	r.view = v
	r.frustum = NewFrustum(r.Projector, v)
}

// View returns the current camera basis.
func (r *Rasterizer) View() View {
	return r.view
}

// Frustum returns the current view volume.
func (r *Rasterizer) Frustum() Frustum {
	return r.frustum
}

// ResetStats clears the counters (call once per frame).
func (r *Rasterizer) ResetStats() {
	r.Stats = RasterStats{}
}

// Project maps a world point through the current view.
func (r *Rasterizer) Project(p math3d.Vec3) (Projected, bool) {
	return r.Projector.ProjectView(p, r.view)
}

// DrawSphere rasterizes a shaded sphere as a depth-tested disc. Surface
// normals are rebuilt per pixel from the disc, so no geometry is involved.
// spin rotates the surface pattern about the vertical axis. The sun is assumed
// to sit at the world origin. It reports whether any pixels were considered.
func (r *Rasterizer) DrawSphere(fb *Framebuffer, center math3d.Vec3, radius, spin float32, m shade.Material) bool {
	p, ok := r.Project(center)
	dist := center.Distance(r.view.Eye)
	if !ok || dist > CullDistance || !r.frustum.IntersectsSphere(center, radius) {
		r.Stats.SpheresCulled++
		return false
	}
	r.Stats.SpheresDrawn++

	sr := r.Projector.ScreenRadius(radius, dist)
	minX, maxX := clampSpan(p.X-sr, p.X+sr, fb.Width)
	minY, maxY := clampSpan(p.Y-sr, p.Y+sr, fb.Height)

	toSun := center.Negate().Normalize()
	width := float32(fb.Width)
	r2 := sr * sr

	for py := minY; py <= maxY; py++ {
		dy := float32(py) - p.Y
		for px := minX; px <= maxX; px++ {
			dx := float32(px) - p.X
			d2 := dx*dx + dy*dy
			if d2 > r2 {
				continue
			}
			sz := math32.Sqrt(r2 - d2)
			if !fb.DepthTest(px, py, DepthKey(p.Z-sz/width)) {
				continue
			}

			local := math3d.V3(dx, -dy, sz).Scale(1 / sr)
			normal := r.view.ToWorld(local).Normalize()
			light := math3d.Clamp(normal.Dot(toSun), 0, 1)
			c := shade.Shade(m, normal.RotateY(spin), light, r.Time)

			fb.Pixels[py*fb.Width+px] = c.Pack()
			r.Stats.Fragments++
		}
	}
	return true
}

// clampSpan returns the integer pixel range covering [lo, hi] clipped to
// [0, size-1]. An empty range has min > max.
func clampSpan(lo, hi float32, size int) (int, int) {
	a := int(math32.Max(math32.Floor(lo), 0))
	b := int(math32.Min(math32.Ceil(hi), float32(size-1)))
	return a, b
}

// DrawLine3D projects both endpoints and draws a depth-tested line between
// them. Lines with an endpoint behind the near plane are skipped.
func (r *Rasterizer) DrawLine3D(fb *Framebuffer, a, b math3d.Vec3, c math3d.Color) bool {
	pa, ok := r.Project(a)
	if !ok {
		return false
	}
	pb, ok := r.Project(b)
	if !ok {
		return false
	}
	return DrawDepthLine(fb, pa, pb, c)
}

// DrawPoint3D plots a single depth-tested pixel at a world position. Points
// outside the view frustum are rejected before projection.
func (r *Rasterizer) DrawPoint3D(fb *Framebuffer, p math3d.Vec3, c math3d.Color) bool {
	if !r.frustum.ContainsPoint(p) {
		return false
	}
	pp, ok := r.Project(p)
	if !ok {
		return false
	}
	x, y, ok := pixel(pp)
	if !ok {
		return false
	}
	return fb.Plot(x, y, DepthKey(pp.Z), c)
}

// DrawOrbit plots a ring of OrbitSegments isolated points in the XZ plane
// around center.
func (r *Rasterizer) DrawOrbit(fb *Framebuffer, center math3d.Vec3, radius float32, c math3d.Color) {
	for i := range OrbitSegments {
		s, co := math32.Sincos(2 * math32.Pi * float32(i) / OrbitSegments)
		r.DrawPoint3D(fb, center.Add(math3d.V3(radius*co, 0, radius*s)), c)
	}
}
