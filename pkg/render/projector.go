package render

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/orrery/pkg/math3d"
)

// Projection defaults.
const (
	DefaultWidth  = 1280
	DefaultHeight = 720
	DefaultFOV    = math32.Pi / 3

	// NearPlane is the camera-space depth at or below which points are rejected.
	NearPlane = 0.1
)

// Projected is a screen-space point with its camera-space depth.
type Projected struct {
	X, Y float32 // Pixels, origin top-left
	Z    float32 // Distance along the view direction
}

// Projector maps world points onto a Width×Height screen with a pinhole
// perspective of vertical field of view FOV.
type Projector struct {
	Width  int
	Height int
	FOV    float32
}

// NewProjector creates a projector with the default field of view.
func NewProjector(width, height int) Projector {
	return Projector{Width: width, Height: height, FOV: DefaultFOV}
}

// Aspect returns Width / Height.
func (p Projector) Aspect() float32 {
	return float32(p.Width) / float32(p.Height)
}

// tanHalfFOV returns tan(FOV/2).
func (p Projector) tanHalfFOV() float32 {
	return math32.Tan(p.FOV / 2)
}

// Project maps point into screen space for a camera at camPos looking along
// forward with the given right vector. It fails for points at or behind the
// near plane.
func (p Projector) Project(point, camPos, forward, right math3d.Vec3) (Projected, bool) {
	up := right.Cross(forward).Normalize()
	rel := point.Sub(camPos)

	z := rel.Dot(forward)
	if z <= NearPlane {
		return Projected{}, false
	}
	x := rel.Dot(right)
	y := rel.Dot(up)

	t := p.tanHalfFOV()
	w := float32(p.Width) / 2
	h := float32(p.Height) / 2
	return Projected{
		X: w * (1 + x/(z*t*p.Aspect())),
		Y: h * (1 - y/(z*t)),
		Z: z,
	}, true
}

// ProjectView is Project using a View's basis.
func (p Projector) ProjectView(point math3d.Vec3, v View) (Projected, bool) {
	return p.Project(point, v.Eye, v.Forward, v.Right)
}

// ScreenRadius returns the on-screen radius in pixels of a sphere of the given
// radius seen from distance.
func (p Projector) ScreenRadius(radius, distance float32) float32 {
	return radius / (distance * p.tanHalfFOV()) * float32(p.Height) / 2
}
