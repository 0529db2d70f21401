package render

import "github.com/taigrr/orrery/pkg/math3d"

// Edge joins two wireframe vertices with a color.
type Edge struct {
	A, B  int
	Color math3d.Color
}

// Wireframe is a line model in its own frame: +Z forward, +Y up.
type Wireframe struct {
	Vertices []math3d.Vec3
	Edges    []Edge
}

// Pose places a model in the world. Rotations apply roll, then pitch, then
// yaw.
type Pose struct {
	Position         math3d.Vec3
	Yaw, Pitch, Roll float32
}

// Matrix returns the model-to-world transform.
func (p Pose) Matrix() math3d.Mat4 {
	return math3d.Translate(p.Position).
		Mul(math3d.RotateY(p.Yaw)).
		Mul(math3d.RotateX(-p.Pitch)).
		Mul(math3d.RotateZ(p.Roll))
}

// Apply transforms a model-space point into world space.
func (p Pose) Apply(v math3d.Vec3) math3d.Vec3 {
	return p.Matrix().MulVec3(v)
}

var (
	hullColor   = math3d.RGB(170, 170, 180)
	noseColor   = math3d.RGB(220, 40, 40)
	canopyColor = math3d.RGB(60, 220, 240)
	foilColor   = math3d.RGB(235, 235, 235)
	tipColor    = math3d.RGB(220, 40, 40)
	engineColor = math3d.RGB(255, 150, 30)
)

// foilSides lists the (x, y) signs of the four foils and nacelles.
var foilSides = [4][2]float32{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}

// VehicleWireframe returns the player ship: a boxed fuselage with nose cone
// and canopy, four swept foils and four engine nacelles.
func VehicleWireframe() Wireframe {
	const (
		hw    = 0.15 // Fuselage half width
		hh    = 0.12 // Fuselage half height
		front = 0.6
		back  = -1.0
	)
	v := []math3d.Vec3{
		// Fuselage 0-7
		{X: -hw, Y: -hh, Z: front}, {X: hw, Y: -hh, Z: front},
		{X: hw, Y: hh, Z: front}, {X: -hw, Y: hh, Z: front},
		{X: -hw, Y: -hh, Z: back}, {X: hw, Y: -hh, Z: back},
		{X: hw, Y: hh, Z: back}, {X: -hw, Y: hh, Z: back},
		// Nose 8
		{X: 0, Y: 0, Z: 1.6},
		// Canopy 9-14
		{X: -0.1, Y: hh, Z: 0.4}, {X: 0.1, Y: hh, Z: 0.4},
		{X: 0.1, Y: hh, Z: -0.1}, {X: -0.1, Y: hh, Z: -0.1},
		{X: 0, Y: 0.25, Z: 0.3}, {X: 0, Y: 0.25, Z: 0},
	}
	e := []Edge{
		{0, 1, hullColor}, {1, 2, hullColor}, {2, 3, hullColor}, {3, 0, hullColor},
		{4, 5, hullColor}, {5, 6, hullColor}, {6, 7, hullColor}, {7, 4, hullColor},
		{0, 4, hullColor}, {1, 5, hullColor}, {2, 6, hullColor}, {3, 7, hullColor},

		{8, 0, noseColor}, {8, 1, noseColor}, {8, 2, noseColor}, {8, 3, noseColor},

		{9, 10, canopyColor}, {10, 11, canopyColor}, {11, 12, canopyColor}, {12, 9, canopyColor},
		{13, 14, canopyColor}, {9, 13, canopyColor}, {10, 13, canopyColor},
		{11, 14, canopyColor}, {12, 14, canopyColor},
	}

	// Foils: root front, root back, tip back, tip front.
	for _, s := range foilSides {
		i := len(v)
		v = append(v,
			math3d.V3(s[0]*hw, s[1]*0.06, 0.1),
			math3d.V3(s[0]*hw, s[1]*0.06, -0.7),
			math3d.V3(s[0]*1.2, s[1]*0.45, -0.75),
			math3d.V3(s[0]*1.2, s[1]*0.45, -0.3),
		)
		e = append(e,
			Edge{i, i + 1, foilColor},
			Edge{i + 1, i + 2, foilColor},
			Edge{i + 3, i, foilColor},
			Edge{i + 2, i + 3, tipColor},
		)
	}

	for _, s := range foilSides {
		i := len(v)
		v = append(v,
			math3d.V3(s[0]*0.35, s[1]*0.13, 0),
			math3d.V3(s[0]*0.35, s[1]*0.13, -0.9),
		)
		e = append(e, Edge{i, i + 1, engineColor})
	}

	return Wireframe{Vertices: v, Edges: e}
}

// Radius returns the distance of the farthest vertex from the model origin.
func (w Wireframe) Radius() float32 {
	var r float32
	for _, v := range w.Vertices {
		r = max(r, v.Len())
	}
	return r
}

// DrawWireframe transforms every vertex by pose, projects it and draws each
// edge whose endpoints both project. It returns the number of edges drawn.
func (r *Rasterizer) DrawWireframe(fb *Framebuffer, w Wireframe, pose Pose) int {
	if !r.frustum.IntersectsSphere(pose.Position, w.Radius()) {
		return 0
	}

	model := pose.Matrix()
	projected := make([]Projected, len(w.Vertices))
	visible := make([]bool, len(w.Vertices))
	for i, v := range w.Vertices {
		projected[i], visible[i] = r.Project(model.MulVec3(v))
	}

	drawn := 0
	for _, e := range w.Edges {
		if e.A < 0 || e.A >= len(projected) || e.B < 0 || e.B >= len(projected) {
			continue
		}
		if !visible[e.A] || !visible[e.B] {
			continue
		}
		if DrawDepthLine(fb, projected[e.A], projected[e.B], e.Color) {
			drawn++
		}
	}
	return drawn
}
