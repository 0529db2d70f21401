package sim

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/shade"
)

// A warp parks the craft warpRadii planet radii plus warpMargin units from the
// planet center, lifted by warpLift radii.
const (
	warpRadii  = 3
	warpMargin = 6
	warpLift   = 0.5
)

// System is the sun and the planets orbiting it. Bodies[0] is the sun.
type System struct {
	Bodies []Body
}

// DefaultSystem returns the sun plus seven planets, one per warp key.
func DefaultSystem() *System {
	return &System{Bodies: []Body{
		{Name: "Sol", Radius: 4, SpinSpeed: 0.05, Material: shade.DefaultSun},
		{Name: "Cinder", OrbitRadius: 12, OrbitSpeed: 0.30, SpinSpeed: 0.4, Radius: 1.0, Material: shade.DefaultLava, OrbitAngle: 0.5},
		{Name: "Dune", OrbitRadius: 19, OrbitSpeed: 0.22, SpinSpeed: 0.3, Radius: 1.4, Material: shade.DefaultDesert, OrbitAngle: 2.1},
		{
			Name: "Terra", OrbitRadius: 27, OrbitSpeed: 0.16, SpinSpeed: 0.5, Radius: 1.8, Material: shade.DefaultEarth, OrbitAngle: 4.0,
			Moons: []Moon{{OrbitRadius: 3.5, OrbitSpeed: 0.9, Size: 0.45}},
		},
		{Name: "Amethyst", OrbitRadius: 36, OrbitSpeed: 0.12, SpinSpeed: 0.35, Radius: 1.6, Material: shade.DefaultPurple, OrbitAngle: 1.2},
		{
			Name: "Jovian", OrbitRadius: 50, OrbitSpeed: 0.08, SpinSpeed: 0.8, Radius: 4.5, Material: shade.DefaultGasGiant, OrbitAngle: 3.3,
			Moons: []Moon{
				{OrbitRadius: 7, OrbitSpeed: 0.7, Size: 0.6},
				{OrbitRadius: 9.5, OrbitSpeed: 0.45, OrbitAngle: 2.5, Size: 0.8},
			},
		},
		{
			Name: "Rime", OrbitRadius: 66, OrbitSpeed: 0.05, SpinSpeed: 0.25, Radius: 2.4, Material: shade.DefaultIce, OrbitAngle: 5.2,
			Moons: []Moon{{OrbitRadius: 4.5, OrbitSpeed: 0.6, Size: 0.5}},
		},
		{Name: "Husk", OrbitRadius: 80, OrbitSpeed: 0.035, SpinSpeed: 0.15, Radius: 1.1, Material: shade.DefaultMoon, OrbitAngle: 0.9},
	}}
}

// Update advances every body.
func (s *System) Update(dt float32) {
	for i := range s.Bodies {
		s.Bodies[i].Update(dt)
	}
}

// Planets returns the number of warp targets (every body except the sun).
func (s *System) Planets() int {
	return max(len(s.Bodies)-1, 0)
}

// WarpTarget returns a parking spot beside planet n (1-based) together with the
// yaw and pitch that face it. The spot is offset along the orbit tangent so the
// planet is seen half lit and the path never crosses the sun.
func (s *System) WarpTarget(n int) (pos math3d.Vec3, yaw, pitch float32, ok bool) {
	if n < 1 || n >= len(s.Bodies) {
		return math3d.Vec3{}, 0, 0, false
	}
	b := &s.Bodies[n]
	center := b.Position()

	tangent := math3d.Up().Cross(center).Normalize()
	pos = center.
		Add(tangent.Scale(b.Radius*warpRadii + warpMargin)).
		Add(math3d.V3(0, b.Radius*warpLift, 0))

	dir := center.Sub(pos).Normalize()
	yaw = math32.Atan2(dir.X, dir.Z)
	pitch = math3d.Clamp(math32.Asin(dir.Y), -MaxPitch, MaxPitch)
	return pos, yaw, pitch, true
}

// Nearest returns the index of the body whose surface is closest to p and the
// distance to that surface.
func (s *System) Nearest(p math3d.Vec3) (int, float32) {
	best, bestDist := -1, math32.Inf(1)
	for i := range s.Bodies {
		d := p.Distance(s.Bodies[i].Position()) - s.Bodies[i].Radius
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}
