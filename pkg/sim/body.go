// Package sim holds the per-frame motion model: orbiting bodies, their moons,
// and the flyable vehicle.
package sim

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/shade"
)

// Body is a celestial object on a circular orbit around the origin.
// Its world position is never stored; it is derived from the orbit each time.
type Body struct {
	Name        string
	OrbitRadius float32
	OrbitSpeed  float32 // radians per second
	SpinSpeed   float32 // radians per second
	OrbitAngle  float32
	SpinAngle   float32
	Radius      float32
	Material    shade.Material
	Moons       []Moon
}

// Moon is a satellite on a circular orbit around its parent body.
type Moon struct {
	OrbitRadius float32
	OrbitSpeed  float32
	OrbitAngle  float32
	Size        float32
}

// Position returns the body's world position in the XZ plane.
func (b *Body) Position() math3d.Vec3 {
	return orbitPoint(math3d.Zero3(), b.OrbitRadius, b.OrbitAngle)
}

// Update advances the orbit and spin, then every moon.
func (b *Body) Update(dt float32) {
	b.OrbitAngle += b.OrbitSpeed * dt
	b.SpinAngle += b.SpinSpeed * dt
	for i := range b.Moons {
		b.Moons[i].Update(dt)
	}
}

// MoonPositions returns the current world position of every moon.
func (b *Body) MoonPositions() []math3d.Vec3 {
	center := b.Position()
	out := make([]math3d.Vec3, len(b.Moons))
	for i := range b.Moons {
		out[i] = b.Moons[i].Position(center)
	}
	return out
}

// Update advances the moon along its orbit.
func (m *Moon) Update(dt float32) {
	m.OrbitAngle += m.OrbitSpeed * dt
}

// Position returns the moon's world position around the given parent center.
func (m *Moon) Position(parent math3d.Vec3) math3d.Vec3 {
	return orbitPoint(parent, m.OrbitRadius, m.OrbitAngle)
}

func orbitPoint(center math3d.Vec3, radius, angle float32) math3d.Vec3 {
	s, c := math32.Sincos(angle)
	return center.Add(math3d.V3(radius*c, 0, radius*s))
}
