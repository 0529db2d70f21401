package sim

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/taigrr/orrery/pkg/math3d"
)

const tol = 1e-4

func TestBodyPositionDerivedFromOrbit(t *testing.T) {
	b := Body{OrbitRadius: 20, OrbitSpeed: 0.3}

	p := b.Position()
	assert.InDelta(t, 20, p.X, tol)
	assert.InDelta(t, 0, p.Y, tol)
	assert.InDelta(t, 0, p.Z, tol)

	b.Update(1.0)

	assert.InDelta(t, 0.3, b.OrbitAngle, tol)
	p = b.Position()
	assert.InDelta(t, 20*math32.Cos(0.3), p.X, tol)
	assert.InDelta(t, 0, p.Y, tol)
	assert.InDelta(t, 20*math32.Sin(0.3), p.Z, tol)
	assert.InDelta(t, 19.10, p.X, 0.01)
	assert.InDelta(t, 5.91, p.Z, 0.01)
}

func TestBodySpin(t *testing.T) {
	b := Body{SpinSpeed: 0.5}
	b.Update(0.5)
	b.Update(0.5)
	assert.InDelta(t, 0.5, b.SpinAngle, tol)
}

func TestMoonFollowsUpdatedParent(t *testing.T) {
	b := Body{
		OrbitRadius: 10,
		OrbitSpeed:  math32.Pi / 2,
		Moons:       []Moon{{OrbitRadius: 2, OrbitSpeed: math32.Pi}},
	}

	b.Update(1)

	parent := b.Position()
	assert.InDelta(t, 0, parent.X, tol)
	assert.InDelta(t, 10, parent.Z, tol)

	moons := b.MoonPositions()
	if assert.Len(t, moons, 1) {
		// moon angle π puts it on the -X side of the parent
		assert.InDelta(t, -2, moons[0].X, tol)
		assert.InDelta(t, 10, moons[0].Z, tol)
	}
}

func TestSystemWarpTargets(t *testing.T) {
	s := DefaultSystem()
	assert.Equal(t, 7, s.Planets())

	for n := 1; n <= s.Planets(); n++ {
		pos, yaw, pitch, ok := s.WarpTarget(n)
		if !assert.True(t, ok, "planet %d", n) {
			continue
		}
		assert.False(t, Collides(pos, s.Bodies), "warp %d lands inside a body", n)

		facing := math3d.Heading(yaw, pitch)
		toPlanet := s.Bodies[n].Position().Sub(pos).Normalize()
		assert.Greater(t, facing.Dot(toPlanet), float32(0.99), "warp %d does not face the planet", n)
	}

	_, _, _, ok := s.WarpTarget(0)
	assert.False(t, ok, "the sun is not a warp target")
	_, _, _, ok = s.WarpTarget(8)
	assert.False(t, ok)
}

func TestSystemNearest(t *testing.T) {
	s := DefaultSystem()
	idx, dist := s.Nearest(math3d.V3(0, 10, 0))
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 6, dist, tol)
}
