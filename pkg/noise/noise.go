// Package noise provides the deterministic 3D noise used for procedural planet
// surfaces. It is a shading input only; nothing in the simulation depends on it.
package noise

import (
	"github.com/ojrac/opensimplex-go"
	"github.com/taigrr/orrery/pkg/math3d"
)

// Seed is the lattice seed. Changing it changes every planet surface.
const Seed = 1337

var field = opensimplex.NewNormalized32(Seed)

// Noise3 returns smooth pseudo-random noise in [-1, 1].
// The same coordinates always produce the same value.
func Noise3(x, y, z float32) float32 {
	return field.Eval3(x, y, z)*2 - 1
}

// FBM sums octaves of Noise3, doubling frequency and halving amplitude each
// octave. The result is normalized by the total amplitude so it stays in the
// same range as Noise3. Zero octaves yield 0.
func FBM(p math3d.Vec3, octaves int) float32 {
	var (
		sum       float32
		total     float32
		amplitude float32 = 1
		frequency float32 = 1
	)
	for range octaves {
		sum += amplitude * Noise3(p.X*frequency, p.Y*frequency, p.Z*frequency)
		total += amplitude
		amplitude *= 0.5
		frequency *= 2
	}
	if total == 0 {
		return 0
	}
	return sum / total
}
