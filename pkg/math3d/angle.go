package math3d

import "github.com/chewxy/math32"

// AngleDifference returns the shortest signed rotation from current to target,
// normalized into (-π, π].
func AngleDifference(target, current float32) float32 {
	d := math32.Mod(target-current, 2*math32.Pi)
	if d > math32.Pi {
		d -= 2 * math32.Pi
	}
	if d <= -math32.Pi {
		d += 2 * math32.Pi
	}
	return d
}

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates between a and b by t without clamping.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// Heading returns the unit direction for a yaw and pitch.
// Yaw 0, pitch 0 faces +Z; positive yaw turns toward +X and positive pitch looks up.
func Heading(yaw, pitch float32) Vec3 {
	sy, cy := math32.Sincos(yaw)
	sp, cp := math32.Sincos(pitch)
	return V3(sy*cp, sp, cy*cp)
}
