package shade

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/orrery/pkg/math3d"
	"github.com/taigrr/orrery/pkg/noise"
)

// Floor returns the minimum light intensity the material is rendered with.
// The sun is self-lit, so its floor is full brightness.
func Floor(m Material) float32 {
	switch m.(type) {
	case Sun:
		return 1
	case Lava:
		return 0.3
	case GasGiant, Ice:
		return 0.2
	case Earth, Desert:
		return 0.15
	default:
		return 0.1
	}
}

// Shade colors a surface point. normal is the unit surface normal in the
// body's rotating frame, light the clamped lambert term, t elapsed seconds.
// The result is scaled by max(light, Floor(m)).
func Shade(m Material, normal math3d.Vec3, light, t float32) math3d.Color {
	intensity := math32.Max(light, Floor(m))

	var c math3d.Color
	switch m := m.(type) {
	case Sun:
		c = sun(m, normal, t)
	case Earth:
		c = earth(m, normal, t)
	case GasGiant:
		c = gasGiant(m, normal, t)
	case Ice:
		c = twoTone(m.Frost, m.Shadow, normal, 4, 3)
	case Desert:
		c = twoTone(m.Sand, m.Rock, normal, 2.5, 3)
	case Lava:
		c = lava(m, normal, t)
	case Purple:
		c = purple(m, normal)
	case Moon:
		c = moon(m, normal)
	default:
		c = math3d.RGB(255, 0, 255)
	}
	return c.Mul(intensity)
}

func sun(m Sun, n math3d.Vec3, t float32) math3d.Color {
	glow := math32.Sin(t*m.PulseRate+n.Y*4)*0.5 + 0.5
	return m.Core.Lerp(m.Corona, math32.Abs(n.Y)*0.6+glow*0.4)
}

func earth(m Earth, n math3d.Vec3, t float32) math3d.Color {
	c := m.Ocean
	if noise.FBM(n.Scale(3), 3) > 0.05 {
		c = m.Land
	}
	drift := math3d.V3(t*m.CloudSpeed, 0, t*m.CloudSpeed*0.5)
	clouds := noise.FBM(n.Scale(5).Add(drift), 8)
	if clouds > 0.15 {
		c = c.Lerp(m.Cloud, (clouds-0.15)*2.5)
	}
	return c
}

func gasGiant(m GasGiant, n math3d.Vec3, t float32) math3d.Color {
	turbulence := noise.FBM(n.Scale(4), 2)
	band := math32.Sin(n.Y*m.Bands+t*m.Drift+turbulence*2)*0.5 + 0.5
	return m.Light.Lerp(m.Dark, band)
}

func twoTone(a, b math3d.Color, n math3d.Vec3, frequency float32, octaves int) math3d.Color {
	f := noise.FBM(n.Scale(frequency), octaves)
	return a.Lerp(b, f*0.5+0.5)
}

func lava(m Lava, n math3d.Vec3, t float32) math3d.Color {
	pattern := noise.FBM(n.Scale(3), 3)*0.5 + 0.5
	c := m.Crust.Lerp(m.Hot, pattern)
	pulse := (math32.Sin(t*m.PulseRate+pattern*10)*0.5 + 0.5) * pattern
	return c.Lerp(m.Glow, pulse*0.6)
}

func purple(m Purple, n math3d.Vec3) math3d.Color {
	band := math32.Sin(n.Y*m.Bands+n.X*3)*0.5 + 0.5
	return m.Light.Lerp(m.Dark, band)
}

func moon(m Moon, n math3d.Vec3) math3d.Color {
	craters := noise.FBM(n.Scale(6), 4)
	return m.Highland.Lerp(m.Crater, craters*0.5+0.5)
}
