// Package shade implements the procedural surface materials planets are drawn
// with. Every material is a pure function of the surface normal, the light
// intensity and elapsed time.
package shade

import "github.com/taigrr/orrery/pkg/math3d"

// Material is one of the closed set of surface variants below.
// Each variant carries only its own palette and tuning.
type Material interface {
	material()
}

// Sun is a self-lit pulsing core fading into a corona.
type Sun struct {
	Core, Corona math3d.Color
	PulseRate    float32
}

// Earth is ocean and land under a drifting cloud layer.
type Earth struct {
	Ocean, Land, Cloud math3d.Color
	CloudSpeed         float32
}

// GasGiant is a banded atmosphere disturbed by turbulence.
type GasGiant struct {
	Light, Dark math3d.Color
	Bands       float32
	Drift       float32
}

// Ice is a frosted two-tone surface.
type Ice struct {
	Frost, Shadow math3d.Color
}

// Desert is a sand and rock two-tone surface.
type Desert struct {
	Sand, Rock math3d.Color
}

// Lava is a dark crust over hot rock with a pulsing glow.
type Lava struct {
	Crust, Hot, Glow math3d.Color
	PulseRate        float32
}

// Purple is a sine-banded two-tone surface.
type Purple struct {
	Light, Dark math3d.Color
	Bands       float32
}

// Moon is grey rock with fractal craters.
type Moon struct {
	Highland, Crater math3d.Color
}

func (Sun) material()      {}
func (Earth) material()    {}
func (GasGiant) material() {}
func (Ice) material()      {}
func (Desert) material()   {}
func (Lava) material()     {}
func (Purple) material()   {}
func (Moon) material()     {}

// Default palettes.
var (
	DefaultSun = Sun{
		Core:      math3d.RGB(255, 250, 210),
		Corona:    math3d.RGB(255, 140, 20),
		PulseRate: 2,
	}
	DefaultEarth = Earth{
		Ocean:      math3d.RGB(20, 60, 160),
		Land:       math3d.RGB(40, 140, 60),
		Cloud:      math3d.RGB(240, 240, 245),
		CloudSpeed: 0.1,
	}
	DefaultGasGiant = GasGiant{
		Light: math3d.RGB(220, 180, 130),
		Dark:  math3d.RGB(150, 90, 50),
		Bands: 12,
		Drift: 0.5,
	}
	DefaultIce = Ice{
		Frost:  math3d.RGB(215, 235, 255),
		Shadow: math3d.RGB(110, 160, 215),
	}
	DefaultDesert = Desert{
		Sand: math3d.RGB(230, 190, 120),
		Rock: math3d.RGB(160, 100, 55),
	}
	DefaultLava = Lava{
		Crust:     math3d.RGB(50, 10, 5),
		Hot:       math3d.RGB(220, 70, 10),
		Glow:      math3d.RGB(255, 220, 90),
		PulseRate: 3,
	}
	DefaultPurple = Purple{
		Light: math3d.RGB(170, 80, 220),
		Dark:  math3d.RGB(70, 20, 110),
		Bands: 8,
	}
	DefaultMoon = Moon{
		Highland: math3d.RGB(175, 175, 170),
		Crater:   math3d.RGB(85, 85, 90),
	}
)

// Name returns a short human-readable name for the material.
func Name(m Material) string {
	switch m.(type) {
	case Sun:
		return "star"
	case Earth:
		return "terrestrial"
	case GasGiant:
		return "gas giant"
	case Ice:
		return "ice"
	case Desert:
		return "desert"
	case Lava:
		return "lava"
	case Purple:
		return "banded"
	case Moon:
		return "rock"
	default:
		return "unknown"
	}
}
