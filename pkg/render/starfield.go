package render

import "github.com/taigrr/orrery/pkg/math3d"

// Starfield defaults.
const (
	DefaultStarCount = 400
	DefaultStarSeed  = 42
)

// Star is a fixed screen-space point.
type Star struct {
	X, Y  int
	Color math3d.Color
}

// Starfield is a stable scatter of background stars. The same seed and screen
// size always produce the same stars.
type Starfield struct {
	Stars []Star
}

// lcg is the classic 32-bit linear congruential generator.
type lcg uint32

func (g *lcg) next() uint32 {
	*g = *g*1103515245 + 12345
	return uint32(*g) >> 8
}

// NewStarfield scatters count stars over a width×height screen.
func NewStarfield(count, width, height int, seed uint32) *Starfield {
	g := lcg(seed)
	stars := make([]Star, 0, count)
	for range count {
		x := int(g.next() % uint32(max(width, 1)))
		y := int(g.next() % uint32(max(height, 1)))
		b := uint8(60 + g.next()%196)
		tint := uint8(min(int(b)+25, 255))
		stars = append(stars, Star{X: x, Y: y, Color: math3d.RGB(b, b, tint)})
	}
	return &Starfield{Stars: stars}
}

// Draw writes the stars' colors without touching the depth buffer, so any
// depth-tested primitive drawn afterwards covers them.
func (s *Starfield) Draw(fb *Framebuffer) {
	for _, st := range s.Stars {
		fb.SetPixel(st.X, st.Y, st.Color)
	}
}
