package render

import (
	"github.com/chewxy/math32"
	"github.com/taigrr/orrery/pkg/math3d"
)

// maxScreenCoord bounds projected coordinates before integer conversion.
// Points this far off screen come from geometry grazing the near plane.
const maxScreenCoord = 1 << 15

// pixel floors a projected point to integer screen coordinates.
func pixel(p Projected) (x, y int, ok bool) {
	if math32.Abs(p.X) > maxScreenCoord || math32.Abs(p.Y) > maxScreenCoord {
		return 0, 0, false
	}
	return int(math32.Floor(p.X)), int(math32.Floor(p.Y)), true
}

// DrawDepthLine draws a Bresenham line between two projected points. Depth is
// interpolated linearly by step and each pixel goes through the framebuffer
// depth test, so lines composite against spheres.
func DrawDepthLine(fb *Framebuffer, a, b Projected, c math3d.Color) bool {
	x0, y0, ok := pixel(a)
	if !ok {
		return false
	}
	x1, y1, ok := pixel(b)
	if !ok {
		return false
	}

	d0, d1 := DepthKey(a.Z), DepthKey(b.Z)

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	steps := max(dx, -dy)

	for i := 0; ; i++ {
		t := float32(0)
		if steps > 0 {
			t = float32(i) / float32(steps)
		}
		fb.Plot(x0, y0, d0+(d1-d0)*t, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
	return true
}
