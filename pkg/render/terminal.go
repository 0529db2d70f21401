package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/taigrr/orrery/pkg/math3d"
)

// Draw scales the framebuffer onto the terminal cells in area. Each cell shows
// two vertically stacked samples using ▀ with fg=top and bg=bottom, so the
// effective resolution is twice as tall as the cell grid. Sampling is nearest
// neighbour.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	cols, rows := area.Dx(), area.Dy()
	if cols <= 0 || rows <= 0 || fb.Width == 0 || fb.Height == 0 {
		return
	}
	subRows := rows * 2

	for row := range rows {
		topY := (row * 2) * fb.Height / subRows
		botY := (row*2 + 1) * fb.Height / subRows

		for col := range cols {
			x := col * fb.Width / cols

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: toColor(fb.GetPixel(x, topY)),
					Bg: toColor(fb.GetPixel(x, botY)),
				},
			}
			scr.SetCell(area.Min.X+col, area.Min.Y+row, cell)
		}
	}
}

func toColor(c math3d.Color) color.Color {
	return color.RGBA{c.R, c.G, c.B, 0xff}
}
