// Package hud draws the flythrough's heads-up display: frame rate, a
// spring-smoothed speed gauge and the nearest body.
package hud

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/taigrr/orrery/pkg/scene"
	"github.com/taigrr/orrery/pkg/sim"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Layout of the image overlay, in pixels.
const (
	margin     = 8
	lineHeight = 14
	gaugeWidth = 120
	gaugeTall  = 6
	gaugeCells = 20
)

var (
	slow = colorful.Color{R: 0.24, G: 0.71, B: 1.0}
	fast = colorful.Color{R: 1.0, G: 0.35, B: 0.2}

	textColor  = color.RGBA{0xe0, 0xe0, 0xe0, 0xff}
	panelColor = color.RGBA{0x00, 0x00, 0x00, 0xff}
	trackColor = color.RGBA{0x30, 0x30, 0x38, 0xff}
)

// HUD holds display state that persists between frames.
type HUD struct {
	Visible bool

	fps       float64
	fpsFrames int
	fpsTime   time.Time

	gauge    float64
	gaugeVel float64
	spring   harmonica.Spring
}

// New creates a visible HUD whose gauge spring is tuned for the given frame
// rate.
func New(fps int) *HUD {
	return &HUD{
		Visible: true,
		// Critically damped: the needle settles without overshooting.
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
	}
}

// Toggle shows or hides the overlay.
func (h *HUD) Toggle() {
	h.Visible = !h.Visible
}

// Tick records one presented frame at now and eases the gauge toward the
// vehicle's speed.
func (h *HUD) Tick(now time.Time, speed float32) {
	if h.fpsTime.IsZero() {
		h.fpsTime = now
	}
	h.fpsFrames++
	if elapsed := now.Sub(h.fpsTime); elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = now
	}

	target := min(max(float64(speed)/sim.MaxSpeed, 0), 1)
	h.gauge, h.gaugeVel = h.spring.Update(h.gauge, h.gaugeVel, target)
}

// FPS returns the frame rate measured over the last full second.
func (h *HUD) FPS() float64 {
	return h.fps
}

// Gauge returns the smoothed speed as a fraction of sim.MaxSpeed, clamped to
// [0, 1].
func (h *HUD) Gauge() float64 {
	return min(max(h.gauge, 0), 1)
}

// GaugeColor blends from cool to hot as the gauge fills.
func (h *HUD) GaugeColor() colorful.Color {
	return slow.BlendHcl(fast, h.Gauge()).Clamped()
}

// Lines formats the text rows of the display.
func (h *HUD) Lines(st scene.Stats) []string {
	lines := []string{
		fmt.Sprintf("%.0f FPS", h.fps),
		fmt.Sprintf("speed %.2f", st.Speed),
	}
	if st.Nearest != "" {
		lines = append(lines, fmt.Sprintf("%s (%s) %.1f", st.Nearest, st.NearestKind, st.NearestDistance))
	}
	lines = append(lines,
		fmt.Sprintf("pos %.1f %.1f %.1f", st.Position.X, st.Position.Y, st.Position.Z),
		fmt.Sprintf("bodies %d culled %d warps %d", st.Raster.SpheresDrawn, st.Raster.SpheresCulled, st.Warps),
	)
	return lines
}

// Draw renders the overlay onto dst, typically the RGBA view of the frame.
func (h *HUD) Draw(dst draw.Image, st scene.Stats) {
	if !h.Visible {
		return
	}

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(textColor),
		Face: basicfont.Face7x13,
	}
	lines := h.Lines(st)
	for i, line := range lines {
		d.Dot = fixed.P(margin, margin+lineHeight*(i+1))
		d.DrawString(line)
	}

	y := margin + lineHeight*len(lines) + 4
	track := image.Rect(margin, y, margin+gaugeWidth, y+gaugeTall)
	draw.Draw(dst, track, image.NewUniform(trackColor), image.Point{}, draw.Src)

	fill := track
	fill.Max.X = fill.Min.X + int(h.Gauge()*gaugeWidth)
	draw.Draw(dst, fill, image.NewUniform(h.GaugeColor()), image.Point{}, draw.Src)
}

// DrawCells writes the overlay as text cells in the top-left corner of area,
// for terminals where the frame itself is too coarse to carry text.
func (h *HUD) DrawCells(scr uv.Screen, area uv.Rectangle, st scene.Stats) {
	if !h.Visible {
		return
	}

	text := uv.Style{Fg: textColor, Bg: panelColor}
	row := area.Min.Y
	for _, line := range h.Lines(st) {
		if row >= area.Max.Y {
			return
		}
		col := area.Min.X
		for _, r := range line {
			if col >= area.Max.X {
				break
			}
			scr.SetCell(col, row, &uv.Cell{Content: string(r), Width: 1, Style: text})
			col++
		}
		row++
	}
	if row >= area.Max.Y {
		return
	}

	filled := int(h.Gauge() * gaugeCells)
	bar := uv.Style{Fg: h.GaugeColor(), Bg: panelColor}
	track := uv.Style{Fg: trackColor, Bg: panelColor}
	for i := 0; i < gaugeCells && area.Min.X+i < area.Max.X; i++ {
		cell := &uv.Cell{Content: "░", Width: 1, Style: track}
		if i < filled {
			cell = &uv.Cell{Content: "█", Width: 1, Style: bar}
		}
		scr.SetCell(area.Min.X+i, row, cell)
	}
}
