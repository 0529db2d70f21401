// Package render rasterizes the orrery scene on the CPU: depth-tested spheres,
// lines and points into a packed-color framebuffer.
package render

import (
	"bufio"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/chewxy/math32"
	"github.com/taigrr/orrery/pkg/math3d"
)

// Framebuffer holds one frame of packed 0xRRGGBB pixels and a parallel depth
// buffer. Depth values follow a "strictly greater wins" rule: the buffer is
// reset to -Inf and a write succeeds only with a larger value. Callers convert
// camera-space distances with DepthKey so nearer fragments compare larger.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []uint32  // Row-major packed colors
	Depth  []float32 // Row-major depth keys
}

// NewFramebuffer creates a framebuffer with a cleared depth buffer.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
		Depth:  make([]float32, width*height),
	}
	fb.ClearDepth()
	return fb
}

// DepthKey converts a camera-space distance into a depth buffer value. The
// sign flip makes nearer fragments compare larger under "greater wins".
func DepthKey(distance float32) float32 {
	return -distance
}

// Clear fills the color buffer with c.
func (fb *Framebuffer) Clear(c math3d.Color) {
	fill(fb.Pixels, c.Pack())
}

// ClearDepth resets every depth entry to -Inf.
func (fb *Framebuffer) ClearDepth() {
	fill(fb.Depth, math32.Inf(-1))
}

// Reset clears both buffers for a new frame.
func (fb *Framebuffer) Reset(c math3d.Color) {
	fb.Clear(c)
	fb.ClearDepth()
}

// fill uses copy-doubling, which beats a plain loop on large buffers.
func fill[T any](buf []T, v T) {
	if len(buf) == 0 {
		return
	}
	buf[0] = v
	for i := 1; i < len(buf); i *= 2 {
		copy(buf[i:], buf[:i])
	}
}

// InBounds reports whether (x, y) addresses a pixel.
func (fb *Framebuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// SetPixel sets a pixel at (x, y) to the given color.
// Bounds checking is performed.
func (fb *Framebuffer) SetPixel(x, y int, c math3d.Color) {
	if !fb.InBounds(x, y) {
		return
	}
	fb.Pixels[y*fb.Width+x] = c.Pack()
}

// GetPixel returns the color at (x, y), or black if out of bounds.
func (fb *Framebuffer) GetPixel(x, y int) math3d.Color {
	if !fb.InBounds(x, y) {
		return math3d.Color{}
	}
	return math3d.Unpack(fb.Pixels[y*fb.Width+x])
}

// DepthAt returns the stored depth key at (x, y), or -Inf if out of bounds.
func (fb *Framebuffer) DepthAt(x, y int) float32 {
	if !fb.InBounds(x, y) {
		return math32.Inf(-1)
	}
	return fb.Depth[y*fb.Width+x]
}

// DepthTest stores depth at (x, y) and returns true only if it is strictly
// greater than the current value. Out-of-bounds coordinates always fail.
func (fb *Framebuffer) DepthTest(x, y int, depth float32) bool {
	if !fb.InBounds(x, y) {
		return false
	}
	i := y*fb.Width + x
	if depth <= fb.Depth[i] {
		return false
	}
	fb.Depth[i] = depth
	return true
}

// Plot writes a depth-tested pixel.
func (fb *Framebuffer) Plot(x, y int, depth float32, c math3d.Color) bool {
	if !fb.DepthTest(x, y, depth) {
		return false
	}
	fb.Pixels[y*fb.Width+x] = c.Pack()
	return true
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
// It ignores the depth buffer.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c math3d.Color) {
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

	for {
		fb.SetPixel(x0, y0, c)
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
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// CopyRGBA writes the color buffer into dst as 8-bit RGBA, the layout used by
// image.RGBA and ebiten.Image.WritePixels. dst must hold 4*Width*Height bytes.
func (fb *Framebuffer) CopyRGBA(dst []byte) {
	for i, p := range fb.Pixels {
		o := i * 4
		dst[o] = uint8(p >> 16)
		dst[o+1] = uint8(p >> 8)
		dst[o+2] = uint8(p)
		dst[o+3] = 0xff
	}
}

// ToImage converts the framebuffer to a standard Go image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	fb.CopyRGBA(img.Pix)
	return img
}

// SavePNG saves the framebuffer as a PNG file.
func (fb *Framebuffer) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, fb.ToImage())
}

// WritePPM encodes the color buffer as an ASCII (P3) PPM image.
func (fb *Framebuffer) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", fb.Width, fb.Height); err != nil {
		return err
	}
	for _, p := range fb.Pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d ", uint8(p>>16), uint8(p>>8), uint8(p)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// SavePPM writes the framebuffer to path in ASCII PPM format.
func (fb *Framebuffer) SavePPM(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fb.WritePPM(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
