package math3d

// Color is an 8-bit-per-channel RGB color.
type Color struct {
	R, G, B uint8
}

// RGB creates a color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{r, g, b}
}

// RGBf creates a color from normalized channels, clamping each to [0, 1].
func RGBf(r, g, b float32) Color {
	return Color{toByte(r * 255), toByte(g * 255), toByte(b * 255)}
}

// Unpack converts a packed 0xRRGGBB value back into a Color.
func Unpack(p uint32) Color {
	return Color{uint8(p >> 16), uint8(p >> 8), uint8(p)}
}

// Pack returns the color as 0xRRGGBB.
func (c Color) Pack() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Lerp blends from c toward o. t is clamped to [0, 1].
func (c Color) Lerp(o Color, t float32) Color {
	t = Clamp(t, 0, 1)
	return Color{
		toByte(float32(c.R) + (float32(o.R)-float32(c.R))*t),
		toByte(float32(c.G) + (float32(o.G)-float32(c.G))*t),
		toByte(float32(c.B) + (float32(o.B)-float32(c.B))*t),
	}
}

// Mul scales every channel by f and clamps the result.
func (c Color) Mul(f float32) Color {
	return Color{
		toByte(float32(c.R) * f),
		toByte(float32(c.G) * f),
		toByte(float32(c.B) * f),
	}
}

// RGBA implements image/color.Color. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

func toByte(v float32) uint8 {
	if v <= 0 || v != v {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
