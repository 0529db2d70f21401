package math3d

import (
	"image/color"
	"testing"
)

func TestColorPack(t *testing.T) {
	c := RGB(0x12, 0x34, 0x56)
	if got := c.Pack(); got != 0x123456 {
		t.Errorf("Pack() = %#x, want 0x123456", got)
	}
	if got := Unpack(0x123456); got != c {
		t.Errorf("Unpack() = %v, want %v", got, c)
	}
}

func TestColorLerp(t *testing.T) {
	black := RGB(0, 0, 0)
	white := RGB(255, 255, 255)

	tests := []struct {
		name string
		t    float32
		want Color
	}{
		{"start", 0, black},
		{"end", 1, white},
		{"half", 0.5, RGB(128, 128, 128)},
		{"below range clamps", -3, black},
		{"above range clamps", 7, white},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := black.Lerp(white, tc.t); got != tc.want {
				t.Errorf("Lerp(%v) = %v, want %v", tc.t, got, tc.want)
			}
		})
	}

	odd := RGB(13, 200, 77)
	if got := odd.Lerp(white, 0); got != odd {
		t.Errorf("Lerp at 0 changed color: %v", got)
	}
}

func TestColorMul(t *testing.T) {
	c := RGB(100, 200, 50)

	tests := []struct {
		name string
		f    float32
		want Color
	}{
		{"identity", 1, c},
		{"half", 0.5, RGB(50, 100, 25)},
		{"overflow clamps", 2, RGB(200, 255, 100)},
		{"negative clamps", -1, RGB(0, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := c.Mul(tc.f); got != tc.want {
				t.Errorf("Mul(%v) = %v, want %v", tc.f, got, tc.want)
			}
		})
	}
}

func TestRGBfClamps(t *testing.T) {
	if got := RGBf(2, -1, 1); got != RGB(255, 0, 255) {
		t.Errorf("RGBf clamp = %v", got)
	}
	if got := RGBf(0.5, 0, 0); got != RGB(128, 0, 0) {
		t.Errorf("RGBf(0.5) = %v", got)
	}
}

func TestColorImplementsColor(t *testing.T) {
	var c color.Color = RGB(255, 0, 128)
	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0 || b != 0x8080 || a != 0xffff {
		t.Errorf("RGBA() = %x %x %x %x", r, g, b, a)
	}
}

func TestHeading(t *testing.T) {
	if got := Heading(0, 0); !approxVec(got, Forward()) {
		t.Errorf("Heading(0,0) = %v", got)
	}
	if got := Heading(1.3, -0.4); !approx(got.Len(), 1) {
		t.Errorf("Heading not unit length: %v", got.Len())
	}
}
