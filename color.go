package softframe

import "github.com/gogpu/softframe/internal/color"

// Color is a straight (not premultiplied) color with channels in [0, 1].
// Channels are treated as sRGB-encoded when written to the framebuffer.
type Color struct {
	R, G, B, A float32
}

// RGBA creates a color from channel values.
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Common colors.
var (
	Transparent = Color{0, 0, 0, 0}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Blue        = Color{0, 0, 1, 1}
	LightBlue   = Color{0.5, 0.5, 1, 1}
	Grey        = Color{0.1, 0.1, 0.1, 1}
	LightGrey   = Color{0.3, 0.3, 0.3, 1}
)

// Pixel returns the framebuffer encoding of c.
func (c Color) Pixel() color.Pixel {
	return color.ColorToPixel(c.f32())
}

func (c Color) f32() color.ColorF32 {
	return color.ColorF32{R: c.R, G: c.G, B: c.B, A: c.A}
}
