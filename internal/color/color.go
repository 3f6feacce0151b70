// Package color provides the pixel and color types used by the software
// renderer, and conversions between gamma-encoded 8-bit pixels and linear
// floating-point colors.
package color

// ColorF32 represents a color with float32 components in [0,1].
// RGB components are in the color space indicated by context.
// Alpha is always linear (never gamma-encoded).
type ColorF32 struct {
	R, G, B, A float32
}

// Pixel is one framebuffer pixel. The field order matches the in-memory
// channel order (blue, green, red, alpha), which is what most window
// systems expect for a 32-bit surface.
type Pixel struct {
	B, G, R, A uint8
}

// Premultiply scales the RGB channels of c by alpha.
func (c ColorF32) Premultiply(alpha float32) ColorF32 {
	return ColorF32{
		R: c.R * alpha,
		G: c.G * alpha,
		B: c.B * alpha,
		A: alpha,
	}
}

// Gamma selects the transfer function used to move between stored
// (gamma-encoded) pixels and linear scratch colors.
type Gamma uint8

const (
	// GammaApprox approximates the sRGB curve with gamma 2: squaring on
	// decode and a square root on encode. It avoids math.Pow per pixel and
	// the error against gamma 2.2 is acceptable for glyph edges.
	GammaApprox Gamma = iota

	// GammaExact uses the piecewise IEC 61966-2-1 sRGB curve through
	// lookup tables.
	GammaExact
)

// String returns the name of the gamma mode.
func (g Gamma) String() string {
	switch g {
	case GammaApprox:
		return "approx"
	case GammaExact:
		return "exact"
	default:
		return "unknown"
	}
}

// ToLinear converts a gamma-encoded color to linear space.
// Alpha is passed through.
func (g Gamma) ToLinear(c ColorF32) ColorF32 {
	if g == GammaExact {
		return SRGBToLinearColor(c)
	}
	return ApproxToLinearColor(c)
}

// PixelToLinear decodes a stored pixel straight to a linear color.
// Both modes go through a 256-entry table.
func (g Gamma) PixelToLinear(p Pixel) ColorF32 {
	a := float32(p.A) / 255.0
	if g == GammaExact {
		return ColorF32{
			R: SRGBToLinearFast(p.R),
			G: SRGBToLinearFast(p.G),
			B: SRGBToLinearFast(p.B),
			A: a,
		}
	}
	return ColorF32{
		R: approxToLinearLUT[p.R],
		G: approxToLinearLUT[p.G],
		B: approxToLinearLUT[p.B],
		A: a,
	}
}

// LinearToPixel encodes a linear color into a stored pixel.
func (g Gamma) LinearToPixel(c ColorF32) Pixel {
	if g == GammaExact {
		return Pixel{
			B: LinearToSRGBFast(c.B),
			G: LinearToSRGBFast(c.G),
			R: LinearToSRGBFast(c.R),
			A: quantize(c.A),
		}
	}
	return ColorToPixel(ApproxToSRGBColor(c))
}
