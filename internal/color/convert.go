package color

import "math"

// SRGBToLinear converts an sRGB component to linear (EOTF - Electro-Optical Transfer Function).
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
// Input and output are in range [0,1].
func SRGBToLinear(s float32) float32 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return float32(math.Pow(float64((s+0.055)/1.055), 2.4))
}

// SRGBToLinearColor converts a full color from sRGB to linear space.
// Only RGB components are converted; alpha remains linear (never gamma-encoded).
func SRGBToLinearColor(c ColorF32) ColorF32 {
	return ColorF32{
		R: SRGBToLinear(c.R),
		G: SRGBToLinear(c.G),
		B: SRGBToLinear(c.B),
		A: c.A,
	}
}

// ApproxToLinearColor decodes with gamma 2 (x*x).
func ApproxToLinearColor(c ColorF32) ColorF32 {
	return ColorF32{
		R: c.R * c.R,
		G: c.G * c.G,
		B: c.B * c.B,
		A: c.A,
	}
}

// ApproxToSRGBColor encodes with gamma 2 (sqrt). Negative inputs map to 0.
func ApproxToSRGBColor(c ColorF32) ColorF32 {
	return ColorF32{
		R: sqrt32(c.R),
		G: sqrt32(c.G),
		B: sqrt32(c.B),
		A: c.A,
	}
}

func sqrt32(v float32) float32 {
	if v <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(v)))
}

// PixelToColor maps each 8-bit channel to [0,1] without any transfer function.
func PixelToColor(p Pixel) ColorF32 {
	return ColorF32{
		R: float32(p.R) / 255.0,
		G: float32(p.G) / 255.0,
		B: float32(p.B) / 255.0,
		A: float32(p.A) / 255.0,
	}
}

// ColorToPixel quantizes each channel to 8 bits without any transfer function.
//
// Channels are scaled by 255.999 and truncated, so 1.0 maps to 255 and a
// value decoded by PixelToColor encodes back to the same byte even after a
// float round trip through square and square root.
func ColorToPixel(c ColorF32) Pixel {
	return Pixel{
		B: quantize(c.B),
		G: quantize(c.G),
		R: quantize(c.R),
		A: quantize(c.A),
	}
}

// quantize clamps v to [0,1] and converts it to a byte.
func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255.999)
}
