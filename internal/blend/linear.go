// Package blend implements source-over compositing in linear color space.
//
// Colors are decoded from the stored gamma-encoded framebuffer into linear
// space, composited with the premultiplied Porter-Duff source-over operator
// and encoded again. Blending in gamma space darkens anti-aliased edges;
// doing the math on linear values keeps glyph weight stable across colors.
//
// Key principle: Alpha is ALWAYS linear - only RGB channels undergo gamma conversion.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - GPU Gems 3: "The Importance of Being Linear"
package blend

import (
	"github.com/gogpu/softframe/internal/color"
)

// SourceOver composites a premultiplied src over dst in linear space:
// result = src + dst*(1-src.A). The destination alpha is kept as is, since
// the framebuffer is treated as opaque.
func SourceOver(src, dst color.ColorF32) color.ColorF32 {
	inv := 1 - src.A
	return color.ColorF32{
		R: src.R + dst.R*inv,
		G: src.G + dst.G*inv,
		B: src.B + dst.B*inv,
		A: dst.A,
	}
}

// Coverage composites a solid linear color, weighted by an 8-bit coverage
// value, over a stored pixel and returns the new stored pixel.
//
// The source alpha is coverage/255 scaled by src.A. Zero coverage returns
// dst untouched.
func Coverage(dst color.Pixel, src color.ColorF32, coverage uint8, g color.Gamma) color.Pixel {
	if coverage == 0 {
		return dst
	}
	alpha := float32(coverage) / 255.0 * src.A
	premul := src.Premultiply(alpha)
	out := SourceOver(premul, g.PixelToLinear(dst))
	return g.LinearToPixel(out)
}

// CoverageSpan composites src over a row of destination pixels using the
// matching row of coverage values. len(cov) must be at least len(dst).
func CoverageSpan(dst []color.Pixel, cov []uint8, src color.ColorF32, g color.Gamma) {
	cov = cov[:len(dst)]
	for i, c := range cov {
		if c == 0 {
			continue
		}
		dst[i] = Coverage(dst[i], src, c, g)
	}
}
