package blend

import (
	"testing"

	"github.com/gogpu/softframe/internal/color"
)

func TestSourceOver(t *testing.T) {
	tests := []struct {
		name string
		src  color.ColorF32
		dst  color.ColorF32
		want color.ColorF32
	}{
		{
			name: "opaque source replaces",
			src:  color.ColorF32{R: 0.2, G: 0.4, B: 0.6, A: 1},
			dst:  color.ColorF32{R: 1, G: 1, B: 1, A: 1},
			want: color.ColorF32{R: 0.2, G: 0.4, B: 0.6, A: 1},
		},
		{
			name: "transparent source keeps destination",
			src:  color.ColorF32{},
			dst:  color.ColorF32{R: 0.3, G: 0.5, B: 0.7, A: 1},
			want: color.ColorF32{R: 0.3, G: 0.5, B: 0.7, A: 1},
		},
		{
			name: "half coverage white over black",
			src:  color.ColorF32{R: 0.5, G: 0.5, B: 0.5, A: 0.5},
			dst:  color.ColorF32{A: 1},
			want: color.ColorF32{R: 0.5, G: 0.5, B: 0.5, A: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SourceOver(tt.src, tt.dst); got != tt.want {
				t.Errorf("SourceOver(%v, %v) = %v, want %v", tt.src, tt.dst, got, tt.want)
			}
		})
	}
}

// Full coverage must reproduce the source color and zero coverage must leave
// the destination alone, whatever the destination holds.
func TestCoverageExtremes(t *testing.T) {
	text := color.ColorF32{R: 0.9, G: 0.5, B: 0.1, A: 1}
	want := color.ColorToPixel(text)

	for _, g := range []color.Gamma{color.GammaApprox, color.GammaExact} {
		for i := 0; i < 256; i += 5 {
			v := uint8(i)
			dst := color.Pixel{B: v, G: 255 - v, R: v / 2, A: 255}
			src := g.ToLinear(text)

			got := Coverage(dst, src, 255, g)
			if !pixelNear(got, want, 1) {
				t.Errorf("%v: full coverage over %v = %v, want %v", g, dst, got, want)
			}
			if got := Coverage(dst, src, 0, g); got != dst {
				t.Errorf("%v: zero coverage over %v = %v", g, dst, got)
			}
		}
	}
}

// Half coverage of white over black must land above the gamma-space
// midpoint (127); gamma-space blending is what produces dark fringes.
func TestCoverageIsLinear(t *testing.T) {
	dst := color.Pixel{A: 255}
	white := color.ColorF32{R: 1, G: 1, B: 1, A: 1}

	got := Coverage(dst, white, 128, color.GammaApprox)
	if got.R <= 140 {
		t.Errorf("half coverage white over black = %d, expected linear-light result above 140", got.R)
	}
	if got.A != 255 {
		t.Errorf("destination alpha changed to %d", got.A)
	}
}

func TestCoverageTranslucentSource(t *testing.T) {
	dst := color.Pixel{A: 255}
	opaque := Coverage(dst, color.ColorF32{R: 1, A: 1}, 255, color.GammaApprox)
	half := Coverage(dst, color.ColorF32{R: 1, A: 0.5}, 255, color.GammaApprox)
	if half.R >= opaque.R {
		t.Errorf("translucent source not weaker: %d >= %d", half.R, opaque.R)
	}
}

func TestCoverageSpan(t *testing.T) {
	dst := []color.Pixel{{A: 255}, {A: 255}, {A: 255}}
	cov := []uint8{0, 255, 0, 99}
	CoverageSpan(dst, cov, color.ColorF32{R: 1, G: 1, B: 1, A: 1}, color.GammaApprox)

	if dst[0] != (color.Pixel{A: 255}) || dst[2] != (color.Pixel{A: 255}) {
		t.Errorf("uncovered pixels changed: %v", dst)
	}
	if dst[1] != (color.Pixel{B: 255, G: 255, R: 255, A: 255}) {
		t.Errorf("covered pixel = %v, want white", dst[1])
	}
}

func BenchmarkCoverage(b *testing.B) {
	b.ReportAllocs()
	src := color.ColorF32{R: 0.8, G: 0.8, B: 0.8, A: 1}
	dst := color.Pixel{B: 30, G: 30, R: 30, A: 255}
	for i := 0; i < b.N; i++ {
		dst = Coverage(dst, src, uint8(i), color.GammaApprox)
	}
	_ = dst
}

func pixelNear(a, b color.Pixel, tol int) bool {
	near := func(x, y uint8) bool {
		d := int(x) - int(y)
		return d >= -tol && d <= tol
	}
	return near(a.B, b.B) && near(a.G, b.G) && near(a.R, b.R) && near(a.A, b.A)
}
