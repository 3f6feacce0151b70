package color

import (
	"math"
	"testing"
)

func TestSRGBToLinearEdgeCases(t *testing.T) {
	tests := []struct {
		name  string
		input float32
		want  float32
	}{
		{"black", 0.0, 0.0},
		{"white", 1.0, 1.0},
		{"threshold", 0.04045, 0.04045 / 12.92},
		{"mid gray", 0.5, float32(math.Pow((0.5+0.055)/1.055, 2.4))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SRGBToLinear(tt.input)
			if !floatNear(got, tt.want, 1e-6) {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestApproxConversions(t *testing.T) {
	in := ColorF32{R: 0.5, G: 0.1, B: 1.0, A: 0.25}

	lin := ApproxToLinearColor(in)
	want := ColorF32{R: 0.25, G: 0.010000001, B: 1.0, A: 0.25}
	if !colorF32Near(lin, want, 1e-6) {
		t.Errorf("ApproxToLinearColor(%v) = %v, want %v", in, lin, want)
	}

	back := ApproxToSRGBColor(lin)
	if !colorF32Near(back, in, 1e-6) {
		t.Errorf("ApproxToSRGBColor(%v) = %v, want %v", lin, back, in)
	}

	if got := ApproxToSRGBColor(ColorF32{R: -1}); got.R != 0 {
		t.Errorf("ApproxToSRGBColor of negative channel = %v, want 0", got.R)
	}
}

// Every stored byte must survive decode, gamma round trip and encode.
func TestPixelRoundTripAllBytes(t *testing.T) {
	for i := 0; i < 256; i++ {
		v := uint8(i)
		p := Pixel{B: v, G: v, R: v, A: v}

		if got := ColorToPixel(PixelToColor(p)); got != p {
			t.Fatalf("ColorToPixel(PixelToColor(%v)) = %v", p, got)
		}
		if got := GammaApprox.LinearToPixel(GammaApprox.PixelToLinear(p)); got != p {
			t.Fatalf("approx gamma round trip of %v = %v", p, got)
		}
	}
}

func TestExactGammaRoundTrip(t *testing.T) {
	for i := 0; i < 256; i++ {
		p := Pixel{B: uint8(i), G: uint8(i), R: uint8(i), A: 255}
		got := GammaExact.LinearToPixel(GammaExact.PixelToLinear(p))
		if d := int(got.R) - int(p.R); d < -1 || d > 1 {
			t.Errorf("exact gamma round trip of %d = %d", i, got.R)
		}
		if got.A != 255 {
			t.Errorf("alpha changed: %d", got.A)
		}
	}
}

func TestColorToPixelQuantization(t *testing.T) {
	tests := []struct {
		name string
		in   float32
		want uint8
	}{
		{"zero", 0, 0},
		{"one", 1, 255},
		{"below range", -0.5, 0},
		{"above range", 1.5, 255},
		{"grey", 0.1, 25},
		{"light grey", 0.3, 76},
		{"half", 0.5, 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ColorToPixel(ColorF32{R: tt.in})
			if got.R != tt.want {
				t.Errorf("ColorToPixel(%v).R = %d, want %d", tt.in, got.R, tt.want)
			}
		})
	}
}

func TestGammaPixelToLinear(t *testing.T) {
	p := Pixel{B: 10, G: 128, R: 255, A: 51}
	for _, g := range []Gamma{GammaApprox, GammaExact} {
		t.Run(g.String(), func(t *testing.T) {
			got := g.PixelToLinear(p)
			want := g.ToLinear(PixelToColor(p))
			if !colorF32Near(got, want, 1e-4) {
				t.Errorf("PixelToLinear(%v) = %v, want %v", p, got, want)
			}
		})
	}
}

func TestAlphaPreserved(t *testing.T) {
	input := ColorF32{R: 0.5, G: 0.5, B: 0.5, A: 0.5}
	for _, g := range []Gamma{GammaApprox, GammaExact} {
		if got := g.ToLinear(input).A; got != input.A {
			t.Errorf("%v ToLinear changed alpha: got %v", g, got)
		}
		if got := g.PixelToLinear(Pixel{R: 128, A: 51}).A; got != 0.2 {
			t.Errorf("%v PixelToLinear alpha = %v, want 0.2", g, got)
		}
	}
}

func TestPremultiply(t *testing.T) {
	got := ColorF32{R: 1, G: 0.5, B: 0.25, A: 1}.Premultiply(0.5)
	want := ColorF32{R: 0.5, G: 0.25, B: 0.125, A: 0.5}
	if got != want {
		t.Errorf("Premultiply = %v, want %v", got, want)
	}
}

func TestGammaString(t *testing.T) {
	if GammaApprox.String() != "approx" || GammaExact.String() != "exact" {
		t.Errorf("unexpected names %q %q", GammaApprox, GammaExact)
	}
	if Gamma(9).String() != "unknown" {
		t.Errorf("Gamma(9).String() = %q", Gamma(9).String())
	}
}

func floatNear(a, b, epsilon float32) bool {
	return float32(math.Abs(float64(a-b))) <= epsilon
}

func colorF32Near(a, b ColorF32, epsilon float32) bool {
	return floatNear(a.R, b.R, epsilon) &&
		floatNear(a.G, b.G, epsilon) &&
		floatNear(a.B, b.B, epsilon) &&
		floatNear(a.A, b.A, epsilon)
}
