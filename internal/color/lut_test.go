package color

import (
	"math"
	"testing"
)

// TestSRGBToLinearAccuracy tests that LUT matches math.Pow implementation.
func TestSRGBToLinearAccuracy(t *testing.T) {
	for i := 0; i < 256; i++ {
		fast := SRGBToLinearFast(uint8(i))
		want := SRGBToLinear(float32(i) / 255.0)
		if diff := math.Abs(float64(fast - want)); diff > 0.0001 {
			t.Errorf("sRGB %d: fast=%f, want=%f, error=%f", i, fast, want, diff)
		}
	}
}

func TestLinearToSRGBAccuracy(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		linear := float32(i) / 1000.0
		fast := LinearToSRGBFast(linear)
		slow := LinearToSRGBSlow(linear)
		if diff := int(fast) - int(slow); diff < -1 || diff > 1 {
			t.Errorf("linear %f: fast=%d, slow=%d", linear, fast, slow)
		}
	}
}

func TestLinearToSRGBFastClamps(t *testing.T) {
	if got := LinearToSRGBFast(-0.5); got != 0 {
		t.Errorf("LinearToSRGBFast(-0.5) = %d, want 0", got)
	}
	if got := LinearToSRGBFast(1.5); got != 255 {
		t.Errorf("LinearToSRGBFast(1.5) = %d, want 255", got)
	}
}

func TestLUTInitialization(t *testing.T) {
	if sRGBToLinearLUT[0] != 0 || approxToLinearLUT[0] != 0 {
		t.Errorf("tables must start at 0")
	}
	if approxToLinearLUT[255] != 1 {
		t.Errorf("approxToLinearLUT[255] = %f, want 1", approxToLinearLUT[255])
	}
	if linearToSRGBLUT[4095] != 255 {
		t.Errorf("linearToSRGBLUT[4095] = %d, want 255", linearToSRGBLUT[4095])
	}
	for i := 1; i < 256; i++ {
		if sRGBToLinearLUT[i] < sRGBToLinearLUT[i-1] {
			t.Errorf("sRGBToLinearLUT not monotonic at %d", i)
		}
		if approxToLinearLUT[i] <= approxToLinearLUT[i-1] {
			t.Errorf("approxToLinearLUT not strictly increasing at %d", i)
		}
	}
}

func BenchmarkPixelToLinear(b *testing.B) {
	b.ReportAllocs()
	var sink ColorF32
	for i := 0; i < b.N; i++ {
		v := uint8(i)
		sink = GammaApprox.PixelToLinear(Pixel{B: v, G: v, R: v, A: 255})
	}
	_ = sink
}

func BenchmarkLinearToPixel(b *testing.B) {
	b.ReportAllocs()
	var sink Pixel
	for i := 0; i < b.N; i++ {
		v := float32(i&0xFF) / 255
		sink = GammaApprox.LinearToPixel(ColorF32{R: v, G: v, B: v, A: 1})
	}
	_ = sink
}
