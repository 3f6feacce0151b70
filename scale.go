package softframe

import (
	"image"
	"math"
)

// Scale holds the horizontal and vertical DPI scale factors.
type Scale struct {
	X, Y float32
}

func (s Scale) valid() bool {
	return s.X > 0 && s.Y > 0 &&
		!math.IsInf(float64(s.X), 0) && !math.IsInf(float64(s.Y), 0)
}

// Rect converts a device-independent rectangle to device pixels. Each
// component is scaled once and truncated. A rectangle with a non-positive
// width or height converts to the empty rectangle.
func (s Scale) Rect(r Rect) image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	x := int(float32(r.X) * s.X)
	y := int(float32(r.Y) * s.Y)
	w := int(float32(r.W) * s.X)
	h := int(float32(r.H) * s.Y)
	return image.Rect(x, y, x+w, y+h)
}

// Point converts a device-independent position to device pixels.
func (s Scale) Point(x, y int) (float64, float64) {
	return float64(int(float32(x) * s.X)), float64(int(float32(y) * s.Y))
}

// Unscale converts a device size back to device-independent units,
// rounding up.
func (s Scale) Unscale(width, height int) (int, int) {
	return int(math.Ceil(float64(width) / float64(s.X))),
		int(math.Ceil(float64(height) / float64(s.Y)))
}
