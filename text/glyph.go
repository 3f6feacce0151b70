package text

import (
	"image"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Mask is an 8-bit coverage bitmap of one glyph.
//
// Left is the horizontal distance from the pen position to the left edge of
// the bitmap; Top is the distance from the baseline up to its top row.
// Both are in device pixels. Glyphs without an outline have an empty Alpha.
type Mask struct {
	Alpha *image.Alpha
	Left  int
	Top   int
}

// Empty reports whether the mask covers no pixels.
func (m *Mask) Empty() bool {
	return m == nil || m.Alpha == nil || m.Alpha.Rect.Empty()
}

type maskKey struct {
	font  FontID
	glyph GlyphID
	ppemX float64
	ppemY float64
}

// GlyphMask rasterizes glyph gid of font id at ptSize. Masks are memoized;
// callers must not modify the returned mask. A glyph that cannot be loaded
// yields a *GlyphError.
func (c *FontCache) GlyphMask(id FontID, gid GlyphID, ptSize float64) (*Mask, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, err := c.load(id, ptSize)
	if err != nil {
		return nil, err
	}

	key := maskKey{font: id, glyph: gid, ppemX: h.ppemX, ppemY: h.ppemY}
	if m, ok := c.masks.Get(key); ok {
		return m, nil
	}

	segments, err := h.sfnt.LoadGlyph(&h.buf, sfnt.GlyphIndex(gid), floatToFixed(h.ppemX), nil)
	if err != nil {
		return nil, &GlyphError{Font: id, Glyph: gid, Err: err}
	}

	m := rasterizeSegments(segments, h.ppemY/h.ppemX)
	c.masks.Set(key, m)
	return m, nil
}

// rasterizeSegments fills a y-down outline into a coverage mask. The outline
// is loaded at the horizontal ppem; yScale stretches it to the vertical one.
func rasterizeSegments(segments sfnt.Segments, yScale float64) *Mask {
	if len(segments) == 0 {
		return &Mask{Alpha: image.NewAlpha(image.Rectangle{})}
	}

	ys := float32(yScale)
	pt := func(p fixed.Point26_6) (float32, float32) {
		return float32(p.X) / 64, float32(p.Y) / 64 * ys
	}

	// Control points bound the curves, so their box bounds the glyph.
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := float32(-math.MaxFloat32), float32(-math.MaxFloat32)
	for _, seg := range segments {
		for _, p := range seg.Args[:argCount(seg.Op)] {
			x, y := pt(p)
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}

	x0 := int(math.Floor(float64(minX)))
	y0 := int(math.Floor(float64(minY)))
	x1 := int(math.Ceil(float64(maxX)))
	y1 := int(math.Ceil(float64(maxY)))
	w, h := x1-x0, y1-y0
	if w <= 0 || h <= 0 {
		return &Mask{Alpha: image.NewAlpha(image.Rectangle{})}
	}

	ox, oy := float32(x0), float32(y0)
	local := func(p fixed.Point26_6) (float32, float32) {
		x, y := pt(p)
		return x - ox, y - oy
	}

	r := vector.NewRasterizer(w, h)
	for i, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			// MoveTo does not close the previous contour.
			if i > 0 {
				r.ClosePath()
			}
			x, y := local(seg.Args[0])
			r.MoveTo(x, y)
		case sfnt.SegmentOpLineTo:
			x, y := local(seg.Args[0])
			r.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			bx, by := local(seg.Args[0])
			cx, cy := local(seg.Args[1])
			r.QuadTo(bx, by, cx, cy)
		case sfnt.SegmentOpCubeTo:
			bx, by := local(seg.Args[0])
			cx, cy := local(seg.Args[1])
			dx, dy := local(seg.Args[2])
			r.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	r.ClosePath()

	alpha := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(alpha, alpha.Bounds(), image.Opaque, image.Point{})

	return &Mask{Alpha: alpha, Left: x0, Top: -y0}
}

func argCount(op sfnt.SegmentOp) int {
	switch op {
	case sfnt.SegmentOpQuadTo:
		return 2
	case sfnt.SegmentOpCubeTo:
		return 3
	default:
		return 1
	}
}
