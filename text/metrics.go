package text

import (
	xfont "golang.org/x/image/font"
)

// VerticalMetrics returns the font-wide ascent and descent of id at ptSize
// in device-independent units. Descent is negative below the baseline.
func (c *FontCache) VerticalMetrics(id FontID, ptSize float64) (ascent, descent float64, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, err := c.load(id, ptSize)
	if err != nil {
		return 0, 0, err
	}

	if ext, ok := h.face.FontHExtents(); ok {
		if upem := float64(h.face.Upem()); upem > 0 {
			return float64(ext.Ascender) * ptSize / upem, float64(ext.Descender) * ptSize / upem, nil
		}
	}

	// No hhea/OS2 extents: fall back to the outline font's metrics.
	m, err := h.sfnt.Metrics(&h.buf, floatToFixed(ptSize), xfont.HintingNone)
	if err != nil {
		return 0, 0, &FontLoadError{Font: id, Name: h.name, Err: err}
	}
	return fixedToFloat(m.Ascent), -fixedToFloat(m.Descent), nil
}
