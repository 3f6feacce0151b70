// Package text shapes and rasterizes glyph runs for the software renderer.
//
// A [FontCache] owns exactly one font handle per [FontID]. Each handle
// carries a single active point size; asking for a different size switches
// the handle in place instead of opening a second one. The cache exposes
// three queries on top of that handle:
//
//   - [FontCache.Shape]: HarfBuzz shaping (go-text/typesetting) with
//     kerning and ligatures, in device pixels
//   - [FontCache.VerticalMetrics]: font-wide ascent and descent in
//     device-independent units
//   - [FontCache.GlyphMask]: an 8-bit coverage mask for one glyph
//
// Fonts come from a [FontTable] that is loaded once when the cache is
// created. [DefaultFontTable] bakes the Go fonts into the binary:
//
//	fc, err := text.NewFontCache(text.DefaultFontTable(), text.WithScale(2, 2))
//	if err != nil {
//	    return err
//	}
//	glyphs, err := fc.Shape(text.FontRegular, "Hello", 18)
//	width := text.Advance(glyphs)
//
// Shaped runs and glyph masks are memoized in bounded LRU caches keyed by
// font, size and DPI scale.
//
// All FontCache methods are safe for concurrent use.
package text
