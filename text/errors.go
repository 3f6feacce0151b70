package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrUnknownFont is returned when a FontID is not part of the font table.
	ErrUnknownFont = errors.New("text: unknown font")

	// ErrEmptyFontData is returned when a font spec has neither data nor path.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidScale is returned for non-positive DPI scale factors.
	ErrInvalidScale = errors.New("text: invalid scale")

	// ErrInvalidSize is returned for non-positive point sizes.
	ErrInvalidSize = errors.New("text: invalid point size")
)

// FontLoadError is returned when a font from the table cannot be read or
// parsed. It is fatal for cache creation.
type FontLoadError struct {
	Font FontID
	Name string
	Err  error
}

func (e *FontLoadError) Error() string {
	return fmt.Sprintf("text: load font %s (%s): %v", e.Name, e.Font, e.Err)
}

func (e *FontLoadError) Unwrap() error { return e.Err }

// GlyphError is returned when a single glyph cannot be rasterized.
// Renderers treat it as soft: the glyph is skipped and the pen still advances.
type GlyphError struct {
	Font  FontID
	Glyph GlyphID
	Err   error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("text: glyph %d of %s: %v", e.Glyph, e.Font, e.Err)
}

func (e *GlyphError) Unwrap() error { return e.Err }
