package text

import (
	"slices"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// GlyphID is a raw glyph index in the font.
type GlyphID uint16

// Glyph is one positioned glyph of a shaped run, in device pixels.
// Runs are always horizontal, so only the x advance is kept.
// Offsets follow the font convention: positive YOffset moves up.
type Glyph struct {
	ID       GlyphID
	XAdvance float64
	XOffset  float64
	YOffset  float64
}

// shapingFeatures are enabled for every run.
var shapingFeatures = []shaping.FontFeature{
	{Tag: opentype.MustNewTag("kern"), Value: 1},
	{Tag: opentype.MustNewTag("liga"), Value: 1},
	{Tag: opentype.MustNewTag("clig"), Value: 1},
}

var shapingLanguage = language.NewLanguage("en")

type runKey struct {
	font   FontID
	text   string
	ptSize float64
	scaleX float64
	scaleY float64
}

// Shape converts text into positioned glyphs for font id at ptSize.
// Direction and script are guessed from the text. The returned slice is
// owned by the caller.
func (c *FontCache) Shape(id FontID, text string, ptSize float64) ([]Glyph, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, err := c.load(id, ptSize)
	if err != nil {
		return nil, err
	}
	if text == "" {
		return nil, nil
	}

	key := runKey{font: id, text: text, ptSize: ptSize, scaleX: c.scaleX, scaleY: c.scaleY}
	if run, ok := c.runs.Get(key); ok {
		return slices.Clone(run), nil
	}

	runes := []rune(text)
	dir := guessDirection(runes)
	out := c.shaper.Shape(shaping.Input{
		Text:         runes,
		RunStart:     0,
		RunEnd:       len(runes),
		Direction:    dir,
		Face:         h.face,
		FontFeatures: shapingFeatures,
		Size:         floatToFixed(h.ppemX),
		Script:       guessScript(runes),
		Language:     shapingLanguage,
	})

	run := convertGlyphs(out.Glyphs)
	c.runs.Set(key, run)
	return slices.Clone(run), nil
}

// Advance returns the summed horizontal advance of a run.
func Advance(glyphs []Glyph) float64 {
	var sum float64
	for _, g := range glyphs {
		sum += g.XAdvance
	}
	return sum
}

func convertGlyphs(glyphs []shaping.Glyph) []Glyph {
	if len(glyphs) == 0 {
		return nil
	}

	run := make([]Glyph, len(glyphs))
	for i, g := range glyphs {
		run[i] = Glyph{
			ID:       GlyphID(uint16(g.GlyphID)), //nolint:gosec // outline fonts address at most 65535 glyphs
			XAdvance: fixedToFloat(g.Advance),
			XOffset:  fixedToFloat(g.XOffset),
			YOffset:  fixedToFloat(g.YOffset),
		}
	}
	return run
}

// guessDirection picks the direction of the first strong character.
func guessDirection(runes []rune) di.Direction {
	for _, r := range runes {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return di.DirectionLTR
		case bidi.R, bidi.AL:
			return di.DirectionRTL
		}
	}
	return di.DirectionLTR
}

// guessScript returns the script of the first character that has one.
func guessScript(runes []rune) language.Script {
	for _, r := range runes {
		s := language.LookupScript(r)
		if s != language.Common && s != language.Inherited && s != language.Unknown {
			return s
		}
	}
	return language.Latin
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
