package softframe

import (
	"log/slog"

	"github.com/gogpu/softframe/internal/color"
	"github.com/gogpu/softframe/text"
)

// DefaultQueueCapacity is the number of commands a frame may submit unless
// WithQueueCapacity says otherwise.
const DefaultQueueCapacity = 1000

// Gamma selects the transfer curve used when blending glyph coverage.
type Gamma = color.Gamma

// Gamma modes.
const (
	// GammaApprox squares channels to linearize and takes the square root
	// to encode. It is the default.
	GammaApprox = color.GammaApprox

	// GammaExact uses the IEC 61966-2-1 sRGB transfer function.
	GammaExact = color.GammaExact
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r, err := softframe.New(800, 600, 2, 2,
//	    softframe.WithGamma(softframe.GammaExact),
//	    softframe.WithQueueCapacity(4096),
//	)
type Option func(*options)

type options struct {
	fonts          text.FontTable
	queueCapacity  int
	gamma          Gamma
	logger         *slog.Logger
	glyphCacheSize int
	shapeCacheSize int
}

func defaultOptions() options {
	return options{
		fonts:         text.DefaultFontTable(),
		queueCapacity: DefaultQueueCapacity,
		gamma:         GammaApprox,
	}
}

// WithFonts replaces the compiled-in font table. Every font is loaded by
// New; one that fails to load fails New.
func WithFonts(table text.FontTable) Option {
	return func(o *options) {
		o.fonts = table
	}
}

// WithQueueCapacity sets how many commands one frame may submit.
// Values below 1 keep the default.
func WithQueueCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.queueCapacity = n
		}
	}
}

// WithGamma selects the blending transfer curve.
func WithGamma(g Gamma) Option {
	return func(o *options) {
		o.gamma = g
	}
}

// WithLogger sets a logger for this renderer instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithGlyphCacheSize bounds the number of rasterized glyph masks kept.
func WithGlyphCacheSize(n int) Option {
	return func(o *options) {
		o.glyphCacheSize = n
	}
}

// WithShapeCacheSize bounds the number of shaped text runs kept.
func WithShapeCacheSize(n int) Option {
	return func(o *options) {
		o.shapeCacheSize = n
	}
}
