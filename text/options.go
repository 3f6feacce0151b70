package text

import "log/slog"

// Option configures a FontCache.
type Option func(*cacheConfig)

type cacheConfig struct {
	logger         *slog.Logger
	glyphCacheSize int
	shapeCacheSize int
	scaleX, scaleY float64
}

func defaultCacheConfig() cacheConfig {
	return cacheConfig{
		logger:         slog.New(slog.DiscardHandler),
		glyphCacheSize: 2048,
		shapeCacheSize: 512,
		scaleX:         1,
		scaleY:         1,
	}
}

// WithLogger sets the logger for size switches and load diagnostics.
// A nil logger keeps the cache silent.
func WithLogger(l *slog.Logger) Option {
	return func(c *cacheConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithGlyphCacheSize sets how many rasterized glyph masks are kept.
// A value of 0 or less disables the limit.
func WithGlyphCacheSize(n int) Option {
	return func(c *cacheConfig) {
		c.glyphCacheSize = n
	}
}

// WithShapeCacheSize sets how many shaped runs are kept.
// A value of 0 or less disables the limit.
func WithShapeCacheSize(n int) Option {
	return func(c *cacheConfig) {
		c.shapeCacheSize = n
	}
}

// WithScale sets the initial DPI scale. Non-positive factors are ignored.
func WithScale(sx, sy float64) Option {
	return func(c *cacheConfig) {
		if sx > 0 && sy > 0 {
			c.scaleX, c.scaleY = sx, sy
		}
	}
}
