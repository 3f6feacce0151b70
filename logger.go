package softframe

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the package logger. Accessed atomically so that
// SetLogger can run concurrently with logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the package-wide logger. Renderers created without
// WithLogger, and their font caches, log through it. Pass nil to restore
// the default silent behavior.
//
// Log levels used by softframe:
//   - [slog.LevelDebug]: frame diff decisions, font size switches
//   - [slog.LevelInfo]: initialization and resize
//   - [slog.LevelWarn]: glyphs skipped during rasterization
//
// Example:
//
//	softframe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package-wide logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// globalHandler forwards records to whatever logger SetLogger installed
// last, so long-lived components follow later SetLogger calls.
type globalHandler struct{}

func (globalHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return Logger().Handler().Enabled(ctx, level)
}

func (globalHandler) Handle(ctx context.Context, r slog.Record) error {
	return Logger().Handler().Handle(ctx, r)
}

func (globalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return Logger().Handler().WithAttrs(attrs)
}

func (globalHandler) WithGroup(name string) slog.Handler {
	return Logger().Handler().WithGroup(name)
}
