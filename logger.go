package softrast

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false for all levels, so
// Debug calls on a hot draw path cost a single atomic load.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

// current is read by every draw; surfaces on different goroutines may
// log while SetLogger swaps it.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes softrast diagnostics to l. Until it is called nothing
// is logged, and SetLogger(nil) returns to that state.
//
// Levels:
//   - [slog.LevelDebug]: one record per draw call with triangle counts and
//     the pixels and scanlines clipped away
//   - [slog.LevelWarn]: dropped partial triangles, skipped UV batches and
//     ignored stencil clears
//
// Example:
//
//	softrast.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger softrast writes to.
func Logger() *slog.Logger {
	return current.Load()
}
