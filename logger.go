package flo

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false so that callers skip
// formatting arguments.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(discard{}))
}

// SetLogger sets the logger shared by flo and its sub-packages.
// flo is silent until SetLogger is called; nil restores silence.
//
// Levels:
//   - [slog.LevelDebug]: layout and geometry of each render
//   - [slog.LevelInfo]: service lifecycle
//   - [slog.LevelWarn]: failed view draws, failed replies, watcher errors
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	logger.Store(l)
}

// Logger returns the current logger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return logger.Load()
}
