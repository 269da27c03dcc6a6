package common

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/gg"
)

// silentHandler drops every record. Enabled reports false so callers skip formatting entirely.
type silentHandler struct{}

func (silentHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (silentHandler) Handle(context.Context, slog.Record) error { return nil }
func (silentHandler) WithAttrs([]slog.Attr) slog.Handler        { return silentHandler{} }
func (silentHandler) WithGroup(string) slog.Handler             { return silentHandler{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(silentHandler{}))
}

// SetLogger installs the logger used by every engine package. The engine is silent until this is called.
// The logger is forwarded to gg so canvas diagnostics land in the same sink.
// Passing nil restores the silent default.
//
// Parameters:
//   - l: the logger to install, or nil
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(silentHandler{})
		gg.SetLogger(nil)
	} else {
		gg.SetLogger(l)
	}
	logger.Store(l)
}

// Logger returns the active engine logger. Safe for concurrent use.
//
// Returns:
//   - *slog.Logger: the current logger (never nil)
func Logger() *slog.Logger {
	return logger.Load()
}
