// Package logging wraps an optional *slog.Logger for the decoder and encoder.
package logging

import (
	"context"
	"log/slog"
)

// Logger logs through L when it is set. The zero value discards everything.
type Logger struct {
	L *slog.Logger
}

// New returns a Logger scoped to component. A nil base yields a silent Logger.
func New(base *slog.Logger, component string) Logger {
	if base == nil {
		return Logger{}
	}

	return Logger{L: base.With(slog.String("component", component))}
}

// Enabled reports whether records at level would be emitted.
func (l Logger) Enabled(level slog.Level) bool {
	return l.L != nil && l.L.Enabled(context.Background(), level)
}

// Log emits a record at level when logging is enabled.
func (l Logger) Log(level slog.Level, msg string, attrs ...slog.Attr) {
	if !l.Enabled(level) {
		return
	}

	l.L.LogAttrs(context.Background(), level, msg, attrs...)
}

// Debug emits a debug record.
func (l Logger) Debug(msg string, attrs ...slog.Attr) {
	l.Log(slog.LevelDebug, msg, attrs...)
}
