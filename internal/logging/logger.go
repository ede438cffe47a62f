package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Logger wraps slog.Logger with placelist-specific helpers so every
// operation logs with the same field names.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing to w. format is "json" or "text".
func New(w io.Writer, level slog.Level, format string) *Logger {
	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return &Logger{Logger: slog.New(handler)}
}

// Noop discards all log output.
func Noop() *Logger {
	return New(io.Discard, slog.Level(1000), "text")
}

// ParseLevel maps a config string to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}

// LogMove logs a reorder.
func (l *Logger) LogMove(ctx context.Context, from, to int, err error) {
	if err != nil {
		l.WarnContext(ctx, "move rejected", "from", from, "to", to, "error", err)
		return
	}
	l.DebugContext(ctx, "move completed", "from", from, "to", to)
}

// LogPayload logs a drag-out payload.
func (l *Logger) LogPayload(ctx context.Context, index, size int, err error) {
	if err != nil {
		l.WarnContext(ctx, "payload rejected", "index", index, "error", err)
		return
	}
	l.DebugContext(ctx, "payload built", "index", index, "bytes", size)
}

// LogDrop logs an inbound item.
func (l *Logger) LogDrop(ctx context.Context, index int, title string, err error) {
	if err != nil {
		l.WarnContext(ctx, "drop rejected", "index", index, "error", err)
		return
	}
	l.InfoContext(ctx, "drop accepted", "index", index, "title", title)
}

// LogPersist logs a write of the order to the database.
func (l *Logger) LogPersist(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "persist failed", "count", count, "error", err)
		return
	}
	l.DebugContext(ctx, "order persisted", "count", count)
}
