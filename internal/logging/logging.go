// Package logging is a thin, structured wrapper around log/slog, set up
// the way dittofs's internal/logger package configures slog: one
// process-wide logger, a settable level, and helpers that take
// structured key/value pairs instead of formatted strings.
package logging

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
)

var level atomic.Int64 // slog.Level, defaults to Info (0)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: levelVar{},
	})))
}

// levelVar adapts the package-level atomic level to slog.Leveler.
type levelVar struct{}

func (levelVar) Level() slog.Level {
	return slog.Level(level.Load())
}

// SetLevel changes the minimum level logged from this point on.
func SetLevel(l slog.Level) {
	level.Store(int64(l))
}

// SetOutput swaps the underlying handler, for callers that want to
// capture output or change its format.
func SetOutput(h slog.Handler) {
	logger.Store(slog.New(h))
}

func l() *slog.Logger {
	return logger.Load()
}

// Debug logs at debug level. The receive pipeline uses this for
// semantic, non-fatal drops (stale sequence numbers, stale Close
// messages, forward-compatible unknown message kinds) per spec §7.
func Debug(ctx context.Context, msg string, args ...any) {
	l().DebugContext(ctx, msg, args...)
}

// Info logs at info level.
func Info(ctx context.Context, msg string, args ...any) {
	l().InfoContext(ctx, msg, args...)
}

// Warn logs at warn level.
func Warn(ctx context.Context, msg string, args ...any) {
	l().WarnContext(ctx, msg, args...)
}

// Error logs at error level, used for teardown-task failures that spec
// §7 requires we log but never propagate.
func Error(ctx context.Context, msg string, args ...any) {
	l().ErrorContext(ctx, msg, args...)
}
