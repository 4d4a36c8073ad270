package log

import (
	"context"
	"log/slog"
	"os"
)

// DefaultContextProvider returns the context used by the non-Context
// logging functions. It can be replaced to propagate request-scoped
// values into every log record.
var DefaultContextProvider = context.TODO

var defaultLogger = Make(os.Stdout)

// Config replaces the package-level logger configuration.
func Config(opts ...Option) {
	defaultLogger = defaultLogger.Wrap(opts...)
}

// Default returns the package-level logger.
func Default() Logger { return defaultLogger }

// With adds attributes to every message written by the package-level
// logger.
func With(attrs ...slog.Attr) {
	defaultLogger = defaultLogger.With(attrs...)
}

// TraceContext logs a message at Trace level with the provided context.
func TraceContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLogger.logContext(ctx, LevelTrace, msg, attrs...)
}

// Trace logs a message at Trace level.
func Trace(msg string, attrs ...slog.Attr) {
	TraceContext(DefaultContextProvider(), msg, attrs...)
}

// DebugContext logs a message at Debug level with the provided context.
func DebugContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLogger.logContext(ctx, LevelDebug, msg, attrs...)
}

// Debug logs a message at Debug level.
func Debug(msg string, attrs ...slog.Attr) {
	DebugContext(DefaultContextProvider(), msg, attrs...)
}

// InfoContext logs a message at Info level with the provided context.
func InfoContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLogger.logContext(ctx, LevelInfo, msg, attrs...)
}

// Info logs a message at Info level.
func Info(msg string, attrs ...slog.Attr) {
	InfoContext(DefaultContextProvider(), msg, attrs...)
}

// WarnContext logs a message at Warn level with the provided context.
func WarnContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLogger.logContext(ctx, LevelWarn, msg, attrs...)
}

// Warn logs a message at Warn level.
func Warn(msg string, attrs ...slog.Attr) {
	WarnContext(DefaultContextProvider(), msg, attrs...)
}

// ErrorContext logs a message at Error level with the provided context.
func ErrorContext(ctx context.Context, msg string, attrs ...slog.Attr) {
	defaultLogger.logContext(ctx, LevelError, msg, attrs...)
}

// Error logs a message at Error level.
func Error(msg string, attrs ...slog.Attr) {
	ErrorContext(DefaultContextProvider(), msg, attrs...)
}
