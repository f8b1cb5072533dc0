package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const traceIDKey ctxKey = "traceID"

// GenerateTraceID creates a new UUID for tracing operations.
func GenerateTraceID() string {
	return uuid.NewString()
}

// WithTraceID returns a new context containing the trace ID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext extracts the trace ID from the context, if present.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(traceIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// FromContext returns a logger that includes the trace_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := TraceIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyTraceID, id)
	}
	return slog.Default()
}

// InitLogger installs a logger built from cfg as the process default.
func InitLogger(cfg Config) {
	InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter installs a logger writing to w as the process default.
// Used by tests to capture output.
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	base := handler.WithAttrs(cfg.BaseAttributes())
	slog.SetDefault(slog.New(base))
}

// Info logs at info level using the process default logger.
func Info(msg string, args ...any) {
	slog.Default().Info(msg, args...)
}

// Warn logs at warn level using the process default logger.
func Warn(msg string, args ...any) {
	slog.Default().Warn(msg, args...)
}

// Error logs at error level using the process default logger.
func Error(msg string, args ...any) {
	slog.Default().Error(msg, args...)
}
