package logger

import "context"

// Reporter is the narrow diagnostics channel the engine reports data-quality
// problems through (bad catalog maxima, empty slot filters). It never affects
// control flow; tests swap in a capturing implementation to observe the
// fail-open and partial-failure signals.
type Reporter interface {
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)
}

type slogReporter struct{}

// NewReporter returns a Reporter that forwards to the context logger.
func NewReporter() Reporter {
	return slogReporter{}
}

func (slogReporter) Warn(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Warn(msg, args...)
}

func (slogReporter) Error(ctx context.Context, msg string, args ...any) {
	FromContext(ctx).Error(msg, args...)
}
