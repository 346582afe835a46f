package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

type ctxKey struct{}

// fallback is the logger used outside a request. Unset means slog.Default().
var fallback atomic.Pointer[slog.Logger]

// FromContext returns the request-scoped logger, or the fallback logger when
// ctx is nil or carries none.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
			return logger
		}
	}

	if logger := fallback.Load(); logger != nil {
		return logger
	}

	return slog.Default()
}

// WithContext stores a logger in the context.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// WithRequestID tags the context logger with request_id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withAttr(ctx, "request_id", requestID)
}

// WithTraceID tags the context logger with trace_id.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return withAttr(ctx, "trace_id", traceID)
}

// WithCorrelationID tags the context logger with correlation_id.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return withAttr(ctx, "correlation_id", correlationID)
}

func withAttr(ctx context.Context, key, value string) context.Context {
	return WithContext(ctx, FromContext(ctx).With(slog.String(key, value)))
}

// SetDefault sets the fallback logger and the slog package default.
func SetDefault(logger *slog.Logger) {
	fallback.Store(logger)
	slog.SetDefault(logger)
}
