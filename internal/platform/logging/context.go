package logging

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

var defaultLogger = slog.Default()

// SetDefault replaces the fallback logger and the slog default.
func SetDefault(logger *slog.Logger) {
	defaultLogger = logger
	slog.SetDefault(logger)
}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the request-scoped logger, or the default.
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, nil)
}

// FromContextOr returns the request-scoped logger, or fallback, or the
// default.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
			return logger
		}
	}
	if fallback != nil {
		return fallback
	}
	return defaultLogger
}

// With returns ctx with its logger extended by attrs.
func With(ctx context.Context, attrs ...slog.Attr) context.Context {
	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}
	return WithContext(ctx, FromContext(ctx).With(args...))
}

// Request-scoped fields attached by the HTTP middleware.
func WithRequestID(ctx context.Context, id string) context.Context {
	return With(ctx, slog.String("request_id", id))
}

func WithCorrelationID(ctx context.Context, id string) context.Context {
	return With(ctx, slog.String("correlation_id", id))
}

func WithTraceID(ctx context.Context, id string) context.Context {
	return With(ctx, slog.String("trace_id", id))
}

func WithUserID(ctx context.Context, id string) context.Context {
	return With(ctx, slog.String("user_id", id))
}
