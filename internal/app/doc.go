// Package app contains the application services that orchestrate the
// disaster-response use cases. Services coordinate domain rules with the
// repositories, upstream lookups and event sinks through the ports package.
//
// What does NOT belong here:
//   - HTTP specifics (that's adapters/http)
//   - SQL (that's adapters/postgres)
//   - Core rules like keyword derivation or label classification (that's domain)
package app

import (
	"context"
	"log/slog"

	"github.com/jonboulle/clockwork"

	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/platform/logging"
	"github.com/jsamuelsen/disaster-response/internal/ports"
)

// publish delivers e and logs a failure. Event delivery never fails the
// use case that produced it.
func publish(ctx context.Context, events ports.EventPublisher, logger *slog.Logger, e domain.Event) {
	if events == nil {
		return
	}
	if err := events.Publish(ctx, e); err != nil {
		logger.WarnContext(ctx, "event publish failed",
			slog.String("event", string(e.Type)),
			slog.String("disaster_id", e.DisasterID),
			slog.Any("error", err),
		)
	}
}

func orRealClock(c clockwork.Clock) clockwork.Clock {
	if c == nil {
		return clockwork.NewRealClock()
	}
	return c
}

func orDefaultLogger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}

// requestLogger prefers the request-scoped logger so entries carry the
// request and trace ids.
func requestLogger(ctx context.Context, fallback *slog.Logger, method string) *slog.Logger {
	return logging.FromContextOr(ctx, fallback).With(slog.String("method", method))
}
