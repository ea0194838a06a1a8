package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/platform/metrics"
	"github.com/jsamuelsen/disaster-response/internal/ports"
)

// Sink is a named event destination.
type Sink interface {
	ports.EventPublisher
	Name() string
}

// FanOut publishes each event to every sink.
type FanOut struct {
	sinks   []Sink
	metrics *metrics.Metrics
}

// NewFanOut returns a publisher over sinks. m may be nil.
func NewFanOut(m *metrics.Metrics, sinks ...Sink) *FanOut {
	return &FanOut{sinks: sinks, metrics: m}
}

// Publish assigns the event id if missing, then delivers to all sinks even
// when some fail. The returned error joins every sink failure.
func (f *FanOut) Publish(ctx context.Context, e domain.Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}

	var errs []error
	for _, sink := range f.sinks {
		err := sink.Publish(ctx, e)

		outcome := "success"
		if err != nil {
			outcome = "error"
			errs = append(errs, fmt.Errorf("%s: %w", sink.Name(), err))
		}
		if f.metrics != nil {
			f.metrics.EventsPublished.WithLabelValues(string(e.Type), sink.Name(), outcome).Inc()
		}
	}
	return errors.Join(errs...)
}
