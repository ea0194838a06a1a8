// Package metrics holds the Prometheus collectors for domain-level activity.
// HTTP and downstream client metrics are recorded through OpenTelemetry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "disaster_response"

// Metrics holds the Prometheus collectors exposed at /-/metrics.
type Metrics struct {
	// labels: event, sink={hub,kafka}, outcome={success,error}
	EventsPublished *prometheus.CounterVec
	// Events dropped because a subscriber's buffer was full.
	EventsDropped prometheus.Counter
	StreamClients prometheus.Gauge

	// labels: kind={geocode,extract}, result={hit,miss}
	LookupCache *prometheus.CounterVec

	// labels: label={authentic,manipulated,uncertain}
	ImageVerifications *prometheus.CounterVec

	SocialPostsIngested prometheus.Counter
	ReliefHubsCreated   prometheus.Counter
}

func newMetrics() *Metrics {
	return &Metrics{
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Broadcast events delivered to sinks by event type, sink and outcome.",
		}, []string{"event", "sink", "outcome"}),
		EventsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_dropped_total",
			Help:      "Events dropped for slow stream subscribers.",
		}),
		StreamClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stream_clients",
			Help:      "Connected Server-Sent Events clients.",
		}),
		LookupCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lookup_cache_total",
			Help:      "Location extraction and geocoding cache lookups by kind and result.",
		}, []string{"kind", "result"}),
		ImageVerifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "image_verifications_total",
			Help:      "Completed image verifications by label.",
		}, []string{"label"}),
		SocialPostsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "social_posts_ingested_total",
			Help:      "Unique feed posts ingested as reports.",
		}),
		ReliefHubsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "relief_hubs_created_total",
			Help:      "Default relief resources created alongside new disasters.",
		}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.EventsPublished,
		m.EventsDropped,
		m.StreamClients,
		m.LookupCache,
		m.ImageVerifications,
		m.SocialPostsIngested,
		m.ReliefHubsCreated,
	}
}

// New creates the collectors and registers them with the default Prometheus
// registry, which promhttp serves at /-/metrics.
func New() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewForTesting creates unregistered collectors so tests can build many
// instances without "already registered" panics.
func NewForTesting() *Metrics {
	return newMetrics()
}
