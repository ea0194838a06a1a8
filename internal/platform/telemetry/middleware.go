package telemetry

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/disaster-response/internal/platform/logging"
)

// HeaderTraceID carries the request's trace ID back to the caller so a
// failed request can be found in the tracing backend.
const HeaderTraceID = "X-Trace-ID"

// probePrefix covers the liveness, readiness and metrics endpoints.
const probePrefix = "/-/"

// Tracing starts a server span for every request except the probes.
func Tracing(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName,
		otelgin.WithFilter(func(r *http.Request) bool {
			return !strings.HasPrefix(r.URL.Path, probePrefix)
		}),
	)
}

type serverInstruments struct {
	duration metric.Float64Histogram
	requests metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

func newServerInstruments() (*serverInstruments, error) {
	meter := otel.Meter(instrumentationName + "/http")

	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err
	}
	requests, err := meter.Int64Counter("http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"))
	if err != nil {
		return nil, err
	}
	inFlight, err := meter.Int64UpDownCounter("http.server.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests, event streams included"))
	if err != nil {
		return nil, err
	}
	return &serverInstruments{duration: duration, requests: requests, inFlight: inFlight}, nil
}

// RequestMetrics records OTel request metrics, sets the X-Trace-ID response
// header and adds trace_id to the request logger. It must run after Tracing.
// Event streams count as in flight while open but are left out of the
// duration histogram.
func RequestMetrics() gin.HandlerFunc {
	inst, err := newServerInstruments()
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		start := time.Now()
		ctx := c.Request.Context()
		route := metric.WithAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", c.FullPath()),
		)

		if inst != nil {
			inst.inFlight.Add(ctx, 1, route)
			defer inst.inFlight.Add(ctx, -1, route)
		}

		if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
			traceID := sc.TraceID().String()
			c.Header(HeaderTraceID, traceID)
			c.Request = c.Request.WithContext(logging.WithTraceID(ctx, traceID))
		}

		c.Next()

		if inst == nil || c.Writer.Header().Get("Content-Type") == "text/event-stream" {
			return
		}
		status := metric.WithAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", c.FullPath()),
			attribute.Int("http.status_code", c.Writer.Status()),
		)
		inst.duration.Record(ctx, time.Since(start).Seconds(), status)
		inst.requests.Add(ctx, 1, status)
	}
}
