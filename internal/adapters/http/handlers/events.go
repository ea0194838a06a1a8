package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sse"
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/disaster-response/internal/adapters/events"
	"github.com/jsamuelsen/disaster-response/internal/adapters/http/dto"
	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/platform/logging"
)

// EventsPath is the Server-Sent Events stream. Request timeouts and access
// logging skip it.
const EventsPath = "/api/v1/events"

const defaultKeepalive = 25 * time.Second

var knownEventTypes = map[domain.EventType]struct{}{
	domain.EventDisasterUpdated:    {},
	domain.EventResourcesUpdated:   {},
	domain.EventSocialMediaUpdated: {},
	domain.EventReportUpdated:      {},
}

// EventStreamHandler streams hub events to browsers.
type EventStreamHandler struct {
	hub       *events.Hub
	keepalive time.Duration
}

// NewEventStreamHandler creates a stream handler. A keepalive of zero uses
// 25s.
func NewEventStreamHandler(hub *events.Hub, keepalive time.Duration) *EventStreamHandler {
	if keepalive <= 0 {
		keepalive = defaultKeepalive
	}
	return &EventStreamHandler{hub: hub, keepalive: keepalive}
}

// Stream handles GET /api/v1/events?types=a,b. Each event is sent as
// "event: <type>" with the JSON envelope as data. The stream ends when the
// client disconnects or the hub shuts down.
func (h *EventStreamHandler) Stream(c *gin.Context) {
	types, err := parseEventTypes(c.Query("types"))
	if err != nil {
		dto.HandleError(c, err, "")
		return
	}

	sub, err := h.hub.Subscribe(types...)
	if err != nil {
		dto.AbortWithCode(c, dto.ErrorCodeUnavailable, "Event stream is shutting down.")
		return
	}
	defer sub.Close()

	// A server write timeout would otherwise cut the stream.
	_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})

	ctx := c.Request.Context()
	logger := logging.FromContext(ctx)
	logger.InfoContext(ctx, "event stream opened", slog.Int("clients", h.hub.Clients()))
	defer logger.InfoContext(ctx, "event stream closed")

	c.Header("Content-Type", sse.ContentType)
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ticker := time.NewTicker(h.keepalive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case msg, ok := <-sub.Events():
			if !ok {
				return
			}
			c.Render(-1, sse.Event{
				Id:    msg.ID,
				Event: string(msg.Type),
				Data:  string(msg.Data),
			})
			c.Writer.Flush()

		case <-ticker.C:
			if _, err := fmt.Fprint(c.Writer, ": keepalive\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}

// parseEventTypes reads a comma-separated filter. Empty means all types.
func parseEventTypes(raw string) ([]domain.EventType, error) {
	var types []domain.EventType
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		t := domain.EventType(part)
		if _, ok := knownEventTypes[t]; !ok {
			return nil, domain.NewValidationErrorWithValue("types", "unknown event type "+part, part)
		}
		types = append(types, t)
	}
	return types, nil
}

// RegisterRoutes registers the stream on rg.
func (h *EventStreamHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/events", h.Stream)
}
