package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/disaster-response/internal/domain"
)

// lockedRecorder lets the test read the stream while the handler writes.
type lockedRecorder struct {
	*httptest.ResponseRecorder
	mu sync.Mutex
}

func (r *lockedRecorder) Write(b []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ResponseRecorder.Write(b)
}

func (r *lockedRecorder) body() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Body.String()
}

func TestEventStreamHandler_StreamsPublishedEvents(t *testing.T) {
	api := newTestAPI(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events?types=disaster_updated", http.NoBody).WithContext(ctx)
	rec := &lockedRecorder{ResponseRecorder: httptest.NewRecorder()}

	done := make(chan struct{})
	go func() {
		defer close(done)
		api.engine.ServeHTTP(rec, req)
	}()

	require.Eventually(t, func() bool { return api.hub.Clients() == 1 }, time.Second, 5*time.Millisecond)

	api.geocoder.EXPECT().Geocode(mock.Anything, "Manhattan, NYC").Return(manhattan, nil)
	d := api.createDisaster(t, map[string]any{"title": "NYC Flood", "location_name": "Manhattan, NYC"})

	require.Eventually(t, func() bool {
		return strings.Contains(rec.body(), "event:disaster_updated")
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream did not end after the client disconnected")
	}

	body := rec.body()
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, `"type":"disaster_updated"`)
	assert.Contains(t, body, d.ID)
	assert.NotContains(t, body, "resources_updated", "filtered out by ?types")
	assert.Zero(t, api.hub.Clients())
}

func TestEventStreamHandler_EndsWhenHubCloses(t *testing.T) {
	api := newTestAPI(t)

	rec := &lockedRecorder{ResponseRecorder: httptest.NewRecorder()}
	done := make(chan struct{})
	go func() {
		defer close(done)
		api.engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/events", http.NoBody))
	}()

	require.Eventually(t, func() bool { return api.hub.Clients() == 1 }, time.Second, 5*time.Millisecond)
	api.hub.Close()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stream did not end after the hub closed")
	}
}

func TestEventStreamHandler_UnknownType(t *testing.T) {
	api := newTestAPI(t)

	w := api.do(t, http.MethodGet, "/api/v1/events?types=disaster_updated,bogus", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestParseEventTypes(t *testing.T) {
	types, err := parseEventTypes(" report_updated , ,resources_updated")
	require.NoError(t, err)
	assert.Equal(t, []domain.EventType{domain.EventReportUpdated, domain.EventResourcesUpdated}, types)

	types, err = parseEventTypes("")
	require.NoError(t, err)
	assert.Empty(t, types)
}
