//go:build integration

package integration

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (s *stack) do(t *testing.T, method, path, user string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, s.server.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}

	resp, err := s.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// field evaluates a JSONPath expression against a response body.
func field(t *testing.T, body []byte, path string) any {
	t.Helper()

	var doc any
	require.NoError(t, json.Unmarshal(body, &doc), string(body))
	val, err := jsonpath.Get(path, doc)
	require.NoError(t, err, "%s in %s", path, body)
	return val
}

// streamEvents subscribes to the event stream and returns the received
// event names.
func (s *stack) streamEvents(t *testing.T, query string) <-chan string {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.server.URL+"/api/v1/events"+query, http.NoBody)
	require.NoError(t, err)

	resp, err := s.server.Client().Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	names := make(chan string, 16)
	go func() {
		defer resp.Body.Close()
		defer close(names)

		scanner := bufio.NewScanner(resp.Body)
		for scanner.Scan() {
			if name, ok := strings.CutPrefix(scanner.Text(), "event:"); ok {
				names <- strings.TrimSpace(name)
			}
		}
	}()

	require.Eventually(t, func() bool { return s.hub.Clients() == 1 }, time.Second, 10*time.Millisecond)
	return names
}

func nextEvent(t *testing.T, names <-chan string) string {
	t.Helper()
	select {
	case name := <-names:
		return name
	case <-time.After(2 * time.Second):
		t.Fatal("no event received")
		return ""
	}
}

func TestDisasterLifecycle(t *testing.T) {
	s := newStack(t)
	names := s.streamEvents(t, "?types=disaster_updated,resources_updated")

	status, body := s.do(t, http.MethodPost, "/api/v1/disasters", "netrunnerX", map[string]any{
		"title":       "NYC Flood",
		"description": "Heavy flooding in Manhattan",
		"tags":        []string{"flood", "urgent"},
	})
	require.Equal(t, http.StatusCreated, status, string(body))

	id, _ := field(t, body, "$.disaster.id").(string)
	require.NotEmpty(t, id)
	assert.Equal(t, "Manhattan, NYC", field(t, body, "$.disaster.location_name"))
	assert.InDelta(t, 40.7831, field(t, body, "$.disaster.latitude"), 1e-6)
	assert.Equal(t, "netrunnerX", field(t, body, "$.disaster.owner_id"))

	// The relief hub is announced before the disaster itself.
	assert.Equal(t, "resources_updated", nextEvent(t, names))
	assert.Equal(t, "disaster_updated", nextEvent(t, names))

	t.Run("relief hub is nearby", func(t *testing.T) {
		status, body := s.do(t, http.MethodGet,
			"/api/v1/disasters/"+id+"/resources?lat=40.7831&lon=-73.9712&radius=1000", "netrunnerX", nil)
		require.Equal(t, http.StatusOK, status, string(body))
		assert.Equal(t, "Flood Relief", field(t, body, "$.resources[0].type"))
	})

	t.Run("list by tag", func(t *testing.T) {
		status, body := s.do(t, http.MethodGet, "/api/v1/disasters?tag=flood", "netrunnerX", nil)
		require.Equal(t, http.StatusOK, status, string(body))
		assert.Equal(t, id, field(t, body, "$[0].id"))
	})

	t.Run("update", func(t *testing.T) {
		status, body := s.do(t, http.MethodPut, "/api/v1/disasters/"+id, "netrunnerX", map[string]any{
			"title": "NYC Flood (update)",
		})
		require.Equal(t, http.StatusOK, status, string(body))
		assert.Equal(t, "NYC Flood (update)", field(t, body, "$.disaster.title"))
		assert.Equal(t, "disaster_updated", nextEvent(t, names))
	})

	t.Run("contributors cannot delete", func(t *testing.T) {
		status, _ := s.do(t, http.MethodDelete, "/api/v1/disasters/"+id, "netrunnerX", nil)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("admin delete", func(t *testing.T) {
		status, body := s.do(t, http.MethodDelete, "/api/v1/disasters/"+id, "reliefAdmin", nil)
		require.Equal(t, http.StatusOK, status, string(body))
		assert.Equal(t, "disaster_updated", nextEvent(t, names))

		status, body = s.do(t, http.MethodGet, "/api/v1/disasters/"+id, "netrunnerX", nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Disaster not found", field(t, body, "$.error.message"))
	})
}

func TestSocialFeedAndImageVerification(t *testing.T) {
	s := newStack(t)

	status, body := s.do(t, http.MethodPost, "/api/v1/disasters", "netrunnerX", map[string]any{
		"title":         "NYC Flood",
		"location_name": "Manhattan, NYC",
		"description":   "Heavy flooding",
		"tags":          []string{"flood"},
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	id := field(t, body, "$.disaster.id").(string)

	status, body = s.do(t, http.MethodGet, "/api/v1/disasters/"+id+"/social", "netrunnerX", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Equal(t, "citizen1.bsky.social", field(t, body, "$.reports[0].author"))

	status, body = s.do(t, http.MethodPost, "/api/v1/disasters/"+id+"/reports", "netrunnerX", map[string]any{
		"content":   "Water rising on Delancey St",
		"image_url": s.upstreams.images.URL + "/flood.png",
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	reportID := field(t, body, "$.report.id").(string)

	status, body = s.do(t, http.MethodPost, "/api/v1/disasters/"+id+"/verify-image", "netrunnerX", map[string]any{
		"image_url": s.upstreams.images.URL + "/flood.png",
		"report_id": reportID,
	})
	require.Equal(t, http.StatusOK, status, string(body))
	assert.Equal(t, true, field(t, body, "$.success"))
	assert.Equal(t, "authentic", field(t, body, "$.verification.label"))

	status, body = s.do(t, http.MethodGet, "/api/v1/disasters/"+id+"/reports", "netrunnerX", nil)
	require.Equal(t, http.StatusOK, status, string(body))
	reports, ok := field(t, body, "$.reports").([]any)
	require.True(t, ok)
	// One social post plus the submitted report.
	assert.Len(t, reports, 2)
}

func TestGeocodeUsesLookupCache(t *testing.T) {
	s := newStack(t)

	for range 3 {
		status, body := s.do(t, http.MethodPost, "/api/v1/geocode", "", map[string]any{
			"description": "Heavy flooding in Manhattan",
		})
		require.Equal(t, http.StatusOK, status, string(body))
		assert.Equal(t, "Manhattan, NYC", field(t, body, "$.location_name"))
		assert.InDelta(t, -73.9712, field(t, body, "$.coordinates.lng"), 1e-6)
	}

	assert.Equal(t, int32(1), s.upstreams.extractCalls.Load())
	assert.Equal(t, int32(1), s.upstreams.geocodeCalls.Load())
}

func TestGeocoderOutageTripsReadiness(t *testing.T) {
	s := newStack(t)
	s.upstreams.mapboxDown.Store(true)

	status, _ := s.do(t, http.MethodGet, "/-/ready", "", nil)
	require.Equal(t, http.StatusOK, status)

	for range 2 {
		status, body := s.do(t, http.MethodPost, "/api/v1/geocode", "", map[string]any{
			"description": "Heavy flooding in Manhattan",
		})
		assert.Equal(t, http.StatusInternalServerError, status, string(body))
	}

	status, body := s.do(t, http.MethodGet, "/-/ready", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "unhealthy", field(t, body, "$.checks.mapbox.status"))
	assert.Equal(t, "healthy", field(t, body, "$.checks.gemini.status"))

	// An open circuit sends no further requests upstream.
	calls := s.upstreams.geocodeCalls.Load()
	s.do(t, http.MethodPost, "/api/v1/geocode", "", map[string]any{"description": "Heavy flooding in Manhattan"})
	assert.Equal(t, calls, s.upstreams.geocodeCalls.Load())
}

func TestFailingImageHostLeavesReadinessAlone(t *testing.T) {
	s := newStack(t)

	status, body := s.do(t, http.MethodPost, "/api/v1/disasters", "netrunnerX", map[string]any{
		"title":         "NYC Flood",
		"location_name": "Manhattan, NYC",
		"tags":          []string{"flood"},
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	id := field(t, body, "$.disaster.id").(string)

	status, body = s.do(t, http.MethodPost, "/api/v1/disasters/"+id+"/reports", "netrunnerX", map[string]any{
		"content": "Water rising on Delancey St",
	})
	require.Equal(t, http.StatusCreated, status, string(body))
	reportID := field(t, body, "$.report.id").(string)

	verify := func(imageURL string) int {
		status, _ := s.do(t, http.MethodPost, "/api/v1/disasters/"+id+"/verify-image", "netrunnerX", map[string]any{
			"image_url": imageURL,
			"report_id": reportID,
		})
		return status
	}

	for range 6 {
		assert.Equal(t, http.StatusInternalServerError, verify(s.upstreams.images.URL+"/broken/flood.png"))
	}

	status, _ = s.do(t, http.MethodGet, "/-/ready", "", nil)
	assert.Equal(t, http.StatusOK, status)
}
