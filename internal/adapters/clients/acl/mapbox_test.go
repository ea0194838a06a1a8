package acl

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/disaster-response/internal/adapters/clients"
	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/platform/config"
	"github.com/jsamuelsen/disaster-response/internal/platform/logging"
)

func TestMapboxAdapter_Geocode(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		want     *domain.GeocodeResult
		errCheck func(error) bool
	}{
		{
			name:   "best match",
			status: http.StatusOK,
			body: `{"features":[
				{"center":[-73.9712,40.7831],"place_name":"Manhattan, New York, United States","text":"Manhattan","relevance":1}
			]}`,
			want: &domain.GeocodeResult{
				LocationName: "Manhattan, NYC",
				Point:        domain.Point{Lat: 40.7831, Lng: -73.9712},
			},
		},
		{
			name:     "no features",
			status:   http.StatusOK,
			body:     `{"features":[]}`,
			errCheck: domain.IsNotFound,
		},
		{
			name:     "feature without center",
			status:   http.StatusOK,
			body:     `{"features":[{"place_name":"Nowhere"}]}`,
			errCheck: domain.IsUnavailable,
		},
		{
			name:     "invalid token",
			status:   http.StatusUnauthorized,
			body:     `{"message":"Not Authorized - Invalid Token"}`,
			errCheck: domain.IsUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath, gotToken, gotLimit string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.EscapedPath()
				gotToken = r.URL.Query().Get("access_token")
				gotLimit = r.URL.Query().Get("limit")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			adapter := NewMapboxAdapter(testClient(t, "mapbox", server.URL), "pk.test", discardLogger())

			got, err := adapter.Geocode(context.Background(), "Manhattan, NYC")

			assert.Equal(t, "/geocoding/v5/mapbox.places/Manhattan%2C%20NYC.json", gotPath)
			assert.Equal(t, "pk.test", gotToken)
			assert.Equal(t, "1", gotLimit)

			if tt.errCheck != nil {
				require.Error(t, err)
				assert.True(t, tt.errCheck(err), "unexpected error type: %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapboxAdapter_GeocodeRequiresName(t *testing.T) {
	adapter := NewMapboxAdapter(testClient(t, "mapbox", "http://127.0.0.1:1"), "pk.test", nil)

	_, err := adapter.Geocode(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestMapboxAdapter_TokenStaysOutOfLogsAndErrors(t *testing.T) {
	const token = "pk.SECRET-TOKEN"

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client, err := clients.New(&clients.Config{
		ServiceName: "mapbox",
		BaseURL:     server.URL,
		Retry:       config.RetryConfig{MaxAttempts: 2, InitialInterval: time.Millisecond, MaxInterval: time.Millisecond, Multiplier: 1},
		Circuit:     config.CircuitBreakerConfig{MaxFailures: 5, Timeout: time.Minute, HalfOpenLimit: 1},
		Logger:      logger,
	})
	require.NoError(t, err)

	adapter := NewMapboxAdapter(client, token, logger)
	ctx := logging.WithContext(context.Background(), logger)
	_, err = adapter.Geocode(ctx, "Manhattan")
	require.Error(t, err)

	assert.NotContains(t, err.Error(), token)
	assert.Contains(t, logs.String(), "request failed")
	assert.NotContains(t, logs.String(), token)
	assert.NotContains(t, logs.String(), "access_token")
}
