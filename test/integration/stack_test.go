//go:build integration

package integration

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/disaster-response/internal/adapters/clients"
	"github.com/jsamuelsen/disaster-response/internal/adapters/clients/acl"
	"github.com/jsamuelsen/disaster-response/internal/adapters/events"
	"github.com/jsamuelsen/disaster-response/internal/adapters/flags"
	apphttp "github.com/jsamuelsen/disaster-response/internal/adapters/http"
	"github.com/jsamuelsen/disaster-response/internal/adapters/http/handlers"
	"github.com/jsamuelsen/disaster-response/internal/adapters/memstore"
	"github.com/jsamuelsen/disaster-response/internal/app"
	"github.com/jsamuelsen/disaster-response/internal/platform/config"
	"github.com/jsamuelsen/disaster-response/internal/platform/metrics"
	"github.com/jsamuelsen/disaster-response/internal/ports"
)

// pngBytes is a 1x1 PNG.
var pngBytes = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89,
}

// upstreams fakes Gemini, Mapbox, Bluesky and an image host.
type upstreams struct {
	gemini  *httptest.Server
	mapbox  *httptest.Server
	bluesky *httptest.Server
	images  *httptest.Server

	// mapboxDown makes every geocoding call fail with 500.
	mapboxDown   atomic.Bool
	geocodeCalls atomic.Int32
	extractCalls atomic.Int32
}

func geminiAnswer(text string) []byte {
	b, _ := json.Marshal(map[string]any{
		"candidates": []any{map[string]any{
			"content": map[string]any{"parts": []any{map[string]any{"text": text}}},
		}},
	})
	return b
}

func newUpstreams(t *testing.T) *upstreams {
	t.Helper()
	u := &upstreams{}

	u.gemini = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		if strings.Contains(string(body), "inline_data") {
			_, _ = w.Write(geminiAnswer("The image appears authentic: consistent lighting and water damage."))
			return
		}
		u.extractCalls.Add(1)
		_, _ = w.Write(geminiAnswer("Manhattan, NYC"))
	}))

	u.mapbox = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u.geocodeCalls.Add(1)
		if u.mapboxDown.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features":[{"center":[-73.9712,40.7831],"place_name":"Manhattan, New York, United States","relevance":1}]}`))
	}))

	u.bluesky = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"posts":[
			{"uri":"at://did:plc:a/app.bsky.feed.post/1","cid":"c1",
			 "author":{"did":"did:plc:a","handle":"citizen1.bsky.social"},
			 "record":{"text":"#floodrelief Need food in Lower East Side","createdAt":"2025-06-17T10:00:00Z"}}
		]}`))
	}))

	u.images = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/broken/") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write(pngBytes)
	}))

	t.Cleanup(func() {
		u.gemini.Close()
		u.mapbox.Close()
		u.bluesky.Close()
		u.images.Close()
	})
	return u
}

// stack is the whole service wired in-process over the in-memory store.
type stack struct {
	server    *httptest.Server
	upstreams *upstreams
	hub       *events.Hub
}

func testClient(t *testing.T, name, baseURL string) *clients.Client {
	t.Helper()
	return newTestClient(t, name, baseURL, false)
}

func newTestClient(t *testing.T, name, baseURL string, perHost bool) *clients.Client {
	t.Helper()
	client, err := clients.New(&clients.Config{
		ServiceName:    name,
		BaseURL:        baseURL,
		Timeout:        5 * time.Second,
		CircuitPerHost: perHost,
		Retry: config.RetryConfig{
			MaxAttempts:     1,
			InitialInterval: 10 * time.Millisecond,
			MaxInterval:     50 * time.Millisecond,
			Multiplier:      2.0,
		},
		Circuit: config.CircuitBreakerConfig{
			MaxFailures:   2,
			Timeout:       time.Minute,
			HalfOpenLimit: 1,
		},
		Logger: discardLogger(),
	})
	require.NoError(t, err)
	return client
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStack(t *testing.T) *stack {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := discardLogger()
	u := newUpstreams(t)
	m := metrics.NewForTesting()
	registry := ports.NewHealthRegistry()

	store := memstore.NewStore(nil)
	disasters := memstore.NewDisasterRepo(store)
	resources := memstore.NewResourceRepo(store)
	reports := memstore.NewReportRepo(store)
	cache := memstore.NewCache(100, nil)

	gemini := acl.NewGeminiAdapter(testClient(t, "gemini", u.gemini.URL), "gemini-1.5-flash", logger)
	mapbox := acl.NewMapboxAdapter(testClient(t, "mapbox", u.mapbox.URL), "pk.test", logger)
	bluesky := acl.NewBlueskyAdapter(testClient(t, "bluesky", u.bluesky.URL), acl.BlueskyCredentials{}, logger)
	images := acl.NewImageFetcher(newTestClient(t, "image-fetch", "", true), 1<<20, logger)
	for _, checker := range []ports.HealthChecker{gemini, mapbox, bluesky} {
		require.NoError(t, registry.Register(checker))
	}

	hub := events.NewHub(32, m, logger)
	t.Cleanup(hub.Close)
	publisher := events.NewFanOut(m, hub)
	featureFlags := flags.NewStatic(map[string]bool{
		ports.FlagAutoReliefResource:   true,
		ports.FlagPersistSocialReports: true,
	})

	locator := app.NewGeocodeService(app.GeocodeServiceConfig{
		Extractor: acl.NewCachedLocationExtractor(gemini, cache, time.Hour, m, logger),
		Geocoder:  acl.NewCachedGeocoder(mapbox, cache, time.Hour, m, logger),
		Logger:    logger,
	})

	engine := gin.New()
	apphttp.SetupRouter(engine, apphttp.RouterConfig{
		ServiceName: "disaster-response",
		Auth: config.AuthConfig{
			Header: "X-User-ID",
			Users: map[string]string{
				"netrunnerX":  "contributor",
				"reliefAdmin": "admin",
			},
		},
		CORS:    config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		Timeout: 10 * time.Second,
		Handlers: apphttp.Handlers{
			Health: handlers.NewHealthHandler("disaster-response", registry, handlers.NewBuildInfo("test", "abc123", "")),
			Disasters: handlers.NewDisasterHandler(app.NewDisasterService(app.DisasterServiceConfig{
				Disasters: disasters,
				Resources: resources,
				Locator:   locator,
				Events:    publisher,
				Flags:     featureFlags,
				Metrics:   m,
				Logger:    logger,
			})),
			Geocode: handlers.NewGeocodeHandler(locator),
			Resources: handlers.NewResourceHandler(app.NewResourceService(app.ResourceServiceConfig{
				Resources: resources,
				Locator:   locator,
				Events:    publisher,
				Logger:    logger,
			})),
			Social: handlers.NewSocialHandler(app.NewSocialService(app.SocialServiceConfig{
				Disasters:       disasters,
				Reports:         reports,
				Feed:            bluesky,
				Events:          publisher,
				Flags:           featureFlags,
				Metrics:         m,
				Logger:          logger,
				MaxKeywords:     3,
				PostsPerKeyword: 10,
				Concurrency:     2,
			})),
			Reports: handlers.NewReportHandler(app.NewReportService(app.ReportServiceConfig{
				Disasters: disasters,
				Reports:   reports,
				Events:    publisher,
				Logger:    logger,
			})),
			Verification: handlers.NewVerificationHandler(app.NewVerificationService(app.VerificationServiceConfig{
				Reports:  reports,
				Fetcher:  images,
				Analyzer: gemini,
				Events:   publisher,
				Metrics:  m,
				Logger:   logger,
			})),
			Events: handlers.NewEventStreamHandler(hub, time.Minute),
		},
	})

	server := httptest.NewServer(engine)
	t.Cleanup(server.Close)

	return &stack{server: server, upstreams: u, hub: hub}
}
