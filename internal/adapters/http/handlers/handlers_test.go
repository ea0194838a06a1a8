package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/disaster-response/internal/adapters/events"
	"github.com/jsamuelsen/disaster-response/internal/adapters/flags"
	"github.com/jsamuelsen/disaster-response/internal/adapters/http/dto"
	"github.com/jsamuelsen/disaster-response/internal/adapters/http/middleware"
	"github.com/jsamuelsen/disaster-response/internal/adapters/memstore"
	"github.com/jsamuelsen/disaster-response/internal/app"
	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/mocks"
	"github.com/jsamuelsen/disaster-response/internal/platform/config"
	"github.com/jsamuelsen/disaster-response/internal/platform/metrics"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const (
	contributor = "netrunnerX"
	admin       = "reliefAdmin"
)

var testNow = time.Date(2025, 6, 17, 12, 0, 0, 0, time.UTC)

// testAPI wires the real services over the in-memory store. Only the
// upstream ports are mocked.
type testAPI struct {
	engine    *gin.Engine
	clock     *clockwork.FakeClock
	hub       *events.Hub
	extractor *mocks.MockLocationExtractor
	geocoder  *mocks.MockGeocoder
	feed      *mocks.MockSocialFeed
	fetcher   *mocks.MockImageFetcher
	analyzer  *mocks.MockImageAnalyzer
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := clockwork.NewFakeClockAt(testNow)
	m := metrics.NewForTesting()

	api := &testAPI{
		clock:     clock,
		hub:       events.NewHub(16, m, logger),
		extractor: mocks.NewMockLocationExtractor(t),
		geocoder:  mocks.NewMockGeocoder(t),
		feed:      mocks.NewMockSocialFeed(t),
		fetcher:   mocks.NewMockImageFetcher(t),
		analyzer:  mocks.NewMockImageAnalyzer(t),
	}
	t.Cleanup(api.hub.Close)

	store := memstore.NewStore(clock)
	disasterRepo := memstore.NewDisasterRepo(store)
	resourceRepo := memstore.NewResourceRepo(store)
	reportRepo := memstore.NewReportRepo(store)
	publisher := events.NewFanOut(m, api.hub)
	featureFlags := flags.NewStatic(nil)

	locator := app.NewGeocodeService(app.GeocodeServiceConfig{
		Extractor: api.extractor,
		Geocoder:  api.geocoder,
		Logger:    logger,
	})

	dir := middleware.NewDirectory(config.AuthConfig{Users: map[string]string{
		contributor: middleware.RoleContributor,
		admin:       middleware.RoleAdmin,
	}})

	engine := gin.New()
	v1 := engine.Group("/api/v1")
	open := v1.Group("", middleware.OptionalUser(dir))
	disasters := v1.Group("/disasters", middleware.RequireUser(dir))

	NewDisasterHandler(app.NewDisasterService(app.DisasterServiceConfig{
		Disasters: disasterRepo,
		Resources: resourceRepo,
		Locator:   locator,
		Events:    publisher,
		Flags:     featureFlags,
		Metrics:   m,
		Clock:     clock,
		Logger:    logger,
	})).RegisterRoutes(disasters, middleware.RequireRole(middleware.RoleAdmin))

	NewGeocodeHandler(locator).RegisterRoutes(open)

	NewResourceHandler(app.NewResourceService(app.ResourceServiceConfig{
		Resources: resourceRepo,
		Locator:   locator,
		Events:    publisher,
		Clock:     clock,
		Logger:    logger,
	})).RegisterRoutes(open, disasters)

	NewSocialHandler(app.NewSocialService(app.SocialServiceConfig{
		Disasters: disasterRepo,
		Reports:   reportRepo,
		Feed:      api.feed,
		Events:    publisher,
		Flags:     featureFlags,
		Metrics:   m,
		Clock:     clock,
		Logger:    logger,
	})).RegisterRoutes(disasters)

	NewReportHandler(app.NewReportService(app.ReportServiceConfig{
		Disasters: disasterRepo,
		Reports:   reportRepo,
		Events:    publisher,
		Clock:     clock,
		Logger:    logger,
	})).RegisterRoutes(open, disasters)

	NewVerificationHandler(app.NewVerificationService(app.VerificationServiceConfig{
		Reports:  reportRepo,
		Fetcher:  api.fetcher,
		Analyzer: api.analyzer,
		Events:   publisher,
		Metrics:  m,
		Clock:    clock,
		Logger:   logger,
	})).RegisterRoutes(disasters)

	NewEventStreamHandler(api.hub, time.Minute).RegisterRoutes(open)

	api.engine = engine
	return api
}

// do sends a request as user (none when empty) and returns the recorder.
func (a *testAPI) do(t *testing.T, method, path, user string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader = http.NoBody
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}

	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

// createDisaster stores a disaster through the API and returns it.
func (a *testAPI) createDisaster(t *testing.T, body map[string]any) dto.DisasterResponse {
	t.Helper()

	w := a.do(t, http.MethodPost, "/api/v1/disasters", contributor, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var env struct {
		Disaster dto.DisasterResponse `json:"disaster"`
	}
	decode(t, w, &env)
	return env.Disaster
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.ErrorResponse
	decode(t, w, &resp)
	return resp.Error.Message
}

var manhattan = &domain.GeocodeResult{
	LocationName: "Manhattan, NYC",
	Point:        domain.Point{Lat: 40.7831, Lng: -73.9712},
}
