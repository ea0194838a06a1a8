package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/disaster-response/internal/adapters/http/handlers"
	"github.com/jsamuelsen/disaster-response/internal/adapters/http/middleware"
	"github.com/jsamuelsen/disaster-response/internal/platform/config"
	"github.com/jsamuelsen/disaster-response/internal/platform/telemetry"
)

// DefaultRequestTimeout applies when RouterConfig.Timeout is zero.
const DefaultRequestTimeout = 30 * time.Second

// Handlers groups the API handlers. Nil handlers are not registered.
type Handlers struct {
	Health       *handlers.HealthHandler
	Disasters    *handlers.DisasterHandler
	Geocode      *handlers.GeocodeHandler
	Resources    *handlers.ResourceHandler
	Social       *handlers.SocialHandler
	Reports      *handlers.ReportHandler
	Verification *handlers.VerificationHandler
	Events       *handlers.EventStreamHandler
}

// RouterConfig contains what SetupRouter needs.
type RouterConfig struct {
	ServiceName string
	Auth        config.AuthConfig
	CORS        config.CORSConfig
	Timeout     time.Duration
	Handlers    Handlers
}

// SetupRouter installs middleware and routes on engine. Global middleware
// runs in this order:
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry tracing and request metrics
//  5. Access logging (skips /-/ and the event stream)
//  6. CORS
//
// Routes:
//   - GET / and /-/*: status, probes and metrics
//   - /api/v1/disasters and /api/v1/disasters/:id: require a known X-User-ID;
//     DELETE requires admin
//   - the rest of /api/v1, including the social, resources, reports and
//     verify-image routes under a disaster: the user header is optional
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Tracing(cfg.ServiceName),
		telemetry.RequestMetrics(),
		middleware.Logging(handlers.EventsPath),
		middleware.CORS(cfg.CORS, cfg.Auth.Header),
	)

	h := cfg.Handlers
	if h.Health != nil {
		h.Health.RegisterHealthRoutesOnEngine(engine)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	dir := middleware.NewDirectory(cfg.Auth)

	apiV1 := engine.Group("/api/v1", middleware.Timeout(timeout, handlers.EventsPath))
	open := apiV1.Group("", middleware.OptionalUser(dir))
	disasters := apiV1.Group("/disasters", middleware.RequireUser(dir))
	disasterScoped := apiV1.Group("/disasters", middleware.OptionalUser(dir))

	if h.Disasters != nil {
		h.Disasters.RegisterRoutes(disasters, middleware.RequireRole(middleware.RoleAdmin))
	}
	if h.Geocode != nil {
		h.Geocode.RegisterRoutes(open)
	}
	if h.Resources != nil {
		h.Resources.RegisterRoutes(open, disasterScoped)
	}
	if h.Social != nil {
		h.Social.RegisterRoutes(disasterScoped)
	}
	if h.Reports != nil {
		h.Reports.RegisterRoutes(open, disasterScoped)
	}
	if h.Verification != nil {
		h.Verification.RegisterRoutes(disasterScoped)
	}
	if h.Events != nil {
		h.Events.RegisterRoutes(open)
	}
}
