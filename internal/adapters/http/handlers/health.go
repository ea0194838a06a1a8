// Package handlers provides the HTTP handlers of the disaster response API.
package handlers

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/disaster-response/internal/adapters/http/dto"
	"github.com/jsamuelsen/disaster-response/internal/ports"
)

// BuildInfo is injected at build time with ldflags.
type BuildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// NewBuildInfo creates a BuildInfo for the running Go version.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	return BuildInfo{
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// HealthHandler serves the root status and the /-/ operational endpoints.
type HealthHandler struct {
	service   string
	registry  ports.HealthRegistry
	buildInfo BuildInfo
}

// NewHealthHandler creates a health handler. service is reported by GET /.
func NewHealthHandler(service string, registry ports.HealthRegistry, buildInfo BuildInfo) *HealthHandler {
	return &HealthHandler{
		service:   service,
		registry:  registry,
		buildInfo: buildInfo,
	}
}

// Status handles GET /, the status check browsers and uptime monitors hit.
func (h *HealthHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ServiceStatusResponse{Status: "ok", Service: h.service})
}

type livenessResponse struct {
	Status string `json:"status"`
}

// Liveness handles /-/live. It never checks dependencies.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, livenessResponse{Status: "ok"})
}

type readinessResponse struct {
	Status string                        `json:"status"`
	Checks map[string]*ports.CheckResult `json:"checks,omitempty"`
}

// Readiness handles /-/ready: 200 while the database and upstream circuit
// breakers are healthy, 503 otherwise.
func (h *HealthHandler) Readiness(c *gin.Context) {
	result := h.registry.CheckAll(c.Request.Context())

	status := http.StatusOK
	if result.Status == ports.HealthStatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	c.JSON(status, readinessResponse{
		Status: string(result.Status),
		Checks: result.Checks,
	})
}

// BuildInfoHandler handles /-/build.
func (h *HealthHandler) BuildInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildInfo)
}

// RegisterHealthRoutesOnEngine registers GET / and the /-/ endpoints:
//   - GET /-/live
//   - GET /-/ready
//   - GET /-/build
//   - GET /-/metrics (Prometheus)
func (h *HealthHandler) RegisterHealthRoutesOnEngine(engine *gin.Engine) {
	engine.GET("/", h.Status)

	ops := engine.Group("/-")
	ops.GET("/live", h.Liveness)
	ops.GET("/ready", h.Readiness)
	ops.GET("/build", h.BuildInfoHandler)
	ops.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
