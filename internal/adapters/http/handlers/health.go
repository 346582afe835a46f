// Package handlers provides HTTP request handlers for the service.
package handlers

import (
	"log/slog"
	"net/http"
	"runtime"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jsamuelsen/quote-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-service/internal/ports"
)

// ServiceName identifies the binary in build info.
const ServiceName = "quote-service"

// BuildInfo describes the running binary. Version, Commit and BuildTime are
// injected with ldflags.
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// NewBuildInfo fills in the service name and the toolchain version.
func NewBuildInfo(version, commit, buildTime string) BuildInfo {
	return BuildInfo{
		Service:   ServiceName,
		Version:   version,
		Commit:    commit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// HealthOption configures a HealthHandler.
type HealthOption func(*HealthHandler)

// WithGatherer serves /-/metrics from g instead of the default registry.
func WithGatherer(g prometheus.Gatherer) HealthOption {
	return func(h *HealthHandler) {
		h.gatherer = g
	}
}

// WithClock replaces time.Now, for uptime reporting.
func WithClock(now func() time.Time) HealthOption {
	return func(h *HealthHandler) {
		h.now = now
	}
}

// HealthHandler serves the operational /-/ endpoints.
type HealthHandler struct {
	registry  ports.HealthRegistry
	buildInfo BuildInfo
	gatherer  prometheus.Gatherer
	now       func() time.Time
	startedAt time.Time
}

// NewHealthHandler creates a handler; uptime is measured from this call.
func NewHealthHandler(registry ports.HealthRegistry, buildInfo BuildInfo, opts ...HealthOption) *HealthHandler {
	h := &HealthHandler{
		registry:  registry,
		buildInfo: buildInfo,
		gatherer:  prometheus.DefaultGatherer,
		now:       time.Now,
	}

	for _, opt := range opts {
		opt(h)
	}

	h.startedAt = h.now()

	return h
}

type livenessResponse struct {
	Status string `json:"status"`
	Uptime string `json:"uptime"`
}

// Liveness answers 200 while the process runs. It checks nothing else.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, livenessResponse{
		Status: "ok",
		Uptime: h.now().Sub(h.startedAt).Round(time.Second).String(),
	})
}

type readinessResponse struct {
	Status    string                        `json:"status"`
	Checks    map[string]*ports.CheckResult `json:"checks,omitempty"`
	CheckedAt time.Time                     `json:"checkedAt"`
}

// Readiness runs every registered check: 200 when all pass, 503 otherwise.
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx := c.Request.Context()
	result := h.registry.CheckAll(ctx)

	status := http.StatusOK
	if result.Status == ports.HealthStatusUnhealthy {
		status = http.StatusServiceUnavailable

		logging.FromContext(ctx).Warn("readiness check failed",
			slog.Any("failing", failingChecks(result)),
		)
	}

	c.JSON(status, readinessResponse{
		Status:    string(result.Status),
		Checks:    result.Checks,
		CheckedAt: result.Timestamp,
	})
}

func failingChecks(result *ports.HealthResult) []string {
	var names []string

	for name, check := range result.Checks {
		if check.Status == ports.HealthStatusUnhealthy {
			names = append(names, name)
		}
	}

	sort.Strings(names)

	return names
}

// BuildInfoHandler serves /-/build.
func (h *HealthHandler) BuildInfoHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.buildInfo)
}

// MetricsHandler exposes the handler's gatherer in the Prometheus text format.
func (h *HealthHandler) MetricsHandler() http.Handler {
	return promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})
}

// RegisterHealthRoutes mounts the operational endpoints under /-/:
//   - GET /-/live
//   - GET /-/ready
//   - GET /-/build
//   - GET /-/metrics
func (h *HealthHandler) RegisterHealthRoutes(engine *gin.Engine) {
	ops := engine.Group("/-")
	ops.GET("/live", h.Liveness)
	ops.GET("/ready", h.Readiness)
	ops.GET("/build", h.BuildInfoHandler)
	ops.GET("/metrics", gin.WrapH(h.MetricsHandler()))
}
