package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-service/internal/platform/telemetry"
)

// RouterConfig contains everything SetupRouter wires together.
type RouterConfig struct {
	// ServiceName names the otelgin server spans.
	ServiceName string

	// TracingEnabled adds otelgin server spans.
	TracingEnabled bool

	// Timeout is the per-request deadline of the quote and home routes.
	Timeout time.Duration

	QuoteHandler  *handlers.QuoteHandler
	HomeHandler   *handlers.HomeHandler
	HealthHandler *handlers.HealthHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry tracing (when enabled) and request metrics
//  5. Logging (skips /-/ paths)
//
// Route groups:
//   - /-/: probes, build info and Prometheus metrics, no timeout
//   - everything else: the quote API and the home page, with Timeout
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.CorrelationID(),
	)

	if cfg.TracingEnabled {
		engine.Use(telemetry.TracingMiddleware(cfg.ServiceName))
	}

	engine.Use(
		telemetry.Middleware(),
		middleware.Logging(),
	)

	engine.NoRoute(notFound)
	engine.NoMethod(methodNotAllowed)
	engine.HandleMethodNotAllowed = true

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutes(engine)
	}

	api := engine.Group("", middleware.Deadline(cfg.Timeout))

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(api)
	}

	if cfg.HomeHandler != nil {
		cfg.HomeHandler.RegisterHomeRoutes(api)
	}
}
