package telemetry

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"

	"github.com/jsamuelsen/quote-service/internal/platform/logging"
)

const instrumentationName = "github.com/jsamuelsen/quote-service/internal/platform/telemetry"

// TraceIDHeader carries the active trace ID back to the caller.
const TraceIDHeader = "X-Trace-ID"

// unmatchedRoute labels requests that hit no route, keeping label
// cardinality bounded.
const unmatchedRoute = "unmatched"

type serverInstruments struct {
	duration metric.Float64Histogram
	requests metric.Int64Counter
	inFlight metric.Int64UpDownCounter
}

func newServerInstruments(mp metric.MeterProvider) (*serverInstruments, error) {
	meter := mp.Meter(instrumentationName)

	duration, err := meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("HTTP request duration in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, err
	}

	requests, err := meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	inFlight, err := meter.Int64UpDownCounter(
		"http.server.active_requests",
		metric.WithDescription("Number of in-flight HTTP requests"),
	)
	if err != nil {
		return nil, err
	}

	return &serverInstruments{duration: duration, requests: requests, inFlight: inFlight}, nil
}

// MiddlewareOption configures Middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	meterProvider metric.MeterProvider
}

// WithMeterProvider records on mp instead of the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) MiddlewareOption {
	return func(cfg *middlewareConfig) {
		cfg.meterProvider = mp
	}
}

// Middleware records request metrics, echoes the trace ID in X-Trace-ID and
// tags the request logger with it. It must run after TracingMiddleware so
// the server span is already in the context.
func Middleware(opts ...MiddlewareOption) gin.HandlerFunc {
	cfg := middlewareConfig{meterProvider: otel.GetMeterProvider()}
	for _, opt := range opts {
		opt(&cfg)
	}

	instruments, err := newServerInstruments(cfg.meterProvider)
	if err != nil {
		otel.Handle(err)
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if traceID := TraceID(ctx); traceID != "" {
			c.Header(TraceIDHeader, traceID)
			ctx = logging.WithTraceID(ctx, traceID)
			c.Request = c.Request.WithContext(ctx)
		}

		if instruments == nil {
			c.Next()
			return
		}

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		base := []attribute.KeyValue{
			semconv.HTTPRequestMethodKey.String(c.Request.Method),
			semconv.HTTPRoute(route),
		}

		start := time.Now()

		instruments.inFlight.Add(ctx, 1, metric.WithAttributes(base...))
		defer instruments.inFlight.Add(ctx, -1, metric.WithAttributes(base...))

		c.Next()

		attrs := metric.WithAttributes(append(base, semconv.HTTPResponseStatusCode(c.Writer.Status()))...)
		instruments.duration.Record(ctx, time.Since(start).Seconds(), attrs)
		instruments.requests.Add(ctx, 1, attrs)
	}
}

// TracingMiddleware starts a server span per request using otelgin.
func TracingMiddleware(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}
