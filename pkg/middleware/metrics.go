package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/backlinehq/backline/pkg/telemetry"
)

// httpMetrics holds the per-request instruments. Created once; the meter is
// a no-op until telemetry is initialized with an exporter.
type httpMetrics struct {
	requests *telemetry.Counter
	duration *telemetry.Histogram
	inFlight *telemetry.UpDownCounter
}

func newHTTPMetrics() (*httpMetrics, error) {
	requests, err := telemetry.NewCounter(telemetry.MetricOpts{
		Name:        "http_requests_total",
		Description: "Total HTTP requests served",
		Unit:        "1",
	})
	if err != nil {
		return nil, err
	}

	duration, err := telemetry.NewHistogramWithBuckets(telemetry.MetricOpts{
		Name:        "http_request_duration_seconds",
		Description: "HTTP request duration",
		Unit:        "s",
	}, []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5})
	if err != nil {
		return nil, err
	}

	inFlight, err := telemetry.NewUpDownCounter(telemetry.MetricOpts{
		Name:        "http_requests_in_flight",
		Description: "HTTP requests currently being handled",
		Unit:        "1",
	})
	if err != nil {
		return nil, err
	}

	return &httpMetrics{requests: requests, duration: duration, inFlight: inFlight}, nil
}

// Metrics records a counter and duration histogram per request, keyed by
// method, route template, and status. Unmatched routes report an empty path
// rather than the raw URL, keeping cardinality bounded.
func Metrics() gin.HandlerFunc {
	m, err := newHTTPMetrics()
	if err != nil {
		// No instruments, no middleware work.
		return func(c *gin.Context) { c.Next() }
	}

	return func(c *gin.Context) {
		start := time.Now()
		ctx := c.Request.Context()
		m.inFlight.Inc(ctx)

		c.Next()

		method := telemetry.MethodAttr(c.Request.Method)
		path := telemetry.PathAttr(c.FullPath())
		status := telemetry.StatusCodeAttr(c.Writer.Status())

		m.requests.Inc(ctx, method, path, status)
		m.duration.Record(ctx, time.Since(start).Seconds(), method, path, status)
		m.inFlight.Dec(ctx)
	}
}
