package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	snapshotWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "templatehub_snapshot_writes_total",
			Help: "Snapshot writes by result.",
		},
		[]string{"result"},
	)
	snapshotWriteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "templatehub_snapshot_write_duration_seconds",
			Help:    "Duration of snapshot writes in seconds.",
			Buckets: prometheus.DefBuckets,
		},
	)

	ordersCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "templatehub_orders_created_total",
			Help: "Orders created from checked out carts.",
		},
	)
	orderRevenueTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "templatehub_order_revenue_total",
			Help: "Revenue of created orders in the store currency.",
		},
	)

	statsSubscribers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "templatehub_stats_subscribers",
			Help: "Live admin stats stream subscribers.",
		},
	)
)

const (
	ResultSuccess = "success"
	ResultError   = "error"
)

func RecordSnapshotWrite(result string, duration time.Duration) {
	snapshotWritesTotal.WithLabelValues(result).Inc()
	snapshotWriteDuration.Observe(duration.Seconds())
}

func RecordOrderCreated(total float64) {
	ordersCreatedTotal.Inc()
	orderRevenueTotal.Add(total)
}

func StatsSubscriberAdded() {
	statsSubscribers.Inc()
}

func StatsSubscriberRemoved() {
	statsSubscribers.Dec()
}

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// Flush keeps streaming responses (server-sent events) working through the wrapper.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Middleware must wrap the mux directly so r.Pattern is visible after routing.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		httpRequestsInFlight.Inc()

		rw := newResponseWriter(w)

		defer func() {

			// r.Pattern is set by the mux once routing has happened
			pathPattern := r.Pattern
			if pathPattern == "" {
				pathPattern = "unmatched"
			}

			duration := time.Since(start)
			statusCodeStr := strconv.Itoa(rw.statusCode)

			httpRequestsTotal.WithLabelValues(statusCodeStr, r.Method, pathPattern).Inc()
			httpRequestsDuration.WithLabelValues(r.Method, pathPattern).Observe(duration.Seconds())
			httpRequestsInFlight.Dec()

		}()

		next.ServeHTTP(rw, r)

	})
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {

	return promhttp.Handler()
}
