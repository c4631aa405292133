package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestInFlight prometheus.Gauge

	parsedTotal *prometheus.CounterVec
	triangles   prometheus.Histogram
	quotesTotal *prometheus.CounterVec
}

func New(service string) *Metrics {
	registry := prometheus.NewRegistry()

	requestTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stlquote",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests processed.",
		},
		[]string{"service", "method", "path", "status"},
	)
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "stlquote",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)
	requestInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "stlquote",
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Number of in-flight HTTP requests.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	parsedTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stlquote",
			Subsystem: "stl",
			Name:      "parsed_total",
			Help:      "Total STL uploads summarized, by detected format and outcome.",
		},
		[]string{"format", "outcome"},
	)
	triangles := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "stlquote",
			Subsystem: "stl",
			Name:      "triangles",
			Help:      "Distribution of triangle counts per summarized upload.",
			Buckets:   prometheus.ExponentialBuckets(12, 4, 10),
		},
	)
	quotesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "stlquote",
			Subsystem: "quote",
			Name:      "quotes_total",
			Help:      "Total quotes issued, by material.",
		},
		[]string{"material"},
	)

	registry.MustRegister(
		requestTotal,
		requestDuration,
		requestInFlight,
		parsedTotal,
		triangles,
		quotesTotal,
	)

	return &Metrics{
		registry:        registry,
		requestTotal:    requestTotal,
		requestDuration: requestDuration,
		requestInFlight: requestInFlight,
		parsedTotal:     parsedTotal,
		triangles:       triangles,
		quotesTotal:     quotesTotal,
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) Middleware(service string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		m.requestInFlight.Inc()
		defer m.requestInFlight.Dec()

		next.ServeHTTP(recorder, r)

		path := normalizePath(r.URL.Path)
		m.requestTotal.WithLabelValues(
			service,
			r.Method,
			path,
			strconv.Itoa(recorder.statusCode),
		).Inc()
		m.requestDuration.WithLabelValues(service, r.Method, path).Observe(time.Since(start).Seconds())
	})
}

func normalizePath(path string) string {
	switch path {
	case "/healthz", "/metrics", "/v1/materials", "/v1/summary", "/v1/quote":
		return path
	default:
		return "other"
	}
}

// RecordParse counts one summarized upload; outcome is "ok", "empty",
// "truncated" or "error".
func (m *Metrics) RecordParse(format, outcome string, triangles int) {
	m.parsedTotal.WithLabelValues(format, outcome).Inc()
	m.triangles.Observe(float64(triangles))
}

func (m *Metrics) RecordQuote(material string) {
	if material == "" {
		material = "unknown"
	}
	m.quotesTotal.WithLabelValues(material).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusRecorder) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}
