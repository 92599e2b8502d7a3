package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "kegerator"

// Metrics holds the Prometheus collectors for the HTTP server and the tap feed.
// Collectors live on a private registry so tests can build as many as they need.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequests        *prometheus.CounterVec   // labels: route, code
	HTTPRequestDuration *prometheus.HistogramVec // labels: route
	ReadingLoadFailures *prometheus.CounterVec   // labels: kind={io,parse}
	FeedMessages        *prometheus.CounterVec   // labels: outcome={applied,invalid,error}
	FeedConnected       prometheus.Gauge
}

// NewMetrics creates and registers all collectors, including the Go runtime
// and process collectors, on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route pattern and status code.",
		}, []string{"route", "code"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by route pattern.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"route"}),
		ReadingLoadFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reading_load_failures_total",
			Help:      "Failed reads of the tap data file by kind.",
		}, []string{"kind"}),
		FeedMessages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_messages_total",
			Help:      "Tap feed messages by outcome.",
		}, []string{"outcome"}),
		FeedConnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "feed_connected",
			Help:      "1 while the MQTT tap feed is connected, 0 otherwise.",
		}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.ReadingLoadFailures,
		m.FeedMessages,
		m.FeedConnected,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
