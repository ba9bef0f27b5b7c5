package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the API and its upstream calls.
type Metrics struct {
	HTTPRequests *prometheus.CounterVec   // labels: route, status
	HTTPDuration *prometheus.HistogramVec // labels: route

	CompletionRequests *prometheus.CounterVec   // labels: endpoint, outcome={success,error}
	CompletionDuration *prometheus.HistogramVec // labels: endpoint

	GeocodeRequests *prometheus.CounterVec // labels: outcome={success,error}
	GeocodeDuration prometheus.Histogram

	Extractions *prometheus.CounterVec // labels: endpoint, strategy={direct,embedded,failed}
}

var (
	upstreamBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}
	httpBuckets     = []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30}
)

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPDuration,
		m.CompletionRequests,
		m.CompletionDuration,
		m.GeocodeRequests,
		m.GeocodeDuration,
		m.Extractions,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build as many as they like.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agroclimate",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "agroclimate",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   httpBuckets,
		}, []string{"route"}),
		CompletionRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agroclimate",
			Name:      "completion_requests_total",
			Help:      "Chat completion calls by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		CompletionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "agroclimate",
			Name:      "completion_duration_seconds",
			Help:      "Chat completion call latency by endpoint.",
			Buckets:   upstreamBuckets,
		}, []string{"endpoint"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agroclimate",
			Name:      "geocode_requests_total",
			Help:      "Geocoding API requests by outcome.",
		}, []string{"outcome"}),
		GeocodeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "agroclimate",
			Name:      "geocode_duration_seconds",
			Help:      "Geocoding API request latency.",
			Buckets:   upstreamBuckets,
		}),
		Extractions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agroclimate",
			Name:      "extractions_total",
			Help:      "Model output extraction attempts by endpoint and winning strategy.",
		}, []string{"endpoint", "strategy"}),
	}
}
