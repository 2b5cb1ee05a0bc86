package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "preparedness"

// Metrics holds the Prometheus collectors for the API and its upstream providers.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec   // labels: method, route, status
	HTTPRequestDuration *prometheus.HistogramVec // labels: method, route

	UpstreamRequests *prometheus.CounterVec   // labels: provider={twilio,openweather}, outcome={success,error}
	UpstreamDuration *prometheus.HistogramVec // labels: provider
	WeatherCache     *prometheus.CounterVec   // labels: kind={current,forecast}, result={hit,miss}

	WebhookDeliveries *prometheus.CounterVec // labels: outcome={delivered,failed,skipped}
	SeededRows        *prometheus.CounterVec // labels: dataset
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.HTTPRequests,
		m.HTTPRequestDuration,
		m.UpstreamRequests,
		m.UpstreamDuration,
		m.WeatherCache,
		m.WebhookDeliveries,
		m.SeededRows,
	)
	return m
}

// NewMetricsForTesting creates unregistered metrics so tests can build as many as they need.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"method", "route"}),
		UpstreamRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "Requests to third-party providers by outcome.",
		}, []string{"provider", "outcome"}),
		UpstreamDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "Third-party provider request duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"provider"}),
		WeatherCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_cache_total",
			Help:      "Weather cache lookups by kind and result.",
		}, []string{"kind", "result"}),
		WebhookDeliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "webhook_deliveries_total",
			Help:      "Family event webhook deliveries by outcome.",
		}, []string{"outcome"}),
		SeededRows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "seeded_rows_total",
			Help:      "Default rows inserted by the seed step, per dataset.",
		}, []string{"dataset"}),
	}
}
