package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the HTTP-level collectors for the API.
type Registry struct {
	reg *prometheus.Registry

	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
}

func New() *Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Registry{
		reg: reg,
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "perfume_api",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route", "method"}),
		requestTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "perfume_api",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
	}
}

// ObserveRequest records one completed request.
func (m *Registry) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	m.requestDuration.WithLabelValues(route, method).Observe(elapsed.Seconds())
	m.requestTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
}

// Handler serves the scrape endpoint for this registry.
func (m *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}

// Gatherer exposes the underlying registry for tests.
func (m *Registry) Gatherer() prometheus.Gatherer {
	return m.reg
}
