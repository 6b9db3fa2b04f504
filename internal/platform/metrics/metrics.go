// Package metrics exposes Prometheus instrumentation for the gateway.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for generation observations.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// GenerationMetrics captures one observation per backend generation.
type GenerationMetrics interface {
	ObserveGeneration(mode, outcome string, durationSeconds float64)
}

// GatewayMetrics captures request metrics for the HTTP surface.
type GatewayMetrics interface {
	ObserveRequest(method, route, status string, durationSeconds float64)
}

// Noop implements every metrics interface without emitting anything.
type Noop struct{}

func (Noop) ObserveGeneration(string, string, float64)      {}
func (Noop) ObserveRequest(string, string, string, float64) {}

// Prom implements the metrics interfaces backed by its own Prometheus registry.
type Prom struct {
	registry            *prometheus.Registry
	generations         *prometheus.CounterVec
	generationDuration  *prometheus.HistogramVec
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewProm creates and registers all collectors under namespace.
func NewProm(namespace string) *Prom {
	p := &Prom{
		registry: prometheus.NewRegistry(),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generations_total",
			Help:      "Backend generations by mode and outcome",
		}, []string{"mode", "outcome"}),
		generationDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "generation_duration_seconds",
			Help:      "Backend generation latency by mode",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"mode"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
	p.registry.MustRegister(
		p.generations,
		p.generationDuration,
		p.httpRequests,
		p.httpRequestDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return p
}

func (p *Prom) ObserveGeneration(mode, outcome string, durationSeconds float64) {
	p.generations.WithLabelValues(mode, outcome).Inc()
	p.generationDuration.WithLabelValues(mode).Observe(durationSeconds)
}

func (p *Prom) ObserveRequest(method, route, status string, durationSeconds float64) {
	p.httpRequests.WithLabelValues(method, route, status).Inc()
	p.httpRequestDuration.WithLabelValues(method, route).Observe(durationSeconds)
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prom) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry, mainly for tests.
func (p *Prom) Registry() *prometheus.Registry {
	return p.registry
}
