// Package metrics exposes the service's Prometheus instrumentation.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the collectors registered for the API.
type Metrics struct {
	registry *prometheus.Registry

	// QueriesTotal counts dashboard queries by resolved index origin.
	QueriesTotal *prometheus.CounterVec

	// QueryDuration observes end-to-end query latency in seconds.
	QueryDuration prometheus.Histogram

	// ExportJobsTotal counts export requests by mode and terminal status.
	ExportJobsTotal *prometheus.CounterVec
}

// New builds a self-contained registry with process and Go runtime
// collectors plus the service's own series.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		QueriesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bdpr_queries_total",
			Help: "Dashboard queries served, labelled by index origin.",
		}, []string{"origen"}),
		QueryDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "bdpr_query_duration_seconds",
			Help:    "Latency of the query pipeline.",
			Buckets: prometheus.DefBuckets,
		}),
		ExportJobsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bdpr_export_jobs_total",
			Help: "Export requests, labelled by mode and outcome.",
		}, []string{"mode", "status"}),
	}
}

// Handler serves the /metrics endpoint for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
