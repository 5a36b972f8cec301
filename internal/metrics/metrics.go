// Package metrics holds the Prometheus metrics exported on /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Access check outcomes, used as the "result" label.
const (
	ResultGranted = "granted"
	ResultDenied  = "denied"
)

// Metrics holds all Prometheus metrics of the web server
type Metrics struct {
	registry *prometheus.Registry

	LettersSaved    prometheus.Counter
	AccessChecks    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics registers the metrics on a fresh registry, so several instances
// can live side by side in tests.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		LettersSaved: factory.NewCounter(prometheus.CounterOpts{
			Name: "unspoken_letters_saved_total",
			Help: "Total number of letters saved",
		}),
		AccessChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "unspoken_access_checks_total",
			Help: "Access checks on the view-all listing by outcome",
		}, []string{"result"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "unspoken_http_request_duration_seconds",
			Help:    "Time spent serving HTTP requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method", "status"}),
	}
}

// ObserveAccess counts one access check.
func (m *Metrics) ObserveAccess(granted bool) {
	result := ResultDenied
	if granted {
		result = ResultGranted
	}
	m.AccessChecks.WithLabelValues(result).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
