// Package telemetry records Prometheus metrics and OpenTelemetry spans for
// path resolution, reversal and route table reloads.
package telemetry

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rohanthewiz/urlresolve/core/resolve"
)

// Outcome labels
const (
	OutcomeMatch    = "match"
	OutcomeNotFound = "not_found"
	OutcomeNoMatch  = "no_reverse_match"
	OutcomeError    = "error"
	OutcomeOK       = "ok"
)

// MetricsConfig configures the Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "urlresolve").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// Buckets are the histogram buckets for resolve duration.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "urlresolve",
		// Resolution is in-memory regexp work; microseconds to a few milliseconds.
		Buckets:  []float64{.00001, .000025, .00005, .0001, .00025, .0005, .001, .0025, .005, .01},
		Registry: prometheus.DefaultRegisterer,
	}
}

// Metrics holds the resolver metrics.
type Metrics struct {
	resolveTotal    *prometheus.CounterVec
	resolveDuration prometheus.Histogram
	reverseTotal    *prometheus.CounterVec
	reloadsTotal    *prometheus.CounterVec
	routes          prometheus.Gauge
}

// NewMetrics registers the metrics:
//   - <ns>_resolve_total: resolutions by outcome
//   - <ns>_resolve_duration_seconds: resolution duration
//   - <ns>_reverse_total: reversals by outcome
//   - <ns>_reloads_total: route table reloads by outcome
//   - <ns>_routes: routes in the current table
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Metrics{
		resolveTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "resolve_total",
			Help:      "Total number of path resolutions",
		}, []string{"outcome"}),

		resolveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "resolve_duration_seconds",
			Help:      "Path resolution duration in seconds",
			Buckets:   config.Buckets,
		}),

		reverseTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "reverse_total",
			Help:      "Total number of name reversals",
		}, []string{"outcome"}),

		reloadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "reloads_total",
			Help:      "Total number of route table reloads",
		}, []string{"outcome"}),

		routes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: config.Namespace,
			Subsystem: config.Subsystem,
			Name:      "routes",
			Help:      "Number of routes in the current table",
		}),
	}
}

// ObserveResolve records one resolution.
func (m *Metrics) ObserveResolve(err error, d time.Duration) {
	m.resolveTotal.WithLabelValues(Outcome(err)).Inc()
	m.resolveDuration.Observe(d.Seconds())
}

// ObserveReverse records one reversal.
func (m *Metrics) ObserveReverse(err error) {
	outcome := Outcome(err)
	if outcome == OutcomeMatch {
		outcome = OutcomeOK
	}
	m.reverseTotal.WithLabelValues(outcome).Inc()
}

// ObserveReload records a reload attempt. routes is only used on success.
func (m *Metrics) ObserveReload(err error, routes int) {
	if err != nil {
		m.reloadsTotal.WithLabelValues(OutcomeError).Inc()
		return
	}
	m.reloadsTotal.WithLabelValues(OutcomeOK).Inc()
	m.routes.Set(float64(routes))
}

// Outcome classifies the error of a resolve or reverse call.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeMatch
	case errors.Is(err, resolve.ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, resolve.ErrNoReverseMatch):
		return OutcomeNoMatch
	}
	return OutcomeError
}
