package observability

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics records operation events as Prometheus series.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	states     *prometheus.HistogramVec
}

type MetricsOption func(*metricsConfig)

type metricsConfig struct {
	namespace string
	registry  *prometheus.Registry
	runtime   bool
}

// WithNamespace prefixes every metric name. The default is "automata".
func WithNamespace(ns string) MetricsOption {
	return func(c *metricsConfig) {
		c.namespace = ns
	}
}

// WithRegistry registers the collectors on reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) MetricsOption {
	return func(c *metricsConfig) {
		c.registry = reg
	}
}

// WithRuntimeMetrics also registers the Go runtime and process collectors.
func WithRuntimeMetrics() MetricsOption {
	return func(c *metricsConfig) {
		c.runtime = true
	}
}

// NewMetrics creates and registers the operation collectors.
func NewMetrics(opts ...MetricsOption) *Metrics {
	cfg := metricsConfig{namespace: "automata"}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.registry == nil {
		cfg.registry = prometheus.NewRegistry()
	}

	m := &Metrics{
		registry: cfg.registry,
		operations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.namespace,
				Name:      "operations_total",
				Help:      "Total number of automaton operations",
			},
			[]string{"operation", "result"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.namespace,
				Name:      "operation_duration_seconds",
				Help:      "Duration of automaton operations",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"operation"},
		),
		states: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.namespace,
				Name:      "result_states",
				Help:      "Number of states in automata produced by operations",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
	}
	cfg.registry.MustRegister(m.operations, m.duration, m.states)
	if cfg.runtime {
		cfg.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return m
}

// OperationDone implements Observer.
func (m *Metrics) OperationDone(_ context.Context, e OperationEvent) {
	m.operations.WithLabelValues(e.Operation, e.Result()).Inc()
	m.duration.WithLabelValues(e.Operation).Observe(e.Duration.Seconds())
	if e.Err == nil && e.States >= 0 {
		m.states.WithLabelValues(e.Operation).Observe(float64(e.States))
	}
}

// Registry exposes the registry the collectors live in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
