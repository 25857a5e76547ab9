package metric

import (
	"context"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/klwxsrx/farm-expense-tracker/pkg/log"
)

// PrometheusMetrics creates collectors on first use of a key. Every use of
// the same key must carry the same set of label names.
type PrometheusMetrics struct {
	registry *prometheus.Registry
	logger   log.Logger

	mu         *sync.Mutex
	counters   map[string]*prometheus.CounterVec
	histograms map[string]*prometheus.HistogramVec

	labels Labels
}

func NewPrometheus(namespace string, logger log.Logger) *PrometheusMetrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}),
	)

	return &PrometheusMetrics{
		registry:   registry,
		logger:     logger,
		mu:         &sync.Mutex{},
		counters:   make(map[string]*prometheus.CounterVec),
		histograms: make(map[string]*prometheus.HistogramVec),
		labels:     nil,
	}
}

func (m *PrometheusMetrics) With(labels Labels) Metrics {
	merged := make(Labels, len(m.labels)+len(labels))
	for k, v := range m.labels {
		merged[k] = v
	}
	for k, v := range labels {
		merged[k] = v
	}

	result := *m
	result.labels = merged
	return &result
}

func (m *PrometheusMetrics) Increment(key string) {
	names := m.labelNames()

	m.mu.Lock()
	counter, ok := m.counters[key]
	if !ok {
		counter = prometheus.NewCounterVec(prometheus.CounterOpts{Name: key}, names)
		if err := m.registry.Register(counter); err != nil {
			m.mu.Unlock()
			m.logger.WithError(err).WithField("metric", key).Warn(context.Background(), "register counter")
			return
		}
		m.counters[key] = counter
	}
	m.mu.Unlock()

	c, err := counter.GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		m.logger.WithError(err).WithField("metric", key).Warn(context.Background(), "counter labels mismatch")
		return
	}
	c.Inc()
}

func (m *PrometheusMetrics) Duration(key string, duration time.Duration) {
	names := m.labelNames()

	m.mu.Lock()
	histogram, ok := m.histograms[key]
	if !ok {
		histogram = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    key,
			Buckets: prometheus.DefBuckets,
		}, names)
		if err := m.registry.Register(histogram); err != nil {
			m.mu.Unlock()
			m.logger.WithError(err).WithField("metric", key).Warn(context.Background(), "register histogram")
			return
		}
		m.histograms[key] = histogram
	}
	m.mu.Unlock()

	h, err := histogram.GetMetricWith(prometheus.Labels(m.labels))
	if err != nil {
		m.logger.WithError(err).WithField("metric", key).Warn(context.Background(), "histogram labels mismatch")
		return
	}
	h.Observe(duration.Seconds())
}

func (m *PrometheusMetrics) HTTPHandler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *PrometheusMetrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

func (m *PrometheusMetrics) labelNames() []string {
	names := make([]string, 0, len(m.labels))
	for name := range m.labels {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
