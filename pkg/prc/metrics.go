package prc

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector records upstream request and key cache metrics.
// A nil *MetricsCollector is valid and records nothing.
type MetricsCollector struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	failuresTotal   *prometheus.CounterVec
	keyCacheLookups *prometheus.CounterVec
}

func NewMetricsCollector(registry prometheus.Registerer) *MetricsCollector {
	return &MetricsCollector{
		requestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "prc_requests_total",
				Help: "Total number of requests sent to the PRC API",
			},
			[]string{"method", "endpoint", "status_code"},
		),
		requestDuration: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "prc_request_duration_seconds",
				Help:    "Duration of PRC API requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		failuresTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "prc_failures_total",
				Help: "Total number of failed PRC API requests by kind",
			},
			[]string{"endpoint", "kind"},
		),
		keyCacheLookups: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "prc_key_cache_lookups_total",
				Help: "Server key cache lookups by result",
			},
			[]string{"result"},
		),
	}
}

func (m *MetricsCollector) RecordRequest(method string, endpoint string, statusCode int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	m.requestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordFailure kind is one of "response", "transport" or "link".
func (m *MetricsCollector) RecordFailure(endpoint string, kind string) {
	if m == nil {
		return
	}
	m.failuresTotal.WithLabelValues(endpoint, kind).Inc()
}

func (m *MetricsCollector) RecordKeyCacheHit() {
	if m == nil {
		return
	}
	m.keyCacheLookups.WithLabelValues("hit").Inc()
}

func (m *MetricsCollector) RecordKeyCacheMiss() {
	if m == nil {
		return
	}
	m.keyCacheLookups.WithLabelValues("miss").Inc()
}
