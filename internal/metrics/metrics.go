// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "zeroshade"

// Metrics groups the registry collectors. A nil *Metrics is valid and records nothing.
type Metrics struct {
	TokensDiscovered  *prometheus.CounterVec
	CreatorUpdates    prometheus.Counter
	ScanErrors        *prometheus.CounterVec
	CyclesSkipped     prometheus.Counter
	CycleDuration     prometheus.Histogram
	ChainReadFailures *prometheus.CounterVec
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		TokensDiscovered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_discovered_total",
			Help:      "Tokens stored for the first time, by source.",
		}, []string{"source"}),
		CreatorUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "creator_updates_total",
			Help:      "Token creators updated from launchpad listings.",
		}),
		ScanErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "monitor_scan_errors_total",
			Help:      "Monitor scan failures, by scan.",
		}, []string{"scan"}),
		CyclesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "monitor_cycles_skipped_total",
			Help:      "Monitor cycles skipped because a previous cycle was still running.",
		}),
		CycleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "monitor_cycle_duration_seconds",
			Help:      "Duration of monitor cycles.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}),
		ChainReadFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chain_read_failures_total",
			Help:      "Token metadata reads that fell back to a placeholder, by field.",
		}, []string{"field"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency, by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	reg.MustRegister(
		m.TokensDiscovered,
		m.CreatorUpdates,
		m.ScanErrors,
		m.CyclesSkipped,
		m.CycleDuration,
		m.ChainReadFailures,
		m.HTTPRequests,
		m.HTTPDuration,
	)

	return m
}

func (m *Metrics) TokenDiscovered(source string) {
	if m == nil {
		return
	}
	m.TokensDiscovered.WithLabelValues(source).Inc()
}

func (m *Metrics) CreatorUpdated() {
	if m == nil {
		return
	}
	m.CreatorUpdates.Inc()
}

func (m *Metrics) ScanFailed(scan string) {
	if m == nil {
		return
	}
	m.ScanErrors.WithLabelValues(scan).Inc()
}

func (m *Metrics) CycleSkipped() {
	if m == nil {
		return
	}
	m.CyclesSkipped.Inc()
}

func (m *Metrics) ObserveCycle(seconds float64) {
	if m == nil {
		return
	}
	m.CycleDuration.Observe(seconds)
}

func (m *Metrics) ChainReadFailed(field string) {
	if m == nil {
		return
	}
	m.ChainReadFailures.WithLabelValues(field).Inc()
}

func (m *Metrics) ObserveRequest(method, route, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, status).Inc()
	m.HTTPDuration.WithLabelValues(route).Observe(seconds)
}
