package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the API and its relays
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Relay metrics
	RelayCallsTotal   *prometheus.CounterVec
	RelayLatency      *prometheus.HistogramVec
	ActionsExtracted  prometheus.Histogram
	CompletionCache   *prometheus.CounterVec
	ExportBytes       *prometheus.HistogramVec
	ShareLinksCreated prometheus.Counter
}

// New registers all collectors on reg
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meeting_notes_http_requests_total",
				Help: "Total HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "meeting_notes_http_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		RelayCallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meeting_notes_relay_calls_total",
				Help: "Relay invocations by relay and outcome",
			},
			[]string{"relay", "outcome"},
		),
		RelayLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "meeting_notes_relay_latency_seconds",
				Help:    "Time spent in each relay including upstream calls",
				Buckets: []float64{0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60, 120, 300, 600},
			},
			[]string{"relay"},
		),
		ActionsExtracted: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "meeting_notes_actions_extracted",
				Help:    "Action items extracted per request",
				Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
			},
		),
		CompletionCache: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "meeting_notes_completion_cache_total",
				Help: "Completion cache lookups by result",
			},
			[]string{"result"},
		),
		ExportBytes: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "meeting_notes_export_bytes",
				Help:    "Size of rendered export documents",
				Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
			},
			[]string{"format"},
		),
		ShareLinksCreated: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "meeting_notes_share_links_created_total",
				Help: "Share links minted",
			},
		),
	}
}

// ObserveRelay records one relay call. Safe on a nil receiver.
func (m *Metrics) ObserveRelay(relay string, started time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.RelayCallsTotal.WithLabelValues(relay, outcome).Inc()
	m.RelayLatency.WithLabelValues(relay).Observe(time.Since(started).Seconds())
}

// ObserveCache records a completion cache lookup. Safe on a nil receiver.
func (m *Metrics) ObserveCache(hit bool) {
	if m == nil {
		return
	}
	if hit {
		m.CompletionCache.WithLabelValues("hit").Inc()
		return
	}
	m.CompletionCache.WithLabelValues("miss").Inc()
}

// ObserveActions records how many actions one extraction produced
func (m *Metrics) ObserveActions(n int) {
	if m == nil {
		return
	}
	m.ActionsExtracted.Observe(float64(n))
}

// ObserveExport records a rendered document size
func (m *Metrics) ObserveExport(format string, size int) {
	if m == nil {
		return
	}
	m.ExportBytes.WithLabelValues(format).Observe(float64(size))
}

// ShareCreated counts a minted share link
func (m *Metrics) ShareCreated() {
	if m == nil {
		return
	}
	m.ShareLinksCreated.Inc()
}
