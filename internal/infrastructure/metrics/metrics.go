package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/corebank/ledgerengine/internal/domain"
)

// Metrics holds all Prometheus metrics and implements usecase.MetricsRecorder.
type Metrics struct {
	// Posting metrics
	PostingsCommitted *prometheus.CounterVec
	PostingLines      prometheus.Histogram
	PostingDuration   prometheus.Histogram
	PostingsReplayed  prometheus.Counter
	PostingsRejected  *prometheus.CounterVec
	PostingsReversed  prometheus.Counter

	// Tracker metrics
	TrackerTransitions *prometheus.CounterVec

	// Day close metrics
	DayCloses        *prometheus.CounterVec
	DayCloseDuration prometheus.Histogram

	// Configuration snapshot metrics
	SnapshotVersion  prometheus.Gauge
	SnapshotRejects  prometheus.Counter
	SnapshotReloaded prometheus.Counter

	// Outbox metrics
	OutboxPublished prometheus.Counter
	OutboxErrors    prometheus.Counter

	// API metrics
	HTTPRequests  *prometheus.CounterVec
	HTTPDuration  *prometheus.HistogramVec
	HTTPInFlight  prometheus.Gauge
	RateLimitHits *prometheus.CounterVec
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		PostingsCommitted: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerengine_postings_committed_total",
				Help: "Total number of committed entry sets by event code",
			},
			[]string{"event_code"},
		),
		PostingLines: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledgerengine_posting_lines",
			Help:    "Number of ledger lines per committed entry set",
			Buckets: []float64{2, 3, 4, 6, 8, 12, 16, 32},
		}),
		PostingDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledgerengine_posting_duration_seconds",
			Help:    "Duration of resolve-and-post operations",
			Buckets: prometheus.DefBuckets,
		}),
		PostingsReplayed: f.NewCounter(prometheus.CounterOpts{
			Name: "ledgerengine_postings_replayed_total",
			Help: "Total number of idempotent replays of an already committed reference",
		}),
		PostingsRejected: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerengine_postings_rejected_total",
				Help: "Total number of rejected postings by reason",
			},
			[]string{"reason"},
		),
		PostingsReversed: f.NewCounter(prometheus.CounterOpts{
			Name: "ledgerengine_postings_reversed_total",
			Help: "Total number of reversals",
		}),

		TrackerTransitions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerengine_tracker_transitions_total",
				Help: "Total transaction tracker transitions by target status",
			},
			[]string{"status"},
		),

		DayCloses: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerengine_day_closes_total",
				Help: "Total day close attempts by outcome",
			},
			[]string{"outcome"},
		),
		DayCloseDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "ledgerengine_day_close_duration_seconds",
			Help:    "Duration of day close attempts",
			Buckets: []float64{.01, .05, .1, .5, 1, 5, 10, 30, 60},
		}),

		SnapshotVersion: f.NewGauge(prometheus.GaugeOpts{
			Name: "ledgerengine_config_snapshot_version",
			Help: "Version of the active configuration snapshot",
		}),
		SnapshotRejects: f.NewCounter(prometheus.CounterOpts{
			Name: "ledgerengine_config_snapshot_rejected_total",
			Help: "Total configuration loads rejected by validation",
		}),
		SnapshotReloaded: f.NewCounter(prometheus.CounterOpts{
			Name: "ledgerengine_config_snapshot_loaded_total",
			Help: "Total configuration snapshots published",
		}),

		OutboxPublished: f.NewCounter(prometheus.CounterOpts{
			Name: "ledgerengine_outbox_published_total",
			Help: "Total outbox events published",
		}),
		OutboxErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "ledgerengine_outbox_errors_total",
			Help: "Total outbox publish failures",
		}),

		HTTPRequests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerengine_http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledgerengine_http_duration_seconds",
				Help:    "HTTP request duration",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		HTTPInFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "ledgerengine_http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		}),
		RateLimitHits: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledgerengine_rate_limit_hits_total",
				Help: "Total rate limit hits",
			},
			[]string{"path"},
		),
	}
}

// PostingCommitted records a committed entry set.
func (m *Metrics) PostingCommitted(eventCode string, lines int, elapsed time.Duration) {
	m.PostingsCommitted.WithLabelValues(eventCode).Inc()
	m.PostingLines.Observe(float64(lines))
	m.PostingDuration.Observe(elapsed.Seconds())
}

// PostingReplayed records an idempotent replay.
func (m *Metrics) PostingReplayed() {
	m.PostingsReplayed.Inc()
}

// PostingRejected records a rejected posting.
func (m *Metrics) PostingRejected(reason string) {
	m.PostingsRejected.WithLabelValues(reason).Inc()
}

// PostingReversed records a reversal.
func (m *Metrics) PostingReversed() {
	m.PostingsReversed.Inc()
}

// TrackerTransition records a tracker moving to status.
func (m *Metrics) TrackerTransition(status domain.TrackerStatus) {
	m.TrackerTransitions.WithLabelValues(string(status)).Inc()
}

// DayClosed records a day close attempt.
func (m *Metrics) DayClosed(outcome string, elapsed time.Duration) {
	m.DayCloses.WithLabelValues(outcome).Inc()
	m.DayCloseDuration.Observe(elapsed.Seconds())
}

// SnapshotLoaded records a published snapshot.
func (m *Metrics) SnapshotLoaded(version int64) {
	m.SnapshotVersion.Set(float64(version))
	m.SnapshotReloaded.Inc()
}

// SnapshotRejected records a configuration that failed validation.
func (m *Metrics) SnapshotRejected() {
	m.SnapshotRejects.Inc()
}
