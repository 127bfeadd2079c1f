package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SentencesProcessed counts every sentence Reinsert was run on, labeled
	// by outcome so a dashboard can separate clean runs from ones that hit
	// an alignment shape mismatch or malformed markup.
	SentencesProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reinsert_sentences_processed_total",
		Help: "The total number of sentences run through the reinsertion engine",
	}, []string{"strategy", "status"})

	// TagsDroppedUnused counts tags Reinsert reported as unused (spec.md
	// §4.5/§4.7): their source anchor never survived alignment into the target.
	TagsDroppedUnused = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reinsert_tags_dropped_unused_total",
		Help: "Total number of source tags dropped because their anchor did not survive into the target",
	}, []string{"strategy"})

	// CleanupPassRepairs counts a cleanup pass actually changing the token
	// sequence it was given, one counter per pass name.
	CleanupPassRepairs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reinsert_cleanup_pass_repairs_total",
		Help: "Total number of times a cleanup pass changed its input",
	}, []string{"pass"})

	// ReinsertionLatency tracks end-to-end Reinsert call duration.
	ReinsertionLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "reinsert_latency_seconds",
		Help:    "Duration of a single Reinsert call",
		Buckets: prometheus.DefBuckets,
	}, []string{"strategy"})

	// NMTRequestDuration tracks the external NMT engine round trip.
	NMTRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "reinsert_nmt_request_duration_seconds",
		Help:    "Duration of NMT alignment requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"status"})

	// NMTCircuitBreakerState reports whether the NMT client's breaker is
	// currently tripped (0=closed, 1=open).
	NMTCircuitBreakerState = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "reinsert_nmt_circuit_breaker_state",
		Help: "Current state of the NMT client circuit breaker (0=closed, 1=open)",
	})
)
