package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreQueryLatency records document store latency by backend and operation.
	StoreQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mentorly_store_query_latency_seconds",
		Help:    "Document store query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend", "operation"})

	// CacheLookups counts post cache lookups by result (hit, miss, error).
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mentorly_cache_lookups_total",
		Help: "Total number of achievement post cache lookups by result",
	}, []string{"result"})

	// EventsPublished counts domain events by subject and outcome.
	EventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mentorly_events_published_total",
		Help: "Total number of domain events published by subject and outcome",
	}, []string{"subject", "outcome"})

	// UploadedBytes records the size of stored uploads.
	UploadedBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mentorly_upload_size_bytes",
		Help:    "Size of stored uploads in bytes",
		Buckets: prometheus.ExponentialBuckets(1024, 4, 8),
	})
)

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(backend, operation string) func() {
	start := time.Now()
	return func() {
		StoreQueryLatency.WithLabelValues(backend, operation).Observe(time.Since(start).Seconds())
	}
}
