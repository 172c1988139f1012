// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// Codec metrics.
	MetricRecordsEncoded = "pfc_records_encoded_total"
	MetricRecordsDecoded = "pfc_records_decoded_total"
	MetricFaults         = "pfc_faults_total"
	MetricSharedPrefix   = "pfc_shared_prefix_chars"

	// Stream metrics.
	MetricBytesIn   = "pfc_bytes_in_total"
	MetricBytesOut  = "pfc_bytes_out_total"
	MetricDuration  = "pfc_run_duration_seconds"
	MetricLastRatio = "pfc_last_ratio_permille"

	// Cache metrics.
	MetricCacheHits   = "pfc_cache_hits_total"
	MetricCacheMisses = "pfc_cache_misses_total"
	MetricCacheSize   = "pfc_cache_size"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
