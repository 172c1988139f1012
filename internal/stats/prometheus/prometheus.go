// Package prometheus provides a Prometheus-based stats collector.
package prometheus

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/discochess/pfc/internal/frontcode"
	"github.com/discochess/pfc/internal/stats"
)

// ErrNoGatherer is returned by WriteTextfile when the registry cannot be
// gathered from.
var ErrNoGatherer = errors.New("prometheus: registry is not a gatherer")

// help holds descriptions for the library's own metrics. Unknown names use
// the name as help text.
var help = map[string]string{
	stats.MetricRecordsEncoded: "Records front-coded.",
	stats.MetricRecordsDecoded: "Records expanded.",
	stats.MetricFaults:         "Runs stopped by a malformed record or prefix overflow.",
	stats.MetricSharedPrefix:   "Shared prefix length per record, in characters.",
	stats.MetricBytesIn:        "Bytes of text read by the line driver.",
	stats.MetricBytesOut:       "Bytes of text written by the line driver.",
	stats.MetricDuration:       "Wall time of a compress or expand run.",
	stats.MetricLastRatio:      "Output size over input size of the last run, in permille.",
	stats.MetricCacheHits:      "Object cache hits.",
	stats.MetricCacheMisses:    "Object cache misses.",
	stats.MetricCacheSize:      "Objects held in the cache.",
}

// Collector implements stats.Collector using Prometheus metrics.
type Collector struct {
	registry prometheus.Registerer
	buckets  map[string][]float64

	mu         sync.RWMutex
	counters   map[string]prometheus.Counter
	gauges     map[string]prometheus.Gauge
	histograms map[string]prometheus.Histogram
}

// Compile-time check that Collector implements stats.Collector.
var _ stats.Collector = (*Collector)(nil)

// New creates a new Prometheus collector.
// If registry is nil, prometheus.DefaultRegisterer is used.
func New(registry prometheus.Registerer) *Collector {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	return &Collector{
		registry: registry,
		buckets: map[string][]float64{
			stats.MetricSharedPrefix: prometheus.LinearBuckets(0, 4, frontcode.MaxPrefixLen/4+1),
		},
		counters:   make(map[string]prometheus.Counter),
		gauges:     make(map[string]prometheus.Gauge),
		histograms: make(map[string]prometheus.Histogram),
	}
}

// IncCounter increments a counter metric.
func (c *Collector) IncCounter(name string, delta int64) {
	counter := getOrRegister(c, c.counters, name, func() prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{Name: name, Help: helpFor(name)})
	})
	counter.Add(float64(delta))
}

// SetGauge sets a gauge metric.
func (c *Collector) SetGauge(name string, value int64) {
	gauge := getOrRegister(c, c.gauges, name, func() prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{Name: name, Help: helpFor(name)})
	})
	gauge.Set(float64(value))
}

// ObserveHistogram records a value in a histogram.
func (c *Collector) ObserveHistogram(name string, value float64) {
	histogram := getOrRegister(c, c.histograms, name, func() prometheus.Histogram {
		buckets, ok := c.buckets[name]
		if !ok {
			buckets = prometheus.DefBuckets
		}
		return prometheus.NewHistogram(prometheus.HistogramOpts{Name: name, Help: helpFor(name), Buckets: buckets})
	})
	histogram.Observe(value)
}

// WriteTextfile writes every metric in the registry to path in the text
// exposition format, for the node exporter's textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	g, ok := c.registry.(prometheus.Gatherer)
	if !ok {
		return ErrNoGatherer
	}
	return prometheus.WriteToTextfile(path, g)
}

// getOrRegister returns the metric cached under name, creating and
// registering it on first use. A metric already registered elsewhere under
// the same name is reused.
func getOrRegister[M prometheus.Collector](c *Collector, cache map[string]M, name string, create func() M) M {
	c.mu.RLock()
	m, ok := cache[name]
	c.mu.RUnlock()
	if ok {
		return m
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if m, ok = cache[name]; ok {
		return m
	}

	m = create()
	if err := c.registry.Register(m); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(M); ok {
				m = existing
			}
		}
		// Otherwise keep the unregistered metric; it still counts.
	}
	cache[name] = m
	return m
}

func helpFor(name string) string {
	if h, ok := help[name]; ok {
		return h
	}
	return name
}
