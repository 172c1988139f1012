// Package logger provides a zap-based stats collector that logs metrics.
package logger

import (
	"go.uber.org/zap"

	"github.com/discochess/pfc/internal/stats"
)

// Collector implements stats.Collector by logging metrics via zap.
// Per-record metrics are logged at debug level, so a production logger
// drops them without formatting.
type Collector struct {
	logger *zap.Logger
}

// Compile-time check that Collector implements stats.Collector.
var _ stats.Collector = (*Collector)(nil)

// New creates a new logger-based collector.
// If logger is nil, a no-op logger is used.
func New(logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{logger: logger}
}

// IncCounter logs a counter increment.
func (c *Collector) IncCounter(name string, delta int64) {
	if ce := c.logger.Check(zap.DebugLevel, "counter"); ce != nil {
		ce.Write(zap.String("metric", name), zap.Int64("delta", delta))
	}
}

// SetGauge logs a gauge value.
func (c *Collector) SetGauge(name string, value int64) {
	if ce := c.logger.Check(zap.DebugLevel, "gauge"); ce != nil {
		ce.Write(zap.String("metric", name), zap.Int64("value", value))
	}
}

// ObserveHistogram logs a histogram observation.
func (c *Collector) ObserveHistogram(name string, value float64) {
	if ce := c.logger.Check(zap.DebugLevel, "histogram"); ce != nil {
		ce.Write(zap.String("metric", name), zap.Float64("value", value))
	}
}
