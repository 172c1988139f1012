package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/discochess/pfc/internal/stats"
)

func TestCollector_LogsAtDebug(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	c := New(zap.New(core))

	c.IncCounter(stats.MetricRecordsEncoded, 2)
	c.SetGauge(stats.MetricCacheSize, 5)
	c.ObserveHistogram(stats.MetricSharedPrefix, 4)

	entries := logs.All()
	if len(entries) != 3 {
		t.Fatalf("got %d log entries, want 3", len(entries))
	}

	wantMessages := []string{"counter", "gauge", "histogram"}
	for i, e := range entries {
		if e.Message != wantMessages[i] {
			t.Errorf("entry %d message = %q, want %q", i, e.Message, wantMessages[i])
		}
		if e.Level != zapcore.DebugLevel {
			t.Errorf("entry %d level = %v, want debug", i, e.Level)
		}
	}
	if got := entries[0].ContextMap()["metric"]; got != stats.MetricRecordsEncoded {
		t.Errorf("metric field = %v, want %s", got, stats.MetricRecordsEncoded)
	}
	if got := entries[0].ContextMap()["delta"]; got != int64(2) {
		t.Errorf("delta field = %v, want 2", got)
	}
}

func TestCollector_InfoLevelDropsMetrics(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	c := New(zap.New(core))

	c.IncCounter(stats.MetricRecordsEncoded, 1)

	if n := logs.Len(); n != 0 {
		t.Errorf("got %d log entries at info level, want 0", n)
	}
}

func TestNew_NilLogger(t *testing.T) {
	c := New(nil)
	c.IncCounter("x", 1)
}
