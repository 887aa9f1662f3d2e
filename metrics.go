package violin

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems.
type MetricsCollector interface {
	// RecordUpdate is called after each applied coordinate update.
	// rtt is the measured sample, relativeError its normalized discrepancy
	// against the estimate from the previous coordinates.
	RecordUpdate(rtt time.Duration, relativeError float64)

	// RecordSkip is called when an update is skipped, either because the
	// measurement was invalid or because applying it would have produced a
	// non-finite coordinate.
	RecordSkip(rtt time.Duration)

	// RecordGravity is called after each gravity application.
	RecordGravity()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordUpdate(time.Duration, float64) {}
func (NoopMetricsCollector) RecordSkip(time.Duration)            {}
func (NoopMetricsCollector) RecordGravity()                      {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	UpdateCount    atomic.Int64
	UpdateRTTNanos atomic.Int64
	SkipCount      atomic.Int64
	GravityCount   atomic.Int64
}

// RecordUpdate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordUpdate(rtt time.Duration, relativeError float64) {
	b.UpdateCount.Add(1)
	b.UpdateRTTNanos.Add(rtt.Nanoseconds())
}

// RecordSkip implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSkip(rtt time.Duration) {
	b.SkipCount.Add(1)
}

// RecordGravity implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGravity() {
	b.GravityCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		UpdateCount:       b.UpdateCount.Load(),
		UpdateAvgRTTNanos: b.getAvgRTTNanos(),
		SkipCount:         b.SkipCount.Load(),
		GravityCount:      b.GravityCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgRTTNanos() int64 {
	count := b.UpdateCount.Load()
	if count == 0 {
		return 0
	}
	return b.UpdateRTTNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	UpdateCount       int64
	UpdateAvgRTTNanos int64
	SkipCount         int64
	GravityCount      int64
}
