package violin

import (
	"time"

	metrics "github.com/armon/go-metrics"
)

// GoMetricsCollector emits node metrics into an armon/go-metrics sink, which
// fans out to statsd, statsite, Prometheus, or an in-memory sink.
type GoMetricsCollector struct {
	m *metrics.Metrics
}

// NewGoMetricsCollector creates a collector reporting into m.
func NewGoMetricsCollector(m *metrics.Metrics) *GoMetricsCollector {
	return &GoMetricsCollector{m: m}
}

// RecordUpdate implements MetricsCollector.
func (g *GoMetricsCollector) RecordUpdate(rtt time.Duration, relativeError float64) {
	g.m.IncrCounter([]string{"violin", "updates", "applied"}, 1)
	g.m.AddSample([]string{"violin", "update", "rtt_ms"}, float32(rtt.Seconds()*1000))
	g.m.AddSample([]string{"violin", "update", "relative_error"}, float32(relativeError))
}

// RecordSkip implements MetricsCollector.
func (g *GoMetricsCollector) RecordSkip(rtt time.Duration) {
	g.m.IncrCounter([]string{"violin", "updates", "skipped"}, 1)
}

// RecordGravity implements MetricsCollector.
func (g *GoMetricsCollector) RecordGravity() {
	g.m.IncrCounter([]string{"violin", "gravity", "applied"}, 1)
}
