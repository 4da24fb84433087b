package genalloc

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    allocCounter   prometheus.Counter
//	    retireCounter  prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordAllocate(reused bool, duration time.Duration) {
//	    p.allocCounter.Inc()
//	    // ... record reuse state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordAllocate is called after each allocate operation.
	// reused reports whether a retired index was reused; duration is the
	// total time taken including lock wait.
	RecordAllocate(reused bool, duration time.Duration)

	// RecordRetire is called after each retire operation.
	// err is nil unless strict retirement rejected the index.
	RecordRetire(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAllocate(bool, time.Duration) {}
func (NoopMetricsCollector) RecordRetire(time.Duration, error)  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AllocCount       atomic.Int64
	AllocReuses      atomic.Int64
	AllocTotalNanos  atomic.Int64
	RetireCount      atomic.Int64
	RetireErrors     atomic.Int64
	RetireTotalNanos atomic.Int64
}

// RecordAllocate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAllocate(reused bool, duration time.Duration) {
	b.AllocCount.Add(1)
	b.AllocTotalNanos.Add(duration.Nanoseconds())
	if reused {
		b.AllocReuses.Add(1)
	}
}

// RecordRetire implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRetire(duration time.Duration, err error) {
	b.RetireCount.Add(1)
	b.RetireTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RetireErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AllocCount:     b.AllocCount.Load(),
		AllocReuses:    b.AllocReuses.Load(),
		AllocAvgNanos:  b.getAvgAllocNanos(),
		RetireCount:    b.RetireCount.Load(),
		RetireErrors:   b.RetireErrors.Load(),
		RetireAvgNanos: b.getAvgRetireNanos(),
	}
}

func (b *BasicMetricsCollector) getAvgAllocNanos() int64 {
	count := b.AllocCount.Load()
	if count == 0 {
		return 0
	}
	return b.AllocTotalNanos.Load() / count
}

func (b *BasicMetricsCollector) getAvgRetireNanos() int64 {
	count := b.RetireCount.Load()
	if count == 0 {
		return 0
	}
	return b.RetireTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AllocCount     int64
	AllocReuses    int64
	AllocAvgNanos  int64
	RetireCount    int64
	RetireErrors   int64
	RetireAvgNanos int64
}
