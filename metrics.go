package slsdb

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
//	    writeCounter   prometheus.Counter
//	    writeHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordWrite(bytes int, duration time.Duration, err error) {
//	    p.writeCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordRead is called after each read operation.
	// duration is the total time taken including hydration, err is nil if successful.
	RecordRead(duration time.Duration, err error)

	// RecordWrite is called after each write or publish.
	// bytes is the encoded document size.
	RecordWrite(bytes int, duration time.Duration, err error)

	// RecordHydrate is called once per store, after the first read refreshed
	// the local copy. found reports whether a remote copy was downloaded.
	RecordHydrate(found bool, duration time.Duration)

	// RecordClean is called after each clean. ok is false if any step failed.
	RecordClean(duration time.Duration, ok bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRead(time.Duration, error)       {}
func (NoopMetricsCollector) RecordWrite(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordHydrate(bool, time.Duration)     {}
func (NoopMetricsCollector) RecordClean(time.Duration, bool)       {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ReadCount       atomic.Int64
	ReadErrors      atomic.Int64
	ReadTotalNanos  atomic.Int64
	WriteCount      atomic.Int64
	WriteErrors     atomic.Int64
	WriteBytes      atomic.Int64
	WriteTotalNanos atomic.Int64
	HydrateCount    atomic.Int64
	HydrateHits     atomic.Int64
	CleanCount      atomic.Int64
	CleanFailures   atomic.Int64
}

// RecordRead implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRead(duration time.Duration, err error) {
	b.ReadCount.Add(1)
	b.ReadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ReadErrors.Add(1)
	}
}

// RecordWrite implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWrite(bytes int, duration time.Duration, err error) {
	b.WriteCount.Add(1)
	b.WriteTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.WriteErrors.Add(1)
		return
	}
	b.WriteBytes.Add(int64(bytes))
}

// RecordHydrate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordHydrate(found bool, _ time.Duration) {
	b.HydrateCount.Add(1)
	if found {
		b.HydrateHits.Add(1)
	}
}

// RecordClean implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClean(_ time.Duration, ok bool) {
	b.CleanCount.Add(1)
	if !ok {
		b.CleanFailures.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ReadCount:     b.ReadCount.Load(),
		ReadErrors:    b.ReadErrors.Load(),
		ReadAvgNanos:  avg(b.ReadTotalNanos.Load(), b.ReadCount.Load()),
		WriteCount:    b.WriteCount.Load(),
		WriteErrors:   b.WriteErrors.Load(),
		WriteBytes:    b.WriteBytes.Load(),
		WriteAvgNanos: avg(b.WriteTotalNanos.Load(), b.WriteCount.Load()),
		HydrateCount:  b.HydrateCount.Load(),
		HydrateHits:   b.HydrateHits.Load(),
		CleanCount:    b.CleanCount.Load(),
		CleanFailures: b.CleanFailures.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ReadCount     int64
	ReadErrors    int64
	ReadAvgNanos  int64
	WriteCount    int64
	WriteErrors   int64
	WriteBytes    int64
	WriteAvgNanos int64
	HydrateCount  int64
	HydrateHits   int64
	CleanCount    int64
	CleanFailures int64
}
