package pbwt

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordSubSample is called after each column extraction.
	// oldM and newM are the column counts before and after, sites the number
	// of sites re-encoded, err is nil if successful.
	RecordSubSample(oldM, newM, sites int, duration time.Duration, err error)

	// RecordSelection is called after a selection list is built.
	// requested is the number of requested identities or columns,
	// columns the length of the resulting selection.
	RecordSelection(requested, columns int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSubSample(int, int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordSelection(int, int, error)                     {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SubSampleCount      atomic.Int64
	SubSampleErrors     atomic.Int64
	SubSampleSites      atomic.Int64
	SubSampleColumns    atomic.Int64
	SubSampleTotalNanos atomic.Int64
	SelectionCount      atomic.Int64
	SelectionErrors     atomic.Int64
	SelectionColumns    atomic.Int64
}

// RecordSubSample implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSubSample(_, newM, sites int, duration time.Duration, err error) {
	b.SubSampleCount.Add(1)
	b.SubSampleTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SubSampleErrors.Add(1)
		return
	}
	b.SubSampleSites.Add(int64(sites))
	b.SubSampleColumns.Add(int64(newM))
}

// RecordSelection implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSelection(_, columns int, err error) {
	b.SelectionCount.Add(1)
	if err != nil {
		b.SelectionErrors.Add(1)
		return
	}
	b.SelectionColumns.Add(int64(columns))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		SubSampleCount:    b.SubSampleCount.Load(),
		SubSampleErrors:   b.SubSampleErrors.Load(),
		SubSampleSites:    b.SubSampleSites.Load(),
		SubSampleColumns:  b.SubSampleColumns.Load(),
		SubSampleAvgNanos: b.getAvgSubSampleNanos(),
		SelectionCount:    b.SelectionCount.Load(),
		SelectionErrors:   b.SelectionErrors.Load(),
		SelectionColumns:  b.SelectionColumns.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgSubSampleNanos() int64 {
	count := b.SubSampleCount.Load()
	if count == 0 {
		return 0
	}
	return b.SubSampleTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	SubSampleCount    int64
	SubSampleErrors   int64
	SubSampleSites    int64
	SubSampleColumns  int64
	SubSampleAvgNanos int64
	SelectionCount    int64
	SelectionErrors   int64
	SelectionColumns  int64
}
