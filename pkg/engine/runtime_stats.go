package engine

import (
	"context"
	"runtime"
	"time"
)

const (
	runtimeSampleIntervalDefault = 5 * time.Second
	runtimeSampleWindowDefault   = 60 * time.Second
	runtimeSampleMinInterval     = 100 * time.Millisecond
	runtimeSampleMaxSamples      = 600
)

// RuntimeSample is one reading of heap, GC and goroutine counters.
type RuntimeSample struct {
	Timestamp    int64  `json:"ts"`
	HeapAlloc    uint64 `json:"heapAlloc"`
	HeapInuse    uint64 `json:"heapInuse"`
	NumGC        uint32 `json:"numGC"`
	PauseTotalNs uint64 `json:"pauseTotalNs"`
	LastPauseNs  uint64 `json:"lastPauseNs"`
	Goroutines   int    `json:"goroutines"`
}

// RuntimeSampleBuffer keeps runtime samples covering a fixed window.
type RuntimeSampleBuffer struct {
	samples  ring[RuntimeSample]
	interval time.Duration
}

// NewRuntimeSampleBuffer returns a buffer holding window worth of samples
// taken every interval. Zero values select a 5s interval over 60s.
func NewRuntimeSampleBuffer(window, interval time.Duration) *RuntimeSampleBuffer {
	if interval <= 0 {
		interval = runtimeSampleIntervalDefault
	}
	interval = max(interval, runtimeSampleMinInterval)
	if window <= 0 {
		window = runtimeSampleWindowDefault
	}
	n := min(max(int(max(window, interval)/interval), 1), runtimeSampleMaxSamples)
	return &RuntimeSampleBuffer{samples: newRing[RuntimeSample](n), interval: interval}
}

// Interval returns the sampling interval.
func (b *RuntimeSampleBuffer) Interval() time.Duration { return b.interval }

// Window returns the span of history the buffer can hold.
func (b *RuntimeSampleBuffer) Window() time.Duration {
	return time.Duration(b.samples.capacity()) * b.interval
}

// Add stores a sample, evicting the oldest when full.
func (b *RuntimeSampleBuffer) Add(sample RuntimeSample) { b.samples.push(sample) }

// Snapshot returns the samples oldest first.
func (b *RuntimeSampleBuffer) Snapshot() []RuntimeSample { return b.samples.values() }

// Run samples the runtime every interval until ctx is done.
func (b *RuntimeSampleBuffer) Run(ctx context.Context) {
	b.Add(ReadRuntimeSample())
	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.Add(ReadRuntimeSample())
		}
	}
}

// ReadRuntimeSample reads the counters now. It stops the world briefly.
func ReadRuntimeSample() RuntimeSample {
	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	lastPause := uint64(0)
	if stats.NumGC > 0 {
		lastPause = stats.PauseNs[(stats.NumGC+255)%256]
	}
	return RuntimeSample{
		Timestamp:    time.Now().UnixMilli(),
		HeapAlloc:    stats.HeapAlloc,
		HeapInuse:    stats.HeapInuse,
		NumGC:        stats.NumGC,
		PauseTotalNs: stats.PauseTotalNs,
		LastPauseNs:  lastPause,
		Goroutines:   runtime.NumGoroutine(),
	}
}
