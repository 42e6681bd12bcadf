package engine

import (
	"sync/atomic"
	"time"
)

const (
	frameTraceSamplesDefault   = 240
	defaultFrameTraceThreshold = 16667 * time.Microsecond
)

// FramePhaseTimings captures time spent in each frame phase (ms).
type FramePhaseTimings struct {
	BuildMs  float64 `json:"buildMs"`
	JoinMs   float64 `json:"joinMs"`
	RenderMs float64 `json:"renderMs"`
	FlushMs  float64 `json:"flushMs"`
}

// FrameFlags captures contextual flags for a frame.
type FrameFlags struct {
	// Rebuilt is set when a structural update froze and replaced the target
	// tree before the frame was drawn.
	Rebuilt bool `json:"rebuilt,omitempty"`
	// Animating is set when the frame drew an animation in flight.
	Animating bool `json:"animating,omitempty"`
	// Factor is the global blend factor the frame was drawn with.
	Factor uint8 `json:"factor"`
}

// FrameSample is a single frame trace sample.
type FrameSample struct {
	// AppTime is the app time the frame was drawn at, in milliseconds.
	AppTime float64           `json:"appTime"`
	FrameMs float64           `json:"frameMs"`
	Phases  FramePhaseTimings `json:"phases"`
	Flags   FrameFlags        `json:"flags"`
}

// FrameTimeline is a chronological view of the trace buffer.
type FrameTimeline struct {
	Samples       []FrameSample `json:"samples"`
	DroppedFrames int           `json:"droppedFrames"`
	ThresholdMs   float64       `json:"thresholdMs"`
}

// FrameTraceBuffer keeps the most recent frame samples and counts frames
// slower than a threshold.
type FrameTraceBuffer struct {
	samples   ring[FrameSample]
	slow      atomic.Int64
	threshold time.Duration
}

// NewFrameTraceBuffer returns a buffer of capacity samples. Frames longer
// than threshold count as dropped. Zero values select 240 samples and one
// 60Hz frame.
func NewFrameTraceBuffer(capacity int, threshold time.Duration) *FrameTraceBuffer {
	if capacity <= 0 {
		capacity = frameTraceSamplesDefault
	}
	if threshold <= 0 {
		threshold = defaultFrameTraceThreshold
	}
	return &FrameTraceBuffer{samples: newRing[FrameSample](capacity), threshold: threshold}
}

// Capacity returns the number of samples kept.
func (b *FrameTraceBuffer) Capacity() int { return b.samples.capacity() }

// Threshold returns the duration above which a frame counts as dropped.
func (b *FrameTraceBuffer) Threshold() time.Duration { return b.threshold }

// Add records a sample. frameDuration is compared against the threshold.
func (b *FrameTraceBuffer) Add(sample FrameSample, frameDuration time.Duration) {
	b.samples.push(sample)
	if frameDuration > b.threshold {
		b.slow.Add(1)
	}
}

// Snapshot returns the samples oldest first together with the dropped
// frame count.
func (b *FrameTraceBuffer) Snapshot() FrameTimeline {
	return FrameTimeline{
		Samples:       b.samples.values(),
		DroppedFrames: int(b.slow.Load()),
		ThresholdMs:   durationToMillis(b.threshold),
	}
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
