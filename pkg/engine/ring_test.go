package engine

import (
	"slices"
	"testing"
	"time"
)

func TestRing(t *testing.T) {
	r := newRing[int](3)
	if got := r.values(); got != nil {
		t.Fatalf("empty ring = %v, want nil", got)
	}
	for i := 1; i <= 2; i++ {
		r.push(i)
	}
	if got := r.values(); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("partial ring = %v", got)
	}
	for i := 3; i <= 5; i++ {
		r.push(i)
	}
	if got := r.values(); !slices.Equal(got, []int{3, 4, 5}) {
		t.Errorf("wrapped ring = %v", got)
	}
}

func TestRuntimeSampleBufferBounds(t *testing.T) {
	tests := []struct {
		window, interval time.Duration
		wantInterval     time.Duration
		wantWindow       time.Duration
	}{
		{0, 0, 5 * time.Second, time.Minute},
		{time.Second, time.Millisecond, 100 * time.Millisecond, time.Second},
		{time.Second, 10 * time.Second, 10 * time.Second, 10 * time.Second},
		{time.Hour, 100 * time.Millisecond, 100 * time.Millisecond, time.Minute},
	}
	for _, tt := range tests {
		b := NewRuntimeSampleBuffer(tt.window, tt.interval)
		if b.Interval() != tt.wantInterval || b.Window() != tt.wantWindow {
			t.Errorf("NewRuntimeSampleBuffer(%v, %v) = interval %v window %v, want %v %v",
				tt.window, tt.interval, b.Interval(), b.Window(), tt.wantInterval, tt.wantWindow)
		}
	}
}
