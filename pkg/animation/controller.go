package animation

import (
	"fmt"
	"time"
)

// Status represents the current state of a timeline.
//
// The status follows this state machine:
//
//	            Start()              factor reaches 255
//	Dismissed ──────────► Forward ──────────────────────► Completed
//	    ▲                                                     │
//	    └─────────────────────── Reset() ─────────────────────┘
//
// Starting a timeline whose animation has zero duration moves it directly to
// Completed.
type Status int

const (
	// StatusDismissed means the timeline has not been started.
	StatusDismissed Status = iota
	// StatusForward means the timeline is playing.
	StatusForward
	// StatusCompleted means the timeline has reached its end.
	StatusCompleted
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusDismissed:
		return "dismissed"
	case StatusForward:
		return "forward"
	case StatusCompleted:
		return "completed"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Timeline drives a single animation against app time and produces the
// domain for each frame. The host loop starts a timeline whenever the view
// tree changes and renders every frame with its Domain.
//
// A dismissed or completed timeline yields the completed domain.
type Timeline struct {
	// Animation is the animation played by Start.
	Animation Animation

	status          Status
	start           time.Duration
	statusListeners map[int]func(Status)
	nextListenerID  int
}

// NewTimeline creates a dismissed timeline for a.
func NewTimeline(a Animation) *Timeline {
	return &Timeline{
		Animation:       a,
		status:          StatusDismissed,
		statusListeners: make(map[int]func(Status)),
	}
}

// Start plays the animation from appTime, restarting it if it is already
// playing.
func (t *Timeline) Start(appTime time.Duration) {
	t.start = appTime
	if t.Animation.Duration <= 0 {
		t.setStatus(StatusCompleted)
		return
	}
	t.setStatus(StatusForward)
}

// Domain returns the domain at appTime and completes the timeline once the
// factor reaches 255.
func (t *Timeline) Domain(appTime time.Duration) Domain {
	if t.status != StatusForward {
		return TopLevel(appTime)
	}
	factor := t.Animation.Factor(max(appTime-t.start, 0))
	if factor == 255 {
		t.setStatus(StatusCompleted)
	}
	return Domain{Factor: factor, AppTime: appTime}
}

// Reset returns the timeline to the dismissed state.
func (t *Timeline) Reset() {
	t.setStatus(StatusDismissed)
}

// Status returns the current status.
func (t *Timeline) Status() Status {
	return t.status
}

// IsAnimating returns true while the timeline is playing.
func (t *Timeline) IsAnimating() bool {
	return t.status == StatusForward
}

// StartedAt returns the app time of the last Start.
func (t *Timeline) StartedAt() time.Duration {
	return t.start
}

// AddStatusListener adds a callback that fires whenever the status changes.
// Returns an unsubscribe function.
func (t *Timeline) AddStatusListener(fn func(Status)) func() {
	id := t.nextListenerID
	t.nextListenerID++
	t.statusListeners[id] = fn
	return func() {
		delete(t.statusListeners, id)
	}
}

func (t *Timeline) setStatus(status Status) {
	if t.status == status {
		return
	}
	t.status = status
	for _, listener := range t.statusListeners {
		listener(status)
	}
}
