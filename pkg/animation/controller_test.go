package animation

import (
	"testing"
	"time"
)

func TestTimelineProducesDomains(t *testing.T) {
	tl := NewTimeline(Linear(100 * time.Millisecond))
	if d := tl.Domain(time.Second); !d.IsComplete() {
		t.Errorf("dismissed timeline should yield a completed domain, got %d", d.Factor)
	}

	var statuses []Status
	tl.AddStatusListener(func(s Status) { statuses = append(statuses, s) })

	tl.Start(time.Second)
	if !tl.IsAnimating() {
		t.Fatal("timeline should be animating after Start")
	}
	if d := tl.Domain(time.Second + 50*time.Millisecond); d.Factor != 127 {
		t.Errorf("factor halfway = %d, want 127", d.Factor)
	}
	d := tl.Domain(time.Second + 150*time.Millisecond)
	if !d.IsComplete() || d.AppTime != time.Second+150*time.Millisecond {
		t.Errorf("late domain = %+v, want complete at 1.15s", d)
	}
	if tl.Status() != StatusCompleted {
		t.Errorf("status = %v, want completed", tl.Status())
	}
	if len(statuses) != 2 || statuses[0] != StatusForward || statuses[1] != StatusCompleted {
		t.Errorf("status changes = %v", statuses)
	}
}

func TestTimelineZeroDurationCompletesImmediately(t *testing.T) {
	tl := NewTimeline(Linear(0))
	tl.Start(0)
	if tl.Status() != StatusCompleted {
		t.Errorf("status = %v, want completed", tl.Status())
	}
}

func TestTimelineUnsubscribe(t *testing.T) {
	tl := NewTimeline(Linear(time.Millisecond))
	calls := 0
	unsubscribe := tl.AddStatusListener(func(Status) { calls++ })
	unsubscribe()
	tl.Start(0)
	if calls != 0 {
		t.Errorf("listener called %d times after unsubscribe", calls)
	}
}

func TestStatusString(t *testing.T) {
	if StatusForward.String() != "forward" || Status(9).String() != "Status(9)" {
		t.Errorf("unexpected status strings")
	}
}

func TestAnimationWithDuration(t *testing.T) {
	a := EaseOutBounce(time.Second).WithDuration(10 * time.Millisecond)
	if a.Duration != 10*time.Millisecond || a.Curve != CurveEaseOutBounce {
		t.Errorf("WithDuration = %v", a)
	}
	var nilCurve Animation
	nilCurve.Duration = 100 * time.Millisecond
	if got := nilCurve.Factor(50 * time.Millisecond); got != 127 {
		t.Errorf("nil curve factor = %d, want linear 127", got)
	}
}

func TestTween(t *testing.T) {
	tw := NewTween[Domainless](Domainless(0), Domainless(100))
	if tw.At(0) != 0 || tw.At(255) != 100 {
		t.Errorf("tween ends = %v, %v", tw.At(0), tw.At(255))
	}
	if tw.Reversed().In(TopLevel(0)) != 0 {
		t.Error("reversed tween should end at Begin")
	}
}

// Domainless is a minimal interpolator for tween tests.
type Domainless uint32

func (d Domainless) Interpolate(to Domainless, amount uint8) Domainless {
	a := uint32(amount)
	return Domainless((a*uint32(to) + (255-a)*uint32(d)) / 255)
}
