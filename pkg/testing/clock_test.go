package testing

import (
	"testing"
	"time"

	"github.com/go-drift/ripple/pkg/animation"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestUseFakeClock_DrivesAppClock(t *testing.T) {
	clk := UseFakeClock(t)
	app := animation.StartAppClock()

	clk.Advance(250 * time.Millisecond)
	if got := app.Elapsed(); got != 250*time.Millisecond {
		t.Errorf("expected 250ms of app time, got %v", got)
	}

	clk.Set(clk.Now().Add(-time.Hour))
	if got := app.Elapsed(); got != 0 {
		t.Errorf("expected app time to stop at zero, got %v", got)
	}
}
