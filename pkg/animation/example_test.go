package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/ripple/pkg/animation"
)

// This example shows how curves turn elapsed time into a factor.
func ExampleCurve() {
	a := animation.EaseInOut(200 * time.Millisecond)
	for _, elapsed := range []time.Duration{0, 50 * time.Millisecond, 100 * time.Millisecond, 200 * time.Millisecond} {
		fmt.Println(elapsed, a.Factor(elapsed))
	}
	// Output:
	// 0s 0
	// 50ms 32
	// 100ms 127
	// 200ms 255
}

// This example shows how a host drives frames from a timeline.
func ExampleTimeline() {
	tl := animation.NewTimeline(animation.Linear(100 * time.Millisecond))
	tl.AddStatusListener(func(s animation.Status) {
		fmt.Println("status:", s)
	})

	tl.Start(0)
	fmt.Println(tl.Domain(25 * time.Millisecond).Factor)
	fmt.Println(tl.Domain(100 * time.Millisecond).IsComplete())
	// Output:
	// status: forward
	// 63
	// status: completed
	// true
}

// This example shows how to create a custom curve matching CSS cubic-bezier().
func ExampleCubicBezier() {
	curve := animation.CubicBezier(0.68, -0.55, 0.265, 1.55)
	a := animation.Animation{Duration: 300 * time.Millisecond, Curve: curve}
	fmt.Println(a.Factor(0), a.Factor(300*time.Millisecond))
	// Output:
	// 0 255
}
