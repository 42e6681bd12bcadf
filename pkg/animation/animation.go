// Package animation provides the timing side of render-tree interpolation:
// curves that turn elapsed time into an 8-bit factor, animation descriptions,
// the animation domain passed down joins and animated renders, and the clock
// the host loop reads app time from.
//
// # Core Components
//
//   - [Curve]: maps elapsed time to a factor in [0, 255]. The standard curves
//     ([CurveLinear], [CurveEaseIn], [CurveEaseOut], [CurveEaseInOut],
//     [CurveEaseOutBounce]) use integer arithmetic only. [CubicBezier] builds
//     CSS-style curves.
//
//   - [Animation]: a duration and a curve.
//
//   - [Domain]: the factor and app time a subtree is rendered or joined with.
//
//   - [Timeline]: drives one animation against app time, reporting status
//     changes to listeners.
package animation

import (
	"fmt"
	"time"
)

// Animation describes how a change plays out over time.
type Animation struct {
	Duration time.Duration
	Curve    Curve
}

// Linear returns an animation with a linear curve.
func Linear(d time.Duration) Animation {
	return Animation{Duration: d, Curve: CurveLinear}
}

// EaseIn returns an animation that starts slow and speeds up.
func EaseIn(d time.Duration) Animation {
	return Animation{Duration: d, Curve: CurveEaseIn}
}

// EaseOut returns an animation that starts fast and slows down.
func EaseOut(d time.Duration) Animation {
	return Animation{Duration: d, Curve: CurveEaseOut}
}

// EaseInOut returns an animation that begins and ends slowly.
func EaseInOut(d time.Duration) Animation {
	return Animation{Duration: d, Curve: CurveEaseInOut}
}

// EaseOutBounce returns an animation that bounces at the end, staying within
// the bounds of the start and end points.
func EaseOutBounce(d time.Duration) Animation {
	return Animation{Duration: d, Curve: CurveEaseOutBounce}
}

// WithDuration returns a copy of a with a different duration.
func (a Animation) WithDuration(d time.Duration) Animation {
	a.Duration = d
	return a
}

// Factor evaluates the curve at elapsed. A nil curve is linear.
func (a Animation) Factor(elapsed time.Duration) uint8 {
	if a.Curve == nil {
		return CurveLinear.Factor(elapsed, a.Duration)
	}
	return a.Curve.Factor(elapsed, a.Duration)
}

func (a Animation) String() string {
	return fmt.Sprintf("%v %v", a.Curve, a.Duration)
}

// Domain is the animation state a subtree is joined or rendered with.
type Domain struct {
	// Factor is the progress from the source tree (0) to the target tree (255).
	Factor uint8
	// AppTime is the time since the application started.
	AppTime time.Duration
}

// NewDomain builds a domain.
func NewDomain(factor uint8, appTime time.Duration) Domain {
	return Domain{Factor: factor, AppTime: appTime}
}

// TopLevel returns the completed domain at appTime. Without a global
// animation, keyed local animations still compute their own factors from
// AppTime.
func TopLevel(appTime time.Duration) Domain {
	return Domain{Factor: 255, AppTime: appTime}
}

// IsComplete reports whether the domain has reached the target tree.
func (d Domain) IsComplete() bool {
	return d.Factor == 255
}
