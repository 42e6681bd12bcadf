package animation

import (
	"fmt"
	"math"
	"time"
)

// Curve maps elapsed time within an animation to an 8-bit progress factor.
// Every curve returns 0 at zero elapsed time and 255 once elapsed reaches the
// duration. A zero duration completes immediately.
type Curve interface {
	Factor(elapsed, duration time.Duration) uint8
}

// StandardCurve is one of the integer easing curves. They are evaluated in
// whole milliseconds with integer arithmetic only.
type StandardCurve uint8

const (
	// CurveLinear advances at a constant rate.
	CurveLinear StandardCurve = iota
	// CurveEaseIn is a quadratic curve that starts slowly and accelerates.
	CurveEaseIn
	// CurveEaseOut is a quadratic curve that starts quickly and decelerates.
	CurveEaseOut
	// CurveEaseInOut is quadratic at both ends with a fast middle section.
	CurveEaseInOut
	// CurveEaseOutBounce bounces against the end value, never overshooting it.
	CurveEaseOutBounce
)

func (c StandardCurve) String() string {
	switch c {
	case CurveLinear:
		return "linear"
	case CurveEaseIn:
		return "ease-in"
	case CurveEaseOut:
		return "ease-out"
	case CurveEaseInOut:
		return "ease-in-out"
	case CurveEaseOutBounce:
		return "ease-out-bounce"
	default:
		return fmt.Sprintf("StandardCurve(%d)", int(c))
	}
}

// ParseCurve returns the standard curve with the given name.
func ParseCurve(name string) (StandardCurve, error) {
	for c := CurveLinear; c <= CurveEaseOutBounce; c++ {
		if c.String() == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown curve %q", name)
}

// Factor implements Curve.
func (c StandardCurve) Factor(elapsed, duration time.Duration) uint8 {
	d := duration.Milliseconds()
	if d <= 0 {
		return 255
	}
	t := min(max(elapsed.Milliseconds(), 0), d)

	switch c {
	case CurveEaseIn:
		x := t * 256 / d
		return clampByte((x * x) >> 8)
	case CurveEaseOut:
		x := (d - t) * 256 / d
		return 255 - clampByte((x*x)>>8)
	case CurveEaseInOut:
		x := t * 256 / d
		if x < 128 {
			return clampByte((x * x) >> 7)
		}
		return clampByte(255 - (((256 - x) * (256 - x)) >> 7))
	case CurveEaseOutBounce:
		return bounce(t * 1024 / d)
	default:
		return clampByte(t * 255 / d)
	}
}

// bounce evaluates the ease-out-bounce polynomial pieces on a 1024 scale
// (n1 = 7.5625 -> 7744, d1 = 2.75) and returns a 256-scale factor.
func bounce(x int64) uint8 {
	piece := func(offset, base int64) int64 {
		ax := x - offset
		sq := (ax * ax) >> 10
		return base + (((7744 * sq) >> 10) >> 2)
	}
	var v int64
	switch {
	case x < 372:
		v = piece(0, 0)
	case x < 745:
		v = piece(559, 192)
	case x < 931:
		v = piece(838, 240)
	default:
		v = piece(977, 252)
	}
	return clampByte(v)
}

func clampByte(v int64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// BezierCurve is a cubic-bezier easing curve matching CSS cubic-bezier().
// Outputs that overshoot [0, 1] are clamped to the factor range.
type BezierCurve struct {
	X1, Y1, X2, Y2 float64
}

// Common bezier curves, equivalent to the CSS keywords.
var (
	BezierEase      = CubicBezier(0.25, 0.1, 0.25, 1.0)
	BezierEaseIn    = CubicBezier(0.4, 0.0, 1.0, 1.0)
	BezierEaseOut   = CubicBezier(0.0, 0.0, 0.2, 1.0)
	BezierEaseInOut = CubicBezier(0.4, 0.0, 0.2, 1.0)
)

// CubicBezier returns a curve with control points (x1,y1) and (x2,y2). The
// curve starts at (0,0) and ends at (1,1).
func CubicBezier(x1, y1, x2, y2 float64) BezierCurve {
	return BezierCurve{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Factor implements Curve.
func (b BezierCurve) Factor(elapsed, duration time.Duration) uint8 {
	if duration <= 0 || elapsed >= duration {
		return 255
	}
	if elapsed <= 0 {
		return 0
	}
	y := b.Transform(float64(elapsed) / float64(duration))
	return clampByte(int64(math.Round(y * 255)))
}

// Transform evaluates the curve at t in [0, 1].
func (b BezierCurve) Transform(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}

	u := t
	// Newton-Raphson converges quickly for most values.
	for range 8 {
		x := sampleCurve(b.X1, b.X2, u) - t
		if math.Abs(x) < 1e-7 {
			return sampleCurve(b.Y1, b.Y2, clampUnit(u))
		}
		dx := sampleCurveDerivative(b.X1, b.X2, u)
		if math.Abs(dx) < 1e-7 {
			break
		}
		u -= x / dx
	}

	// Fallback to bisection to guarantee a stable solution in [0,1].
	lo, hi := 0.0, 1.0
	u = clampUnit(u)
	for range 12 {
		x := sampleCurve(b.X1, b.X2, u) - t
		if math.Abs(x) < 1e-7 {
			break
		}
		if x > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) * 0.5
	}

	return sampleCurve(b.Y1, b.Y2, u)
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
