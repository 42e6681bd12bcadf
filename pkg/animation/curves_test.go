package animation

import (
	"math"
	"testing"
	"time"
)

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestLinearFactorBounds(t *testing.T) {
	tests := []struct {
		elapsed int
		want    uint8
	}{
		{0, 0},
		{50, 127},
		{100, 255},
		{101, 255},
		{1500, 255},
	}
	for _, tt := range tests {
		if got := CurveLinear.Factor(ms(tt.elapsed), ms(100)); got != tt.want {
			t.Errorf("linear(%dms of 100ms) = %d, want %d", tt.elapsed, got, tt.want)
		}
	}
}

func TestStandardCurveEnds(t *testing.T) {
	curves := []StandardCurve{CurveLinear, CurveEaseIn, CurveEaseOut, CurveEaseInOut, CurveEaseOutBounce}
	for _, c := range curves {
		t.Run(c.String(), func(t *testing.T) {
			if got := c.Factor(0, ms(100)); got != 0 {
				t.Errorf("factor at start = %d, want 0", got)
			}
			for _, elapsed := range []int{100, 101, 1500} {
				if got := c.Factor(ms(elapsed), ms(100)); got != 255 {
					t.Errorf("factor at %dms = %d, want 255", elapsed, got)
				}
			}
			if got := c.Factor(ms(10), 0); got != 255 {
				t.Errorf("zero duration factor = %d, want 255", got)
			}
		})
	}
}

// reference evaluates the continuous form of each curve.
func reference(c StandardCurve, x float64) float64 {
	switch c {
	case CurveEaseIn:
		return x * x
	case CurveEaseOut:
		return 1 - (1-x)*(1-x)
	case CurveEaseInOut:
		if x < 0.5 {
			return 2 * x * x
		}
		y := -2*x + 2
		return 1 - y*y/2
	case CurveEaseOutBounce:
		const n1, d1 = 7.5625, 2.75
		switch {
		case x < 1/d1:
			return n1 * x * x
		case x < 2/d1:
			x -= 1.5 / d1
			return n1*x*x + 0.75
		case x < 2.5/d1:
			x -= 2.25 / d1
			return n1*x*x + 0.9375
		default:
			x -= 2.625 / d1
			return n1*x*x + 0.984375
		}
	default:
		return x
	}
}

func TestStandardCurvesApproximateContinuousForm(t *testing.T) {
	tolerance := map[StandardCurve]float64{
		CurveLinear:        1,
		CurveEaseIn:        1,
		CurveEaseOut:       2,
		CurveEaseInOut:     2,
		CurveEaseOutBounce: 3,
	}
	for c, tol := range tolerance {
		for elapsed := 0; elapsed <= 500; elapsed++ {
			want := math.Min(math.Max(reference(c, float64(elapsed)/500)*255, 0), 255)
			got := float64(c.Factor(ms(elapsed), ms(500)))
			if math.Abs(math.Floor(want)-got) > tol {
				t.Fatalf("%v at %dms = %v, want about %v", c, elapsed, got, want)
			}
		}
	}
}

func TestEaseInOutMidpoint(t *testing.T) {
	if got := CurveEaseInOut.Factor(ms(50), ms(100)); got != 127 {
		t.Errorf("ease-in-out midpoint = %d, want 127", got)
	}
}

func TestParseCurve(t *testing.T) {
	c, err := ParseCurve("ease-out-bounce")
	if err != nil || c != CurveEaseOutBounce {
		t.Errorf("ParseCurve = %v, %v", c, err)
	}
	if _, err := ParseCurve("wobble"); err == nil {
		t.Error("expected an error for an unknown curve")
	}
}

func TestCubicBezierEndpoints(t *testing.T) {
	curve := CubicBezier(0.25, 0.1, 0.25, 1.0)
	if got := curve.Transform(0); got != 0 {
		t.Errorf("Transform(0) = %v, want 0", got)
	}
	if got := curve.Transform(1); got != 1 {
		t.Errorf("Transform(1) = %v, want 1", got)
	}
	if got := curve.Factor(0, ms(100)); got != 0 {
		t.Errorf("Factor(0) = %d, want 0", got)
	}
	if got := curve.Factor(ms(100), ms(100)); got != 255 {
		t.Errorf("Factor(end) = %d, want 255", got)
	}
}

func TestCubicBezierMonotonic(t *testing.T) {
	prev := uint8(0)
	for elapsed := 0; elapsed <= 100; elapsed++ {
		got := BezierEaseInOut.Factor(ms(elapsed), ms(100))
		if got < prev {
			t.Fatalf("factor decreased at %dms: %d < %d", elapsed, got, prev)
		}
		prev = got
	}
}

func TestCubicBezierLinearMatchesIdentity(t *testing.T) {
	curve := CubicBezier(0, 0, 1, 1)
	for _, x := range []float64{0.1, 0.25, 0.5, 0.75, 0.9} {
		if got := curve.Transform(x); math.Abs(got-x) > 1e-4 {
			t.Errorf("Transform(%v) = %v, want %v", x, got, x)
		}
	}
}
