package graphics

import "fmt"

// scaleShift is the number of fractional bits in a Scale.
const scaleShift = 14

// Scale is an unsigned fixed-point scale factor with 14 fractional bits.
type Scale uint32

// ScaleOne is the identity scale.
const ScaleOne Scale = 1 << scaleShift

// ScaleFromFloat converts f to the nearest representable scale. Negative
// values clamp to zero.
func ScaleFromFloat(f float64) Scale {
	if f <= 0 {
		return 0
	}
	return Scale(f*float64(ScaleOne) + 0.5)
}

// ScaleRatio returns num/den as a scale. A zero denominator yields ScaleOne.
func ScaleRatio(num, den uint32) Scale {
	if den == 0 {
		return ScaleOne
	}
	return Scale((uint64(num) << scaleShift) / uint64(den))
}

// Float returns the scale as a float64.
func (s Scale) Float() float64 {
	return float64(s) / float64(ScaleOne)
}

// Mul composes two scales.
func (s Scale) Mul(o Scale) Scale {
	return Scale((uint64(s) * uint64(o)) >> scaleShift)
}

// ApplyI32 scales a signed value, rounding toward negative infinity.
func (s Scale) ApplyI32(v int32) int32 {
	return int32((int64(v) * int64(s)) >> scaleShift)
}

// ApplyU32 scales an unsigned value.
func (s Scale) ApplyU32(v uint32) uint32 {
	return uint32((uint64(v) * uint64(s)) >> scaleShift)
}

// Interpolate blends two scales in fixed point.
func (s Scale) Interpolate(to Scale, amount uint8) Scale {
	return Scale(InterpolateU32(uint32(s), uint32(to), amount))
}

func (s Scale) String() string {
	return fmt.Sprintf("%.3f", s.Float())
}

// Transform is a uniform scale followed by a translation.
type Transform struct {
	Offset Point
	Scale  Scale
}

// Identity returns the transform that leaves points unchanged.
func Identity() Transform {
	return Transform{Scale: ScaleOne}
}

// Translation returns a pure offset transform.
func Translation(offset Point) Transform {
	return Transform{Offset: offset, Scale: ScaleOne}
}

// NewTransform returns a transform scaling by s and then translating by offset.
func NewTransform(offset Point, s Scale) Transform {
	return Transform{Offset: offset, Scale: s}
}

// IsIdentity reports whether the transform has no effect.
func (t Transform) IsIdentity() bool {
	return t.Offset.IsZero() && t.Scale == ScaleOne
}

// Applying returns the transform equivalent to applying o first and t second.
func (t Transform) Applying(o Transform) Transform {
	return Transform{
		Offset: Point{
			X: t.Scale.ApplyI32(o.Offset.X) + t.Offset.X,
			Y: t.Scale.ApplyI32(o.Offset.Y) + t.Offset.Y,
		},
		Scale: t.Scale.Mul(o.Scale),
	}
}

// ApplyPoint maps a point through the transform.
func (t Transform) ApplyPoint(p Point) Point {
	return Point{
		X: t.Scale.ApplyI32(p.X) + t.Offset.X,
		Y: t.Scale.ApplyI32(p.Y) + t.Offset.Y,
	}
}

// ApplySize scales a size.
func (t Transform) ApplySize(s Size) Size {
	return Size{Width: t.Scale.ApplyU32(s.Width), Height: t.Scale.ApplyU32(s.Height)}
}

// ApplyFrame maps a frame through the transform.
func (t Transform) ApplyFrame(f Frame) Frame {
	return Frame{Origin: t.ApplyPoint(f.Origin), Size: t.ApplySize(f.Size)}
}

// InversePoint maps a transformed point back into local coordinates. A zero
// scale maps every point to the origin.
func (t Transform) InversePoint(p Point) Point {
	if t.Scale == 0 {
		return Point{}
	}
	d := p.Sub(t.Offset)
	return Point{
		X: int32((int64(d.X) << scaleShift) / int64(t.Scale)),
		Y: int32((int64(d.Y) << scaleShift) / int64(t.Scale)),
	}
}

// Interpolate blends offset and scale independently.
func (t Transform) Interpolate(to Transform, amount uint8) Transform {
	return Transform{
		Offset: t.Offset.Interpolate(to.Offset, amount),
		Scale:  t.Scale.Interpolate(to.Scale, amount),
	}
}

// UnitPoint is a position relative to a frame, with each axis expressed as a
// scale from 0 (leading/top) to ScaleOne (trailing/bottom).
type UnitPoint struct {
	X, Y Scale
}

// Common anchors.
var (
	UnitTopLeading     = UnitPoint{}
	UnitTop            = UnitPoint{X: ScaleOne / 2}
	UnitTopTrailing    = UnitPoint{X: ScaleOne}
	UnitLeading        = UnitPoint{Y: ScaleOne / 2}
	UnitCenter         = UnitPoint{X: ScaleOne / 2, Y: ScaleOne / 2}
	UnitTrailing       = UnitPoint{X: ScaleOne, Y: ScaleOne / 2}
	UnitBottomLeading  = UnitPoint{Y: ScaleOne}
	UnitBottom         = UnitPoint{X: ScaleOne / 2, Y: ScaleOne}
	UnitBottomTrailing = UnitPoint{X: ScaleOne, Y: ScaleOne}
)

// In returns the absolute position of the unit point within f.
func (u UnitPoint) In(f Frame) Point {
	return f.Origin.Add(Point{
		X: clampCoord(u.X.ApplyU32(f.Size.Width)),
		Y: clampCoord(u.Y.ApplyU32(f.Size.Height)),
	})
}
