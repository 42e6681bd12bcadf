// Package graphics provides the geometry, colour and shape primitives shared by
// layout, render trees and pixel sinks, together with their interpolation.
package graphics

import (
	"fmt"
	"math"
)

// MaxCoordinate is the largest extent a concrete size may take. Infinite
// layout dimensions are clamped to it when converted to geometry.
const MaxCoordinate uint32 = math.MaxInt32

// Point is a signed position in display units.
type Point struct {
	X, Y int32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p translated by the negation of o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Neg returns the point mirrored through the origin.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// IsZero reports whether p is the origin.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Interpolate blends p toward to.
func (p Point) Interpolate(to Point, amount uint8) Point {
	return Point{
		X: InterpolateI32(p.X, to.X, amount),
		Y: InterpolateI32(p.Y, to.Y, amount),
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Size is an unsigned extent in display units.
type Size struct {
	Width, Height uint32
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h uint32) Size {
	return Size{Width: w, Height: h}
}

// Area returns width times height.
func (s Size) Area() uint64 {
	return uint64(s.Width) * uint64(s.Height)
}

// IsEmpty reports whether either axis is zero.
func (s Size) IsEmpty() bool {
	return s.Width == 0 || s.Height == 0
}

// Point returns the size as a point, useful for corner arithmetic.
func (s Size) Point() Point {
	return Point{X: clampCoord(s.Width), Y: clampCoord(s.Height)}
}

// Interpolate blends s toward to.
func (s Size) Interpolate(to Size, amount uint8) Size {
	return Size{
		Width:  InterpolateU32(s.Width, to.Width, amount),
		Height: InterpolateU32(s.Height, to.Height, amount),
	}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Frame is an axis-aligned rectangle positioned at Origin.
type Frame struct {
	Origin Point
	Size   Size
}

// NewFrame builds a frame from its origin and size.
func NewFrame(origin Point, size Size) Frame {
	return Frame{Origin: origin, Size: size}
}

// Max returns the exclusive bottom-right corner.
func (f Frame) Max() Point {
	return f.Origin.Add(f.Size.Point())
}

// Contains reports whether p lies inside the frame.
func (f Frame) Contains(p Point) bool {
	m := f.Max()
	return p.X >= f.Origin.X && p.Y >= f.Origin.Y && p.X < m.X && p.Y < m.Y
}

// IsEmpty reports whether the frame covers no area.
func (f Frame) IsEmpty() bool {
	return f.Size.IsEmpty()
}

// Translate returns the frame moved by offset.
func (f Frame) Translate(offset Point) Frame {
	return Frame{Origin: f.Origin.Add(offset), Size: f.Size}
}

// Intersection returns the overlap of two frames, or an empty frame at f's
// origin when they do not overlap.
func (f Frame) Intersection(o Frame) Frame {
	fm, om := f.Max(), o.Max()
	minX, minY := max(f.Origin.X, o.Origin.X), max(f.Origin.Y, o.Origin.Y)
	maxX, maxY := min(fm.X, om.X), min(fm.Y, om.Y)
	if maxX <= minX || maxY <= minY {
		return Frame{Origin: f.Origin}
	}
	return Frame{
		Origin: Point{X: minX, Y: minY},
		Size:   Size{Width: uint32(maxX - minX), Height: uint32(maxY - minY)},
	}
}

// Union returns the smallest frame containing both frames. Empty frames are
// ignored.
func (f Frame) Union(o Frame) Frame {
	if f.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return f
	}
	fm, om := f.Max(), o.Max()
	minX, minY := min(f.Origin.X, o.Origin.X), min(f.Origin.Y, o.Origin.Y)
	maxX, maxY := max(fm.X, om.X), max(fm.Y, om.Y)
	return Frame{
		Origin: Point{X: minX, Y: minY},
		Size:   Size{Width: uint32(maxX - minX), Height: uint32(maxY - minY)},
	}
}

// Interpolate blends origin and size independently.
func (f Frame) Interpolate(to Frame, amount uint8) Frame {
	return Frame{
		Origin: f.Origin.Interpolate(to.Origin, amount),
		Size:   f.Size.Interpolate(to.Size, amount),
	}
}

func (f Frame) String() string {
	return fmt.Sprintf("%v %v", f.Origin, f.Size)
}

func clampCoord(v uint32) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	return int32(v)
}
