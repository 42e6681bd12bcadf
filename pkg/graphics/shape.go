package graphics

// Shape is a filled region in display coordinates.
type Shape interface {
	// Bounds returns the smallest frame containing the shape.
	Bounds() Frame
	// Contains reports whether the unit cell at p is covered by the shape.
	Contains(p Point) bool
	// Inset returns the shape shrunk by n units on every side.
	Inset(n uint32) Shape
}

// Rectangle is an axis-aligned filled rectangle.
type Rectangle struct {
	Origin Point
	Size   Size
}

func (r Rectangle) Bounds() Frame { return Frame{Origin: r.Origin, Size: r.Size} }

func (r Rectangle) Contains(p Point) bool { return r.Bounds().Contains(p) }

func (r Rectangle) Inset(n uint32) Shape {
	return Rectangle{Origin: r.Origin.Add(Point{X: clampCoord(n), Y: clampCoord(n)}), Size: insetSize(r.Size, n)}
}

// Interpolate blends origin and size.
func (r Rectangle) Interpolate(to Rectangle, amount uint8) Rectangle {
	return Rectangle{Origin: r.Origin.Interpolate(to.Origin, amount), Size: r.Size.Interpolate(to.Size, amount)}
}

// RoundedRectangle is a rectangle with circular corners of the given radius.
type RoundedRectangle struct {
	Origin Point
	Size   Size
	Radius uint32
}

func (r RoundedRectangle) Bounds() Frame { return Frame{Origin: r.Origin, Size: r.Size} }

func (r RoundedRectangle) Contains(p Point) bool {
	if !r.Bounds().Contains(p) {
		return false
	}
	radius := min(r.Radius, r.Size.Width/2, r.Size.Height/2)
	if radius == 0 {
		return true
	}
	// Work in doubled coordinates so the pixel centre is integral.
	lx := int64(p.X-r.Origin.X)*2 + 1
	ly := int64(p.Y-r.Origin.Y)*2 + 1
	w, h, d := int64(r.Size.Width)*2, int64(r.Size.Height)*2, int64(radius)*2
	var cx, cy int64
	switch {
	case lx < d:
		cx = d
	case lx > w-d:
		cx = w - d
	default:
		return true
	}
	switch {
	case ly < d:
		cy = d
	case ly > h-d:
		cy = h - d
	default:
		return true
	}
	dx, dy := lx-cx, ly-cy
	return dx*dx+dy*dy <= d*d
}

func (r RoundedRectangle) Inset(n uint32) Shape {
	radius := uint32(0)
	if r.Radius > n {
		radius = r.Radius - n
	}
	return RoundedRectangle{
		Origin: r.Origin.Add(Point{X: clampCoord(n), Y: clampCoord(n)}),
		Size:   insetSize(r.Size, n),
		Radius: radius,
	}
}

// Interpolate blends origin, size and radius.
func (r RoundedRectangle) Interpolate(to RoundedRectangle, amount uint8) RoundedRectangle {
	return RoundedRectangle{
		Origin: r.Origin.Interpolate(to.Origin, amount),
		Size:   r.Size.Interpolate(to.Size, amount),
		Radius: InterpolateU32(r.Radius, to.Radius, amount),
	}
}

// Circle is described by the top-left corner of its bounding square and its
// diameter.
type Circle struct {
	Origin   Point
	Diameter uint32
}

func (c Circle) Bounds() Frame {
	return Frame{Origin: c.Origin, Size: Size{Width: c.Diameter, Height: c.Diameter}}
}

func (c Circle) Contains(p Point) bool {
	if c.Diameter == 0 {
		return false
	}
	d := int64(c.Diameter)
	dx := int64(p.X-c.Origin.X)*2 + 1 - d
	dy := int64(p.Y-c.Origin.Y)*2 + 1 - d
	return dx*dx+dy*dy <= d*d
}

func (c Circle) Inset(n uint32) Shape {
	d := uint32(0)
	if c.Diameter > 2*n {
		d = c.Diameter - 2*n
	}
	return Circle{Origin: c.Origin.Add(Point{X: clampCoord(n), Y: clampCoord(n)}), Diameter: d}
}

// Interpolate blends the leading and trailing corners separately and derives
// the diameter from their distance, so a circle anchored at its trailing
// corner stays anchored there while it grows.
func (c Circle) Interpolate(to Circle, amount uint8) Circle {
	origin := c.Origin.Interpolate(to.Origin, amount)
	corner := c.trailing().Interpolate(to.trailing(), amount)
	dx, dy := absI32(corner.X-origin.X), absI32(corner.Y-origin.Y)
	return Circle{Origin: origin, Diameter: uint32(max(dx, dy))}
}

func (c Circle) trailing() Point {
	d := clampCoord(c.Diameter)
	return c.Origin.Add(Point{X: d, Y: d})
}

// Capsule is a rectangle whose shorter sides are fully rounded.
type Capsule struct {
	Origin Point
	Size   Size
}

func (c Capsule) Bounds() Frame { return Frame{Origin: c.Origin, Size: c.Size} }

func (c Capsule) Contains(p Point) bool { return c.rounded().Contains(p) }

func (c Capsule) Inset(n uint32) Shape {
	return Capsule{Origin: c.Origin.Add(Point{X: clampCoord(n), Y: clampCoord(n)}), Size: insetSize(c.Size, n)}
}

// Interpolate blends origin and size.
func (c Capsule) Interpolate(to Capsule, amount uint8) Capsule {
	return Capsule{Origin: c.Origin.Interpolate(to.Origin, amount), Size: c.Size.Interpolate(to.Size, amount)}
}

func (c Capsule) rounded() RoundedRectangle {
	return RoundedRectangle{Origin: c.Origin, Size: c.Size, Radius: min(c.Size.Width, c.Size.Height) / 2}
}

func insetSize(s Size, n uint32) Size {
	shrink := func(v uint32) uint32 {
		if v <= 2*n {
			return 0
		}
		return v - 2*n
	}
	return Size{Width: shrink(s.Width), Height: shrink(s.Height)}
}

func absI32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
