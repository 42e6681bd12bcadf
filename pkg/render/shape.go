package render

import (
	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/graphics"
)

// Geometry is a shape that can be interpolated toward another of its kind.
type Geometry[S any] interface {
	graphics.Shape
	graphics.Interpolator[S]
}

// Gradient fills a shape from one colour at its leading edge to another at
// its trailing edge.
type Gradient struct {
	From, To graphics.Color
}

// Interpolate blends both end colours.
func (g Gradient) Interpolate(to Gradient, amount uint8) Gradient {
	return Gradient{From: g.From.Interpolate(to.From, amount), To: g.To.Interpolate(to.To, amount)}
}

// ShapeNode is a filled or stroked shape leaf. Its geometry is absolute: the
// origin was stamped when the render tree was built.
type ShapeNode[S Geometry[S]] struct {
	Shape S
	// StrokeWidth outlines the shape instead of filling it when non-zero.
	StrokeWidth uint32
	// Gradient replaces the inherited style colour when set.
	Gradient *Gradient
}

// Shape leaves.
type (
	Rect        = ShapeNode[graphics.Rectangle]
	RoundedRect = ShapeNode[graphics.RoundedRectangle]
	Circle      = ShapeNode[graphics.Circle]
	Capsule     = ShapeNode[graphics.Capsule]
)

// NewRect returns a filled rectangle leaf.
func NewRect(origin graphics.Point, size graphics.Size) *Rect {
	return &Rect{Shape: graphics.Rectangle{Origin: origin, Size: size}}
}

// NewRoundedRect returns a filled rounded rectangle leaf.
func NewRoundedRect(origin graphics.Point, size graphics.Size, radius uint32) *RoundedRect {
	return &RoundedRect{Shape: graphics.RoundedRectangle{Origin: origin, Size: size, Radius: radius}}
}

// NewCircle returns a filled circle leaf.
func NewCircle(origin graphics.Point, diameter uint32) *Circle {
	return &Circle{Shape: graphics.Circle{Origin: origin, Diameter: diameter}}
}

// NewCapsule returns a filled capsule leaf.
func NewCapsule(origin graphics.Point, size graphics.Size) *Capsule {
	return &Capsule{Shape: graphics.Capsule{Origin: origin, Size: size}}
}

// Join blends geometry, stroke width and gradient. A gradient that only one
// side has snaps at the midpoint.
func (n ShapeNode[S]) Join(target ShapeNode[S], d animation.Domain) ShapeNode[S] {
	out := ShapeNode[S]{
		Shape:       n.Shape.Interpolate(target.Shape, d.Factor),
		StrokeWidth: graphics.InterpolateU32(n.StrokeWidth, target.StrokeWidth, d.Factor),
	}
	switch {
	case n.Gradient != nil && target.Gradient != nil:
		g := n.Gradient.Interpolate(*target.Gradient, d.Factor)
		out.Gradient = &g
	default:
		out.Gradient = graphics.InterpolateDiscrete(n.Gradient, target.Gradient, d.Factor)
	}
	return out
}

func (n *ShapeNode[S]) Render(t Target, style graphics.Color, offset graphics.Point) {
	transform := graphics.Translation(offset)
	brush := n.brush(style)
	if n.StrokeWidth > 0 {
		t.Stroke(n.StrokeWidth, transform, brush, n.Shape)
		return
	}
	t.Fill(transform, brush, n.Shape)
}

func (n *ShapeNode[S]) brush(style graphics.Color) Brush {
	if n.Gradient == nil {
		return SolidBrush(style)
	}
	return HorizontalGradient{From: n.Gradient.From, To: n.Gradient.To, Bounds: n.Shape.Bounds()}
}

func (n *ShapeNode[S]) RenderAnimated(t Target, source Renderable, style graphics.Color, offset graphics.Point, d animation.Domain) {
	src := sourceAs("render.ShapeNode", n, source)
	joined := Join(*src, *n, d)
	joined.Render(t, style, offset)
}

func (n *ShapeNode[S]) JoinFrom(source Renderable, d animation.Domain) {
	src := sourceAs("render.ShapeNode", n, source)
	*n = Join(*src, *n, d)
}
