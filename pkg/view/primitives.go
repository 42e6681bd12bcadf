package view

import (
	"math"

	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
	"github.com/go-drift/ripple/pkg/render"
)

// EmptyView takes no space and draws nothing.
type EmptyView struct{ leaf }

func (EmptyView) Layout(layout.ProposedDimensions, layout.Environment) layout.ResolvedLayout[any] {
	return layout.Leaf(layout.Dimensions{})
}

func (EmptyView) RenderTree(layout.ResolvedLayout[any], graphics.Point, layout.Environment) render.Renderable {
	return &render.Empty{}
}

func (EmptyView) IsEmpty() bool { return true }

// Spacer expands along the enclosing stack's direction and takes no space
// across it. Its lowest priority makes stacks give it whatever their other
// children leave over.
type Spacer struct {
	leaf
	// MinLength is the least length the spacer takes along the stack.
	MinLength uint32
}

func (s Spacer) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	length := layout.Dimension(s.MinLength)
	if env.LayoutDirection() == layout.Horizontal {
		return layout.Leaf(layout.Dims(offer.Width.ResolveMostFlexible(length, length), 0))
	}
	return layout.Leaf(layout.Dims(0, offer.Height.ResolveMostFlexible(length, length)))
}

func (Spacer) RenderTree(layout.ResolvedLayout[any], graphics.Point, layout.Environment) render.Renderable {
	return &render.Empty{}
}

func (Spacer) Priority() int8 { return math.MinInt8 }

// Divider is a line across the enclosing stack: a row in a vertical stack, a
// column in a horizontal one. It is laid out before its siblings.
type Divider struct {
	leaf
	// Weight is the line's thickness. Zero means one unit.
	Weight uint32
}

func (d Divider) weight() layout.Dimension {
	if d.Weight == 0 {
		return 1
	}
	return layout.Dimension(d.Weight)
}

func (d Divider) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	if env.LayoutDirection() == layout.Horizontal {
		return layout.Leaf(layout.Dims(d.weight(), offer.Height.ResolveMostFlexible(0, 1)))
	}
	return layout.Leaf(layout.Dims(offer.Width.ResolveMostFlexible(0, 1), d.weight()))
}

func (Divider) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, _ layout.Environment) render.Renderable {
	return render.NewRect(origin, l.ResolvedSize.Size())
}

func (Divider) Priority() int8 { return math.MaxInt8 }

// Stroke configures how a shape view is drawn.
type Stroke struct {
	// Width outlines the shape instead of filling it when non-zero.
	Width uint32
	// Gradient fills the shape with a horizontal gradient instead of the
	// foreground colour.
	Gradient *render.Gradient
}

func (s Stroke) apply(width *uint32, gradient **render.Gradient) {
	*width = s.Width
	*gradient = s.Gradient
}

// Rectangle fills all the space it is offered.
type Rectangle struct {
	leaf
	Stroke
}

func (Rectangle) Layout(offer layout.ProposedDimensions, _ layout.Environment) layout.ResolvedLayout[any] {
	return layout.Leaf(offer.ResolveMostFlexible(0, 1))
}

func (r Rectangle) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, _ layout.Environment) render.Renderable {
	n := render.NewRect(origin, l.ResolvedSize.Size())
	r.apply(&n.StrokeWidth, &n.Gradient)
	return n
}

// RoundedRectangle is a Rectangle with rounded corners. The radius is capped
// to half the shorter side.
type RoundedRectangle struct {
	leaf
	Stroke
	Radius uint32
}

func (RoundedRectangle) Layout(offer layout.ProposedDimensions, _ layout.Environment) layout.ResolvedLayout[any] {
	return layout.Leaf(offer.ResolveMostFlexible(0, 1))
}

func (r RoundedRectangle) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, _ layout.Environment) render.Renderable {
	n := render.NewRoundedRect(origin, l.ResolvedSize.Size(), r.Radius)
	r.apply(&n.StrokeWidth, &n.Gradient)
	return n
}

// Capsule is a Rectangle whose shorter sides are fully rounded.
type Capsule struct {
	leaf
	Stroke
}

func (Capsule) Layout(offer layout.ProposedDimensions, _ layout.Environment) layout.ResolvedLayout[any] {
	return layout.Leaf(offer.ResolveMostFlexible(0, 1))
}

func (c Capsule) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, _ layout.Environment) render.Renderable {
	n := render.NewCapsule(origin, l.ResolvedSize.Size())
	c.apply(&n.StrokeWidth, &n.Gradient)
	return n
}

// Circle is the largest circle fitting the more constrained axis of the
// offer.
type Circle struct {
	leaf
	Stroke
}

func (Circle) Layout(offer layout.ProposedDimensions, _ layout.Environment) layout.ResolvedLayout[any] {
	axis := offer.Width
	if offer.Height.Compare(axis) < 0 {
		axis = offer.Height
	}
	d := axis.ResolveMostFlexible(0, 1)
	return layout.Leaf(layout.Dims(d, d))
}

func (c Circle) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, _ layout.Environment) render.Renderable {
	n := render.NewCircle(origin, l.ResolvedSize.Width.Coordinate())
	c.apply(&n.StrokeWidth, &n.Gradient)
	return n
}
