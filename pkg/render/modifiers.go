package render

import (
	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/graphics"
)

// Offset is an offset group: it translates its subtree by a single offset
// instead of stamping the offset on every leaf.
type Offset struct {
	Offset  graphics.Point
	Subtree Renderable
}

// NewOffset wraps subtree in an offset group.
func NewOffset(offset graphics.Point, subtree Renderable) *Offset {
	return &Offset{Offset: offset, Subtree: subtree}
}

func (o *Offset) Render(t Target, style graphics.Color, offset graphics.Point) {
	o.Subtree.Render(t, style, offset.Add(o.Offset))
}

func (o *Offset) RenderAnimated(t Target, source Renderable, style graphics.Color, offset graphics.Point, d animation.Domain) {
	src := sourceAs("render.Offset", o, source)
	shift := src.Offset.Interpolate(o.Offset, d.Factor)
	o.Subtree.RenderAnimated(t, src.Subtree, style, offset.Add(shift), d)
}

func (o *Offset) JoinFrom(source Renderable, d animation.Domain) {
	src := sourceAs("render.Offset", o, source)
	o.Offset = src.Offset.Interpolate(o.Offset, d.Factor)
	o.Subtree.JoinFrom(src.Subtree, d)
}

// Container records the frame a subtree was laid out in. Deferred layouts
// use it to keep their bounds alongside the child they produced.
type Container struct {
	Frame graphics.Frame
	Child Renderable
}

// NewContainer returns a container.
func NewContainer(frame graphics.Frame, child Renderable) *Container {
	return &Container{Frame: frame, Child: child}
}

func (c *Container) Render(t Target, style graphics.Color, offset graphics.Point) {
	c.Child.Render(t, style, offset)
}

func (c *Container) RenderAnimated(t Target, source Renderable, style graphics.Color, offset graphics.Point, d animation.Domain) {
	src := sourceAs("render.Container", c, source)
	c.Child.RenderAnimated(t, src.Child, style, offset, d)
}

func (c *Container) JoinFrom(source Renderable, d animation.Domain) {
	src := sourceAs("render.Container", c, source)
	c.Frame = src.Frame.Interpolate(c.Frame, d.Factor)
	c.Child.JoinFrom(src.Child, d)
}

// Opacity draws its subtree in a layer with reduced alpha. A fully
// transparent subtree is skipped.
type Opacity struct {
	Opacity uint8
	Subtree Renderable
}

// NewOpacity returns an opacity node.
func NewOpacity(opacity uint8, subtree Renderable) *Opacity {
	return &Opacity{Opacity: opacity, Subtree: subtree}
}

func (o *Opacity) Render(t Target, style graphics.Color, offset graphics.Point) {
	o.draw(t, o.Opacity, func(t Target) { o.Subtree.Render(t, style, offset) })
}

func (o *Opacity) draw(t Target, opacity uint8, fn func(Target)) {
	switch opacity {
	case 0:
		return
	case 255:
		fn(t)
	default:
		t.WithLayer(func(l *Layer) { l.Opacity(opacity) }, fn)
	}
}

func (o *Opacity) RenderAnimated(t Target, source Renderable, style graphics.Color, offset graphics.Point, d animation.Domain) {
	src := sourceAs("render.Opacity", o, source)
	opacity := graphics.InterpolateU8(src.Opacity, o.Opacity, d.Factor)
	o.draw(t, opacity, func(t Target) { o.Subtree.RenderAnimated(t, src.Subtree, style, offset, d) })
}

func (o *Opacity) JoinFrom(source Renderable, d animation.Domain) {
	src := sourceAs("render.Opacity", o, source)
	o.Opacity = graphics.InterpolateU8(src.Opacity, o.Opacity, d.Factor)
	o.Subtree.JoinFrom(src.Subtree, d)
}

// Shade overrides the inherited foreground colour for its subtree.
type Shade struct {
	Color   graphics.Color
	Subtree Renderable
}

// NewShade returns a foreground override.
func NewShade(c graphics.Color, subtree Renderable) *Shade {
	return &Shade{Color: c, Subtree: subtree}
}

func (s *Shade) Render(t Target, _ graphics.Color, offset graphics.Point) {
	s.Subtree.Render(t, s.Color, offset)
}

func (s *Shade) RenderAnimated(t Target, source Renderable, _ graphics.Color, offset graphics.Point, d animation.Domain) {
	src := sourceAs("render.Shade", s, source)
	s.Subtree.RenderAnimated(t, src.Subtree, src.Color.Interpolate(s.Color, d.Factor), offset, d)
}

func (s *Shade) JoinFrom(source Renderable, d animation.Domain) {
	src := sourceAs("render.Shade", s, source)
	s.Color = src.Color.Interpolate(s.Color, d.Factor)
	s.Subtree.JoinFrom(src.Subtree, d)
}

// Clipped restricts drawing of its subtree to Frame.
type Clipped struct {
	Frame   graphics.Frame
	Subtree Renderable
}

// NewClipped returns a clipping node.
func NewClipped(frame graphics.Frame, subtree Renderable) *Clipped {
	return &Clipped{Frame: frame, Subtree: subtree}
}

func (c *Clipped) Render(t Target, style graphics.Color, offset graphics.Point) {
	clip := c.Frame.Translate(offset)
	t.WithLayer(func(l *Layer) { l.Clip(clip) }, func(t Target) {
		c.Subtree.Render(t, style, offset)
	})
}

func (c *Clipped) RenderAnimated(t Target, source Renderable, style graphics.Color, offset graphics.Point, d animation.Domain) {
	src := sourceAs("render.Clipped", c, source)
	clip := src.Frame.Interpolate(c.Frame, d.Factor).Translate(offset)
	t.WithLayer(func(l *Layer) { l.Clip(clip) }, func(t Target) {
		c.Subtree.RenderAnimated(t, src.Subtree, style, offset, d)
	})
}

func (c *Clipped) JoinFrom(source Renderable, d animation.Domain) {
	src := sourceAs("render.Clipped", c, source)
	c.Frame = src.Frame.Interpolate(c.Frame, d.Factor)
	c.Subtree.JoinFrom(src.Subtree, d)
}

// Transform draws its subtree in a layer with a scale and translation. The
// accumulated offset is folded into the layer so the subtree scales around
// the transform's own origin.
type Transform struct {
	Transform graphics.Transform
	Subtree   Renderable
}

// NewTransform returns a transform node.
func NewTransform(transform graphics.Transform, subtree Renderable) *Transform {
	return &Transform{Transform: transform, Subtree: subtree}
}

func (n *Transform) Render(t Target, style graphics.Color, offset graphics.Point) {
	layer := graphics.Translation(offset).Applying(n.Transform)
	t.WithLayer(func(l *Layer) { l.Transform(layer) }, func(t Target) {
		n.Subtree.Render(t, style, graphics.Point{})
	})
}

func (n *Transform) RenderAnimated(t Target, source Renderable, style graphics.Color, offset graphics.Point, d animation.Domain) {
	src := sourceAs("render.Transform", n, source)
	layer := graphics.Translation(offset).Applying(src.Transform.Interpolate(n.Transform, d.Factor))
	t.WithLayer(func(l *Layer) { l.Transform(layer) }, func(t Target) {
		n.Subtree.RenderAnimated(t, src.Subtree, style, graphics.Point{}, d)
	})
}

func (n *Transform) JoinFrom(source Renderable, d animation.Domain) {
	src := sourceAs("render.Transform", n, source)
	n.Transform = src.Transform.Interpolate(n.Transform, d.Factor)
	n.Subtree.JoinFrom(src.Subtree, d)
}

// HintBackground tells character sinks which colour lies behind its subtree,
// so faded content is blended toward it instead of being dropped.
type HintBackground struct {
	Color   graphics.Color
	Subtree Renderable
}

// NewHintBackground returns a background hint node.
func NewHintBackground(c graphics.Color, subtree Renderable) *HintBackground {
	return &HintBackground{Color: c, Subtree: subtree}
}

func (h *HintBackground) Render(t Target, style graphics.Color, offset graphics.Point) {
	t.WithLayer(func(l *Layer) { l.HintBackground(h.Color) }, func(t Target) {
		h.Subtree.Render(t, style, offset)
	})
}

func (h *HintBackground) RenderAnimated(t Target, source Renderable, style graphics.Color, offset graphics.Point, d animation.Domain) {
	src := sourceAs("render.HintBackground", h, source)
	c := src.Color.Interpolate(h.Color, d.Factor)
	t.WithLayer(func(l *Layer) { l.HintBackground(c) }, func(t Target) {
		h.Subtree.RenderAnimated(t, src.Subtree, style, offset, d)
	})
}

func (h *HintBackground) JoinFrom(source Renderable, d animation.Domain) {
	src := sourceAs("render.HintBackground", h, source)
	h.Color = src.Color.Interpolate(h.Color, d.Factor)
	h.Subtree.JoinFrom(src.Subtree, d)
}
