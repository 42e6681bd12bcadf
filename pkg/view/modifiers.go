package view

import (
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
	"github.com/go-drift/ripple/pkg/render"
	"github.com/go-drift/ripple/pkg/transition"
)

// Offset draws its child displaced by Offset without changing its layout.
type Offset struct {
	View
	Offset graphics.Point
}

func (o Offset) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	return o.View.Layout(offer, env)
}

func (o Offset) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	return o.View.RenderTree(l, origin.Add(o.Offset), env)
}

// GeometryGroup builds its child relative to its own origin and moves the
// whole subtree with a single offset node. When the group moves during an
// animation its children travel together instead of each interpolating
// its own position.
type GeometryGroup struct {
	View
}

func (g GeometryGroup) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	return g.View.Layout(offer, env)
}

func (g GeometryGroup) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	return render.NewOffset(origin, g.View.RenderTree(l, graphics.Point{}, env))
}

// Prioritized overrides the stack priority of its child.
type Prioritized struct {
	View
	Level int8
}

func (p Prioritized) Priority() int8 { return p.Level }

func (p Prioritized) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	return p.View.Layout(offer, env)
}

func (p Prioritized) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	return p.View.RenderTree(l, origin, env)
}

// Hidden lays its child out but draws nothing.
type Hidden struct {
	View
}

func (h Hidden) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	return h.View.Layout(offer, env)
}

func (Hidden) RenderTree(layout.ResolvedLayout[any], graphics.Point, layout.Environment) render.Renderable {
	return &render.Empty{}
}

// Opacity fades its child. Alpha 255 is opaque.
type Opacity struct {
	View
	Alpha uint8
}

func (o Opacity) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	return o.View.Layout(offer, env)
}

func (o Opacity) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	return render.NewOpacity(o.Alpha, o.View.RenderTree(l, origin, env))
}

// ForegroundColor sets the colour its child draws with.
type ForegroundColor struct {
	View
	Color graphics.Color
}

func (f ForegroundColor) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	return f.View.Layout(offer, layout.WithForeground(env, f.Color))
}

func (f ForegroundColor) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	return render.NewShade(f.Color, f.View.RenderTree(l, origin, layout.WithForeground(env, f.Color)))
}

// BackgroundColor fills the area of its child with Color and hints it as the
// background of the child's content.
type BackgroundColor struct {
	View
	Color graphics.Color
}

func (b BackgroundColor) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	return b.View.Layout(offer, env)
}

func (b BackgroundColor) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	return render.NewGroup(
		render.NewShade(b.Color, render.NewRect(origin, l.ResolvedSize.Size())),
		render.NewHintBackground(b.Color, b.View.RenderTree(l, origin, env)),
	)
}

// layered is the layout of a primary view and a secondary view sized to it.
type layered struct {
	primary, secondary layout.ResolvedLayout[any]
}

func layoutLayered(primary, secondary View, offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	p := primary.Layout(offer, env)
	s := secondary.Layout(layout.ProposalFromDimensions(p.ResolvedSize), env)
	return layout.Resolved[any](p.ResolvedSize, layered{primary: p, secondary: s})
}

func (ll layered) render(primary, secondary View, a layout.Alignment, origin graphics.Point, env layout.Environment) (p, s render.Renderable) {
	p = primary.RenderTree(ll.primary, origin, env)
	s = secondary.RenderTree(ll.secondary, place(origin, a, ll.primary.ResolvedSize, ll.secondary.ResolvedSize), env)
	return p, s
}

// Background draws Content behind its child. Content is offered exactly
// the child's size and aligned within it; the child alone determines the
// size.
type Background struct {
	View
	Content   View
	Alignment layout.Alignment
}

// Behind returns v with a centred background.
func Behind(content, v View) Background {
	return Background{View: v, Content: content, Alignment: layout.AlignCenter}
}

func (b Background) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	return layoutLayered(b.View, b.Content, offer, env)
}

func (b Background) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	p, s := layout.Sublayout[layered](l).render(b.View, b.Content, b.Alignment, origin, env)
	return render.NewGroup(s, p)
}

// Overlay draws Content over its child, sized and aligned like Background.
type Overlay struct {
	View
	Content   View
	Alignment layout.Alignment
}

// Over returns v with a centred overlay.
func Over(content, v View) Overlay {
	return Overlay{View: v, Content: content, Alignment: layout.AlignCenter}
}

func (o Overlay) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	return layoutLayered(o.View, o.Content, offer, env)
}

func (o Overlay) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	p, s := layout.Sublayout[layered](l).render(o.View, o.Content, o.Alignment, origin, env)
	return render.NewGroup(p, s)
}

// Clipped restricts its child's drawing to its resolved frame.
type Clipped struct {
	View
}

func (c Clipped) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	return c.View.Layout(offer, env)
}

func (c Clipped) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	frame := graphics.NewFrame(origin, l.ResolvedSize.Size())
	return render.NewClipped(frame, c.View.RenderTree(l, origin, env))
}

// ScaleEffect draws its child scaled around Anchor. Layout is unaffected, so
// a scaled child may overlap its neighbours.
type ScaleEffect struct {
	View
	Scale  graphics.Scale
	Anchor graphics.UnitPoint
}

// Scaled returns v scaled around its centre.
func Scaled(s graphics.Scale, v View) ScaleEffect {
	return ScaleEffect{View: v, Scale: s, Anchor: graphics.UnitCenter}
}

func (s ScaleEffect) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	return s.View.Layout(offer, env)
}

func (s ScaleEffect) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	anchor := s.Anchor.In(graphics.Frame{Size: l.ResolvedSize.Size()})
	inner := s.View.RenderTree(l, anchor.Neg(), env)
	return render.NewTransform(graphics.NewTransform(origin.Add(anchor), s.Scale), inner)
}

// Transitioned overrides the transition its child plays inside an If.
type Transitioned struct {
	View
	With transition.Transition
}

func (t Transitioned) Transition() transition.Transition { return t.With }

func (t Transitioned) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	return t.View.Layout(offer, env)
}

func (t Transitioned) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	return t.View.RenderTree(l, origin, env)
}
