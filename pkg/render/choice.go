package render

import (
	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/transition"
)

// OneOf holds the subtree of whichever of N branches is active. Switching
// branches is a hard cut: the target branch is drawn without blending.
type OneOf struct {
	Variant int
	Subtree Renderable
}

// NewOneOf returns the render tree of branch variant.
func NewOneOf(variant int, subtree Renderable) *OneOf {
	return &OneOf{Variant: variant, Subtree: subtree}
}

func (o *OneOf) Render(t Target, style graphics.Color, offset graphics.Point) {
	o.Subtree.Render(t, style, offset)
}

func (o *OneOf) RenderAnimated(t Target, source Renderable, style graphics.Color, offset graphics.Point, d animation.Domain) {
	src := sourceAs("render.OneOf", o, source)
	if src.Variant != o.Variant {
		o.Subtree.Render(t, style, offset)
		return
	}
	o.Subtree.RenderAnimated(t, src.Subtree, style, offset, d)
}

func (o *OneOf) JoinFrom(source Renderable, d animation.Domain) {
	src := sourceAs("render.OneOf", o, source)
	if src.Variant == o.Variant {
		o.Subtree.JoinFrom(src.Subtree, d)
	}
}

// Option is a subtree that may be absent. Appearing and disappearing are
// hard cuts.
type Option struct {
	// Subtree is nil when the option is absent.
	Subtree Renderable
}

// NewOption returns an option; pass nil for an absent subtree.
func NewOption(subtree Renderable) *Option {
	return &Option{Subtree: subtree}
}

func (o *Option) Render(t Target, style graphics.Color, offset graphics.Point) {
	if o.Subtree != nil {
		o.Subtree.Render(t, style, offset)
	}
}

func (o *Option) RenderAnimated(t Target, source Renderable, style graphics.Color, offset graphics.Point, d animation.Domain) {
	src := sourceAs("render.Option", o, source)
	switch {
	case o.Subtree == nil:
	case src.Subtree == nil:
		o.Subtree.Render(t, style, offset)
	default:
		o.Subtree.RenderAnimated(t, src.Subtree, style, offset, d)
	}
}

func (o *Option) JoinFrom(source Renderable, d animation.Domain) {
	src := sourceAs("render.Option", o, source)
	if o.Subtree != nil && src.Subtree != nil {
		o.Subtree.JoinFrom(src.Subtree, d)
	}
}

// TransitionOption is an optional subtree that plays its transition when it
// appears or disappears during an animation.
type TransitionOption struct {
	// Subtree is nil when the option is absent.
	Subtree Renderable
	// Size is the laid-out size of the subtree, used by edge transitions.
	Size       graphics.Size
	Transition transition.Transition
}

// NewTransitionOption returns a transition-aware option. A nil transition
// uses transition.Default.
func NewTransitionOption(subtree Renderable, size graphics.Size, t transition.Transition) *TransitionOption {
	if t == nil {
		t = transition.Default
	}
	return &TransitionOption{Subtree: subtree, Size: size, Transition: t}
}

func (o *TransitionOption) Render(t Target, style graphics.Color, offset graphics.Point) {
	if o.Subtree != nil {
		o.Subtree.Render(t, style, offset)
	}
}

func (o *TransitionOption) RenderAnimated(t Target, source Renderable, style graphics.Color, offset graphics.Point, d animation.Domain) {
	src := sourceAs("render.TransitionOption", o, source)
	switch {
	case src.Subtree != nil && o.Subtree != nil:
		o.Subtree.RenderAnimated(t, src.Subtree, style, offset, d)
	case src.Subtree != nil:
		if d.IsComplete() {
			return
		}
		transitionLayer(t, src.transition(), transition.Out, src.Size, d.Factor, func(t Target) {
			src.Subtree.Render(t, style, offset)
		})
	case o.Subtree != nil:
		if d.IsComplete() {
			o.Subtree.Render(t, style, offset)
			return
		}
		transitionLayer(t, o.transition(), transition.In, o.Size, d.Factor, func(t Target) {
			o.Subtree.Render(t, style, offset)
		})
	}
}

func (o *TransitionOption) transition() transition.Transition {
	if o.Transition == nil {
		return transition.Default
	}
	return o.Transition
}

func transitionLayer(t Target, tr transition.Transition, dir transition.Direction, size graphics.Size, factor uint8, draw func(Target)) {
	opacity := tr.Opacity(dir, factor)
	if opacity == 0 {
		return
	}
	offset := tr.Offset(dir, factor, size)
	t.WithLayer(func(l *Layer) { l.Offset(offset).Opacity(opacity) }, draw)
}

// JoinFrom freezes only when both sides are present. A subtree caught
// mid-exit is dropped and one caught mid-entry restarts from the frozen
// tree at full presence.
func (o *TransitionOption) JoinFrom(source Renderable, d animation.Domain) {
	src := sourceAs("render.TransitionOption", o, source)
	if o.Subtree != nil && src.Subtree != nil {
		o.Subtree.JoinFrom(src.Subtree, d)
		o.Size = src.Size.Interpolate(o.Size, d.Factor)
	}
}
