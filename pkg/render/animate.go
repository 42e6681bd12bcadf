package render

import (
	"time"

	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/graphics"
)

// Animate runs a local animation keyed on Value. When the value differs
// between the source and target trees, the subtree is blended with the
// node's own timer instead of the enclosing domain's factor.
type Animate[V comparable] struct {
	Subtree   Renderable
	Animation animation.Animation
	// FrameTime is the app time at which the tree was built.
	FrameTime time.Duration
	Value     V
	// IsPartial is set on a node frozen mid-animation, so that an unchanged
	// value continues the frozen animation rather than cutting it short.
	IsPartial bool
}

// NewAnimate returns an animation node built at frameTime.
func NewAnimate[V comparable](subtree Renderable, a animation.Animation, frameTime time.Duration, value V) *Animate[V] {
	return &Animate[V]{Subtree: subtree, Animation: a, FrameTime: frameTime, Value: value}
}

// window returns the end time and duration of the animation running between
// source and the receiver.
func (n *Animate[V]) window(source *Animate[V], appTime time.Duration) (end, duration time.Duration) {
	switch {
	case source.Value != n.Value:
		return n.FrameTime + n.Animation.Duration, n.Animation.Duration
	case source.IsPartial:
		return source.FrameTime + source.Animation.Duration, source.Animation.Duration
	default:
		return appTime, 0
	}
}

// subdomain returns the domain the subtree is blended with and whether the
// animation is still running at d.AppTime.
func (n *Animate[V]) subdomain(source *Animate[V], d animation.Domain) (animation.Domain, time.Duration, bool) {
	end, duration := n.window(source, d.AppTime)
	if end == 0 || d.AppTime >= end {
		return animation.TopLevel(d.AppTime), 0, false
	}
	remaining := end - d.AppTime
	elapsed := max(duration-remaining, 0)
	curve := source.Animation.WithDuration(duration)
	return animation.NewDomain(curve.Factor(elapsed), d.AppTime), remaining, true
}

func (n *Animate[V]) Render(t Target, style graphics.Color, offset graphics.Point) {
	n.Subtree.Render(t, style, offset)
}

func (n *Animate[V]) RenderAnimated(t Target, source Renderable, style graphics.Color, offset graphics.Point, d animation.Domain) {
	src := sourceAs("render.Animate", n, source)
	sub, _, running := n.subdomain(src, d)
	if running {
		t.ReportActiveAnimation()
	}
	n.Subtree.RenderAnimated(t, src.Subtree, style, offset, sub)
}

func (n *Animate[V]) JoinFrom(source Renderable, d animation.Domain) {
	src := sourceAs("render.Animate", n, source)
	sub, remaining, running := n.subdomain(src, d)
	n.Subtree.JoinFrom(src.Subtree, sub)
	n.Animation = n.Animation.WithDuration(remaining)
	n.FrameTime = d.AppTime
	n.IsPartial = running
}
