package view

import (
	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
	"github.com/go-drift/ripple/pkg/render"
)

// Animated runs Animation over its child whenever Value changes between two
// builds, independently of any animation the host applies to the whole
// tree. The child's subtree is frozen and resumed correctly when the tree
// is rebuilt mid-animation.
type Animated[V comparable] struct {
	View
	Animation animation.Animation
	Value     V
}

// Animate returns v animated with a when value changes.
func Animate[V comparable](a animation.Animation, value V, v View) Animated[V] {
	return Animated[V]{View: v, Animation: a, Value: value}
}

func (a Animated[V]) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	return a.View.Layout(offer, env)
}

func (a Animated[V]) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	return render.NewAnimate(a.View.RenderTree(l, origin, env), a.Animation, env.AppTime(), a.Value)
}
