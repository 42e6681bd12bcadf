// Package view provides the declarative views laid out and rendered by
// Ripple.
//
// A view is a plain value rebuilt from application data every frame. Laying
// out a view negotiates its size with the space its parent offers and
// returns a [layout.ResolvedLayout]; rendering the resolved layout at an
// origin stamps absolute positions into an immutable [render.Renderable]
// tree. Two render trees produced by the same view structure can be blended
// by the render package.
//
// # Sizing
//
// Parents offer each child a [layout.ProposedDimensions]. On each axis an
// exact offer asks the child to fit a length, a compact offer asks for its
// ideal length and an unbounded offer for the largest length it would take.
// Children may resolve to more than they were offered; overflow is drawn or
// clipped downstream, never reported.
//
// # Modifiers
//
// Modifiers embed the view they modify and inherit its priority, emptiness
// and transition unless they override them.
//
// # Structure
//
// A layout must be rendered by the view that produced it. Rendering a
// layout with a view of a different shape, such as the other branch of an
// [IfElse], panics with an *errors.MismatchError.
package view

import (
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
	"github.com/go-drift/ripple/pkg/render"
	"github.com/go-drift/ripple/pkg/transition"
)

// View is a node of a declarative view tree.
type View interface {
	// Layout resolves the view's size for offer.
	Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any]
	// RenderTree builds the render tree of a layout returned by Layout,
	// with the view's top-left corner at origin.
	RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable
	// Priority orders siblings when a stack distributes space. Higher
	// priorities are offered space first.
	Priority() int8
	// IsEmpty reports whether the view never draws anything, so stacks can
	// omit spacing around it.
	IsEmpty() bool
	// Transition is played when the view appears or disappears inside an
	// [If].
	Transition() transition.Transition
}

// leaf supplies the defaults of a view without children.
type leaf struct{}

func (leaf) Priority() int8                     { return 0 }
func (leaf) IsEmpty() bool                      { return false }
func (leaf) Transition() transition.Transition { return transition.Default }

// LayoutIn lays v out in a display of the given size.
func LayoutIn(v View, size graphics.Size, env layout.Environment) layout.ResolvedLayout[any] {
	return v.Layout(layout.ProposalFromSize(size), env)
}

// Build lays v out in a display of the given size and renders it at the
// origin.
func Build(v View, size graphics.Size, env layout.Environment) render.Renderable {
	return v.RenderTree(LayoutIn(v, size, env), graphics.Point{}, env)
}

// place positions content of the given size inside a container at origin.
func place(origin graphics.Point, a layout.Alignment, container, content layout.Dimensions) graphics.Point {
	return origin.Add(a.Offset(container, content))
}
