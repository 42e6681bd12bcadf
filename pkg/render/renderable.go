package render

import (
	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/errors"
	"github.com/go-drift/ripple/pkg/graphics"
)

// Renderable is a node of a render tree.
//
// RenderAnimated and JoinFrom are called on the target tree with the source
// tree as argument. Both trees must have been built by the same view
// structure: every node's source counterpart must have the same concrete
// type, and a mismatch panics with a *errors.MismatchError.
type Renderable interface {
	// Render draws the node. style is the inherited foreground colour and
	// offset the accumulated translation of enclosing offset groups.
	Render(t Target, style graphics.Color, offset graphics.Point)
	// RenderAnimated draws the blend of source and the receiver at d.Factor
	// without modifying either tree.
	RenderAnimated(t Target, source Renderable, style graphics.Color, offset graphics.Point, d animation.Domain)
	// JoinFrom replaces the receiver with the blend of source and the
	// receiver at d.Factor, freezing an animation that is in flight.
	JoinFrom(source Renderable, d animation.Domain)
}

// Joiner is implemented by value nodes that blend purely into a new value.
type Joiner[T any] interface {
	Join(target T, d animation.Domain) T
}

// Join blends source toward target. At factor 0 the result equals source and
// at factor 255 it equals target, except where a node tracks its own timer.
func Join[T Joiner[T]](source, target T, d animation.Domain) T {
	return source.Join(target, d)
}

// sourceAs asserts that source has the receiver's concrete type.
func sourceAs[T Renderable](op string, target T, source Renderable) T {
	s, ok := source.(T)
	if !ok {
		panic(errors.Mismatch(op, target, source))
	}
	return s
}

// Empty renders nothing.
type Empty struct{}

func (*Empty) Render(Target, graphics.Color, graphics.Point) {}

func (e *Empty) RenderAnimated(_ Target, source Renderable, _ graphics.Color, _ graphics.Point, _ animation.Domain) {
	sourceAs("render.Empty", e, source)
}

func (e *Empty) JoinFrom(source Renderable, _ animation.Domain) {
	sourceAs("render.Empty", e, source)
}
