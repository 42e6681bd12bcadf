package view

import (
	"github.com/go-drift/ripple/pkg/errors"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
	"github.com/go-drift/ripple/pkg/render"
	"github.com/go-drift/ripple/pkg/transition"
)

// optionLayout records whether an optional view was present when laid out.
type optionLayout struct {
	present bool
	child   layout.ResolvedLayout[any]
}

func layoutOption(present bool, v View, offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	if !present {
		return layout.Resolved[any](layout.Dimensions{}, optionLayout{})
	}
	child := v.Layout(offer, env)
	return layout.Resolved[any](child.ResolvedSize, optionLayout{present: true, child: child})
}

func renderOption(op string, present bool, v View, l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	ol := layout.Sublayout[optionLayout](l)
	if ol.present != present {
		panic(errors.Mismatch(op, present, ol.present))
	}
	if !present {
		return nil
	}
	return v.RenderTree(ol.child, origin, env)
}

// If shows Then while Condition holds. When the condition changes during an
// animation, Then enters or leaves with its transition.
type If struct {
	Condition bool
	Then      View
}

func (i If) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	return layoutOption(i.Condition, i.Then, offer, env)
}

func (i If) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	subtree := renderOption("view.If", i.Condition, i.Then, l, origin, env)
	return render.NewTransitionOption(subtree, l.ResolvedSize.Size(), i.Transition())
}

func (i If) Priority() int8 {
	if !i.Condition {
		return 0
	}
	return i.Then.Priority()
}

func (i If) IsEmpty() bool { return !i.Condition || i.Then.IsEmpty() }

func (i If) Transition() transition.Transition {
	if i.Then == nil {
		return transition.Default
	}
	return i.Then.Transition()
}

// Optional shows View when it is not nil. Unlike If, appearing and
// disappearing is never animated.
type Optional struct {
	View View
}

func (o Optional) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	return layoutOption(o.View != nil, o.View, offer, env)
}

func (o Optional) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	return render.NewOption(renderOption("view.Optional", o.View != nil, o.View, l, origin, env))
}

func (o Optional) Priority() int8 {
	if o.View == nil {
		return 0
	}
	return o.View.Priority()
}

func (o Optional) IsEmpty() bool { return o.View == nil || o.View.IsEmpty() }

func (o Optional) Transition() transition.Transition {
	if o.View == nil {
		return transition.Default
	}
	return o.View.Transition()
}

// variantLayout records which branch of a choice was laid out.
type variantLayout struct {
	variant int
	child   layout.ResolvedLayout[any]
}

func layoutVariant(variant int, v View, offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	child := v.Layout(offer, env)
	return layout.Resolved[any](child.ResolvedSize, variantLayout{variant: variant, child: child})
}

func renderVariant(op string, variant int, v View, l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	vl := layout.Sublayout[variantLayout](l)
	if vl.variant != variant {
		panic(errors.Mismatch(op, variant, vl.variant))
	}
	return render.NewOneOf(variant, v.RenderTree(vl.child, origin, env))
}

// IfElse shows Then while Condition holds and Else otherwise. Switching
// branches snaps rather than animating.
type IfElse struct {
	Condition  bool
	Then, Else View
}

func (i IfElse) branch() (int, View) {
	if i.Condition {
		return 0, i.Then
	}
	return 1, i.Else
}

func (i IfElse) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	variant, v := i.branch()
	return layoutVariant(variant, v, offer, env)
}

func (i IfElse) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	variant, v := i.branch()
	return renderVariant("view.IfElse", variant, v, l, origin, env)
}

func (i IfElse) Priority() int8 {
	_, v := i.branch()
	return v.Priority()
}

func (i IfElse) IsEmpty() bool {
	_, v := i.branch()
	return v.IsEmpty()
}

func (i IfElse) Transition() transition.Transition {
	_, v := i.branch()
	return v.Transition()
}

// Match shows Cases[Index]. An index out of range shows nothing.
type Match struct {
	Index int
	Cases []View
}

func (m Match) branch() (int, View) {
	if m.Index < 0 || m.Index >= len(m.Cases) {
		return len(m.Cases), EmptyView{}
	}
	return m.Index, m.Cases[m.Index]
}

func (m Match) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	variant, v := m.branch()
	return layoutVariant(variant, v, offer, env)
}

func (m Match) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	variant, v := m.branch()
	return renderVariant("view.Match", variant, v, l, origin, env)
}

func (m Match) Priority() int8 {
	_, v := m.branch()
	return v.Priority()
}

func (m Match) IsEmpty() bool {
	_, v := m.branch()
	return v.IsEmpty()
}

func (m Match) Transition() transition.Transition {
	_, v := m.branch()
	return v.Transition()
}

// ForEach stacks one view per item. The number of items may change between
// builds: items present in both trees animate, new items appear at their
// final state and removed items disappear.
type ForEach[T any] struct {
	leaf
	Items []T
	Build func(T) View
	// Direction is the stacking axis. The zero value stacks horizontally.
	Direction layout.LayoutDirection
	// Alignment places items across the stacking axis.
	Alignment layout.Alignment
	Spacing   uint32
}

// List returns a vertical ForEach.
func List[T any](items []T, build func(T) View) ForEach[T] {
	return ForEach[T]{Items: items, Build: build, Direction: layout.Vertical}
}

func (f ForEach[T]) stack() stack {
	children := make([]View, len(f.Items))
	for i, item := range f.Items {
		children[i] = f.Build(item)
	}
	return stack{axis: stackAxis(f.Direction), children: children, spacing: layout.Dimension(f.Spacing)}
}

func (f ForEach[T]) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	return f.stack().layout(offer, layout.WithDirection(env, f.Direction))
}

func (f ForEach[T]) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	align := f.Alignment.Vertical.Align
	if f.Direction == layout.Vertical {
		align = f.Alignment.Horizontal.Align
	}
	return render.NewCollection(f.stack().renderNodes(l, origin, layout.WithDirection(env, f.Direction), align))
}

func (f ForEach[T]) IsEmpty() bool { return len(f.Items) == 0 }

// GeometryReader takes all the space it is offered and builds its content
// from the resulting size.
type GeometryReader struct {
	leaf
	Content func(size layout.Dimensions) View
}

func (g GeometryReader) Layout(offer layout.ProposedDimensions, _ layout.Environment) layout.ResolvedLayout[any] {
	size := offer.ResolveMostFlexible(0, 1)
	return layout.Resolved[any](size, size)
}

func (g GeometryReader) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	size := layout.Sublayout[layout.Dimensions](l)
	content := g.Content(size)
	cl := content.Layout(layout.ProposalFromDimensions(size), env)
	frame := graphics.NewFrame(origin, size.Size())
	return render.NewContainer(frame, content.RenderTree(cl, origin, env))
}
