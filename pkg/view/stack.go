package view

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/go-drift/ripple/pkg/errors"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
	"github.com/go-drift/ripple/pkg/render"
)

// AllocationPolicy decides the order in which a stack offers its remaining
// space to children when its main axis is offered an exact length.
type AllocationPolicy uint8

const (
	// PriorityThenFlexibility groups children by descending priority. Each
	// group shares whatever the previous groups left, and inside a group the
	// least flexible children are offered space first so that greedy
	// children absorb the remainder.
	PriorityThenFlexibility AllocationPolicy = iota
	// InOrder offers each child an equal share of the remaining space in
	// declaration order, ignoring priorities.
	InOrder
)

func (p AllocationPolicy) String() string {
	switch p {
	case PriorityThenFlexibility:
		return "priority"
	case InOrder:
		return "in-order"
	default:
		return fmt.Sprintf("AllocationPolicy(%d)", p)
	}
}

// ParseAllocationPolicy returns the policy with the given name.
func ParseAllocationPolicy(name string) (AllocationPolicy, error) {
	for _, p := range []AllocationPolicy{PriorityThenFlexibility, InOrder} {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown allocation policy %q", name)
}

// stackAxis maps a stack's main and cross axes onto width and height.
type stackAxis layout.LayoutDirection

func (a stackAxis) horizontal() bool { return layout.LayoutDirection(a) == layout.Horizontal }

func (a stackAxis) split(p layout.ProposedDimensions) (main, cross layout.ProposedDimension) {
	if a.horizontal() {
		return p.Width, p.Height
	}
	return p.Height, p.Width
}

func (a stackAxis) offer(main, cross layout.ProposedDimension) layout.ProposedDimensions {
	if a.horizontal() {
		return layout.Propose(main, cross)
	}
	return layout.Propose(cross, main)
}

func (a stackAxis) extent(d layout.Dimensions) (main, cross layout.Dimension) {
	if a.horizontal() {
		return d.Width, d.Height
	}
	return d.Height, d.Width
}

func (a stackAxis) dims(main, cross layout.Dimension) layout.Dimensions {
	if a.horizontal() {
		return layout.Dims(main, cross)
	}
	return layout.Dims(cross, main)
}

func (a stackAxis) point(main, cross int32) graphics.Point {
	if a.horizontal() {
		return graphics.Pt(main, cross)
	}
	return graphics.Pt(cross, main)
}

// stack is the layout shared by HStack and VStack.
type stack struct {
	axis     stackAxis
	children []View
	spacing  layout.Dimension
	policy   AllocationPolicy
}

// spacingFor returns the total spacing between n visible children.
func (s stack) spacingFor(n int) layout.Dimension {
	if n < 2 {
		return 0
	}
	return s.spacing.Mul(uint32(n - 1))
}

func (s stack) layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	layouts := make([]layout.ResolvedLayout[any], len(s.children))
	mainOffer, crossOffer := s.axis.split(offer)
	measure := func(i int, main layout.ProposedDimension) (layout.Dimension, layout.Dimension) {
		layouts[i] = s.children[i].Layout(s.axis.offer(main, crossOffer), env)
		return s.axis.extent(layouts[i].ResolvedSize)
	}

	total, exact := mainOffer.Value()
	if !exact {
		var sum, crossMax layout.Dimension
		visible := 0
		for i, child := range s.children {
			main, cross := measure(i, mainOffer)
			if child.IsEmpty() {
				continue
			}
			sum = sum.Add(main)
			crossMax = crossMax.Max(cross)
			visible++
		}
		return layout.Resolved[any](s.axis.dims(sum.Add(s.spacingFor(visible)), crossMax), layouts)
	}

	// Flexibility is how much more a child takes when offered unbounded
	// space than when offered none.
	flexibility := make([]layout.Dimension, len(s.children))
	var visible []int
	for i, child := range s.children {
		least, _ := measure(i, layout.Exact(0))
		if child.IsEmpty() {
			continue
		}
		most, _ := measure(i, layout.Unbounded())
		flexibility[i] = most.Sub(least)
		visible = append(visible, i)
	}

	remaining := total.Sub(s.spacingFor(len(visible)))
	var crossMax layout.Dimension
	allocate := func(group []int) {
		count := layout.Dimension(len(group))
		for _, i := range group {
			share := remaining/count + remaining%count
			main, cross := measure(i, layout.Exact(share))
			remaining = remaining.Sub(main)
			crossMax = crossMax.Max(cross)
			count--
		}
	}

	switch s.policy {
	case InOrder:
		allocate(visible)
	default:
		order := slices.Clone(visible)
		slices.SortStableFunc(order, func(a, b int) int {
			if c := cmp.Compare(s.children[b].Priority(), s.children[a].Priority()); c != 0 {
				return c
			}
			return cmp.Compare(flexibility[a], flexibility[b])
		})
		for start := 0; start < len(order); {
			end := start + 1
			priority := s.children[order[start]].Priority()
			for end < len(order) && s.children[order[end]].Priority() == priority {
				end++
			}
			allocate(order[start:end])
			start = end
		}
	}

	// The stack never reports more cross extent than it was offered, even
	// when children overflow.
	if crossLimit, ok := crossOffer.Value(); ok {
		crossMax = crossMax.Min(crossLimit)
	}
	return layout.Resolved[any](s.axis.dims(total.Sub(remaining), crossMax), layouts)
}

// renderNodes builds the children's render trees. align places a child
// across the stack.
func (s stack) renderNodes(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment, align func(available, content layout.Dimension) int32) []render.Renderable {
	layouts := layout.Sublayout[[]layout.ResolvedLayout[any]](l)
	if len(layouts) != len(s.children) {
		panic(errors.MismatchCount("view.stack", len(s.children), len(layouts)))
	}
	_, crossExtent := s.axis.extent(l.ResolvedSize)
	nodes := make([]render.Renderable, len(s.children))
	var offset int32
	for i, child := range s.children {
		main, cross := s.axis.extent(layouts[i].ResolvedSize)
		at := origin.Add(s.axis.point(offset, align(crossExtent, cross)))
		nodes[i] = child.RenderTree(layouts[i], at, env)
		if !child.IsEmpty() {
			offset += int32(main.Add(s.spacing).Coordinate())
		}
	}
	return nodes
}

// HStack arranges its children left to right.
type HStack struct {
	leaf
	Children []View
	// Alignment places children of different heights.
	Alignment layout.VerticalAlignment
	// Spacing separates adjacent children that are not empty.
	Spacing uint32
	Policy  AllocationPolicy
}

// HStackOf returns a top-aligned horizontal stack.
func HStackOf(children ...View) HStack {
	return HStack{Children: children}
}

func (h HStack) stack() stack {
	return stack{axis: stackAxis(layout.Horizontal), children: h.Children, spacing: layout.Dimension(h.Spacing), policy: h.Policy}
}

func (h HStack) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	return h.stack().layout(offer, layout.WithDirection(env, layout.Horizontal))
}

func (h HStack) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	return render.NewGroup(h.stack().renderNodes(l, origin, layout.WithDirection(env, layout.Horizontal), h.Alignment.Align)...)
}

// VStack arranges its children top to bottom.
type VStack struct {
	leaf
	Children []View
	// Alignment places children of different widths.
	Alignment layout.HorizontalAlignment
	// Spacing separates adjacent children that are not empty.
	Spacing uint32
	Policy  AllocationPolicy
}

// VStackOf returns a leading-aligned vertical stack.
func VStackOf(children ...View) VStack {
	return VStack{Children: children}
}

func (v VStack) stack() stack {
	return stack{axis: stackAxis(layout.Vertical), children: v.Children, spacing: layout.Dimension(v.Spacing), policy: v.Policy}
}

func (v VStack) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	return v.stack().layout(offer, layout.WithDirection(env, layout.Vertical))
}

func (v VStack) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	return render.NewGroup(v.stack().renderNodes(l, origin, layout.WithDirection(env, layout.Vertical), v.Alignment.Align)...)
}

// ZStack overlays its children, later children drawing over earlier ones.
// It resolves to the union of its children's sizes, clamped to the offer.
type ZStack struct {
	leaf
	Children  []View
	Alignment layout.Alignment
}

// ZStackOf returns a centred overlay stack.
func ZStackOf(children ...View) ZStack {
	return ZStack{Children: children, Alignment: layout.AlignCenter}
}

func (z ZStack) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	layouts := make([]layout.ResolvedLayout[any], len(z.Children))
	var size layout.Dimensions
	for i, child := range z.Children {
		layouts[i] = child.Layout(offer, env)
		size = size.Union(layouts[i].ResolvedSize)
	}
	return layout.Resolved[any](size.IntersectingProposal(offer), layouts)
}

func (z ZStack) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	layouts := layout.Sublayout[[]layout.ResolvedLayout[any]](l)
	if len(layouts) != len(z.Children) {
		panic(errors.MismatchCount("view.ZStack", len(z.Children), len(layouts)))
	}
	nodes := make([]render.Renderable, len(z.Children))
	for i, child := range z.Children {
		nodes[i] = child.RenderTree(layouts[i], place(origin, z.Alignment, l.ResolvedSize, layouts[i].ResolvedSize), env)
	}
	return render.NewGroup(nodes...)
}
