package view

import (
	"fmt"
	"strings"

	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
	"github.com/go-drift/ripple/pkg/render"
)

// Edges is a set of sides of a view.
type Edges uint8

const (
	EdgeTop Edges = 1 << iota
	EdgeBottom
	EdgeLeading
	EdgeTrailing

	EdgesHorizontal = EdgeLeading | EdgeTrailing
	EdgesVertical   = EdgeTop | EdgeBottom
	EdgesAll        = EdgesHorizontal | EdgesVertical
)

var edgeNames = []struct {
	edges Edges
	name  string
}{
	{EdgesAll, "all"},
	{EdgesHorizontal, "horizontal"},
	{EdgesVertical, "vertical"},
	{EdgeTop, "top"},
	{EdgeBottom, "bottom"},
	{EdgeLeading, "leading"},
	{EdgeTrailing, "trailing"},
}

// ParseEdges parses a comma separated list of edge names such as
// "top,horizontal".
func ParseEdges(s string) (Edges, error) {
	var e Edges
	for name := range strings.SplitSeq(s, ",") {
		name = strings.TrimSpace(name)
		found := false
		for _, n := range edgeNames {
			if n.name == name {
				e |= n.edges
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("unknown edge %q", name)
		}
	}
	return e, nil
}

func (e Edges) amount(edge Edges, n uint32) layout.Dimension {
	if e&edge == 0 {
		return 0
	}
	return layout.Dimension(n)
}

// Padding insets its child by Amount on each of Edges. When the offer is
// smaller than the padding the child is offered nothing and the padding
// still takes its full size.
type Padding struct {
	View
	Edges  Edges
	Amount uint32
}

// Padded pads every edge of v.
func Padded(amount uint32, v View) Padding {
	return Padding{View: v, Edges: EdgesAll, Amount: amount}
}

func (p Padding) insets() (leading, top, width, height layout.Dimension) {
	leading = p.Edges.amount(EdgeLeading, p.Amount)
	top = p.Edges.amount(EdgeTop, p.Amount)
	width = leading.Add(p.Edges.amount(EdgeTrailing, p.Amount))
	height = top.Add(p.Edges.amount(EdgeBottom, p.Amount))
	return leading, top, width, height
}

func (p Padding) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	_, _, width, height := p.insets()
	child := p.View.Layout(offer.Inset(width, height), env)
	return layout.Resolved[any](child.ResolvedSize.Add(layout.Dims(width, height)), child)
}

func (p Padding) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	leading, top, _, _ := p.insets()
	at := origin.Add(graphics.Pt(int32(leading.Coordinate()), int32(top.Coordinate())))
	return p.View.RenderTree(layout.Sublayout[layout.ResolvedLayout[any]](l), at, env)
}
