package render

import (
	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/errors"
	"github.com/go-drift/ripple/pkg/graphics"
)

// Group is a fixed-arity sequence of subtrees drawn in order. Its source
// counterpart must have the same number of children.
type Group struct {
	Children []Renderable
}

// NewGroup returns a group of children.
func NewGroup(children ...Renderable) *Group {
	return &Group{Children: children}
}

func (g *Group) Render(t Target, style graphics.Color, offset graphics.Point) {
	for _, child := range g.Children {
		child.Render(t, style, offset)
	}
}

func (g *Group) source(source Renderable) *Group {
	src := sourceAs("render.Group", g, source)
	if len(src.Children) != len(g.Children) {
		panic(errors.MismatchCount("render.Group", len(g.Children), len(src.Children)))
	}
	return src
}

func (g *Group) RenderAnimated(t Target, source Renderable, style graphics.Color, offset graphics.Point, d animation.Domain) {
	src := g.source(source)
	for i, child := range g.Children {
		child.RenderAnimated(t, src.Children[i], style, offset, d)
	}
}

func (g *Group) JoinFrom(source Renderable, d animation.Domain) {
	src := g.source(source)
	for i, child := range g.Children {
		child.JoinFrom(src.Children[i], d)
	}
}

// Collection is a runtime-length sequence of subtrees. Items are paired by
// index; target items without a source counterpart appear immediately and
// source items without a target counterpart are dropped.
type Collection struct {
	Items []Renderable
}

// NewCollection returns a collection of items.
func NewCollection(items []Renderable) *Collection {
	return &Collection{Items: items}
}

func (c *Collection) Render(t Target, style graphics.Color, offset graphics.Point) {
	for _, item := range c.Items {
		item.Render(t, style, offset)
	}
}

func (c *Collection) RenderAnimated(t Target, source Renderable, style graphics.Color, offset graphics.Point, d animation.Domain) {
	src := sourceAs("render.Collection", c, source)
	for i, item := range c.Items {
		if i < len(src.Items) {
			item.RenderAnimated(t, src.Items[i], style, offset, d)
		} else {
			item.Render(t, style, offset)
		}
	}
}

func (c *Collection) JoinFrom(source Renderable, d animation.Domain) {
	src := sourceAs("render.Collection", c, source)
	for i, item := range c.Items {
		if i < len(src.Items) {
			item.JoinFrom(src.Items[i], d)
		}
	}
}
