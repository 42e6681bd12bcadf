package view

import (
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
	"github.com/go-drift/ripple/pkg/render"
)

// Bound is an optional length. The zero Bound is unset.
type Bound struct {
	value layout.Dimension
	set   bool
}

// Len returns a bound of n units.
func Len(n uint32) Bound { return Bound{value: layout.Dimension(n), set: true} }

// Fill is an infinite maximum, letting a frame take all the space it is
// offered.
var Fill = Bound{value: layout.Infinite, set: true}

// Get returns the length and whether it is set.
func (b Bound) Get() (layout.Dimension, bool) { return b.value, b.set }

func (b Bound) or(d layout.Dimension) layout.Dimension {
	if b.set {
		return b.value
	}
	return d
}

// FlexFrame bounds its child between a minimum and maximum size on each axis
// and provides an ideal size for compact offers.
//
// An exact offer is clamped to the bounds before it is passed on. A compact
// offer becomes the ideal length when one is set, and an unbounded offer
// becomes a finite maximum when one is set. The frame then resolves to the
// offer clamped between the bounds, where an unset bound stands for the
// child's size; an axis without bounds takes the child's size. The minimum
// wins when it exceeds the maximum.
type FlexFrame struct {
	View
	MinWidth, IdealWidth, MaxWidth    Bound
	MinHeight, IdealHeight, MaxHeight Bound
	// Alignment places the child when it is smaller than the frame.
	Alignment layout.Alignment
}

// Flex returns a centred flexible frame around v with no bounds set.
func Flex(v View) FlexFrame {
	return FlexFrame{View: v, Alignment: layout.AlignCenter}
}

// flexAxis holds the bounds of one axis.
type flexAxis struct {
	min, ideal, max Bound
}

func (a flexAxis) offer(p layout.ProposedDimension) layout.ProposedDimension {
	switch {
	case p.IsExact():
		v, _ := p.Value()
		if hi, ok := a.max.Get(); ok {
			v = v.Min(hi)
		}
		if lo, ok := a.min.Get(); ok {
			v = v.Max(lo)
		}
		return layout.Exact(v)
	case p.IsCompact():
		if ideal, ok := a.ideal.Get(); ok {
			return layout.Exact(ideal)
		}
		return p
	default:
		if hi, ok := a.max.Get(); ok && !hi.IsInfinite() {
			return layout.Exact(hi)
		}
		return p
	}
}

func (a flexAxis) resolve(p layout.ProposedDimension, child layout.Dimension) layout.Dimension {
	if !a.min.set && !a.max.set {
		return child
	}
	lower, upper := a.min.or(child), a.max.or(child)
	var offered layout.Dimension
	switch {
	case p.IsExact():
		offered, _ = p.Value()
	case p.IsCompact():
		offered = a.ideal.or(child)
	default:
		offered = layout.Infinite
	}
	return offered.Max(lower).Min(upper).Max(lower)
}

func (f FlexFrame) axes() (w, h flexAxis) {
	return flexAxis{f.MinWidth, f.IdealWidth, f.MaxWidth}, flexAxis{f.MinHeight, f.IdealHeight, f.MaxHeight}
}

func (f FlexFrame) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	w, h := f.axes()
	child := f.View.Layout(layout.Propose(w.offer(offer.Width), h.offer(offer.Height)), env)
	size := layout.Dims(
		w.resolve(offer.Width, child.ResolvedSize.Width),
		h.resolve(offer.Height, child.ResolvedSize.Height),
	)
	return layout.Resolved[any](size, child)
}

func (f FlexFrame) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	child := layout.Sublayout[layout.ResolvedLayout[any]](l)
	return f.View.RenderTree(child, place(origin, f.Alignment, l.ResolvedSize, child.ResolvedSize), env)
}

// FixedFrame offers its child an exact length on each set axis and resolves
// to that length whatever the child takes.
type FixedFrame struct {
	View
	Width, Height Bound
	Alignment     layout.Alignment
}

// Framed returns a centred fixed frame of w by h around v.
func Framed(w, h uint32, v View) FixedFrame {
	return FixedFrame{View: v, Width: Len(w), Height: Len(h), Alignment: layout.AlignCenter}
}

func (f FixedFrame) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	axis := func(b Bound, p layout.ProposedDimension) layout.ProposedDimension {
		if v, ok := b.Get(); ok {
			return layout.Exact(v)
		}
		return p
	}
	child := f.View.Layout(layout.Propose(axis(f.Width, offer.Width), axis(f.Height, offer.Height)), env)
	size := layout.Dims(f.Width.or(child.ResolvedSize.Width), f.Height.or(child.ResolvedSize.Height))
	return layout.Resolved[any](size, child)
}

func (f FixedFrame) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	child := layout.Sublayout[layout.ResolvedLayout[any]](l)
	return f.View.RenderTree(child, place(origin, f.Alignment, l.ResolvedSize, child.ResolvedSize), env)
}

// FixedSize offers its child a compact proposal on the chosen axes, so the
// child takes its ideal size there regardless of the space available.
type FixedSize struct {
	View
	Horizontal, Vertical bool
}

func (f FixedSize) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	if f.Horizontal {
		offer.Width = layout.Compact()
	}
	if f.Vertical {
		offer.Height = layout.Compact()
	}
	return f.View.Layout(offer, env)
}

func (f FixedSize) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	return f.View.RenderTree(l, origin, env)
}

// ContentMode selects how AspectRatio resolves an offer of a different
// shape.
type ContentMode uint8

const (
	// ContentFit takes the largest size with the ratio inside the offer.
	ContentFit ContentMode = iota
	// ContentFill takes the smallest size with the ratio covering the offer.
	ContentFill
)

// AspectRatio offers its child a size with a fixed width to height ratio.
// With Ideal set, the ratio is the child's own compact size. A ratio with a
// zero side leaves the offer unchanged.
type AspectRatio struct {
	View
	Ratio graphics.Size
	Ideal bool
	Mode  ContentMode
}

func (a AspectRatio) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	rw, rh := uint64(a.Ratio.Width), uint64(a.Ratio.Height)
	if a.Ideal {
		ideal := a.View.Layout(layout.CompactProposal(), env).ResolvedSize
		rw, rh = uint64(ideal.Width.Coordinate()), uint64(ideal.Height.Coordinate())
	}
	if rw == 0 || rh == 0 {
		return a.View.Layout(offer, env)
	}
	scale := func(v layout.Dimension, num, den uint64) layout.Dimension {
		r := uint64(v) * num / den
		if r >= uint64(layout.Infinite) {
			return layout.Infinite
		}
		return layout.Dimension(r)
	}

	w, wExact := offer.Width.Value()
	h, hExact := offer.Height.Value()
	switch {
	case wExact && hExact:
		aspectHeight, aspectWidth := scale(w, rh, rw), scale(h, rw, rh)
		fitsWidth := aspectHeight <= h
		if a.Mode == ContentFill {
			fitsWidth = aspectHeight >= h
		}
		if fitsWidth {
			return a.View.Layout(layout.ExactProposal(w, aspectHeight), env)
		}
		return a.View.Layout(layout.ExactProposal(aspectWidth, h), env)
	case wExact && offer.Height.IsInfinite(), hExact && offer.Width.IsInfinite():
		if a.Mode == ContentFill {
			return a.View.Layout(layout.InfiniteProposal(), env)
		}
		if wExact {
			return a.View.Layout(layout.ExactProposal(w, scale(w, rh, rw)), env)
		}
		return a.View.Layout(layout.ExactProposal(scale(h, rw, rh), h), env)
	case wExact && offer.Height.IsCompact():
		return a.View.Layout(layout.ExactProposal(w, scale(w, rh, rw)), env)
	case hExact && offer.Width.IsCompact():
		return a.View.Layout(layout.ExactProposal(scale(h, rw, rh), h), env)
	default:
		return a.View.Layout(offer, env)
	}
}

func (a AspectRatio) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	return a.View.RenderTree(l, origin, env)
}
