// Package layout implements size negotiation: the dimension and proposal
// model, resolved layouts, alignment and the ambient environment views read
// while they lay out and build render trees.
package layout

import (
	"fmt"
	"math"

	"github.com/go-drift/ripple/pkg/graphics"
)

// Dimension is a resolved length. The largest value represents an infinite
// length which absorbs arithmetic.
type Dimension uint32

// Infinite is the infinite dimension.
const Infinite Dimension = math.MaxUint32

// IsInfinite reports whether d is the infinite dimension.
func (d Dimension) IsInfinite() bool { return d == Infinite }

// Add adds two dimensions, saturating at Infinite.
func (d Dimension) Add(o Dimension) Dimension {
	if d.IsInfinite() || o.IsInfinite() {
		return Infinite
	}
	sum := uint64(d) + uint64(o)
	if sum >= uint64(Infinite) {
		return Infinite
	}
	return Dimension(sum)
}

// Sub subtracts o, saturating at zero. Infinite minus anything is Infinite.
func (d Dimension) Sub(o Dimension) Dimension {
	if d.IsInfinite() {
		return Infinite
	}
	if o >= d {
		return 0
	}
	return d - o
}

// Mul multiplies by a scalar, saturating at Infinite.
func (d Dimension) Mul(n uint32) Dimension {
	if d.IsInfinite() && n != 0 {
		return Infinite
	}
	p := uint64(d) * uint64(n)
	if p >= uint64(Infinite) {
		return Infinite
	}
	return Dimension(p)
}

// Div divides by a scalar. Division by zero yields zero.
func (d Dimension) Div(n uint32) Dimension {
	if n == 0 {
		return 0
	}
	if d.IsInfinite() {
		return Infinite
	}
	return d / Dimension(n)
}

// Min returns the smaller dimension.
func (d Dimension) Min(o Dimension) Dimension { return min(d, o) }

// Max returns the larger dimension.
func (d Dimension) Max(o Dimension) Dimension { return max(d, o) }

// Coordinate converts the dimension to a concrete extent, clamping infinity.
func (d Dimension) Coordinate() uint32 {
	return min(uint32(d), graphics.MaxCoordinate)
}

// Interpolate blends two finite dimensions. An infinite end point snaps.
func (d Dimension) Interpolate(to Dimension, amount uint8) Dimension {
	if d.IsInfinite() || to.IsInfinite() {
		return graphics.InterpolateDiscrete(d, to, amount)
	}
	return Dimension(graphics.InterpolateU32(uint32(d), uint32(to), amount))
}

func (d Dimension) String() string {
	if d.IsInfinite() {
		return "∞"
	}
	return fmt.Sprintf("%d", uint32(d))
}

// proposalKind orders proposals from most to least constrained.
type proposalKind uint8

const (
	proposalExact proposalKind = iota
	proposalCompact
	proposalInfinite
)

// ProposedDimension is an offer made by a parent along one axis: an exact
// length, a request for the child's ideal (compact) length, or unbounded
// space.
type ProposedDimension struct {
	kind  proposalKind
	value Dimension
}

// Exact proposes a specific length.
func Exact(v Dimension) ProposedDimension {
	return ProposedDimension{kind: proposalExact, value: v}
}

// Compact asks for the child's ideal length.
func Compact() ProposedDimension {
	return ProposedDimension{kind: proposalCompact}
}

// Unbounded offers unlimited length.
func Unbounded() ProposedDimension {
	return ProposedDimension{kind: proposalInfinite}
}

// IsExact reports whether the proposal is an exact length.
func (p ProposedDimension) IsExact() bool { return p.kind == proposalExact }

// IsCompact reports whether the proposal asks for the ideal length.
func (p ProposedDimension) IsCompact() bool { return p.kind == proposalCompact }

// IsInfinite reports whether the proposal is unbounded.
func (p ProposedDimension) IsInfinite() bool { return p.kind == proposalInfinite }

// Value returns the exact length and true, or zero and false for the other
// proposal kinds.
func (p ProposedDimension) Value() (Dimension, bool) {
	return p.value, p.kind == proposalExact
}

// Compare orders proposals Exact < Compact < Infinite, with exact proposals
// ordered by length. It returns -1, 0 or +1.
func (p ProposedDimension) Compare(o ProposedDimension) int {
	switch {
	case p.kind < o.kind:
		return -1
	case p.kind > o.kind:
		return 1
	case p.kind != proposalExact || p.value == o.value:
		return 0
	case p.value < o.value:
		return -1
	default:
		return 1
	}
}

// ResolveMostFlexible resolves the proposal for a view that takes as much
// space as it is offered: an exact offer resolves to at least minimum, a
// compact offer to ideal and an unbounded offer to Infinite.
func (p ProposedDimension) ResolveMostFlexible(minimum, ideal Dimension) Dimension {
	switch p.kind {
	case proposalExact:
		return max(p.value, minimum)
	case proposalCompact:
		return ideal
	default:
		return Infinite
	}
}

// Add grows an exact proposal. Other kinds are returned unchanged.
func (p ProposedDimension) Add(d Dimension) ProposedDimension {
	if p.kind != proposalExact {
		return p
	}
	return Exact(p.value.Add(d))
}

// Sub shrinks an exact proposal, saturating at zero.
func (p ProposedDimension) Sub(d Dimension) ProposedDimension {
	if p.kind != proposalExact {
		return p
	}
	return Exact(p.value.Sub(d))
}

// Mul scales an exact proposal.
func (p ProposedDimension) Mul(n uint32) ProposedDimension {
	if p.kind != proposalExact {
		return p
	}
	return Exact(p.value.Mul(n))
}

// Div divides an exact proposal.
func (p ProposedDimension) Div(n uint32) ProposedDimension {
	if p.kind != proposalExact {
		return p
	}
	return Exact(p.value.Div(n))
}

func (p ProposedDimension) String() string {
	switch p.kind {
	case proposalExact:
		return fmt.Sprintf("Exact(%v)", p.value)
	case proposalCompact:
		return "Compact"
	default:
		return "Infinite"
	}
}

// Dimensions is a resolved two-dimensional size.
type Dimensions struct {
	Width, Height Dimension
}

// Dims is shorthand for Dimensions{Width: w, Height: h}.
func Dims(w, h Dimension) Dimensions {
	return Dimensions{Width: w, Height: h}
}

// DimensionsFromSize converts a concrete size.
func DimensionsFromSize(s graphics.Size) Dimensions {
	return Dimensions{Width: Dimension(s.Width), Height: Dimension(s.Height)}
}

// Size converts to a concrete size, clamping infinite axes.
func (d Dimensions) Size() graphics.Size {
	return graphics.Size{Width: d.Width.Coordinate(), Height: d.Height.Coordinate()}
}

// Area returns width times height, saturating at Infinite.
func (d Dimensions) Area() Dimension {
	return d.Width.Mul(uint32(d.Height))
}

// Union returns the per-axis maximum.
func (d Dimensions) Union(o Dimensions) Dimensions {
	return Dimensions{Width: max(d.Width, o.Width), Height: max(d.Height, o.Height)}
}

// Intersection returns the per-axis minimum.
func (d Dimensions) Intersection(o Dimensions) Dimensions {
	return Dimensions{Width: min(d.Width, o.Width), Height: min(d.Height, o.Height)}
}

// Add grows both axes.
func (d Dimensions) Add(o Dimensions) Dimensions {
	return Dimensions{Width: d.Width.Add(o.Width), Height: d.Height.Add(o.Height)}
}

// IntersectingProposal clamps each axis to the matching exact proposal.
// Compact and unbounded axes leave the size unchanged.
func (d Dimensions) IntersectingProposal(offer ProposedDimensions) Dimensions {
	clamp := func(v Dimension, p ProposedDimension) Dimension {
		if exact, ok := p.Value(); ok {
			return min(v, exact)
		}
		return v
	}
	return Dimensions{Width: clamp(d.Width, offer.Width), Height: clamp(d.Height, offer.Height)}
}

// Interpolate blends both axes.
func (d Dimensions) Interpolate(to Dimensions, amount uint8) Dimensions {
	return Dimensions{
		Width:  d.Width.Interpolate(to.Width, amount),
		Height: d.Height.Interpolate(to.Height, amount),
	}
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%vx%v", d.Width, d.Height)
}

// ProposedDimensions is a two-dimensional offer.
type ProposedDimensions struct {
	Width, Height ProposedDimension
}

// Propose is shorthand for ProposedDimensions{Width: w, Height: h}.
func Propose(w, h ProposedDimension) ProposedDimensions {
	return ProposedDimensions{Width: w, Height: h}
}

// ExactProposal offers exactly w by h.
func ExactProposal(w, h Dimension) ProposedDimensions {
	return ProposedDimensions{Width: Exact(w), Height: Exact(h)}
}

// CompactProposal asks for the ideal size on both axes.
func CompactProposal() ProposedDimensions {
	return ProposedDimensions{Width: Compact(), Height: Compact()}
}

// InfiniteProposal offers unbounded space on both axes.
func InfiniteProposal() ProposedDimensions {
	return ProposedDimensions{Width: Unbounded(), Height: Unbounded()}
}

// ProposalFromSize offers exactly the given concrete size.
func ProposalFromSize(s graphics.Size) ProposedDimensions {
	return ExactProposal(Dimension(s.Width), Dimension(s.Height))
}

// ProposalFromDimensions offers exactly the given dimensions.
func ProposalFromDimensions(d Dimensions) ProposedDimensions {
	return ExactProposal(d.Width, d.Height)
}

// ResolveMostFlexible resolves both axes with ProposedDimension.ResolveMostFlexible.
func (p ProposedDimensions) ResolveMostFlexible(minimum, ideal Dimension) Dimensions {
	return Dimensions{
		Width:  p.Width.ResolveMostFlexible(minimum, ideal),
		Height: p.Height.ResolveMostFlexible(minimum, ideal),
	}
}

// Contains reports whether a size fits within the exact axes of the offer.
func (p ProposedDimensions) Contains(d Dimensions) bool {
	fits := func(v Dimension, axis ProposedDimension) bool {
		exact, ok := axis.Value()
		return !ok || v <= exact
	}
	return fits(d.Width, p.Width) && fits(d.Height, p.Height)
}

// Inset shrinks exact axes by the given amounts.
func (p ProposedDimensions) Inset(width, height Dimension) ProposedDimensions {
	return ProposedDimensions{Width: p.Width.Sub(width), Height: p.Height.Sub(height)}
}

func (p ProposedDimensions) String() string {
	return fmt.Sprintf("%v x %v", p.Width, p.Height)
}
