// Package transition describes how a subtree enters or leaves the display
// when an optional view appears or disappears.
package transition

import (
	"fmt"

	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/graphics"
)

// Direction distinguishes a subtree appearing from one disappearing.
type Direction uint8

const (
	In Direction = iota
	Out
)

func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return fmt.Sprintf("Direction(%d)", d)
	}
}

// Transition computes the offset and opacity of a subtree that is entering
// (In) or leaving (Out) at a given animation factor. An entering subtree is
// at rest at factor 255; a leaving subtree is at rest at factor 0.
type Transition interface {
	Offset(dir Direction, factor uint8, bounds graphics.Size) graphics.Point
	Opacity(dir Direction, factor uint8) uint8
}

// Default is the transition used when a view does not specify one.
var Default Transition = Opacity{}

// Opacity fades the subtree without moving it.
type Opacity struct{}

func (Opacity) Offset(Direction, uint8, graphics.Size) graphics.Point {
	return graphics.Point{}
}

func (Opacity) Opacity(dir Direction, factor uint8) uint8 {
	if dir == In {
		return factor
	}
	return 255 - factor
}

// Edge is a side of the subtree's bounds.
type Edge uint8

const (
	Top Edge = iota
	Bottom
	Leading
	Trailing
)

func (e Edge) String() string {
	switch e {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Leading:
		return "leading"
	case Trailing:
		return "trailing"
	default:
		return fmt.Sprintf("Edge(%d)", e)
	}
}

// ParseEdge returns the edge with the given name.
func ParseEdge(name string) (Edge, error) {
	for e := Top; e <= Trailing; e++ {
		if e.String() == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("unknown edge %q", name)
}

// offset is the displacement that moves a subtree of the given bounds fully
// past the edge.
func (e Edge) offset(bounds graphics.Size) graphics.Point {
	w, h := bounds.Point().X, bounds.Point().Y
	switch e {
	case Top:
		return graphics.Pt(0, -h)
	case Bottom:
		return graphics.Pt(0, h)
	case Leading:
		return graphics.Pt(-w, 0)
	default:
		return graphics.Pt(w, 0)
	}
}

// Move enters from an edge and leaves through the same edge.
type Move struct {
	Edge Edge
}

func (m Move) Offset(dir Direction, factor uint8, bounds graphics.Size) graphics.Point {
	travel := animation.NewTween(m.Edge.offset(bounds), graphics.Point{})
	if dir == Out {
		travel = travel.Reversed()
	}
	return travel.At(factor)
}

func (Move) Opacity(Direction, uint8) uint8 { return 255 }

// Slide enters from an edge and leaves through the opposite edge.
type Slide struct {
	Edge Edge
}

func (s Slide) Offset(dir Direction, factor uint8, bounds graphics.Size) graphics.Point {
	edge := s.Edge.offset(bounds)
	if dir == In {
		return animation.NewTween(edge, graphics.Point{}).At(factor)
	}
	return animation.NewTween(graphics.Point{}, edge.Neg()).At(factor)
}

func (Slide) Opacity(Direction, uint8) uint8 { return 255 }

// Combined applies two transitions together: offsets add and opacities
// multiply.
type Combined struct {
	First, Second Transition
}

func (c Combined) Offset(dir Direction, factor uint8, bounds graphics.Size) graphics.Point {
	return c.First.Offset(dir, factor, bounds).Add(c.Second.Offset(dir, factor, bounds))
}

func (c Combined) Opacity(dir Direction, factor uint8) uint8 {
	return uint8(uint32(c.First.Opacity(dir, factor)) * uint32(c.Second.Opacity(dir, factor)) / 255)
}
