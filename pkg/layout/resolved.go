package layout

import (
	"github.com/go-drift/ripple/pkg/errors"
)

// ResolvedLayout is the result of laying out a view: the size it resolved to
// and whatever the view recorded about its children, typically their own
// resolved layouts. Positions are not stored; they are computed when the render
// tree is built.
type ResolvedLayout[S any] struct {
	ResolvedSize Dimensions
	Sublayouts   S
}

// Resolved builds a resolved layout.
func Resolved[S any](size Dimensions, sublayouts S) ResolvedLayout[S] {
	return ResolvedLayout[S]{ResolvedSize: size, Sublayouts: sublayouts}
}

// Leaf builds the layout of a view with no children.
func Leaf(size Dimensions) ResolvedLayout[any] {
	return ResolvedLayout[any]{ResolvedSize: size, Sublayouts: struct{}{}}
}

// Erase converts a typed layout into the form passed across view boundaries.
func (l ResolvedLayout[S]) Erase() ResolvedLayout[any] {
	return ResolvedLayout[any]{ResolvedSize: l.ResolvedSize, Sublayouts: l.Sublayouts}
}

// Sublayout recovers the typed payload of an erased layout. A payload of a
// different shape means the layout was produced by a different view than the
// one rendering it; that is a programming fault and panics with a
// *errors.MismatchError.
func Sublayout[S any](l ResolvedLayout[any]) S {
	s, ok := l.Sublayouts.(S)
	if !ok {
		var want S
		panic(errors.Mismatch("layout.Sublayout", want, l.Sublayouts))
	}
	return s
}

// Typed recovers a typed layout from its erased form. See Sublayout.
func Typed[S any](l ResolvedLayout[any]) ResolvedLayout[S] {
	return ResolvedLayout[S]{ResolvedSize: l.ResolvedSize, Sublayouts: Sublayout[S](l)}
}
