package animation

import "github.com/go-drift/ripple/pkg/graphics"

// Tween interpolates between Begin and End by a domain's factor.
//
// Tweens describe motion that is not a difference between two render trees,
// such as the offset of an entering subtree.
type Tween[T graphics.Interpolator[T]] struct {
	Begin T
	End   T
}

// NewTween returns a tween from begin to end.
func NewTween[T graphics.Interpolator[T]](begin, end T) Tween[T] {
	return Tween[T]{Begin: begin, End: end}
}

// At returns the value at factor.
func (tw Tween[T]) At(factor uint8) T {
	return tw.Begin.Interpolate(tw.End, factor)
}

// In returns the value for the domain's factor.
func (tw Tween[T]) In(d Domain) T {
	return tw.At(d.Factor)
}

// Reversed returns the tween running from End to Begin.
func (tw Tween[T]) Reversed() Tween[T] {
	return Tween[T]{Begin: tw.End, End: tw.Begin}
}
