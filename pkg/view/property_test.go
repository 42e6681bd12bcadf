package view_test

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
	"github.com/go-drift/ripple/pkg/view"
)

func TestLayoutProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	extent := gen.UInt32Range(0, 300)
	small := gen.UInt32Range(0, 60)

	properties.Property("padding adds twice its amount, never less than the offer", prop.ForAll(
		func(amount, w, h uint32) bool {
			padded := view.Padded(amount, view.Rectangle{})
			got := padded.Layout(layout.ExactProposal(layout.Dimension(w), layout.Dimension(h)), env).ResolvedSize
			return got == layout.Dims(layout.Dimension(max(w, 2*amount)), layout.Dimension(max(h, 2*amount)))
		},
		small, extent, extent,
	))

	properties.Property("flex frame clamps an exact offer between its bounds", prop.ForAll(
		func(lo, hi, offer uint32) bool {
			frame := view.FlexFrame{View: view.Rectangle{}, MinWidth: view.Len(lo), MaxWidth: view.Len(hi)}
			got := frame.Layout(layout.Propose(layout.Exact(layout.Dimension(offer)), layout.Exact(1)), env).ResolvedSize.Width
			return uint32(got) >= lo && uint32(got) <= max(lo, min(hi, offer))
		},
		extent, extent, extent,
	))

	properties.Property("building a view twice gives equal trees", prop.ForAll(
		func(text string, w, h, pad uint32) bool {
			build := func() any {
				v := view.VStackOf(
					view.Padded(pad, view.TextOf(text)),
					view.HStackOf(view.Circle{}, view.Spacer{}, view.Capsule{}),
					view.Flex(view.RoundedRectangle{Radius: 2}),
				)
				return view.Build(v, graphics.Sz(w, h), env)
			}
			return reflect.DeepEqual(build(), build())
		},
		gen.AlphaString(), extent, extent, small,
	))

	properties.TestingRun(t)
}
