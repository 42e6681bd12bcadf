package render_test

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/render"
)

func sampleTree(x, y int32, w uint32, c uint32) render.Renderable {
	return render.NewOffset(graphics.Pt(x, y), render.NewGroup(
		render.NewRect(graphics.Pt(y, x), graphics.Sz(w, w/2)),
		render.NewCircle(graphics.Pt(x, x), w),
		render.NewShade(graphics.Color(c), render.NewCapsule(graphics.Pt(y, y), graphics.Sz(w/3, w))),
	))
}

func TestJoinProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)
	coord := gen.Int32Range(-1000, 1000)
	extent := gen.UInt32Range(0, 1000)

	properties.Property("join at 0 yields the source and at 255 the target", prop.ForAll(
		func(sx, sy, tx, ty int32, sw, tw, sc, tc uint32) bool {
			atZero := sampleTree(tx, ty, tw, tc)
			atZero.JoinFrom(sampleTree(sx, sy, sw, sc), at(0))
			atFull := sampleTree(tx, ty, tw, tc)
			atFull.JoinFrom(sampleTree(sx, sy, sw, sc), at(255))
			return reflect.DeepEqual(atZero, sampleTree(sx, sy, sw, sc)) &&
				reflect.DeepEqual(atFull, sampleTree(tx, ty, tw, tc))
		},
		coord, coord, coord, coord, extent, extent, gen.UInt32(), gen.UInt32(),
	))

	properties.TestingRun(t)
}
