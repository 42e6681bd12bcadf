package view_test

import (
	"testing"

	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/errors"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
	"github.com/go-drift/ripple/pkg/render"
	"github.com/go-drift/ripple/pkg/target/textbuf"
	"github.com/go-drift/ripple/pkg/view"
)

var env = layout.NewEnvironment(0)

// snapshot builds v for a width by height display and draws it with '#'
// as ink.
func snapshot(v view.View, width, height uint32) string {
	return drawTree(view.Build(v, graphics.Sz(width, height), env), width, height)
}

func newCanvas(width, height uint32) (*render.Canvas, *textbuf.Buffer) {
	canvas, buf := textbuf.NewCanvas(width, height)
	buf.Ink = '#'
	return canvas, buf
}

func drawTree(tree render.Renderable, width, height uint32) string {
	canvas, buf := newCanvas(width, height)
	tree.Render(canvas, graphics.ColorWhite, graphics.Point{})
	return buf.String()
}

// drawBlend draws the blend of two builds of a width by height display.
func drawBlend(source, target view.View, width, height uint32, factor uint8) string {
	size := graphics.Sz(width, height)
	src, tgt := view.Build(source, size, env), view.Build(target, size, env)
	canvas, buf := newCanvas(width, height)
	tgt.RenderAnimated(canvas, src, graphics.ColorWhite, graphics.Point{}, animation.NewDomain(factor, 0))
	return buf.String()
}

func childSizes(l layout.ResolvedLayout[any]) []layout.Dimensions {
	var sizes []layout.Dimensions
	for _, child := range layout.Sublayout[[]layout.ResolvedLayout[any]](l) {
		sizes = append(sizes, child.ResolvedSize)
	}
	return sizes
}

func expectMismatch(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Error("expected a mismatch panic")
			return
		}
		if !errors.IsMismatch(r) {
			t.Errorf("panic = %v, want mismatch", r)
		}
	}()
	fn()
}
