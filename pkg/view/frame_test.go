package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
	"github.com/go-drift/ripple/pkg/render"
	"github.com/go-drift/ripple/pkg/view"
)

func TestFlexFrameInfiniteMaxFillsOffer(t *testing.T) {
	frame := view.Flex(view.TextOf("aa\nbb\ncc"))
	frame.MaxWidth, frame.MaxHeight = view.Fill, view.Fill

	assert.Equal(t, "\n  aa\n  bb\n  cc\n", snapshot(frame, 6, 5))
}

func TestFlexFrameOversizedMinimum(t *testing.T) {
	frame := view.Flex(view.TextOf("aa\nbb\ncc"))
	frame.MinWidth, frame.MaxWidth = view.Len(8), view.Fill
	frame.MinHeight, frame.MaxHeight = view.Len(8), view.Fill

	assert.Equal(t, layout.Dims(8, 8), view.LayoutIn(frame, graphics.Sz(6, 5), env).ResolvedSize)
	assert.Equal(t, "\n\n   aa\n   bb\n   cc", snapshot(frame, 6, 5))
}

func TestFlexFrameAlignment(t *testing.T) {
	tests := []struct {
		alignment layout.Alignment
		want      string
	}{
		{layout.AlignTopLeading, "aa\nbb\ncc\n\n"},
		{layout.AlignTopTrailing, "    aa\n    bb\n    cc\n\n"},
		{layout.AlignLeading, "\naa\nbb\ncc\n"},
		{layout.AlignBottom, "\n\n  aa\n  bb\n  cc"},
	}
	for _, tt := range tests {
		t.Run(tt.alignment.String(), func(t *testing.T) {
			frame := view.Flex(view.TextOf("aa\nbb\ncc"))
			frame.MinWidth, frame.MinHeight = view.Len(6), view.Len(5)
			frame.Alignment = tt.alignment
			assert.Equal(t, tt.want, snapshot(frame, 6, 5))
		})
	}
}

func TestFlexFrameSizes(t *testing.T) {
	tests := []struct {
		name  string
		frame view.FlexFrame
		offer layout.ProposedDimensions
		want  layout.Dimensions
	}{
		{
			name:  "compact uses ideal",
			frame: view.FlexFrame{View: view.Rectangle{}, IdealWidth: view.Len(8), IdealHeight: view.Len(4), MinWidth: view.Len(2), MinHeight: view.Len(2)},
			offer: layout.CompactProposal(),
			want:  layout.Dims(8, 4),
		},
		{
			name:  "minimum beats ideal",
			frame: view.FlexFrame{View: view.Rectangle{}, MinHeight: view.Len(10), IdealHeight: view.Len(5)},
			offer: layout.Propose(layout.Exact(3), layout.Compact()),
			want:  layout.Dims(3, 10),
		},
		{
			name:  "minimum beats maximum",
			frame: view.FlexFrame{View: view.Rectangle{}, MinHeight: view.Len(4), IdealHeight: view.Len(6), MaxHeight: view.Len(3)},
			offer: layout.Propose(layout.Exact(3), layout.Unbounded()),
			want:  layout.Dims(3, 4),
		},
		{
			name:  "minimum grows small offer",
			frame: view.FlexFrame{View: view.TextOf("123456"), MinWidth: view.Len(2), MinHeight: view.Len(2)},
			offer: layout.ExactProposal(1, 1),
			want:  layout.Dims(2, 2),
		},
		{
			name:  "child narrower than offer",
			frame: view.FlexFrame{View: view.TextOf("123456"), MinWidth: view.Len(2), MinHeight: view.Len(2)},
			offer: layout.ExactProposal(100, 1),
			want:  layout.Dims(6, 2),
		},
		{
			name:  "maximum caps offer",
			frame: view.FlexFrame{View: view.TextOf("123456"), MaxWidth: view.Len(2), MaxHeight: view.Len(2)},
			offer: layout.ExactProposal(100, 1),
			want:  layout.Dims(2, 1),
		},
		{
			name:  "unbounded without maximum",
			frame: view.FlexFrame{View: view.Rectangle{}, MinWidth: view.Len(2), MinHeight: view.Len(2)},
			offer: layout.InfiniteProposal(),
			want:  layout.Dims(layout.Infinite, layout.Infinite),
		},
		{
			name:  "no bounds takes child",
			frame: view.FlexFrame{View: view.Rectangle{}, IdealWidth: view.Len(8)},
			offer: layout.Propose(layout.Unbounded(), layout.Compact()),
			want:  layout.Dims(layout.Infinite, 1),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.frame.Layout(tt.offer, env).ResolvedSize)
		})
	}
}

func TestFixedFrame(t *testing.T) {
	frame := view.Framed(4, 3, view.TextOf("x"))
	assert.Equal(t, layout.Dims(4, 3), view.LayoutIn(frame, graphics.Sz(10, 10), env).ResolvedSize)
	assert.Equal(t, "\n x\n", snapshot(frame, 10, 10)[:4])

	widthOnly := view.FixedFrame{View: view.Rectangle{}, Width: view.Len(3)}
	assert.Equal(t, layout.Dims(3, 7), view.LayoutIn(widthOnly, graphics.Sz(10, 7), env).ResolvedSize)
}

func TestFixedSizeUsesIdeal(t *testing.T) {
	fixed := view.FixedSize{View: view.TextOf("abcdef"), Horizontal: true}
	assert.Equal(t, layout.Dims(6, 1), view.LayoutIn(fixed, graphics.Sz(2, 2), env).ResolvedSize)

	loose := view.FixedSize{View: view.TextOf("abcdef"), Vertical: true}
	assert.Equal(t, layout.Dims(2, 1), view.LayoutIn(loose, graphics.Sz(2, 2), env).ResolvedSize)
}

func TestAspectRatioIdealFit(t *testing.T) {
	content := view.AspectRatio{
		View:  view.FlexFrame{View: view.Rectangle{}, IdealWidth: view.Len(5), IdealHeight: view.Len(10)},
		Ideal: true,
		Mode:  view.ContentFit,
	}
	tests := []struct {
		name  string
		offer layout.ProposedDimensions
		want  layout.Dimensions
	}{
		{"square", layout.ExactProposal(100, 100), layout.Dims(50, 100)},
		{"tall", layout.ExactProposal(100, 1000), layout.Dims(100, 200)},
		{"infinite width", layout.Propose(layout.Unbounded(), layout.Exact(100)), layout.Dims(50, 100)},
		{"compact width", layout.Propose(layout.Compact(), layout.Exact(100)), layout.Dims(50, 100)},
		{"infinite height", layout.Propose(layout.Exact(100), layout.Unbounded()), layout.Dims(100, 200)},
		{"compact", layout.CompactProposal(), layout.Dims(5, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, content.Layout(tt.offer, env).ResolvedSize)
		})
	}
}

func TestAspectRatioFixedFill(t *testing.T) {
	content := view.AspectRatio{View: view.Rectangle{}, Ratio: graphics.Sz(2, 1), Mode: view.ContentFill}

	assert.Equal(t, layout.Dims(200, 100), content.Layout(layout.ExactProposal(100, 100), env).ResolvedSize)
	assert.Equal(t, layout.Dims(100, 50), content.Layout(layout.ExactProposal(100, 10), env).ResolvedSize)
	assert.Equal(t, layout.Dims(layout.Infinite, layout.Infinite),
		content.Layout(layout.Propose(layout.Exact(100), layout.Unbounded()), env).ResolvedSize)

	zero := view.AspectRatio{View: view.Rectangle{}}
	assert.Equal(t, layout.Dims(7, 3), zero.Layout(layout.ExactProposal(7, 3), env).ResolvedSize)
}

func TestPaddingInsetsChild(t *testing.T) {
	padded := view.Padded(1, view.Rectangle{})
	assert.Equal(t, "\n ##\n", snapshot(padded, 4, 3))

	leading := view.Padding{View: view.TextOf("ab"), Edges: view.EdgeLeading | view.EdgeTop, Amount: 2}
	assert.Equal(t, layout.Dims(4, 3), leading.Layout(layout.CompactProposal(), env).ResolvedSize)
	assert.Equal(t, "\n\n  ab", snapshot(leading, 6, 3))
}

func TestParseEdges(t *testing.T) {
	e, err := view.ParseEdges("top, horizontal")
	assert.NoError(t, err)
	assert.Equal(t, view.EdgeTop|view.EdgesHorizontal, e)

	_, err = view.ParseEdges("middle")
	assert.Error(t, err)
}

func TestBackgroundAndOverlay(t *testing.T) {
	text := view.TextOf("hi")
	assert.Equal(t, "hi", snapshot(view.Behind(view.Rectangle{}, text), 5, 1))
	assert.Equal(t, "##", snapshot(view.Over(view.Rectangle{}, text), 5, 1))

	l := view.LayoutIn(view.Behind(view.Rectangle{}, text), graphics.Sz(5, 3), env)
	assert.Equal(t, layout.Dims(2, 1), l.ResolvedSize)
}

func TestClippedCutsOffset(t *testing.T) {
	clipped := view.Clipped{View: view.Offset{View: view.Framed(4, 1, view.Rectangle{}), Offset: graphics.Pt(2, 0)}}
	assert.Equal(t, "  ##", snapshot(clipped, 6, 1))
}

func TestHiddenKeepsSpace(t *testing.T) {
	row := view.HStackOf(view.Hidden{View: view.TextOf("ab")}, view.TextOf("c"))
	assert.Equal(t, "  c", snapshot(row, 3, 1))
}

func TestForegroundColorShadesSubtree(t *testing.T) {
	red := view.ForegroundColor{View: view.Rectangle{}, Color: graphics.ColorRed}
	tree := view.Build(red, graphics.Sz(2, 1), env)

	shade, ok := tree.(*render.Shade)
	if assert.True(t, ok, "tree is %T", tree) {
		assert.Equal(t, graphics.ColorRed, shade.Color)
	}
}

func TestScaleEffectAnchorsTransform(t *testing.T) {
	scaled := view.Scaled(graphics.ScaleOne*2, view.Framed(4, 2, view.Rectangle{}))
	tree := scaled.RenderTree(view.LayoutIn(scaled, graphics.Sz(4, 2), env), graphics.Pt(1, 1), env)

	n, ok := tree.(*render.Transform)
	if !assert.True(t, ok, "tree is %T", tree) {
		return
	}
	assert.Equal(t, graphics.NewTransform(graphics.Pt(3, 2), graphics.ScaleOne*2), n.Transform)
	rect, ok := n.Subtree.(*render.Rect)
	if assert.True(t, ok, "subtree is %T", n.Subtree) {
		assert.Equal(t, graphics.Pt(-2, -1), rect.Shape.Origin)
	}
}

func TestGeometryGroupOffsetsSubtree(t *testing.T) {
	group := view.GeometryGroup{View: view.Rectangle{}}
	tree := group.RenderTree(view.LayoutIn(group, graphics.Sz(2, 2), env), graphics.Pt(3, 4), env)

	n, ok := tree.(*render.Offset)
	if assert.True(t, ok, "tree is %T", tree) {
		assert.Equal(t, graphics.Pt(3, 4), n.Offset)
		assert.Equal(t, graphics.Point{}, n.Subtree.(*render.Rect).Shape.Origin)
	}
}
