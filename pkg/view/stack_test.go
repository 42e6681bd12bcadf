package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
	"github.com/go-drift/ripple/pkg/view"
)

func TestVStackOverflowsForLowPriorityMinimum(t *testing.T) {
	stack := view.VStackOf(
		view.TextOf("hello"),
		view.Prioritized{View: view.FixedFrame{View: view.Rectangle{}, Height: view.Len(2)}, Level: -1},
		view.Rectangle{},
	)
	l := view.LayoutIn(stack, graphics.Sz(10, 10), env)

	assert.Equal(t, layout.Dims(10, 10), l.ResolvedSize)
	assert.Equal(t, []layout.Dimensions{
		layout.Dims(5, 1),
		layout.Dims(10, 2),
		layout.Dims(10, 9),
	}, childSizes(l))
}

func TestHStackOverflowsForLowPriorityMinimum(t *testing.T) {
	stack := view.HStackOf(
		view.TextOf("hello"),
		view.Prioritized{View: view.FixedFrame{View: view.Rectangle{}, Width: view.Len(2)}, Level: -1},
		view.Rectangle{},
	)
	l := view.LayoutIn(stack, graphics.Sz(10, 10), env)

	assert.Equal(t, []layout.Dimensions{
		layout.Dims(5, 1),
		layout.Dims(2, 10),
		layout.Dims(5, 10),
	}, childSizes(l))
}

func TestVStackInOrderPolicy(t *testing.T) {
	stack := view.VStack{
		Children: []view.View{
			view.TextOf("hello"),
			view.Prioritized{View: view.FixedFrame{View: view.Rectangle{}, Height: view.Len(2)}, Level: -1},
			view.Rectangle{},
		},
		Policy: view.InOrder,
	}
	l := view.LayoutIn(stack, graphics.Sz(10, 10), env)

	assert.Equal(t, []layout.Dimensions{
		layout.Dims(5, 1),
		layout.Dims(10, 2),
		layout.Dims(10, 7),
	}, childSizes(l))
}

func TestHStackFillerTakesLeftoverWidth(t *testing.T) {
	pair := view.HStackOf(
		view.FixedSize{View: view.TextOf("abcdefgh"), Horizontal: true},
		view.Rectangle{},
	)
	l := view.LayoutIn(pair, graphics.Sz(10, 6), env)

	require.Equal(t, layout.Dims(10, 6), l.ResolvedSize)
	assert.Equal(t, []layout.Dimensions{layout.Dims(8, 1), layout.Dims(2, 6)}, childSizes(l))

	want := "abcdefgh##\n" +
		"        ##\n" +
		"        ##\n" +
		"        ##\n" +
		"        ##\n" +
		"        ##"
	assert.Equal(t, want, snapshot(pair, 10, 6))
}

func TestSpacersShareStack(t *testing.T) {
	l := view.LayoutIn(view.VStackOf(view.Spacer{}, view.Spacer{}), graphics.Sz(100, 100), env)
	assert.Equal(t, layout.Dims(0, 100), l.ResolvedSize)
	assert.Equal(t, []layout.Dimensions{layout.Dims(0, 50), layout.Dims(0, 50)}, childSizes(l))
}

func TestStackCompactOfferSumsChildren(t *testing.T) {
	stack := view.HStack{Children: []view.View{view.TextOf("ab"), view.TextOf("c\nd")}, Spacing: 2}
	l := stack.Layout(layout.CompactProposal(), env)
	assert.Equal(t, layout.Dims(5, 2), l.ResolvedSize)
}

func TestStackSpacingSkipsEmptyChildren(t *testing.T) {
	stack := view.VStack{
		Children: []view.View{view.TextOf("a"), view.EmptyView{}, view.TextOf("b")},
		Spacing:  1,
	}
	l := view.LayoutIn(stack, graphics.Sz(5, 3), env)
	assert.Equal(t, layout.Dims(1, 3), l.ResolvedSize)
	assert.Equal(t, "a\n\nb", snapshot(stack, 5, 3))
}

func TestStackCrossAlignment(t *testing.T) {
	stack := view.VStack{
		Children:  []view.View{view.TextOf("abcd"), view.TextOf("ef")},
		Alignment: layout.Trailing,
	}
	assert.Equal(t, "abcd\n  ef", snapshot(stack, 4, 2))
}

func TestZStackUnionsAndAligns(t *testing.T) {
	stack := view.ZStackOf(view.Framed(4, 2, view.Rectangle{}), view.TextOf("x"))
	l := view.LayoutIn(stack, graphics.Sz(6, 4), env)

	assert.Equal(t, layout.Dims(4, 2), l.ResolvedSize)
	assert.Equal(t, "#x##\n####\n\n", snapshot(stack, 6, 4))
}

func TestZStackClampsToOffer(t *testing.T) {
	stack := view.ZStackOf(view.Framed(9, 9, view.Rectangle{}))
	l := view.LayoutIn(stack, graphics.Sz(6, 4), env)
	assert.Equal(t, layout.Dims(6, 4), l.ResolvedSize)
}

func TestParseAllocationPolicy(t *testing.T) {
	for _, p := range []view.AllocationPolicy{view.PriorityThenFlexibility, view.InOrder} {
		got, err := view.ParseAllocationPolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := view.ParseAllocationPolicy("random")
	assert.Error(t, err)
}
