package layout

import (
	"testing"

	"github.com/go-drift/ripple/pkg/graphics"
)

func TestDimensionSaturates(t *testing.T) {
	if got := Dimension(3).Sub(5); got != 0 {
		t.Errorf("3 - 5 = %v, want 0", got)
	}
	if got := Infinite.Sub(5); got != Infinite {
		t.Errorf("∞ - 5 = %v, want ∞", got)
	}
	if got := Infinite.Add(1); got != Infinite {
		t.Errorf("∞ + 1 = %v, want ∞", got)
	}
	if got := Dimension(Infinite - 1).Add(10); got != Infinite {
		t.Errorf("overflowing add = %v, want ∞", got)
	}
	if got := Dimension(7).Div(0); got != 0 {
		t.Errorf("7 / 0 = %v, want 0", got)
	}
}

func TestResolveMostFlexible(t *testing.T) {
	tests := []struct {
		name     string
		offer    ProposedDimension
		min, ide Dimension
		want     Dimension
	}{
		{"exact above minimum", Exact(10), 2, 1, 10},
		{"exact below minimum", Exact(1), 2, 1, 2},
		{"compact uses ideal", Compact(), 0, 1, 1},
		{"infinite stays infinite", Unbounded(), 0, 1, Infinite},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.offer.ResolveMostFlexible(tt.min, tt.ide); got != tt.want {
				t.Errorf("ResolveMostFlexible = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProposalOrdering(t *testing.T) {
	ordered := []ProposedDimension{Exact(0), Exact(5), Compact(), Unbounded()}
	for i := 0; i < len(ordered)-1; i++ {
		if ordered[i].Compare(ordered[i+1]) != -1 {
			t.Errorf("%v should order before %v", ordered[i], ordered[i+1])
		}
		if ordered[i+1].Compare(ordered[i]) != 1 {
			t.Errorf("%v should order after %v", ordered[i+1], ordered[i])
		}
	}
	if Compact().Compare(Compact()) != 0 {
		t.Error("compact should equal compact")
	}
}

func TestProposalArithmeticOnlyTouchesExact(t *testing.T) {
	if got := Exact(10).Sub(4); got != Exact(6) {
		t.Errorf("Exact(10) - 4 = %v", got)
	}
	if got := Exact(2).Sub(4); got != Exact(0) {
		t.Errorf("Exact(2) - 4 = %v", got)
	}
	if got := Compact().Add(4); got != Compact() {
		t.Errorf("Compact + 4 = %v", got)
	}
	if got := Unbounded().Mul(2); got != Unbounded() {
		t.Errorf("Infinite * 2 = %v", got)
	}
}

func TestIntersectingProposal(t *testing.T) {
	size := Dims(12, 4)
	got := size.IntersectingProposal(Propose(Exact(8), Compact()))
	if got != Dims(8, 4) {
		t.Errorf("IntersectingProposal = %v, want 8x4", got)
	}
	if !ExactProposal(8, 4).Contains(Dims(8, 4)) {
		t.Error("offer should contain an equal size")
	}
	if ExactProposal(8, 4).Contains(Dims(9, 1)) {
		t.Error("offer should not contain a wider size")
	}
	if !InfiniteProposal().Contains(Dims(Infinite, Infinite)) {
		t.Error("unbounded offer contains everything")
	}
}

func TestDimensionsSizeClampsInfinity(t *testing.T) {
	got := Dims(Infinite, 3).Size()
	if got != graphics.Sz(graphics.MaxCoordinate, 3) {
		t.Errorf("Size = %v", got)
	}
}

func TestDimensionInterpolateSnapsInfinity(t *testing.T) {
	if got := Dimension(10).Interpolate(Infinite, 100); got != 10 {
		t.Errorf("early snap = %v, want 10", got)
	}
	if got := Dimension(10).Interpolate(Infinite, 200); got != Infinite {
		t.Errorf("late snap = %v, want ∞", got)
	}
	if got := Dimension(10).Interpolate(20, 255); got != 20 {
		t.Errorf("finite end = %v, want 20", got)
	}
}
