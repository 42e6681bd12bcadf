package terminal_test

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
	"github.com/go-drift/ripple/pkg/target/terminal"
	"github.com/go-drift/ripple/pkg/target/textbuf"
	"github.com/go-drift/ripple/pkg/view"
)

func newDisplay(t *testing.T, w, h int) (*terminal.Display, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return terminal.New(screen), screen
}

func TestShowCopiesFrame(t *testing.T) {
	d, screen := newDisplay(t, 6, 2)
	ui := view.HStackOf(view.TextOf("ab"), view.ForegroundColor{View: view.Rectangle{}, Color: graphics.ColorRed})
	d.Canvas().Clear(graphics.ColorBlack)
	view.Build(ui, d.Size(), layout.NewEnvironment(0)).Render(d.Canvas(), graphics.ColorWhite, graphics.Point{})
	d.Show()

	tests := []struct {
		x, y int
		want rune
	}{
		{0, 0, 'a'},
		{1, 0, 'b'},
		{2, 0, textbuf.DefaultInk},
		{5, 1, textbuf.DefaultInk},
		{0, 1, ' '},
	}
	for _, tt := range tests {
		if got, _, _, _ := screen.GetContent(tt.x, tt.y); got != tt.want {
			t.Errorf("cell (%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want)
		}
	}
	_, _, style, _ := screen.GetContent(3, 0)
	if fg, _, _ := style.Decompose(); fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("filler foreground = %v, want red", fg)
	}
}

func TestResize(t *testing.T) {
	d, screen := newDisplay(t, 4, 4)
	if d.Resize() {
		t.Error("Resize reported a change without one")
	}
	screen.SetSize(8, 3)
	if !d.Resize() {
		t.Error("Resize missed a change")
	}
	if got := d.Size(); got != graphics.Sz(8, 3) {
		t.Errorf("Size() = %v, want 8x3", got)
	}
}
