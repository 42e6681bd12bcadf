// Package terminal is a pixel sink for tcell screens. Frames are rasterized
// into a character buffer and flushed to the screen in one pass.
package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/ripple/pkg/errors"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/render"
	"github.com/go-drift/ripple/pkg/target/textbuf"
)

// Display draws render trees on a tcell screen.
type Display struct {
	screen tcell.Screen
	buf    *textbuf.Buffer
	canvas *render.Canvas
}

// Open initializes the terminal and returns a display covering it.
func Open() (*Display, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.New("terminal.Open", errors.KindTarget, err)
	}
	if err := screen.Init(); err != nil {
		return nil, errors.New("terminal.Open", errors.KindTarget, err)
	}
	return New(screen), nil
}

// New wraps an initialized screen.
func New(screen tcell.Screen) *Display {
	d := &Display{screen: screen}
	d.resize()
	return d
}

func (d *Display) resize() {
	w, h := d.screen.Size()
	d.buf = textbuf.New(uint32(max(w, 0)), uint32(max(h, 0)))
	d.canvas = render.NewCanvas(d.buf)
}

// Screen returns the wrapped screen.
func (d *Display) Screen() tcell.Screen { return d.screen }

// Canvas returns the render target of the current frame.
func (d *Display) Canvas() *render.Canvas { return d.canvas }

// Size returns the display size in cells.
func (d *Display) Size() graphics.Size { return d.buf.Size() }

// Resize adopts the screen's current size and reports whether it changed.
func (d *Display) Resize() bool {
	w, h := d.screen.Size()
	if graphics.Sz(uint32(max(w, 0)), uint32(max(h, 0))) == d.buf.Size() {
		return false
	}
	d.resize()
	return true
}

// Show copies the frame to the screen.
func (d *Display) Show() {
	bg := toTcell(d.buf.Background())
	size := d.buf.Size()
	for y := range int32(size.Height) {
		for x := range int32(size.Width) {
			cell := d.buf.Cell(x, y)
			if cell.Rune == 0 {
				continue
			}
			style := tcell.StyleDefault.Background(bg)
			if cell.Rune != ' ' {
				style = style.Foreground(toTcell(cell.Color))
			}
			d.screen.SetContent(int(x), int(y), cell.Rune, nil, style)
		}
	}
	d.screen.Show()
}

// Close restores the terminal.
func (d *Display) Close() {
	d.screen.Fini()
}

func toTcell(c graphics.Color) tcell.Color {
	if c.A() == 0 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B()))
}
