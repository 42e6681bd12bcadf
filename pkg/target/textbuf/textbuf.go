// Package textbuf is a character-grid pixel sink. Each cell holds one rune
// and its colour; shapes are drawn with an ink rune.
//
// Character cells cannot be blended, so points drawn below half opacity are
// dropped unless the current layer hints at a background colour, in which
// case the colour is blended toward it.
package textbuf

import (
	"strings"

	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/render"
)

// DefaultInk is the rune shapes are drawn with.
const DefaultInk = '█'

// Cell is one character of the grid.
type Cell struct {
	Rune  rune
	Color graphics.Color
}

// Buffer is a fixed-size character grid implementing render.Surface.
type Buffer struct {
	// Ink is the rune plotted for shape coverage.
	Ink rune

	width, height uint32
	cells         []Cell
	background    graphics.Color
	hint          *graphics.Color
}

// New returns a blank buffer of the given size.
func New(width, height uint32) *Buffer {
	b := &Buffer{Ink: DefaultInk, width: width, height: height, cells: make([]Cell, int(width)*int(height))}
	b.Fill(graphics.ColorTransparent)
	return b
}

// NewCanvas returns a buffer and a canvas drawing into it.
func NewCanvas(width, height uint32) (*render.Canvas, *Buffer) {
	b := New(width, height)
	return render.NewCanvas(b), b
}

func (b *Buffer) Size() graphics.Size { return graphics.Sz(b.width, b.height) }

func (b *Buffer) Fill(c graphics.Color) {
	b.background = c
	for i := range b.cells {
		b.cells[i] = Cell{Rune: ' ', Color: c}
	}
}

// Background returns the colour of the last Fill.
func (b *Buffer) Background() graphics.Color { return b.background }

func (b *Buffer) SetBackgroundHint(c graphics.Color, ok bool) {
	if !ok {
		b.hint = nil
		return
	}
	b.hint = &c
}

func (b *Buffer) index(p graphics.Point) (int, bool) {
	if p.X < 0 || p.Y < 0 || uint32(p.X) >= b.width || uint32(p.Y) >= b.height {
		return 0, false
	}
	return int(p.Y)*int(b.width) + int(p.X), true
}

// shade returns the colour to store for c drawn at alpha, or false when the
// point is dropped.
func (b *Buffer) shade(c graphics.Color, alpha uint8) (graphics.Color, bool) {
	alpha = uint8(uint32(alpha) * uint32(c.A()) / 255)
	if b.hint != nil {
		return b.hint.Interpolate(c.WithAlpha(255), alpha), true
	}
	if alpha < 128 {
		return 0, false
	}
	return c.WithAlpha(255), true
}

func (b *Buffer) Plot(p graphics.Point, c graphics.Color, alpha uint8) {
	i, ok := b.index(p)
	if !ok {
		return
	}
	if col, ok := b.shade(c, alpha); ok {
		b.cells[i] = Cell{Rune: b.Ink, Color: col}
	}
}

// Glyph writes r at p. Wide runes also claim the following cells, which are
// stored as zero runes.
func (b *Buffer) Glyph(p graphics.Point, r rune, c graphics.Color, alpha uint8, font graphics.Font) {
	col, ok := b.shade(c, alpha)
	if !ok {
		return
	}
	if i, ok := b.index(p); ok {
		b.cells[i] = Cell{Rune: r, Color: col}
	}
	for dx := int32(1); dx < int32(font.Advance(r)); dx++ {
		if i, ok := b.index(p.Add(graphics.Pt(dx, 0))); ok {
			b.cells[i] = Cell{Color: col}
		}
	}
}

// Cell returns the cell at (x, y). Out-of-range positions return a zero
// cell.
func (b *Buffer) Cell(x, y int32) Cell {
	i, ok := b.index(graphics.Pt(x, y))
	if !ok {
		return Cell{}
	}
	return b.cells[i]
}

// Lines returns each row as a string with trailing blanks removed.
func (b *Buffer) Lines() []string {
	lines := make([]string, b.height)
	var sb strings.Builder
	for y := range b.height {
		sb.Reset()
		row := b.cells[int(y)*int(b.width) : int(y+1)*int(b.width)]
		for _, cell := range row {
			if cell.Rune != 0 {
				sb.WriteRune(cell.Rune)
			}
		}
		lines[y] = strings.TrimRight(sb.String(), " ")
	}
	return lines
}

// String returns the grid as newline-separated rows.
func (b *Buffer) String() string {
	return strings.Join(b.Lines(), "\n")
}
