package graphics

import "github.com/mattn/go-runewidth"

// Font provides the metrics text layout needs. Glyph rasterization is the
// pixel sink's concern.
type Font interface {
	// Advance returns the horizontal advance of r in display units.
	Advance(r rune) uint32
	// LineHeight returns the vertical distance between baselines.
	LineHeight() uint32
}

// CharacterFont is the font of character-cell displays: every cell is one
// unit tall and runes advance by their East Asian cell width.
type CharacterFont struct{}

func (CharacterFont) Advance(r rune) uint32 {
	w := runewidth.RuneWidth(r)
	if w < 0 {
		return 0
	}
	return uint32(w)
}

func (CharacterFont) LineHeight() uint32 { return 1 }

// MonoFont is a fixed-cell font for raster displays.
type MonoFont struct {
	CellWidth  uint32
	CellHeight uint32
}

func (f MonoFont) Advance(r rune) uint32 {
	return f.CellWidth * CharacterFont{}.Advance(r)
}

func (f MonoFont) LineHeight() uint32 { return f.CellHeight }

// TextWidth sums the advances of s.
func TextWidth(f Font, s string) uint32 {
	var w uint32
	for _, r := range s {
		w += f.Advance(r)
	}
	return w
}
