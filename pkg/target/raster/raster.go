// Package raster is a pixel sink backed by an image.RGBA. Points are blended
// with their layer's opacity and glyphs are drawn from x/image font faces.
package raster

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/ripple/pkg/errors"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/render"
)

// Font adapts a font.Face to the metrics text layout needs.
type Font struct {
	Face font.Face
}

// BasicFont returns the 7x13 fixed face.
func BasicFont() Font {
	return Font{Face: basicfont.Face7x13}
}

func (f Font) Advance(r rune) uint32 {
	adv, ok := f.Face.GlyphAdvance(r)
	if !ok {
		adv, _ = f.Face.GlyphAdvance('?')
	}
	return uint32(max(adv.Ceil(), 0))
}

func (f Font) LineHeight() uint32 {
	return uint32(max(f.Face.Metrics().Height.Ceil(), 0))
}

// Image is an RGBA surface.
type Image struct {
	img *image.RGBA
}

// New returns a transparent image of the given size.
func New(width, height uint32) *Image {
	return &Image{img: image.NewRGBA(image.Rect(0, 0, int(width), int(height)))}
}

// NewCanvas returns a canvas drawing into a new image.
func NewCanvas(width, height uint32) (*render.Canvas, *Image) {
	img := New(width, height)
	return render.NewCanvas(img), img
}

// RGBA returns the underlying image.
func (m *Image) RGBA() *image.RGBA { return m.img }

func (m *Image) Size() graphics.Size {
	b := m.img.Bounds()
	return graphics.Sz(uint32(b.Dx()), uint32(b.Dy()))
}

func (m *Image) Fill(c graphics.Color) {
	fill := toNRGBA(c)
	b := m.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			m.img.Set(x, y, fill)
		}
	}
}

// At returns the colour of the pixel at p.
func (m *Image) At(p graphics.Point) graphics.Color {
	c := color.NRGBAModel.Convert(m.img.At(int(p.X), int(p.Y))).(color.NRGBA)
	return graphics.RGBA(c.R, c.G, c.B, c.A)
}

func (m *Image) Plot(p graphics.Point, c graphics.Color, alpha uint8) {
	if !(image.Point{X: int(p.X), Y: int(p.Y)}).In(m.img.Bounds()) {
		return
	}
	m.img.Set(int(p.X), int(p.Y), toNRGBA(c.Over(m.At(p), alpha)))
}

// Glyph draws r with its top-left corner at p. Fonts other than Font are
// drawn with the basic face.
func (m *Image) Glyph(p graphics.Point, r rune, c graphics.Color, alpha uint8, f graphics.Font) {
	var face font.Face = basicfont.Face7x13
	if ff, ok := f.(Font); ok && ff.Face != nil {
		face = ff.Face
	}
	dot := fixed.P(int(p.X), int(p.Y)+face.Metrics().Ascent.Ceil())
	dr, mask, mp, _, ok := face.Glyph(dot, r)
	if !ok {
		return
	}
	for y := dr.Min.Y; y < dr.Max.Y; y++ {
		for x := dr.Min.X; x < dr.Max.X; x++ {
			_, _, _, a := mask.At(mp.X+x-dr.Min.X, mp.Y+y-dr.Min.Y).RGBA()
			if a == 0 {
				continue
			}
			m.Plot(graphics.Pt(int32(x), int32(y)), c, uint8(uint32(alpha)*(a>>8)/255))
		}
	}
}

// WritePNG encodes the image as PNG.
func (m *Image) WritePNG(w io.Writer) error {
	if err := png.Encode(w, m.img); err != nil {
		return errors.New("raster.WritePNG", errors.KindTarget, err)
	}
	return nil
}

func toNRGBA(c graphics.Color) color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}
