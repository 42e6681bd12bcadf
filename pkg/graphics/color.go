package graphics

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(c.R()) / maxByte,
		float64(c.G()) / maxByte,
		float64(c.B()) / maxByte,
		float64(c.A()) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// MultiplyAlpha scales the alpha channel by opacity/255.
func (c Color) MultiplyAlpha(opacity uint8) Color {
	return c.WithAlpha(uint8(uint32(c.A()) * uint32(opacity) / 255))
}

// Luma returns the integer Rec. 601 luma of the color.
func (c Color) Luma() uint8 {
	return uint8((299*uint32(c.R()) + 587*uint32(c.G()) + 114*uint32(c.B())) / 1000)
}

// Interpolate blends each channel with integer interpolation.
func (c Color) Interpolate(to Color, amount uint8) Color {
	return RGBA(
		InterpolateU8(c.R(), to.R(), amount),
		InterpolateU8(c.G(), to.G(), amount),
		InterpolateU8(c.B(), to.B(), amount),
		InterpolateU8(c.A(), to.A(), amount),
	)
}

// Over composites c on top of dst using c's alpha scaled by opacity.
func (c Color) Over(dst Color, opacity uint8) Color {
	a := uint8(uint32(c.A()) * uint32(opacity) / 255)
	out := dst.Interpolate(c.WithAlpha(dst.A()), a)
	return out.WithAlpha(max(dst.A(), a))
}

// BlendLab blends in CIE-L*a*b* space, which keeps perceived brightness
// steady through the transition. Alpha is blended linearly. The end points are
// returned exactly.
func (c Color) BlendLab(to Color, amount uint8) Color {
	switch amount {
	case 0:
		return c
	case 255:
		return to
	}
	blended := c.colorful().BlendLab(to.colorful(), float64(amount)/maxByte).Clamped()
	r, g, b := blended.RGB255()
	return RGBA(r, g, b, InterpolateU8(c.A(), to.A(), amount))
}

// Hex returns the color as #rrggbb, ignoring alpha.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

func (c Color) String() string {
	if c.A() == 0xFF {
		return c.Hex()
	}
	return fmt.Sprintf("%s@%d", c.Hex(), c.A())
}

func (c Color) colorful() colorful.Color {
	r, g, b, _ := c.RGBAF()
	return colorful.Color{R: r, G: g, B: b}
}

// ParseHex parses "#rgb" or "#rrggbb" into an opaque color.
func ParseHex(s string) (Color, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return RGB(r, g, b), nil
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
	ColorRed         = Color(0xFFFF0000)
	ColorGreen       = Color(0xFF00FF00)
	ColorBlue        = Color(0xFF0000FF)
	ColorGray        = Color(0xFF808080)
)
