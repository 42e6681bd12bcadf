package render

import (
	"strings"

	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/graphics"
)

// TextAlignment positions each line within the text block.
type TextAlignment uint8

const (
	TextLeading TextAlignment = iota
	TextCenter
	TextTrailing
)

// Text is a block of lines laid out in a frame. Lines have already been
// truncated to the frame during layout.
type Text struct {
	Origin    graphics.Point
	Size      graphics.Size
	Lines     []string
	Font      graphics.Font
	Alignment TextAlignment
}

// NewText returns a text leaf.
func NewText(origin graphics.Point, size graphics.Size, lines []string, font graphics.Font, alignment TextAlignment) *Text {
	return &Text{Origin: origin, Size: size, Lines: lines, Font: font, Alignment: alignment}
}

// Join moves the block and takes the target's content, which cannot be
// blended.
func (n Text) Join(target Text, d animation.Domain) Text {
	target.Origin = n.Origin.Interpolate(target.Origin, d.Factor)
	target.Size = n.Size.Interpolate(target.Size, d.Factor)
	return target
}

func (n *Text) Render(t Target, style graphics.Color, offset graphics.Point) {
	if n.Font == nil {
		return
	}
	brush := SolidBrush(style)
	origin := n.Origin.Add(offset)
	lineHeight := int32(n.Font.LineHeight())
	for i, line := range n.Lines {
		x := origin.X + n.lineOffset(line)
		t.DrawText(graphics.Pt(x, origin.Y+int32(i)*lineHeight), brush, line, n.Font)
	}
}

func (n *Text) lineOffset(line string) int32 {
	slack := int64(n.Size.Width) - int64(graphics.TextWidth(n.Font, line))
	switch n.Alignment {
	case TextCenter:
		return int32(slack / 2)
	case TextTrailing:
		return int32(slack)
	default:
		return 0
	}
}

// String returns the lines joined with newlines.
func (n *Text) String() string {
	return strings.Join(n.Lines, "\n")
}

func (n *Text) RenderAnimated(t Target, source Renderable, style graphics.Color, offset graphics.Point, d animation.Domain) {
	src := sourceAs("render.Text", n, source)
	joined := Join(*src, *n, d)
	joined.Render(t, style, offset)
}

func (n *Text) JoinFrom(source Renderable, d animation.Domain) {
	src := sourceAs("render.Text", n, source)
	*n = Join(*src, *n, d)
}
