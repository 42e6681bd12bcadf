package view

import (
	"strings"

	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
	"github.com/go-drift/ripple/pkg/render"
)

// Text displays lines of text separated by '\n'. Lines longer than an exact
// width offer are truncated and lines beyond an exact height offer are
// dropped; text is never wrapped.
type Text struct {
	leaf
	Content   string
	Alignment render.TextAlignment
	// Font overrides the environment's font.
	Font graphics.Font
}

// TextOf returns a leading-aligned text view.
func TextOf(content string) Text {
	return Text{Content: content}
}

// textLayout records the lines that fit the offer.
type textLayout struct {
	lines []string
}

func (t Text) font(env layout.Environment) graphics.Font {
	if t.Font != nil {
		return t.Font
	}
	return env.Font()
}

func (t Text) Layout(offer layout.ProposedDimensions, env layout.Environment) layout.ResolvedLayout[any] {
	font := t.font(env)
	lineHeight := layout.Dimension(font.LineHeight())
	maxWidth, bounded := offer.Width.Value()

	var size layout.Dimensions
	var lines []string
	for line := range strings.SplitSeq(t.Content, "\n") {
		if bounded {
			line = truncate(font, line, uint32(maxWidth.Min(layout.Dimension(graphics.MaxCoordinate))))
		}
		lines = append(lines, line)
		size.Width = size.Width.Max(layout.Dimension(graphics.TextWidth(font, line)))
		size.Height = size.Height.Add(lineHeight)
		if layout.Exact(size.Height).Compare(offer.Height) >= 0 {
			break
		}
	}
	return layout.Resolved[any](size, textLayout{lines: lines})
}

// truncate returns the longest prefix of s no wider than width.
func truncate(font graphics.Font, s string, width uint32) string {
	var used uint32
	for i, r := range s {
		used += font.Advance(r)
		if used > width {
			return s[:i]
		}
	}
	return s
}

func (t Text) RenderTree(l layout.ResolvedLayout[any], origin graphics.Point, env layout.Environment) render.Renderable {
	tl := layout.Sublayout[textLayout](l)
	return render.NewText(origin, l.ResolvedSize.Size(), tl.lines, t.font(env), t.Alignment)
}
