package render

import (
	"github.com/go-drift/ripple/pkg/graphics"
)

// Surface is the device a Canvas rasterizes into. Points are device cells
// or pixels; alpha is the effective opacity of the drawing layer.
type Surface interface {
	Size() graphics.Size
	// Fill paints every point with c.
	Fill(c graphics.Color)
	// Plot paints one point of a shape.
	Plot(p graphics.Point, c graphics.Color, alpha uint8)
	// Glyph paints r with its top-left corner at p.
	Glyph(p graphics.Point, r rune, c graphics.Color, alpha uint8, font graphics.Font)
}

// BackgroundSurface is implemented by surfaces that need the hinted
// background of the current layer, such as character grids that cannot blend.
type BackgroundSurface interface {
	Surface
	SetBackgroundHint(c graphics.Color, ok bool)
}

// Canvas implements Target on top of a Surface by walking shape coverage
// point by point. It is the shared rasterizer of the bundled pixel sinks.
type Canvas struct {
	surface   Surface
	layers    LayerStack
	animating bool
}

// NewCanvas wraps s.
func NewCanvas(s Surface) *Canvas {
	return &Canvas{surface: s, layers: NewLayerStack(s.Size())}
}

// Surface returns the wrapped surface.
func (c *Canvas) Surface() Surface { return c.surface }

// Reset resizes the root layer to the surface and drops stale layers.
func (c *Canvas) Reset() {
	c.layers.Reset(c.surface.Size())
}

func (c *Canvas) Size() graphics.Size { return c.surface.Size() }

func (c *Canvas) Clear(col graphics.Color) { c.surface.Fill(col) }

func (c *Canvas) ClipRect() graphics.Frame { return c.layers.Current().ClipRect() }

func (c *Canvas) WithLayer(edit func(*Layer), draw func(Target)) {
	c.layers.Push(edit)
	c.hintBackground()
	defer func() {
		c.layers.Pop()
		c.hintBackground()
	}()
	draw(c)
}

func (c *Canvas) hintBackground() {
	if bs, ok := c.surface.(BackgroundSurface); ok {
		bg, ok := c.layers.Current().Background()
		bs.SetBackgroundHint(bg, ok)
	}
}

func (c *Canvas) Alpha() uint8 { return c.layers.Current().Alpha() }

func (c *Canvas) ReportActiveAnimation() { c.animating = true }

func (c *Canvas) ClearAnimationStatus() bool {
	was := c.animating
	c.animating = false
	return was
}

func (c *Canvas) Fill(transform graphics.Transform, brush Brush, shape graphics.Shape) {
	c.cover(transform, brush, shape, nil)
}

func (c *Canvas) Stroke(width uint32, transform graphics.Transform, brush Brush, shape graphics.Shape) {
	if width == 0 {
		return
	}
	c.cover(transform, brush, shape, shape.Inset(width))
}

// cover plots every device point whose preimage lies in shape and outside
// hole.
func (c *Canvas) cover(transform graphics.Transform, brush Brush, shape, hole graphics.Shape) {
	layer := c.layers.Current()
	alpha := layer.Alpha()
	if alpha == 0 {
		return
	}
	total := layer.TransformValue().Applying(transform)
	area := total.ApplyFrame(shape.Bounds()).Intersection(layer.ClipRect())
	if area.IsEmpty() {
		return
	}
	end := area.Max()
	for y := area.Origin.Y; y < end.Y; y++ {
		for x := area.Origin.X; x < end.X; x++ {
			p := graphics.Pt(x, y)
			local := total.InversePoint(p)
			if !shape.Contains(local) || (hole != nil && hole.Contains(local)) {
				continue
			}
			c.surface.Plot(p, brush.ColorAt(local), alpha)
		}
	}
}

func (c *Canvas) DrawText(origin graphics.Point, brush Brush, text string, font graphics.Font) {
	layer := c.layers.Current()
	alpha := layer.Alpha()
	if alpha == 0 {
		return
	}
	transform := layer.TransformValue()
	clip := layer.ClipRect()
	x := origin.X
	for _, r := range text {
		local := graphics.Pt(x, origin.Y)
		x += int32(font.Advance(r))
		p := transform.ApplyPoint(local)
		if !clip.Contains(p) {
			continue
		}
		c.surface.Glyph(p, r, brush.ColorAt(local), alpha, font)
	}
}
