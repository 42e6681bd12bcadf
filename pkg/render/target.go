// Package render defines render trees and the pixel sinks they draw into.
//
// A render tree is an immutable, fully positioned description of a frame
// produced from a view and its resolved layout. Two render trees of the same
// shape can be interpolated: JoinFrom freezes an in-flight animation into the
// receiver, and RenderAnimated draws the blend of two trees without building
// a third one.
package render

import (
	"github.com/go-drift/ripple/pkg/graphics"
)

// Target is a pixel sink. Implementations keep a stack of layers, each of
// which may move, scale, fade or clip everything drawn inside it.
type Target interface {
	// Size returns the drawable size.
	Size() graphics.Size
	// Clear fills the whole target with c, ignoring layers.
	Clear(c graphics.Color)
	// ClipRect returns the current clip rectangle in device coordinates.
	ClipRect() graphics.Frame
	// WithLayer pushes a layer configured by edit, calls draw, and pops it.
	WithLayer(edit func(*Layer), draw func(Target))
	// Alpha returns the effective opacity of the current layer.
	Alpha() uint8
	// ReportActiveAnimation records that something drawn this frame is
	// still animating.
	ReportActiveAnimation()
	// ClearAnimationStatus resets the animation flag and returns its
	// previous value.
	ClearAnimationStatus() bool
	// Fill paints shape, mapped through transform, with brush.
	Fill(transform graphics.Transform, brush Brush, shape graphics.Shape)
	// Stroke paints the outline of shape with the given width.
	Stroke(width uint32, transform graphics.Transform, brush Brush, shape graphics.Shape)
	// DrawText paints text with its first cell at origin.
	DrawText(origin graphics.Point, brush Brush, text string, font graphics.Font)
}

// Brush supplies the colour at each point of a filled shape, in the shape's
// local coordinates.
type Brush interface {
	ColorAt(p graphics.Point) graphics.Color
}

// SolidBrush paints a single colour.
type SolidBrush graphics.Color

func (b SolidBrush) ColorAt(graphics.Point) graphics.Color { return graphics.Color(b) }

// HorizontalGradient blends from From at the leading edge of Bounds to To at
// the trailing edge.
type HorizontalGradient struct {
	From, To graphics.Color
	Bounds   graphics.Frame
}

func (g HorizontalGradient) ColorAt(p graphics.Point) graphics.Color {
	w := int64(g.Bounds.Size.Width)
	if w <= 1 {
		return g.From
	}
	x := min(max(int64(p.X-g.Bounds.Origin.X), 0), w-1)
	return g.From.Interpolate(g.To, uint8(x*255/(w-1)))
}

// Layer is the drawing state of one level of the layer stack. Edits made in
// WithLayer compose with the parent layer.
type Layer struct {
	alpha      uint8
	transform  graphics.Transform
	clip       graphics.Frame
	background *graphics.Color
}

// RootLayer returns the layer covering a target of the given size.
func RootLayer(size graphics.Size) Layer {
	return Layer{alpha: 255, transform: graphics.Identity(), clip: graphics.Frame{Size: size}}
}

// Opacity multiplies the layer's alpha by opacity/255.
func (l *Layer) Opacity(opacity uint8) *Layer {
	l.alpha = uint8(uint32(l.alpha) * uint32(opacity) / 255)
	return l
}

// Offset translates subsequent drawing, in the layer's scaled coordinates.
func (l *Layer) Offset(offset graphics.Point) *Layer {
	l.transform = l.transform.Applying(graphics.Translation(offset))
	return l
}

// Transform composes t with the layer's transform.
func (l *Layer) Transform(t graphics.Transform) *Layer {
	l.transform = l.transform.Applying(t)
	return l
}

// Clip intersects the clip rectangle with f, given in the layer's local
// coordinates.
func (l *Layer) Clip(f graphics.Frame) *Layer {
	l.clip = l.clip.Intersection(l.transform.ApplyFrame(f))
	return l
}

// HintBackground records the colour behind the layer. Character sinks blend
// faded content toward it instead of dropping it.
func (l *Layer) HintBackground(c graphics.Color) *Layer {
	if l.background != nil && l.alpha != 255 {
		c = l.background.Interpolate(c, l.alpha)
	}
	l.background = &c
	return l
}

// Alpha returns the layer's opacity.
func (l Layer) Alpha() uint8 { return l.alpha }

// TransformValue returns the layer's accumulated transform.
func (l Layer) TransformValue() graphics.Transform { return l.transform }

// ClipRect returns the clip rectangle in device coordinates.
func (l Layer) ClipRect() graphics.Frame { return l.clip }

// Background returns the hinted background colour, if any.
func (l Layer) Background() (graphics.Color, bool) {
	if l.background == nil {
		return 0, false
	}
	return *l.background, true
}

// LayerStack is the layer bookkeeping shared by pixel sinks.
type LayerStack struct {
	layers []Layer
}

// NewLayerStack returns a stack holding the root layer for size.
func NewLayerStack(size graphics.Size) LayerStack {
	return LayerStack{layers: []Layer{RootLayer(size)}}
}

// Current returns the top layer.
func (s *LayerStack) Current() Layer {
	return s.layers[len(s.layers)-1]
}

// Push adds a layer derived from the current one.
func (s *LayerStack) Push(edit func(*Layer)) {
	next := s.Current()
	if edit != nil {
		edit(&next)
	}
	s.layers = append(s.layers, next)
}

// Pop removes the top layer. The root layer is never removed.
func (s *LayerStack) Pop() {
	if len(s.layers) > 1 {
		s.layers = s.layers[:len(s.layers)-1]
	}
}

// Depth returns the number of layers including the root.
func (s *LayerStack) Depth() int {
	return len(s.layers)
}

// Reset drops every layer above the root and resizes the root.
func (s *LayerStack) Reset(size graphics.Size) {
	s.layers = append(s.layers[:0], RootLayer(size))
}
