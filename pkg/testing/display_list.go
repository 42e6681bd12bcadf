package testing

import (
	"fmt"
	"reflect"

	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/render"
)

// DisplayOp represents a serialized drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// Recorder is a render.Target that records drawing operations instead of
// rasterizing them. Positions are recorded in device coordinates, after the
// layer transform.
type Recorder struct {
	size      graphics.Size
	layers    render.LayerStack
	animating bool
	ops       []DisplayOp
}

// NewRecorder returns a recorder for a target of the given size.
func NewRecorder(size graphics.Size) *Recorder {
	return &Recorder{size: size, layers: render.NewLayerStack(size)}
}

// Ops returns the operations recorded so far.
func (r *Recorder) Ops() []DisplayOp { return r.ops }

// Find returns the recorded operations named op.
func (r *Recorder) Find(op string) []DisplayOp {
	var found []DisplayOp
	for _, o := range r.ops {
		if o.Op == op {
			found = append(found, o)
		}
	}
	return found
}

func (r *Recorder) Size() graphics.Size { return r.size }

func (r *Recorder) Clear(c graphics.Color) {
	r.ops = append(r.ops, DisplayOp{Op: "clear", Params: sortedMap("color", serializeColor(c))})
}

func (r *Recorder) ClipRect() graphics.Frame { return r.layers.Current().ClipRect() }

func (r *Recorder) WithLayer(edit func(*render.Layer), draw func(render.Target)) {
	r.layers.Push(edit)
	layer := r.layers.Current()
	params := sortedMap(
		"alpha", int(layer.Alpha()),
		"transform", serializeTransform(layer.TransformValue()),
		"clip", serializeFrame(layer.ClipRect()),
	)
	if bg, ok := layer.Background(); ok {
		params["background"] = serializeColor(bg)
	}
	r.ops = append(r.ops, DisplayOp{Op: "layer", Params: params})
	defer func() {
		r.layers.Pop()
		r.ops = append(r.ops, DisplayOp{Op: "restore"})
	}()
	draw(r)
}

func (r *Recorder) Alpha() uint8 { return r.layers.Current().Alpha() }

func (r *Recorder) ReportActiveAnimation() { r.animating = true }

func (r *Recorder) ClearAnimationStatus() bool {
	was := r.animating
	r.animating = false
	return was
}

func (r *Recorder) Fill(transform graphics.Transform, brush render.Brush, shape graphics.Shape) {
	r.ops = append(r.ops, DisplayOp{Op: "fill", Params: r.shapeParams(transform, brush, shape)})
}

func (r *Recorder) Stroke(width uint32, transform graphics.Transform, brush render.Brush, shape graphics.Shape) {
	params := r.shapeParams(transform, brush, shape)
	params["width"] = int(width)
	r.ops = append(r.ops, DisplayOp{Op: "stroke", Params: params})
}

func (r *Recorder) DrawText(origin graphics.Point, brush render.Brush, text string, _ graphics.Font) {
	device := r.layers.Current().TransformValue().ApplyPoint(origin)
	r.ops = append(r.ops, DisplayOp{Op: "text", Params: sortedMap(
		"origin", serializePoint(device),
		"text", text,
		"color", serializeColor(brush.ColorAt(origin)),
		"alpha", int(r.Alpha()),
	)})
}

func (r *Recorder) shapeParams(transform graphics.Transform, brush render.Brush, shape graphics.Shape) map[string]any {
	bounds := shape.Bounds()
	device := r.layers.Current().TransformValue().Applying(transform).ApplyFrame(bounds)
	return sortedMap(
		"shape", typeName(shape),
		"bounds", serializeFrame(device),
		"color", serializeColor(brush.ColorAt(bounds.Origin)),
		"alpha", int(r.Alpha()),
	)
}

// --- Serialization helpers ---

func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

func serializePoint(p graphics.Point) map[string]any {
	return sortedMap("x", int(p.X), "y", int(p.Y))
}

func serializeFrame(f graphics.Frame) map[string]any {
	return sortedMap(
		"x", int(f.Origin.X),
		"y", int(f.Origin.Y),
		"width", int(f.Size.Width),
		"height", int(f.Size.Height),
	)
}

func serializeTransform(t graphics.Transform) map[string]any {
	return sortedMap("offset", serializePoint(t.Offset), "scale", t.Scale.String())
}

func serializeColor(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// sortedMap creates a map from alternating key-value pairs. JSON encoding
// sorts the keys.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
