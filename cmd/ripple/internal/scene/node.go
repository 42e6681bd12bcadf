package scene

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/ripple/pkg/animation"
	"github.com/go-drift/ripple/pkg/errors"
	"github.com/go-drift/ripple/pkg/graphics"
	"github.com/go-drift/ripple/pkg/layout"
	"github.com/go-drift/ripple/pkg/render"
	"github.com/go-drift/ripple/pkg/transition"
	"github.com/go-drift/ripple/pkg/view"
)

// Node is one view of a scene.
type Node struct {
	// Kinds. Exactly one is set.
	Text             *TextSpec    `yaml:"text"`
	Rectangle        *ShapeSpec   `yaml:"rectangle"`
	RoundedRectangle *ShapeSpec   `yaml:"rounded_rectangle"`
	Capsule          *ShapeSpec   `yaml:"capsule"`
	Circle           *ShapeSpec   `yaml:"circle"`
	Spacer           *SpacerSpec  `yaml:"spacer"`
	Divider          *DividerSpec `yaml:"divider"`
	Empty            *struct{}    `yaml:"empty"`
	HStack           *StackSpec   `yaml:"hstack"`
	VStack           *StackSpec   `yaml:"vstack"`
	ZStack           *StackSpec   `yaml:"zstack"`
	Match            *MatchSpec   `yaml:"match"`

	// Modifiers.
	AspectRatio   *AspectSpec   `yaml:"aspect_ratio"`
	FixedSize     string        `yaml:"fixed_size"`
	Frame         *FrameSpec    `yaml:"frame"`
	Padding       *PaddingSpec  `yaml:"padding"`
	Background    string        `yaml:"background"`
	Foreground    string        `yaml:"foreground"`
	Clipped       bool          `yaml:"clipped"`
	Offset        []int32       `yaml:"offset"`
	Scale         float64       `yaml:"scale"`
	Opacity       *uint8        `yaml:"opacity"`
	Hidden        bool          `yaml:"hidden"`
	GeometryGroup bool          `yaml:"geometry_group"`
	Animate       *AnimateSpec  `yaml:"animate"`
	Priority      int8          `yaml:"priority"`
	Transition    string        `yaml:"transition"`
	Show          *bool         `yaml:"show"`

	line int
}

// UnmarshalYAML records the node's line for error messages.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	type plain Node
	if err := value.Decode((*plain)(n)); err != nil {
		return err
	}
	n.line = value.Line
	// A bare key such as "circle:" decodes to null. It still names the kind.
	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i+1].Tag != "!!null" {
			continue
		}
		switch value.Content[i].Value {
		case "rectangle":
			n.Rectangle = &ShapeSpec{}
		case "rounded_rectangle":
			n.RoundedRectangle = &ShapeSpec{}
		case "capsule":
			n.Capsule = &ShapeSpec{}
		case "circle":
			n.Circle = &ShapeSpec{}
		case "spacer":
			n.Spacer = &SpacerSpec{}
		case "divider":
			n.Divider = &DividerSpec{}
		case "empty":
			n.Empty = &struct{}{}
		}
	}
	return nil
}

// TextSpec is a text view. It decodes from a plain string or from a mapping.
type TextSpec struct {
	Content string `yaml:"content"`
	Align   string `yaml:"align"`
}

func (t *TextSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		t.Content = value.Value
		return nil
	}
	type plain TextSpec
	return value.Decode((*plain)(t))
}

// ShapeSpec configures a shape view.
type ShapeSpec struct {
	Stroke   uint32   `yaml:"stroke"`
	Gradient []string `yaml:"gradient"`
	Radius   uint32   `yaml:"radius"`
}

type SpacerSpec struct {
	MinLength uint32 `yaml:"min_length"`
}

type DividerSpec struct {
	Weight uint32 `yaml:"weight"`
}

// StackSpec configures hstack, vstack and zstack. Alignment names an edge
// or "center" for hstack and vstack, and one of the nine alignments for
// zstack.
type StackSpec struct {
	Alignment string  `yaml:"alignment"`
	Spacing   uint32  `yaml:"spacing"`
	Policy    string  `yaml:"policy"`
	Children  []*Node `yaml:"children"`
}

// MatchSpec shows the case at Index, or nothing when it is out of range.
type MatchSpec struct {
	Index int     `yaml:"index"`
	Cases []*Node `yaml:"cases"`
}

type AspectSpec struct {
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
	Mode   string `yaml:"mode"`
	Ideal  bool   `yaml:"ideal"`
}

// FrameSpec is a fixed frame when only Width and Height are set and a
// flexible frame otherwise.
type FrameSpec struct {
	Width       *Bound `yaml:"width"`
	Height      *Bound `yaml:"height"`
	MinWidth    *Bound `yaml:"min_width"`
	IdealWidth  *Bound `yaml:"ideal_width"`
	MaxWidth    *Bound `yaml:"max_width"`
	MinHeight   *Bound `yaml:"min_height"`
	IdealHeight *Bound `yaml:"ideal_height"`
	MaxHeight   *Bound `yaml:"max_height"`
	Alignment   string `yaml:"alignment"`
}

// Bound is a frame length: a number of units or "fill".
type Bound struct{ view.Bound }

func (b *Bound) UnmarshalYAML(value *yaml.Node) error {
	if value.Value == "fill" || value.Value == "infinity" {
		b.Bound = view.Fill
		return nil
	}
	var n uint32
	if err := value.Decode(&n); err != nil {
		return fmt.Errorf("line %d: frame length must be a number or fill", value.Line)
	}
	b.Bound = view.Len(n)
	return nil
}

func (b *Bound) get() view.Bound {
	if b == nil {
		return view.Bound{}
	}
	return b.Bound
}

// PaddingSpec decodes from a number, padding every edge, or from a mapping
// naming the edges.
type PaddingSpec struct {
	Edges  string `yaml:"edges"`
	Amount uint32 `yaml:"amount"`
}

func (p *PaddingSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		p.Edges = "all"
		return value.Decode(&p.Amount)
	}
	type plain PaddingSpec
	return value.Decode((*plain)(p))
}

// AnimateSpec animates the view whenever Key changes.
type AnimateSpec struct {
	Key      string `yaml:"key"`
	Duration string `yaml:"duration"`
	Curve    string `yaml:"curve"`
}

// View builds the node's view tree.
func (n *Node) View() (view.View, error) {
	v, err := n.kind()
	if err != nil {
		return nil, n.fail(err)
	}
	if v, err = n.modify(v); err != nil {
		return nil, n.fail(err)
	}
	return v, nil
}

func (n *Node) fail(err error) error {
	if _, ok := err.(*nodeError); ok {
		return err
	}
	return &nodeError{line: n.line, err: err}
}

type nodeError struct {
	line int
	err  error
}

func (e *nodeError) Error() string { return fmt.Sprintf("line %d: %v", e.line, e.err) }
func (e *nodeError) Unwrap() error { return e.err }

func (n *Node) kind() (view.View, error) {
	var kinds []string
	var v view.View
	var err error
	set := func(name string, build func() (view.View, error)) {
		kinds = append(kinds, name)
		if len(kinds) == 1 {
			v, err = build()
		}
	}

	if n.Text != nil {
		set("text", n.text)
	}
	if s := n.Rectangle; s != nil {
		set("rectangle", func() (view.View, error) {
			stroke, err := s.stroke()
			return view.Rectangle{Stroke: stroke}, err
		})
	}
	if s := n.RoundedRectangle; s != nil {
		set("rounded_rectangle", func() (view.View, error) {
			stroke, err := s.stroke()
			return view.RoundedRectangle{Stroke: stroke, Radius: s.Radius}, err
		})
	}
	if s := n.Capsule; s != nil {
		set("capsule", func() (view.View, error) {
			stroke, err := s.stroke()
			return view.Capsule{Stroke: stroke}, err
		})
	}
	if s := n.Circle; s != nil {
		set("circle", func() (view.View, error) {
			stroke, err := s.stroke()
			return view.Circle{Stroke: stroke}, err
		})
	}
	if n.Spacer != nil {
		set("spacer", func() (view.View, error) { return view.Spacer{MinLength: n.Spacer.MinLength}, nil })
	}
	if n.Divider != nil {
		set("divider", func() (view.View, error) { return view.Divider{Weight: n.Divider.Weight}, nil })
	}
	if n.Empty != nil {
		set("empty", func() (view.View, error) { return view.EmptyView{}, nil })
	}
	if n.HStack != nil {
		set("hstack", n.hstack)
	}
	if n.VStack != nil {
		set("vstack", n.vstack)
	}
	if n.ZStack != nil {
		set("zstack", n.zstack)
	}
	if n.Match != nil {
		set("match", n.match)
	}

	switch len(kinds) {
	case 0:
		return nil, fmt.Errorf("view has no kind")
	case 1:
		return v, err
	default:
		return nil, fmt.Errorf("view has several kinds: %s", strings.Join(kinds, ", "))
	}
}

func (n *Node) text() (view.View, error) {
	t := view.TextOf(n.Text.Content)
	switch n.Text.Align {
	case "", "leading":
	case "center":
		t.Alignment = render.TextCenter
	case "trailing":
		t.Alignment = render.TextTrailing
	default:
		return nil, invalid("text.align", "leading, center or trailing", n.Text.Align)
	}
	return t, nil
}

func (s *ShapeSpec) stroke() (view.Stroke, error) {
	stroke := view.Stroke{Width: s.Stroke}
	switch len(s.Gradient) {
	case 0:
	case 2:
		from, err := parseColor("gradient", s.Gradient[0])
		if err != nil {
			return stroke, err
		}
		to, err := parseColor("gradient", s.Gradient[1])
		if err != nil {
			return stroke, err
		}
		stroke.Gradient = &render.Gradient{From: from, To: to}
	default:
		return stroke, invalid("gradient", "two colours", s.Gradient)
	}
	return stroke, nil
}

func children(nodes []*Node) ([]view.View, error) {
	views := make([]view.View, 0, len(nodes))
	for _, c := range nodes {
		if c == nil {
			return nil, fmt.Errorf("empty child view")
		}
		v, err := c.View()
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func (s *StackSpec) policy() (view.AllocationPolicy, error) {
	if s.Policy == "" {
		return view.PriorityThenFlexibility, nil
	}
	p, err := view.ParseAllocationPolicy(s.Policy)
	if err != nil {
		return 0, invalid("policy", "priority or in-order", s.Policy)
	}
	return p, nil
}

func (n *Node) hstack() (view.View, error) {
	s := n.HStack
	kids, err := children(s.Children)
	if err != nil {
		return nil, err
	}
	policy, err := s.policy()
	if err != nil {
		return nil, err
	}
	h := view.HStack{Children: kids, Spacing: s.Spacing, Policy: policy}
	switch s.Alignment {
	case "", "top":
	case "center":
		h.Alignment = layout.CenterY
	case "bottom":
		h.Alignment = layout.Bottom
	default:
		return nil, invalid("hstack.alignment", "top, center or bottom", s.Alignment)
	}
	return h, nil
}

func (n *Node) vstack() (view.View, error) {
	s := n.VStack
	kids, err := children(s.Children)
	if err != nil {
		return nil, err
	}
	policy, err := s.policy()
	if err != nil {
		return nil, err
	}
	v := view.VStack{Children: kids, Spacing: s.Spacing, Policy: policy}
	switch s.Alignment {
	case "", "leading":
	case "center":
		v.Alignment = layout.CenterX
	case "trailing":
		v.Alignment = layout.Trailing
	default:
		return nil, invalid("vstack.alignment", "leading, center or trailing", s.Alignment)
	}
	return v, nil
}

func (n *Node) zstack() (view.View, error) {
	s := n.ZStack
	kids, err := children(s.Children)
	if err != nil {
		return nil, err
	}
	z := view.ZStackOf(kids...)
	if s.Alignment != "" {
		if z.Alignment, err = parseAlignment("zstack.alignment", s.Alignment); err != nil {
			return nil, err
		}
	}
	return z, nil
}

func (n *Node) match() (view.View, error) {
	cases, err := children(n.Match.Cases)
	if err != nil {
		return nil, err
	}
	return view.Match{Index: n.Match.Index, Cases: cases}, nil
}

// modify wraps v in the node's modifiers.
func (n *Node) modify(v view.View) (view.View, error) {
	var err error
	if a := n.AspectRatio; a != nil {
		if a.Width == 0 || a.Height == 0 {
			return nil, invalid("aspect_ratio", "a non-zero width and height", fmt.Sprintf("%dx%d", a.Width, a.Height))
		}
		ar := view.AspectRatio{View: v, Ratio: graphics.Sz(a.Width, a.Height), Ideal: a.Ideal}
		switch a.Mode {
		case "", "fit":
		case "fill":
			ar.Mode = view.ContentFill
		default:
			return nil, invalid("aspect_ratio.mode", "fit or fill", a.Mode)
		}
		v = ar
	}
	switch n.FixedSize {
	case "":
	case "horizontal":
		v = view.FixedSize{View: v, Horizontal: true}
	case "vertical":
		v = view.FixedSize{View: v, Vertical: true}
	case "both":
		v = view.FixedSize{View: v, Horizontal: true, Vertical: true}
	default:
		return nil, invalid("fixed_size", "horizontal, vertical or both", n.FixedSize)
	}
	if n.Frame != nil {
		if v, err = n.Frame.wrap(v); err != nil {
			return nil, err
		}
	}
	if p := n.Padding; p != nil {
		edges, err := view.ParseEdges(p.Edges)
		if err != nil {
			return nil, invalid("padding.edges", "a list of edges", p.Edges)
		}
		v = view.Padding{View: v, Edges: edges, Amount: p.Amount}
	}
	if n.Background != "" {
		c, err := parseColor("background", n.Background)
		if err != nil {
			return nil, err
		}
		v = view.BackgroundColor{View: v, Color: c}
	}
	if n.Foreground != "" {
		c, err := parseColor("foreground", n.Foreground)
		if err != nil {
			return nil, err
		}
		v = view.ForegroundColor{View: v, Color: c}
	}
	if n.Clipped {
		v = view.Clipped{View: v}
	}
	switch len(n.Offset) {
	case 0:
	case 2:
		v = view.Offset{View: v, Offset: graphics.Pt(n.Offset[0], n.Offset[1])}
	default:
		return nil, invalid("offset", "[x, y]", n.Offset)
	}
	if n.Scale != 0 {
		if n.Scale < 0 {
			return nil, invalid("scale", "a positive number", n.Scale)
		}
		v = view.Scaled(graphics.ScaleFromFloat(n.Scale), v)
	}
	if n.Opacity != nil {
		v = view.Opacity{View: v, Alpha: *n.Opacity}
	}
	if n.Hidden {
		v = view.Hidden{View: v}
	}
	if n.GeometryGroup {
		v = view.GeometryGroup{View: v}
	}
	if a := n.Animate; a != nil {
		anim, err := a.animation()
		if err != nil {
			return nil, err
		}
		v = view.Animate(anim, a.Key, v)
	}
	if n.Priority != 0 {
		v = view.Prioritized{View: v, Level: n.Priority}
	}
	if n.Transition != "" {
		t, err := ParseTransition(n.Transition)
		if err != nil {
			return nil, err
		}
		v = view.Transitioned{View: v, With: t}
	}
	if n.Show != nil {
		v = view.If{Condition: *n.Show, Then: v}
	}
	return v, nil
}

func (f *FrameSpec) wrap(v view.View) (view.View, error) {
	flex := f.MinWidth != nil || f.IdealWidth != nil || f.MaxWidth != nil ||
		f.MinHeight != nil || f.IdealHeight != nil || f.MaxHeight != nil
	align := layout.AlignCenter
	if f.Alignment != "" {
		var err error
		if align, err = parseAlignment("frame.alignment", f.Alignment); err != nil {
			return nil, err
		}
	}
	if !flex {
		return view.FixedFrame{View: v, Width: f.Width.get(), Height: f.Height.get(), Alignment: align}, nil
	}
	if f.Width != nil || f.Height != nil {
		return nil, invalid("frame", "either width and height or min, ideal and max bounds", "both")
	}
	return view.FlexFrame{
		View:     v,
		MinWidth: f.MinWidth.get(), IdealWidth: f.IdealWidth.get(), MaxWidth: f.MaxWidth.get(),
		MinHeight: f.MinHeight.get(), IdealHeight: f.IdealHeight.get(), MaxHeight: f.MaxHeight.get(),
		Alignment: align,
	}, nil
}

func (a *AnimateSpec) animation() (animation.Animation, error) {
	d, err := time.ParseDuration(a.Duration)
	if err != nil || d < 0 {
		return animation.Animation{}, invalid("animate.duration", "a duration", a.Duration)
	}
	curve := animation.CurveLinear
	if a.Curve != "" {
		if curve, err = animation.ParseCurve(a.Curve); err != nil {
			return animation.Animation{}, invalid("animate.curve", "a curve name", a.Curve)
		}
	}
	return animation.Animation{Duration: d, Curve: curve}, nil
}

// ParseTransition parses transitions such as "opacity", "move:leading" or
// "slide:top". Several transitions joined with "+" apply together.
func ParseTransition(s string) (transition.Transition, error) {
	var result transition.Transition
	for part := range strings.SplitSeq(s, "+") {
		name, edgeName, hasEdge := strings.Cut(strings.TrimSpace(part), ":")
		var t transition.Transition
		switch {
		case name == "opacity" && !hasEdge:
			t = transition.Opacity{}
		case name == "move" || name == "slide":
			edge, err := transition.ParseEdge(edgeName)
			if err != nil {
				return nil, invalid("transition", "an edge", edgeName)
			}
			if name == "move" {
				t = transition.Move{Edge: edge}
			} else {
				t = transition.Slide{Edge: edge}
			}
		default:
			return nil, invalid("transition", "opacity, move:<edge> or slide:<edge>", part)
		}
		if result == nil {
			result = t
		} else {
			result = transition.Combined{First: result, Second: t}
		}
	}
	return result, nil
}

func parseColor(field, s string) (graphics.Color, error) {
	c, err := graphics.ParseHex(s)
	if err != nil {
		return 0, invalid(field, "a #rrggbb colour", s)
	}
	return c, nil
}

func parseAlignment(field, s string) (layout.Alignment, error) {
	a, err := layout.ParseAlignment(s)
	if err != nil {
		return a, invalid(field, "an alignment such as top-leading or center", s)
	}
	return a, nil
}

func invalid(field, expected string, got any) error {
	return &errors.ParseError{Field: field, Expected: expected, Got: got}
}
