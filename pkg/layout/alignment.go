package layout

import (
	"fmt"

	"github.com/go-drift/ripple/pkg/graphics"
)

// HorizontalAlignment positions content along the x axis.
type HorizontalAlignment uint8

const (
	Leading HorizontalAlignment = iota
	CenterX
	Trailing
)

// Align returns the offset of content within available.
func (a HorizontalAlignment) Align(available, content Dimension) int32 {
	return align(uint8(a), available, content)
}

func (a HorizontalAlignment) String() string {
	switch a {
	case Leading:
		return "leading"
	case CenterX:
		return "center"
	case Trailing:
		return "trailing"
	default:
		return fmt.Sprintf("HorizontalAlignment(%d)", a)
	}
}

// VerticalAlignment positions content along the y axis.
type VerticalAlignment uint8

const (
	Top VerticalAlignment = iota
	CenterY
	Bottom
)

// Align returns the offset of content within available.
func (a VerticalAlignment) Align(available, content Dimension) int32 {
	return align(uint8(a), available, content)
}

func (a VerticalAlignment) String() string {
	switch a {
	case Top:
		return "top"
	case CenterY:
		return "center"
	case Bottom:
		return "bottom"
	default:
		return fmt.Sprintf("VerticalAlignment(%d)", a)
	}
}

// align is shared by both axes: 0 is leading, 1 centre, 2 trailing. The
// result is negative when content overflows.
func align(a uint8, available, content Dimension) int32 {
	avail, size := int64(available.Coordinate()), int64(content.Coordinate())
	switch a {
	case 1:
		return int32((avail - size) / 2)
	case 2:
		return int32(avail - size)
	default:
		return 0
	}
}

// Alignment pairs a horizontal and vertical alignment.
type Alignment struct {
	Horizontal HorizontalAlignment
	Vertical   VerticalAlignment
}

// The nine standard alignments.
var (
	AlignTopLeading     = Alignment{Leading, Top}
	AlignTop            = Alignment{CenterX, Top}
	AlignTopTrailing    = Alignment{Trailing, Top}
	AlignLeading        = Alignment{Leading, CenterY}
	AlignCenter         = Alignment{CenterX, CenterY}
	AlignTrailing       = Alignment{Trailing, CenterY}
	AlignBottomLeading  = Alignment{Leading, Bottom}
	AlignBottom         = Alignment{CenterX, Bottom}
	AlignBottomTrailing = Alignment{Trailing, Bottom}
)

// Offset returns the offset of content within available on both axes.
func (a Alignment) Offset(available, content Dimensions) graphics.Point {
	return graphics.Point{
		X: a.Horizontal.Align(available.Width, content.Width),
		Y: a.Vertical.Align(available.Height, content.Height),
	}
}

func (a Alignment) String() string {
	return fmt.Sprintf("%v/%v", a.Horizontal, a.Vertical)
}

// LayoutDirection is the primary axis of the enclosing stack.
type LayoutDirection uint8

const (
	Horizontal LayoutDirection = iota
	Vertical
)

func (d LayoutDirection) String() string {
	switch d {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return fmt.Sprintf("LayoutDirection(%d)", d)
	}
}

var alignmentNames = map[string]Alignment{
	"top-leading":     AlignTopLeading,
	"top":             AlignTop,
	"top-trailing":    AlignTopTrailing,
	"leading":         AlignLeading,
	"center":          AlignCenter,
	"trailing":        AlignTrailing,
	"bottom-leading":  AlignBottomLeading,
	"bottom":          AlignBottom,
	"bottom-trailing": AlignBottomTrailing,
}

// ParseAlignment returns one of the nine standard alignments by name, for
// example "top-leading" or "center".
func ParseAlignment(name string) (Alignment, error) {
	a, ok := alignmentNames[name]
	if !ok {
		return Alignment{}, fmt.Errorf("unknown alignment %q", name)
	}
	return a, nil
}
