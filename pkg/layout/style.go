package layout

import "github.com/go-strut/strut/pkg/geometry"

// EdgeSpecs holds one SizeSpec per rectangle edge.
type EdgeSpecs struct {
	Left   SizeSpec
	Right  SizeSpec
	Top    SizeSpec
	Bottom SizeSpec
}

// EdgesAll returns EdgeSpecs with the same spec on every edge.
func EdgesAll(s SizeSpec) EdgeSpecs {
	return EdgeSpecs{Left: s, Right: s, Top: s, Bottom: s}
}

// EdgesSymmetric returns EdgeSpecs with horizontal and vertical pairs.
func EdgesSymmetric(horizontal, vertical SizeSpec) EdgeSpecs {
	return EdgeSpecs{Left: horizontal, Right: horizontal, Top: vertical, Bottom: vertical}
}

// Style is the per-node sizing record: width/height specs plus margins and
// padding. A node without a Style behaves as if every spec were Auto and
// every edge zero.
//
// Style is created before the node is attached and treated as immutable by
// the engine; replace the whole record to restyle a node.
//
// Margins are carried for node authorship and document loading; the
// placement math of FlexBox and Grid consumes only Width, Height, and
// Padding (see the package documentation on the box model).
type Style struct {
	Width   SizeSpec
	Height  SizeSpec
	Margin  EdgeSpecs
	Padding EdgeSpecs
}

// NewStyle returns a Style with the given width and height specs and zero
// margins and padding.
func NewStyle(width, height SizeSpec) *Style {
	return &Style{Width: width, Height: height}
}

// resolvePadding resolves the four padding specs against the node's own
// resolved box. Percentages resolve against the matching axis; flexible
// padding specs collapse to zero.
func (s *Style) resolvePadding(width, height float64) (left, right, bottom, top float64) {
	if s == nil {
		return 0, 0, 0, 0
	}
	left = s.Padding.Left.Resolve(0, width, 0)
	right = s.Padding.Right.Resolve(0, width, 0)
	bottom = s.Padding.Bottom.Resolve(0, height, 0)
	top = s.Padding.Top.Resolve(0, height, 0)
	return left, right, bottom, top
}

// contentRect returns the inner rectangle of a resolved box after padding.
// With the Y-up convention the bottom padding shifts the origin upward.
func (s *Style) contentRect(box geometry.Rect) geometry.Rect {
	left, right, bottom, top := s.resolvePadding(box.Width, box.Height)
	return box.Inset(left, right, bottom, top)
}
