package widgets

import "github.com/go-strut/strut/pkg/layout"

// Box is a plain rectangular node: a natural size, an optional style, and
// an ARGB fill color for whatever renderer consumes the tree. It is the
// workhorse child for panels and placeholders.
type Box struct {
	layout.Element
	// Color is the fill color as 0xAARRGGBB.
	Color uint32
}

// NewBox returns a box with the given natural size.
func NewBox(w, h float64) *Box {
	b := &Box{}
	b.SetSize(w, h)
	return b
}

// NewStyledBox returns a box sized by its style during layout.
func NewStyledBox(style *layout.Style) *Box {
	b := &Box{}
	b.SetStyle(style)
	return b
}
