package widgets

import "github.com/go-strut/strut/pkg/layout"

// Spacer is an invisible node used purely for its box. A fixed spacer
// inserts a gap between flex siblings beyond the container's configured
// gap; a flexible spacer has no style at all, which makes it
// stretch-eligible on both axes inside a stretching grid cell.
type Spacer struct {
	layout.Element
}

// NewSpacer returns a spacer with a fixed natural size.
func NewSpacer(w, h float64) *Spacer {
	s := &Spacer{}
	s.SetSize(w, h)
	return s
}

// NewFlexibleSpacer returns a styleless spacer. Its natural size is zero;
// it only gains extent when a grid cell stretches it.
func NewFlexibleSpacer() *Spacer {
	return &Spacer{}
}
