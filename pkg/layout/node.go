package layout

import "github.com/go-strut/strut/pkg/geometry"

// Node is the capability set every layout participant exposes. Containers
// operate purely through this contract and never on concrete node types.
//
// LayoutSelf is the self-sizing hook: it computes the node's own box from
// the parent-given space and the node's Style. For leaf nodes the default
// [Element] implementation resolves fixed specs and keeps the natural size
// for flexible ones; container nodes (FlexBox, Grid) additionally lay out
// their children, so a parent's pass recursively drives the whole subtree.
//
// LayoutSelf must be idempotent: repeated invocation with unchanged inputs
// must not accumulate state or drift geometry.
type Node interface {
	// Hidden reports whether the node is skipped by layout.
	Hidden() bool

	// LayoutSelf computes the node's own box. See the interface comment.
	LayoutSelf()

	// Style returns the node's sizing record, or nil (all-auto, zero edges).
	Style() *Style

	// Position returns the resolved bottom-left corner.
	Position() (x, y float64)

	// SetPosition commits the resolved bottom-left corner.
	SetPosition(x, y float64)

	// Size returns the resolved size.
	Size() (w, h float64)

	// SetSize commits the resolved size.
	SetSize(w, h float64)
}

// attachable is satisfied by nodes that track their parent container.
// Types embedding Element get this for free.
type attachable interface {
	setParent(*Container)
}

// Element is the base Node implementation: a resolved rectangle, a hidden
// flag, and an optional Style. Embed it in leaf and container node types.
type Element struct {
	x, y   float64
	w, h   float64
	hidden bool
	style  *Style
	parent *Container
}

// NewElement returns an Element with the given style. A nil style is valid
// and behaves as all-auto with zero edges.
func NewElement(style *Style) *Element {
	return &Element{style: style}
}

// Hidden reports whether the node is skipped by layout.
func (e *Element) Hidden() bool {
	return e.hidden
}

// SetHidden toggles whether the node participates in layout.
func (e *Element) SetHidden(hidden bool) {
	e.hidden = hidden
}

// Style returns the node's sizing record, or nil.
func (e *Element) Style() *Style {
	return e.style
}

// SetStyle replaces the node's sizing record.
func (e *Element) SetStyle(style *Style) {
	e.style = style
}

// Position returns the resolved bottom-left corner.
func (e *Element) Position() (x, y float64) {
	return e.x, e.y
}

// SetPosition commits the resolved bottom-left corner.
func (e *Element) SetPosition(x, y float64) {
	e.x, e.y = x, y
}

// Size returns the resolved size.
func (e *Element) Size() (w, h float64) {
	return e.w, e.h
}

// SetSize commits the resolved size. Negative inputs clamp to zero.
func (e *Element) SetSize(w, h float64) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	e.w, e.h = w, h
}

// Bounds returns the resolved rectangle.
func (e *Element) Bounds() geometry.Rect {
	return geometry.Rect{X: e.x, Y: e.y, Width: e.w, Height: e.h}
}

// Parent returns the container this node is attached to, or nil.
func (e *Element) Parent() *Container {
	return e.parent
}

func (e *Element) setParent(p *Container) {
	e.parent = p
}

// LayoutSelf resolves the element's own box from its Style against the
// parent's content space. Fixed specs (pixels, percent) overwrite the
// matching dimension; flexible specs (auto, fill) keep the current natural
// size, leaving the decision to the parent's distribution step.
func (e *Element) LayoutSelf() {
	if e.style == nil {
		return
	}
	var availW, availH float64
	if e.parent != nil {
		content := e.parent.ContentBounds()
		availW, availH = content.Width, content.Height
	}
	if !e.style.Width.IsFlexible() {
		e.w = e.style.Width.Resolve(0, availW, e.w)
	}
	if !e.style.Height.IsFlexible() {
		e.h = e.style.Height.Resolve(0, availH, e.h)
	}
}
