// Package geometry provides the 2D primitives shared by the layout engine.
//
// The coordinate convention is Y-up: the origin of a rectangle is its
// bottom-left corner and Top() == Y + Height. Everything is float64 pixels.
package geometry

import "math"

// Epsilon is the tolerance for floating-point comparisons.
const Epsilon = 0.0001

// Offset represents a 2D point or vector in pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle. X,Y is the bottom-left corner.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// RectFromXYWH constructs a Rect from its bottom-left corner and size.
func RectFromXYWH(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// Top returns the Y coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y + r.Height
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Offset {
	return Offset{X: r.X + r.Width*0.5, Y: r.Y + r.Height*0.5}
}

// Inset returns the rectangle shrunk by the given edge amounts.
// Edges that would cross collapse to a zero-sized rect anchored at the
// inset origin rather than going negative.
func (r Rect) Inset(left, right, bottom, top float64) Rect {
	return Rect{
		X:      r.X + left,
		Y:      r.Y + bottom,
		Width:  math.Max(0, r.Width-left-right),
		Height: math.Max(0, r.Height-bottom-top),
	}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Offset) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Top()
}

// ApproxEqual reports whether two rectangles match within Epsilon.
func (r Rect) ApproxEqual(other Rect) bool {
	return floatEqual(r.X, other.X) &&
		floatEqual(r.Y, other.Y) &&
		floatEqual(r.Width, other.Width) &&
		floatEqual(r.Height, other.Height)
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}
