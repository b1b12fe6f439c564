package layout

import (
	"fmt"
	"math"
)

// SpecKind identifies how a SizeSpec value is interpreted.
type SpecKind int

const (
	// Pixels is an absolute size in pixels.
	Pixels SpecKind = iota
	// Percent is a percentage (0-100 scale) of the available space.
	Percent
	// Auto sizes from content: the owner keeps its natural size and the
	// resolving container may grant it leftover space.
	Auto
	// Fill requests a share of the leftover space after fixed entries
	// are resolved.
	Fill
)

// String returns a human-readable representation of the spec kind.
func (k SpecKind) String() string {
	switch k {
	case Pixels:
		return "pixels"
	case Percent:
		return "percent"
	case Auto:
		return "auto"
	case Fill:
		return "fill"
	default:
		return fmt.Sprintf("SpecKind(%d)", int(k))
	}
}

// SizeSpec is a tagged dimension: an absolute pixel count, a percentage of
// available space, or a flexible request (Auto/Fill) resolved by the
// containing engine's distribution step.
//
// SizeSpec is an immutable value; create one with [Px], [Pct], [AutoSpec],
// or [FillSpec] and copy it freely.
type SizeSpec struct {
	Kind  SpecKind
	Value float64
}

// Px returns a SizeSpec for an absolute pixel size.
func Px(v float64) SizeSpec {
	return SizeSpec{Kind: Pixels, Value: v}
}

// Pct returns a SizeSpec for a percentage (50 = 50%) of available space.
func Pct(v float64) SizeSpec {
	return SizeSpec{Kind: Percent, Value: v}
}

// AutoSpec returns a SizeSpec that sizes from content.
func AutoSpec() SizeSpec {
	return SizeSpec{Kind: Auto}
}

// FillSpec returns a SizeSpec that takes a share of leftover space.
func FillSpec() SizeSpec {
	return SizeSpec{Kind: Fill}
}

// IsFlexible reports whether the spec is resolved by a distribution step
// rather than directly (Auto and Fill).
func (s SizeSpec) IsFlexible() bool {
	return s.Kind == Auto || s.Kind == Fill
}

// Resolve computes the pixel value of the spec.
//
// Pixels resolves to its value, Percent to value/100 of available, and the
// flexible kinds to fallback (the caller's distribution step decides what
// flexible entries receive). The result never goes below min or negative.
func (s SizeSpec) Resolve(min, available, fallback float64) float64 {
	var v float64
	switch s.Kind {
	case Pixels:
		v = s.Value
	case Percent:
		v = s.Value / 100 * available
	default:
		v = fallback
	}
	return math.Max(0, math.Max(min, v))
}
