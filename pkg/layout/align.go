package layout

import "fmt"

// Direction selects the main axis of a FlexBox.
type Direction int

const (
	// Row places children left to right.
	Row Direction = iota
	// Column places children top to bottom.
	Column
)

// String returns a human-readable representation of the direction.
func (d Direction) String() string {
	switch d {
	case Row:
		return "row"
	case Column:
		return "column"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Justify controls how free space is distributed along an axis.
type Justify int

const (
	// JustifyStart packs children at the start edge.
	JustifyStart Justify = iota
	// JustifyEnd packs children at the end edge.
	JustifyEnd
	// JustifyCenter centers the children as a block.
	JustifyCenter
	// JustifySpaceBetween widens the gaps so the first and last child
	// touch the edges. A single child degrades to JustifyStart.
	JustifySpaceBetween
	// JustifySpaceAround widens the gaps with half-sized space at the
	// edges. A single child degrades to JustifyCenter.
	JustifySpaceAround
	// JustifySpaceEvenly inserts equal space between children and at
	// both edges. A single child degrades to JustifyCenter.
	JustifySpaceEvenly
)

// String returns a human-readable representation of the justify mode.
func (j Justify) String() string {
	switch j {
	case JustifyStart:
		return "start"
	case JustifyEnd:
		return "end"
	case JustifyCenter:
		return "center"
	case JustifySpaceBetween:
		return "space_between"
	case JustifySpaceAround:
		return "space_around"
	case JustifySpaceEvenly:
		return "space_evenly"
	default:
		return fmt.Sprintf("Justify(%d)", int(j))
	}
}

// Align controls positioning on the perpendicular axis.
type Align int

const (
	// AlignStart places the item at the start of the cross axis
	// (top for a Row, left for a Column).
	AlignStart Align = iota
	// AlignEnd places the item at the end of the cross axis.
	AlignEnd
	// AlignCenter centers the item on the cross axis.
	AlignCenter
	// AlignStretch grows the item to the full cross size where the
	// engine supports it (Grid items); FlexBox treats it as a
	// documented placeholder and does not resize. See the FlexBox docs.
	AlignStretch
)

// String returns a human-readable representation of the align mode.
func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	case AlignStretch:
		return "stretch"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// distribute computes the leading offset and the effective gap for placing
// count items with the given free space.
//
// The returned spacing is the full advance between neighbours: the SPACE_*
// modes add their distributed share on top of the configured gap, so the
// placed run plus leading and trailing space always conserves the available
// span. Divisions guard the degenerate single-item case, which falls back
// to start (SpaceBetween) or centered (SpaceAround, SpaceEvenly) placement.
func distribute(justify Justify, free float64, count int, gap float64) (lead, spacing float64) {
	if free < 0 {
		free = 0
	}
	spacing = gap
	switch justify {
	case JustifyEnd:
		lead = free
	case JustifyCenter:
		lead = free * 0.5
	case JustifySpaceBetween:
		if count > 1 {
			spacing += free / float64(count-1)
		}
	case JustifySpaceAround:
		if count > 0 {
			share := free / float64(count)
			spacing += share
			lead = share * 0.5
		}
	case JustifySpaceEvenly:
		if count > 0 {
			share := free / float64(count+1)
			spacing += share
			lead = share
		}
	}
	return lead, spacing
}

// distributeBlock computes the leading offset for positioning a whole
// resolved block (the grid's track span) inside free space. The SPACE_*
// modes collapse to centered placement: tracks keep their configured gaps,
// so inserting literal distributed gaps is approximated by centering the
// block instead.
func distributeBlock(justify Justify, free float64) float64 {
	if free < 0 {
		free = 0
	}
	switch justify {
	case JustifyEnd:
		return free
	case JustifyCenter, JustifySpaceBetween, JustifySpaceAround, JustifySpaceEvenly:
		return free * 0.5
	default:
		return 0
	}
}
