package layout

import (
	"fmt"
	"log"

	"github.com/go-strut/strut/pkg/geometry"
)

// AutoFlow selects the scan order for auto-placed grid children.
type AutoFlow int

const (
	// FlowRow fills rows left to right, top to bottom.
	FlowRow AutoFlow = iota
	// FlowColumn fills columns top to bottom, left to right.
	FlowColumn
)

// String returns a human-readable representation of the flow.
func (f AutoFlow) String() string {
	switch f {
	case FlowRow:
		return "row"
	case FlowColumn:
		return "column"
	default:
		return fmt.Sprintf("AutoFlow(%d)", int(f))
	}
}

// GridPlacement pins a child to explicit grid tracks. Row and Col of -1
// request auto-placement. Spans are clamped to at least one track at
// construction.
type GridPlacement struct {
	Row     int
	Col     int
	RowSpan int
	ColSpan int
}

// PlaceAt returns a single-cell placement at the given row and column.
// Row 0 is the topmost row.
func PlaceAt(row, col int) GridPlacement {
	return GridPlacement{Row: row, Col: col, RowSpan: 1, ColSpan: 1}
}

// WithSpan returns a copy of the placement covering rowSpan x colSpan
// tracks. Spans below one clamp to one.
func (p GridPlacement) WithSpan(rowSpan, colSpan int) GridPlacement {
	if rowSpan < 1 {
		rowSpan = 1
	}
	if colSpan < 1 {
		colSpan = 1
	}
	p.RowSpan, p.ColSpan = rowSpan, colSpan
	return p
}

// explicit reports whether both axes are pinned. A placement with only one
// pinned axis falls back to auto-placement.
func (p GridPlacement) explicit() bool {
	return p.Row >= 0 && p.Col >= 0
}

// Grid places children into a two-axis arrangement of tracks.
//
// Columns and Rows hold the explicit track specs; an empty axis defaults
// to a single Auto track. When visible children outnumber the explicit
// cells, implicit Auto tracks are generated along the flow axis. Track
// pixel sizes resolve independently per axis, then the whole block is
// positioned inside the content rectangle by JustifyContent and
// AlignContent (the SPACE_* modes collapse to centered placement there).
//
// Children with a [GridPlacement] land on their clamped tracks; everyone
// else is auto-placed at the next free cell in flow order. Auto-placed
// children occupy exactly one cell and never overwrite an occupied one.
// When no free cell remains, placement saturates to cell (0,0): the pass
// still completes, the node is counted in OverflowCount, OnOverflow fires
// if set, and a one-shot warning is logged unless QuietOverflow is set.
//
// Scratch buffers (track arrays, the occupancy bitmap) are owned by the
// grid and grow-only, so a steady-state pass allocates nothing.
type Grid struct {
	Container
	Columns   []SizeSpec
	Rows      []SizeSpec
	ColumnGap float64
	RowGap    float64
	Flow      AutoFlow

	// JustifyItems/AlignItems position each child inside its cell.
	// AlignStretch grows auto-sized children to the cell.
	JustifyItems Align
	AlignItems   Align

	// JustifyContent/AlignContent position the resolved track block
	// inside the content rectangle.
	JustifyContent Justify
	AlignContent   Justify

	// OnOverflow is invoked for every node auto-placement could not fit.
	OnOverflow func(Node)
	// QuietOverflow suppresses the one-shot overflow log warning.
	QuietOverflow bool

	placements map[Node]GridPlacement

	// Per-instance scratch, grown but never shrunk across passes.
	colSpecs, rowSpecs []SizeSpec
	colSizes, rowSizes []float64
	colStarts          []float64 // left edge per column
	rowTops            []float64 // top edge per row (Y-up: row 0 highest)
	occupied           []bool
	cursor             int
	overflowCount      int
	overflowWarned     bool
}

// NewGrid returns an empty grid with the given style and explicit column
// and row specs. Either axis may be nil to default to one Auto track.
func NewGrid(style *Style, columns, rows []SizeSpec) *Grid {
	g := &Grid{
		Columns:    columns,
		Rows:       rows,
		placements: make(map[Node]GridPlacement),
	}
	g.SetStyle(style)
	g.onRemove = func(n Node) {
		delete(g.placements, n)
	}
	return g
}

// Place pins a child to an explicit placement. The entry is dropped
// automatically when the child is removed from the grid.
func (g *Grid) Place(child Node, p GridPlacement) {
	if p.RowSpan < 1 {
		p.RowSpan = 1
	}
	if p.ColSpan < 1 {
		p.ColSpan = 1
	}
	g.placements[child] = p
}

// Placement returns the child's explicit placement, if any.
func (g *Grid) Placement(child Node) (GridPlacement, bool) {
	p, ok := g.placements[child]
	return p, ok
}

// OverflowCount returns the number of children the last pass could not
// auto-place. It resets at the start of every pass.
func (g *Grid) OverflowCount() int {
	return g.overflowCount
}

// LayoutSelf resolves the grid's own box, resolves tracks, and places
// every visible child. See the Grid type documentation for the rules.
func (g *Grid) LayoutSelf() {
	g.Element.LayoutSelf()
	g.overflowCount = 0
	g.cursor = 0

	visible := g.visibleCount()
	if visible == 0 {
		return
	}
	content := g.ContentBounds()

	// Explicit track counts, normalized to at least one Auto track, plus
	// implicit tracks when the explicit cells cannot hold every child.
	g.colSpecs = appendTracks(growSpecs(g.colSpecs, len(g.Columns)+visible), g.Columns)
	g.rowSpecs = appendTracks(growSpecs(g.rowSpecs, len(g.Rows)+visible), g.Rows)
	explicitCols := len(g.colSpecs)
	explicitRows := len(g.rowSpecs)
	if overflow := visible - explicitCols*explicitRows; overflow > 0 {
		if g.Flow == FlowRow {
			extra := (overflow + explicitCols - 1) / explicitCols
			g.rowSpecs = appendAuto(g.rowSpecs, extra)
		} else {
			extra := (overflow + explicitRows - 1) / explicitRows
			g.colSpecs = appendAuto(g.colSpecs, extra)
		}
	}
	cols := len(g.colSpecs)
	rows := len(g.rowSpecs)

	// Per-axis pixel resolution and block placement.
	g.colSizes = resolveTracks(g.colSpecs, content.Width, g.ColumnGap, g.colSizes)
	g.rowSizes = resolveTracks(g.rowSpecs, content.Height, g.RowGap, g.rowSizes)

	blockW := sum(g.colSizes) + g.ColumnGap*float64(cols-1)
	blockH := sum(g.rowSizes) + g.RowGap*float64(rows-1)
	originX := content.X + distributeBlock(g.JustifyContent, content.Width-blockW)
	blockTop := content.Top() - distributeBlock(g.AlignContent, content.Height-blockH)

	// Track start positions: columns left to right, rows top to bottom.
	g.colStarts = growFloats(g.colStarts, cols)
	x := originX
	for i, w := range g.colSizes {
		g.colStarts[i] = x
		x += w + g.ColumnGap
	}
	g.rowTops = growFloats(g.rowTops, rows)
	top := blockTop
	for i, h := range g.rowSizes {
		g.rowTops[i] = top
		top -= h + g.RowGap
	}

	// First pass: reserve cells claimed by explicit placements so
	// auto-placement can never collide with them.
	g.occupied = growBools(g.occupied, rows*cols)
	for _, child := range g.Children() {
		if child.Hidden() {
			continue
		}
		if p, ok := g.placements[child]; ok && p.explicit() {
			g.markOccupied(g.clampPlacement(p, rows, cols))
		}
	}

	// Second pass, in insertion order: commit geometry.
	for _, child := range g.Children() {
		if child.Hidden() {
			continue
		}
		var p GridPlacement
		if q, ok := g.placements[child]; ok && q.explicit() {
			p = g.clampPlacement(q, rows, cols)
		} else {
			p = g.autoPlace(child, rows, cols)
		}
		g.placeInCell(child, p)
	}
}

// clampPlacement forces an explicit placement into grid bounds. Rows and
// columns clamp to valid track indices; spans shrink to fit.
func (g *Grid) clampPlacement(p GridPlacement, rows, cols int) GridPlacement {
	p.Row = clampInt(p.Row, 0, rows-1)
	p.Col = clampInt(p.Col, 0, cols-1)
	p.RowSpan = clampInt(p.RowSpan, 1, rows-p.Row)
	p.ColSpan = clampInt(p.ColSpan, 1, cols-p.Col)
	return p
}

// markOccupied writes every cell covered by the placement.
func (g *Grid) markOccupied(p GridPlacement) {
	for r := p.Row; r < p.Row+p.RowSpan; r++ {
		for c := p.Col; c < p.Col+p.ColSpan; c++ {
			g.occupied[r*len(g.colSpecs)+c] = true
		}
	}
}

// autoPlace finds the next free cell scanning from the cursor in flow
// order, wrapping across the whole grid. The claimed cell is marked
// immediately so later auto children cannot collide; only auto placements
// advance the cursor. With no free cell left, placement saturates to cell
// (0,0) and the overflow is signalled.
func (g *Grid) autoPlace(child Node, rows, cols int) GridPlacement {
	total := rows * cols
	for k := 0; k < total; k++ {
		i := (g.cursor + k) % total
		// i is a flow-order index; the bitmap is row-major.
		var r, c int
		if g.Flow == FlowRow {
			r, c = i/cols, i%cols
		} else {
			c, r = i/rows, i%rows
		}
		if g.occupied[r*cols+c] {
			continue
		}
		g.occupied[r*cols+c] = true
		g.cursor = i + 1
		return GridPlacement{Row: r, Col: c, RowSpan: 1, ColSpan: 1}
	}

	g.overflowCount++
	if g.OnOverflow != nil {
		g.OnOverflow(child)
	}
	if !g.overflowWarned && !g.QuietOverflow {
		log.Printf("WARNING: Grid auto-placement exhausted: %d x %d cells are all occupied; "+
			"overflowing children saturate to cell (0,0) and may overlap. "+
			"Add tracks or set explicit placements.", rows, cols)
		g.overflowWarned = true
	}
	return GridPlacement{Row: 0, Col: 0, RowSpan: 1, ColSpan: 1}
}

// cellRect returns the rectangle covered by a clamped placement, spanning
// track sizes plus the internal gaps.
func (g *Grid) cellRect(p GridPlacement) geometry.Rect {
	w := g.ColumnGap * float64(p.ColSpan-1)
	for c := p.Col; c < p.Col+p.ColSpan; c++ {
		w += g.colSizes[c]
	}
	h := g.RowGap * float64(p.RowSpan-1)
	for r := p.Row; r < p.Row+p.RowSpan; r++ {
		h += g.rowSizes[r]
	}
	top := g.rowTops[p.Row]
	return geometry.Rect{X: g.colStarts[p.Col], Y: top - h, Width: w, Height: h}
}

// placeInCell runs the child's self-sizing hook, decides its target size,
// and commits size then position. A dimension stretches to the cell when
// the matching item alignment is AlignStretch and the child's spec leaves
// it auto; both dimensions clamp to the cell.
func (g *Grid) placeInCell(child Node, p GridPlacement) {
	cell := g.cellRect(p)
	child.LayoutSelf()
	w, h := child.Size()

	style := child.Style()
	if g.JustifyItems == AlignStretch && (style == nil || style.Width.Kind == Auto) {
		w = cell.Width
	}
	if g.AlignItems == AlignStretch && (style == nil || style.Height.Kind == Auto) {
		h = cell.Height
	}
	if w > cell.Width {
		w = cell.Width
	}
	if h > cell.Height {
		h = cell.Height
	}

	var x float64
	switch g.JustifyItems {
	case AlignEnd:
		x = cell.X + cell.Width - w
	case AlignCenter:
		x = cell.X + (cell.Width-w)*0.5
	default: // AlignStart, AlignStretch
		x = cell.X
	}
	var y float64
	switch g.AlignItems {
	case AlignEnd:
		y = cell.Y
	case AlignCenter:
		y = cell.Y + (cell.Height-h)*0.5
	default: // AlignStart, AlignStretch: top of cell, Y-up
		y = cell.Y + cell.Height - h
	}

	child.SetSize(w, h)
	child.SetPosition(x, y)
}

// appendTracks copies the explicit specs into the scratch slice,
// normalizing an empty axis to a single Auto track.
func appendTracks(dst, explicit []SizeSpec) []SizeSpec {
	if len(explicit) == 0 {
		return append(dst, AutoSpec())
	}
	return append(dst, explicit...)
}

// appendAuto appends n implicit Auto tracks.
func appendAuto(dst []SizeSpec, n int) []SizeSpec {
	for i := 0; i < n; i++ {
		dst = append(dst, AutoSpec())
	}
	return dst
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sum(values []float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}
