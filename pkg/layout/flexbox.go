package layout

import "github.com/go-strut/strut/pkg/geometry"

// FlexBox distributes its children along a single axis.
//
// In the default (non-wrap) mode the six [Justify] modes decide how free
// main-axis space turns into leading offset and inter-child spacing, and
// [Align] positions each child on the cross axis. In wrap mode children
// fill the main axis greedily and overflow onto new lines; Justify is not
// applied in wrap mode.
//
// FlexBox positions children but never resizes them on the main axis: a
// child's size comes from its own self-sizing hook. AlignStretch is a
// placeholder on the cross axis as well - it behaves like AlignStart and
// leaves the child's size untouched.
//
// Layout is a pure function of the children and this configuration: a pass
// holds no state between frames and repeated passes with unchanged inputs
// produce identical geometry.
type FlexBox struct {
	Container
	Direction Direction
	Gap       float64
	Wrap      bool
	Justify   Justify
	Align     Align
}

// NewFlexBox returns an empty FlexBox with the given style and direction.
func NewFlexBox(style *Style, dir Direction) *FlexBox {
	f := &FlexBox{Direction: dir}
	f.SetStyle(style)
	return f
}

// LayoutSelf resolves the FlexBox's own box, then places every visible
// child inside the content rectangle. Each child's own hook runs before it
// is read, so nested containers lay out their subtrees recursively.
func (f *FlexBox) LayoutSelf() {
	f.Element.LayoutSelf()

	if f.visibleCount() == 0 {
		return
	}
	for _, child := range f.Children() {
		if !child.Hidden() {
			child.LayoutSelf()
		}
	}

	content := f.ContentBounds()
	if f.Wrap {
		f.placeWrapped(content)
	} else {
		f.placeLine(content)
	}
}

// mainSize returns the extent of a child box along the main axis.
func (f *FlexBox) mainSize(w, h float64) float64 {
	if f.Direction == Row {
		return w
	}
	return h
}

// crossSize returns the extent of a child box along the cross axis.
func (f *FlexBox) crossSize(w, h float64) float64 {
	if f.Direction == Row {
		return h
	}
	return w
}

// placeLine lays out all visible children as a single run.
func (f *FlexBox) placeLine(content geometry.Rect) {
	count := 0
	totalMain := 0.0
	for _, child := range f.Children() {
		if child.Hidden() {
			continue
		}
		w, h := child.Size()
		totalMain += f.mainSize(w, h)
		count++
	}
	totalMain += f.Gap * float64(count-1)

	availMain := f.mainSize(content.Width, content.Height)
	free := availMain - totalMain
	lead, spacing := distribute(f.Justify, free, count, f.Gap)

	cursor := lead
	for _, child := range f.Children() {
		if child.Hidden() {
			continue
		}
		w, h := child.Size()
		f.placeChild(child, content, cursor, f.crossStart(content, w, h), w, h)
		cursor += f.mainSize(w, h) + spacing
	}
}

// placeWrapped lays out children in greedy lines. A line breaks when the
// next child would overflow the main axis; each completed line advances
// the cross cursor by its tallest child plus the gap.
func (f *FlexBox) placeWrapped(content geometry.Rect) {
	availMain := f.mainSize(content.Width, content.Height)
	children := f.Children()
	crossCursor := 0.0

	for start := 0; start < len(children); {
		// Collect one line: at least one child, then as many as fit.
		lineMain := 0.0
		lineCross := 0.0
		lineCount := 0
		end := start
		for ; end < len(children); end++ {
			child := children[end]
			if child.Hidden() {
				continue
			}
			w, h := child.Size()
			next := lineMain + f.mainSize(w, h)
			if lineCount > 0 {
				next += f.Gap
			}
			if next > availMain && lineCount > 0 {
				break
			}
			lineMain = next
			lineCount++
			if c := f.crossSize(w, h); c > lineCross {
				lineCross = c
			}
		}

		cursor := 0.0
		for _, child := range children[start:end] {
			if child.Hidden() {
				continue
			}
			w, h := child.Size()
			f.placeChild(child, content, cursor, crossCursor+f.lineCrossOffset(lineCross, w, h), w, h)
			cursor += f.mainSize(w, h) + f.Gap
		}
		crossCursor += lineCross + f.Gap
		start = end
	}
}

// crossStart returns the cross-axis offset for a child aligned against the
// whole content rect (non-wrap mode).
func (f *FlexBox) crossStart(content geometry.Rect, w, h float64) float64 {
	free := f.crossSize(content.Width, content.Height) - f.crossSize(w, h)
	if free < 0 {
		free = 0
	}
	switch f.Align {
	case AlignEnd:
		return free
	case AlignCenter:
		return free * 0.5
	default:
		// AlignStart; AlignStretch is a placeholder and does not resize.
		return 0
	}
}

// lineCrossOffset returns the cross-axis offset of a child within its line
// (wrap mode), measured from the line's leading cross edge.
func (f *FlexBox) lineCrossOffset(lineCross, w, h float64) float64 {
	free := lineCross - f.crossSize(w, h)
	if free < 0 {
		free = 0
	}
	switch f.Align {
	case AlignEnd:
		return free
	case AlignCenter:
		return free * 0.5
	default:
		return 0
	}
}

// placeChild commits a child position from main/cross offsets measured
// from the leading corner of the content rect. The leading corner is the
// top-left: with Y-up coordinates the main axis of a Column and the cross
// axis of a Row both grow downward from content.Top().
func (f *FlexBox) placeChild(child Node, content geometry.Rect, main, cross, w, h float64) {
	if f.Direction == Row {
		child.SetPosition(content.X+main, content.Top()-cross-h)
	} else {
		child.SetPosition(content.X+cross, content.Top()-main-h)
	}
}
