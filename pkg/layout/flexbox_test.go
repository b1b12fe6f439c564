package layout

import (
	"math"
	"testing"
)

// newRow returns a laid-out-ready FlexBox of the given size.
func newRow(w, h float64) *FlexBox {
	f := NewFlexBox(nil, Row)
	f.SetSize(w, h)
	return f
}

func TestFlexBox_SpaceBetweenRow(t *testing.T) {
	f := newRow(300, 100)
	f.Justify = JustifySpaceBetween
	a, b, c := box(50, 20), box(50, 20), box(50, 20)
	f.Add(a, b, c)

	f.LayoutSelf()

	want := []float64{0, 125, 250}
	for i, child := range []*Element{a, b, c} {
		if x, _ := child.Position(); !almostEqual(x, want[i]) {
			t.Errorf("child %d x = %v, want %v", i, x, want[i])
		}
	}
}

func TestFlexBox_CenterSingleChild(t *testing.T) {
	f := newRow(200, 100)
	f.Justify = JustifyCenter
	child := box(50, 20)
	f.Add(child)

	f.LayoutSelf()

	if x, _ := child.Position(); !almostEqual(x, 75) {
		t.Errorf("child x = %v, want 75", x)
	}
}

func TestFlexBox_JustifyModesConserveSpan(t *testing.T) {
	// For every justify mode, leading space + children + effective gaps
	// + trailing space must exactly cover the available main axis.
	modes := []Justify{
		JustifyStart, JustifyEnd, JustifyCenter,
		JustifySpaceBetween, JustifySpaceAround, JustifySpaceEvenly,
	}
	for _, mode := range modes {
		f := newRow(377, 50)
		f.Gap = 7
		f.Justify = mode
		children := []*Element{box(40, 10), box(25, 10), box(60, 10)}
		for _, c := range children {
			f.Add(c)
		}
		f.LayoutSelf()

		free := 377.0 - (40 + 25 + 60 + 2*7)
		lead, spacing := distribute(mode, free, 3, 7)
		trail := free - lead - (spacing-7)*2
		if mode == JustifySpaceBetween || mode == JustifySpaceAround || mode == JustifySpaceEvenly {
			// Distributed modes put the free space into lead + gaps + trail.
			total := lead + 40 + spacing + 25 + spacing + 60 + trail
			if math.Abs(total-377) > 1e-6 {
				t.Errorf("%v: conserved span = %v, want 377", mode, total)
			}
		}

		// Positional check: children must be in order and inside the box.
		prevRight := -1.0
		for i, c := range children {
			x, _ := c.Position()
			w, _ := c.Size()
			if x < -1e-9 || x+w > 377+1e-9 {
				t.Errorf("%v: child %d out of bounds: x=%v w=%v", mode, i, x, w)
			}
			if x < prevRight {
				t.Errorf("%v: child %d overlaps predecessor", mode, i)
			}
			prevRight = x + w
		}
	}
}

func TestFlexBox_RowCrossAlignment(t *testing.T) {
	// Y-up: AlignStart is the top edge of the content rect.
	cases := []struct {
		align Align
		wantY float64
	}{
		{AlignStart, 80},
		{AlignCenter, 40},
		{AlignEnd, 0},
	}
	for _, tc := range cases {
		f := newRow(100, 100)
		f.Align = tc.align
		child := box(50, 20)
		f.Add(child)
		f.LayoutSelf()
		if _, y := child.Position(); !almostEqual(y, tc.wantY) {
			t.Errorf("%v: child y = %v, want %v", tc.align, y, tc.wantY)
		}
	}
}

func TestFlexBox_ColumnPlacesTopDown(t *testing.T) {
	f := NewFlexBox(nil, Column)
	f.SetSize(100, 300)
	f.Gap = 10
	a, b := box(40, 50), box(40, 60)
	f.Add(a, b)

	f.LayoutSelf()

	// First child's top edge at the content top (Y-up).
	if _, y := a.Position(); !almostEqual(y, 250) {
		t.Errorf("first child y = %v, want 250", y)
	}
	if _, y := b.Position(); !almostEqual(y, 180) {
		t.Errorf("second child y = %v, want 180 (50 + 10 gap below top)", y)
	}
	// Column cross axis is X.
	if x, _ := a.Position(); x != 0 {
		t.Errorf("first child x = %v, want 0", x)
	}
}

func TestFlexBox_StretchIsPlaceholder(t *testing.T) {
	// AlignStretch documents a no-op: the child keeps its natural size
	// and sits at the start edge.
	f := newRow(200, 100)
	f.Align = AlignStretch
	child := box(50, 20)
	f.Add(child)

	f.LayoutSelf()

	if w, h := child.Size(); w != 50 || h != 20 {
		t.Errorf("stretch resized child to (%v, %v), want (50, 20)", w, h)
	}
	if _, y := child.Position(); !almostEqual(y, 80) {
		t.Errorf("stretch child y = %v, want 80 (start edge)", y)
	}
}

func TestFlexBox_HiddenChildrenSkipped(t *testing.T) {
	f := newRow(300, 100)
	f.Justify = JustifySpaceBetween
	a, b, c := box(50, 20), box(50, 20), box(50, 20)
	b.SetHidden(true)
	f.Add(a, b, c)

	f.LayoutSelf()

	// Two visible children: SPACE_BETWEEN puts them at the edges.
	if x, _ := a.Position(); !almostEqual(x, 0) {
		t.Errorf("first visible x = %v, want 0", x)
	}
	if x, _ := c.Position(); !almostEqual(x, 250) {
		t.Errorf("last visible x = %v, want 250", x)
	}
}

func TestFlexBox_NoVisibleChildrenIsNoOp(t *testing.T) {
	f := newRow(300, 100)
	hiddenChild := box(50, 20)
	hiddenChild.SetHidden(true)
	hiddenChild.SetPosition(12, 34)
	f.Add(hiddenChild)

	f.LayoutSelf()

	if x, y := hiddenChild.Position(); x != 12 || y != 34 {
		t.Error("layout touched a hidden child")
	}
}

func TestFlexBox_OverConstrainedClampsFreeSpace(t *testing.T) {
	f := newRow(100, 50)
	f.Justify = JustifySpaceBetween
	a, b := box(80, 10), box(80, 10)
	f.Add(a, b)

	f.LayoutSelf()

	// free space clamps to zero, children pack from the start.
	if x, _ := a.Position(); x != 0 {
		t.Errorf("first child x = %v, want 0", x)
	}
	if x, _ := b.Position(); !almostEqual(x, 80) {
		t.Errorf("second child x = %v, want 80", x)
	}
}

func TestFlexBox_WrapBreaksLines(t *testing.T) {
	f := newRow(100, 100)
	f.Wrap = true
	f.Gap = 10
	a, b, c := box(40, 10), box(40, 20), box(40, 10)
	f.Add(a, b, c)

	f.LayoutSelf()

	// Line 1: a and b (40 + 10 + 40 = 90 <= 100); c overflows to line 2.
	if x, y := a.Position(); !almostEqual(x, 0) || !almostEqual(y, 90) {
		t.Errorf("a at (%v, %v), want (0, 90)", x, y)
	}
	if x, y := b.Position(); !almostEqual(x, 50) || !almostEqual(y, 80) {
		t.Errorf("b at (%v, %v), want (50, 80)", x, y)
	}
	// Line 2 starts below line 1's max cross size (20) plus the gap.
	if x, y := c.Position(); !almostEqual(x, 0) || !almostEqual(y, 60) {
		t.Errorf("c at (%v, %v), want (0, 60)", x, y)
	}
}

func TestFlexBox_WrapIgnoresJustify(t *testing.T) {
	f := newRow(300, 100)
	f.Wrap = true
	f.Justify = JustifyEnd
	child := box(50, 20)
	f.Add(child)

	f.LayoutSelf()

	if x, _ := child.Position(); x != 0 {
		t.Errorf("wrap mode applied justify: x = %v, want 0", x)
	}
}

func TestFlexBox_WrapLineCrossAlignment(t *testing.T) {
	f := newRow(200, 100)
	f.Wrap = true
	f.Align = AlignCenter
	short, tall := box(50, 10), box(50, 30)
	f.Add(short, tall)

	f.LayoutSelf()

	// Both in one line with cross size 30; the short child centers in it.
	if _, y := short.Position(); !almostEqual(y, 80) {
		t.Errorf("short child y = %v, want 80 (centered in 30-high line)", y)
	}
	if _, y := tall.Position(); !almostEqual(y, 70) {
		t.Errorf("tall child y = %v, want 70", y)
	}
}

func TestFlexBox_WrapOversizedChildGetsOwnLine(t *testing.T) {
	f := newRow(100, 200)
	f.Wrap = true
	f.Gap = 5
	big, small := box(150, 20), box(30, 10)
	f.Add(big, small)

	f.LayoutSelf()

	// The oversized child still occupies a line by itself.
	if x, y := big.Position(); x != 0 || !almostEqual(y, 180) {
		t.Errorf("big at (%v, %v), want (0, 180)", x, y)
	}
	if x, y := small.Position(); x != 0 || !almostEqual(y, 165) {
		t.Errorf("small at (%v, %v), want (0, 165)", x, y)
	}
}

func TestFlexBox_ChildHookRunsBeforePlacement(t *testing.T) {
	f := newRow(400, 100)
	f.SetPosition(0, 0)

	// A percent-sized child must be resolved against the flex content
	// box before distribution reads its size.
	child := NewElement(&Style{Width: Pct(25), Height: Px(10)})
	f.Add(child)

	f.LayoutSelf()

	if w, _ := child.Size(); !almostEqual(w, 100) {
		t.Errorf("child width = %v, want 100 (25%% of 400)", w)
	}
}

func TestFlexBox_RepeatedPassesAreIdempotent(t *testing.T) {
	f := newRow(300, 120)
	f.Justify = JustifySpaceAround
	f.Gap = 4
	children := []*Element{box(50, 20), box(60, 30), box(20, 10)}
	for _, c := range children {
		f.Add(c)
	}

	f.LayoutSelf()
	type rect struct{ x, y, w, h float64 }
	first := make([]rect, len(children))
	for i, c := range children {
		x, y := c.Position()
		w, h := c.Size()
		first[i] = rect{x, y, w, h}
	}

	for pass := 0; pass < 5; pass++ {
		f.LayoutSelf()
	}
	for i, c := range children {
		x, y := c.Position()
		w, h := c.Size()
		if (rect{x, y, w, h}) != first[i] {
			t.Errorf("child %d drifted after repeated passes", i)
		}
	}
}
