package layout

import "testing"

// box returns a leaf node with the given natural size and no style.
func box(w, h float64) *Element {
	e := NewElement(nil)
	e.SetSize(w, h)
	return e
}

func TestContainer_AddRemovePreservesOrder(t *testing.T) {
	var c Container
	a, b, d := box(1, 1), box(2, 2), box(3, 3)
	c.Add(a, b, d)

	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
	if !c.Remove(b) {
		t.Fatal("Remove returned false for attached child")
	}
	if c.Remove(b) {
		t.Fatal("Remove returned true for detached child")
	}
	if c.ChildAt(0) != Node(a) || c.ChildAt(1) != Node(d) {
		t.Error("removal did not preserve sibling order")
	}
	if b.Parent() != nil {
		t.Error("removed child still has a parent")
	}
}

func TestContainer_Insert(t *testing.T) {
	var c Container
	a, b := box(1, 1), box(2, 2)
	c.Add(a)
	c.Insert(0, b)
	if c.ChildAt(0) != Node(b) {
		t.Error("Insert(0) did not prepend")
	}
	// Out-of-range indices clamp instead of panicking.
	d := box(3, 3)
	c.Insert(99, d)
	if c.ChildAt(c.Len()-1) != Node(d) {
		t.Error("Insert past end did not append")
	}
}

func TestContainer_Hooks(t *testing.T) {
	var c Container
	var added, removed []Node
	c.onAdd = func(n Node) { added = append(added, n) }
	c.onRemove = func(n Node) { removed = append(removed, n) }

	a := box(1, 1)
	c.Add(a)
	c.Remove(a)
	if len(added) != 1 || len(removed) != 1 {
		t.Errorf("hooks fired add=%d remove=%d, want 1 and 1", len(added), len(removed))
	}
}

func TestContainer_ContentBoundsSubtractsPadding(t *testing.T) {
	var c Container
	c.SetStyle(&Style{
		Width:   AutoSpec(),
		Height:  AutoSpec(),
		Padding: EdgeSpecs{Left: Px(10), Right: Px(20), Bottom: Px(5), Top: Px(15)},
	})
	c.SetPosition(100, 100)
	c.SetSize(200, 100)

	content := c.ContentBounds()
	if content.X != 110 || content.Y != 105 {
		t.Errorf("content origin = (%v, %v), want (110, 105)", content.X, content.Y)
	}
	if content.Width != 170 || content.Height != 80 {
		t.Errorf("content size = (%v, %v), want (170, 80)", content.Width, content.Height)
	}
}

func TestContainer_ContentBoundsNilStyle(t *testing.T) {
	var c Container
	c.SetSize(80, 60)
	content := c.ContentBounds()
	if content.Width != 80 || content.Height != 60 {
		t.Errorf("nil style content = %+v, want full box", content)
	}
}

func TestContainer_PercentPaddingResolvesAgainstOwnBox(t *testing.T) {
	var c Container
	c.SetStyle(&Style{Padding: EdgesAll(Pct(10))})
	c.SetSize(200, 100)
	content := c.ContentBounds()
	// 10% of width on left/right, 10% of height top/bottom.
	if content.Width != 160 || content.Height != 80 {
		t.Errorf("content size = (%v, %v), want (160, 80)", content.Width, content.Height)
	}
}

func TestElement_LayoutSelfResolvesFixedSpecs(t *testing.T) {
	var c Container
	c.SetSize(400, 200)

	child := NewElement(&Style{Width: Pct(50), Height: Px(30)})
	child.SetSize(7, 7) // stale natural size, must be overwritten
	c.Add(child)
	child.LayoutSelf()

	w, h := child.Size()
	if w != 200 || h != 30 {
		t.Errorf("resolved size = (%v, %v), want (200, 30)", w, h)
	}
}

func TestElement_LayoutSelfKeepsNaturalSizeForFlexible(t *testing.T) {
	var c Container
	c.SetSize(400, 200)

	child := NewElement(&Style{Width: AutoSpec(), Height: FillSpec()})
	child.SetSize(33, 44)
	c.Add(child)
	child.LayoutSelf()

	w, h := child.Size()
	if w != 33 || h != 44 {
		t.Errorf("flexible specs changed natural size: (%v, %v), want (33, 44)", w, h)
	}
}

func TestElement_SetSizeClampsNegative(t *testing.T) {
	e := box(1, 1)
	e.SetSize(-10, -10)
	if w, h := e.Size(); w != 0 || h != 0 {
		t.Errorf("negative size = (%v, %v), want (0, 0)", w, h)
	}
}

func TestElement_HiddenFlag(t *testing.T) {
	e := box(1, 1)
	if e.Hidden() {
		t.Error("new element hidden by default")
	}
	e.SetHidden(true)
	if !e.Hidden() {
		t.Error("SetHidden(true) not reflected")
	}
}
