package geometry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRect_YUpEdges(t *testing.T) {
	r := RectFromXYWH(10, 20, 100, 50)
	if r.Top() != 70 {
		t.Errorf("Top = %v, want 70 (Y-up: origin is bottom-left)", r.Top())
	}
	if r.Right() != 110 {
		t.Errorf("Right = %v, want 110", r.Right())
	}
}

func TestRect_Inset(t *testing.T) {
	r := RectFromXYWH(0, 0, 100, 100)
	got := r.Inset(10, 20, 5, 15)
	want := Rect{X: 10, Y: 5, Width: 70, Height: 80}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Inset mismatch (-want +got):\n%s", diff)
	}
}

func TestRect_InsetCollapsesInsteadOfNegative(t *testing.T) {
	r := RectFromXYWH(0, 0, 30, 30)
	got := r.Inset(20, 20, 20, 20)
	if got.Width != 0 || got.Height != 0 {
		t.Errorf("over-inset size = (%v, %v), want (0, 0)", got.Width, got.Height)
	}
}

func TestRect_Contains(t *testing.T) {
	r := RectFromXYWH(0, 0, 10, 10)
	cases := []struct {
		p    Offset
		want bool
	}{
		{Offset{5, 5}, true},
		{Offset{0, 0}, true},
		{Offset{10, 10}, true},
		{Offset{-1, 5}, false},
		{Offset{5, 11}, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestRect_CenterAndSize(t *testing.T) {
	r := RectFromXYWH(10, 10, 20, 40)
	if c := r.Center(); c.X != 20 || c.Y != 30 {
		t.Errorf("Center = %v, want (20, 30)", c)
	}
	if s := r.Size(); s.Width != 20 || s.Height != 40 {
		t.Errorf("Size = %v, want (20, 40)", s)
	}
}

func TestRect_ApproxEqual(t *testing.T) {
	a := RectFromXYWH(0, 0, 10, 10)
	b := RectFromXYWH(0.00001, 0, 10, 10.00001)
	if !a.ApproxEqual(b) {
		t.Error("rects within epsilon reported unequal")
	}
	c := RectFromXYWH(0.1, 0, 10, 10)
	if a.ApproxEqual(c) {
		t.Error("rects beyond epsilon reported equal")
	}
}
