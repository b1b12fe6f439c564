package trace

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/go-strut/strut/pkg/layout"
)

func box(w, h float64) *layout.Element {
	e := layout.NewElement(nil)
	e.SetSize(w, h)
	return e
}

func TestTracer_CountsVisitedNodes(t *testing.T) {
	root := layout.NewFlexBox(nil, layout.Row)
	root.SetSize(200, 50)
	root.Add(box(40, 20))
	hidden := box(40, 20)
	hidden.SetHidden(true)
	root.Add(hidden)
	root.Add(box(40, 20))

	stats := New(nil).Run(root)

	if stats.Visited != 3 {
		t.Errorf("Visited = %d, want 3 (root plus two visible boxes)", stats.Visited)
	}
	if stats.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", stats.Skipped)
	}
}

func TestTracer_LogsResolvedGeometry(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	root := layout.NewFlexBox(nil, layout.Row)
	root.SetSize(200, 50)
	root.Add(box(40, 20))
	root.Add(box(40, 20))

	New(zap.New(core)).Run(root)

	entries := logs.FilterMessage("node resolved").All()
	if len(entries) != 3 {
		t.Fatalf("got %d node entries, want 3", len(entries))
	}
	second := entries[2].ContextMap()
	if second["node"] != "root/1" {
		t.Errorf("node path = %v, want root/1", second["node"])
	}
	if second["x"] != 40.0 {
		t.Errorf("logged x = %v, want 40", second["x"])
	}

	summary := logs.FilterMessage("layout pass").All()
	if len(summary) != 1 {
		t.Fatalf("got %d pass summaries, want 1", len(summary))
	}
	if summary[0].ContextMap()["nodes"] != int64(3) {
		t.Errorf("summary nodes = %v, want 3", summary[0].ContextMap()["nodes"])
	}
}

func TestTracer_SumsGridOverflow(t *testing.T) {
	g := layout.NewGrid(nil,
		[]layout.SizeSpec{layout.Px(50), layout.Px(50)},
		[]layout.SizeSpec{layout.Px(50), layout.Px(50)})
	g.QuietOverflow = true
	g.SetSize(100, 100)
	blocker := box(10, 10)
	g.Add(blocker)
	g.Place(blocker, layout.PlaceAt(0, 0).WithSpan(2, 2))
	for i := 0; i < 3; i++ {
		g.Add(box(10, 10))
	}

	stats := New(nil).Run(g)

	if stats.Overflow != 3 {
		t.Errorf("Overflow = %d, want 3", stats.Overflow)
	}
}

func TestTracer_RunsTheLayoutPass(t *testing.T) {
	root := layout.NewFlexBox(nil, layout.Row)
	root.SetSize(200, 50)
	b := box(40, 20)
	root.Add(b)

	New(nil).Run(root)

	if _, y := b.Position(); y != 30 {
		t.Errorf("box y = %v, want 30 (top aligned, Y-up)", y)
	}
}
