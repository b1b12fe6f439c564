// Package trace instruments layout passes. A Tracer drives a root node's
// layout, walks the resolved tree, and logs per-node geometry plus pass
// totals through a zap logger. It couples to nodes only through the
// layout.Node contract and two optional capabilities, so any node type
// can be traced.
package trace

import (
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/go-strut/strut/pkg/layout"
)

// ChildLister is the capability of container nodes. Both FlexBox and
// Grid satisfy it through their embedded Container.
type ChildLister interface {
	Children() []layout.Node
}

// OverflowCounter is the capability of nodes that can run out of
// placement room. Grid satisfies it.
type OverflowCounter interface {
	OverflowCount() int
}

// PassStats summarizes one traced layout pass.
type PassStats struct {
	// Visited counts nodes that took part in the pass.
	Visited int
	// Skipped counts hidden subtree roots.
	Skipped int
	// Overflow sums grid overflow counts across the tree.
	Overflow int
	// Duration covers the layout pass itself, not the walk.
	Duration time.Duration
}

// Tracer runs and logs layout passes.
type Tracer struct {
	logger *zap.Logger
}

// New returns a Tracer writing to the given logger. A nil logger traces
// silently, keeping the stats useful without output.
func New(logger *zap.Logger) *Tracer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Tracer{logger: logger}
}

// Run performs one layout pass from root, walks the resolved tree, and
// returns the pass stats. Geometry is logged per node at debug level;
// the pass summary at info level.
func (t *Tracer) Run(root layout.Node) PassStats {
	start := time.Now()
	root.LayoutSelf()
	stats := PassStats{Duration: time.Since(start)}

	t.walk(root, "root", &stats)

	t.logger.Info("layout pass",
		zap.Int("nodes", stats.Visited),
		zap.Int("skipped", stats.Skipped),
		zap.Int("overflow", stats.Overflow),
		zap.Duration("duration", stats.Duration))
	return stats
}

func (t *Tracer) walk(n layout.Node, path string, stats *PassStats) {
	if n.Hidden() {
		stats.Skipped++
		return
	}
	stats.Visited++

	x, y := n.Position()
	w, h := n.Size()
	fields := []zap.Field{
		zap.String("node", path),
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.Float64("w", w),
		zap.Float64("h", h),
	}
	if oc, ok := n.(OverflowCounter); ok {
		count := oc.OverflowCount()
		stats.Overflow += count
		fields = append(fields, zap.Int("overflow", count))
	}
	t.logger.Debug("node resolved", fields...)

	if c, ok := n.(ChildLister); ok {
		for i, child := range c.Children() {
			t.walk(child, path+"/"+strconv.Itoa(i), stats)
		}
	}
}
