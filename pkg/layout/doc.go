// Package layout implements strut's constraint-based 2D layout engine:
// the node/container primitives plus the FlexBox and Grid placement
// algorithms.
//
// # Coordinates
//
// The engine is Y-up: a rectangle's origin is its bottom-left corner and
// row 0 of a Grid is the topmost row. "Top of cell" therefore means
// cellY + cellHeight - itemHeight.
//
// # Control flow
//
// A container's LayoutSelf resolves its own box, computes the inner
// content rectangle (minus padding), then either distributes children
// along one axis (FlexBox) or places them into a resolved row/column grid
// (Grid). Each visited child's own LayoutSelf runs first, so the parent
// can read the child's natural size and nested containers lay out their
// subtrees recursively.
//
// # Box model
//
// A node's Style carries width/height specs plus margins and padding. The
// placement math consumes width, height, and the container's padding;
// margins are carried on the record for authorship and document loading
// but do not participate in distribution.
//
// # Error handling
//
// The engine favors silent clamping over failing: out-of-range grid
// placements clamp into bounds, negative free space clamps to zero, and a
// degenerate SPACE_* justify downgrades to start or centered placement.
// No error or panic ever escapes a layout pass; every visible child ends
// with a deterministic rectangle. The one signalled defect class is grid
// auto-placement exhaustion, reported via Grid.OverflowCount and the
// OnOverflow hook.
//
// # Concurrency
//
// Layout is single-threaded and synchronous. A pass is idempotent and may
// run every frame; container-owned scratch buffers are grow-only so a
// steady-state pass allocates nothing. Concurrent passes over the same
// tree must be serialized by the caller.
package layout
