package layout

import "github.com/go-strut/strut/pkg/geometry"

// Container is an ordered, mutable collection of child nodes. Insertion
// order is significant: children are visited in order for measurement and
// placement, and later children draw above earlier ones.
//
// Container embeds Element, so a container is itself a Node and nests
// arbitrarily inside other containers.
type Container struct {
	Element
	children []Node

	// onAdd and onRemove are extension hooks for container subtypes
	// (Grid uses onRemove to drop placement entries).
	onAdd    func(Node)
	onRemove func(Node)
}

// Add appends children to the container.
func (c *Container) Add(children ...Node) {
	for _, child := range children {
		c.children = append(c.children, child)
		c.attach(child)
	}
}

// Insert places a child at index i, shifting later children. An index out
// of range clamps to the nearest end.
func (c *Container) Insert(i int, child Node) {
	if i < 0 {
		i = 0
	}
	if i > len(c.children) {
		i = len(c.children)
	}
	c.children = append(c.children, nil)
	copy(c.children[i+1:], c.children[i:])
	c.children[i] = child
	c.attach(child)
}

// Remove detaches a child, preserving the order of the rest.
// Returns true if the child was found.
func (c *Container) Remove(child Node) bool {
	for i, n := range c.children {
		if n == child {
			copy(c.children[i:], c.children[i+1:])
			c.children[len(c.children)-1] = nil
			c.children = c.children[:len(c.children)-1]
			c.detach(child)
			return true
		}
	}
	return false
}

// Len returns the number of children.
func (c *Container) Len() int {
	return len(c.children)
}

// ChildAt returns the child at index i, or nil if out of range.
func (c *Container) ChildAt(i int) Node {
	if i < 0 || i >= len(c.children) {
		return nil
	}
	return c.children[i]
}

// Children returns the child slice in insertion order. Callers must not
// mutate it; use Add, Insert, and Remove.
func (c *Container) Children() []Node {
	return c.children
}

// ContentBounds returns the container's inner rectangle: its resolved box
// minus resolved padding. With the Y-up convention the bottom padding
// shifts the content origin upward.
func (c *Container) ContentBounds() geometry.Rect {
	return c.style.contentRect(c.Bounds())
}

// visibleCount returns the number of children participating in layout.
func (c *Container) visibleCount() int {
	n := 0
	for _, child := range c.children {
		if !child.Hidden() {
			n++
		}
	}
	return n
}

func (c *Container) attach(child Node) {
	if a, ok := child.(attachable); ok {
		a.setParent(c)
	}
	if c.onAdd != nil {
		c.onAdd(child)
	}
}

func (c *Container) detach(child Node) {
	if a, ok := child.(attachable); ok {
		a.setParent(nil)
	}
	if c.onRemove != nil {
		c.onRemove(child)
	}
}
