// Package widgets provides leaf nodes for strut layout trees.
//
// Widgets embed [layout.Element], so they satisfy the layout.Node contract
// and can be added to any FlexBox or Grid. Each widget computes a natural
// size before the engine runs; the engine only positions (and, for grid
// stretch, resizes) them.
package widgets
