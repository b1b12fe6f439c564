// Package uidl loads declarative UI documents into layout node trees.
//
// A document is a YAML mapping with exactly one node kind key at each
// level: flex, grid, box, label, or spacer. Container kinds carry a
// children list; grid children may carry a place block pinning them to
// explicit tracks. Size specs are written as strings: "120px", "50%",
// "auto", or "fill" (a bare number reads as pixels).
//
//	flex:
//	  direction: row
//	  gap: 8
//	  justify: space-between
//	  children:
//	    - box: {width: 100px, height: 40px, color: "#336699"}
//	    - label: {text: hello}
//
// Loading never runs layout; it only builds the tree. Errors carry the
// slash-separated document location of the offending node.
package uidl
