// Package writer serializes a document tree to SVG.
//
// Print prepares the tree (text layout, path data), consolidates the
// stylesheet, then walks the tree depth first and dispatches on node kind.
// All mutable state lives in a context built per call, so independent trees
// can be printed concurrently.
//
// A node that has both a filter effect and a stroke is written as a group
// carrying the filter around the shape, followed by a <use> of the shape
// outside the group that draws only the stroke. Renderers otherwise stroke
// before filtering.
package writer
