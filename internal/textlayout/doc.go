// Package textlayout turns the raw text runs of text layers into span
// trees.
//
// A run carries two partitions of the same character range: paragraphs and
// character style runs. Merge reconciles them into slices, Resolve turns the
// slices into tspan nodes with line offsets, and PlaceTransform computes the
// placement matrix of the enclosing text element. Layout ties these together
// for one text node, including text that follows a path.
//
// Character indices count runes of the run content.
package textlayout
