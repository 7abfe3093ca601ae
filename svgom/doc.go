// Package svgom defines the document object model consumed by the SVG
// printer: a tree of layers (groups, shapes, text, images) with bounds,
// styles and, for text layers, the raw text runs with their paragraph and
// character style ranges.
//
// Trees are usually decoded from YAML or JSON (see om2svg.LoadDocument) and
// are read-mostly during printing: the printer attaches derived data (span
// children, path data, placement transforms) but never reorders children or
// changes bounds.
package svgom
