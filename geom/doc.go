// Package geom provides the 2D geometry primitives shared by the SVG printer:
// an affine transform, bounding rectangles and the coordinate rounding rules
// used for every number written to markup.
package geom
