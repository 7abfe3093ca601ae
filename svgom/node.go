package svgom

import "github.com/alnah/go-om2svg/geom"

// Kind discriminates the node variants.
type Kind string

// Node kinds.
const (
	KindRoot       Kind = "root"
	KindGroup      Kind = "group"
	KindShape      Kind = "shape"
	KindText       Kind = "text"
	KindSpan       Kind = "tspan"
	KindTextPath   Kind = "textPath"
	KindGeneric    Kind = "generic"
	KindBackground Kind = "background"
)

// ShapeKind discriminates shape nodes.
type ShapeKind string

// Shape kinds.
const (
	ShapeCircle  ShapeKind = "circle"
	ShapeEllipse ShapeKind = "ellipse"
	ShapePath    ShapeKind = "path"
	ShapeRect    ShapeKind = "rect"
)

// Unit tags a Position.
type Unit string

// Position units. The zero value is a percentage.
const (
	UnitPercent Unit = ""
	UnitPixel   Unit = "px"
	UnitEM      Unit = "em"
)

// Position places text and spans.
type Position struct {
	X    float64 `yaml:"x" json:"x"`
	Y    float64 `yaml:"y" json:"y"`
	Unit Unit    `yaml:"unit" json:"unit"`

	// NoX marks a span that continues horizontally from the previous one;
	// only its vertical offset is written.
	NoX bool `yaml:"noX" json:"noX"`
}

// Node is one element of the document tree. Which fields are meaningful
// depends on Kind; the rest stay zero.
type Node struct {
	ID       string  `yaml:"id" json:"id"`
	Kind     Kind    `yaml:"kind" json:"kind"`
	Hidden   bool    `yaml:"hidden" json:"hidden"`
	Style    *Style  `yaml:"style" json:"style"`
	Children []*Node `yaml:"children" json:"children"`

	// Shapes, text and images.
	Shape     ShapeKind       `yaml:"shape" json:"shape"`
	Bounds    *geom.Rect      `yaml:"bounds" json:"bounds"`
	Radii     []float64       `yaml:"radii" json:"radii"`
	PathData  string          `yaml:"pathData" json:"pathData"`
	Path      *PathSpec       `yaml:"path" json:"path"`
	Transform *geom.Transform `yaml:"transform" json:"transform"`
	Position  *Position       `yaml:"position" json:"position"`
	Text      *TextRun        `yaml:"text" json:"text"`
	Href      string          `yaml:"href" json:"href"`

	// Content is the literal text of a span.
	Content string `yaml:"content" json:"content"`

	// Root only.
	ViewBox   *geom.Rect `yaml:"viewBox" json:"viewBox"`
	DocBounds *geom.Rect `yaml:"docBounds" json:"docBounds"`
	OffsetX   float64    `yaml:"offsetX" json:"offsetX"`
	OffsetY   float64    `yaml:"offsetY" json:"offsetY"`
	DPI       float64    `yaml:"dpi" json:"dpi"`
}

// Walk calls fn for n and every descendant in document order. Returning
// false from fn skips the node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// PathSpec is an anchor/control-point path.
type PathSpec struct {
	Points []PathPoint `yaml:"points" json:"points"`
	Closed bool        `yaml:"closed" json:"closed"`
}

// PathPoint is one anchor with optional outgoing (Forward) and incoming
// (Backward) control points. A missing control point makes the adjoining
// segment straight.
type PathPoint struct {
	Anchor   geom.Point  `yaml:"anchor" json:"anchor"`
	Forward  *geom.Point `yaml:"forward" json:"forward"`
	Backward *geom.Point `yaml:"backward" json:"backward"`
}
