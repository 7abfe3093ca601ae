package svgom

import "github.com/alnah/go-om2svg/geom"

// Text shape kinds.
const (
	TextShapePoint     = "point"
	TextShapeParagraph = "paragraph"
	TextShapeBox       = "box"
	TextShapeOnCurve   = "onACurve"
)

// TextRun is the raw text of a text layer: the content plus two independent
// partitions of its character indices. Both partitions are ordered,
// non-overlapping, contiguous and cover the same extent; neither refines the
// other.
type TextRun struct {
	Content    string           `yaml:"content" json:"content"`
	Paragraphs []ParagraphRange `yaml:"paragraphs" json:"paragraphs"`
	Styles     []StyleRange     `yaml:"styles" json:"styles"`

	// Bounds is the text box relative to the layer, in pt or mm.
	Bounds *LengthRect `yaml:"bounds" json:"bounds"`
	// BoundingBox is the ink box of text on a path. Placement always uses
	// Bounds.
	BoundingBox *LengthRect `yaml:"boundingBox" json:"boundingBox"`
	Transform   *Matrix     `yaml:"transform" json:"transform"`
	Shape       *TextShape  `yaml:"shape" json:"shape"`

	// ClickPoint is where the text was anchored, in percent of the
	// document size.
	ClickPoint *geom.Point `yaml:"clickPoint" json:"clickPoint"`
}

// ParagraphRange is one authored paragraph, [From, To).
type ParagraphRange struct {
	From  int            `yaml:"from" json:"from"`
	To    int            `yaml:"to" json:"to"`
	Style ParagraphStyle `yaml:"style" json:"style"`
}

// ParagraphStyle carries paragraph-level style.
type ParagraphStyle struct {
	Align string `yaml:"align" json:"align"` // "left", "center", "right"
}

// StyleRange is one run of uniform character style, [From, To).
type StyleRange struct {
	From  int            `yaml:"from" json:"from"`
	To    int            `yaml:"to" json:"to"`
	Style CharacterStyle `yaml:"style" json:"style"`
}

// CharacterStyle carries character-level style.
type CharacterStyle struct {
	FontFamily string  `yaml:"fontFamily" json:"fontFamily"`
	Size       *Length `yaml:"size" json:"size"`
	Color      string  `yaml:"color" json:"color"`
	Bold       bool    `yaml:"bold" json:"bold"`
	Italic     bool    `yaml:"italic" json:"italic"`
	Baseline   string  `yaml:"baseline" json:"baseline"` // "super", "sub"
}

// TextShape describes how the text is laid out: at a point, in a box, or
// along a curve.
type TextShape struct {
	Kind        string    `yaml:"kind" json:"kind"`
	Orientation string    `yaml:"orientation" json:"orientation"`
	Path        *PathSpec `yaml:"path" json:"path"`
}

// Length is a value tagged with a unit ("pt", "mm", "px").
type Length struct {
	Value float64 `yaml:"value" json:"value"`
	Unit  string  `yaml:"unit" json:"unit"`
}

// LengthRect is a box whose edges are Lengths.
type LengthRect struct {
	Top    Length `yaml:"top" json:"top"`
	Left   Length `yaml:"left" json:"left"`
	Right  Length `yaml:"right" json:"right"`
	Bottom Length `yaml:"bottom" json:"bottom"`
}

// Matrix is a raw text transform as authored: xx, xy, yx, yy, tx, ty.
type Matrix struct {
	XX float64 `yaml:"xx" json:"xx"`
	XY float64 `yaml:"xy" json:"xy"`
	YX float64 `yaml:"yx" json:"yx"`
	YY float64 `yaml:"yy" json:"yy"`
	TX float64 `yaml:"tx" json:"tx"`
	TY float64 `yaml:"ty" json:"ty"`
}
