package textlayout

import (
	"fmt"

	"github.com/alnah/go-om2svg/geom"
	"github.com/alnah/go-om2svg/internal/pathdata"
	"github.com/alnah/go-om2svg/internal/units"
	"github.com/alnah/go-om2svg/svgom"
)

// PathSuffix is appended to a text node id to name its textPath child.
const PathSuffix = "-path"

// Layout resolves the text run of n into children, placement transform and
// base position. doc is the document bounds the click point is relative to.
//
// Nodes that already have children are left alone. On error n is not
// modified.
func Layout(n *svgom.Node, doc geom.Rect, dpi float64) error {
	if len(n.Children) > 0 {
		return nil
	}
	run := n.Text
	if run == nil {
		return ErrNoText
	}
	if run.Shape != nil && run.Shape.Path != nil &&
		(run.Shape.Kind == svgom.TextShapeOnCurve || run.Shape.Kind == svgom.TextShapeBox) {
		return layoutOnPath(n, run, dpi)
	}
	return layoutSimple(n, run, doc, dpi)
}

func layoutSimple(n *svgom.Node, run *svgom.TextRun, doc geom.Rect, dpi float64) error {
	pos := n.Position
	if pos == nil {
		pos = &svgom.Position{Unit: svgom.UnitPixel}
		if run.ClickPoint != nil {
			pos.X = units.PercentToPixels(run.ClickPoint.X, doc.Width())
			pos.Y = units.PercentToPixels(run.ClickPoint.Y, doc.Height())
		}
	}

	shape, w, h := textBox(n, run, dpi)
	tr := placement(run, shape, w, h, dpi)
	if tr != nil {
		pos = &svgom.Position{Unit: pos.Unit}
	}

	spans, err := Resolve(run, *pos, n.ID, dpi)
	if err != nil {
		return err
	}
	n.Position = pos
	if tr != nil {
		n.Transform = tr
	}
	n.Children = spans
	return nil
}

func layoutOnPath(n *svgom.Node, run *svgom.TextRun, dpi float64) error {
	d := pathdata.FromShape(run.Shape)
	if d == "" {
		return fmt.Errorf("%w: %s", ErrNoPath, n.ID)
	}

	shape, w, h := textBox(n, run, dpi)

	pos := svgom.Position{}
	spans, err := Resolve(run, pos, n.ID, dpi)
	if err != nil {
		return err
	}

	tp := &svgom.Node{
		ID:       n.ID + PathSuffix,
		Kind:     svgom.KindTextPath,
		PathData: d,
		Children: spans,
	}
	if len(run.Paragraphs) > 0 {
		tp.Style = ParagraphStyle(run.Paragraphs[0].Style)
	}

	n.Position = &pos
	if tr := placement(run, shape, w, h, dpi); tr != nil {
		n.Transform = tr
	}
	n.Children = []*svgom.Node{tp}
	return nil
}

// textBox returns the layer box and the size of the text box, which
// defaults to the layer box when the run has no bounds of its own.
func textBox(n *svgom.Node, run *svgom.TextRun, dpi float64) (shape geom.Rect, w, h float64) {
	if n.Bounds != nil {
		shape = *n.Bounds
	}
	w, h = shape.Width(), shape.Height()
	if run.Bounds != nil {
		b := lengthRect(run.Bounds, dpi)
		w, h = b.Width(), b.Height()
	}
	return shape, w, h
}

func placement(run *svgom.TextRun, shape geom.Rect, textW, textH, dpi float64) *geom.Transform {
	if run.Transform == nil {
		return nil
	}
	return PlaceTransform(run.Transform, shape, geom.Rect{Right: textW, Bottom: textH}, maxFontPx(run, dpi))
}

// maxFontPx is the font size of the first style run in pixels.
func maxFontPx(run *svgom.TextRun, dpi float64) float64 {
	if len(run.Styles) == 0 || run.Styles[0].Style.Size == nil {
		return 0
	}
	size := run.Styles[0].Style.Size
	px, _ := units.ToPixels(size.Value, size.Unit, dpi)
	return px
}

func lengthRect(r *svgom.LengthRect, dpi float64) geom.Rect {
	px := func(l svgom.Length) float64 {
		v, _ := units.ToPixels(l.Value, l.Unit, dpi)
		return v
	}
	return geom.Rect{Top: px(r.Top), Left: px(r.Left), Right: px(r.Right), Bottom: px(r.Bottom)}
}
