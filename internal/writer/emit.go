package writer

import (
	"fmt"

	"github.com/alnah/go-om2svg/internal/stylesheet"
	"github.com/alnah/go-om2svg/svgom"
)

// emitResult reports what writing one node produced.
type emitResult struct {
	// id is the generated id of the element, set when it was wrapped.
	id           string
	wroteWrapper bool
}

// element writes the markup of one node. wrapped is set inside the
// effect+stroke group: the element must then carry a generated id and
// leave its stroke to the <use> that follows the group.
type element func(n *svgom.Node, wrapped bool) emitResult

func (c *context) writeLayer(n *svgom.Node) emitResult {
	if n.Hidden || c.isSkipped(n) {
		return emitResult{}
	}
	switch n.Kind {
	case svgom.KindBackground:
		return emitResult{}
	case svgom.KindShape:
		if n.Bounds == nil {
			c.warn(n, ErrNoBounds)
			return emitResult{}
		}
		if _, ok := shapeTag(n.Shape); !ok {
			c.warn(n, fmt.Errorf("%w: %q", ErrUnknownShape, n.Shape))
			return emitResult{}
		}
		return c.gWrap(n, c.writeShape)
	case svgom.KindText:
		return c.gWrap(n, c.writeText)
	case svgom.KindGeneric:
		if n.Bounds == nil {
			c.warn(n, ErrNoBounds)
			return emitResult{}
		}
		return c.gWrap(n, c.writeImage)
	case svgom.KindGroup:
		c.writeGroup(n)
		return emitResult{}
	default:
		c.warn(n, fmt.Errorf("%w: %q", ErrUnknownKind, n.Kind))
		return emitResult{}
	}
}

// gWrap writes n through fn, wrapping it when it has both an effect and a
// stroke: the group carries the filter, the element inside draws without
// stroke, and a <use> outside the group redraws only the stroke.
func (c *context) gWrap(n *svgom.Node, fn element) emitResult {
	if !n.Style.HasEffect() || !n.Style.HasStroke() {
		return fn(n, false)
	}

	c.write(c.indent() + "<g")
	if n.ID != "" {
		c.write(` id="` + escape(n.ID) + `"`)
	}
	if def, ok := c.sheet.Definition(n, stylesheet.KindFilter); ok {
		c.write(` filter="url(#` + escape(def.ID) + `)"`)
	}
	c.write(">" + c.eol())
	c.Indent()
	res := fn(n, true)
	c.Undent()
	c.Line("</g>")

	stroke, _ := c.sheet.Block(n).Value("stroke")
	// The clone keeps its class fill, so the fill is painted a second time
	// without the filter; this matches the established output.
	c.Line(`<use xlink:href="#` + escape(res.id) + `" style="stroke: ` + escape(stroke) + `; fill: none; filter: none;"/>`)
	res.wroteWrapper = true
	return res
}

// elementID writes a generated id when wrapped.
func (c *context) elementID(prefix string, wrapped bool) string {
	if !wrapped {
		return ""
	}
	id := c.alloc.NextUnique(prefix)
	c.write(` id="` + escape(id) + `"`)
	return id
}

// suppressStroke lets a wrapped element take its stroke from the enclosing
// group, which has none, while the <use> clone inherits the stroke set on
// the <use>.
func (c *context) suppressStroke(wrapped bool) {
	if wrapped {
		c.write(` style="stroke: inherit; filter: none;"`)
	}
}

func shapeTag(s svgom.ShapeKind) (string, bool) {
	switch s {
	case svgom.ShapeCircle, svgom.ShapeEllipse, svgom.ShapePath, svgom.ShapeRect:
		return string(s), true
	}
	return "", false
}

func (c *context) writeShape(n *svgom.Node, wrapped bool) emitResult {
	b := n.Bounds.Truncate()
	left, top, w, h := b.Left, b.Top, b.Width(), b.Height()
	tag, _ := shapeTag(n.Shape)

	c.write(c.indent() + "<" + tag)
	if n.Shape == svgom.ShapePath {
		c.write(` d="` + escape(n.PathData) + `"`)
	}
	id := c.elementID(tag, wrapped)
	c.class(n)

	switch n.Shape {
	case svgom.ShapeCircle:
		c.attr("cx", rnd(left+w/2), "0", "")
		c.attr("cy", rnd(top+h/2), "0", "")
		c.attr("r", rnd(h/2), "0", "")
	case svgom.ShapeEllipse:
		c.attr("cx", rnd(left+w/2), "0", "")
		c.attr("cy", rnd(top+h/2), "0", "")
		c.attr("rx", rnd(w/2), "0", "")
		c.attr("ry", rnd(h/2), "0", "")
	case svgom.ShapeRect:
		c.attr("x", rnd(left), "0", "")
		c.attr("y", rnd(top), "0", "")
		c.attr("width", rnd(w), "0", "")
		c.attr("height", rnd(h), "0", "")
		if len(n.Radii) > 0 {
			r := rnd(float64(int(n.Radii[0])))
			c.attr("rx", r, "0", "")
			c.attr("ry", r, "0", "")
		}
	}

	c.suppressStroke(wrapped)
	if n.Shape == svgom.ShapePath {
		c.write(` fill-rule="evenodd"`)
	}
	c.write("/>" + c.eol())
	return emitResult{id: id}
}

func (c *context) writeImage(n *svgom.Node, wrapped bool) emitResult {
	b := n.Bounds.Truncate()

	c.write(c.indent() + `<image xlink:href="` + escape(n.Href) + `"`)
	id := c.elementID("image", wrapped)
	c.attr("x", num(b.Left), "0", "")
	c.attr("y", num(b.Top), "0", "")
	c.attr("width", num(b.Width()), "0", "")
	c.attr("height", num(b.Height()), "0", "")
	c.suppressStroke(wrapped)
	c.write("/>" + c.eol())
	return emitResult{id: id}
}

func (c *context) writeGroup(n *svgom.Node) {
	c.write(c.indent() + "<g")
	if n.ID != "" {
		c.write(` id="` + escape(n.ID) + `"`)
	}
	c.class(n)
	c.write(">" + c.eol())
	c.Indent()
	c.writeLayers(n.Children)
	c.Undent()
	c.Line("</g>")
}

func (c *context) writeLayers(nodes []*svgom.Node) {
	for _, n := range nodes {
		if res := c.writeLayer(n); res.wroteWrapper {
			c.log.Debug("effect and stroke split", "node", n.ID, "use", res.id)
		}
	}
}
