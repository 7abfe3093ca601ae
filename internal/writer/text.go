package writer

import (
	"fmt"

	"github.com/alnah/go-om2svg/geom"
	"github.com/alnah/go-om2svg/internal/stylesheet"
	"github.com/alnah/go-om2svg/svgom"
)

func (c *context) writeText(n *svgom.Node, wrapped bool) emitResult {
	c.write(c.indent() + "<text")
	id := c.elementID("text", wrapped)
	c.class(n)
	c.position(n.Position)
	c.transform(n.Transform)
	c.suppressStroke(wrapped)
	c.write(">" + c.eol())

	c.Indent()
	c.writeInlineChildren(n, false)
	c.Undent()
	c.Line("</text>")
	return emitResult{id: id}
}

// writeInlineChildren writes the span children of a text or textPath
// element one per line. adjust carries the superscript follow-up between
// siblings and is returned for the next one.
func (c *context) writeInlineChildren(n *svgom.Node, adjust bool) bool {
	for i, ch := range n.Children {
		c.write(c.indent())
		adjust = c.writeInline(ch, i, adjust)
		c.write(c.eol())
	}
	return adjust
}

func (c *context) writeInline(n *svgom.Node, sibling int, adjust bool) bool {
	if n.Hidden {
		return adjust
	}
	switch n.Kind {
	case svgom.KindSpan:
		return c.writeSpan(n, sibling, adjust)
	case svgom.KindTextPath:
		return c.writeTextPath(n, adjust)
	default:
		c.warn(n, fmt.Errorf("%w: %q inside text", ErrUnknownKind, n.Kind))
		return adjust
	}
}

// writeSpan writes a tspan inline. A span following a superscript span
// moves down by 0.6em instead of its own line offset. It reports whether
// the next sibling follows a superscript.
func (c *context) writeSpan(n *svgom.Node, sibling int, adjust bool) bool {
	c.write("<tspan")
	if adjust {
		c.attr("dy", "0.6em", "0em", "")
	}
	if p := n.Position; p != nil {
		if !adjust && p.Unit == svgom.UnitEM {
			c.attr("dy", geom.FormatRound1k(p.Y*1.2)+"em", "0em", "")
		}
		if !p.NoX && !centered(n.Style) {
			def := ""
			if sibling == 0 {
				def = "0"
			}
			c.attr("x", rnd(p.X), def, unitSuffix(p.Unit))
		}
	}
	c.class(n)
	c.write(">")

	inner := false
	for i, ch := range n.Children {
		inner = c.writeInline(ch, i, inner)
	}
	c.write(escape(n.Content))
	c.write("</tspan>")

	return inner || (n.Style != nil && n.Style.BaselineScript == "super")
}

// centered reports whether x must be left to the text anchor.
func centered(s *svgom.Style) bool {
	return s != nil && (s.TextAnchor == "middle" || s.TextAnchor == "end")
}

func (c *context) writeTextPath(n *svgom.Node, adjust bool) bool {
	c.write("<textPath")
	if c.markers.Once(n, stylesheet.KindTextPath) {
		if def, ok := c.sheet.Definition(n, stylesheet.KindTextPath); ok {
			c.write(` xlink:href="#` + escape(def.ID) + `"`)
		} else {
			c.warn(n, ErrNoTextPathDef)
		}
	}

	offset := "0"
	if anchor, ok := c.sheet.Block(n).Value("text-anchor"); ok {
		switch anchor {
		case "middle":
			offset = "50"
		case "end":
			offset = "100"
		}
	}
	c.attr("startOffset", offset, "0", "%")
	c.write(">" + c.eol())

	c.Indent()
	adjust = c.writeInlineChildren(n, adjust)
	c.Undent()
	c.write(c.indent() + "</textPath>")
	return adjust
}
