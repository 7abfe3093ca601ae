package writer

import (
	"golang.org/x/net/html"

	"github.com/alnah/go-om2svg/geom"
	"github.com/alnah/go-om2svg/svgom"
)

// attr writes name="value unit" unless value equals def.
func (c *context) attr(name, value, def, unit string) {
	if value == def {
		return
	}
	c.write(" " + name + `="` + value + unit + `"`)
}

// class writes the class attribute of n, if it has a style block.
func (c *context) class(n *svgom.Node) {
	if c.sheet.HasStyle(n) {
		c.write(` class="` + c.sheet.ClassName(n) + `"`)
	}
}

// position writes x and y of a text element. Em values keep three
// decimals, other units are rounded to whole numbers.
func (c *context) position(p *svgom.Position) {
	if p == nil {
		return
	}
	x, y := rnd(p.X), rnd(p.Y)
	if p.Unit == svgom.UnitEM {
		x, y = geom.FormatRound1k(p.X), geom.FormatRound1k(p.Y)
	}
	unit := unitSuffix(p.Unit)
	c.attr("x", x, "0", unit)
	c.attr("y", y, "0", unit)
}

func (c *context) transform(t *geom.Transform) {
	if t == nil || t.IsIdentity() {
		return
	}
	c.write(` transform="` + t.SVG() + `"`)
}

func unitSuffix(u svgom.Unit) string {
	switch u {
	case svgom.UnitPixel:
		return "px"
	case svgom.UnitEM:
		return "em"
	default:
		return "%"
	}
}

func num(v float64) string { return geom.FormatNumber(v) }

func rnd(v float64) string { return geom.FormatNumber(geom.Round(v)) }

func escape(s string) string { return html.EscapeString(s) }
