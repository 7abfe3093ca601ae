package writer

import (
	"fmt"
	"math"

	"github.com/alnah/go-om2svg/geom"
	"github.com/alnah/go-om2svg/internal/preprocess"
	"github.com/alnah/go-om2svg/svgom"
)

// Result is the output of Print.
type Result struct {
	SVG         string
	Diagnostics []Diagnostic
}

// Print serializes root. Nodes that cannot be written are skipped and
// reported in Result.Diagnostics. If printing panics, the output written so
// far is returned together with ErrPartialOutput.
func Print(root *svgom.Node, opts Options) (res *Result, err error) {
	if root == nil {
		return nil, ErrNilRoot
	}
	c := newContext(opts.withDefaults())

	defer func() {
		if r := recover(); r != nil {
			perr := fmt.Errorf("%w: %v", ErrPartialOutput, r)
			c.diags = append(c.diags, Diagnostic{Severity: Error, Kind: svgom.KindRoot, Err: perr})
			c.logError("printing aborted", "error", perr)
			res = &Result{SVG: c.buf.String(), Diagnostics: c.diags}
			err = perr
		}
	}()

	c.skipped = preprocess.Run(root, preprocess.Options{
		DPI:    c.opts.DPI,
		Alloc:  c.alloc,
		Report: c.warn,
	})
	c.sheet.Consolidate(root, c.isSkipped)
	c.writeRoot(root)

	return &Result{SVG: c.buf.String(), Diagnostics: c.diags}, nil
}

func (c *context) writeRoot(root *svgom.Node) {
	vb := geom.Rect{}
	if root.ViewBox != nil {
		vb = *root.ViewBox
	}
	w := geom.FormatNumber(math.Abs(vb.Width()))
	h := geom.FormatNumber(math.Abs(vb.Height()))

	c.write(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink"`)
	c.write(` preserveAspectRatio="` + escape(c.opts.PreserveAspectRatio) + `"`)
	c.attr("x", num(root.OffsetX), "0", "px")
	c.attr("y", num(root.OffsetY), "0", "px")
	c.write(` width="` + w + `" height="` + h + `"`)
	c.write(` viewBox="` + num(vb.Left) + " " + num(vb.Top) + " " + w + " " + h + `">` + c.eol())
	c.Indent()

	hasRules, hasDefs := c.sheet.HasRules(), c.sheet.HasDefinitions()
	if hasRules || hasDefs {
		c.Line("<defs>")
		c.Indent()
		c.sheet.WriteRules(c)
		if hasRules && hasDefs {
			c.write(c.eol())
		}
		c.sheet.WriteDefinitions(c)
		c.Undent()
		c.Line("</defs>")
	}

	c.writeLayers(root.Children)

	c.Undent()
	c.write("</svg>" + c.eol())
}

// logError logs through a logger that may itself be what failed.
func (c *context) logError(msg string, args ...any) {
	defer func() { _ = recover() }()
	c.log.Error(msg, args...)
}
