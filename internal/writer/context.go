package writer

import (
	"log/slog"
	"strings"

	"github.com/alnah/go-om2svg/internal/ids"
	"github.com/alnah/go-om2svg/internal/preprocess"
	"github.com/alnah/go-om2svg/internal/stylesheet"
	"github.com/alnah/go-om2svg/svgom"
)

// context is the state of one Print call.
type context struct {
	opts    Options
	buf     strings.Builder
	depth   int
	alloc   *ids.Allocator
	sheet   *stylesheet.Sheet
	markers stylesheet.Markers
	diags   []Diagnostic
	skipped preprocess.Skipped
	log     *slog.Logger
}

var _ stylesheet.Formatter = (*context)(nil)

func newContext(opts Options) *context {
	alloc := ids.NewAllocator()
	return &context{
		opts:  opts,
		alloc: alloc,
		sheet: stylesheet.New(alloc),
		log:   opts.Logger,
	}
}

func (c *context) write(s string) { c.buf.WriteString(s) }

func (c *context) indent() string { return strings.Repeat(c.opts.Indent, c.depth) }

func (c *context) eol() string { return c.opts.LineEnding }

// Line implements stylesheet.Formatter.
func (c *context) Line(s string) {
	c.write(c.indent() + s + c.eol())
}

// Indent implements stylesheet.Formatter.
func (c *context) Indent() { c.depth++ }

// Undent implements stylesheet.Formatter.
func (c *context) Undent() {
	if c.depth > 0 {
		c.depth--
	}
}

// isSkipped reports whether n failed preparation in this call.
func (c *context) isSkipped(n *svgom.Node) bool {
	_, ok := c.skipped[n]
	return ok
}

// warn records a skipped node.
func (c *context) warn(n *svgom.Node, err error) {
	d := Diagnostic{Severity: Warning, Err: err}
	if n != nil {
		d.NodeID, d.Kind = n.ID, n.Kind
	}
	c.diags = append(c.diags, d)
	c.log.Warn("node skipped", "node", d.NodeID, "kind", string(d.Kind), "error", err)
}
