// Package preprocess prepares a document tree for printing: it lays out text
// runs into spans, converts shape path specs into path data and reserves the
// ids already present in the document.
package preprocess

import (
	"errors"
	"fmt"

	"github.com/alnah/go-om2svg/geom"
	"github.com/alnah/go-om2svg/internal/ids"
	"github.com/alnah/go-om2svg/internal/pathdata"
	"github.com/alnah/go-om2svg/internal/textlayout"
	"github.com/alnah/go-om2svg/internal/units"
	"github.com/alnah/go-om2svg/svgom"
)

// ErrNoRootBounds is reported when the root carries neither a view box nor
// document bounds.
var ErrNoRootBounds = errors.New("root has no view box")

// Reporter receives the problems found while preparing a node.
type Reporter func(n *svgom.Node, err error)

// Skipped holds the nodes that failed preparation and must not be printed,
// with the reason.
type Skipped map[*svgom.Node]error

// Options configures Run.
type Options struct {
	DPI    float64
	Alloc  *ids.Allocator
	Report Reporter
}

// Run prepares root in place, attaching derived fields only. It never fails
// as a whole; per-node problems go to opts.Report and the offending nodes
// are returned so the caller can skip them. The tree itself is not marked,
// so printing it again reports the same problems.
func Run(root *svgom.Node, opts Options) Skipped {
	if root == nil {
		return nil
	}
	report := opts.Report
	if report == nil {
		report = func(*svgom.Node, error) {}
	}
	dpi := opts.DPI
	if root.DPI > 0 {
		dpi = root.DPI
	}
	if dpi <= 0 {
		dpi = units.DefaultDPI
	}

	if root.ViewBox == nil && root.DocBounds != nil {
		vb := *root.DocBounds
		root.ViewBox = &vb
	}
	var doc geom.Rect
	switch {
	case root.DocBounds != nil:
		doc = *root.DocBounds
	case root.ViewBox != nil:
		doc = *root.ViewBox
	default:
		report(root, ErrNoRootBounds)
	}

	root.Walk(func(n *svgom.Node) bool {
		if opts.Alloc != nil {
			opts.Alloc.Reserve(n.ID)
		}
		return true
	})

	var skipped Skipped
	root.Walk(func(n *svgom.Node) bool {
		if n.Hidden {
			return false
		}
		switch n.Kind {
		case svgom.KindShape:
			if n.Shape == svgom.ShapePath && n.PathData == "" && n.Path != nil {
				n.PathData = pathdata.Build(n.Path.Points, n.Path.Closed, pathdata.Curve)
			}
		case svgom.KindText:
			if err := textlayout.Layout(n, doc, dpi); err != nil {
				err = fmt.Errorf("text %q: %w", n.ID, err)
				report(n, err)
				if skipped == nil {
					skipped = make(Skipped)
				}
				skipped[n] = err
			}
			return false
		}
		return true
	})
	return skipped
}
