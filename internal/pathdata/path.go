// Package pathdata turns anchor/control-point sequences into SVG path data.
package pathdata

import (
	"strings"

	"github.com/alnah/go-om2svg/geom"
)

// Operation is one path command.
type Operation interface {
	command() byte
}

// MoveTo starts a subpath.
type MoveTo geom.Point

// LineTo draws a straight segment.
type LineTo geom.Point

// CubicTo draws a cubic segment: first control, second control, end point.
type CubicTo [3]geom.Point

// Close closes the current subpath.
type Close struct{}

func (MoveTo) command() byte  { return 'M' }
func (LineTo) command() byte  { return 'L' }
func (CubicTo) command() byte { return 'C' }
func (Close) command() byte   { return 'Z' }

// Path is a sequence of operations.
type Path []Operation

// ToSVGPath returns the path data string, coordinates rounded to three
// decimals and separated by spaces.
func (p Path) ToSVGPath() string {
	var sb strings.Builder
	for i, op := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(op.command())
		switch op := op.(type) {
		case MoveTo:
			writePoint(&sb, geom.Point(op))
		case LineTo:
			writePoint(&sb, geom.Point(op))
		case CubicTo:
			for _, pt := range op {
				writePoint(&sb, pt)
			}
		}
	}
	return sb.String()
}

// String implements fmt.Stringer.
func (p Path) String() string {
	return p.ToSVGPath()
}

func writePoint(sb *strings.Builder, pt geom.Point) {
	sb.WriteByte(' ')
	sb.WriteString(geom.FormatRound1k(pt.X))
	sb.WriteByte(' ')
	sb.WriteString(geom.FormatRound1k(pt.Y))
}
