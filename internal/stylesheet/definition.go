package stylesheet

import (
	"fmt"
	"math"

	"github.com/alnah/go-om2svg/geom"
	"github.com/alnah/go-om2svg/svgom"
)

// Kind names a definition kind.
type Kind string

// Definition kinds.
const (
	KindFilter   Kind = "filter"
	KindGradient Kind = "gradient"
	KindTextPath Kind = "text-path"
)

// Definition is one shared element of <defs>. Node and Kind identify the
// consumer; ID is the element id consumers reference.
type Definition struct {
	ID     string
	Node   *svgom.Node
	Kind   Kind

	Effect   *svgom.Effect
	Gradient *svgom.Gradient
	PathData string
}

func (d *Definition) prefix() string {
	switch d.Kind {
	case KindGradient:
		if d.Gradient != nil && d.Gradient.Type == "radial" {
			return "radial-gradient"
		}
		return "linear-gradient"
	case KindTextPath:
		return "text-path"
	default:
		return string(d.Kind)
	}
}

func (d *Definition) write(f Formatter) {
	switch d.Kind {
	case KindFilter:
		d.writeFilter(f)
	case KindGradient:
		d.writeGradient(f)
	case KindTextPath:
		f.Line(fmt.Sprintf(`<path id="%s" d="%s"/>`, Escape(d.ID), d.PathData))
	}
}

func (d *Definition) writeFilter(f Formatter) {
	e := d.Effect
	f.Line(fmt.Sprintf(`<filter id="%s" filterUnits="userSpaceOnUse">`, Escape(d.ID)))
	f.Indent()
	if e.Type == "blur" {
		f.Line(fmt.Sprintf(`<feGaussianBlur stdDeviation="%s"/>`, geom.FormatRound1k(e.Blur/2)))
	} else {
		color := e.Color
		if color == "" {
			color = "#000"
		}
		opacity := e.Opacity
		if opacity == 0 {
			opacity = 1
		}
		f.Line(fmt.Sprintf(`<feGaussianBlur in="SourceAlpha" stdDeviation="%s"/>`, geom.FormatRound1k(e.Blur/2)))
		f.Line(fmt.Sprintf(`<feOffset dx="%s" dy="%s" result="offsetblur"/>`,
			geom.FormatRound1k(e.DX), geom.FormatRound1k(e.DY)))
		f.Line(fmt.Sprintf(`<feFlood flood-color="%s" flood-opacity="%s"/>`,
			Escape(color), geom.FormatRound1k(opacity)))
		f.Line(`<feComposite in2="offsetblur" operator="in"/>`)
		f.Line(`<feMerge>`)
		f.Indent()
		f.Line(`<feMergeNode/>`)
		f.Line(`<feMergeNode in="SourceGraphic"/>`)
		f.Undent()
		f.Line(`</feMerge>`)
	}
	f.Undent()
	f.Line(`</filter>`)
}

func (d *Definition) writeGradient(f Formatter) {
	g := d.Gradient
	tag := "linearGradient"
	if g.Type == "radial" {
		tag = "radialGradient"
		f.Line(fmt.Sprintf(`<%s id="%s" cx="50%%" cy="50%%" r="50%%">`, tag, Escape(d.ID)))
	} else {
		x1, y1, x2, y2 := gradientVector(g.Angle)
		f.Line(fmt.Sprintf(`<%s id="%s" x1="%s%%" y1="%s%%" x2="%s%%" y2="%s%%">`, tag, Escape(d.ID),
			geom.FormatRound1k(x1), geom.FormatRound1k(y1), geom.FormatRound1k(x2), geom.FormatRound1k(y2)))
	}
	f.Indent()
	for _, s := range g.Stops {
		line := fmt.Sprintf(`<stop offset="%s%%" stop-color="%s"`, geom.FormatRound1k(s.Offset*100), Escape(s.Color))
		if s.Opacity != nil {
			line += fmt.Sprintf(` stop-opacity="%s"`, geom.FormatRound1k(*s.Opacity))
		}
		f.Line(line + "/>")
	}
	f.Undent()
	f.Line("</" + tag + ">")
}

// gradientVector maps an angle in degrees (0 pointing right, counter
// clockwise) to the percent endpoints of a linear gradient through the
// center of the bounding box.
func gradientVector(angle float64) (x1, y1, x2, y2 float64) {
	rad := angle * math.Pi / 180
	dx, dy := 50*math.Cos(rad), 50*math.Sin(rad)
	return 50 - dx, 50 + dy, 50 + dx, 50 - dy
}
