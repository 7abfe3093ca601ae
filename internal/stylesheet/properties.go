package stylesheet

import (
	"strconv"
	"strings"

	"github.com/alnah/go-om2svg/geom"
	"github.com/alnah/go-om2svg/svgom"
)

// Property is one CSS declaration.
type Property struct {
	Name  string
	Value string
}

// Block is an ordered set of declarations shared by every element with the
// same computed style.
type Block struct {
	Class string
	Props []Property
}

// Value returns the value of the named property.
func (b *Block) Value(name string) (string, bool) {
	if b == nil {
		return "", false
	}
	for _, p := range b.Props {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// Has reports whether the block declares name.
func (b *Block) Has(name string) bool {
	_, ok := b.Value(name)
	return ok
}

func (b *Block) key() string {
	var sb strings.Builder
	for _, p := range b.Props {
		sb.WriteString(p.Name)
		sb.WriteByte(':')
		sb.WriteString(p.Value)
		sb.WriteByte(';')
	}
	return sb.String()
}

// refs resolves the definition ids a style points at.
type refs struct {
	fill   string
	filter string
}

// compute maps a style to declarations. Order is fixed so equal styles
// produce equal blocks.
func compute(s *svgom.Style, r refs) []Property {
	if s == nil {
		return nil
	}
	var props []Property
	add := func(name, value string) {
		if value != "" {
			props = append(props, Property{Name: name, Value: value})
		}
	}

	switch {
	case r.fill != "":
		add("fill", "url(#"+r.fill+")")
	default:
		add("fill", s.Fill)
	}
	if s.Opacity != nil {
		add("opacity", geom.FormatRound1k(*s.Opacity))
	}
	add("stroke", s.Stroke)
	if s.StrokeWidth > 0 {
		add("stroke-width", geom.FormatRound1k(s.StrokeWidth)+"px")
	}
	if r.filter != "" {
		add("filter", "url(#"+r.filter+")")
	}

	add("font-family", fontFamily(s.FontFamily))
	if s.FontSize > 0 {
		add("font-size", geom.FormatRound1k(s.FontSize)+"px")
	}
	add("font-weight", s.FontWeight)
	add("font-style", s.FontStyle)
	add("text-anchor", s.TextAnchor)
	switch s.BaselineScript {
	case "super", "sub":
		add("baseline-shift", s.BaselineScript)
	}
	return props
}

func fontFamily(name string) string {
	if name == "" || !strings.ContainsAny(name, " \t") {
		return name
	}
	return strconv.Quote(name)
}
