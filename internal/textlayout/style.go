package textlayout

import (
	"github.com/alnah/go-om2svg/internal/units"
	"github.com/alnah/go-om2svg/svgom"
)

// ParagraphStyle maps paragraph alignment to a text anchor.
func ParagraphStyle(ps svgom.ParagraphStyle) *svgom.Style {
	var anchor string
	switch ps.Align {
	case "center":
		anchor = "middle"
	case "right":
		anchor = "end"
	default:
		return nil
	}
	return &svgom.Style{TextAnchor: anchor}
}

// CharacterStyle maps a character style to span style, converting the font
// size to pixels.
func CharacterStyle(cs svgom.CharacterStyle, dpi float64) *svgom.Style {
	st := &svgom.Style{
		Fill:           cs.Color,
		FontFamily:     cs.FontFamily,
		BaselineScript: cs.Baseline,
	}
	if cs.Size != nil {
		st.FontSize, _ = units.ToPixels(cs.Size.Value, cs.Size.Unit, dpi)
	}
	if cs.Bold {
		st.FontWeight = "bold"
	}
	if cs.Italic {
		st.FontStyle = "italic"
	}
	return st
}

// mergeStyles overlays b on a. Either may be nil.
func mergeStyles(a, b *svgom.Style) *svgom.Style {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	out := *a
	if b.Fill != "" {
		out.Fill = b.Fill
	}
	if b.FontFamily != "" {
		out.FontFamily = b.FontFamily
	}
	if b.FontSize != 0 {
		out.FontSize = b.FontSize
	}
	if b.FontWeight != "" {
		out.FontWeight = b.FontWeight
	}
	if b.FontStyle != "" {
		out.FontStyle = b.FontStyle
	}
	if b.TextAnchor != "" {
		out.TextAnchor = b.TextAnchor
	}
	if b.BaselineScript != "" {
		out.BaselineScript = b.BaselineScript
	}
	return &out
}
