package textlayout

import (
	"strconv"
	"strings"

	"github.com/alnah/go-om2svg/svgom"
)

// Resolve builds the span nodes of run. Paragraphs covered by several style
// runs become a grouping span with the paragraph style, positioned at base,
// holding one leaf per style run; a paragraph with a single style run
// collapses into one leaf carrying both styles.
//
// Leaves are positioned in em. The first leaf of the run sits at line 0 and
// every later leaf one line below the previous; blank slices add a line to
// the next leaf instead of producing a span. The first leaf of each
// paragraph gets an x estimated from its character offset within the
// paragraph; the others continue horizontally.
//
// Span ids derive from id: id-P for paragraph P, id-P-K for its K-th slice.
func Resolve(run *svgom.TextRun, base svgom.Position, id string, dpi float64) ([]*svgom.Node, error) {
	if run == nil {
		return nil, ErrNoText
	}
	slices, err := Merge(run.Paragraphs, run.Styles)
	if err != nil {
		return nil, err
	}

	content := []rune(run.Content)
	var (
		out      []*svgom.Node
		group    *svgom.Node
		pending  int
		emitted  bool
		lastPara = -1
		leadDone bool
	)
	for _, s := range slices {
		p := run.Paragraphs[s.Paragraph]
		pid := id + "-" + strconv.Itoa(s.Paragraph)

		if s.Paragraph != lastPara {
			lastPara = s.Paragraph
			leadDone = false
			group = nil
			if s.Grouped {
				group = &svgom.Node{
					ID:       pid,
					Kind:     svgom.KindSpan,
					Style:    ParagraphStyle(p.Style),
					Position: &svgom.Position{X: base.X, Unit: base.Unit},
				}
			}
		}

		text := strings.ReplaceAll(substring(content, s.From, s.To), "\r", "")
		if text == "" {
			pending++
			continue
		}

		y := pending
		if emitted {
			y++
		}
		pos := &svgom.Position{Y: float64(y), Unit: svgom.UnitEM}
		if leadDone {
			pos.NoX = true
		} else if n := p.To - p.From; n > 0 {
			pos.X = float64(s.From-p.From) / float64(n)
		}

		leaf := &svgom.Node{Kind: svgom.KindSpan, Content: text, Position: pos}
		charStyle := CharacterStyle(run.Styles[s.Style].Style, dpi)
		if group != nil {
			if len(group.Children) == 0 {
				out = append(out, group)
			}
			leaf.ID = pid + "-" + strconv.Itoa(s.Part)
			leaf.Style = charStyle
			group.Children = append(group.Children, leaf)
		} else {
			leaf.ID = pid
			leaf.Style = mergeStyles(ParagraphStyle(p.Style), charStyle)
			out = append(out, leaf)
		}

		pending = 0
		emitted = true
		leadDone = true
	}
	return out, nil
}

// substring returns content[from:to] clamped to the content.
func substring(content []rune, from, to int) string {
	from = max(0, min(from, len(content)))
	to = max(from, min(to, len(content)))
	return string(content[from:to])
}
