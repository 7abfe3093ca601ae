package textlayout

import (
	"fmt"

	"github.com/alnah/go-om2svg/svgom"
)

// Slice is the part of one paragraph covered by one style run.
type Slice struct {
	From, To  int
	Paragraph int // index into the paragraph ranges
	Style     int // index into the style ranges
	Part      int // position of the slice within its paragraph
	Grouped   bool
}

// Merge reconciles paragraph and style ranges. For every paragraph it finds
// the style run starting at or before the paragraph start and the one ending
// at or after its end, keeping the tightest bracket, and emits one slice per
// style run in between clipped to the paragraph. Grouped is set when more
// than one style run covers the paragraph.
//
// A paragraph without a bracket, a style run inside no bracket, or
// partitions ending at different offsets fail the whole run with
// ErrRangeMismatch.
func Merge(paragraphs []svgom.ParagraphRange, styles []svgom.StyleRange) ([]Slice, error) {
	var out []Slice
	covered := make([]bool, len(styles))
	lo := 0
	for pi, p := range paragraphs {
		first, last := -1, -1
		for i := lo; i < len(styles); i++ {
			s := styles[i]
			if s.From <= p.From && (first < 0 || styles[first].From < s.From) {
				first = i
			}
			if s.To >= p.To && (last < 0 || styles[last].To > s.To) {
				last = i
			}
			if s.From > p.To && last >= 0 {
				break
			}
		}
		if first < 0 || last < 0 || last < first {
			return nil, fmt.Errorf("%w: paragraph %d [%d,%d)", ErrRangeMismatch, pi, p.From, p.To)
		}

		for i := first; i <= last; i++ {
			covered[i] = true
			from, to := styles[i].From, styles[i].To
			if i == first {
				from = p.From
			}
			if i == last {
				to = p.To
			}
			out = append(out, Slice{
				From:      from,
				To:        to,
				Paragraph: pi,
				Style:     i,
				Part:      i - first,
				Grouped:   first != last,
			})
		}
		lo = first
	}

	for i, ok := range covered {
		if !ok {
			return nil, fmt.Errorf("%w: style %d [%d,%d) covers no paragraph", ErrRangeMismatch, i, styles[i].From, styles[i].To)
		}
	}
	if n, m := len(paragraphs), len(styles); n > 0 && m > 0 && paragraphs[n-1].To != styles[m-1].To {
		return nil, fmt.Errorf("%w: paragraphs end at %d, styles at %d", ErrRangeMismatch, paragraphs[n-1].To, styles[m-1].To)
	}
	return out, nil
}
