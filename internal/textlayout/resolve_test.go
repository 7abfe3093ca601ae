package textlayout_test

import (
	"errors"
	"testing"

	"github.com/alnah/go-om2svg/internal/textlayout"
	"github.com/alnah/go-om2svg/svgom"
)

// leaves flattens span trees to their text-carrying spans.
func leaves(spans []*svgom.Node) []*svgom.Node {
	var out []*svgom.Node
	for _, s := range spans {
		if s.Content != "" {
			out = append(out, s)
		}
		out = append(out, leaves(s.Children)...)
	}
	return out
}

// ---------------------------------------------------------------------------
// TestResolve - Span trees from text runs
// ---------------------------------------------------------------------------

func TestResolve_CarriageReturn(t *testing.T) {
	t.Parallel()

	run := &svgom.TextRun{
		Content:    "AB\rCD",
		Paragraphs: paras([2]int{0, 5}),
		Styles:     styles([2]int{0, 2}, [2]int{2, 5}),
	}

	spans, err := textlayout.Resolve(run, svgom.Position{X: 12, Unit: svgom.UnitPixel}, "t", 72)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(spans) != 1 || spans[0].ID != "t-0" || spans[0].Content != "" {
		t.Fatalf("want one grouping span t-0, got %+v", spans)
	}
	group := spans[0]
	if group.Position == nil || group.Position.X != 12 || group.Position.Unit != svgom.UnitPixel {
		t.Errorf("group position = %+v, want x=12px", group.Position)
	}

	got := leaves(spans)
	want := []struct {
		id   string
		text string
		y    float64
	}{
		{"t-0-0", "AB", 0},
		{"t-0-1", "CD", 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d leaves, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].ID != w.id || got[i].Content != w.text {
			t.Errorf("leaf %d = %s %q, want %s %q", i, got[i].ID, got[i].Content, w.id, w.text)
		}
		if got[i].Position.Unit != svgom.UnitEM || got[i].Position.Y != w.y {
			t.Errorf("leaf %d position = %+v, want y=%v em", i, got[i].Position, w.y)
		}
	}
	if got[0].Position.NoX {
		t.Error("first leaf of the paragraph has no x")
	}
	if !got[1].Position.NoX {
		t.Error("second leaf of the paragraph has an x")
	}
}

func TestResolve_BlankLines(t *testing.T) {
	t.Parallel()

	run := &svgom.TextRun{
		Content:    "AB\r\rCD",
		Paragraphs: paras([2]int{0, 3}, [2]int{3, 4}, [2]int{4, 6}),
		Styles:     styles([2]int{0, 6}),
	}

	spans, err := textlayout.Resolve(run, svgom.Position{}, "t", 72)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2 (blank paragraph emits none)", len(spans))
	}
	if spans[0].ID != "t-0" || spans[0].Content != "AB" || spans[0].Position.Y != 0 {
		t.Errorf("span 0 = %s %q y=%v", spans[0].ID, spans[0].Content, spans[0].Position.Y)
	}
	if spans[1].ID != "t-2" || spans[1].Content != "CD" || spans[1].Position.Y != 2 {
		t.Errorf("span 1 = %s %q y=%v, want t-2 \"CD\" y=2", spans[1].ID, spans[1].Content, spans[1].Position.Y)
	}
}

func TestResolve_LeadingBlankAndXEstimate(t *testing.T) {
	t.Parallel()

	run := &svgom.TextRun{
		Content:    "\rABC",
		Paragraphs: paras([2]int{0, 4}),
		Styles:     styles([2]int{0, 1}, [2]int{1, 4}),
	}

	spans, err := textlayout.Resolve(run, svgom.Position{}, "t", 72)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	got := leaves(spans)
	if len(got) != 1 {
		t.Fatalf("got %d leaves, want 1", len(got))
	}
	pos := got[0].Position
	if pos.Y != 1 {
		t.Errorf("y = %v, want 1 (pending blank line)", pos.Y)
	}
	if pos.X != 0.25 || pos.NoX {
		t.Errorf("x = %v (NoX %v), want 0.25", pos.X, pos.NoX)
	}
}

func TestResolve_Styles(t *testing.T) {
	t.Parallel()

	size := &svgom.Length{Value: 12, Unit: "pt"}
	run := &svgom.TextRun{
		Content: "Hello",
		Paragraphs: []svgom.ParagraphRange{
			{From: 0, To: 5, Style: svgom.ParagraphStyle{Align: "center"}},
		},
		Styles: []svgom.StyleRange{
			{From: 0, To: 5, Style: svgom.CharacterStyle{FontFamily: "Arial", Size: size, Color: "#333", Bold: true}},
		},
	}

	spans, err := textlayout.Resolve(run, svgom.Position{}, "t", 144)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if len(spans) != 1 {
		t.Fatalf("got %d spans, want 1", len(spans))
	}
	st := spans[0].Style
	if st == nil {
		t.Fatal("collapsed span has no style")
	}
	if st.TextAnchor != "middle" {
		t.Errorf("TextAnchor = %q, want middle", st.TextAnchor)
	}
	if st.FontSize != 24 {
		t.Errorf("FontSize = %v, want 24 (12pt at 144dpi)", st.FontSize)
	}
	if st.Fill != "#333" || st.FontWeight != "bold" || st.FontFamily != "Arial" {
		t.Errorf("style = %+v", st)
	}
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()

	if _, err := textlayout.Resolve(nil, svgom.Position{}, "t", 72); !errors.Is(err, textlayout.ErrNoText) {
		t.Errorf("nil run error = %v, want ErrNoText", err)
	}

	run := &svgom.TextRun{
		Content:    "abc",
		Paragraphs: paras([2]int{0, 3}),
		Styles:     styles([2]int{0, 1}),
	}
	spans, err := textlayout.Resolve(run, svgom.Position{}, "t", 72)
	if !errors.Is(err, textlayout.ErrRangeMismatch) {
		t.Errorf("error = %v, want ErrRangeMismatch", err)
	}
	if spans != nil {
		t.Errorf("spans = %+v, want nil", spans)
	}
}
