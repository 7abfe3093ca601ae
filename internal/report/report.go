package report

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	goldhtml "github.com/yuin/goldmark/renderer/html"
	xhtml "golang.org/x/net/html"
)

// DefaultStyle is the chroma style used when none is given.
const DefaultStyle = "github"

// Sentinel errors.
var (
	ErrUnknownStyle = errors.New("unknown highlight style")
	ErrRender       = errors.New("report rendering failed")
)

// previewPlaceholder marks where the preview goes in the rendered Markdown.
const previewPlaceholder = "%%PREVIEW%%"

// pageTemplate wraps goldmark's fragment output in a complete HTML5 document.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; margin: 2em auto; max-width: 60em; }
table { border-collapse: collapse; }
th, td { border: 1px solid #ccc; padding: 0.25em 0.5em; text-align: left; }
.preview { border: 1px solid #ccc; padding: 1em; }
.preview img { max-width: 100%%; }
%s</style>
</head>
<body>
%s
</body>
</html>`

// Entry is one diagnostic line.
type Entry struct {
	Severity string
	NodeID   string
	Kind     string
	Message  string
}

// Data describes a printed document.
type Data struct {
	Title       string
	Source      string // path of the input document
	Output      string // path of the written SVG
	SVG         []byte
	Diagnostics []Entry
	Elapsed     time.Duration
}

// Generator renders reports. A Generator is not safe for concurrent use;
// create one per worker.
type Generator struct {
	md  goldmark.Markdown
	css string
}

// NewGenerator creates a Generator highlighting with the named chroma style.
// An empty name selects DefaultStyle.
func NewGenerator(style string) (*Generator, error) {
	if style == "" {
		style = DefaultStyle
	}
	s, ok := styles.Registry[style]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, style)
	}

	var css bytes.Buffer
	if err := html.New(html.WithClasses(true)).WriteCSS(&css, s); err != nil {
		return nil, fmt.Errorf("%w: writing highlight CSS: %v", ErrRender, err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(
					html.WithClasses(true),
					html.WithLineNumbers(true),
				),
			),
		),
		goldmark.WithRendererOptions(
			goldhtml.WithXHTML(),
		),
	)
	return &Generator{md: md, css: css.String()}, nil
}

// Render builds the HTML report for d.
// Supports context cancellation via goroutine + select since goldmark
// doesn't natively support context.
func (g *Generator) Render(ctx context.Context, d Data) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	type result struct {
		html []byte
		err  error
	}
	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := g.md.Convert([]byte(Markdown(d)), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrRender, err)}
			return
		}
		body := strings.Replace(buf.String(), "<p>"+previewPlaceholder+"</p>", preview(d.SVG), 1)
		page := fmt.Sprintf(pageTemplate, xhtml.EscapeString(title(d)), g.css, body)
		done <- result{html: []byte(page)}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// Markdown returns the Markdown source of the report.
func Markdown(d Data) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", escapeMarkdown(title(d)))

	b.WriteString("| Property | Value |\n|---|---|\n")
	if d.Source != "" {
		fmt.Fprintf(&b, "| Source | `%s` |\n", codeSpan(d.Source))
	}
	if d.Output != "" {
		fmt.Fprintf(&b, "| Output | `%s` |\n", codeSpan(d.Output))
	}
	fmt.Fprintf(&b, "| Size | %d bytes |\n", len(d.SVG))
	fmt.Fprintf(&b, "| Diagnostics | %d |\n", len(d.Diagnostics))
	if d.Elapsed > 0 {
		fmt.Fprintf(&b, "| Elapsed | %s |\n", d.Elapsed.Round(time.Microsecond))
	}

	b.WriteString("\n## Diagnostics\n\n")
	if len(d.Diagnostics) == 0 {
		b.WriteString("No nodes were skipped.\n")
	} else {
		b.WriteString("| Severity | Node | Kind | Message |\n|---|---|---|---|\n")
		for _, e := range d.Diagnostics {
			fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
				escapeMarkdown(e.Severity), escapeMarkdown(e.NodeID),
				escapeMarkdown(e.Kind), escapeMarkdown(e.Message))
		}
	}

	b.WriteString("\n## Preview\n\n" + previewPlaceholder + "\n\n## Source\n\n")
	fence := codeFence(string(d.SVG))
	b.WriteString(fence + "xml\n")
	b.Write(d.SVG)
	if len(d.SVG) > 0 && d.SVG[len(d.SVG)-1] != '\n' {
		b.WriteByte('\n')
	}
	b.WriteString(fence + "\n")

	return b.String()
}

func title(d Data) string {
	if d.Title != "" {
		return d.Title
	}
	if d.Source != "" {
		return d.Source
	}
	return "SVG report"
}

func preview(svg []byte) string {
	if len(svg) == 0 {
		return `<p class="preview">No output.</p>`
	}
	return `<div class="preview"><img alt="preview" src="data:image/svg+xml;base64,` +
		base64.StdEncoding.EncodeToString(svg) + `"/></div>`
}

// escapeMarkdown backslash-escapes characters with Markdown meaning.
func escapeMarkdown(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\', '`', '*', '_', '[', ']', '<', '>', '|', '#', '!', '%', '&':
			b.WriteByte('\\')
		case '\n', '\r':
			r = ' '
		}
		b.WriteRune(r)
	}
	return b.String()
}

// codeSpan strips characters that would end a table cell or code span.
func codeSpan(s string) string {
	return strings.NewReplacer("`", "'", "|", "/", "\n", " ").Replace(s)
}

// codeFence returns a backtick fence longer than any backtick run in s.
func codeFence(s string) string {
	longest, run := 0, 0
	for _, r := range s {
		if r == '`' {
			run++
			longest = max(longest, run)
			continue
		}
		run = 0
	}
	return strings.Repeat("`", max(3, longest+1))
}
