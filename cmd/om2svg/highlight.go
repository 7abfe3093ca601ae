package main

import (
	"io"

	"github.com/alecthomas/chroma/v2/quick"

	"github.com/alnah/go-om2svg/internal/report"
)

// terminalFormatter is the chroma formatter used for --color.
const terminalFormatter = "terminal256"

// printHighlighted writes svg to w with terminal colours.
func printHighlighted(w io.Writer, svg []byte, style string) error {
	if style == "" {
		style = report.DefaultStyle
	}
	if err := quick.Highlight(w, string(svg), "xml", terminalFormatter, style); err != nil {
		return err
	}
	if len(svg) > 0 && svg[len(svg)-1] != '\n' {
		_, err := io.WriteString(w, "\n")
		return err
	}
	return nil
}
