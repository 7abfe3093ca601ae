// Package report renders an HTML report for one printed document: a summary
// table, the diagnostics of skipped nodes, a preview of the SVG and its
// highlighted source.
//
// The report is assembled as Markdown and converted with goldmark; the SVG
// source block is highlighted by chroma through goldmark-highlighting. The
// preview is inserted after conversion so raw HTML never passes through the
// Markdown renderer.
package report
