// Package om2svg prints visual-document models as SVG.
//
// # Quick Start
//
// Load a document, create a converter and convert:
//
//	doc, err := om2svg.LoadDocumentFile("poster.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	conv := om2svg.NewConverter()
//	result, err := conv.Convert(ctx, om2svg.Input{Document: doc})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("poster.svg", result.SVG, 0644)
//
// # Printing Pipeline
//
// Each conversion runs these stages on the document tree:
//
//  1. Preprocessing (view box, path data from anchor points, text layout)
//  2. Style consolidation into shared CSS classes and definitions
//  3. Serialization of the tree into one SVG buffer
//
// Nodes that cannot be printed (no bounds, unknown kind, malformed text
// ranges) are skipped and reported in ConvertResult.Diagnostics. A panic
// during serialization stops printing: the partial output is returned
// together with ErrPartialOutput.
//
// # Configuration
//
// Use functional options to customize the output:
//
//	conv := om2svg.NewConverter(
//	    om2svg.WithPreserveAspectRatio("xMidYMid meet"),
//	    om2svg.WithDPI(96),
//	    om2svg.WithCompact(true),
//	)
//
// # Documents
//
// Documents are YAML or JSON trees of layers:
//
//	kind: root
//	docBounds: {top: 0, left: 0, right: 200, bottom: 100}
//	children:
//	  - id: dot
//	    kind: shape
//	    shape: circle
//	    bounds: {top: 10, left: 10, right: 60, bottom: 60}
//	    style: {fill: "#f00"}
//
// # Logging
//
// The package is silent by default. Install a logger with SetLogger or
// per converter with WithLogger; skipped nodes are logged at warn level.
//
// # Concurrency
//
// A Converter is safe for concurrent use. Convert annotates the document
// in place, so one document must not be converted concurrently.
package om2svg
