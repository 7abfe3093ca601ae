package textlayout

import "errors"

// Sentinel errors.
var (
	// ErrRangeMismatch means a paragraph is not bracketed by the style runs.
	ErrRangeMismatch = errors.New("paragraph and style ranges do not match")
	// ErrNoText means the node has no text run to lay out.
	ErrNoText = errors.New("text node has no text run")
	// ErrNoPath means text on a path yields no path geometry.
	ErrNoPath = errors.New("text path has no geometry")
)
