package om2svg

import (
	"errors"

	"github.com/alnah/go-om2svg/internal/writer"
)

// Sentinel errors for library operations.
var (
	ErrNilDocument = errors.New("document cannot be nil")

	// ErrPartialOutput is returned with the SVG printed before a failure.
	ErrPartialOutput = writer.ErrPartialOutput

	// Document loading errors.
	ErrEmptyDocument   = errors.New("document content cannot be empty")
	ErrInvalidDocument = errors.New("invalid document")
	ErrDocumentRead    = errors.New("failed to read document")
)
