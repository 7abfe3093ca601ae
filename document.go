package om2svg

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-om2svg/internal/yamlutil"
	"github.com/alnah/go-om2svg/svgom"
)

// LoadDocument decodes a YAML or JSON document tree. A root without a kind
// is treated as the document root.
func LoadDocument(data []byte) (*svgom.Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var root svgom.Node
	if err := yamlutil.UnmarshalDocument(data, &root, false); err != nil {
		if errors.Is(err, yamlutil.ErrInputTooLarge) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidDocument, yamlutil.FormatError(err, false))
	}

	if root.Kind == "" {
		root.Kind = svgom.KindRoot
	}
	if root.Kind != svgom.KindRoot {
		return nil, fmt.Errorf("%w: top-level kind is %q, want %q", ErrInvalidDocument, root.Kind, svgom.KindRoot)
	}
	return &root, nil
}

// LoadDocumentFile reads and decodes the document at path.
func LoadDocumentFile(path string) (*svgom.Node, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDocumentRead, err)
	}
	root, err := LoadDocument(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}
