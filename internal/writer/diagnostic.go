package writer

import (
	"errors"
	"fmt"

	"github.com/alnah/go-om2svg/svgom"
)

// Sentinel errors.
var (
	ErrNilRoot       = errors.New("nil document root")
	ErrPartialOutput = errors.New("printing aborted, output is partial")
	ErrNoBounds      = errors.New("node has no bounds")
	ErrUnknownKind   = errors.New("unknown node kind")
	ErrUnknownShape  = errors.New("unknown shape")
	ErrNoTextPathDef = errors.New("text path has no definition")
)

// Severity grades a diagnostic.
type Severity int

const (
	// Warning means a node was skipped and printing went on.
	Warning Severity = iota
	// Error means printing stopped.
	Error
)

// String implements fmt.Stringer.
func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Diagnostic is one problem found while printing.
type Diagnostic struct {
	Severity Severity
	NodeID   string
	Kind     svgom.Kind
	Err      error
}

// String implements fmt.Stringer.
func (d Diagnostic) String() string {
	if d.NodeID == "" {
		return fmt.Sprintf("%s: %s: %v", d.Severity, d.Kind, d.Err)
	}
	return fmt.Sprintf("%s: %s %q: %v", d.Severity, d.Kind, d.NodeID, d.Err)
}
