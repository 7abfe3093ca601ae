package om2svg

import (
	"fmt"
	"log/slog"

	"github.com/alnah/go-om2svg/internal/writer"
	"github.com/alnah/go-om2svg/svgom"
)

// Input contains conversion parameters.
type Input struct {
	Document *svgom.Node // Required: root of the document tree
	Name     string      // Optional: document name used in log records
}

// ConvertResult contains the outputs from a conversion.
type ConvertResult struct {
	SVG         []byte
	Diagnostics []Diagnostic
}

// HasWarnings reports whether any node was skipped.
func (r *ConvertResult) HasWarnings() bool {
	if r == nil {
		return false
	}
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityWarning {
			return true
		}
	}
	return false
}

// Severity grades a diagnostic.
type Severity int

const (
	SeverityWarning Severity = iota // node skipped, printing went on
	SeverityError                   // printing stopped
)

// String implements fmt.Stringer.
func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Diagnostic describes a problem met while printing one node.
type Diagnostic struct {
	Severity Severity
	NodeID   string
	Kind     string
	Err      error
}

// String implements fmt.Stringer.
func (d Diagnostic) String() string {
	if d.NodeID == "" {
		return fmt.Sprintf("%s: %s: %v", d.Severity, d.Kind, d.Err)
	}
	return fmt.Sprintf("%s: %s %q: %v", d.Severity, d.Kind, d.NodeID, d.Err)
}

func toDiagnostics(in []writer.Diagnostic) []Diagnostic {
	if len(in) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(in))
	for i, d := range in {
		sev := SeverityWarning
		if d.Severity == writer.Error {
			sev = SeverityError
		}
		out[i] = Diagnostic{Severity: sev, NodeID: d.NodeID, Kind: string(d.Kind), Err: d.Err}
	}
	return out
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	preserveAspectRatio string
	dpi                 float64
	indent              string
	compact             bool
	logger              *slog.Logger
}

// WithPreserveAspectRatio sets the root preserveAspectRatio attribute.
func WithPreserveAspectRatio(v string) Option {
	return func(c *Converter) {
		c.cfg.preserveAspectRatio = v
	}
}

// WithDPI sets the resolution used for point and millimeter lengths when the
// document declares none.
// Panics if dpi is not positive.
func WithDPI(dpi float64) Option {
	if dpi <= 0 {
		panic("om2svg: WithDPI dpi must be positive")
	}
	return func(c *Converter) {
		c.cfg.dpi = dpi
	}
}

// WithIndent sets the indentation unit. An empty string keeps the default.
func WithIndent(indent string) Option {
	return func(c *Converter) {
		c.cfg.indent = indent
	}
}

// WithCompact drops indentation and line breaks from the output.
func WithCompact(compact bool) Option {
	return func(c *Converter) {
		c.cfg.compact = compact
	}
}

// WithLogger sets the logger for this converter, overriding SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		c.cfg.logger = l
	}
}
