package writer

import (
	"log/slog"

	"github.com/alnah/go-om2svg/internal/units"
)

// Default option values.
const (
	DefaultPreserveAspectRatio = "none"
	DefaultIndent              = "  "
	DefaultLineEnding          = "\n"
)

// Options configures Print.
type Options struct {
	PreserveAspectRatio string
	Indent              string
	LineEnding          string
	// DPI is used when the root declares none.
	DPI float64
	// Compact drops indentation and line endings.
	Compact bool
	Logger  *slog.Logger
}

// DefaultOptions returns the options used for zero fields.
func DefaultOptions() Options {
	return Options{
		PreserveAspectRatio: DefaultPreserveAspectRatio,
		Indent:              DefaultIndent,
		LineEnding:          DefaultLineEnding,
		DPI:                 units.DefaultDPI,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.PreserveAspectRatio == "" {
		o.PreserveAspectRatio = def.PreserveAspectRatio
	}
	if o.Indent == "" {
		o.Indent = def.Indent
	}
	if o.LineEnding == "" {
		o.LineEnding = def.LineEnding
	}
	if o.DPI <= 0 {
		o.DPI = def.DPI
	}
	if o.Compact {
		o.Indent = ""
		o.LineEnding = ""
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}
