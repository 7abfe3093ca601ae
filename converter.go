package om2svg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alnah/go-om2svg/internal/writer"
	"github.com/alnah/go-om2svg/svgom"
)

// printer turns a document tree into SVG.
type printer interface {
	Print(root *svgom.Node, opts writer.Options) (*writer.Result, error)
}

// svgPrinter is the production printer.
type svgPrinter struct{}

func (svgPrinter) Print(root *svgom.Node, opts writer.Options) (*writer.Result, error) {
	return writer.Print(root, opts)
}

// Compile-time interface implementation check.
var _ printer = svgPrinter{}

// Converter prints document trees as SVG.
// Create with NewConverter, then call Convert for each document.
type Converter struct {
	cfg     converterConfig
	printer printer
}

// NewConverter creates a Converter. Options customize the output.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{printer: svgPrinter{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert prints input.Document and returns the SVG with the diagnostics of
// skipped nodes. The context is used for cancellation.
//
// When printing is aborted the result still holds the partial SVG and the
// error wraps ErrPartialOutput.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Document == nil {
		return nil, ErrNilDocument
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	log := c.logger()
	if input.Name != "" {
		log = log.With("document", input.Name)
	}

	type output struct {
		res *writer.Result
		err error
	}
	done := make(chan output, 1)
	start := time.Now()

	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- output{err: fmt.Errorf("internal error: %v", r)}
			}
		}()
		res, err := c.printer.Print(input.Document, c.writerOptions(log))
		done <- output{res: res, err: err}
	}()

	var out output
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case out = <-done:
	}

	if out.res == nil {
		if out.err == nil {
			out.err = errors.New("printer returned no result")
		}
		return nil, fmt.Errorf("printing SVG: %w", out.err)
	}

	result = &ConvertResult{
		SVG:         []byte(out.res.SVG),
		Diagnostics: toDiagnostics(out.res.Diagnostics),
	}
	log.Debug("document printed",
		"bytes", len(result.SVG),
		"diagnostics", len(result.Diagnostics),
		"elapsed", time.Since(start))

	if out.err != nil {
		return result, fmt.Errorf("printing SVG: %w", out.err)
	}
	return result, nil
}

func (c *Converter) logger() *slog.Logger {
	if c.cfg.logger != nil {
		return c.cfg.logger
	}
	return Logger()
}

func (c *Converter) writerOptions(log *slog.Logger) writer.Options {
	return writer.Options{
		PreserveAspectRatio: c.cfg.preserveAspectRatio,
		Indent:              c.cfg.indent,
		DPI:                 c.cfg.dpi,
		Compact:             c.cfg.compact,
		Logger:              log,
	}
}
