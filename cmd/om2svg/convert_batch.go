package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	om2svg "github.com/alnah/go-om2svg"
	"github.com/alnah/go-om2svg/internal/fileutil"
	"github.com/alnah/go-om2svg/internal/report"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput     = errors.New("no input specified")
	ErrWriteSVG    = errors.New("failed to write SVG file")
	ErrWriteReport = errors.New("failed to write report")
	ErrBatchFailed = errors.New("some documents failed")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input om2svg.Input) (*om2svg.ConvertResult, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*om2svg.Converter)(nil)

// ReportPool abstracts report generator pooling for testability.
type ReportPool interface {
	Acquire() (*report.Generator, error)
	Release(*report.Generator)
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath   string
	OutputPath  string
	ReportPath  string
	SVG         []byte // kept only when the batch prints to stdout
	Diagnostics []om2svg.Diagnostic
	Err         error
	Duration    time.Duration
}

// batchParams groups parameters shared across batch/file conversion.
type batchParams struct {
	workers  int
	reports  ReportPool // nil = no reports
	keepSVG  bool
	reportOf func(path string) string
}

// convertBatch processes files concurrently. Results keep the order of files.
func convertBatch(ctx context.Context, conv CLIConverter, files []FileToConvert, params *batchParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(params.workers, 1), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			var gen *report.Generator
			if params.reports != nil {
				var err error
				gen, err = params.reports.Acquire()
				if err != nil {
					for idx := range jobs {
						results[idx] = ConversionResult{InputPath: files[idx].InputPath, Err: err}
					}
					return
				}
				defer params.reports.Release(gen)
			}

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, gen, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
// A partial print still writes the partial SVG and reports the error.
func convertFile(ctx context.Context, conv CLIConverter, gen *report.Generator, f FileToConvert, params *batchParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	finish := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	doc, err := om2svg.LoadDocumentFile(f.InputPath)
	if err != nil {
		return finish(err)
	}

	if err := os.MkdirAll(filepath.Dir(f.OutputPath), dirPermissions); err != nil {
		return finish(fmt.Errorf("%w: creating output directory: %v", ErrWriteSVG, err))
	}

	res, convErr := conv.Convert(ctx, om2svg.Input{Document: doc, Name: f.InputPath})
	if res == nil {
		return finish(convErr)
	}
	result.Diagnostics = res.Diagnostics
	if params.keepSVG {
		result.SVG = res.SVG
	}

	if err := fileutil.WriteFileAtomic(f.OutputPath, res.SVG, filePermissions); err != nil {
		return finish(fmt.Errorf("%w: %v", ErrWriteSVG, err))
	}

	if gen != nil {
		reportPath := params.reportOf(f.OutputPath)
		page, err := gen.Render(ctx, report.Data{
			Source:      f.InputPath,
			Output:      f.OutputPath,
			SVG:         res.SVG,
			Diagnostics: reportEntries(res.Diagnostics),
			Elapsed:     time.Since(start),
		})
		if err == nil {
			err = fileutil.WriteFileAtomic(reportPath, page, filePermissions)
		}
		if err != nil {
			return finish(errors.Join(convErr, fmt.Errorf("%w: %v", ErrWriteReport, err)))
		}
		result.ReportPath = reportPath
	}

	return finish(convErr)
}

func reportEntries(diags []om2svg.Diagnostic) []report.Entry {
	out := make([]report.Entry, len(diags))
	for i, d := range diags {
		out[i] = report.Entry{
			Severity: d.Severity.String(),
			NodeID:   d.NodeID,
			Kind:     d.Kind,
			Message:  d.Err.Error(),
		}
	}
	return out
}

// reportPath returns the HTML report path for an SVG path.
func reportPath(svgPath string) string {
	p, err := fileutil.ReplaceExt(svgPath, "html")
	if err != nil {
		return svgPath + ".html"
	}
	return p
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Warnings  int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
		summary.Warnings += len(r.Diagnostics)
	}
	return summary
}

// batchError joins the failures of results, or returns nil.
func batchError(results []ConversionResult) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", r.InputPath, r.Err))
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w (%d of %d): %w", ErrBatchFailed, len(errs), len(results), errors.Join(errs...))
}

// printResultsWithWriter outputs conversion results and returns the number
// of failures.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
		}
		if verbose {
			for _, d := range r.Diagnostics {
				fmt.Fprintf(env.Stderr, "  %s: %s\n", r.InputPath, d)
			}
		}
		if r.Err != nil || quiet {
			continue
		}

		switch {
		case verbose:
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		case len(r.Diagnostics) > 0:
			fmt.Fprintf(env.Stdout, "Created %s (%d skipped)\n", r.OutputPath, len(r.Diagnostics))
		default:
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
		if r.ReportPath != "" {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.ReportPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed, %d nodes skipped\n", summary.Succeeded, summary.Failed, summary.Warnings)
	}

	return summary.Failed
}
