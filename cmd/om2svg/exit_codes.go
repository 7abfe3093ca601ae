package main

import (
	"errors"
	"os"

	om2svg "github.com/alnah/go-om2svg"
	"github.com/alnah/go-om2svg/internal/config"
	"github.com/alnah/go-om2svg/internal/report"
)

// Exit codes for the om2svg CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or document
	ExitIO      = 3 // File not found, permission denied
	ExitPartial = 5 // Printing aborted, partial SVG written
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
// Joined batch errors take the first matching code in the order below.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, om2svg.ErrPartialOutput) {
		return ExitPartial
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, om2svg.ErrDocumentRead) ||
		errors.Is(err, ErrWriteSVG) ||
		errors.Is(err, ErrWriteReport) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, om2svg.ErrEmptyDocument) ||
		errors.Is(err, om2svg.ErrInvalidDocument) ||
		errors.Is(err, report.ErrUnknownStyle) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) {
		return ExitUsage
	}

	return ExitGeneral
}
