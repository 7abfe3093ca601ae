// Package hints provides actionable error hints for common CLI failures.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"path/filepath"
	"strings"
)

// ForConfigNotFound suggests --config and, when known, the user config
// location that was searched.
func ForConfigNotFound(userConfigDir string) string {
	hint := "use --config /path/to/file.yaml"
	if userConfigDir != "" {
		hint += " or create " + filepath.Join(userConfigDir, "go-om2svg", "<name>.yaml")
	}
	return format(hint)
}

// ForStyleNotFound lists the available highlight styles.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// ForDocumentExtension lists the accepted document extensions.
func ForDocumentExtension(exts []string) string {
	if len(exts) == 0 {
		return ""
	}
	return format("documents use " + strings.Join(exts, ", "))
}

// ForInvalidDocument points at the expected document shape.
func ForInvalidDocument() string {
	return format(`the top-level node must have kind "root" (or no kind)`)
}

// ForOutputDirectory returns hints for output write errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForPartialOutput explains what a partial SVG contains.
func ForPartialOutput() string {
	return format("the SVG stops at the failing node; rerun with -v to list it")
}

func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
