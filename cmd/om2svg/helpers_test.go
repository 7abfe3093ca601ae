package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const circleYAML = `kind: root
docBounds: {top: 0, left: 0, right: 200, bottom: 100}
children:
  - id: dot
    kind: shape
    shape: circle
    bounds: {top: 10, left: 10, right: 60, bottom: 60}
`

// testEnv returns an Environment with captured output and the given
// environment variables only.
func testEnv(vars map[string]string) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	env := &Environment{
		Now:    func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) },
		Stdout: &stdout,
		Stderr: &stderr,
		Getenv: func(k string) string { return vars[k] },
		Environ: func() []string {
			out := make([]string, 0, len(vars))
			for k, v := range vars {
				out = append(out, k+"="+v)
			}
			return out
		},
	}
	return env, &stdout, &stderr
}

// writeFile creates path under dir with content, creating parents.
func writeFile(t *testing.T, dir, path, content string) string {
	t.Helper()
	full := filepath.Join(dir, path)
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return full
}
