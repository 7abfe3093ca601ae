package main

// Notes:
// - runMain is exercised end to end against temp directories; the
//   Environment keeps stdout, stderr and environment variables hermetic.
// - Exit code 5 (partial output) needs a printer panic, which a decoded
//   document cannot trigger; exitCodeFor covers the mapping.

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		args         []string
		wantCode     int
		wantInStdout []string
		wantInStderr []string
	}{
		{
			name:         "no args shows usage and exits with ExitUsage",
			args:         []string{"om2svg"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"Usage: om2svg"},
		},
		{
			name:         "version command exits 0",
			args:         []string{"om2svg", "version"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"om2svg dev"},
		},
		{
			name:         "help command exits 0",
			args:         []string{"om2svg", "help"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: om2svg", "Commands:"},
		},
		{
			name:         "help convert shows convert help",
			args:         []string{"om2svg", "help", "convert"},
			wantCode:     ExitSuccess,
			wantInStdout: []string{"Usage: om2svg convert", "--preserve-aspect-ratio"},
		},
		{
			name:         "help with unknown topic",
			args:         []string{"om2svg", "help", "nope"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown help topic: nope"},
		},
		{
			name:         "unknown command exits with ExitUsage",
			args:         []string{"om2svg", "unknown"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"unknown command: unknown"},
		},
		{
			name:         "convert -h prints usage",
			args:         []string{"om2svg", "convert", "-h"},
			wantCode:     ExitSuccess,
			wantInStderr: []string{"Usage: om2svg convert"},
		},
		{
			name:         "unknown flag exits with ExitUsage",
			args:         []string{"om2svg", "convert", "--bogus"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"bogus"},
		},
		{
			name:         "no input exits with ExitIO",
			args:         []string{"om2svg", "convert"},
			wantCode:     ExitIO,
			wantInStderr: []string{"no input specified"},
		},
		{
			name:         "bare document argument is converted",
			args:         []string{"om2svg", "missing.yaml"},
			wantCode:     ExitIO,
			wantInStderr: []string{"missing.yaml"},
		},
		{
			name:         "invalid workers exits with ExitUsage",
			args:         []string{"om2svg", "convert", "-w", "-1", "x.yaml"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"invalid worker count"},
		},
		{
			name:         "invalid aspect ratio exits with ExitUsage",
			args:         []string{"om2svg", "convert", "--preserve-aspect-ratio", "stretch", "x.yaml"},
			wantCode:     ExitUsage,
			wantInStderr: []string{"render.preserveAspectRatio"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(nil)
			code := runMain(tt.args, env)
			if code != tt.wantCode {
				t.Errorf("runMain() = %d, want %d\nstderr: %s", code, tt.wantCode, stderr.String())
			}
			for _, want := range tt.wantInStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout missing %q, got:\n%s", want, stdout.String())
				}
			}
			for _, want := range tt.wantInStderr {
				if !strings.Contains(stderr.String(), want) {
					t.Errorf("stderr missing %q, got:\n%s", want, stderr.String())
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRunMain_Convert - End-to-end conversion
// ---------------------------------------------------------------------------

func TestRunMain_ConvertFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "poster.yaml", circleYAML)

	env, stdout, stderr := testEnv(nil)
	code := runMain([]string{"om2svg", "convert", in, "--compact"}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, want 0\nstderr: %s", code, stderr.String())
	}

	out := filepath.Join(dir, "poster.svg")
	svg, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(svg), `<circle cx="35" cy="35" r="25"/>`) {
		t.Errorf("output = %s", svg)
	}
	if strings.Contains(string(svg), "\n") {
		t.Error("--compact output has line breaks")
	}
	if !strings.Contains(stdout.String(), "Created "+out) {
		t.Errorf("stdout = %q, want Created line", stdout.String())
	}
}

func TestRunMain_ConvertDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	writeFile(t, src, "a.yaml", circleYAML)
	writeFile(t, src, "nested/b.json", `{"kind": "root", "viewBox": {"right": 10, "bottom": 10}}`)
	writeFile(t, src, "notes.txt", "ignored")
	outDir := filepath.Join(dir, "out")

	env, stdout, stderr := testEnv(nil)
	code := runMain([]string{"om2svg", "convert", src, "-o", outDir, "-w", "2", "--report"}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, want 0\nstderr: %s", code, stderr.String())
	}

	for _, p := range []string{"a.svg", "a.html", "nested/b.svg", "nested/b.html"} {
		if _, err := os.Stat(filepath.Join(outDir, p)); err != nil {
			t.Errorf("missing output %s: %v", p, err)
		}
	}
	if !strings.Contains(stdout.String(), "2 succeeded, 0 failed") {
		t.Errorf("stdout missing summary, got:\n%s", stdout.String())
	}
}

func TestRunMain_ConvertInvalidDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "broken.yaml", "kind: [root")

	env, _, stderr := testEnv(nil)
	code := runMain([]string{"om2svg", "convert", in}, env)
	if code != ExitUsage {
		t.Errorf("runMain() = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "FAILED "+in) {
		t.Errorf("stderr missing FAILED line, got:\n%s", stderr.String())
	}
}

func TestRunMain_ConvertSkippedNodes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "poster.yaml", circleYAML+"  - {id: ghost, kind: shape, shape: rect}\n")

	env, stdout, stderr := testEnv(nil)
	code := runMain([]string{"om2svg", "convert", in, "-v"}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, want 0\nstderr: %s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), `warning: shape "ghost"`) {
		t.Errorf("stderr missing diagnostic, got:\n%s", stderr.String())
	}
	if !strings.Contains(stderr.String(), "level=DEBUG") {
		t.Errorf("verbose run should log at debug level, got:\n%s", stderr.String())
	}
	if !strings.Contains(stdout.String(), "poster.yaml -> ") {
		t.Errorf("stdout missing verbose line, got:\n%s", stdout.String())
	}
}

func TestRunMain_ConvertColor(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "poster.yaml", circleYAML)

	env, stdout, stderr := testEnv(nil)
	code := runMain([]string{"om2svg", "convert", in, "-q", "--color", "--style", "monokai"}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, want 0\nstderr: %s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("stdout has no ANSI escapes: %q", out)
	}
	if !strings.Contains(out, "circle") {
		t.Errorf("stdout missing SVG content: %q", out)
	}
}

func TestRunMain_ConvertUnknownStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "poster.yaml", circleYAML)

	env, _, stderr := testEnv(nil)
	code := runMain([]string{"om2svg", "convert", in, "--report", "--style", "no-such-style"}, env)
	if code != ExitUsage {
		t.Errorf("runMain() = %d, want %d\nstderr: %s", code, ExitUsage, stderr.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "poster.svg")); !os.IsNotExist(err) {
		t.Error("no document should be printed when the style is invalid")
	}
}

func TestRunMain_ConfigFromEnv(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "poster.yaml", circleYAML)
	cfgPath := writeFile(t, dir, "om2svg.yaml", "render:\n  preserveAspectRatio: xMidYMid meet\n")

	env, _, stderr := testEnv(map[string]string{
		"OM2SVG_CONFIG": cfgPath,
		"OM2SVG_TYPO":   "1",
	})
	code := runMain([]string{"om2svg", "convert", in}, env)
	if code != ExitSuccess {
		t.Fatalf("runMain() = %d, want 0\nstderr: %s", code, stderr.String())
	}
	svg, err := os.ReadFile(filepath.Join(dir, "poster.svg"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), `preserveAspectRatio="xMidYMid meet"`) {
		t.Errorf("config not applied, got: %s", svg)
	}
	if !strings.Contains(stderr.String(), "unknown environment variable OM2SVG_TYPO") {
		t.Errorf("stderr missing typo warning, got:\n%s", stderr.String())
	}
}

// ---------------------------------------------------------------------------
// TestHasVerboseFlag - Pre-parse detection for automaxprocs logging
// ---------------------------------------------------------------------------

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		args []string
		want bool
	}{
		{[]string{"om2svg", "convert", "-v"}, true},
		{[]string{"om2svg", "convert", "--verbose", "a.yaml"}, true},
		{[]string{"om2svg", "convert", "a.yaml"}, false},
		{[]string{"om2svg", "convert", "--", "-v"}, false},
	}
	for _, tt := range tests {
		if got := hasVerboseFlag(tt.args); got != tt.want {
			t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
		}
	}
}
