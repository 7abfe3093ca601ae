package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// ---------------------------------------------------------------------------
// TestDiscoverFiles - Input discovery
// ---------------------------------------------------------------------------

func TestDiscoverFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "b.yml", "kind: root")
	writeFile(t, dir, "a.yaml", "kind: root")
	writeFile(t, dir, "sub/c.JSON", "{}")
	writeFile(t, dir, "readme.md", "# no")

	files, err := discoverFiles(dir, "")
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}

	want := []FileToConvert{
		{InputPath: filepath.Join(dir, "a.yaml"), OutputPath: filepath.Join(dir, "a.svg")},
		{InputPath: filepath.Join(dir, "b.yml"), OutputPath: filepath.Join(dir, "b.svg")},
		{InputPath: filepath.Join(dir, "sub", "c.JSON"), OutputPath: filepath.Join(dir, "sub", "c.svg")},
	}
	if len(files) != len(want) {
		t.Fatalf("discoverFiles() = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Errorf("files[%d] = %+v, want %+v", i, files[i], want[i])
		}
	}
}

func TestDiscoverFiles_SingleFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := writeFile(t, dir, "poster.json", "{}")

	files, err := discoverFiles(in, filepath.Join(dir, "out.svg"))
	if err != nil {
		t.Fatalf("discoverFiles() error = %v", err)
	}
	if len(files) != 1 || files[0].OutputPath != filepath.Join(dir, "out.svg") {
		t.Errorf("discoverFiles() = %+v", files)
	}
}

func TestDiscoverFiles_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	txt := writeFile(t, dir, "notes.txt", "x")

	if _, err := discoverFiles(txt, ""); !errors.Is(err, ErrInvalidExtension) {
		t.Errorf("text file error = %v, want ErrInvalidExtension", err)
	}
	if _, err := discoverFiles(filepath.Join(dir, "missing"), ""); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing path error = %v, want ErrNotExist", err)
	}
}

// ---------------------------------------------------------------------------
// TestResolveOutputPath - Output naming
// ---------------------------------------------------------------------------

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, input, outputDir, baseDir, want string
	}{
		{
			name:  "next to the source",
			input: filepath.Join("docs", "poster.yaml"),
			want:  filepath.Join("docs", "poster.svg"),
		},
		{
			name:      "explicit svg file",
			input:     "poster.yaml",
			outputDir: filepath.Join("out", "final.SVG"),
			want:      filepath.Join("out", "final.SVG"),
		},
		{
			name:      "output directory keeps relative layout",
			input:     filepath.Join("src", "a", "poster.json"),
			outputDir: "out",
			baseDir:   "src",
			want:      filepath.Join("out", "a", "poster.svg"),
		},
		{
			name:      "output directory for single file",
			input:     filepath.Join("src", "poster.yml"),
			outputDir: "out",
			want:      filepath.Join("out", "poster.svg"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveOutputPath(tt.input, tt.outputDir, tt.baseDir); got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateWorkers(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1, 64} {
		if err := validateWorkers(n); err != nil {
			t.Errorf("validateWorkers(%d) = %v, want nil", n, err)
		}
	}
	for _, n := range []int{-1, 65} {
		if err := validateWorkers(n); !errors.Is(err, ErrInvalidWorkerCount) {
			t.Errorf("validateWorkers(%d) = %v, want ErrInvalidWorkerCount", n, err)
		}
	}
}

func TestIsDocumentArg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		arg  string
		want bool
	}{
		{"poster.yaml", true},
		{"dir/poster.json", true},
		{"--config.yaml", false},
		{"convert", false},
	}
	for _, tt := range tests {
		if got := isDocumentArg(tt.arg); got != tt.want {
			t.Errorf("isDocumentArg(%q) = %v, want %v", tt.arg, got, tt.want)
		}
	}
}
