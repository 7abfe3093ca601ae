package hints

import (
	"path/filepath"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestHints - Hint formatting
// ---------------------------------------------------------------------------

func TestHints(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want []string
	}{
		{
			name: "config with user dir",
			got:  ForConfigNotFound("/home/u/.config"),
			want: []string{"--config", filepath.Join("/home/u/.config", "go-om2svg", "<name>.yaml")},
		},
		{
			name: "config without user dir",
			got:  ForConfigNotFound(""),
			want: []string{"use --config /path/to/file.yaml"},
		},
		{
			name: "styles",
			got:  ForStyleNotFound([]string{"github", "monokai"}),
			want: []string{"available: github, monokai"},
		},
		{
			name: "extensions",
			got:  ForDocumentExtension([]string{".yaml", ".json"}),
			want: []string{".yaml, .json"},
		},
		{name: "document", got: ForInvalidDocument(), want: []string{`"root"`}},
		{name: "output", got: ForOutputDirectory(), want: []string{"writable"}},
		{name: "partial", got: ForPartialOutput(), want: []string{"-v"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if !strings.HasPrefix(tt.got, "\n  hint: ") {
				t.Errorf("hint %q lacks prefix", tt.got)
			}
			for _, w := range tt.want {
				if !strings.Contains(tt.got, w) {
					t.Errorf("hint %q missing %q", tt.got, w)
				}
			}
		})
	}
}

func TestEmptyLists(t *testing.T) {
	t.Parallel()

	if got := ForStyleNotFound(nil); got != "" {
		t.Errorf("ForStyleNotFound(nil) = %q, want empty", got)
	}
	if got := ForDocumentExtension(nil); got != "" {
		t.Errorf("ForDocumentExtension(nil) = %q, want empty", got)
	}
}
