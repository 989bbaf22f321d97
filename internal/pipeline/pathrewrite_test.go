package pipeline

// Notes:
// - Tests exercise RewriteImagePaths through full documents, since the deck
//   always hands over a complete HTML page.
// - Path traversal tests verify the observable behavior (src not rewritten).

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func wrapDoc(body string) string {
	return "<!DOCTYPE html><html><head><title>t</title></head><body>" + body + "</body></html>"
}

// ---------------------------------------------------------------------------
// TestRewriteImagePaths
// ---------------------------------------------------------------------------

func TestRewriteImagePaths(t *testing.T) {
	t.Parallel()

	baseDir := "/work"
	if runtime.GOOS == "windows" {
		baseDir = `C:\work`
	}

	tests := []struct {
		name         string
		body         string
		wantContains []string
		wantExcludes []string
	}{
		{
			name:         "relative graph image",
			body:         `<img src="output/graph_1_dependency_flow.png">`,
			wantContains: []string{`src="file://`, `output/graph_1_dependency_flow.png"`},
		},
		{
			name:         "dot slash prefix",
			body:         `<img src="./output/g.png">`,
			wantContains: []string{`src="file://`},
			wantExcludes: []string{`/./`},
		},
		{
			name:         "https unchanged",
			body:         `<img src="https://example.com/g.png">`,
			wantContains: []string{`src="https://example.com/g.png"`},
		},
		{
			name:         "data URI unchanged",
			body:         `<img src="data:image/png;base64,AAAA">`,
			wantContains: []string{`src="data:image/png;base64,AAAA"`},
		},
		{
			name:         "existing file URL unchanged",
			body:         `<img src="file:///tmp/g.png">`,
			wantContains: []string{`src="file:///tmp/g.png"`},
		},
		{
			name:         "traversal left alone",
			body:         `<img src="../../etc/secret.png">`,
			wantContains: []string{`src="../../etc/secret.png"`},
		},
		{
			name:         "links untouched",
			body:         `<a href="README.md">readme</a>`,
			wantContains: []string{`href="README.md"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := RewriteImagePaths(wrapDoc(tt.body), baseDir)
			if err != nil {
				t.Fatalf("RewriteImagePaths() error = %v", err)
			}
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q\ngot: %s", want, got)
				}
			}
			for _, exclude := range tt.wantExcludes {
				if strings.Contains(got, exclude) {
					t.Errorf("output should not contain %q\ngot: %s", exclude, got)
				}
			}
		})
	}
}

func TestRewriteImagePaths_EmptyBaseDir(t *testing.T) {
	t.Parallel()

	in := wrapDoc(`<img src="output/g.png">`)
	got, err := RewriteImagePaths(in, "")
	if err != nil {
		t.Fatalf("RewriteImagePaths() error = %v", err)
	}
	if got != in {
		t.Errorf("RewriteImagePaths() changed input with empty baseDir:\n%s", got)
	}
}

func TestRewriteImagePaths_AbsoluteResult(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	got, err := RewriteImagePaths(wrapDoc(`<img src="output/g.png">`), dir)
	if err != nil {
		t.Fatalf("RewriteImagePaths() error = %v", err)
	}
	want := FileURL(filepath.Join(dir, "output", "g.png"))
	if !strings.Contains(got, `src="`+want+`"`) {
		t.Errorf("output missing src %q\ngot: %s", want, got)
	}
}

// ---------------------------------------------------------------------------
// TestFileURL
// ---------------------------------------------------------------------------

func TestFileURL(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("unix path layout")
	}

	tests := []struct {
		path string
		want string
	}{
		{"/work/output/g.png", "file:///work/output/g.png"},
		{"/work/my graphs/g.png", "file:///work/my%20graphs/g.png"},
	}

	for _, tt := range tests {
		if got := FileURL(tt.path); got != tt.want {
			t.Errorf("FileURL(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
