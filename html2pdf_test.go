package beaddeck

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
)

// mockRenderer implements pdfRenderer for testing.
type mockRenderer struct {
	Result      []byte
	Err         error
	CalledWith  string
	CalledOpts  *pdfOptions
	FileContent string
	Closed      bool
}

func (m *mockRenderer) RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error) {
	m.CalledWith = filePath
	m.CalledOpts = opts
	if data, err := os.ReadFile(filePath); err == nil {
		m.FileContent = string(data)
	}
	return m.Result, m.Err
}

func (m *mockRenderer) Close() error {
	m.Closed = true
	return nil
}

func TestRodConverter_ToPDF(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		html    string
		mock    *mockRenderer
		wantErr bool
	}{
		{
			name: "successful render returns PDF bytes",
			html: "<html><body>Test</body></html>",
			mock: &mockRenderer{Result: []byte("%PDF-1.4 fake pdf content")},
		},
		{
			name:    "renderer error propagates",
			html:    "<html></html>",
			mock:    &mockRenderer{Err: errors.New("browser crashed")},
			wantErr: true,
		},
		{
			name: "unicode content succeeds",
			html: "<html><body>node_a_1 → node_b_1</body></html>",
			mock: &mockRenderer{Result: []byte("%PDF-1.4 unicode")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			converter := &rodConverter{renderer: tt.mock}
			opts := &pdfOptions{Page: DefaultPageSettings()}
			got, err := converter.ToPDF(context.Background(), tt.html, opts)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != string(tt.mock.Result) {
				t.Errorf("got %q, want %q", got, tt.mock.Result)
			}
			if !strings.HasSuffix(tt.mock.CalledWith, ".html") {
				t.Errorf("renderer called with %q, want .html temp file", tt.mock.CalledWith)
			}
			if tt.mock.FileContent != tt.html {
				t.Errorf("temp file content = %q, want %q", tt.mock.FileContent, tt.html)
			}
			if tt.mock.CalledOpts != opts {
				t.Error("options were not forwarded to the renderer")
			}
			if _, err := os.Stat(tt.mock.CalledWith); !os.IsNotExist(err) {
				t.Error("temp file should be removed after rendering")
			}
		})
	}
}

func TestRodConverter_Close(t *testing.T) {
	t.Parallel()

	mock := &mockRenderer{}
	c := &rodConverter{renderer: mock}
	if err := c.Close(); err != nil {
		t.Fatalf("Close() unexpected error: %v", err)
	}
	if !mock.Closed {
		t.Error("renderer was not closed")
	}

	if err := (&rodConverter{}).Close(); err != nil {
		t.Errorf("Close() with nil renderer error = %v, want nil", err)
	}
}

func TestRodRenderer_CloseWithoutBrowser(t *testing.T) {
	t.Parallel()

	r := newRodRenderer(defaultTimeout)
	if err := r.Close(); err != nil {
		t.Errorf("Close() on unstarted renderer error = %v, want nil", err)
	}
}

func TestRodRenderer_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := newRodRenderer(defaultTimeout)
	_, err := r.RenderFromFile(ctx, "/nonexistent.html", nil)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("RenderFromFile() error = %v, want context.Canceled", err)
	}
	if r.browser != nil {
		t.Error("browser should not be launched for a canceled context")
	}
}

func TestBuildPDFOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		opts       *pdfOptions
		wantWidth  float64
		wantHeight float64
		wantMargin float64
	}{
		{
			name:       "nil options use A4 landscape",
			opts:       nil,
			wantWidth:  11.69,
			wantHeight: 8.27,
			wantMargin: 0.5,
		},
		{
			name:       "nil page uses defaults",
			opts:       &pdfOptions{},
			wantWidth:  11.69,
			wantHeight: 8.27,
			wantMargin: 0.5,
		},
		{
			name:       "letter portrait",
			opts:       &pdfOptions{Page: &PageSettings{Size: PageSizeLetter, Orientation: OrientationPortrait, Margin: 1}},
			wantWidth:  8.5,
			wantHeight: 11,
			wantMargin: 1,
		},
		{
			name:       "legal landscape",
			opts:       &pdfOptions{Page: &PageSettings{Size: PageSizeLegal, Orientation: OrientationLandscape, Margin: 0.25}},
			wantWidth:  14,
			wantHeight: 8.5,
			wantMargin: 0.25,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := buildPDFOptions(tt.opts)

			if *got.PaperWidth != tt.wantWidth {
				t.Errorf("PaperWidth = %v, want %v", *got.PaperWidth, tt.wantWidth)
			}
			if *got.PaperHeight != tt.wantHeight {
				t.Errorf("PaperHeight = %v, want %v", *got.PaperHeight, tt.wantHeight)
			}
			for name, m := range map[string]*float64{
				"top": got.MarginTop, "bottom": got.MarginBottom,
				"left": got.MarginLeft, "right": got.MarginRight,
			} {
				if *m != tt.wantMargin {
					t.Errorf("margin %s = %v, want %v", name, *m, tt.wantMargin)
				}
			}
			if got.DisplayHeaderFooter {
				t.Error("DisplayHeaderFooter should be false")
			}
			if !got.PrintBackground {
				t.Error("PrintBackground should be true")
			}
		})
	}
}
