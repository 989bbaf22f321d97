package pipeline

import (
	"context"
	"testing"
)

// ---------------------------------------------------------------------------
// TestCSSInjection_InjectCSS
// ---------------------------------------------------------------------------

func TestCSSInjection_InjectCSS(t *testing.T) {
	t.Parallel()

	css := "h1 { color: blue; }"

	tests := []struct {
		name string
		html string
		css  string
		want string
	}{
		{
			name: "before closing head",
			html: "<html><head><title>t</title></head><body></body></html>",
			css:  css,
			want: "<html><head><title>t</title><style>h1 { color: blue; }</style></head><body></body></html>",
		},
		{
			name: "after body when no head",
			html: `<body class="deck"><p>x</p></body>`,
			css:  css,
			want: `<body class="deck"><style>h1 { color: blue; }</style><p>x</p></body>`,
		},
		{
			name: "prepended to fragment",
			html: "<p>x</p>",
			css:  css,
			want: "<style>h1 { color: blue; }</style><p>x</p>",
		},
		{
			name: "empty CSS leaves document alone",
			html: "<p>x</p>",
			css:  "",
			want: "<p>x</p>",
		},
		{
			name: "style close sequence escaped",
			html: "<p>x</p>",
			css:  "</style><script>",
			want: `<style><\/style><script></style><p>x</p>`,
		},
	}

	inj := &CSSInjection{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := inj.InjectCSS(context.Background(), tt.html, tt.css); got != tt.want {
				t.Errorf("InjectCSS() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestCSSInjection_CanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := "<html><head></head></html>"
	if got := (&CSSInjection{}).InjectCSS(ctx, in, "p{}"); got != in {
		t.Errorf("InjectCSS() with canceled context = %q, want input unchanged", got)
	}
}

// ---------------------------------------------------------------------------
// TestPrefixFirstParagraph
// ---------------------------------------------------------------------------

func TestPrefixFirstParagraph(t *testing.T) {
	t.Parallel()

	prefix := "<strong>node_c:</strong> "

	tests := []struct {
		name     string
		fragment string
		want     string
	}{
		{
			name:     "single paragraph",
			fragment: "<p>Independent project.</p>\n",
			want:     "<p><strong>node_c:</strong> Independent project.</p>\n",
		},
		{
			name:     "leading whitespace",
			fragment: "\n<p>a</p>\n<p>b</p>\n",
			want:     "<p><strong>node_c:</strong> a</p>\n<p>b</p>\n",
		},
		{
			name:     "starts with heading",
			fragment: "<h1>node_c</h1>\n<p>a</p>\n",
			want:     "<p><strong>node_c:</strong></p>\n<h1>node_c</h1>\n<p>a</p>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := PrefixFirstParagraph(tt.fragment, prefix); got != tt.want {
				t.Errorf("PrefixFirstParagraph() = %q, want %q", got, tt.want)
			}
		})
	}
}
