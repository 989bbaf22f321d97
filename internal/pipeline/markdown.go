package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// ErrMarkdownRender indicates a README body could not be rendered.
var ErrMarkdownRender = errors.New("markdown rendering failed")

// crlfOrCR matches Windows and old Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// MarkdownRenderer turns Markdown text into an HTML fragment.
type MarkdownRenderer interface {
	RenderFragment(ctx context.Context, content string) (string, error)
}

// GoldmarkRenderer renders README bodies with Goldmark.
// Raw HTML in the input is omitted (no html.WithUnsafe).
type GoldmarkRenderer struct {
	md goldmark.Markdown
}

// NewGoldmarkRenderer creates a GoldmarkRenderer with tables and
// strikethrough. Linkify is left out so names like code.py stay plain text.
func NewGoldmarkRenderer() *GoldmarkRenderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
		),
		goldmark.WithRendererOptions(
			html.WithXHTML(),
		),
	)
	return &GoldmarkRenderer{md: md}
}

// RenderFragment converts Markdown to an HTML fragment (no <html>/<body>).
func (r *GoldmarkRenderer) RenderFragment(ctx context.Context, content string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(crlfOrCR.ReplaceAllString(content, "\n")), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMarkdownRender, err)
	}
	return buf.String(), nil
}
