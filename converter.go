package beaddeck

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alnah/go-beaddeck/internal/assets"
	"github.com/alnah/go-beaddeck/internal/pipeline"
)

// Compile-time interface implementation checks.
var (
	_ pipeline.MarkdownRenderer = (*pipeline.GoldmarkRenderer)(nil)
	_ pipeline.CSSInjector      = (*pipeline.CSSInjection)(nil)
)

// Converter renders block sequences to PDF.
// Create with NewConverter, use Convert for conversion, and Close when done.
// A Converter is not safe for concurrent use.
type Converter struct {
	cfg          converterConfig
	markdown     pipeline.MarkdownRenderer
	cssInjector  pipeline.CSSInjector
	probe        imageProbe
	pdfConverter pdfConverter
}

// NewConverter creates a Converter with default configuration: A4
// landscape, half-inch margins, embedded deck stylesheet, 30s timeout.
// Chrome is only started on the first Convert that needs a PDF.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout: defaultTimeout,
			page:    DefaultPageSettings(),
		},
		markdown:    pipeline.NewGoldmarkRenderer(),
		cssInjector: &pipeline.CSSInjection{},
		probe:       probeImage,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.cfg.page.Validate(); err != nil {
		return nil, err
	}

	baseDir, err := resolveBaseDir(c.cfg.baseDir)
	if err != nil {
		return nil, err
	}
	c.cfg.baseDir = baseDir

	if !c.cfg.hasCSS {
		css, err := assets.NewEmbeddedLoader().LoadStyle(assets.DefaultStyleName)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStyleNotFound, err)
		}
		c.cfg.style = css
	}

	// Create PDF converter if not injected (e.g., by tests)
	if c.pdfConverter == nil {
		c.pdfConverter = newRodConverter(c.cfg.timeout)
	}

	return c, nil
}

// resolveBaseDir makes dir absolute and checks it is a directory.
func resolveBaseDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBaseDir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBaseDir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidBaseDir, abs)
	}
	return abs, nil
}

// Convert renders the blocks to HTML and, unless input.HTMLOnly is set, to
// PDF. Undecodable images never fail the conversion: they are replaced by
// their fallback text and listed in the result.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *ConvertResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if err := validateInput(input); err != nil {
		return nil, err
	}

	renderer := &blockRenderer{
		markdown: c.markdown,
		probe:    c.probe,
		baseDir:  c.cfg.baseDir,
	}
	htmlContent, subs, err := renderer.render(ctx, input.Title, input.Blocks)
	if err != nil {
		return nil, err
	}

	// Images referenced from README bodies are relative to the base directory
	htmlContent, err = pipeline.RewriteImagePaths(htmlContent, c.cfg.baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: rewriting image paths: %v", ErrHTMLRender, err)
	}

	// Layout rules first, stylesheet next, caller CSS last (can override)
	cssContent := buildLayoutCSS() + c.cfg.style
	if input.CSS != "" {
		cssContent += "\n" + input.CSS
	}
	htmlContent = c.cssInjector.InjectCSS(ctx, htmlContent, cssContent)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result = &ConvertResult{
		HTML:          []byte(htmlContent),
		Substitutions: subs,
	}
	if input.HTMLOnly {
		return result, nil
	}

	pdfBytes, err := c.pdfConverter.ToPDF(ctx, htmlContent, &pdfOptions{Page: c.cfg.page})
	if err != nil {
		return nil, fmt.Errorf("converting to PDF: %w", err)
	}
	result.PDF = pdfBytes

	return result, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.pdfConverter != nil {
		return c.pdfConverter.Close()
	}
	return nil
}

// validateInput checks that there is something to render and that every
// block is well formed.
func validateInput(input Input) error {
	if len(input.Blocks) == 0 {
		return ErrEmptyDocument
	}
	for i, b := range input.Blocks {
		if err := b.Validate(); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	return nil
}
