package beaddeck

import (
	"fmt"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeA4     = "a4"
	PageSizeLetter = "letter"
	PageSizeLegal  = "legal"
)

// Orientation constants.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// Margin bounds in inches.
const (
	MinMargin     = 0.25
	MaxMargin     = 3.0
	DefaultMargin = 0.5
)

// paperSizes holds portrait width and height in inches.
var paperSizes = map[string][2]float64{
	PageSizeA4:     {8.27, 11.69},
	PageSizeLetter: {8.5, 11},
	PageSizeLegal:  {8.5, 14},
}

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size        string  // "a4", "letter", "legal"
	Orientation string  // "portrait", "landscape"
	Margin      float64 // inches, applied to all sides
}

// DefaultPageSettings returns A4 landscape with half-inch margins, the
// layout used for presentations.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size:        PageSizeA4,
		Orientation: OrientationLandscape,
		Margin:      DefaultMargin,
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	if _, ok := paperSizes[strings.ToLower(p.Size)]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	switch strings.ToLower(p.Orientation) {
	case OrientationPortrait, OrientationLandscape:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidOrientation, p.Orientation)
	}

	if p.Margin < MinMargin || p.Margin > MaxMargin {
		return fmt.Errorf("%w: %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, p.Margin, MinMargin, MaxMargin)
	}

	return nil
}

// Dimensions returns the paper width and height in inches after applying
// the orientation. p must be valid.
func (p *PageSettings) Dimensions() (width, height float64) {
	size := paperSizes[strings.ToLower(p.Size)]
	width, height = size[0], size[1]
	if strings.EqualFold(p.Orientation, OrientationLandscape) {
		width, height = height, width
	}
	return width, height
}

// Input contains conversion parameters.
type Input struct {
	Title    string  // Document title, written to the PDF metadata
	Blocks   []Block // Ordered content (required)
	CSS      string  // Extra CSS appended after the stylesheet (optional)
	HTMLOnly bool    // Skip PDF generation, return HTML only
}

// Substitution records an image block that was replaced by its fallback.
type Substitution struct {
	Src      string
	Fallback string
	Err      error
}

// ConvertResult holds the output of a conversion.
type ConvertResult struct {
	HTML          []byte
	PDF           []byte // nil when Input.HTMLOnly is set
	Substitutions []Substitution
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout time.Duration
	page    *PageSettings
	baseDir string
	style   string
	hasCSS  bool
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF generation timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("beaddeck: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithPage sets the page layout. nil keeps the default.
func WithPage(p *PageSettings) Option {
	return func(c *Converter) {
		if p != nil {
			c.cfg.page = p
		}
	}
}

// WithBaseDir sets the directory relative image paths are resolved against.
// Defaults to the working directory.
func WithBaseDir(dir string) Option {
	return func(c *Converter) {
		c.cfg.baseDir = dir
	}
}

// WithStyle replaces the embedded stylesheet with css.
func WithStyle(css string) Option {
	return func(c *Converter) {
		c.cfg.style = css
		c.cfg.hasCSS = true
	}
}
