package beaddeck

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyDocument  = errors.New("document has no blocks")
	ErrInvalidBlock   = errors.New("invalid block")
	ErrHTMLRender     = errors.New("HTML rendering failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Page settings validation errors.
	ErrInvalidPageSize    = errors.New("invalid page size")
	ErrInvalidOrientation = errors.New("invalid orientation")
	ErrInvalidMargin      = errors.New("invalid margin")

	// Asset loading errors.
	ErrStyleNotFound  = errors.New("style not found")
	ErrInvalidBaseDir = errors.New("invalid base directory")
)
