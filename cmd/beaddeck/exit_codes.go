package main

import (
	"errors"
	"os"

	"github.com/alnah/go-beaddeck"
	"github.com/alnah/go-beaddeck/internal/config"
	"github.com/alnah/go-beaddeck/internal/dateutil"
	"github.com/alnah/go-beaddeck/internal/fileutil"
)

// Exit codes for the beaddeck CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // PDF written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Missing output directory, permission denied
	ExitBrowser = 4 // Browser/Chrome errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Browser errors (exit 4)
	if errors.Is(err, beaddeck.ErrBrowserConnect) ||
		errors.Is(err, beaddeck.ErrPageCreate) ||
		errors.Is(err, beaddeck.ErrPageLoad) ||
		errors.Is(err, beaddeck.ErrPDFGeneration) {
		return ExitBrowser
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, fileutil.ErrParentMissing) ||
		errors.Is(err, beaddeck.ErrInvalidBaseDir) ||
		errors.Is(err, ErrReadCSS) ||
		errors.Is(err, ErrWritePDF) ||
		errors.Is(err, ErrWriteHTML) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidTimeout) ||
		errors.Is(err, dateutil.ErrInvalidDateFormat) ||
		errors.Is(err, beaddeck.ErrInvalidPageSize) ||
		errors.Is(err, beaddeck.ErrInvalidOrientation) ||
		errors.Is(err, beaddeck.ErrInvalidMargin) ||
		errors.Is(err, beaddeck.ErrStyleNotFound) {
		return ExitUsage
	}

	return ExitGeneral
}
