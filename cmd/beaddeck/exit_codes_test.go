package main

// Notes:
// - exitCodeFor: we test the sentinel errors of every package the CLI
//   calls, plus wrapped errors to verify the errors.Is() chain.

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/alnah/go-beaddeck"
	"github.com/alnah/go-beaddeck/internal/config"
	"github.com/alnah/go-beaddeck/internal/dateutil"
	"github.com/alnah/go-beaddeck/internal/fileutil"
	"github.com/alnah/go-beaddeck/internal/inspect"
)

// ---------------------------------------------------------------------------
// TestExitCodeFor - Error to exit code mapping
// ---------------------------------------------------------------------------

func TestExitCodeFor(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		err  error
		want int
	}{
		// Success
		{"nil error", nil, ExitSuccess},

		// Browser errors (exit 4)
		{"browser connect", beaddeck.ErrBrowserConnect, ExitBrowser},
		{"page create", beaddeck.ErrPageCreate, ExitBrowser},
		{"page load", beaddeck.ErrPageLoad, ExitBrowser},
		{"pdf generation", beaddeck.ErrPDFGeneration, ExitBrowser},
		{"wrapped browser connect", fmt.Errorf("converting to PDF: %w", beaddeck.ErrBrowserConnect), ExitBrowser},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"parent missing", fileutil.ErrParentMissing, ExitIO},
		{"invalid base dir", beaddeck.ErrInvalidBaseDir, ExitIO},
		{"read css", ErrReadCSS, ExitIO},
		{"write pdf", ErrWritePDF, ExitIO},
		{"write html", ErrWriteHTML, ExitIO},
		{"wrapped write pdf", fmt.Errorf("%w: %w", ErrWritePDF, fileutil.ErrParentMissing), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"field too long", config.ErrFieldTooLong, ExitUsage},
		{"invalid timeout", config.ErrInvalidTimeout, ExitUsage},
		{"invalid date", dateutil.ErrInvalidDateFormat, ExitUsage},
		{"invalid page size", beaddeck.ErrInvalidPageSize, ExitUsage},
		{"invalid orientation", beaddeck.ErrInvalidOrientation, ExitUsage},
		{"invalid margin", beaddeck.ErrInvalidMargin, ExitUsage},
		{"style not found", beaddeck.ErrStyleNotFound, ExitUsage},
		{"wrapped config parse", fmt.Errorf("loading config: %w", config.ErrConfigParse), ExitUsage},

		// General errors (exit 1)
		{"verification", fmt.Errorf("%w: %w", ErrVerify, inspect.ErrTooFewPages), ExitGeneral},
		{"empty document", beaddeck.ErrEmptyDocument, ExitGeneral},
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
		{"wrapped unknown", fmt.Errorf("context: %w", errors.New("unknown")), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := exitCodeFor(tt.err)
			if got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix convention compliance
// ---------------------------------------------------------------------------

func TestExitCodeConstants(t *testing.T) {
	t.Parallel()

	if ExitSuccess != 0 {
		t.Errorf("ExitSuccess = %d, want 0", ExitSuccess)
	}
	if ExitGeneral != 1 {
		t.Errorf("ExitGeneral = %d, want 1", ExitGeneral)
	}
	if ExitUsage != 2 {
		t.Errorf("ExitUsage = %d, want 2", ExitUsage)
	}
	if ExitIO >= 126 {
		t.Errorf("ExitIO = %d, should be < 126", ExitIO)
	}
	if ExitBrowser >= 126 {
		t.Errorf("ExitBrowser = %d, should be < 126", ExitBrowser)
	}
}
