package main

// Notes:
// - exitCodeFor: we test every sentinel the CLI can surface, plus wrapped
//   errors to verify the errors.Is chain.
// - Exit code constants: we verify Unix conventions (0=success, 1=general,
//   2=usage) and that custom codes stay below 126.

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/jrc1883/resumepdf"
	"github.com/jrc1883/resumepdf/internal/config"
	"github.com/jrc1883/resumepdf/internal/pdfcheck"
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

		// Render errors (exit 4)
		{"render", resumepdf.ErrRender, ExitRender},
		{"unknown style", resumepdf.ErrUnknownStyle, ExitRender},
		{"invalid block", resumepdf.ErrInvalidBlock, ExitRender},
		{"pdf generation", resumepdf.ErrPDFGeneration, ExitRender},
		{"browser connect", resumepdf.ErrBrowserConnect, ExitRender},
		{"page create", resumepdf.ErrPageCreate, ExitRender},
		{"page load", resumepdf.ErrPageLoad, ExitRender},
		{"deadline exceeded", context.DeadlineExceeded, ExitRender},
		{"verify", ErrVerify, ExitRender},
		{"wrapped unknown style", fmt.Errorf("block 3: %w", resumepdf.ErrUnknownStyle), ExitRender},
		{"verify wrapping missing file", fmt.Errorf("%w: %w", ErrVerify, os.ErrNotExist), ExitRender},

		// I/O errors (exit 3)
		{"create output dir", resumepdf.ErrCreateOutputDir, ExitIO},
		{"write pdf", resumepdf.ErrWritePDF, ExitIO},
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"empty pdf", pdfcheck.ErrEmptyInput, ExitIO},
		{"wrapped write pdf", fmt.Errorf("saving: %w", resumepdf.ErrWritePDF), ExitIO},

		// Usage/config/validation errors (exit 2)
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"empty config name", config.ErrEmptyConfigName, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"config invalid", config.ErrConfigInvalid, ExitUsage},
		{"unknown variant", resumepdf.ErrUnknownVariant, ExitUsage},
		{"unknown backend", resumepdf.ErrUnknownBackend, ExitUsage},
		{"invalid page size", resumepdf.ErrInvalidPageSize, ExitUsage},
		{"invalid margin", resumepdf.ErrInvalidMargin, ExitUsage},
		{"invalid color", resumepdf.ErrInvalidColor, ExitUsage},
		{"usage", ErrUsage, ExitUsage},
		{"invalid worker count", ErrInvalidWorkerCount, ExitUsage},
		{"invalid timeout", ErrInvalidTimeout, ExitUsage},
		{"conflicting flags", ErrConflictingFlags, ExitUsage},
		{"unknown command", ErrUnknownCommand, ExitUsage},
		{"unsupported shell", fmt.Errorf("%w: \"ksh\"", ErrUnsupportedShell), ExitUsage},
		{"missing argument", ErrMissingArgument, ExitUsage},
		{"config not found type", &configNotFoundError{name: "work", err: config.ErrConfigNotFound}, ExitUsage},

		// General errors (exit 1)
		{"unknown error", errors.New("something unexpected"), ExitGeneral},
		{"invalid pdf", pdfcheck.ErrInvalidPDF, ExitGeneral},
		{"wrapped unknown", fmt.Errorf("context: %w", errors.New("unknown")), ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestExitCodeConstants - Unix conventions
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

	codes := map[string]int{"ExitIO": ExitIO, "ExitRender": ExitRender}
	seen := map[int]string{ExitSuccess: "ExitSuccess", ExitGeneral: "ExitGeneral", ExitUsage: "ExitUsage"}
	for name, code := range codes {
		if code >= 126 {
			t.Errorf("%s = %d, must be < 126", name, code)
		}
		if other, dup := seen[code]; dup {
			t.Errorf("%s = %d duplicates %s", name, code, other)
		}
		seen[code] = name
	}
}
