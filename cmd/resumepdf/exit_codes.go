package main

import (
	"context"
	"errors"
	"os"

	"github.com/jrc1883/resumepdf"
	"github.com/jrc1883/resumepdf/internal/config"
	"github.com/jrc1883/resumepdf/internal/pdfcheck"
)

// Exit codes for the resumepdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Résumé written
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // Output directory or file could not be written
	ExitRender  = 4 // Layout, PDF generation, or browser errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Render errors (exit 4)
	if errors.Is(err, resumepdf.ErrRender) ||
		errors.Is(err, resumepdf.ErrUnknownStyle) ||
		errors.Is(err, resumepdf.ErrInvalidBlock) ||
		errors.Is(err, resumepdf.ErrPDFGeneration) ||
		errors.Is(err, resumepdf.ErrBrowserConnect) ||
		errors.Is(err, resumepdf.ErrPageCreate) ||
		errors.Is(err, resumepdf.ErrPageLoad) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, ErrVerify) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, resumepdf.ErrCreateOutputDir) ||
		errors.Is(err, resumepdf.ErrWritePDF) ||
		errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, pdfcheck.ErrEmptyInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		errors.Is(err, resumepdf.ErrUnknownVariant) ||
		errors.Is(err, resumepdf.ErrUnknownBackend) ||
		errors.Is(err, resumepdf.ErrInvalidPageSize) ||
		errors.Is(err, resumepdf.ErrInvalidMargin) ||
		errors.Is(err, resumepdf.ErrInvalidColor) ||
		errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidTimeout) ||
		errors.Is(err, ErrConflictingFlags) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, ErrUnsupportedShell) ||
		errors.Is(err, ErrMissingArgument) {
		return ExitUsage
	}

	return ExitGeneral
}
