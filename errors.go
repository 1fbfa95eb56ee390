package resumepdf

import "errors"

// Sentinel errors for library operations.
var (
	// Filesystem errors.
	ErrCreateOutputDir = errors.New("failed to create output directory")
	ErrWritePDF        = errors.New("failed to write output file")

	// Render errors.
	ErrRender         = errors.New("render failed")
	ErrUnknownStyle   = errors.New("unknown style")
	ErrInvalidBlock   = errors.New("invalid content block")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Input validation errors.
	ErrNilResume       = errors.New("resume cannot be nil")
	ErrUnknownVariant  = errors.New("unknown resume variant")
	ErrUnknownBackend  = errors.New("unknown render backend")
	ErrInvalidPageSize = errors.New("invalid page size")
	ErrInvalidMargin   = errors.New("invalid margin")
	ErrInvalidColor    = errors.New("invalid color")
)
