package main

import (
	"context"
	"errors"

	"github.com/jrc1883/resumepdf"
	"github.com/jrc1883/resumepdf/internal/config"
	"github.com/jrc1883/resumepdf/internal/hints"
)

// hintFor returns actionable hints for well-known failures, or "".
func hintFor(err error) string {
	var nf *configNotFoundError
	switch {
	case errors.As(err, &nf):
		return hints.ForConfigNotFound(config.SearchPaths(nf.name))
	case errors.Is(err, resumepdf.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, resumepdf.ErrCreateOutputDir), errors.Is(err, resumepdf.ErrWritePDF):
		return hints.ForOutputDirectory()
	case errors.Is(err, resumepdf.ErrUnknownVariant):
		return hints.ForAvailable(variantNames())
	case errors.Is(err, resumepdf.ErrUnknownBackend):
		return hints.ForAvailable([]string{string(resumepdf.BackendNative), string(resumepdf.BackendChrome)})
	case errors.Is(err, resumepdf.ErrInvalidPageSize), errors.Is(err, resumepdf.ErrInvalidMargin):
		return hints.ForPageSettings()
	case errors.Is(err, ErrUnsupportedShell):
		names := make([]string, len(supportedShells))
		for i, s := range supportedShells {
			names[i] = string(s)
		}
		return hints.ForAvailable(names)
	}
	return ""
}

// configNotFoundError records the name the user asked for so the hint can
// list where it was searched.
type configNotFoundError struct {
	name string
	err  error
}

func (e *configNotFoundError) Error() string { return "loading config: " + e.err.Error() }
func (e *configNotFoundError) Unwrap() error { return e.err }

func variantNames() []string {
	vs := resumepdf.Variants()
	names := make([]string, len(vs))
	for i, v := range vs {
		names[i] = string(v)
	}
	return names
}
