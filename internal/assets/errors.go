package assets

import "errors"

// Sentinel errors for asset operations.
var (
	// ErrTemplateNotFound indicates the requested template does not exist.
	ErrTemplateNotFound = errors.New("template not found")

	// ErrTemplateParse indicates an embedded template failed to parse.
	ErrTemplateParse = errors.New("template parse failed")

	// ErrTemplateRender indicates template execution failed.
	ErrTemplateRender = errors.New("template rendering failed")

	// ErrInvalidAssetName indicates the asset name contains invalid characters
	// such as path separators or traversal sequences.
	ErrInvalidAssetName = errors.New("invalid asset name")
)
