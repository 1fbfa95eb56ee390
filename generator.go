package resumepdf

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jrc1883/resumepdf/internal/fileutil"
)

// outputFileMode is the permission used for written PDF and HTML files.
const outputFileMode = 0o644

// Generator assembles the résumé and writes it as a PDF.
// Create with NewGenerator, use Generate, and Close when done.
// A Generator is not safe for concurrent use; batch callers create one each.
type Generator struct {
	cfg      generatorConfig
	renderer Renderer
	html     *htmlBuilder
}

// NewGenerator creates a Generator. The native backend is used unless
// WithBackend or WithRenderer says otherwise. Style overrides are checked
// here so a bad override fails before any rendering.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		cfg:  generatorConfig{timeout: defaultTimeout, backend: BackendNative},
		html: newHTMLBuilder(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if _, err := ParseBackend(string(g.cfg.backend)); err != nil {
		return nil, err
	}

	if _, err := NewStylesheet(DefaultVariant, g.cfg.overrides...); err != nil {
		return nil, err
	}

	// Create render engine if not injected (e.g., by tests)
	if g.renderer == nil {
		r, err := newRenderer(g.cfg.backend, g.cfg.timeout)
		if err != nil {
			return nil, err
		}
		g.renderer = r
	}

	return g, nil
}

// NewDocument assembles the canonical résumé for a variant into a Document
// ready for rendering. A nil page uses DefaultPageSettings.
func NewDocument(v Variant, page *PageSettings, overrides ...StyleOverride) (*Document, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	if page == nil {
		page = DefaultPageSettings()
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}

	styles, err := NewStylesheet(v, overrides...)
	if err != nil {
		return nil, err
	}

	r, err := CanonicalResume(v)
	if err != nil {
		return nil, err
	}

	blocks, err := Assemble(r, styles)
	if err != nil {
		return nil, err
	}

	return &Document{
		Blocks: blocks,
		Styles: styles,
		Page:   page,
		Title:  documentTitle,
		Author: Author,
	}, nil
}

// Generate builds the document for input.Variant, renders it and writes the
// file to input.OutputPath, creating the parent directory if needed. An
// existing file is replaced atomically; a failed run leaves it untouched.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (g *Generator) Generate(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	variant, err := ParseVariant(string(input.Variant))
	if err != nil {
		return nil, err
	}

	doc, err := NewDocument(variant, input.Page, g.cfg.overrides...)
	if err != nil {
		return nil, err
	}

	output := input.OutputPath
	if output == "" {
		output = DefaultOutputPath
	}

	result = &Result{Blocks: doc.Blocks}

	if input.HTML || input.HTMLOnly {
		htmlContent, err := g.html.Build(doc)
		if err != nil {
			return nil, err
		}
		htmlPath := HTMLPathFor(output)
		if err := writeOutput(htmlPath, []byte(htmlContent)); err != nil {
			return nil, err
		}
		result.HTML = []byte(htmlContent)
		result.HTMLPath = htmlPath
	}

	if input.HTMLOnly {
		return result, nil
	}

	ctx, cancel := context.WithTimeout(ctx, g.cfg.timeout)
	defer cancel()

	pdf, err := g.Build(ctx, doc)
	if err != nil {
		return nil, err
	}

	if err := writeOutput(output, pdf); err != nil {
		return nil, err
	}

	result.PDF = pdf
	result.Path = output
	return result, nil
}

// Build renders a document with the configured engine and returns the PDF
// bytes without touching the filesystem.
func (g *Generator) Build(ctx context.Context, doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: document cannot be nil", ErrRender)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return g.renderer.Render(ctx, doc)
}

// Close releases render engine resources.
func (g *Generator) Close() error {
	if g.renderer != nil {
		return g.renderer.Close()
	}
	return nil
}

// HTMLPathFor returns the intermediate HTML path written beside a PDF.
func HTMLPathFor(pdfPath string) string {
	ext := filepath.Ext(pdfPath)
	if strings.EqualFold(ext, ".pdf") {
		return strings.TrimSuffix(pdfPath, ext) + ".html"
	}
	return pdfPath + ".html"
}

// writeOutput creates the parent directory and replaces path atomically.
func writeOutput(path string, data []byte) error {
	if err := fileutil.EnsureDir(filepath.Dir(path)); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
	}
	if err := fileutil.WriteFileAtomic(path, data, outputFileMode); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return nil
}
