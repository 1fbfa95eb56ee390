package resumepdf

import (
	"context"
	"fmt"
	"time"
)

// Renderer is a render engine: it paginates a Document and returns PDF bytes.
// Render fails with ErrUnknownStyle or ErrInvalidBlock for content it cannot
// lay out, and wraps engine failures with ErrPDFGeneration.
type Renderer interface {
	Render(ctx context.Context, doc *Document) ([]byte, error)
	Close() error
}

// Compile-time interface checks.
var (
	_ Renderer = (*nativeRenderer)(nil)
	_ Renderer = (*chromeRenderer)(nil)
)

// newRenderer creates the render engine for a backend.
func newRenderer(b Backend, timeout time.Duration) (Renderer, error) {
	switch b {
	case BackendNative, "":
		return newNativeRenderer(), nil
	case BackendChrome:
		return newChromeRenderer(timeout), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, string(b))
}

// chromeRenderer builds the HTML page and prints it with headless Chrome.
type chromeRenderer struct {
	html *htmlBuilder
	pdf  pdfConverter
}

func newChromeRenderer(timeout time.Duration) *chromeRenderer {
	return &chromeRenderer{
		html: newHTMLBuilder(),
		pdf:  newRodConverter(timeout),
	}
}

// Render converts the document to HTML and prints it to PDF.
func (r *chromeRenderer) Render(ctx context.Context, doc *Document) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	htmlContent, err := r.html.Build(doc)
	if err != nil {
		return nil, err
	}

	return r.pdf.ToPDF(ctx, htmlContent, &pdfOptions{Page: doc.Page})
}

// Close releases browser resources.
func (r *chromeRenderer) Close() error {
	if r.pdf != nil {
		return r.pdf.Close()
	}
	return nil
}
