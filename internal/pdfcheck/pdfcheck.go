// Package pdfcheck re-opens generated PDFs to confirm they are readable and
// to extract their page count, metadata and plain text.
package pdfcheck

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"
)

// Sentinel errors for PDF inspection.
var (
	ErrEmptyInput = errors.New("pdfcheck: empty PDF data")
	ErrInvalidPDF = errors.New("pdfcheck: invalid PDF")
	ErrNoPages    = errors.New("pdfcheck: document has no pages")
)

// Report describes a parsed PDF.
type Report struct {
	Pages  int
	Title  string
	Author string
	Text   string
	Size   int64
}

// Inspect parses data and extracts its plain text. A document that parses
// but has zero pages fails with ErrNoPages.
func Inspect(data []byte) (report *Report, err error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	// The parser panics on some malformed inputs.
	defer func() {
		if r := recover(); r != nil {
			report = nil
			err = fmt.Errorf("%w: %v", ErrInvalidPDF, r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	pages := reader.NumPage()
	if pages < 1 {
		return nil, ErrNoPages
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return nil, fmt.Errorf("%w: extracting text: %v", ErrInvalidPDF, err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return nil, fmt.Errorf("%w: reading text: %v", ErrInvalidPDF, err)
	}

	info := reader.Trailer().Key("Info")
	return &Report{
		Pages:  pages,
		Title:  info.Key("Title").Text(),
		Author: info.Key("Author").Text(),
		Text:   buf.String(),
		Size:   int64(len(data)),
	}, nil
}

// InspectFile reads and inspects the PDF at path.
func InspectFile(path string) (*Report, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path supplied by the user
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Inspect(data)
}
