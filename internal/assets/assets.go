package assets

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
)

//go:embed templates/*
var templates embed.FS

// PageTemplateName is the page shell used by the Chrome engine.
const PageTemplateName = "page"

// PageData fills the page shell. CSS and Body are trusted, pre-built content.
type PageData struct {
	Title  string
	Author string
	CSS    template.CSS
	Body   template.HTML
}

// LoadTemplate loads an embedded HTML template by name.
// The name should not include the .html extension.
func LoadTemplate(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}

	content, err := templates.ReadFile("templates/" + name + ".html")
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, name)
	}

	return string(content), nil
}

// PageRenderer executes the parsed page shell.
type PageRenderer struct {
	tmpl *template.Template
}

// NewPageRenderer parses the embedded page shell.
func NewPageRenderer() (*PageRenderer, error) {
	content, err := LoadTemplate(PageTemplateName)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New(PageTemplateName).Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTemplateParse, err)
	}
	return &PageRenderer{tmpl: tmpl}, nil
}

// Render returns the complete HTML document.
func (r *PageRenderer) Render(data PageData) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateRender, err)
	}
	return buf.String(), nil
}
