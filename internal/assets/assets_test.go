package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadTemplate(t *testing.T) {
	t.Parallel()

	content, err := LoadTemplate(PageTemplateName)
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}
	for _, want := range []string{"<!DOCTYPE html>", "{{.Title}}", "{{.CSS}}", "{{.Body}}"} {
		if !strings.Contains(content, want) {
			t.Errorf("page template missing %q", want)
		}
	}
}

func TestLoadTemplate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty name", "", ErrInvalidAssetName},
		{"path traversal", "../page", ErrInvalidAssetName},
		{"backslash", `templates\page`, ErrInvalidAssetName},
		{"extension included", "page.html", ErrInvalidAssetName},
		{"missing template", "letter", ErrTemplateNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadTemplate(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("LoadTemplate(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestPageRenderer_Render(t *testing.T) {
	t.Parallel()

	r, err := NewPageRenderer()
	if err != nil {
		t.Fatalf("NewPageRenderer() error = %v", err)
	}

	got, err := r.Render(PageData{
		Title:  "Cannon <Resume>",
		Author: `Joseph "Joe" Cannon`,
		CSS:    "p { margin: 0; }",
		Body:   "<p><strong>JOSEPH CANNON</strong></p>",
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	checks := []struct {
		name string
		want string
	}{
		{"title escaped", "<title>Cannon &lt;Resume&gt;</title>"},
		{"author attribute escaped", `content="Joseph &#34;Joe&#34; Cannon"`},
		{"css kept", "p { margin: 0; }"},
		{"body kept", "<p><strong>JOSEPH CANNON</strong></p>"},
	}
	for _, c := range checks {
		if !strings.Contains(got, c.want) {
			t.Errorf("%s: output missing %q:\n%s", c.name, c.want, got)
		}
	}
}
