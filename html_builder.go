package resumepdf

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/jrc1883/resumepdf/internal/assets"
	"github.com/jrc1883/resumepdf/internal/pipeline"
)

// htmlBuilder turns a Document into a standalone HTML page for Chrome.
type htmlBuilder struct {
	inline *pipeline.InlineConverter
}

func newHTMLBuilder() *htmlBuilder {
	return &htmlBuilder{inline: pipeline.NewInlineConverter()}
}

// Build renders the document body and CSS into the embedded page shell.
func (b *htmlBuilder) Build(doc *Document) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}

	body, err := b.body(doc)
	if err != nil {
		return "", err
	}

	page, err := assets.NewPageRenderer()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}

	out, err := page.Render(assets.PageData{
		Title:  doc.Title,
		Author: doc.Author,
		CSS:    template.CSS(buildBaseCSS() + buildStyleCSS(doc.Styles)), // #nosec G203 -- generated from typed styles
		Body:   template.HTML(body),                                     // #nosec G203 -- escaped by goldmark
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRender, err)
	}
	return out, nil
}

// body renders blocks in order, one element per block.
func (b *htmlBuilder) body(doc *Document) (string, error) {
	var buf strings.Builder
	for i, blk := range doc.Blocks {
		switch v := blk.(type) {
		case Paragraph:
			inner, err := b.inline.HTML(v.Text)
			if err != nil {
				return "", fmt.Errorf("%w: block %d: %v", ErrRender, i, err)
			}
			fmt.Fprintf(&buf, "<p class=\"%s\">%s</p>\n", styleClass(v.Style), inner)
		case Spacer:
			fmt.Fprintf(&buf, "<div class=\"spacer\" style=\"height: %.2fpt;\"></div>\n", v.Height)
		case Rule:
			fmt.Fprintf(&buf, "<hr style=\"%s\">\n", buildRuleStyle(v))
		}
	}
	return buf.String(), nil
}
