package resumepdf

import (
	"errors"
	"testing"
)

// strayBlock satisfies Block but is not one of the supported kinds.
type strayBlock struct{}

func (strayBlock) Kind() BlockKind { return "stray" }
func (strayBlock) isBlock()        {}

func TestBlockKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		block Block
		want  BlockKind
	}{
		{Paragraph{}, KindParagraph},
		{Spacer{}, KindSpacer},
		{Rule{}, KindRule},
	}
	for _, tt := range tests {
		if got := tt.block.Kind(); got != tt.want {
			t.Errorf("%T.Kind() = %q, want %q", tt.block, got, tt.want)
		}
	}
}

func TestDocument_Validate(t *testing.T) {
	t.Parallel()

	sheet, _ := NewStylesheet(VariantConcise)
	okRule := Rule{Thickness: 1, Color: ColorAccent, WidthFraction: 1}

	tests := []struct {
		name    string
		doc     Document
		wantErr error
	}{
		{"empty document", Document{Styles: sheet}, nil},
		{"valid blocks", Document{Styles: sheet, Page: DefaultPageSettings(), Blocks: []Block{
			Paragraph{Text: "x", Style: StyleNormal}, Spacer{Height: 0}, okRule,
		}}, nil},
		{"no stylesheet", Document{}, ErrRender},
		{"unknown style", Document{Styles: sheet, Blocks: []Block{Paragraph{Text: "x", Style: "title"}}}, ErrUnknownStyle},
		{"negative spacer", Document{Styles: sheet, Blocks: []Block{Spacer{Height: -1}}}, ErrInvalidBlock},
		{"zero width rule", Document{Styles: sheet, Blocks: []Block{Rule{Thickness: 1}}}, ErrInvalidBlock},
		{"too wide rule", Document{Styles: sheet, Blocks: []Block{Rule{Thickness: 1, WidthFraction: 1.5}}}, ErrInvalidBlock},
		{"zero thickness rule", Document{Styles: sheet, Blocks: []Block{Rule{WidthFraction: 0.5}}}, ErrInvalidBlock},
		{"unsupported block", Document{Styles: sheet, Blocks: []Block{strayBlock{}}}, ErrInvalidBlock},
		{"bad page", Document{Styles: sheet, Page: &PageSettings{Size: "tabloid"}}, ErrInvalidPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.doc.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
