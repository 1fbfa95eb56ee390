package resumepdf

import "fmt"

// BlockKind identifies the variant of a Block.
type BlockKind string

// Block kinds.
const (
	KindParagraph BlockKind = "paragraph"
	KindSpacer    BlockKind = "spacer"
	KindRule      BlockKind = "rule"
)

// Block is one unit of renderable content. Blocks render top to bottom;
// the render engine paginates when vertical space runs out.
//
// The set of implementations is closed: Paragraph, Spacer and Rule.
type Block interface {
	Kind() BlockKind
	isBlock()
}

// Paragraph is styled text. Text accepts inline markup: **bold**, *italic*,
// and a newline for a hard line break.
type Paragraph struct {
	Text  string
	Style string
}

// Spacer is vertical whitespace in points.
type Spacer struct {
	Height float64
}

// Rule is a horizontal line.
type Rule struct {
	Thickness     float64 // points
	Color         Color
	WidthFraction float64 // of the content width, (0, 1]
	SpaceAfter    float64 // points
}

func (Paragraph) Kind() BlockKind { return KindParagraph }
func (Spacer) Kind() BlockKind    { return KindSpacer }
func (Rule) Kind() BlockKind      { return KindRule }

func (Paragraph) isBlock() {}
func (Spacer) isBlock()    {}
func (Rule) isBlock()      {}

// Document is a finished block sequence together with everything a render
// engine needs to lay it out. It is rendered once and not mutated afterwards.
type Document struct {
	Blocks []Block
	Styles *Stylesheet
	Page   *PageSettings
	Title  string
	Author string
}

// Validate checks every block against the stylesheet and the page.
func (d *Document) Validate() error {
	if d.Styles == nil {
		return fmt.Errorf("%w: document has no stylesheet", ErrRender)
	}
	if err := d.Page.Validate(); err != nil {
		return err
	}
	return validateBlocks(d.Blocks, d.Styles)
}

// validateBlocks rejects unknown style references and malformed geometry.
func validateBlocks(blocks []Block, styles *Stylesheet) error {
	for i, b := range blocks {
		switch blk := b.(type) {
		case Paragraph:
			if _, err := styles.Lookup(blk.Style); err != nil {
				return fmt.Errorf("block %d: %w", i, err)
			}
		case Spacer:
			if blk.Height < 0 {
				return fmt.Errorf("%w: block %d: negative spacer height %.2f", ErrInvalidBlock, i, blk.Height)
			}
		case Rule:
			if blk.WidthFraction <= 0 || blk.WidthFraction > 1 {
				return fmt.Errorf("%w: block %d: rule width fraction %.2f", ErrInvalidBlock, i, blk.WidthFraction)
			}
			if blk.Thickness <= 0 {
				return fmt.Errorf("%w: block %d: rule thickness %.2f", ErrInvalidBlock, i, blk.Thickness)
			}
		default:
			return fmt.Errorf("%w: block %d: unsupported type %T", ErrInvalidBlock, i, b)
		}
	}
	return nil
}
