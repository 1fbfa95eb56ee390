package resumepdf

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/go-pdf/fpdf"

	"github.com/jrc1883/resumepdf/internal/pipeline"
)

// reproducibleDate pins the PDF creation and modification dates so that
// identical documents render to identical bytes.
var reproducibleDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

// Font metrics used to place the baseline inside a line box.
const (
	baselineRatio = 0.78 // Helvetica cap height sits at ~0.72 em
	bulletGlyph   = "•"
	creatorName   = "resumepdf"
)

// nativeRenderer lays out blocks with fpdf using the core Helvetica family.
// It needs no external process and is the default backend.
type nativeRenderer struct {
	inline *pipeline.InlineConverter
}

func newNativeRenderer() *nativeRenderer {
	return &nativeRenderer{inline: pipeline.NewInlineConverter()}
}

// Render paginates the document. An empty block sequence yields a valid
// single blank page.
func (r *nativeRenderer) Render(ctx context.Context, doc *Document) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	page := doc.Page
	if page == nil {
		page = DefaultPageSettings()
	}
	widthIn, heightIn, _ := paperSizeInches(page.Size)

	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: widthIn * pointsPerInch, Ht: heightIn * pointsPerInch},
	})
	m := page.Margins
	pdf.SetMargins(m.Left*pointsPerInch, m.Top*pointsPerInch, m.Right*pointsPerInch)
	pdf.SetAutoPageBreak(false, m.Bottom*pointsPerInch)
	pdf.SetCreationDate(reproducibleDate)
	pdf.SetModificationDate(reproducibleDate)
	pdf.SetCatalogSort(true)
	pdf.SetCreator(creatorName, false)
	if doc.Title != "" {
		pdf.SetTitle(doc.Title, true)
	}
	if doc.Author != "" {
		pdf.SetAuthor(doc.Author, true)
	}

	l := &layout{
		pdf:    pdf,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""), // cp1252 for core fonts
		left:   m.Left * pointsPerInch,
		right:  (widthIn - m.Right) * pointsPerInch,
		top:    m.Top * pointsPerInch,
		bottom: (heightIn - m.Bottom) * pointsPerInch,
	}
	l.newPage()

	for i, b := range doc.Blocks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		switch blk := b.(type) {
		case Paragraph:
			spec, err := doc.Styles.Lookup(blk.Style)
			if err != nil {
				return nil, fmt.Errorf("block %d: %w", i, err)
			}
			runs, err := r.inline.Runs(blk.Text)
			if err != nil {
				return nil, fmt.Errorf("%w: block %d: %v", ErrRender, i, err)
			}
			l.paragraph(spec, runs)
		case Spacer:
			l.spacer(blk.Height)
		case Rule:
			l.rule(blk)
		}
		if pdf.Err() {
			return nil, fmt.Errorf("%w: block %d: %v", ErrPDFGeneration, i, pdf.Error())
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}
	return buf.Bytes(), nil
}

// Close is a no-op; the native engine holds no resources between renders.
func (r *nativeRenderer) Close() error {
	return nil
}

// layout tracks the write position in points from the top-left corner.
type layout struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	left   float64
	right  float64
	top    float64
	bottom float64
	y      float64
	atTop  bool // nothing drawn on the current page yet
}

func (l *layout) newPage() {
	l.pdf.AddPage()
	l.y = l.top
	l.atTop = true
}

func (l *layout) contentWidth() float64 {
	return l.right - l.left
}

func (l *layout) setFont(spec StyleSpec, bold, italic bool) {
	style := ""
	if bold || spec.Bold() {
		style += "B"
	}
	if italic || spec.Italic {
		style += "I"
	}
	l.pdf.SetFont(spec.FontFamily, style, spec.FontSize)
}

// word is an unbreakable sequence of pieces; pieces differ only in style.
type word []pipeline.Run

// lineSegment is text drawn with a single font style.
type lineSegment struct {
	text   string
	bold   bool
	italic bool
}

// tokenize splits runs into words and line breaks (nil entries).
// Pieces from adjacent runs with no whitespace between them stay one word.
func tokenize(runs []pipeline.Run) []word {
	var (
		tokens []word
		cur    word
		sb     strings.Builder
	)
	closeWord := func() {
		if len(cur) > 0 {
			tokens = append(tokens, cur)
			cur = nil
		}
	}
	for _, run := range runs {
		if run.Break {
			closeWord()
			tokens = append(tokens, nil)
			continue
		}
		flush := func() {
			if sb.Len() > 0 {
				cur = append(cur, pipeline.Run{Text: sb.String(), Bold: run.Bold, Italic: run.Italic})
				sb.Reset()
			}
		}
		for _, ch := range run.Text {
			if unicode.IsSpace(ch) {
				flush()
				closeWord()
				continue
			}
			sb.WriteRune(ch)
		}
		flush()
	}
	closeWord()
	return tokens
}

// wrap fills lines greedily up to maxWidth.
func (l *layout) wrap(spec StyleSpec, runs []pipeline.Run, maxWidth float64) [][]lineSegment {
	l.setFont(spec, false, false)
	space := l.pdf.GetStringWidth(" ")

	var (
		lines [][]lineSegment
		cur   []word
		curW  float64
	)
	emit := func() {
		lines = append(lines, segmentsFor(cur))
		cur, curW = nil, 0
	}

	for _, w := range tokenize(runs) {
		if w == nil {
			emit()
			continue
		}
		ww := l.wordWidth(spec, w)
		if len(cur) > 0 && curW+space+ww > maxWidth {
			emit()
		}
		if len(cur) > 0 {
			curW += space
		}
		cur = append(cur, w)
		curW += ww
	}
	if len(cur) > 0 {
		emit()
	}
	return lines
}

func (l *layout) wordWidth(spec StyleSpec, w word) float64 {
	total := 0.0
	for _, p := range w {
		l.setFont(spec, p.Bold, p.Italic)
		total += l.pdf.GetStringWidth(l.tr(p.Text))
	}
	return total
}

// segmentsFor merges a line's words into same-style segments, keeping the
// inter-word spaces with the preceding segment.
func segmentsFor(words []word) []lineSegment {
	var segs []lineSegment
	for i, w := range words {
		for j, p := range w {
			text := p.Text
			if i > 0 && j == 0 {
				text = " " + text
			}
			if n := len(segs); n > 0 && segs[n-1].bold == p.Bold && segs[n-1].italic == p.Italic {
				segs[n-1].text += text
				continue
			}
			segs = append(segs, lineSegment{text: text, bold: p.Bold, italic: p.Italic})
		}
	}
	return segs
}

func (l *layout) paragraph(spec StyleSpec, runs []pipeline.Run) {
	if !l.atTop {
		l.y += spec.SpaceBefore
	}

	indent := spec.LeftIndent
	leading := spec.LineHeight()
	lines := l.wrap(spec, runs, l.contentWidth()-indent)
	r, g, b := int(spec.Color.R), int(spec.Color.G), int(spec.Color.B)

	for i, line := range lines {
		if l.y+leading > l.bottom && !l.atTop {
			l.newPage()
		}
		baseline := l.y + (leading-spec.FontSize)/2 + spec.FontSize*baselineRatio
		l.pdf.SetTextColor(r, g, b)

		if i == 0 && spec.Bullet {
			l.setFont(spec, false, false)
			l.pdf.Text(l.left, baseline, l.tr(bulletGlyph))
		}

		width := 0.0
		for _, seg := range line {
			l.setFont(spec, seg.bold, seg.italic)
			width += l.pdf.GetStringWidth(l.tr(seg.text))
		}

		x := l.left + indent
		switch spec.Alignment {
		case AlignCenter:
			x += (l.contentWidth() - indent - width) / 2
		case AlignRight:
			x += l.contentWidth() - indent - width
		}

		for _, seg := range line {
			l.setFont(spec, seg.bold, seg.italic)
			text := l.tr(seg.text)
			l.pdf.Text(x, baseline, text)
			x += l.pdf.GetStringWidth(text)
		}

		l.y += leading
		l.atTop = false
	}

	l.y += spec.SpaceAfter
}

// spacer advances the cursor; a spacer that does not fit starts a new page
// and is dropped.
func (l *layout) spacer(height float64) {
	if l.y+height > l.bottom {
		l.newPage()
		return
	}
	l.y += height
}

func (l *layout) rule(r Rule) {
	if l.y+r.Thickness > l.bottom && !l.atTop {
		l.newPage()
	}
	width := l.contentWidth() * r.WidthFraction
	x := l.left + (l.contentWidth()-width)/2
	y := l.y + r.Thickness/2

	l.pdf.SetDrawColor(int(r.Color.R), int(r.Color.G), int(r.Color.B))
	l.pdf.SetLineWidth(r.Thickness)
	l.pdf.Line(x, y, x+width, y)

	l.y += r.Thickness + r.SpaceAfter
	l.atTop = false
}
