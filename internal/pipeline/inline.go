package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// ErrInlineConversion indicates inline markup could not be converted.
var ErrInlineConversion = errors.New("inline markup conversion failed")

// Run is a span of text sharing one font style. A Break run carries no text
// and forces a new line.
type Run struct {
	Text   string
	Bold   bool
	Italic bool
	Break  bool
}

// InlineConverter turns paragraph markup (**bold**, *italic*, newlines as
// hard breaks) into styled runs or an HTML fragment.
type InlineConverter struct {
	md goldmark.Markdown
}

// NewInlineConverter creates an InlineConverter on plain CommonMark.
// No GFM extensions: résumé text contains "@" and "/" that linkify would grab.
func NewInlineConverter() *InlineConverter {
	md := goldmark.New(
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // Treat newlines as <br>
			html.WithXHTML(),
		),
	)
	return &InlineConverter{md: md}
}

// Runs parses src and returns its styled runs. Adjacent runs with the same
// style are merged. Block boundaries (blank lines) become breaks.
func (c *InlineConverter) Runs(src string) ([]Run, error) {
	source := []byte(src)
	doc := c.md.Parser().Parse(text.NewReader(source))

	b := &runBuilder{}
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Document:
			return ast.WalkContinue, nil
		case *ast.Emphasis:
			level := 1
			if node.Level >= 2 {
				level = 2
			}
			if entering {
				b.push(level)
			} else {
				b.pop(level)
			}
			return ast.WalkContinue, nil
		case *ast.Text:
			if !entering {
				return ast.WalkContinue, nil
			}
			value := node.Segment.Value(source)
			if !node.IsRaw() {
				value = unescape(value)
			}
			b.text(string(value))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.lineBreak()
			}
			return ast.WalkContinue, nil
		case *ast.String:
			if entering {
				b.text(string(node.Value))
			}
			return ast.WalkContinue, nil
		case *ast.AutoLink:
			if entering {
				b.text(string(node.Label(source)))
			}
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			if entering {
				for i := 0; i < node.Segments.Len(); i++ {
					seg := node.Segments.At(i)
					b.text(string(seg.Value(source)))
				}
			}
			return ast.WalkSkipChildren, nil
		}

		if entering && n.Type() == ast.TypeBlock && n.PreviousSibling() != nil {
			b.lineBreak()
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInlineConversion, err)
	}

	return b.finish(), nil
}

// HTML converts src to an HTML fragment. A single paragraph is unwrapped so
// the caller can supply its own element.
func (c *InlineConverter) HTML(src string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInlineConversion, err)
	}

	out := strings.TrimSuffix(buf.String(), "\n")
	if strings.HasPrefix(out, "<p>") && strings.HasSuffix(out, "</p>") && strings.Count(out, "<p>") == 1 {
		out = strings.TrimSuffix(strings.TrimPrefix(out, "<p>"), "</p>")
	}
	return out, nil
}

func unescape(v []byte) []byte {
	v = util.UnescapePunctuations(v)
	v = util.ResolveNumericReferences(v)
	return util.ResolveEntityNames(v)
}

// runBuilder tracks emphasis nesting and merges runs.
type runBuilder struct {
	bold   int
	italic int
	runs   []Run
}

func (b *runBuilder) push(level int) {
	if level == 2 {
		b.bold++
	} else {
		b.italic++
	}
}

func (b *runBuilder) pop(level int) {
	if level == 2 {
		b.bold--
	} else {
		b.italic--
	}
}

func (b *runBuilder) text(s string) {
	if s == "" {
		return
	}
	bold, italic := b.bold > 0, b.italic > 0
	if n := len(b.runs); n > 0 {
		last := &b.runs[n-1]
		if !last.Break && last.Bold == bold && last.Italic == italic {
			last.Text += s
			return
		}
	}
	b.runs = append(b.runs, Run{Text: s, Bold: bold, Italic: italic})
}

func (b *runBuilder) lineBreak() {
	if n := len(b.runs); n == 0 || b.runs[n-1].Break {
		return
	}
	b.runs = append(b.runs, Run{Break: true})
}

// finish drops a trailing break.
func (b *runBuilder) finish() []Run {
	if n := len(b.runs); n > 0 && b.runs[n-1].Break {
		b.runs = b.runs[:n-1]
	}
	return b.runs
}
