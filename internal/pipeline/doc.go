// Package pipeline converts paragraph markup for the render engines.
//
// Paragraph text carries a small inline dialect parsed with Goldmark:
//   - **bold** and *italic* emphasis
//   - a newline as a hard line break
//
// The native engine consumes styled runs (InlineConverter.Runs) and lays
// them out itself; the Chrome engine embeds the HTML fragment
// (InlineConverter.HTML) into its page shell.
package pipeline
