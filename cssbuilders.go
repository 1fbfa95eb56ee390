package resumepdf

import (
	"fmt"
	"strings"
)

// cssFontStack maps the core PDF font to browser fonts with similar metrics.
const cssFontStack = `Helvetica, Arial, "Liberation Sans", sans-serif`

// styleClass returns the CSS class used for a named style.
func styleClass(name string) string {
	var b strings.Builder
	b.WriteString("s-")
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// buildBaseCSS resets browser defaults so spacing comes only from styles.
func buildBaseCSS() string {
	return fmt.Sprintf(`
/* Base */
html, body {
  margin: 0;
  padding: 0;
  font-family: %s;
  -webkit-print-color-adjust: exact;
  print-color-adjust: exact;
}
p {
  margin: 0;
  orphans: 2;
  widows: 2;
}
hr {
  border: 0;
  break-after: avoid;
  page-break-after: avoid;
}
.spacer {
  margin: 0;
}
`, cssFontStack)
}

// buildStyleCSS generates one rule per named style, in definition order.
func buildStyleCSS(s *Stylesheet) string {
	var buf strings.Builder
	for _, name := range s.Names() {
		spec, _ := s.Lookup(name)
		buf.WriteString(buildStyleRule(spec))
	}
	return buf.String()
}

// buildStyleRule renders one StyleSpec as a CSS class.
func buildStyleRule(spec StyleSpec) string {
	var buf strings.Builder
	class := styleClass(spec.Name)

	fmt.Fprintf(&buf, "\n/* Style: %s */\n.%s {\n", escapeCSSComment(spec.Name), class)
	fmt.Fprintf(&buf, "  font-size: %.2fpt;\n", spec.FontSize)
	fmt.Fprintf(&buf, "  font-weight: %s;\n", cssWeight(spec.Weight))
	if spec.Italic {
		buf.WriteString("  font-style: italic;\n")
	}
	fmt.Fprintf(&buf, "  color: %s;\n", spec.Color.Hex())
	fmt.Fprintf(&buf, "  text-align: %s;\n", spec.Alignment)
	fmt.Fprintf(&buf, "  line-height: %.2fpt;\n", spec.LineHeight())
	fmt.Fprintf(&buf, "  margin: %.2fpt 0 %.2fpt 0;\n", spec.SpaceBefore, spec.SpaceAfter)
	if spec.LeftIndent > 0 {
		fmt.Fprintf(&buf, "  padding-left: %.2fpt;\n", spec.LeftIndent)
	}
	if spec.Bullet {
		buf.WriteString("  position: relative;\n")
	}
	buf.WriteString("}\n")

	if spec.Bullet {
		fmt.Fprintf(&buf, ".%s::before {\n  content: \"\\2022\";\n  position: absolute;\n  left: 0;\n}\n", class)
	}

	return buf.String()
}

func cssWeight(w Weight) string {
	if w == WeightBold {
		return "bold"
	}
	return "normal"
}

// escapeCSSComment keeps a value from terminating the surrounding comment.
func escapeCSSComment(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}

// buildRuleStyle returns the inline style for a horizontal rule.
func buildRuleStyle(r Rule) string {
	return fmt.Sprintf("border-top: %.2fpt solid %s; width: %.2f%%; margin: 0 auto %.2fpt auto;",
		r.Thickness, r.Color.Hex(), r.WidthFraction*100, r.SpaceAfter)
}
