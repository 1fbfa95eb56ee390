package resumepdf

import (
	"fmt"
	"strconv"
	"strings"
)

// Style names referenced by paragraphs.
const (
	StyleName        = "name"
	StyleCredentials = "credentials"
	StyleContact     = "contact"
	StyleSection     = "section"
	StyleJobTitle    = "job-title"
	StyleJobMeta     = "job-meta"
	StyleBullet      = "bullet"
	StyleNormal      = "normal"
)

// Alignment is the horizontal alignment of a paragraph.
type Alignment string

// Paragraph alignments.
const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

// Weight is a font weight.
type Weight string

// Font weights.
const (
	WeightNormal Weight = "normal"
	WeightBold   Weight = "bold"
)

// defaultFontFamily is the core PDF font used by every style.
const defaultFontFamily = "Helvetica"

// baseLeading is the line height every style inherits unless it sets its
// own, independent of font size.
const baseLeading = 12.0

// Color is an RGB color.
type Color struct {
	R, G, B uint8
}

// Palette colors.
var (
	ColorAccent = Color{0x1a, 0x36, 0x5d} // navy
	ColorText   = Color{0x1a, 0x1a, 0x1a}
	ColorMuted  = Color{0x4a, 0x55, 0x68}
)

// ParseColor parses a "#rrggbb" or "#rgb" hex color.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// StyleSpec is a named bundle of typographic attributes.
// Sizes and spacing are in points.
type StyleSpec struct {
	Name        string
	FontFamily  string
	FontSize    float64
	Weight      Weight
	Italic      bool
	Color       Color
	Alignment   Alignment
	SpaceBefore float64
	SpaceAfter  float64
	Leading     float64 // 0 = baseLeading
	LeftIndent  float64
	Bullet      bool // draw a bullet glyph in the left indent
}

// LineHeight returns the effective leading.
func (s StyleSpec) LineHeight() float64 {
	if s.Leading > 0 {
		return s.Leading
	}
	return baseLeading
}

// Bold reports whether the style uses a bold weight.
func (s StyleSpec) Bold() bool {
	return s.Weight == WeightBold
}

// StyleOverride adjusts selected attributes of a named style.
// Nil and empty fields leave the base value unchanged.
type StyleOverride struct {
	Name        string
	FontSize    *float64
	Color       string
	SpaceBefore *float64
	SpaceAfter  *float64
	Leading     *float64
}

// Stylesheet is an immutable set of named styles.
type Stylesheet struct {
	order  []string
	styles map[string]StyleSpec
	accent Color
}

// NewStylesheet returns the stylesheet for a variant with overrides applied.
func NewStylesheet(v Variant, overrides ...StyleOverride) (*Stylesheet, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}

	base := baseStyles(v)
	sheet := &Stylesheet{
		order:  make([]string, 0, len(base)),
		styles: make(map[string]StyleSpec, len(base)),
		accent: ColorAccent,
	}
	for _, s := range base {
		sheet.order = append(sheet.order, s.Name)
		sheet.styles[s.Name] = s
	}

	for _, o := range overrides {
		if err := sheet.apply(o); err != nil {
			return nil, err
		}
	}

	return sheet, nil
}

// apply merges an override into the sheet. Only called while building.
func (s *Stylesheet) apply(o StyleOverride) error {
	spec, ok := s.styles[o.Name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownStyle, o.Name)
	}
	if o.FontSize != nil {
		spec.FontSize = *o.FontSize
	}
	if o.Color != "" {
		c, err := ParseColor(o.Color)
		if err != nil {
			return fmt.Errorf("style %q: %w", o.Name, err)
		}
		spec.Color = c
	}
	if o.SpaceBefore != nil {
		spec.SpaceBefore = *o.SpaceBefore
	}
	if o.SpaceAfter != nil {
		spec.SpaceAfter = *o.SpaceAfter
	}
	if o.Leading != nil {
		spec.Leading = *o.Leading
	}
	s.styles[o.Name] = spec
	return nil
}

// Lookup returns the named style.
func (s *Stylesheet) Lookup(name string) (StyleSpec, error) {
	spec, ok := s.styles[name]
	if !ok {
		return StyleSpec{}, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
	return spec, nil
}

// Names returns style names in definition order.
func (s *Stylesheet) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Accent returns the accent color used for rules and headings.
func (s *Stylesheet) Accent() Color {
	return s.accent
}

// baseStyles defines the named styles. The two variants differ only in the
// header: concise carries a separate credentials line under a larger name.
func baseStyles(v Variant) []StyleSpec {
	name := StyleSpec{
		Name: StyleName, FontSize: 22, Weight: WeightBold, Color: ColorAccent,
		Alignment: AlignCenter, SpaceAfter: 4,
	}
	if v == VariantConcise {
		name.FontSize = 24
		name.SpaceAfter = 6
		name.Leading = 28
	}

	styles := []StyleSpec{
		name,
		{Name: StyleCredentials, FontSize: 10, Color: ColorMuted, Alignment: AlignCenter, SpaceAfter: 2},
		{Name: StyleContact, FontSize: 9, Color: ColorMuted, Alignment: AlignCenter, SpaceAfter: 12},
		{Name: StyleSection, FontSize: 11, Weight: WeightBold, Color: ColorAccent, SpaceBefore: 10, SpaceAfter: 6},
		{Name: StyleJobTitle, FontSize: 10, Weight: WeightBold, Color: ColorText, SpaceAfter: 2},
		{Name: StyleJobMeta, FontSize: 9, Italic: true, Color: ColorMuted, SpaceAfter: 4},
		{Name: StyleBullet, FontSize: 9, Color: ColorText, LeftIndent: 12, SpaceAfter: 3, Leading: 12, Bullet: true},
		{Name: StyleNormal, FontSize: 9, Color: ColorText, SpaceAfter: 6},
	}

	for i := range styles {
		styles[i].FontFamily = defaultFontFamily
		if styles[i].Weight == "" {
			styles[i].Weight = WeightNormal
		}
		if styles[i].Alignment == "" {
			styles[i].Alignment = AlignLeft
		}
		if styles[i].Leading == 0 {
			styles[i].Leading = baseLeading
		}
	}
	return styles
}
