package resumepdf

import (
	"errors"
	"testing"
)

func floatOf(v float64) *float64 { return &v }

// ---------------------------------------------------------------------------
// TestParseColor - Hex color parsing
// ---------------------------------------------------------------------------

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Color
		wantErr bool
	}{
		{"six digits", "#1a365d", Color{0x1a, 0x36, 0x5d}, false},
		{"uppercase", "#FFFFFF", Color{0xff, 0xff, 0xff}, false},
		{"three digits", "#abc", Color{0xaa, 0xbb, 0xcc}, false},
		{"no hash with spaces", " 003366 ", Color{0x00, 0x33, 0x66}, false},
		{"named color", "navy", Color{}, true},
		{"five digits", "#12345", Color{}, true},
		{"not hex", "#gggggg", Color{}, true},
		{"empty", "", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseColor(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColor_Hex(t *testing.T) {
	t.Parallel()

	if got := ColorAccent.Hex(); got != "#1a365d" {
		t.Errorf("ColorAccent.Hex() = %q, want #1a365d", got)
	}
	if got := (Color{}).Hex(); got != "#000000" {
		t.Errorf("zero Hex() = %q, want #000000", got)
	}
}

// ---------------------------------------------------------------------------
// TestNewStylesheet - Named styles per variant
// ---------------------------------------------------------------------------

func TestNewStylesheet(t *testing.T) {
	t.Parallel()

	wantNames := []string{
		StyleName, StyleCredentials, StyleContact, StyleSection,
		StyleJobTitle, StyleJobMeta, StyleBullet, StyleNormal,
	}

	tests := []struct {
		variant         Variant
		wantNameSize    float64
		wantNameLeading float64
	}{
		{VariantConcise, 24, 28},
		{VariantDetailed, 22, 12},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			t.Parallel()

			sheet, err := NewStylesheet(tt.variant)
			if err != nil {
				t.Fatalf("NewStylesheet() error = %v", err)
			}

			names := sheet.Names()
			if len(names) != len(wantNames) {
				t.Fatalf("Names() = %v, want %v", names, wantNames)
			}
			for i, n := range wantNames {
				if names[i] != n {
					t.Errorf("Names()[%d] = %q, want %q", i, names[i], n)
				}
			}

			name, err := sheet.Lookup(StyleName)
			if err != nil {
				t.Fatalf("Lookup(name) error = %v", err)
			}
			if name.FontSize != tt.wantNameSize {
				t.Errorf("name FontSize = %v, want %v", name.FontSize, tt.wantNameSize)
			}
			if !name.Bold() || name.Alignment != AlignCenter {
				t.Errorf("name style = %+v, want bold and centered", name)
			}
			if got := name.LineHeight(); got != tt.wantNameLeading {
				t.Errorf("name LineHeight() = %v, want %v", got, tt.wantNameLeading)
			}

			for _, n := range names {
				spec, _ := sheet.Lookup(n)
				if spec.FontFamily != defaultFontFamily {
					t.Errorf("%s FontFamily = %q", n, spec.FontFamily)
				}
				if spec.Weight == "" || spec.Alignment == "" {
					t.Errorf("%s has empty weight or alignment", n)
				}
				if n != StyleName && spec.LineHeight() != baseLeading {
					t.Errorf("%s LineHeight() = %v, want %v", n, spec.LineHeight(), baseLeading)
				}
			}

			bullet, _ := sheet.Lookup(StyleBullet)
			if !bullet.Bullet || bullet.LeftIndent <= 0 {
				t.Errorf("bullet style = %+v, want glyph and indent", bullet)
			}
		})
	}
}

func TestNewStylesheet_UnknownVariant(t *testing.T) {
	t.Parallel()

	if _, err := NewStylesheet("verbose"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("error = %v, want ErrUnknownVariant", err)
	}
}

func TestNewStylesheet_Overrides(t *testing.T) {
	t.Parallel()

	t.Run("applies fields", func(t *testing.T) {
		t.Parallel()

		sheet, err := NewStylesheet(VariantConcise, StyleOverride{
			Name:        StyleSection,
			FontSize:    floatOf(13),
			Color:       "#003366",
			SpaceBefore: floatOf(0),
			SpaceAfter:  floatOf(9),
			Leading:     floatOf(16),
		})
		if err != nil {
			t.Fatalf("NewStylesheet() error = %v", err)
		}
		got, _ := sheet.Lookup(StyleSection)
		if got.FontSize != 13 || got.SpaceBefore != 0 || got.SpaceAfter != 9 || got.Leading != 16 {
			t.Errorf("section = %+v", got)
		}
		if got.Color != (Color{0x00, 0x33, 0x66}) {
			t.Errorf("Color = %+v", got.Color)
		}
		if !got.Bold() {
			t.Error("untouched Weight changed")
		}
	})

	t.Run("later override wins", func(t *testing.T) {
		t.Parallel()

		sheet, err := NewStylesheet(VariantDetailed,
			StyleOverride{Name: StyleNormal, FontSize: floatOf(10)},
			StyleOverride{Name: StyleNormal, FontSize: floatOf(11)},
		)
		if err != nil {
			t.Fatalf("NewStylesheet() error = %v", err)
		}
		got, _ := sheet.Lookup(StyleNormal)
		if got.FontSize != 11 {
			t.Errorf("FontSize = %v, want 11", got.FontSize)
		}
	})

	t.Run("does not leak into new sheets", func(t *testing.T) {
		t.Parallel()

		if _, err := NewStylesheet(VariantConcise, StyleOverride{Name: StyleName, FontSize: floatOf(40)}); err != nil {
			t.Fatalf("NewStylesheet() error = %v", err)
		}
		fresh, _ := NewStylesheet(VariantConcise)
		got, _ := fresh.Lookup(StyleName)
		if got.FontSize != 24 {
			t.Errorf("fresh name FontSize = %v, want 24", got.FontSize)
		}
	})

	t.Run("unknown style", func(t *testing.T) {
		t.Parallel()

		_, err := NewStylesheet(VariantConcise, StyleOverride{Name: "heading"})
		if !errors.Is(err, ErrUnknownStyle) {
			t.Errorf("error = %v, want ErrUnknownStyle", err)
		}
	})

	t.Run("bad color", func(t *testing.T) {
		t.Parallel()

		_, err := NewStylesheet(VariantConcise, StyleOverride{Name: StyleName, Color: "blue"})
		if !errors.Is(err, ErrInvalidColor) {
			t.Errorf("error = %v, want ErrInvalidColor", err)
		}
	})
}

func TestStylesheet_Lookup_Unknown(t *testing.T) {
	t.Parallel()

	sheet, _ := NewStylesheet(VariantConcise)
	if _, err := sheet.Lookup("title"); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("error = %v, want ErrUnknownStyle", err)
	}
}

func TestStylesheet_NamesIsCopy(t *testing.T) {
	t.Parallel()

	sheet, _ := NewStylesheet(VariantConcise)
	names := sheet.Names()
	names[0] = "mutated"
	if sheet.Names()[0] != StyleName {
		t.Error("Names() exposes internal slice")
	}
}

func TestStyleSpec_LineHeight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec StyleSpec
		want float64
	}{
		{"explicit leading", StyleSpec{FontSize: 9, Leading: 16}, 16},
		{"unset small font", StyleSpec{FontSize: 9}, 12},
		{"unset large font", StyleSpec{FontSize: 22}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.spec.LineHeight(); got != tt.want {
				t.Errorf("LineHeight() = %v, want %v", got, tt.want)
			}
		})
	}
}
