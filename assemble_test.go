package resumepdf

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

// assembleCanonical assembles the built-in résumé for v.
func assembleCanonical(t *testing.T, v Variant) []Block {
	t.Helper()

	r, err := CanonicalResume(v)
	if err != nil {
		t.Fatalf("CanonicalResume() error = %v", err)
	}
	sheet, err := NewStylesheet(v)
	if err != nil {
		t.Fatalf("NewStylesheet() error = %v", err)
	}
	blocks, err := Assemble(r, sheet)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	return blocks
}

// sectionParagraphs groups paragraphs by the section header above them.
func sectionParagraphs(blocks []Block) map[string][]Paragraph {
	out := make(map[string][]Paragraph)
	current := ""
	for _, b := range blocks {
		p, ok := b.(Paragraph)
		if !ok {
			continue
		}
		if p.Style == StyleSection {
			current = p.Text
			continue
		}
		out[current] = append(out[current], p)
	}
	return out
}

// ---------------------------------------------------------------------------
// TestAssemble_BulletCounts - Bullets per experience entry
// ---------------------------------------------------------------------------

func TestAssemble_BulletCounts(t *testing.T) {
	t.Parallel()

	want := map[string]int{
		"MEGA Regional Facilities Services Manager":                       8,
		"Senior Chief Petty Officer (MMCS, E-8) - Senior Enlisted Leader": 7,
		"Systems Engineer - Building Commissioning":                       4,
		"PopKit - Claude Code Plugin Ecosystem":                           3,
	}

	for _, v := range Variants() {
		t.Run(string(v), func(t *testing.T) {
			t.Parallel()

			got := make(map[string]int)
			title := ""
			for _, b := range assembleCanonical(t, v) {
				p, ok := b.(Paragraph)
				if !ok {
					continue
				}
				switch p.Style {
				case StyleJobTitle:
					title = p.Text
				case StyleBullet:
					got[title]++
				}
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("bullets per entry = %v, want %v", got, want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestAssemble_Education - Education rows and certifications
// ---------------------------------------------------------------------------

func TestAssemble_Education(t *testing.T) {
	t.Parallel()

	for _, v := range Variants() {
		t.Run(string(v), func(t *testing.T) {
			t.Parallel()

			paras := sectionParagraphs(assembleCanonical(t, v))[SectionEducation]

			var rows []string
			certs := 0
			for _, p := range paras {
				if strings.HasPrefix(p.Text, certificationsLabel) {
					certs++
					continue
				}
				rows = append(rows, p.Text)
			}

			if len(rows) != 4 {
				t.Fatalf("education rows = %d, want 4: %q", len(rows), rows)
			}
			for _, row := range rows {
				if fields := strings.Split(row, " | "); len(fields) != 3 {
					t.Errorf("row %q has %d fields, want 3", row, len(fields))
				}
			}
			if rows[0] != "**MBA, International Business** | Liberty University | 2018" {
				t.Errorf("first row = %q", rows[0])
			}
			if certs != 1 {
				t.Errorf("certification paragraphs = %d, want 1", certs)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestAssemble_Structure - Header and section layout
// ---------------------------------------------------------------------------

func TestAssemble_SectionOrder(t *testing.T) {
	t.Parallel()

	blocks := assembleCanonical(t, VariantConcise)

	var sections []string
	for i, b := range blocks {
		p, ok := b.(Paragraph)
		if !ok || p.Style != StyleSection {
			continue
		}
		sections = append(sections, p.Text)
		if _, isRule := blocks[i-1].(Rule); !isRule {
			t.Errorf("section %q not preceded by a rule", p.Text)
		}
		if len(sections) > 1 {
			if _, isSpacer := blocks[i-2].(Spacer); !isSpacer {
				t.Errorf("section %q not preceded by a spacer", p.Text)
			}
		}
	}

	want := []string{SectionSummary, SectionExperience, SectionProjects, SectionEducation, SectionCompetencies}
	if !reflect.DeepEqual(sections, want) {
		t.Errorf("sections = %v, want %v", sections, want)
	}
}

func TestAssemble_Header(t *testing.T) {
	t.Parallel()

	tests := []struct {
		variant Variant
		want    []string
	}{
		{VariantConcise, []string{StyleName, StyleCredentials, StyleContact}},
		{VariantDetailed, []string{StyleName, StyleContact}},
	}

	for _, tt := range tests {
		t.Run(string(tt.variant), func(t *testing.T) {
			t.Parallel()

			blocks := assembleCanonical(t, tt.variant)
			for i, style := range tt.want {
				p, ok := blocks[i].(Paragraph)
				if !ok || p.Style != style {
					t.Errorf("block %d = %#v, want %s paragraph", i, blocks[i], style)
				}
			}
			if _, ok := blocks[len(tt.want)].(Rule); !ok {
				t.Errorf("block after header = %#v, want rule", blocks[len(tt.want)])
			}
		})
	}
}

func TestAssemble_Competencies(t *testing.T) {
	t.Parallel()

	paras := sectionParagraphs(assembleCanonical(t, VariantDetailed))[SectionCompetencies]
	if len(paras) != 1 {
		t.Fatalf("competency paragraphs = %d, want 1", len(paras))
	}
	lines := strings.Split(paras[0].Text, "\n")
	if len(lines) != 4 {
		t.Fatalf("competency lines = %d, want 4", len(lines))
	}
	if !strings.HasPrefix(lines[0], "**Leadership:** ") {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestAssemble_Deterministic(t *testing.T) {
	t.Parallel()

	for _, v := range Variants() {
		a := assembleCanonical(t, v)
		b := assembleCanonical(t, v)
		if !reflect.DeepEqual(a, b) {
			t.Errorf("%s: two assemblies differ", v)
		}
	}
}

func TestAssemble_EmptySectionsOmitted(t *testing.T) {
	t.Parallel()

	sheet, _ := NewStylesheet(VariantConcise)
	blocks, err := Assemble(&Resume{Name: "A", Contact: "B"}, sheet)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	want := []Block{
		Paragraph{Text: "A", Style: StyleName},
		Paragraph{Text: "B", Style: StyleContact},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("blocks = %#v, want %#v", blocks, want)
	}
}

func TestAssemble_CertificationsOnly(t *testing.T) {
	t.Parallel()

	sheet, _ := NewStylesheet(VariantConcise)
	blocks, err := Assemble(&Resume{Name: "A", Contact: "B", Certifications: []string{"PMP", "LEED AP"}}, sheet)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	last, ok := blocks[len(blocks)-1].(Paragraph)
	if !ok || last.Text != certificationsLabel+"PMP | LEED AP" {
		t.Errorf("last block = %#v", blocks[len(blocks)-1])
	}
}

func TestAssemble_Errors(t *testing.T) {
	t.Parallel()

	sheet, _ := NewStylesheet(VariantConcise)
	r, _ := CanonicalResume(VariantConcise)

	tests := []struct {
		name    string
		resume  *Resume
		styles  *Stylesheet
		wantErr error
	}{
		{"nil resume", nil, sheet, ErrNilResume},
		{"nil stylesheet", r, nil, ErrRender},
		{"stylesheet missing styles", r, &Stylesheet{styles: map[string]StyleSpec{}}, ErrUnknownStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Assemble(tt.resume, tt.styles); !errors.Is(err, tt.wantErr) {
				t.Errorf("Assemble() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
