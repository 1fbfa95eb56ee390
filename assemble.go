package resumepdf

import (
	"fmt"
	"strings"
)

// Section titles in render order.
const (
	SectionSummary      = "EXECUTIVE SUMMARY"
	SectionExperience   = "PROFESSIONAL EXPERIENCE"
	SectionProjects     = "TECHNICAL PROJECTS"
	SectionEducation    = "EDUCATION & CERTIFICATIONS"
	SectionCompetencies = "KEY COMPETENCIES"
)

// Vertical rhythm in points.
const (
	sectionGap       = 6 // spacer before every section but the first
	entryGap         = 8 // spacer between consecutive jobs or projects
	certificationGap = 4 // spacer between education rows and certifications
	ruleThickness    = 1
	ruleSpaceAfter   = 8
)

// certificationsLabel prefixes the certifications paragraph.
const certificationsLabel = "**Certifications:** "

// assembler accumulates blocks in order. It is used once per Assemble call.
type assembler struct {
	styles   *Stylesheet
	blocks   []Block
	sections int
}

// Assemble lays out the résumé as an ordered block sequence:
// the header, then each non-empty section introduced by a rule and a
// section header. Every style reference is checked against styles.
func Assemble(r *Resume, styles *Stylesheet) ([]Block, error) {
	if r == nil {
		return nil, ErrNilResume
	}
	if styles == nil {
		return nil, fmt.Errorf("%w: stylesheet cannot be nil", ErrRender)
	}

	a := &assembler{styles: styles}

	a.paragraph(r.Name, StyleName)
	if r.Credentials != "" {
		a.paragraph(r.Credentials, StyleCredentials)
	}
	a.paragraph(r.Contact, StyleContact)

	if r.Summary != "" {
		a.section(SectionSummary)
		a.paragraph(r.Summary, StyleNormal)
	}

	if len(r.Jobs) > 0 {
		a.section(SectionExperience)
		for i, job := range r.Jobs {
			if i > 0 {
				a.spacer(entryGap)
			}
			a.paragraph(job.Title, StyleJobTitle)
			a.paragraph(job.Meta(), StyleJobMeta)
			a.bullets(job.Bullets)
		}
	}

	if len(r.Projects) > 0 {
		a.section(SectionProjects)
		for i, p := range r.Projects {
			if i > 0 {
				a.spacer(entryGap)
			}
			a.paragraph(p.Title, StyleJobTitle)
			a.bullets(p.Bullets)
		}
	}

	if len(r.Education) > 0 || len(r.Certifications) > 0 {
		a.section(SectionEducation)
		for _, row := range r.Education {
			a.paragraph(row.Line(), StyleNormal)
		}
		if len(r.Certifications) > 0 {
			a.spacer(certificationGap)
			a.paragraph(certificationsLabel+joinFields(r.Certifications...), StyleNormal)
		}
	}

	if len(r.Competencies) > 0 {
		a.section(SectionCompetencies)
		lines := make([]string, len(r.Competencies))
		for i, c := range r.Competencies {
			lines[i] = c.Line()
		}
		a.paragraph(strings.Join(lines, "\n"), StyleNormal)
	}

	if err := validateBlocks(a.blocks, styles); err != nil {
		return nil, err
	}
	return a.blocks, nil
}

func (a *assembler) paragraph(text, style string) {
	a.blocks = append(a.blocks, Paragraph{Text: text, Style: style})
}

func (a *assembler) spacer(height float64) {
	a.blocks = append(a.blocks, Spacer{Height: height})
}

func (a *assembler) bullets(items []string) {
	for _, item := range items {
		a.paragraph(item, StyleBullet)
	}
}

// section emits the separator rule and the section header.
func (a *assembler) section(title string) {
	if a.sections > 0 {
		a.spacer(sectionGap)
	}
	a.sections++
	a.blocks = append(a.blocks, Rule{
		Thickness:     ruleThickness,
		Color:         a.styles.Accent(),
		WidthFraction: 1,
		SpaceAfter:    ruleSpaceAfter,
	})
	a.paragraph(title, StyleSection)
}
