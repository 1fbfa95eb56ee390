package resumepdf

import (
	"fmt"
	"strings"
)

// Variant selects one wording of the résumé content.
type Variant string

// Résumé variants.
const (
	// VariantConcise has a separate credentials line and shorter bullets.
	VariantConcise Variant = "concise"
	// VariantDetailed folds credentials into the contact block and keeps
	// the longer bullet wording.
	VariantDetailed Variant = "detailed"
)

// DefaultVariant is used when Input.Variant is empty.
const DefaultVariant = VariantConcise

// Variants lists every variant in a stable order.
func Variants() []Variant {
	return []Variant{VariantConcise, VariantDetailed}
}

// ParseVariant resolves a variant name (case-insensitive, "" = default).
func ParseVariant(name string) (Variant, error) {
	if name == "" {
		return DefaultVariant, nil
	}
	v := Variant(strings.ToLower(name))
	if err := v.Validate(); err != nil {
		return "", err
	}
	return v, nil
}

// Validate reports whether v is a known variant.
func (v Variant) Validate() error {
	switch v {
	case VariantConcise, VariantDetailed:
		return nil
	}
	return fmt.Errorf("%w: %q (must be concise or detailed)", ErrUnknownVariant, string(v))
}

// Resume is the complete résumé content.
type Resume struct {
	Name           string
	Credentials    string // empty = no separate credentials line
	Contact        string
	Summary        string
	Jobs           []JobRecord
	Projects       []Project
	Education      []EducationRow
	Certifications []string
	Competencies   []CompetencyLine
}

// JobRecord is one position under Professional Experience.
type JobRecord struct {
	Title        string
	Organization string
	Location     string
	Dates        string
	Bullets      []string
}

// Meta returns the metadata line: organization, location and dates.
func (j JobRecord) Meta() string {
	return joinFields(j.Organization, j.Location, j.Dates)
}

// Project is one entry under Technical Projects.
type Project struct {
	Title   string
	Bullets []string
}

// EducationRow is one credential under Education & Certifications.
type EducationRow struct {
	Credential  string
	Institution string
	Year        string // year or status, e.g. "Current"
}

// Line returns the row as "**Credential** | Institution | Year".
func (e EducationRow) Line() string {
	return joinFields("**"+e.Credential+"**", e.Institution, e.Year)
}

// CompetencyLine is one labeled row of the competencies paragraph.
type CompetencyLine struct {
	Label string
	Items []string
}

// Line returns the row as "**Label:** a | b | c".
func (c CompetencyLine) Line() string {
	return "**" + c.Label + ":** " + joinFields(c.Items...)
}

// fieldSeparator joins fields on metadata, education and competency lines.
const fieldSeparator = " | "

func joinFields(fields ...string) string {
	return strings.Join(fields, fieldSeparator)
}
