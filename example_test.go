package resumepdf_test

import (
	"fmt"
	"strings"

	"github.com/jrc1883/resumepdf"
)

// Example assembles the concise résumé and prints its header.
func Example() {
	doc, err := resumepdf.NewDocument(resumepdf.VariantConcise, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	p := doc.Blocks[0].(resumepdf.Paragraph)
	fmt.Println(p.Style, p.Text)
	fmt.Println(doc.Page.Size)
	// Output:
	// name JOSEPH CANNON
	// letter
}

// ExampleAssemble lists the section headers in render order.
func ExampleAssemble() {
	r, err := resumepdf.CanonicalResume(resumepdf.VariantDetailed)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	styles, err := resumepdf.NewStylesheet(resumepdf.VariantDetailed)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	blocks, err := resumepdf.Assemble(r, styles)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var sections []string
	for _, b := range blocks {
		if p, ok := b.(resumepdf.Paragraph); ok && p.Style == resumepdf.StyleSection {
			sections = append(sections, p.Text)
		}
	}
	fmt.Println(strings.Join(sections, "\n"))
	// Output:
	// EXECUTIVE SUMMARY
	// PROFESSIONAL EXPERIENCE
	// TECHNICAL PROJECTS
	// EDUCATION & CERTIFICATIONS
	// KEY COMPETENCIES
}

// ExampleHTMLPathFor shows where the intermediate HTML is written.
func ExampleHTMLPathFor() {
	fmt.Println(resumepdf.HTMLPathFor(resumepdf.DefaultOutputPath))
	// Output: public/Joseph_Cannon_Resume.html
}
