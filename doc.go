// Package resumepdf builds Joseph Cannon's résumé as a PDF.
//
// # Quick Start
//
// Create a generator, write the PDF, and close when done:
//
//	gen, err := resumepdf.NewGenerator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer gen.Close()
//
//	result, err := gen.Generate(ctx, resumepdf.Input{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("Resume generated:", result.Path)
//
// With a zero Input the concise variant is written to
// public/Joseph_Cannon_Resume.pdf on US Letter paper, creating the
// directory if needed. An existing file is replaced atomically.
//
// # Pipeline
//
//  1. CanonicalResume returns the static content for a Variant.
//  2. NewStylesheet resolves the named paragraph styles for that variant.
//  3. Assemble turns content into an ordered []Block of Paragraph, Spacer
//     and Rule values.
//  4. A Renderer lays the blocks out and returns PDF bytes.
//
// NewDocument runs steps 1 to 3; Generator.Build runs step 4 without
// touching the filesystem.
//
// # Render Engines
//
// BackendNative (the default) draws with fpdf using the core Helvetica
// fonts and produces byte-identical output for identical input.
// BackendChrome builds an HTML page from the same blocks and prints it
// with headless Chrome via go-rod; it needs a local Chrome or Chromium.
//
//	gen, err := resumepdf.NewGenerator(
//	    resumepdf.WithBackend(resumepdf.BackendChrome),
//	    resumepdf.WithTimeout(time.Minute),
//	)
//
// # Styling
//
// Paragraph text accepts **bold**, *italic*, and newlines as hard breaks.
// Individual styles can be adjusted with WithStyleOverrides:
//
//	size := 26.0
//	gen, err := resumepdf.NewGenerator(resumepdf.WithStyleOverrides(
//	    resumepdf.StyleOverride{Name: resumepdf.StyleName, FontSize: &size},
//	))
//
// # Errors
//
// Failures wrap sentinel errors such as ErrUnknownVariant, ErrUnknownStyle,
// ErrPDFGeneration, ErrCreateOutputDir and ErrWritePDF; test with errors.Is.
package resumepdf
