// Package assets provides the HTML templates embedded in the binary.
//
// Templates live under templates/ and are addressed by name without the
// .html extension:
//
//	templates/
//	└── page.html   # standalone page shell for the Chrome engine
//
// Template names are validated to prevent path traversal.
package assets
