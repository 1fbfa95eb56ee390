package resumepdf

import (
	"fmt"
	"strings"
	"time"
)

// Page size constants.
const (
	PageSizeLetter = "letter"
	PageSizeA4     = "a4"
	PageSizeLegal  = "legal"
)

// Margin bounds in inches.
const (
	MinMargin = 0.0
	MaxMargin = 3.0
)

// Default margins in inches.
const (
	DefaultMarginVertical   = 0.5
	DefaultMarginHorizontal = 0.6
)

// pointsPerInch converts inches to PDF points.
const pointsPerInch = 72.0

// DefaultOutputPath is where the résumé is written when no path is given,
// relative to the repository root.
const DefaultOutputPath = "public/Joseph_Cannon_Resume.pdf"

// Margins holds the four page margins in inches.
type Margins struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// PageSettings configures PDF page dimensions.
type PageSettings struct {
	Size    string // "letter", "a4", "legal"
	Margins Margins
}

// DefaultPageSettings returns letter paper with 0.5in top/bottom and
// 0.6in left/right margins.
func DefaultPageSettings() *PageSettings {
	return &PageSettings{
		Size: PageSizeLetter,
		Margins: Margins{
			Top:    DefaultMarginVertical,
			Right:  DefaultMarginHorizontal,
			Bottom: DefaultMarginVertical,
			Left:   DefaultMarginHorizontal,
		},
	}
}

// Validate checks that page settings are valid.
// Returns nil if p is nil (nil means use defaults).
func (p *PageSettings) Validate() error {
	if p == nil {
		return nil
	}

	width, height, ok := paperSizeInches(p.Size)
	if !ok {
		return fmt.Errorf("%w: %q", ErrInvalidPageSize, p.Size)
	}

	sides := []struct {
		name  string
		value float64
	}{
		{"top", p.Margins.Top},
		{"right", p.Margins.Right},
		{"bottom", p.Margins.Bottom},
		{"left", p.Margins.Left},
	}
	for _, s := range sides {
		if s.value < MinMargin || s.value > MaxMargin {
			return fmt.Errorf("%w: %s %.2f (must be between %.2f and %.2f)", ErrInvalidMargin, s.name, s.value, MinMargin, MaxMargin)
		}
	}

	if p.Margins.Left+p.Margins.Right >= width {
		return fmt.Errorf("%w: left+right %.2f leaves no content width", ErrInvalidMargin, p.Margins.Left+p.Margins.Right)
	}
	if p.Margins.Top+p.Margins.Bottom >= height {
		return fmt.Errorf("%w: top+bottom %.2f leaves no content height", ErrInvalidMargin, p.Margins.Top+p.Margins.Bottom)
	}

	return nil
}

// paperSizeInches returns the portrait width and height for a page size name
// (case-insensitive).
func paperSizeInches(size string) (width, height float64, ok bool) {
	switch strings.ToLower(size) {
	case PageSizeLetter:
		return 8.5, 11, true
	case PageSizeA4:
		return 8.27, 11.69, true
	case PageSizeLegal:
		return 8.5, 14, true
	}
	return 0, 0, false
}

// Backend selects the render engine.
type Backend string

// Available render backends.
const (
	BackendNative Backend = "native" // pure Go layout via fpdf
	BackendChrome Backend = "chrome" // HTML printed by headless Chrome
)

// ParseBackend resolves a backend name (case-insensitive, "" = native).
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(name) {
	case "", string(BackendNative):
		return BackendNative, nil
	case string(BackendChrome):
		return BackendChrome, nil
	}
	return "", fmt.Errorf("%w: %q (must be native or chrome)", ErrUnknownBackend, name)
}

// Input contains generation parameters.
type Input struct {
	Variant    Variant       // Content variant ("" = DefaultVariant)
	OutputPath string        // PDF destination ("" = DefaultOutputPath)
	Page       *PageSettings // Page settings (nil = defaults)
	HTML       bool          // Also write the intermediate HTML next to the PDF
	HTMLOnly   bool          // Write HTML only, skip PDF rendering
}

// Result holds the outcome of a generation.
type Result struct {
	Path     string  // Written PDF path (empty when HTMLOnly)
	HTMLPath string  // Written HTML path (empty unless HTML or HTMLOnly)
	PDF      []byte  // Rendered PDF bytes
	HTML     []byte  // Intermediate HTML, when requested
	Blocks   []Block // Assembled content blocks
}

// Option configures a Generator.
type Option func(*Generator)

// generatorConfig holds internal configuration for Generator.
type generatorConfig struct {
	timeout   time.Duration
	backend   Backend
	overrides []StyleOverride
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the render timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("resumepdf: WithTimeout duration must be positive")
	}
	return func(g *Generator) {
		g.cfg.timeout = d
	}
}

// WithBackend selects the render engine used by the Generator.
func WithBackend(b Backend) Option {
	return func(g *Generator) {
		g.cfg.backend = b
	}
}

// WithRenderer injects a render engine, bypassing backend selection.
func WithRenderer(r Renderer) Option {
	return func(g *Generator) {
		g.renderer = r
	}
}

// WithStyleOverrides adjusts named styles on top of the variant's stylesheet.
func WithStyleOverrides(overrides ...StyleOverride) Option {
	return func(g *Generator) {
		g.cfg.overrides = append(g.cfg.overrides, overrides...)
	}
}
