package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// ErrUsage wraps flag parsing failures.
var ErrUsage = errors.New("invalid usage")

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// pageFlags holds page layout flags. Margins are nil unless set on the
// command line, so config values survive.
type pageFlags struct {
	size         string
	marginTop    *float64
	marginRight  *float64
	marginBottom *float64
	marginLeft   *float64
}

// outputFlags holds output mode flags.
type outputFlags struct {
	html        bool // Output HTML alongside PDF
	htmlOnly    bool // Output HTML only, skip PDF
	verify      bool // Re-open the written PDF
	printConfig bool // Print the effective config and exit
}

// generateFlags holds all flags for the generate command.
type generateFlags struct {
	common      commonFlags
	output      string
	variant     string
	backend     string
	timeout     string
	workers     int
	allVariants bool
	page        pageFlags
	outputMode  outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// marginFlag names, in top/right/bottom/left order.
var marginFlags = []string{"margin-top", "margin-right", "margin-bottom", "margin-left"}

// addPageFlags adds page layout flags to a FlagSet and returns the raw
// margin values for resolvePageFlags.
func addPageFlags(fs *flag.FlagSet, f *pageFlags) []*float64 {
	fs.StringVarP(&f.size, "page-size", "p", "", "page size: letter, a4, legal")
	raw := make([]*float64, len(marginFlags))
	for i, name := range marginFlags {
		raw[i] = fs.Float64(name, 0, name[len("margin-"):]+" margin in inches (0-3)")
	}
	return raw
}

// resolvePageFlags keeps only the margins given explicitly.
func resolvePageFlags(fs *flag.FlagSet, f *pageFlags, raw []*float64) {
	targets := []**float64{&f.marginTop, &f.marginRight, &f.marginBottom, &f.marginLeft}
	for i, name := range marginFlags {
		if fs.Changed(name) {
			*targets[i] = raw[i]
		}
	}
}

// addOutputFlags adds output mode flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.BoolVar(&f.html, "html", false, "write HTML alongside PDF")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "write HTML only, skip PDF")
	fs.BoolVar(&f.verify, "verify", false, "re-open the PDF and report its page count")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective configuration as YAML and exit")
}

// newGenerateFlagSet registers every generate flag on a fresh FlagSet.
// Shared by parsing and shell completion.
func newGenerateFlagSet(f *generateFlags) (*flag.FlagSet, []*float64) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVarP(&f.output, "output", "o", "", "output PDF path")
	fs.StringVar(&f.variant, "variant", "", "content variant: concise, detailed")
	fs.StringVar(&f.backend, "backend", "", "render engine: native, chrome")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "render timeout (e.g., 30s, 2m)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers for --all-variants (0 = auto)")
	fs.BoolVar(&f.allVariants, "all-variants", false, "render every variant next to --output")

	addCommonFlags(fs, &f.common)
	rawMargins := addPageFlags(fs, &f.page)
	addOutputFlags(fs, &f.outputMode)

	return fs, rawMargins
}

// parseGenerateFlags parses generate command flags and returns positional args.
func parseGenerateFlags(args []string, usage io.Writer) (*generateFlags, []string, error) {
	f := &generateFlags{}
	fs, rawMargins := newGenerateFlagSet(f)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printGenerateUsage(usage)
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	resolvePageFlags(fs, &f.page, rawMargins)

	return f, fs.Args(), nil
}

// inspectFlags holds flags for the inspect command.
type inspectFlags struct {
	text bool
	json bool
}

// newInspectFlagSet registers the inspect flags on a fresh FlagSet.
func newInspectFlagSet(f *inspectFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&f.text, "text", false, "print extracted text")
	fs.BoolVar(&f.json, "json", false, "print the report as JSON")
	return fs
}

// parseInspectFlags parses inspect command flags and returns positional args.
func parseInspectFlags(args []string, usage io.Writer) (*inspectFlags, []string, error) {
	f := &inspectFlags{}
	fs := newInspectFlagSet(f)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printInspectUsage(usage)
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return f, fs.Args(), nil
}
