package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/jrc1883/resumepdf"
	"github.com/jrc1883/resumepdf/internal/config"
	"github.com/jrc1883/resumepdf/internal/pdfcheck"
	"github.com/jrc1883/resumepdf/internal/yamlutil"
)

// Sentinel errors for the generate command.
var (
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
	ErrConflictingFlags   = errors.New("conflicting flags")
	ErrVerify             = errors.New("verification failed")
)

// maxWorkers caps --workers; there are only a handful of variants.
const maxWorkers = 8

// generateParams is the fully resolved generate request.
type generateParams struct {
	output    string
	variant   resumepdf.Variant
	backend   resumepdf.Backend
	timeout   time.Duration // 0 = library default
	page      *resumepdf.PageSettings
	overrides []resumepdf.StyleOverride
	html      bool
	htmlOnly  bool
	verify    bool
	quiet     bool
	verbose   bool
}

// runGenerate builds the résumé PDF (or every variant with --all-variants).
func runGenerate(ctx context.Context, args []string, env *Environment) error {
	flags, positional, err := parseGenerateFlags(args, env.Stdout)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if len(positional) > 0 {
		return fmt.Errorf("%w: unexpected argument %q", ErrUsage, positional[0])
	}
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}
	if flags.outputMode.htmlOnly && flags.outputMode.verify {
		return fmt.Errorf("%w: --verify needs a PDF, not --html-only", ErrConflictingFlags)
	}
	if err := validateFlagValues(flags); err != nil {
		return err
	}

	envCfg, err := loadEnvConfig(env.lookupEnv)
	if err != nil {
		return err
	}
	if !flags.common.quiet {
		warnUnknownEnvVars(env.Stderr, env.environ())
	}

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	cfg, err := loadConfig(configName)
	if err != nil {
		return err
	}

	// flags > env > config file > defaults
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	if flags.outputMode.printConfig {
		out, err := yamlutil.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(out)
		return err
	}

	params, err := buildParams(flags, cfg)
	if err != nil {
		return err
	}

	if flags.allVariants {
		workers := flags.workers
		if workers == 0 {
			workers = envCfg.Workers
		}
		return runBatch(ctx, params, workers, env)
	}
	return generateOne(ctx, params, env)
}

// loadConfig returns the named config, or defaults when name is empty.
func loadConfig(name string) (*config.Config, error) {
	if name == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.LoadConfig(name)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, &configNotFoundError{name: name, err: err}
		}
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *generateFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output.Path = flags.output
	}
	if flags.outputMode.html {
		cfg.Output.HTML = true
	}
	if flags.variant != "" {
		cfg.Content.Variant = strings.ToLower(flags.variant)
	}
	if flags.backend != "" {
		cfg.Render.Backend = strings.ToLower(flags.backend)
	}
	if flags.timeout != "" {
		cfg.Render.Timeout = flags.timeout
	}
	if flags.page.size != "" {
		cfg.Page.Size = strings.ToLower(flags.page.size)
	}
	if flags.page.marginTop != nil {
		cfg.Page.Margins.Top = flags.page.marginTop
	}
	if flags.page.marginRight != nil {
		cfg.Page.Margins.Right = flags.page.marginRight
	}
	if flags.page.marginBottom != nil {
		cfg.Page.Margins.Bottom = flags.page.marginBottom
	}
	if flags.page.marginLeft != nil {
		cfg.Page.Margins.Left = flags.page.marginLeft
	}
}

// buildParams resolves a validated config into library inputs.
func buildParams(flags *generateFlags, cfg *config.Config) (*generateParams, error) {
	variant, err := resumepdf.ParseVariant(cfg.Content.Variant)
	if err != nil {
		return nil, err
	}
	backend, err := resumepdf.ParseBackend(cfg.Render.Backend)
	if err != nil {
		return nil, err
	}

	page, err := buildPageSettings(cfg)
	if err != nil {
		return nil, err
	}

	output := cfg.Output.Path
	if output == "" {
		output = resumepdf.DefaultOutputPath
	}

	return &generateParams{
		output:    output,
		variant:   variant,
		backend:   backend,
		timeout:   cfg.TimeoutDuration(),
		page:      page,
		overrides: buildStyleOverrides(cfg.Styles),
		html:      cfg.Output.HTML,
		htmlOnly:  flags.outputMode.htmlOnly,
		verify:    flags.outputMode.verify,
		quiet:     flags.common.quiet,
		verbose:   flags.common.verbose,
	}, nil
}

// buildPageSettings starts from the defaults and applies configured values.
func buildPageSettings(cfg *config.Config) (*resumepdf.PageSettings, error) {
	page := resumepdf.DefaultPageSettings()
	if cfg.Page.Size != "" {
		page.Size = cfg.Page.Size
	}
	m := cfg.Page.Margins
	if m.Top != nil {
		page.Margins.Top = *m.Top
	}
	if m.Right != nil {
		page.Margins.Right = *m.Right
	}
	if m.Bottom != nil {
		page.Margins.Bottom = *m.Bottom
	}
	if m.Left != nil {
		page.Margins.Left = *m.Left
	}
	if err := page.Validate(); err != nil {
		return nil, err
	}
	return page, nil
}

// buildStyleOverrides maps config styles onto library overrides.
func buildStyleOverrides(styles []config.StyleConfig) []resumepdf.StyleOverride {
	if len(styles) == 0 {
		return nil
	}
	out := make([]resumepdf.StyleOverride, len(styles))
	for i, s := range styles {
		out[i] = resumepdf.StyleOverride{
			Name:        s.Name,
			FontSize:    s.FontSize,
			Color:       s.Color,
			SpaceBefore: s.SpaceBefore,
			SpaceAfter:  s.SpaceAfter,
			Leading:     s.Leading,
		}
	}
	return out
}

// validateFlagValues rejects bad enum and duration flags before they are
// merged, so errors name the flag rather than the config key.
func validateFlagValues(flags *generateFlags) error {
	if flags.variant != "" {
		if _, err := resumepdf.ParseVariant(flags.variant); err != nil {
			return fmt.Errorf("--variant: %w", err)
		}
	}
	if flags.backend != "" {
		if _, err := resumepdf.ParseBackend(flags.backend); err != nil {
			return fmt.Errorf("--backend: %w", err)
		}
	}
	if flags.timeout != "" {
		d, err := time.ParseDuration(flags.timeout)
		if err != nil {
			return fmt.Errorf("%w: %q: %v", ErrInvalidTimeout, flags.timeout, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: %q must be positive", ErrInvalidTimeout, flags.timeout)
		}
	}
	return nil
}

// validateWorkers checks the --workers range.
func validateWorkers(n int) error {
	if n < 0 || n > maxWorkers {
		return fmt.Errorf("%w: %d (must be 0-%d)", ErrInvalidWorkerCount, n, maxWorkers)
	}
	return nil
}

// generatorOptions translates params into library options.
func generatorOptions(p *generateParams) []resumepdf.Option {
	opts := []resumepdf.Option{resumepdf.WithBackend(p.backend)}
	if p.timeout > 0 {
		opts = append(opts, resumepdf.WithTimeout(p.timeout))
	}
	if len(p.overrides) > 0 {
		opts = append(opts, resumepdf.WithStyleOverrides(p.overrides...))
	}
	return opts
}

// generateOne writes a single variant and prints the outcome.
func generateOne(ctx context.Context, p *generateParams, env *Environment) error {
	gen, err := env.NewGenerator(generatorOptions(p)...)
	if err != nil {
		return err
	}
	defer func() { _ = gen.Close() }()

	start := env.Now()
	result, err := render(ctx, gen, p, p.variant, p.output)
	if err != nil {
		return err
	}
	printResult(env, p, result, env.Now().Sub(start))
	return nil
}

// outcome is one written résumé, with its verification report when requested.
type outcome struct {
	variant resumepdf.Variant
	result  *resumepdf.Result
	report  *pdfcheck.Report
}

// render generates one variant to output and verifies it when asked.
func render(ctx context.Context, gen Generator, p *generateParams, v resumepdf.Variant, output string) (*outcome, error) {
	result, err := gen.Generate(ctx, resumepdf.Input{
		Variant:    v,
		OutputPath: output,
		Page:       p.page,
		HTML:       p.html,
		HTMLOnly:   p.htmlOnly,
	})
	if err != nil {
		return nil, err
	}

	o := &outcome{variant: v, result: result}
	if p.verify {
		report, err := pdfcheck.InspectFile(result.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrVerify, result.Path, err)
		}
		o.report = report
	}
	return o, nil
}

// printResult reports a finished generation on stdout.
func printResult(env *Environment, p *generateParams, o *outcome, elapsed time.Duration) {
	if p.quiet {
		return
	}
	r := o.result
	if r.HTMLPath != "" {
		fmt.Fprintf(env.Stdout, "HTML generated: %s\n", r.HTMLPath)
	}
	if r.Path != "" {
		fmt.Fprintf(env.Stdout, "Resume generated: %s\n", r.Path)
	}
	if o.report != nil {
		fmt.Fprintf(env.Stdout, "Verified: %d page(s), %d bytes\n", o.report.Pages, o.report.Size)
	}
	if p.verbose {
		fmt.Fprintf(env.Stderr, "variant=%s backend=%s blocks=%d elapsed=%v\n",
			o.variant, p.backend, len(r.Blocks), elapsed.Round(time.Millisecond))
	}
}
