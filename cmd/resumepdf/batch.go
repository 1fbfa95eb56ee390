package main

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jrc1883/resumepdf"
)

// variantOutputPath returns <dir>/<base>-<variant><ext> for a base output path.
func variantOutputPath(output string, v resumepdf.Variant) string {
	ext := filepath.Ext(output)
	if ext == "" {
		ext = ".pdf"
	}
	base := strings.TrimSuffix(filepath.Base(output), filepath.Ext(output))
	return filepath.Join(filepath.Dir(output), base+"-"+string(v)+ext)
}

// resolveWorkers maps --workers to a goroutine limit (0 = GOMAXPROCS),
// never more than the number of jobs.
func resolveWorkers(n, jobs int) int {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	if n > jobs {
		n = jobs
	}
	if n < 1 {
		n = 1
	}
	return n
}

// runBatch renders every variant concurrently. Each goroutine owns its
// Generator; the first failure cancels the rest.
func runBatch(ctx context.Context, p *generateParams, workers int, env *Environment) error {
	variants := resumepdf.Variants()
	outcomes := make([]*outcome, len(variants))
	elapsed := make([]time.Duration, len(variants))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(resolveWorkers(workers, len(variants)))

	for i, v := range variants {
		g.Go(func() error {
			gen, err := env.NewGenerator(generatorOptions(p)...)
			if err != nil {
				return fmt.Errorf("variant %s: %w", v, err)
			}
			defer func() { _ = gen.Close() }()

			start := env.Now()
			o, err := render(gCtx, gen, p, v, variantOutputPath(p.output, v))
			if err != nil {
				return fmt.Errorf("variant %s: %w", v, err)
			}
			// Each goroutine writes only its own index.
			outcomes[i] = o
			elapsed[i] = env.Now().Sub(start)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	for i, o := range outcomes {
		printResult(env, p, o, elapsed[i])
	}
	return nil
}
