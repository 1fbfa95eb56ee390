package main

import (
	"bytes"
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jrc1883/resumepdf"
)

// fakeGenerator records inputs and returns a canned result or error.
type fakeGenerator struct {
	mu     sync.Mutex
	inputs []resumepdf.Input
	err    error
	closed bool
}

func (f *fakeGenerator) Generate(_ context.Context, input resumepdf.Input) (*resumepdf.Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, input)
	if f.err != nil {
		return nil, f.err
	}
	res := &resumepdf.Result{Blocks: []resumepdf.Block{resumepdf.Paragraph{Text: "x", Style: resumepdf.StyleNormal}}}
	if input.HTML || input.HTMLOnly {
		res.HTMLPath = resumepdf.HTMLPathFor(input.OutputPath)
	}
	if !input.HTMLOnly {
		res.Path = input.OutputPath
		res.PDF = []byte("%PDF-1.3 fake")
	}
	return res, nil
}

func (f *fakeGenerator) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// testEnv returns an Environment with captured output, a fixed clock and,
// when gen is non-nil, a generator factory that always returns gen.
func testEnv(gen Generator) (*Environment, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	fixed := time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC)
	env := &Environment{
		Now:    func() time.Time { return fixed },
		Stdout: stdout,
		Stderr: stderr,
		NewGenerator: func(opts ...resumepdf.Option) (Generator, error) {
			return resumepdf.NewGenerator(opts...)
		},
		LookupEnv: func(string) (string, bool) { return "", false },
		Environ:   func() []string { return nil },
	}
	if gen != nil {
		env.NewGenerator = func(...resumepdf.Option) (Generator, error) { return gen, nil }
	}
	return env, stdout, stderr
}

// withEnv makes env see exactly vars as its process environment.
func withEnv(env *Environment, vars map[string]string) {
	env.LookupEnv = func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
	env.Environ = func() []string {
		out := make([]string, 0, len(vars))
		for k, v := range vars {
			out = append(out, k+"="+v)
		}
		return out
	}
}

// writeFile creates a file with content for test setup.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
}
