package main

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/jrc1883/resumepdf"
)

// Generator is the subset of *resumepdf.Generator the CLI drives.
type Generator interface {
	Generate(ctx context.Context, input resumepdf.Input) (*resumepdf.Result, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Generator = (*resumepdf.Generator)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now          func() time.Time
	Stdout       io.Writer
	Stderr       io.Writer
	NewGenerator func(opts ...resumepdf.Option) (Generator, error)
	LookupEnv    func(key string) (string, bool)
	Environ      func() []string
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewGenerator: func(opts ...resumepdf.Option) (Generator, error) {
			return resumepdf.NewGenerator(opts...)
		},
		LookupEnv: os.LookupEnv,
		Environ:   os.Environ,
	}
}

// lookupEnv reads one variable; a nil LookupEnv sees an empty environment.
func (e *Environment) lookupEnv(key string) (string, bool) {
	if e.LookupEnv == nil {
		return "", false
	}
	return e.LookupEnv(key)
}

// environ lists the environment as key=value pairs.
func (e *Environment) environ() []string {
	if e.Environ == nil {
		return nil
	}
	return e.Environ()
}
