package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Sentinel errors for command dispatch.
var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
)

func main() {
	// A missing .env is normal; variables already set are not overridden.
	_ = godotenv.Load()

	verbose := hasVerboseFlag(os.Args[1:])

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and returns the process exit code.
// With no command, or when the first argument is a flag other than
// --version, it generates.
func runMain(ctx context.Context, args []string, env *Environment) int {
	rest := args[1:]
	cmd := "generate"
	if len(rest) > 0 && (rest[0] == "--version" || !strings.HasPrefix(rest[0], "-")) {
		cmd, rest = rest[0], rest[1:]
	}

	switch cmd {
	case "generate":
		return report(env, runGenerate(ctx, rest, env))
	case "inspect":
		return report(env, runInspect(rest, env))
	case "doctor":
		return runDoctorCmd(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "resumepdf %s\n", Version)
		return ExitSuccess
	case "help":
		return runHelp(rest, env)
	case "completion":
		return report(env, runCompletion(rest, env))
	default:
		err := fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
		fmt.Fprintln(env.Stderr, err)
		printUsage(env.Stderr)
		return exitCodeFor(err)
	}
}

// report prints err with any hints and maps it to an exit code.
func report(env *Environment, err error) int {
	if err == nil {
		return ExitSuccess
	}
	fmt.Fprintln(env.Stderr, "error:", err.Error()+hintFor(err))
	return exitCodeFor(err)
}

// hasVerboseFlag scans raw arguments before any flag set is parsed.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "--" {
			return false
		}
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
