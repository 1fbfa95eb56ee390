package main

// Notes:
// - runMain: we test dispatch and exit codes. PDF content is covered by the
//   generate and library tests.

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jrc1883/resumepdf"
)

// ---------------------------------------------------------------------------
// TestRunMain - Command dispatch and exit codes
// ---------------------------------------------------------------------------

func TestRunMain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantCode   int
		wantStdout string
		wantStderr string
	}{
		{"version command", []string{"version"}, ExitSuccess, "resumepdf " + Version, ""},
		{"version flag", []string{"--version"}, ExitSuccess, "resumepdf " + Version, ""},
		{"help", []string{"help"}, ExitSuccess, "Commands:", ""},
		{"help topic", []string{"help", "inspect"}, ExitSuccess, "resumepdf inspect", ""},
		{"unknown command", []string{"render"}, ExitUsage, "", "unknown command"},
		{"completion", []string{"completion", "fish"}, ExitSuccess, "complete -c resumepdf", ""},
		{"completion unknown shell", []string{"completion", "tcsh"}, ExitUsage, "", "unsupported shell"},
		{"inspect without path", []string{"inspect"}, ExitUsage, "", "error:"},
		{"bad workers", []string{"--workers", "99"}, ExitUsage, "", "invalid worker count"},
		{"unknown variant has hint", []string{"generate", "--variant", "long"}, ExitUsage, "", "hint: available: concise, detailed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			env, stdout, stderr := testEnv(&fakeGenerator{})
			code := runMain(context.Background(), append([]string{"resumepdf"}, tt.args...), env)

			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (stderr: %s)", code, tt.wantCode, stderr.String())
			}
			if tt.wantStdout != "" && !strings.Contains(stdout.String(), tt.wantStdout) {
				t.Errorf("stdout = %q, want to contain %q", stdout.String(), tt.wantStdout)
			}
			if tt.wantStderr != "" && !strings.Contains(stderr.String(), tt.wantStderr) {
				t.Errorf("stderr = %q, want to contain %q", stderr.String(), tt.wantStderr)
			}
		})
	}
}

func TestRunMain_DefaultCommandGenerates(t *testing.T) {
	t.Parallel()

	gen := &fakeGenerator{}
	env, stdout, _ := testEnv(gen)

	if code := runMain(context.Background(), []string{"resumepdf"}, env); code != ExitSuccess {
		t.Fatalf("exit code = %d, want %d", code, ExitSuccess)
	}
	if len(gen.inputs) != 1 || gen.inputs[0].OutputPath != resumepdf.DefaultOutputPath {
		t.Errorf("inputs = %+v, want one run to %s", gen.inputs, resumepdf.DefaultOutputPath)
	}
	if !strings.Contains(stdout.String(), "Resume generated: "+resumepdf.DefaultOutputPath) {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunMain_UnwritableOutput(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "public")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	env, _, stderr := testEnv(nil)

	code := runMain(context.Background(), []string{"resumepdf", "-o", filepath.Join(blocker, "cv.pdf")}, env)
	if code != ExitIO {
		t.Errorf("exit code = %d, want %d (stderr: %s)", code, ExitIO, stderr.String())
	}
	if !strings.Contains(stderr.String(), "hint:") {
		t.Errorf("stderr = %q, want a hint", stderr.String())
	}
}

func TestRunMain_ConfigNotFoundHint(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv(&fakeGenerator{})
	code := runMain(context.Background(), []string{"resumepdf", "--config", "no-such-resume-config"}, env)
	if code != ExitUsage {
		t.Errorf("exit code = %d, want %d", code, ExitUsage)
	}
	if !strings.Contains(stderr.String(), "no-such-resume-config.yaml") {
		t.Errorf("stderr = %q, want searched paths", stderr.String())
	}
}

// ---------------------------------------------------------------------------
// TestHasVerboseFlag - Pre-parse verbose detection
// ---------------------------------------------------------------------------

func TestHasVerboseFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"none", nil, false},
		{"short", []string{"-v"}, true},
		{"long", []string{"generate", "--verbose"}, true},
		{"after terminator", []string{"--", "-v"}, false},
		{"other flags", []string{"--verify", "-o", "v.pdf"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := hasVerboseFlag(tt.args); got != tt.want {
				t.Errorf("hasVerboseFlag(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestReport(t *testing.T) {
	t.Parallel()

	env, _, stderr := testEnv(nil)
	if code := report(env, nil); code != ExitSuccess {
		t.Errorf("report(nil) = %d, want %d", code, ExitSuccess)
	}
	if stderr.Len() != 0 {
		t.Errorf("stderr = %q, want empty", stderr.String())
	}

	if code := report(env, resumepdf.ErrWritePDF); code != ExitIO {
		t.Errorf("report(ErrWritePDF) = %d, want %d", code, ExitIO)
	}
	if !strings.HasPrefix(stderr.String(), "error: ") {
		t.Errorf("stderr = %q, want error prefix", stderr.String())
	}
}
