package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/jrc1883/resumepdf/internal/config"
)

// envPrefix marks the variables read by resumepdf.
const envPrefix = "RESUMEPDF_"

// Recognized environment variables.
const (
	envConfigPath = envPrefix + "CONFIG"
	envOutput     = envPrefix + "OUTPUT"
	envVariant    = envPrefix + "VARIANT"
	envBackend    = envPrefix + "BACKEND"
	envTimeout    = envPrefix + "TIMEOUT"
	envPageSize   = envPrefix + "PAGE_SIZE"
	envWorkers    = envPrefix + "WORKERS"
)

// knownEnvVars is used to flag typos such as RESUMEPDF_VARIENT.
var knownEnvVars = map[string]bool{
	envConfigPath: true,
	envOutput:     true,
	envVariant:    true,
	envBackend:    true,
	envTimeout:    true,
	envPageSize:   true,
	envWorkers:    true,
}

// envConfig holds configuration from environment variables.
// Strings are kept raw; config.Validate checks them after merging.
type envConfig struct {
	ConfigPath string
	Output     string
	Variant    string
	Backend    string
	Timeout    string
	PageSize   string
	Workers    int
}

// loadEnvConfig reads the RESUMEPDF_* variables through lookup.
func loadEnvConfig(lookup func(string) (string, bool)) (*envConfig, error) {
	get := func(name string) string {
		v, _ := lookup(name)
		return strings.TrimSpace(v)
	}

	cfg := &envConfig{
		ConfigPath: get(envConfigPath),
		Output:     get(envOutput),
		Variant:    strings.ToLower(get(envVariant)),
		Backend:    strings.ToLower(get(envBackend)),
		Timeout:    get(envTimeout),
		PageSize:   strings.ToLower(get(envPageSize)),
	}

	if raw := get(envWorkers); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidWorkerCount, envWorkers, raw)
		}
		if err := validateWorkers(n); err != nil {
			return nil, fmt.Errorf("%s: %w", envWorkers, err)
		}
		cfg.Workers = n
	}

	return cfg, nil
}

// applyEnvConfig fills config values from the environment. Flags are merged
// afterwards, giving flags > env > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.Output != "" {
		cfg.Output.Path = env.Output
	}
	if env.Variant != "" {
		cfg.Content.Variant = env.Variant
	}
	if env.Backend != "" {
		cfg.Render.Backend = env.Backend
	}
	if env.Timeout != "" {
		cfg.Render.Timeout = env.Timeout
	}
	if env.PageSize != "" {
		cfg.Page.Size = env.PageSize
	}
}

// warnUnknownEnvVars prints a warning per unrecognized RESUMEPDF_* name.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	var unknown []string
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	sort.Strings(unknown)
	for _, name := range unknown {
		fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
	}
}
