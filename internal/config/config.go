package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jrc1883/resumepdf"
	"github.com/jrc1883/resumepdf/internal/fileutil"
	"github.com/jrc1883/resumepdf/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrConfigInvalid   = errors.New("invalid config")
)

// userConfigDirName is the directory under os.UserConfigDir searched for
// named configs.
const userConfigDirName = "resumepdf"

// Config holds all configuration for résumé generation.
// Zero values mean "use the built-in default".
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Content ContentConfig `yaml:"content"`
	Render  RenderConfig  `yaml:"render"`
	Page    PageConfig    `yaml:"page"`
	Styles  []StyleConfig `yaml:"styles" validate:"dive"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Path string `yaml:"path" validate:"omitempty,max=4096"` // PDF path (empty = public/Joseph_Cannon_Resume.pdf)
	HTML bool   `yaml:"html"`                               // Also write the intermediate HTML
}

// ContentConfig selects the résumé wording.
type ContentConfig struct {
	Variant string `yaml:"variant" validate:"omitempty,oneof=concise detailed"`
}

// RenderConfig selects the render engine.
type RenderConfig struct {
	Backend string `yaml:"backend" validate:"omitempty,oneof=native chrome"`
	Timeout string `yaml:"timeout"` // Go duration, e.g. "45s"
}

// PageConfig defines PDF page settings. Unset margins keep their defaults.
type PageConfig struct {
	Size    string        `yaml:"size" validate:"omitempty,oneof=letter a4 legal"`
	Margins MarginsConfig `yaml:"margins"`
}

// MarginsConfig holds optional per-side margins in inches.
type MarginsConfig struct {
	Top    *float64 `yaml:"top,omitempty" validate:"omitempty,gte=0,lte=3"`
	Right  *float64 `yaml:"right,omitempty" validate:"omitempty,gte=0,lte=3"`
	Bottom *float64 `yaml:"bottom,omitempty" validate:"omitempty,gte=0,lte=3"`
	Left   *float64 `yaml:"left,omitempty" validate:"omitempty,gte=0,lte=3"`
}

// StyleConfig adjusts one named paragraph style.
type StyleConfig struct {
	Name        string   `yaml:"name" validate:"required,oneof=name credentials contact section job-title job-meta bullet normal"`
	FontSize    *float64 `yaml:"fontSize,omitempty" validate:"omitempty,gt=0,lte=72"`
	Color       string   `yaml:"color,omitempty" validate:"omitempty,rgbcolor"`
	SpaceBefore *float64 `yaml:"spaceBefore,omitempty" validate:"omitempty,gte=0,lte=144"`
	SpaceAfter  *float64 `yaml:"spaceAfter,omitempty" validate:"omitempty,gte=0,lte=144"`
	Leading     *float64 `yaml:"leading,omitempty" validate:"omitempty,gt=0,lte=144"`
}

// validate is shared; validator.Validate caches struct metadata and is safe
// for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report YAML keys rather than Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Accept exactly what the renderer parses: "#rgb" or "#rrggbb".
	_ = v.RegisterValidation("rgbcolor", func(fl validator.FieldLevel) bool {
		_, err := resumepdf.ParseColor(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks field values and the timeout syntax.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrConfigInvalid, describeValidation(err))
	}

	if c.Render.Timeout != "" {
		d, err := time.ParseDuration(c.Render.Timeout)
		if err != nil {
			return fmt.Errorf("%w: render.timeout: %v", ErrConfigInvalid, err)
		}
		if d <= 0 {
			return fmt.Errorf("%w: render.timeout: must be positive, got %s", ErrConfigInvalid, c.Render.Timeout)
		}
	}

	return nil
}

// TimeoutDuration returns the parsed render timeout, or 0 when unset.
// Call Validate first; an invalid value also yields 0.
func (c *Config) TimeoutDuration() time.Duration {
	if c.Render.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Render.Timeout)
	if err != nil {
		return 0
	}
	return d
}

// describeValidation flattens validator errors into "field: rule" pairs.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.TrimPrefix(fe.Namespace(), "Config.")
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: failed %s=%s (got %v)", field, fe.Tag(), fe.Param(), fe.Value()))
		} else {
			parts = append(parts, fmt.Sprintf("%s: failed %s (got %v)", field, fe.Tag(), fe.Value()))
		}
	}
	return strings.Join(parts, "; ")
}

// DefaultConfig returns an empty configuration; every field falls back to
// the built-in defaults.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) || (filepath.Ext(nameOrPath) != "" && fileutil.FileExists(nameOrPath)) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists, in lookup order, the files tried for a config name.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, userConfigDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath searches for a config file by name in standard locations:
// the current directory, then the user config directory.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
