// Package configloader resolves the tsblank configuration. It discovers
// configuration files in XDG locations and the project tree, layers them
// with environment variables and command-line overrides, and validates the
// result.
package configloader

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/yaklabco/tsblank/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config flag).
	// It is loaded after every discovered file.
	ExplicitPath string

	// IgnoreSystemConfig skips loading system-level configuration.
	IgnoreSystemConfig bool

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// CLIConfig contains configuration from CLI flags.
	// These take highest precedence.
	CLIConfig *config.Config
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. CLI flags (opts.CLIConfig)
//  2. Environment variables (TSBLANK_*)
//  3. Explicit config file (opts.ExplicitPath)
//  4. Project config (.tsblank.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/tsblank/config.yaml)
//  6. System config (/etc/tsblank/config.yaml)
//  7. Defaults
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("discover paths: %w", err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}

	layers := []struct {
		name string
		path string
		skip bool
	}{
		{"system", paths.System, opts.IgnoreSystemConfig},
		{"user", paths.User, opts.IgnoreUserConfig},
		{"project", paths.Project, opts.IgnoreProjectConfig},
		{"explicit", paths.Explicit, false},
	}

	v := newViper(config.NewConfig())
	for _, layer := range layers {
		if layer.skip || layer.path == "" {
			continue
		}
		warnings, err := mergeConfigFile(v, layer.path)
		if err != nil {
			return nil, fmt.Errorf("load %s config: %w", layer.name, err)
		}
		result.LoadedFrom = append(result.LoadedFrom, layer.path)
		for _, w := range warnings {
			result.Warnings = append(result.Warnings, w.Error())
		}
	}

	if !opts.IgnoreEnv {
		bindEnv(v)
	}

	cfg := config.NewConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if opts.CLIConfig != nil {
		cfg = merge(cfg, opts.CLIConfig)
	}
	normalize(cfg)

	validation := Validate(cfg)
	if !validation.Valid() {
		return nil, &validation.Errors[0]
	}
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, w.Message)
	}

	result.Config = cfg
	return result, nil
}

// knownKeys lists every key a configuration file may set.
//
//nolint:gochecknoglobals // Read-only lookup table.
var knownKeys = []string{
	"out_dir",
	"extensions",
	"ignore",
	"markdown",
	"detect_untagged_fences",
	"skip_declaration_files",
	"strict",
	"jobs",
	"backups.enabled",
	"backups.mode",
}

// newViper returns a viper instance with every known key defaulted from
// defaults. Keys need a default for environment overrides to apply.
func newViper(defaults *config.Config) *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("out_dir", defaults.OutDir)
	v.SetDefault("extensions", defaults.Extensions)
	v.SetDefault("ignore", defaults.Ignore)
	v.SetDefault("markdown", defaults.Markdown)
	v.SetDefault("detect_untagged_fences", defaults.DetectUntaggedFences)
	v.SetDefault("skip_declaration_files", defaults.SkipDeclarationFiles)
	v.SetDefault("strict", defaults.Strict)
	v.SetDefault("jobs", defaults.Jobs)
	v.SetDefault("backups.enabled", defaults.Backups.Enabled)
	v.SetDefault("backups.mode", defaults.Backups.Mode)
	return v
}

// mergeConfigFile reads a YAML file and merges its settings into v. Keys
// tsblank does not know are returned as warnings.
func mergeConfigFile(v *viper.Viper, path string) ([]ValidationError, error) {
	file := viper.New()
	file.SetConfigFile(path)
	file.SetConfigType("yaml")
	if err := file.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var warnings []ValidationError
	for _, key := range file.AllKeys() {
		if !slices.Contains(knownKeys, key) {
			warnings = append(warnings, ValidationError{
				Field:    key,
				Message:  "unknown setting; it will be ignored",
				FilePath: path,
			})
		}
	}

	if err := v.MergeConfigMap(file.AllSettings()); err != nil {
		return nil, fmt.Errorf("merge %s: %w", path, err)
	}
	return warnings, nil
}

// normalize cleans list settings: entries are trimmed, empty entries are
// dropped and extensions are lower-cased with a leading dot.
func normalize(cfg *config.Config) {
	cfg.Ignore = cleanList(cfg.Ignore)

	exts := cleanList(cfg.Extensions)
	for i, ext := range exts {
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts[i] = ext
	}
	cfg.Extensions = exts
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
