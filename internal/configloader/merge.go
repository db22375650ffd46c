package configloader

import (
	"slices"

	"github.com/yaklabco/tsblank/pkg/config"
)

// merge overlays command-line settings on a loaded configuration.
//   - Scalars: override wins when it is non-zero
//   - Booleans: override can only turn a setting on
//   - Slices: override replaces base entirely when non-nil
//   - CLI-only fields always come from override
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.OutDir != "" {
		result.OutDir = override.OutDir
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}

	// false is the zero value, so flags can only enable these.
	if override.Markdown {
		result.Markdown = true
	}
	if override.DetectUntaggedFences {
		result.DetectUntaggedFences = true
	}
	if override.Strict {
		result.Strict = true
	}
	if override.Backups.Enabled {
		result.Backups.Enabled = true
	}

	if override.Extensions != nil {
		result.Extensions = slices.Clone(override.Extensions)
	}
	if override.Ignore != nil {
		result.Ignore = slices.Clone(override.Ignore)
	}

	result.Check = override.Check
	result.DryRun = override.DryRun
	result.Stdout = override.Stdout
	result.Watch = override.Watch
	result.NoBackups = override.NoBackups
	if override.Format != "" {
		result.Format = override.Format
	}

	return result
}
