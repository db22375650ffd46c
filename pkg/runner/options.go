// Package runner strips types from many files: it discovers inputs,
// processes them on a bounded worker pool, writes outputs, and re-runs on
// change in watch mode.
package runner

import (
	"slices"

	"github.com/yaklabco/tsblank/pkg/config"
)

// Options controls a multi-file run.
type Options struct {
	// Paths are the user-specified files or directories. If empty, the
	// working directory is processed.
	Paths []string

	// WorkingDir is the base for relative Paths, ignore globs and the
	// output tree. If empty, the process working directory is used.
	WorkingDir string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Config is the resolved configuration. Nil uses config.NewConfig().
	Config *config.Config
}

// MarkdownExtensions returns the extensions treated as Markdown when
// Markdown mode is on.
func MarkdownExtensions() []string {
	return []string{".md", ".markdown"}
}

func (o Options) config() *config.Config {
	if o.Config == nil {
		return config.NewConfig()
	}
	return o.Config
}

// effectiveExtensions returns the source extensions plus the Markdown ones
// when Markdown mode is on.
func (o Options) effectiveExtensions() []string {
	cfg := o.config()
	exts := cfg.Extensions
	if len(exts) == 0 {
		exts = config.DefaultExtensions()
	}
	exts = slices.Clone(exts)
	if cfg.Markdown {
		exts = append(exts, MarkdownExtensions()...)
	}
	return exts
}

// effectivePaths returns the paths to process, defaulting to ".".
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
