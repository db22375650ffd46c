package configloader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// ConfigPaths lists the config files found for one run. Empty fields mean
// no file at that layer.
type ConfigPaths struct {
	// System is /etc/tsblank/config.yaml, or %ProgramData%\tsblank on Windows.
	System string

	// User is $XDG_CONFIG_HOME/tsblank/config.yaml.
	User string

	// Project is the nearest .tsblank.yml above the working directory.
	Project string

	// Explicit comes from --config.
	Explicit string
}

// ProjectConfigFiles are the project config file names, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var ProjectConfigFiles = []string{
	".tsblank.yml",
	".tsblank.yaml",
	"tsblank.yml",
	"tsblank.yaml",
}

// globalConfigFiles are the names looked up in the system and user dirs.
//
//nolint:gochecknoglobals // Read-only lookup table.
var globalConfigFiles = []string{"config.yaml", "config.yml"}

// repoMarkers end the upward project search.
//
//nolint:gochecknoglobals // Read-only lookup table.
var repoMarkers = []string{".git", ".hg", ".svn"}

// DiscoverPaths finds the system, user and project config files for
// workDir.
func DiscoverPaths(ctx context.Context, workDir string) (*ConfigPaths, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context cancelled: %w", err)
	}

	project, err := FindProjectConfig(ctx, workDir)
	if err != nil {
		return nil, err
	}

	return &ConfigPaths{
		System:  firstFile(systemConfigDir(), globalConfigFiles),
		User:    firstFile(userConfigDir(), globalConfigFiles),
		Project: project,
	}, nil
}

func systemConfigDir() string {
	if runtime.GOOS != "windows" {
		return "/etc/tsblank"
	}
	programData := os.Getenv("ProgramData")
	if programData == "" {
		programData = `C:\ProgramData`
	}
	return filepath.Join(programData, "tsblank")
}

func userConfigDir() string {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "tsblank")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tsblank")
}

// FindProjectConfig walks up from startDir, or the working directory when
// empty, and returns the first project config file. The walk ends without
// a result at a repository root, the home directory or the filesystem
// root.
func FindProjectConfig(ctx context.Context, startDir string) (string, error) {
	if startDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		startDir = wd
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	// An unknown home only disables that stop.
	home, _ := os.UserHomeDir()

	for {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("context cancelled: %w", err)
		}

		if path := firstFile(dir, ProjectConfigFiles); path != "" {
			return path, nil
		}
		if isRepoRoot(dir) || (home != "" && dir == home) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// firstFile returns the first of names that is a regular file in dir.
func firstFile(dir string, names []string) string {
	if dir == "" {
		return ""
	}
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func isRepoRoot(dir string) bool {
	for _, marker := range repoMarkers {
		if info, err := os.Stat(filepath.Join(dir, marker)); err == nil && info.IsDir() {
			return true
		}
	}
	return false
}
