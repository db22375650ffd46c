// Package config defines the configuration types for tsblank.
// These types are pure data; loading and merging live in internal/configloader.
package config

// BackupsConfig controls backups of files overwritten by a strip run.
type BackupsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled" json:"enabled"`
	Mode    string `mapstructure:"mode" yaml:"mode" json:"mode"` // "sidecar" or "xdg"
}

// Backup modes.
const (
	BackupModeSidecar = "sidecar"
	BackupModeXDG     = "xdg"
)

// Config is the root configuration structure.
type Config struct {
	// OutDir receives the generated JavaScript, mirroring the input tree.
	// Empty writes each output next to its source.
	OutDir string `mapstructure:"out_dir" yaml:"out_dir" json:"out_dir"`

	// Extensions lists the source extensions to transform.
	Extensions []string `mapstructure:"extensions" yaml:"extensions" json:"extensions"`

	// Ignore contains doublestar glob patterns for paths to skip.
	Ignore []string `mapstructure:"ignore" yaml:"ignore" json:"ignore"`

	// Markdown also rewrites TypeScript code fences in Markdown files.
	Markdown bool `mapstructure:"markdown" yaml:"markdown" json:"markdown"`

	// DetectUntaggedFences classifies fences without an info string and
	// rewrites those detected as TypeScript.
	DetectUntaggedFences bool `mapstructure:"detect_untagged_fences" yaml:"detect_untagged_fences" json:"detect_untagged_fences"`

	// SkipDeclarationFiles skips .d.ts, .d.mts and .d.cts files.
	SkipDeclarationFiles bool `mapstructure:"skip_declaration_files" yaml:"skip_declaration_files" json:"skip_declaration_files"`

	// Strict makes syntax without a transform rule an error.
	Strict bool `mapstructure:"strict" yaml:"strict" json:"strict"`

	// Jobs is the number of parallel workers; 0 means GOMAXPROCS.
	Jobs int `mapstructure:"jobs" yaml:"jobs" json:"jobs"`

	// Backups configures backups of overwritten outputs.
	Backups BackupsConfig `mapstructure:"backups" yaml:"backups" json:"backups"`

	// CLI-level options (not persisted to config files).

	// Check reports outputs that are missing or stale without writing.
	Check bool `mapstructure:"-" yaml:"-" json:"-"`

	// DryRun shows the outputs that would change without writing.
	DryRun bool `mapstructure:"-" yaml:"-" json:"-"`

	// Stdout writes the output of a single input to standard output.
	Stdout bool `mapstructure:"-" yaml:"-" json:"-"`

	// Watch re-runs when inputs change.
	Watch bool `mapstructure:"-" yaml:"-" json:"-"`

	// Format specifies the report format.
	Format OutputFormat `mapstructure:"-" yaml:"-" json:"-"`

	// NoBackups disables backups for this run.
	NoBackups bool `mapstructure:"-" yaml:"-" json:"-"`
}

// DefaultExtensions returns the source extensions transformed by default.
func DefaultExtensions() []string {
	return []string{".ts", ".mts", ".cts", ".tsx"}
}

// DefaultIgnore returns the ignore patterns used by default.
func DefaultIgnore() []string {
	return []string{"**/node_modules/**", "**/.git/**"}
}

// NewConfig returns a Config with defaults.
func NewConfig() *Config {
	return &Config{
		Extensions:           DefaultExtensions(),
		Ignore:               DefaultIgnore(),
		SkipDeclarationFiles: true,
		Backups: BackupsConfig{
			Enabled: false,
			Mode:    BackupModeSidecar,
		},
		Format: FormatText,
		Jobs:   0,
	}
}

// BackupsEnabled reports whether this run should back up overwritten files.
func (c *Config) BackupsEnabled() bool {
	return c.Backups.Enabled && !c.NoBackups
}
