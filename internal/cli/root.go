// Package cli provides the Cobra command structure for tsblank.
package cli

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tsblank/internal/configloader"
	"github.com/yaklabco/tsblank/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root tsblank command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var configPath string
	var color string
	var chdir string

	rootCmd := &cobra.Command{
		Use:   "tsblank",
		Short: "Turn TypeScript into JavaScript by blanking out the types",
		Long: `tsblank turns TypeScript into JavaScript by overwriting type syntax with
whitespace. Every value keeps its line and column, so stack traces and
breakpoints line up with the TypeScript source without source maps.

Enums are the one construct rewritten to runtime code. Syntax that would
need code generation, such as parameter properties, is rejected.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations: map[string]string{
			annotationEnvironment: environmentHelp(),
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().StringVarP(&chdir, "chdir", "C", "", "run as if started in this directory")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	rootCmd.AddCommand(newStripCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(color, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}

// environmentHelp lists the environment variables in name order.
func environmentHelp() string {
	vars := configloader.ListEnvVars()
	names := make([]string, 0, len(vars))
	width := 0
	for name := range vars {
		names = append(names, name)
		width = max(width, len(name))
	}
	sort.Strings(names)

	var builder strings.Builder
	for _, name := range names {
		fmt.Fprintf(&builder, "  %-*s  %s\n", width, name, vars[name])
	}
	return strings.TrimSuffix(builder.String(), "\n")
}
