package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/tsblank/internal/configloader"
	"github.com/yaklabco/tsblank/internal/logging"
	"github.com/yaklabco/tsblank/pkg/config"
	"github.com/yaklabco/tsblank/pkg/fsutil"
)

type initFlags struct {
	force  bool
	full   bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a tsblank configuration file",
		Long: `Create a .tsblank.yml configuration file in the current directory with
the default settings. Settings that are off by default are commented out.

Examples:
  tsblank init                       Create a minimal .tsblank.yml
  tsblank init --full                Write every setting with its default
  tsblank init --output ci.yml       Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().BoolVar(&flags.full, "full", false, "write every setting with its default value")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigFiles[0], "output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive()

	workDir, err := workingDir(cmd)
	if err != nil {
		return err
	}
	absPath := flags.output
	if !filepath.IsAbs(absPath) {
		absPath = filepath.Join(workDir, absPath)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return usageError(fmt.Errorf("file %q already exists; use --force to overwrite", flags.output))
		}
		logger.Warn("overwriting existing file", logging.FieldPath, flags.output)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", flags.output, err)
	}

	content, err := config.GenerateTemplate(config.TemplateOptions{Full: flags.full})
	if err != nil {
		return fmt.Errorf("generate template: %w", err)
	}

	if _, err := config.FromYAML(content); err != nil {
		return &ExitError{Code: ExitInternalError, Err: fmt.Errorf("generated template is invalid: %w", err)}
	}

	if err := fsutil.WriteAtomic(cmd.Context(), absPath, content, fsutil.DefaultFileMode); err != nil {
		return &ExitError{Code: ExitIOError, Err: fmt.Errorf("write %s: %w", flags.output, err)}
	}

	logger.Info("created configuration file", logging.FieldPath, flags.output)
	return nil
}
