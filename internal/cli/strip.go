package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/tsblank/internal/configloader"
	"github.com/yaklabco/tsblank/internal/logging"
	"github.com/yaklabco/tsblank/pkg/config"
	"github.com/yaklabco/tsblank/pkg/reporter"
	"github.com/yaklabco/tsblank/pkg/runner"
)

// stdinPath is the path argument that reads the input from standard input.
const stdinPath = "-"

type stripFlags struct {
	format         string
	ignore         []string
	extensions     []string
	backups        bool
	noContext      bool
	compact        bool
	quiet          bool
	followSymlinks bool
	debounce       time.Duration
	stdinFilename  string
}

func newStripCommand() *cobra.Command {
	var cfg config.Config
	flags := &stripFlags{}

	cmd := &cobra.Command{
		Use:   "strip [paths...]",
		Short: "Erase TypeScript types, leaving runnable JavaScript",
		Long:  stripLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrip(cmd, args, &cfg, flags)
		},
	}

	addStripFlags(cmd, &cfg, flags)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	return cmd
}

const stripLongDescription = `Erase TypeScript type syntax, replacing it with whitespace so that every
line and column of the JavaScript output matches the source.

By default, strips all .ts, .mts, .cts and .tsx files under the current
directory and writes each output next to its source (a.ts -> a.js).
With no paths and piped input, reads TypeScript from standard input and
writes JavaScript to standard output.

Examples:
  tsblank strip                        # Strip the current directory
  tsblank strip src/ --out-dir dist    # Mirror src/ into dist/
  tsblank strip --check                # Fail if any output is stale
  tsblank strip --format diff          # Show what would change
  tsblank strip --markdown docs/       # Rewrite TypeScript fences in Markdown
  tsblank strip --watch src/           # Re-strip on change
  cat a.ts | tsblank strip > a.js      # Filter standard input`

func addStripFlags(cmd *cobra.Command, cfg *config.Config, flags *stripFlags) {
	cmd.Flags().StringVarP(&cfg.OutDir, "out-dir", "o", "", "directory for outputs, mirroring the input tree")
	cmd.Flags().BoolVar(&cfg.Check, "check", false, "report missing or stale outputs without writing")
	cmd.Flags().BoolVar(&cfg.DryRun, "dry-run", false, "show what would be written without writing")
	cmd.Flags().BoolVar(&cfg.Stdout, "stdout", false, "write the output of a single file to standard output")
	cmd.Flags().BoolVarP(&cfg.Watch, "watch", "w", false, "re-run when inputs change")
	cmd.Flags().IntVarP(&cfg.Jobs, "jobs", "j", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().BoolVar(&cfg.Strict, "strict", false, "fail on syntax without a transform rule")
	cmd.Flags().BoolVar(&cfg.Markdown, "markdown", false, "also rewrite TypeScript code fences in Markdown files")
	cmd.Flags().BoolVar(&cfg.DetectUntaggedFences, "detect-untagged", false,
		"rewrite untagged fences detected as TypeScript")
	cmd.Flags().BoolVar(&cfg.NoBackups, "no-backups", false, "disable backups of overwritten files")
	cmd.Flags().BoolVar(&flags.backups, "backups", false, "back up files before overwriting them")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "text", "report format: text, json, diff, summary")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.extensions, "ext", nil, "source extensions to transform")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "omit the summary line")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "follow symbolic links to directories")
	cmd.Flags().DurationVar(&flags.debounce, "debounce", runner.DefaultDebounce, "delay before a watch re-run")
	cmd.Flags().StringVar(&flags.stdinFilename, "stdin-filename", "stdin.ts",
		"name used to pick the dialect of standard input")
}

func runStrip(cmd *cobra.Command, args []string, flagCfg *config.Config, flags *stripFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.Default()
	ctx = logging.WithLogger(ctx, logger)

	format, err := config.ParseFormat(flags.format)
	if err != nil {
		return usageError(err)
	}
	flagCfg.Format = format
	if format == config.FormatDiff {
		flagCfg.DryRun = true
	}
	if cmd.Flags().Changed("ignore") {
		flagCfg.Ignore = flags.ignore
	}
	if cmd.Flags().Changed("ext") {
		flagCfg.Extensions = flags.extensions
	}
	flagCfg.Backups.Enabled = flags.backups

	readStdin := len(args) == 1 && args[0] == stdinPath
	if len(args) == 0 && isPiped(cmd.InOrStdin()) {
		readStdin = true
	}
	if readStdin && flagCfg.Watch {
		return usageError(errors.New("--watch cannot read standard input"))
	}
	if flagCfg.Stdout && !readStdin && len(args) != 1 {
		return usageError(errors.New("--stdout needs exactly one input file"))
	}

	workDir, err := workingDir(cmd)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(ctx, cmd, workDir, flagCfg)
	if err != nil {
		return err
	}

	strip, err := runner.New(runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		FollowSymlinks: flags.followSymlinks,
		Config:         cfg,
	})
	if err != nil {
		return err
	}

	colorMode, _ := cmd.Flags().GetString("color")
	repOpts := reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      cfg.Format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: !flags.quiet,
		Check:       cfg.Check,
		Compact:     flags.compact,
		WorkingDir:  workDir,
	}

	switch {
	case readStdin:
		return stripStdin(ctx, cmd, strip, flags.stdinFilename, repOpts)
	case cfg.Stdout:
		return stripToStdout(ctx, cmd, strip, args[0], repOpts)
	case cfg.Watch:
		return watch(ctx, strip, flags.debounce, repOpts)
	}

	logger.Debug("starting strip run",
		logging.FieldPaths, args,
		logging.FieldWorkingDir, workDir,
		logging.FieldOutDir, cfg.OutDir,
		logging.FieldCheck, cfg.Check,
		logging.FieldDryRun, cfg.DryRun,
		logging.FieldJobs, cfg.Jobs,
	)

	result, err := strip.Run(ctx)
	if err != nil {
		return fmt.Errorf("strip run failed: %w", err)
	}

	return report(ctx, repOpts, result)
}

// workingDir returns the --chdir directory, or the process directory.
func workingDir(cmd *cobra.Command) (string, error) {
	dir, err := cmd.Flags().GetString("chdir")
	if err != nil || dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", &ExitError{Code: ExitIOError, Err: fmt.Errorf("working directory: %w", err)}
	}
	if !info.IsDir() {
		return "", usageError(fmt.Errorf("working directory %s is not a directory", dir))
	}
	return abs, nil
}

// loadConfig resolves the configuration with the CLI flags on top.
func loadConfig(ctx context.Context, cmd *cobra.Command, workDir string, flagCfg *config.Config) (*config.Config, error) {
	logger := logging.FromContext(ctx)

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("get config flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    flagCfg,
	})
	if err != nil {
		return nil, &ExitError{Code: ExitConfigError, Err: fmt.Errorf("load configuration: %w", err)}
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}
	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration", logging.FieldFiles, loadResult.LoadedFrom)
	}

	return loadResult.Config, nil
}

// report writes the result with the configured reporter and maps it to an
// exit status.
func report(ctx context.Context, opts reporter.Options, result *runner.Result) error {
	rep, err := reporter.New(opts)
	if err != nil {
		return usageError(err)
	}
	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	switch code := ExitCodeFromResult(result, opts.Check); code {
	case ExitSuccess:
		return nil
	case ExitStale:
		return &ExitError{Code: code, Err: ErrStaleOutputs}
	default:
		return &ExitError{Code: code, Err: ErrStripFailed}
	}
}

// stripStdin transforms standard input to standard output. Findings go to
// standard error.
func stripStdin(ctx context.Context, cmd *cobra.Command, strip *runner.Runner, name string,
	opts reporter.Options,
) error {
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return &ExitError{Code: ExitIOError, Err: fmt.Errorf("read standard input: %w", err)}
	}

	fr, err := strip.Processor.ProcessContent(ctx, name, content)
	return writeSingle(ctx, cmd, name, fr, err, opts)
}

// stripToStdout transforms one file to standard output.
func stripToStdout(ctx context.Context, cmd *cobra.Command, strip *runner.Runner, path string,
	opts reporter.Options,
) error {
	if !filepath.IsAbs(path) {
		path = filepath.Join(strip.Options().WorkingDir, path)
	}
	fr, err := strip.Processor.ProcessFile(ctx, path)
	return writeSingle(ctx, cmd, path, fr, err, opts)
}

func writeSingle(ctx context.Context, cmd *cobra.Command, name string, fr *runner.FileResult, procErr error,
	opts reporter.Options,
) error {
	result := &runner.Result{}
	outcome := runner.FileOutcome{Path: name, Result: fr, Error: procErr}
	result.Files = append(result.Files, outcome)
	result.Stats.FilesDiscovered = 1
	if procErr != nil {
		result.Stats.FilesErrored = 1
	} else {
		result.Stats.FilesProcessed = 1
		result.Stats.Diagnostics = len(fr.Diagnostics)
		if _, err := cmd.OutOrStdout().Write(fr.Output); err != nil {
			return &ExitError{Code: ExitIOError, Err: fmt.Errorf("write standard output: %w", err)}
		}
	}

	opts.Writer = cmd.ErrOrStderr()
	opts.Format = config.FormatText
	opts.ShowSummary = false
	return report(ctx, opts, result)
}

// watch re-runs the strip on every change until ctx is cancelled.
func watch(ctx context.Context, strip *runner.Runner, debounce time.Duration, opts reporter.Options) error {
	logger := logging.NewInteractive()
	logger.Info("watching for changes", logging.FieldPaths, strip.Options().Paths)

	err := strip.Watch(ctx, debounce, func(result *runner.Result, err error) {
		if err != nil {
			logger.Error("run failed", logging.FieldError, err)
			return
		}
		if reportErr := report(ctx, opts, result); reportErr != nil && !IsSilent(reportErr) {
			logger.Error("report failed", logging.FieldError, reportErr)
		}
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// isPiped reports whether r carries piped input. Terminals and character
// devices such as /dev/null do not; readers that are not files do.
func isPiped(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return true
	}
	if term.IsTerminal(int(f.Fd())) {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}
