package runner

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yaklabco/tsblank/internal/logging"
)

// Runner strips every input selected by its options.
type Runner struct {
	opts Options

	// Processor handles one file at a time.
	Processor *Processor
}

// New creates a Runner. The working directory is resolved once, so later
// changes to the process directory do not affect the run.
func New(opts Options) (*Runner, error) {
	workDir, err := resolveWorkDir(opts.WorkingDir)
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	opts.WorkingDir = workDir
	opts.Config = opts.config()

	return &Runner{
		opts:      opts,
		Processor: NewProcessor(opts.Config, workDir),
	}, nil
}

// Options returns the resolved options of the run.
func (r *Runner) Options() Options {
	return r.opts
}

// Run discovers the inputs and processes them on a bounded pool. Per-file
// failures are recorded in the result; the returned error is for discovery
// failures and cancellation.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	files, err := Discover(ctx, r.opts)
	if err != nil {
		return nil, err
	}

	result := &Result{Files: make([]FileOutcome, 0, len(files))}
	result.Stats.FilesDiscovered = len(files)
	if len(files) == 0 {
		return result, nil
	}

	jobs := r.opts.Config.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]FileOutcome, len(files))
	var group errgroup.Group
	group.SetLimit(jobs)
	for i, path := range files {
		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			fr, err := r.Processor.ProcessFile(ctx, path)
			outcomes[i] = FileOutcome{Path: path, Result: fr, Error: err}
			return nil
		})
	}
	_ = group.Wait()

	for _, outcome := range outcomes {
		if outcome.Path != "" {
			result.accumulate(outcome)
		}
	}

	if err := ctx.Err(); err != nil {
		return result, fmt.Errorf("run cancelled: %w", err)
	}

	logging.FromContext(ctx).Debug("run complete",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesProcessed, result.Stats.FilesProcessed,
		logging.FieldFilesChanged, result.Stats.FilesChanged,
		logging.FieldFilesFailed, result.Stats.FilesErrored,
		logging.FieldDuration, time.Since(start),
	)
	return result, nil
}
