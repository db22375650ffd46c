package cli

import (
	"errors"
	"io/fs"
	"strings"

	"github.com/yaklabco/tsblank/internal/configloader"
	"github.com/yaklabco/tsblank/pkg/runner"
)

// Exit codes for tsblank.
const (
	// ExitSuccess indicates every input was stripped (or is up to date).
	ExitSuccess = 0

	// ExitTransformFailed indicates at least one input failed to transform.
	ExitTransformFailed = 1

	// ExitStale indicates --check found missing or out-of-date outputs.
	ExitStale = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

var (
	// ErrStripFailed is returned when at least one input failed.
	ErrStripFailed = errors.New("strip failed")

	// ErrStaleOutputs is returned when --check finds stale outputs.
	ErrStaleOutputs = errors.New("outputs are stale")
)

// ExitError carries the exit code a command failure maps to.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) error {
	return &ExitError{Code: ExitInvalidUsage, Err: err}
}

// ExitCodeFromResult determines the exit code of a finished run. Failures
// take precedence over stale outputs.
func ExitCodeFromResult(result *runner.Result, check bool) int {
	if result == nil {
		return ExitSuccess
	}

	if result.HasFailures() {
		for _, err := range result.Errors() {
			if runner.IsIOError(err) {
				return ExitIOError
			}
		}
		return ExitTransformFailed
	}

	if check && result.HasStale() {
		return ExitStale
	}

	return ExitSuccess
}

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Cobra reports unknown subcommands with a plain error.
	if strings.HasPrefix(err.Error(), "unknown command") {
		return ExitInvalidUsage
	}

	var validationErr *configloader.ValidationError
	if errors.As(err, &validationErr) {
		return ExitConfigError
	}

	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) || runner.IsIOError(err) {
		return ExitIOError
	}

	return ExitInternalError
}

// IsSilent reports whether err only signals an exit code and was already
// reported.
func IsSilent(err error) bool {
	return errors.Is(err, ErrStripFailed) || errors.Is(err, ErrStaleOutputs)
}
