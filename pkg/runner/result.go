package runner

// FileOutcome is the outcome of one input.
type FileOutcome struct {
	// Path is the input file.
	Path string

	// Result is nil if the file could not be processed.
	Result *FileResult

	// Error is set if the file could not be processed.
	Error error
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int
	FilesProcessed  int

	// FilesChanged counts outputs that were missing or stale.
	FilesChanged int

	// FilesWritten counts outputs written to disk.
	FilesWritten int

	// FilesSkipped counts inputs modified during processing.
	FilesSkipped int

	// FilesErrored counts inputs that failed to read, transform or write.
	FilesErrored int

	Diagnostics     int
	FencesRewritten int
	FencesSkipped   int
}

// Result is the overall result of a run.
type Result struct {
	// Files holds one outcome per discovered input, ordered by path.
	Files []FileOutcome

	Stats Stats
}

// HasFailures reports whether any file failed.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// HasStale reports whether any output was missing or out of date.
func (r *Result) HasStale() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesChanged > 0
}

// Errors returns the per-file errors in path order.
func (r *Result) Errors() []error {
	if r == nil {
		return nil
	}
	var errs []error
	for _, outcome := range r.Files {
		if outcome.Error != nil {
			errs = append(errs, outcome.Error)
		}
	}
	return errs
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}
	if outcome.Result == nil {
		return
	}

	fr := outcome.Result
	r.Stats.FilesProcessed++
	if fr.Changed {
		r.Stats.FilesChanged++
	}
	if fr.Written {
		r.Stats.FilesWritten++
	}
	if fr.Skipped {
		r.Stats.FilesSkipped++
	}
	r.Stats.Diagnostics += len(fr.Diagnostics)
	if fr.Fences != nil {
		r.Stats.FencesRewritten += fr.Fences.Rewritten
		r.Stats.FencesSkipped += len(fr.Fences.Skipped)
	}
}
