package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/tsblank/pkg/runner"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path        string           `json:"path"`
	Output      string           `json:"output,omitempty"`
	Language    string           `json:"language,omitempty"`
	Changed     bool             `json:"changed"`
	Written     bool             `json:"written"`
	Skipped     string           `json:"skipped,omitempty"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Fences      *JSONFences      `json:"fences,omitempty"`
	Error       string           `json:"error,omitempty"`
}

// JSONDiagnostic represents a single diagnostic.
type JSONDiagnostic struct {
	Code     string `json:"code"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Offset   int    `json:"offset"`
	NodeType string `json:"nodeType,omitempty"`
}

// JSONFences reports the fences of a Markdown file.
type JSONFences struct {
	Rewritten int               `json:"rewritten"`
	Skipped   []JSONSkippedFence `json:"skipped,omitempty"`
}

// JSONSkippedFence is a fence left unchanged.
type JSONSkippedFence struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesProcessed  int `json:"filesProcessed"`
	FilesChanged    int `json:"filesChanged"`
	FilesWritten    int `json:"filesWritten"`
	FilesSkipped    int `json:"filesSkipped"`
	FilesErrored    int `json:"filesErrored"`
	Diagnostics     int `json:"diagnostics"`
	FencesRewritten int `json:"fencesRewritten"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.Diagnostics + output.Summary.FilesErrored, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
	}
	if result == nil {
		return output
	}

	stats := result.Stats
	output.Summary = JSONSummary{
		FilesDiscovered: stats.FilesDiscovered,
		FilesProcessed:  stats.FilesProcessed,
		FilesChanged:    stats.FilesChanged,
		FilesWritten:    stats.FilesWritten,
		FilesSkipped:    stats.FilesSkipped,
		FilesErrored:    stats.FilesErrored,
		Diagnostics:     stats.Diagnostics,
		FencesRewritten: stats.FencesRewritten,
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:        displayPath(r.opts.WorkingDir, file.Path),
			Diagnostics: make([]JSONDiagnostic, 0),
		}
		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}

		if fr := file.Result; fr != nil {
			fileResult.Output = displayPath(r.opts.WorkingDir, fr.OutputPath)
			fileResult.Language = string(fr.Language)
			fileResult.Changed = fr.Changed
			fileResult.Written = fr.Written
			fileResult.Skipped = fr.SkipReason

			for _, diag := range fr.Diagnostics {
				fileResult.Diagnostics = append(fileResult.Diagnostics, JSONDiagnostic{
					Code:     diag.Code,
					Severity: diag.Severity.String(),
					Message:  diag.Message,
					Line:     diag.Pos.Line,
					Column:   diag.Pos.Column,
					Offset:   diag.Offset,
					NodeType: diag.NodeType,
				})
			}

			if fr.Fences != nil {
				fences := &JSONFences{Rewritten: fr.Fences.Rewritten}
				for _, skipped := range fr.Fences.Skipped {
					fences.Skipped = append(fences.Skipped, JSONSkippedFence{
						Line:   skipped.Pos.Line,
						Reason: skipped.Reason.Error(),
					})
				}
				fileResult.Fences = fences
			}
		}

		output.Files = append(output.Files, fileResult)
	}

	return output
}
