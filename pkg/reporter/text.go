package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/tsblank/internal/ui/pretty"
	"github.com/yaklabco/tsblank/pkg/runner"
	"github.com/yaklabco/tsblank/pkg/tsast"
)

// TextReporter writes diagnostics grouped by file as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter. Failed files and diagnostics count as
// findings.
func (r *TextReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Files) == 0 {
		if r.opts.ShowSummary {
			fmt.Fprintln(r.bw, r.styles.Dim.Render("No input files found."))
		}
		return 0, nil
	}

	var total int
	for _, file := range result.Files {
		path := displayPath(r.opts.WorkingDir, file.Path)

		if file.Error != nil {
			fmt.Fprint(r.bw, r.styles.FormatError(path, file.Error))
			total++
			continue
		}
		if file.Result == nil {
			continue
		}

		fr := file.Result
		findings := len(fr.Diagnostics)
		if fr.Fences != nil {
			findings += len(fr.Fences.Skipped)
		}
		if findings == 0 {
			continue
		}

		fmt.Fprintln(r.bw, r.styles.FormatFileHeader(path, findings))

		var lines *tsast.Lines
		if r.opts.ShowContext {
			lines = tsast.NewLines(string(fr.Input))
		}
		for _, diag := range fr.Diagnostics {
			var sourceLine string
			if lines != nil {
				sourceLine = lines.Line(diag.Pos.Line)
			}
			fmt.Fprint(r.bw, r.styles.FormatDiagnostic(path, diag, sourceLine))
		}
		if fr.Fences != nil {
			for _, skipped := range fr.Fences.Skipped {
				fmt.Fprintf(r.bw, "  %s:%d:%d  %s  fence left unchanged: %v\n",
					r.styles.FilePath.Render(path), skipped.Pos.Line, skipped.Pos.Column,
					r.styles.Warning.Render("warning"), skipped.Reason)
			}
		}
		fmt.Fprintln(r.bw)
		total += findings
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats, r.opts.Check))
	}

	return total, nil
}
