package reporter

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yaklabco/tsblank/internal/ui/pretty"
	"github.com/yaklabco/tsblank/pkg/runner"
)

// Table layout for summary output.
const (
	tableWidth        = 80
	fileColWidth      = 50
	statusColWidth    = 12
	numColWidth       = 12
	maxFilePathLength = 48
)

// padRight pads a string to the given width with spaces on the right.
// This must be called BEFORE applying ANSI styles.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// padLeft pads a string to the given width with spaces on the left.
// This must be called BEFORE applying ANSI styles.
func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

// SummaryReporter writes a table of the files that need attention and the
// run statistics.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	out    io.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		out:    opts.Writer,
	}
}

// Report implements Reporter. It returns the number of table rows.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (int, error) {
	if result == nil {
		result = &runner.Result{}
	}

	rows := r.rows(result)
	if len(rows) > 0 {
		r.renderTable(rows)
	}
	fmt.Fprint(r.out, r.styles.FormatSummary(result.Stats, r.opts.Check))

	return len(rows), nil
}

type summaryRow struct {
	path        string
	status      string
	diagnostics int
	failed      bool
}

// rows lists the files that failed, changed or have diagnostics.
func (r *SummaryReporter) rows(result *runner.Result) []summaryRow {
	var rows []summaryRow
	for _, file := range result.Files {
		row := summaryRow{path: displayPath(r.opts.WorkingDir, file.Path)}
		switch {
		case file.Error != nil:
			row.status = "failed"
			row.failed = true
		case file.Result == nil:
			continue
		default:
			row.status = file.Result.Summary()
			row.diagnostics = len(file.Result.Diagnostics)
			if !file.Result.Changed && row.diagnostics == 0 {
				continue
			}
		}
		rows = append(rows, row)
	}
	return rows
}

func (r *SummaryReporter) renderTable(rows []summaryRow) {
	separator := r.styles.Dim.Render(strings.Repeat("─", tableWidth))

	fmt.Fprintln(r.out, r.styles.Bold.Render("Files"))
	fmt.Fprintln(r.out, separator)
	fmt.Fprintf(r.out, "%s %s %s\n",
		r.styles.Bold.Render(padRight("File", fileColWidth)),
		r.styles.Bold.Render(padRight("Status", statusColWidth)),
		r.styles.Bold.Render(padLeft("Diagnostics", numColWidth)),
	)
	fmt.Fprintln(r.out, separator)

	for _, row := range rows {
		path := row.path
		if len(path) > maxFilePathLength {
			path = "…" + path[len(path)-(maxFilePathLength-1):]
		}

		status := padRight(row.status, statusColWidth)
		if row.failed {
			status = r.styles.Error.Render(status)
		}

		fmt.Fprintf(r.out, "%s %s %s\n",
			padRight(path, fileColWidth),
			status,
			padLeft(strconv.Itoa(row.diagnostics), numColWidth),
		)
	}
}
