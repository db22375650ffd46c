package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/tsblank/pkg/runner"
)

const (
	summaryDividerWidth = 40
	wordFile            = "file"
	wordFiles           = "files"
)

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line.
// Example: "3 files processed, 2 written, 1 failed, 4 diagnostics".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, check bool) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No input files found") + "\n"
	}

	parts := []string{fmt.Sprintf("%d %s processed", stats.FilesProcessed,
		plural(stats.FilesProcessed, wordFile, wordFiles))}

	switch {
	case check && stats.FilesChanged > 0:
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d stale", stats.FilesChanged)))
	case check:
		parts = append(parts, s.Success.Render("all outputs up to date"))
	case stats.FilesWritten > 0:
		parts = append(parts, s.Success.Render(fmt.Sprintf("%d written", stats.FilesWritten)))
	default:
		parts = append(parts, s.Dim.Render("nothing to write"))
	}

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Error.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}
	if stats.FilesSkipped > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d skipped", stats.FilesSkipped)))
	}
	if stats.Diagnostics > 0 {
		parts = append(parts, s.Warning.Render(fmt.Sprintf("%d %s", stats.Diagnostics,
			plural(stats.Diagnostics, "diagnostic", "diagnostics"))))
	}
	if stats.FencesRewritten > 0 {
		parts = append(parts, fmt.Sprintf("%d %s rewritten", stats.FencesRewritten,
			plural(stats.FencesRewritten, "fence", "fences")))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats, check bool) string {
	var builder strings.Builder

	row := func(label string, value int, style func(...string) string) {
		builder.WriteString(fmt.Sprintf("  %-20s %s\n", label+":", style(strconv.Itoa(value))))
	}

	builder.WriteString("\n")
	builder.WriteString(s.SummaryTitle.Render("Summary"))
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat("-", summaryDividerWidth))
	builder.WriteString("\n")

	row("Files discovered", stats.FilesDiscovered, s.SummaryValue.Render)
	row("Files processed", stats.FilesProcessed, s.SummaryValue.Render)
	if check {
		row("Stale outputs", stats.FilesChanged, s.SummaryValue.Render)
	} else {
		row("Files written", stats.FilesWritten, s.Success.Render)
	}
	if stats.FilesSkipped > 0 {
		row("Files skipped", stats.FilesSkipped, s.Warning.Render)
	}
	if stats.FilesErrored > 0 {
		row("Files failed", stats.FilesErrored, s.Error.Render)
	}
	if stats.FencesRewritten > 0 || stats.FencesSkipped > 0 {
		row("Fences rewritten", stats.FencesRewritten, s.SummaryValue.Render)
		row("Fences skipped", stats.FencesSkipped, s.SummaryValue.Render)
	}
	row("Diagnostics", stats.Diagnostics, s.SummaryValue.Render)

	builder.WriteString("\n")

	switch {
	case stats.FilesErrored > 0:
		builder.WriteString(s.Failure.Render("Strip failed"))
	case check && stats.FilesChanged > 0:
		builder.WriteString(s.Failure.Render("Outputs are stale"))
	case stats.Diagnostics > 0:
		builder.WriteString(s.Warning.Render("Strip completed with warnings"))
	default:
		builder.WriteString(s.Success.Render("Strip completed"))
	}
	builder.WriteString("\n")

	return builder.String()
}
