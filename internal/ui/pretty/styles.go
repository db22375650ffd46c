// Package pretty renders transform diagnostics, dry-run diffs and run
// summaries for a terminal.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// ANSI 256 palette indexes.
const (
	colorGray   = "8"
	colorSilver = "7"
	colorRed    = "9"
	colorGreen  = "10"
	colorYellow = "11"
	colorBlue   = "12"
	colorCyan   = "14"
)

// Styles holds one renderer per output element.
type Styles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Diagnostic line: path, position, message and code, then the source
	// line with a caret. SourceLine keeps tabs so carets line up.
	FilePath   lipgloss.Style
	Location   lipgloss.Style
	Code       lipgloss.Style
	Message    lipgloss.Style
	SourceLine lipgloss.Style
	Caret      lipgloss.Style

	// Dry-run diff of a source file against its erased output.
	DiffHeader  lipgloss.Style
	DiffHunk    lipgloss.Style
	DiffAdd     lipgloss.Style
	DiffRemove  lipgloss.Style
	DiffContext lipgloss.Style

	// End-of-run counts of written, unchanged and failed files.
	SummaryTitle lipgloss.Style
	SummaryValue lipgloss.Style
	Success      lipgloss.Style
	Failure      lipgloss.Style

	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStyles returns colored styles, or plain ones when colorEnabled is
// false. Plain styles render text unchanged.
func NewStyles(colorEnabled bool) *Styles {
	paint := func(color string, bold bool) lipgloss.Style {
		style := lipgloss.NewStyle()
		if !colorEnabled {
			return style
		}
		if color != "" {
			style = style.Foreground(lipgloss.Color(color))
		}
		return style.Bold(bold)
	}

	return &Styles{
		Error:   paint(colorRed, true),
		Warning: paint(colorYellow, true),
		Info:    paint(colorBlue, true),

		FilePath:   paint("", true),
		Location:   paint(colorGray, false),
		Code:       paint(colorGray, false),
		Message:    paint("", false),
		SourceLine: paint(colorSilver, false).TabWidth(lipgloss.NoTabConversion),
		Caret:      paint(colorYellow, false),

		DiffHeader:  paint("", true),
		DiffHunk:    paint(colorCyan, false),
		DiffAdd:     paint(colorGreen, false),
		DiffRemove:  paint(colorRed, false),
		DiffContext: paint(colorGray, false),

		SummaryTitle: paint("", true),
		SummaryValue: paint("", false),
		Success:      paint(colorGreen, true),
		Failure:      paint(colorRed, true),

		Dim:  paint(colorGray, false),
		Bold: paint("", true),
	}
}

// IsColorEnabled resolves a --color mode for writer. "always" and "never"
// are absolute; anything else means auto, which colors only a terminal and
// honors NO_COLOR.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
