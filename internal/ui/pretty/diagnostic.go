package pretty

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/yaklabco/tsblank/pkg/transform"
)

// FormatDiagnostic formats a transform diagnostic for terminal output. A
// non-empty sourceLine is printed below it with a caret under the column.
func (s *Styles) FormatDiagnostic(path string, diag transform.Diagnostic, sourceLine string) string {
	var builder strings.Builder

	location := s.FilePath.Render(path) + s.Location.Render(fmt.Sprintf(":%d:%d", diag.Pos.Line, diag.Pos.Column))

	builder.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
		location,
		s.FormatSeverity(diag.Severity),
		s.Message.Render(diag.Message),
		s.Code.Render("("+diag.Code+")"),
	))

	if sourceLine != "" {
		builder.WriteString(s.FormatSourceContext(sourceLine, diag.Pos.Column))
	}

	return builder.String()
}

// FormatError formats a file that failed to process.
func (s *Styles) FormatError(path string, err error) string {
	return fmt.Sprintf("%s: %s\n", s.FilePath.Render(path), s.Error.Render("error: "+err.Error()))
}

// FormatSeverity returns a styled severity string.
func (s *Styles) FormatSeverity(sev transform.Severity) string {
	switch sev {
	case transform.SeverityWarning:
		return s.Warning.Render(sev.String())
	default:
		return s.Info.Render(sev.String())
	}
}

// FormatSourceContext formats the source line with a caret marker. column
// is a 1-based byte column.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		builder.WriteString(indent + CaretPadding(line, column) + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// CaretPadding returns the whitespace that puts a caret under the 1-based
// byte column of line. Tabs are copied and other characters are replaced
// by spaces of their display width, so wide characters line up.
func CaretPadding(line string, column int) string {
	prefix := line
	if column-1 < len(line) {
		prefix = line[:column-1]
	}

	var builder strings.Builder
	state := -1
	for len(prefix) > 0 {
		var cluster string
		var width int
		cluster, prefix, width, state = uniseg.FirstGraphemeClusterInString(prefix, state)
		if cluster == "\t" {
			builder.WriteByte('\t')
			continue
		}
		builder.WriteString(strings.Repeat(" ", width))
	}
	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, count int) string {
	header := s.FilePath.Render(path)
	if count > 0 {
		word := "diagnostics"
		if count == 1 {
			word = "diagnostic"
		}
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", count, word))
	}
	return header
}
