package config

import (
	"fmt"
	"strings"
)

// OutputFormat specifies the report format.
type OutputFormat string

// Report formats.
const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatDiff    OutputFormat = "diff"
	FormatSummary OutputFormat = "summary"
)

// Formats returns every supported format.
func Formats() []OutputFormat {
	return []OutputFormat{FormatText, FormatJSON, FormatDiff, FormatSummary}
}

// IsValid reports whether f is a supported format.
func (f OutputFormat) IsValid() bool {
	for _, known := range Formats() {
		if f == known {
			return true
		}
	}
	return false
}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(name string) (OutputFormat, error) {
	f := OutputFormat(strings.ToLower(strings.TrimSpace(name)))
	if f == "" {
		return FormatText, nil
	}
	if !f.IsValid() {
		return "", fmt.Errorf("unknown format %q (want text, json, diff or summary)", name)
	}
	return f, nil
}
