package transform

import (
	"fmt"

	"github.com/yaklabco/tsblank/pkg/tsast"
)

// Severity ranks a diagnostic.
type Severity int

// Diagnostic severities.
const (
	SeverityInfo Severity = iota
	SeverityWarning
)

// String returns "info" or "warning".
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "info"
}

// Diagnostic codes.
const (
	// CodeUnknownSyntax marks a node no rule handles; type syntax inside it
	// is left in the output.
	CodeUnknownSyntax = "unknown-syntax"

	// CodeRuntimeNamespace marks an erased namespace whose body contained
	// runtime statements.
	CodeRuntimeNamespace = "runtime-namespace"
)

// Diagnostic is a non-fatal finding from a transform.
type Diagnostic struct {
	Severity Severity
	Code     string
	Message  string

	// Offset is the byte offset of the node the diagnostic is about.
	Offset int
	Pos    tsast.Position

	// NodeType is the grammar name of the node.
	NodeType string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%d:%d: %s: %s [%s]", d.Pos.Line, d.Pos.Column, d.Severity, d.Message, d.Code)
}
