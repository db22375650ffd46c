package transform

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yaklabco/tsblank/pkg/tsast"
)

// Sentinel errors. Typed errors below unwrap to these for errors.Is.
var (
	// ErrParse indicates the source has syntax errors.
	ErrParse = errors.New("syntax error")

	// ErrUnsupportedEnumMember indicates an enum member key that is neither
	// an identifier nor a string literal.
	ErrUnsupportedEnumMember = errors.New("unsupported enum member")

	// ErrUnsupportedSyntax indicates a TypeScript construct with runtime
	// behavior that cannot be produced by erasing types.
	ErrUnsupportedSyntax = errors.New("unsupported syntax")

	// ErrUnknownSyntax indicates, in strict mode, a node the rule set has no
	// rule for.
	ErrUnknownSyntax = errors.New("unknown syntax")
)

// ParseError carries every syntax error reported by the parser.
type ParseError struct {
	Errors []tsast.SyntaxError
}

func (e *ParseError) Error() string {
	switch len(e.Errors) {
	case 0:
		return ErrParse.Error()
	case 1:
		return fmt.Sprintf("%s at %s", ErrParse, e.Errors[0])
	default:
		parts := make([]string, len(e.Errors))
		for i, se := range e.Errors {
			parts[i] = se.Error()
		}
		return fmt.Sprintf("%d syntax errors: %s", len(e.Errors), strings.Join(parts, "; "))
	}
}

// Is reports whether target is ErrParse.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Unwrap exposes the individual syntax errors.
func (e *ParseError) Unwrap() []error {
	errs := make([]error, len(e.Errors))
	for i, se := range e.Errors {
		errs[i] = se
	}
	return errs
}

// EnumMemberError describes an enum member whose key cannot be generated.
type EnumMemberError struct {
	Enum   string
	Member string
	Kind   string
	Pos    tsast.Position
}

func (e *EnumMemberError) Error() string {
	return fmt.Sprintf("%d:%d: unsupported enum member %s in enum %s (%s keys are not supported)",
		e.Pos.Line, e.Pos.Column, e.Member, e.Enum, e.Kind)
}

// Is reports whether target is ErrUnsupportedEnumMember.
func (e *EnumMemberError) Is(target error) bool {
	return target == ErrUnsupportedEnumMember
}

// UnsupportedError describes a construct that type erasure cannot express.
type UnsupportedError struct {
	Construct string
	Pos       tsast.Position
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%d:%d: unsupported syntax: %s", e.Pos.Line, e.Pos.Column, e.Construct)
}

// Is reports whether target is ErrUnsupportedSyntax.
func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupportedSyntax
}
