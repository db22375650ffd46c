// Package transform erases TypeScript type syntax from source text, producing
// JavaScript with every untouched token at its original line and column.
//
// Type-only constructs are blanked with spaces, keeping line breaks. Enums,
// which have runtime semantics, are regenerated as the equivalent object
// initialization. Constructs that cannot be expressed by erasure fail with
// ErrUnsupportedSyntax.
package transform

import (
	"context"
	"fmt"

	"github.com/yaklabco/tsblank/pkg/edit"
	"github.com/yaklabco/tsblank/pkg/tsast"
)

// Parser turns source text into a syntax tree. Syntax errors are returned
// as the second result; the error result is for failures of the parser
// itself.
type Parser interface {
	Parse(ctx context.Context, src []byte) (*tsast.Node, []tsast.SyntaxError, error)
}

// Result is the output of a transform.
type Result struct {
	// Output is the erased program.
	Output string

	// Diagnostics lists non-fatal findings in traversal order.
	Diagnostics []Diagnostic
}

// Transformer erases types using a parser. It holds no per-call state and
// is safe for concurrent use when its parser is.
type Transformer struct {
	parser Parser
	strict bool
}

// Option configures a Transformer.
type Option func(*Transformer)

// WithStrict makes nodes without a rule fail the transform with
// ErrUnknownSyntax instead of producing a diagnostic.
func WithStrict(strict bool) Option {
	return func(t *Transformer) {
		t.strict = strict
	}
}

// New creates a Transformer.
func New(parser Parser, opts ...Option) *Transformer {
	t := &Transformer{parser: parser}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transform erases the type syntax in src. It fails with a *ParseError when
// src does not parse, and never returns partial output.
func (t *Transformer) Transform(ctx context.Context, src string) (*Result, error) {
	root, syntaxErrs, err := t.parser.Parse(ctx, []byte(src))
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if len(syntaxErrs) > 0 {
		return nil, &ParseError{Errors: syntaxErrs}
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("transform cancelled: %w", err)
	}

	e := newEraser(src, t.strict)
	if err := tsast.Walk(root, e); err != nil {
		return nil, err
	}

	out, err := e.buf.Finalize()
	if err != nil {
		return nil, fmt.Errorf("finalize edits: %w", err)
	}

	return &Result{Output: out, Diagnostics: e.diags}, nil
}

// eraser is the per-call state of a transform: the edit buffer, the
// diagnostics, and the parent links recorded during the walk.
type eraser struct {
	src    string
	buf    *edit.Buffer
	strict bool

	diags  []Diagnostic
	warned map[string]bool

	parents map[*tsast.Node]*tsast.Node
	lines   *tsast.Lines
}

func newEraser(src string, strict bool) *eraser {
	return &eraser{
		src:     src,
		buf:     edit.NewBuffer(src),
		strict:  strict,
		warned:  make(map[string]bool),
		parents: make(map[*tsast.Node]*tsast.Node),
	}
}

// Visit dispatches n to its rule.
func (e *eraser) Visit(n, parent *tsast.Node) ([]*tsast.Node, error) {
	e.parents[n] = parent

	if rule := ruleFor(n.Kind); rule != nil {
		next, err := rule(e, n, parent)
		if err != nil {
			return nil, err
		}
		// Same-length edits record range errors in the buffer; surface the
		// first one at the node that caused it.
		if err := e.buf.Err(); err != nil {
			return nil, fmt.Errorf("%s at %d: %w", n.Name(), n.Start, err)
		}
		return next, nil
	}
	return e.fallback(n)
}

// fallback handles nodes without a rule: it descends into every child and
// reports the node type once per transform.
func (e *eraser) fallback(n *tsast.Node) ([]*tsast.Node, error) {
	pos := e.position(n.Start)
	if e.strict {
		return nil, fmt.Errorf("%d:%d: %w: %s", pos.Line, pos.Column, ErrUnknownSyntax, n.Name())
	}
	if !e.warned[n.Name()] {
		e.warned[n.Name()] = true
		e.diags = append(e.diags, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeUnknownSyntax,
			Message:  fmt.Sprintf("no rule for %s; any type syntax inside it is kept", n.Name()),
			Offset:   n.Start,
			Pos:      pos,
			NodeType: n.Name(),
		})
	}
	return n.Children, nil
}

func (e *eraser) warn(n *tsast.Node, code, msg string) {
	e.diags = append(e.diags, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  msg,
		Offset:   n.Start,
		Pos:      e.position(n.Start),
		NodeType: n.Name(),
	})
}

func (e *eraser) unsupported(n *tsast.Node, construct string) error {
	return &UnsupportedError{Construct: construct, Pos: e.position(n.Start)}
}

func (e *eraser) position(offset int) tsast.Position {
	if e.lines == nil {
		e.lines = tsast.NewLines(e.src)
	}
	return e.lines.Position(offset)
}
