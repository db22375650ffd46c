package transform_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/yaklabco/tsblank/pkg/parser/treesitter"
	"github.com/yaklabco/tsblank/pkg/transform"
	"github.com/yaklabco/tsblank/pkg/tsast"
)

// treeParser returns a fixed tree.
type treeParser struct {
	root *tsast.Node
	errs []tsast.SyntaxError
	err  error
}

func (p treeParser) Parse(context.Context, []byte) (*tsast.Node, []tsast.SyntaxError, error) {
	return p.root, p.errs, p.err
}

func mysteryTree() *tsast.Node {
	return &tsast.Node{
		Kind: tsast.KindProgram, Start: 0, End: 5,
		Children: []*tsast.Node{
			{Kind: tsast.KindUnknown, Type: "mystery", Start: 0, End: 2},
			{Kind: tsast.KindUnknown, Type: "mystery", Start: 3, End: 5},
		},
	}
}

func TestRuleFor_CoversEveryKind(t *testing.T) {
	t.Parallel()

	for k := 1; k < tsast.NumKinds; k++ {
		kind := tsast.Kind(k)
		assert.True(t, transform.HasRule(kind), "no rule for %v", kind)
	}
	assert.False(t, transform.HasRule(tsast.KindUnknown))
}

func TestTransform_UnknownSyntax(t *testing.T) {
	t.Parallel()

	tr := transform.New(treeParser{root: mysteryTree()})
	res, err := tr.Transform(context.Background(), "x; y;")
	require.NoError(t, err)

	assert.Equal(t, "x; y;", res.Output)
	require.Len(t, res.Diagnostics, 1, "one diagnostic per node type")
	assert.Equal(t, transform.CodeUnknownSyntax, res.Diagnostics[0].Code)
	assert.Equal(t, "mystery", res.Diagnostics[0].NodeType)
	assert.Contains(t, res.Diagnostics[0].String(), "1:1: warning:")
}

func TestTransform_StrictUnknownSyntax(t *testing.T) {
	t.Parallel()

	tr := transform.New(treeParser{root: mysteryTree()}, transform.WithStrict(true))
	res, err := tr.Transform(context.Background(), "x; y;")
	require.ErrorIs(t, err, transform.ErrUnknownSyntax)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "mystery")
}

func TestTransform_ParserFailures(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := transform.New(treeParser{err: boom}).Transform(context.Background(), "")
	require.ErrorIs(t, err, boom)

	syntaxErrs := []tsast.SyntaxError{
		{Offset: 4, Line: 1, Column: 5, Message: "unexpected \"=\""},
		{Offset: 9, Line: 2, Column: 1, Message: "missing \")\""},
	}
	_, err = transform.New(treeParser{errs: syntaxErrs}).Transform(context.Background(), "")
	require.ErrorIs(t, err, transform.ErrParse)
	assert.Contains(t, err.Error(), "2 syntax errors")
	assert.Contains(t, err.Error(), "1:5: unexpected")
}

func TestQuoteJS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"A", `"A"`},
		{`a"b`, `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"line\nbreak", `"line\nbreak"`},
		{"sep\u2028", `"sep\u2028"`},
		{"\x01", `"\x01"`},
		{"caf\u00e9", "\"caf\u00e9\""},
	}

	for _, testCase := range tests {
		assert.Equal(t, testCase.want, transform.QuoteJS(testCase.in), "QuoteJS(%q)", testCase.in)
	}
}

func TestParseNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lit    string
		want   float64
		wantOK bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"1_000", 1000, true},
		{"0x1F", 31, true},
		{"0b101", 5, true},
		{"0o17", 15, true},
		{"1.5", 1.5, true},
		{"1e3", 1000, true},
		{".5", 0.5, true},
		{"10n", 0, false},
		{"abc", 0, false},
	}

	for _, testCase := range tests {
		got, ok := transform.ParseNumber(testCase.lit)
		assert.Equal(t, testCase.wantOK, ok, "ParseNumber(%q) ok", testCase.lit)
		assert.InDelta(t, testCase.want, got, 1e-9, "ParseNumber(%q)", testCase.lit)
	}
}

// layoutSnippets are statements whose erasure only blanks text.
//
//nolint:gochecknoglobals // Test corpus.
var layoutSnippets = []string{
	"let a: number = 1;\n",
	"const b = c as unknown as string;\n",
	"function f<T extends object>(x: T, y?: number): T {\n  return x!;\n}\n",
	"interface I {\n  a: string;\n  b(): void;\n}\n",
	"type U = { a: 1 } | {\n  b: 2\n};\n",
	"class K<T> implements I {\n  private p?: string;\n  readonly q!: number;\n  m(this: K<T>, a: T): void {}\n}\n",
	"import type { X } from 'x';\n",
	"import { type Y, z } from 'y';\n",
	"export type { X };\n",
	"declare global {\n  interface Window { w: number }\n}\n",
	"const g = <T,>(v: T): T => v;\n",
	"let h = fn<string>;\n",
	"abstract class L {\n  abstract m(): void;\n}\n",
	"let s = v satisfies Record<string, number>\n",
	"foo(bar as any, <any>baz);\n",
}

func TestTransform_PreservesLayout(t *testing.T) {
	t.Parallel()

	tr := transform.New(treesitter.New(treesitter.DialectTS))

	rapid.Check(t, func(r *rapid.T) {
		picks := rapid.SliceOfN(rapid.SampledFrom(layoutSnippets), 1, 6).Draw(r, "snippets")
		src := strings.Join(picks, "")

		res, err := tr.Transform(context.Background(), src)
		if err != nil {
			r.Fatalf("Transform(%q) error: %v", src, err)
		}
		out := res.Output

		if len(out) != len(src) {
			r.Fatalf("len(out) = %d, want %d", len(out), len(src))
		}
		for i := range len(src) {
			if (src[i] == '\n') != (out[i] == '\n') {
				r.Fatalf("line break moved at %d:\n%s", i, out)
			}
		}

		again, err := tr.Transform(context.Background(), out)
		if err != nil {
			r.Fatalf("Transform(output) error: %v\n%s", err, out)
		}
		if again.Output != out {
			r.Fatalf("transform is not idempotent:\n%s\n---\n%s", out, again.Output)
		}
	})
}
