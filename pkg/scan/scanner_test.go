package scan_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/yaklabco/tsblank/pkg/scan"
)

func kinds(src string) []scan.Kind {
	var out []scan.Kind
	for tok := range scan.Scan(src) {
		out = append(out, tok.Kind)
	}
	return out
}

func TestScan_Kinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want []scan.Kind
	}{
		{
			name: "empty",
			src:  "",
			want: nil,
		},
		{
			name: "whitespace and comments only",
			src:  "  // line\n /* block */\t",
			want: nil,
		},
		{
			name: "class member prefix",
			src:  "public readonly override x",
			want: []scan.Kind{scan.KindPublic, scan.KindReadonly, scan.KindOverride, scan.KindIdent},
		},
		{
			name: "optional chaining is not a question mark",
			src:  "a?.b ? c : d",
			want: []scan.Kind{
				scan.KindIdent, scan.KindQuestionDot, scan.KindIdent,
				scan.KindQuestion, scan.KindIdent, scan.KindColon, scan.KindIdent,
			},
		},
		{
			name: "conditional with decimal",
			src:  "a?.5:1",
			want: []scan.Kind{scan.KindIdent, scan.KindQuestion, scan.KindNumber, scan.KindColon, scan.KindNumber},
		},
		{
			name: "not-equal is not a bang",
			src:  "x! != y !== z",
			want: []scan.Kind{scan.KindIdent, scan.KindBang, scan.KindOperator, scan.KindIdent, scan.KindOperator, scan.KindIdent},
		},
		{
			name: "arrow and assignment",
			src:  "(a) => b = c == d",
			want: []scan.Kind{
				scan.KindLParen, scan.KindIdent, scan.KindRParen, scan.KindArrow,
				scan.KindIdent, scan.KindAssign, scan.KindIdent, scan.KindOperator, scan.KindIdent,
			},
		},
		{
			name: "commas inside strings are hidden",
			src:  `"a, b", 'c, d'`,
			want: []scan.Kind{scan.KindString, scan.KindComma, scan.KindString},
		},
		{
			name: "template with nested substitution",
			src:  "`a ${ {b: `c${d}`}, e } f`, g",
			want: []scan.Kind{scan.KindTemplate, scan.KindComma, scan.KindIdent},
		},
		{
			name: "decorator and private name",
			src:  "@dec #secret",
			want: []scan.Kind{scan.KindAt, scan.KindIdent, scan.KindPrivateName},
		},
		{
			name: "spread",
			src:  "...rest",
			want: []scan.Kind{scan.KindEllipsis, scan.KindIdent},
		},
		{
			name: "numbers",
			src:  "0x1F 1_000 1e-3 .5",
			want: []scan.Kind{scan.KindNumber, scan.KindNumber, scan.KindNumber, scan.KindNumber},
		},
		{
			name: "nullish is an operator",
			src:  "a ?? b ??= c",
			want: []scan.Kind{scan.KindIdent, scan.KindOperator, scan.KindIdent, scan.KindOperator, scan.KindIdent},
		},
		{
			name: "comment after operator",
			src:  "a +// c\nb",
			want: []scan.Kind{scan.KindIdent, scan.KindOperator, scan.KindIdent},
		},
		{
			name: "unicode identifier and separator",
			src:  "héllo wörld",
			want: []scan.Kind{scan.KindIdent, scan.KindIdent},
		},
		{
			name: "type keywords",
			src:  "x as const satisfies T implements",
			want: []scan.Kind{
				scan.KindIdent, scan.KindAs, scan.KindConst, scan.KindSatisfies,
				scan.KindIdent, scan.KindImplements,
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := kinds(testCase.src)
			if diff := cmp.Diff(testCase.want, got); diff != "" {
				t.Errorf("Scan(%q) kinds mismatch (-want +got):\n%s", testCase.src, diff)
			}
		})
	}
}

func TestScan_Offsets(t *testing.T) {
	t.Parallel()

	src := "  foo /* x */ ?: bar"
	want := []scan.Token{
		{Kind: scan.KindIdent, Start: 2, End: 5, Text: "foo"},
		{Kind: scan.KindQuestion, Start: 14, End: 15, Text: "?"},
		{Kind: scan.KindColon, Start: 15, End: 16, Text: ":"},
		{Kind: scan.KindIdent, Start: 17, End: 20, Text: "bar"},
	}

	if diff := cmp.Diff(want, scan.All(src)); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_UnterminatedLiterals(t *testing.T) {
	t.Parallel()

	toks := scan.All("'abc\nx")
	if len(toks) != 2 {
		t.Fatalf("got %d tokens, want 2: %+v", len(toks), toks)
	}
	if toks[0].Kind != scan.KindString || toks[0].Text != "'abc" {
		t.Errorf("first token = %+v, want unterminated string ending at newline", toks[0])
	}

	toks = scan.All("/* never closed")
	if len(toks) != 0 {
		t.Errorf("unterminated block comment produced tokens: %+v", toks)
	}
}

func TestScan_StopsEarly(t *testing.T) {
	t.Parallel()

	count := 0
	for range scan.Scan("a b c d e") {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestFirstLast(t *testing.T) {
	t.Parallel()

	src := " ) : Promise<T> "

	first, ok := scan.First(src)
	if !ok || first.Kind != scan.KindRParen || first.Start != 1 {
		t.Errorf("First() = %+v, %v", first, ok)
	}

	last, ok := scan.Last(src)
	if !ok || last.Text != ">" {
		t.Errorf("Last() = %+v, %v", last, ok)
	}

	if _, ok := scan.First("  // nothing"); ok {
		t.Error("First() on comment-only fragment reported a token")
	}
	if _, ok := scan.Last(""); ok {
		t.Error("Last() on empty fragment reported a token")
	}

	comma, ok := scan.FirstOf("a(b, c), d", scan.KindComma, scan.KindSemicolon)
	if !ok || comma.Start != 3 {
		t.Errorf("FirstOf() = %+v, %v", comma, ok)
	}
}

func TestTokenShift(t *testing.T) {
	t.Parallel()

	tok := scan.Token{Kind: scan.KindComma, Start: 3, End: 4, Text: ","}.Shift(10)
	if tok.Start != 13 || tok.End != 14 || tok.Len() != 1 {
		t.Errorf("Shift() = %+v", tok)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	if got := scan.KindQuestionDot.String(); got != "?." {
		t.Errorf("KindQuestionDot.String() = %q", got)
	}
	if !scan.KindSatisfies.IsKeyword() || scan.KindIdent.IsKeyword() {
		t.Error("IsKeyword() misclassified")
	}
	if !scan.KindProtected.IsAccessibility() || scan.KindReadonly.IsAccessibility() {
		t.Error("IsAccessibility() misclassified")
	}
	if scan.LookupIdent("implements") != scan.KindImplements || scan.LookupIdent("foo") != scan.KindIdent {
		t.Error("LookupIdent() misclassified")
	}
}

func FuzzScan(f *testing.F) {
	f.Add("class A implements B, C { private x?: number = 1; }")
	f.Add("`${`${a}`}`")
	f.Add("a /* b")
	f.Add("'\\")
	f.Add("\xff\xfe#")

	f.Fuzz(func(t *testing.T, src string) {
		prevEnd := 0
		for tok := range scan.Scan(src) {
			if tok.Start < prevEnd || tok.End <= tok.Start || tok.End > len(src) {
				t.Fatalf("bad token %+v after offset %d in %q", tok, prevEnd, src)
			}
			if src[tok.Start:tok.End] != tok.Text {
				t.Fatalf("token text %q does not match source range", tok.Text)
			}
			prevEnd = tok.End
		}
	})
}
