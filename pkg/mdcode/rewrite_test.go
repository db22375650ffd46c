package mdcode_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tsblank/pkg/langdetect"
	"github.com/yaklabco/tsblank/pkg/mdcode"
	"github.com/yaklabco/tsblank/pkg/parser/treesitter"
	"github.com/yaklabco/tsblank/pkg/transform"
)

func stripper() mdcode.TransformFunc {
	ts := transform.New(treesitter.New(treesitter.DialectTS))
	tsx := transform.New(treesitter.New(treesitter.DialectTSX))
	return func(ctx context.Context, lang langdetect.Language, src string) (*transform.Result, error) {
		if lang == langdetect.TSX {
			return tsx.Transform(ctx, src)
		}
		return ts.Transform(ctx, src)
	}
}

func TestRewrite(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		opts   mdcode.Options
		src    string
		want   string
		counts int
	}{
		{
			name:   "typescript fence",
			src:    "# Usage\n\n```ts\nlet x: number = 1;\n```\n",
			want:   "# Usage\n\n```js\nlet x         = 1;\n```\n",
			counts: 1,
		},
		{
			name:   "long tag and attributes",
			src:    "```typescript title=\"a.ts\"\nf<T>();\n```\n",
			want:   "```js title=\"a.ts\"\nf   ();\n```\n",
			counts: 1,
		},
		{
			name:   "tsx fence",
			src:    "```tsx\nconst a = <b c={d as E} />;\n```\n",
			want:   "```jsx\nconst a = <b c={d     } />;\n```\n",
			counts: 1,
		},
		{
			name: "other languages untouched",
			src:  "```go\nvar x int\n```\n\n```js\nlet y = 1;\n```\n",
			want: "```go\nvar x int\n```\n\n```js\nlet y = 1;\n```\n",
		},
		{
			name: "untagged fence left alone by default",
			src:  "```\nlet x: number = 1;\n```\n",
			want: "```\nlet x: number = 1;\n```\n",
		},
		{
			name:   "untagged fence detected",
			opts:   mdcode.Options{DetectUntagged: true},
			src:    "```\ninterface A { x: number }\nlet a: A = { x: 1 };\n```\n",
			want:   "```\n;                        \nlet a    = { x: 1 };\n```\n",
			counts: 1,
		},
		{
			name:   "tilde fence and multiple blocks",
			src:    "~~~ts\nlet a: A;\n~~~\n\ntext\n\n```ts\nlet b: B;\n```\n",
			want:   "~~~js\nlet a   ;\n~~~\n\ntext\n\n```js\nlet b   ;\n```\n",
			counts: 2,
		},
		{
			name:   "enum grows the fence",
			src:    "```ts\nenum E { A }\n```\n",
			want:   "```js\nvar  E; (function (E) { E[E[\"A\"] = 0] = \"A\" })(E || (E = {}));\n```\n",
			counts: 1,
		},
		{
			name: "empty fence",
			src:  "```ts\n```\n",
			want: "```ts\n```\n",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			rw := mdcode.NewRewriter(stripper(), testCase.opts)
			out, report, err := rw.Rewrite(context.Background(), []byte(testCase.src))
			require.NoError(t, err)

			if diff := cmp.Diff(testCase.want, string(out)); diff != "" {
				t.Errorf("Rewrite() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, testCase.counts, report.Rewritten)
			assert.Empty(t, report.Skipped)
		})
	}
}

func TestRewrite_SkipsBrokenSnippets(t *testing.T) {
	t.Parallel()

	src := "```ts\nlet = = ;\n```\n\n```ts\nlet ok: T = 1;\n```\n"
	rw := mdcode.NewRewriter(stripper(), mdcode.Options{})

	out, report, err := rw.Rewrite(context.Background(), []byte(src))
	require.NoError(t, err)

	assert.Equal(t, "```ts\nlet = = ;\n```\n\n```js\nlet ok    = 1;\n```\n", string(out))
	assert.Equal(t, 1, report.Rewritten)
	require.Len(t, report.Skipped, 1)
	assert.Equal(t, len("```ts\n"), report.Skipped[0].Offset)
	assert.Equal(t, 2, report.Skipped[0].Pos.Line)
	assert.ErrorIs(t, report.Skipped[0].Reason, transform.ErrParse)
}

func TestRewrite_SkipsBlockQuotedFences(t *testing.T) {
	t.Parallel()

	src := "> ```ts\n> let a: A;\n> let b: B;\n> ```\n"
	rw := mdcode.NewRewriter(stripper(), mdcode.Options{})

	out, report, err := rw.Rewrite(context.Background(), []byte(src))
	require.NoError(t, err)

	assert.Equal(t, src, string(out))
	require.Len(t, report.Skipped, 1)
	assert.ErrorIs(t, report.Skipped[0].Reason, mdcode.ErrNotContiguous)
}

func TestRewrite_ShiftsDiagnostics(t *testing.T) {
	t.Parallel()

	src := "intro\n\n```ts\nnamespace N { export const x = 1; }\n```\n"
	rw := mdcode.NewRewriter(stripper(), mdcode.Options{})

	_, report, err := rw.Rewrite(context.Background(), []byte(src))
	require.NoError(t, err)

	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, transform.CodeRuntimeNamespace, report.Diagnostics[0].Code)
	assert.Equal(t, len("intro\n\n```ts\n"), report.Diagnostics[0].Offset)
	assert.Equal(t, 4, report.Diagnostics[0].Pos.Line)
	assert.Equal(t, 1, report.Diagnostics[0].Pos.Column)
}

func TestRewrite_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := mdcode.NewRewriter(stripper(), mdcode.Options{}).Rewrite(ctx, []byte("```ts\nx\n```\n"))
	require.ErrorIs(t, err, context.Canceled)
}

func TestRewrite_TransformFailureAfterCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	failing := func(context.Context, langdetect.Language, string) (*transform.Result, error) {
		cancel()
		return nil, errors.New("interrupted")
	}

	_, _, err := mdcode.NewRewriter(failing, mdcode.Options{}).Rewrite(ctx, []byte("```ts\nx\n```\n"))
	require.ErrorIs(t, err, context.Canceled)
}
