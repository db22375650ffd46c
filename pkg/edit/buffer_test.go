package edit_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/yaklabco/tsblank/pkg/edit"
)

func TestBuffer_InPlace(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		src   string
		apply func(b *edit.Buffer)
		want  string
	}{
		{
			name:  "blank keeps whitespace",
			src:   "let x: {\n\ta: T\r\n} = 1",
			apply: func(b *edit.Buffer) { b.Blank(5, 18) },
			want:  "let x   \n\t    \r\n  = 1",
		},
		{
			name:  "blank keeps line separators",
			src:   "a\u2028b\u2029c",
			apply: func(b *edit.Buffer) { b.Blank(0, len("a\u2028b\u2029c")) },
			want:  " \u2028 \u2029 ",
		},
		{
			name:  "blank multi-byte character",
			src:   "x: 'é'",
			apply: func(b *edit.Buffer) { b.Blank(1, 7) },
			want:  "x      ",
		},
		{
			name:  "blank keep terminator",
			src:   "a\ninterface I {\n}\nb",
			apply: func(b *edit.Buffer) { b.BlankKeepTerminator(2, 17) },
			want:  "a\n;" + strings.Repeat(" ", 12) + "\n \nb",
		},
		{
			name:  "empty range is a no-op",
			src:   "abc",
			apply: func(b *edit.Buffer) { b.BlankKeepTerminator(1, 1) },
			want:  "abc",
		},
		{
			name:  "replace same length",
			src:   "f(a\n): T {",
			apply: func(b *edit.Buffer) { b.Blank(3, 8); b.ReplaceSameLength(7, 8, ")") },
			want:  "f(a\n   ) {",
		},
		{
			name:  "delete except",
			src:   "(<T>value)",
			apply: func(b *edit.Buffer) { b.DeleteExcept(1, 9, 4, 9) },
			want:  "(   value)",
		},
		{
			name:  "later blank covers earlier write",
			src:   "abc",
			apply: func(b *edit.Buffer) { b.ReplaceSameLength(1, 2, ";"); b.Blank(0, 3) },
			want:  "   ",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			buf := edit.NewBuffer(testCase.src)
			testCase.apply(buf)
			require.NoError(t, buf.Err())

			out, err := buf.Finalize()
			require.NoError(t, err)
			assert.Equal(t, testCase.want, out)
		})
	}
}

func TestBuffer_Rewrite(t *testing.T) {
	t.Parallel()

	src := "enum A { X, Y }"
	buf := edit.NewBuffer(src)
	buf.Rewrite(0, 6, "var A; (function (A)")
	buf.Rewrite(9, 10, `A[A["X"] = 0] = "X"`)
	buf.Rewrite(10, 11, ";")
	buf.Rewrite(12, 13, `A[A["Y"] = 1] = "Y"`)
	buf.Insert(len(src), ")(A || (A = {}));")

	assert.Len(t, buf.Pending(), 5)
	assert.Equal(t, src, buf.Current(0, len(src)), "rewrites must not touch the working text before Finalize")

	out, err := buf.Finalize()
	require.NoError(t, err)
	assert.Equal(t, `var A; (function (A) { A[A["X"] = 0] = "X"; A[A["Y"] = 1] = "Y" })(A || (A = {}));`, out)
}

func TestBuffer_InsertionsKeepQueueOrder(t *testing.T) {
	t.Parallel()

	buf := edit.NewBuffer("ab")
	buf.Insert(1, "1")
	buf.Insert(1, "2")
	buf.Rewrite(0, 1, "A")
	buf.Insert(2, "!")

	out, err := buf.Finalize()
	require.NoError(t, err)
	assert.Equal(t, "A12b!", out)
}

func TestBuffer_RewriteAppliesOverInPlaceEdits(t *testing.T) {
	t.Parallel()

	buf := edit.NewBuffer("x as T, y")
	buf.Blank(1, 6)
	buf.Rewrite(6, 7, ";")

	out, err := buf.Finalize()
	require.NoError(t, err)
	assert.Equal(t, "x     ; y", out)
}

func TestBuffer_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		apply   func(b *edit.Buffer)
		wantErr error
	}{
		{
			name:    "negative start",
			apply:   func(b *edit.Buffer) { b.Blank(-1, 2) },
			wantErr: edit.ErrInvalidRange,
		},
		{
			name:    "end past source",
			apply:   func(b *edit.Buffer) { b.Rewrite(2, 99, "") },
			wantErr: edit.ErrInvalidRange,
		},
		{
			name:    "end before start",
			apply:   func(b *edit.Buffer) { b.BlankKeepTerminator(4, 2) },
			wantErr: edit.ErrInvalidRange,
		},
		{
			name:    "length mismatch",
			apply:   func(b *edit.Buffer) { b.ReplaceSameLength(0, 2, ")") },
			wantErr: edit.ErrLengthMismatch,
		},
		{
			name:    "keep range not nested",
			apply:   func(b *edit.Buffer) { b.DeleteExcept(2, 4, 1, 3) },
			wantErr: edit.ErrInvalidRange,
		},
		{
			name: "overlapping rewrites",
			apply: func(b *edit.Buffer) {
				b.Rewrite(0, 4, "a")
				b.Rewrite(2, 6, "b")
			},
			wantErr: edit.ErrEditConflict,
		},
		{
			name: "duplicate rewrite of one range",
			apply: func(b *edit.Buffer) {
				b.Rewrite(1, 3, "a")
				b.Rewrite(1, 3, "b")
			},
			wantErr: edit.ErrEditConflict,
		},
		{
			name: "first error wins",
			apply: func(b *edit.Buffer) {
				b.ReplaceSameLength(0, 1, "xx")
				b.Blank(-5, 0)
			},
			wantErr: edit.ErrLengthMismatch,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			buf := edit.NewBuffer("0123456789")
			testCase.apply(buf)

			out, err := buf.Finalize()
			require.ErrorIs(t, err, testCase.wantErr)
			assert.Empty(t, out)
		})
	}
}

func TestBuffer_ConflictErrorDetails(t *testing.T) {
	t.Parallel()

	buf := edit.NewBuffer("0123456789")
	buf.Rewrite(5, 8, "x")
	buf.Rewrite(2, 6, "y")

	_, err := buf.Finalize()

	var conflict *edit.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, 2, conflict.Edit.StartOffset)
	assert.Equal(t, 5, conflict.Previous.StartOffset)
}

func TestBuffer_FinalizeOnce(t *testing.T) {
	t.Parallel()

	buf := edit.NewBuffer("abc")
	_, err := buf.Finalize()
	require.NoError(t, err)

	_, err = buf.Finalize()
	require.ErrorIs(t, err, edit.ErrFinalized)

	buf.Blank(0, 1)
	require.ErrorIs(t, buf.Err(), edit.ErrFinalized)
}

func TestBuffer_ReadHelpers(t *testing.T) {
	t.Parallel()

	buf := edit.NewBuffer("ab\ncd")
	buf.Blank(0, 1)

	assert.Equal(t, 5, buf.Len())
	assert.Equal(t, "ab\ncd", buf.Source())
	assert.Equal(t, " b", buf.Current(0, 2))
	assert.Equal(t, "ab", buf.Original(0, 2))
	assert.Equal(t, byte('c'), buf.OriginalAt(3))
	assert.Equal(t, byte(0), buf.OriginalAt(5))
	assert.Equal(t, byte(0), buf.OriginalAt(-1))
	assert.True(t, buf.HasNewline(1, 4))
	assert.False(t, buf.HasNewline(3, 5))
	assert.False(t, buf.HasNewline(4, 2))
	assert.Empty(t, buf.Original(3, 99))
	assert.Empty(t, buf.Current(-1, 1))
}

func TestBuffer_InPlaceEditsPreserveLayout(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(r *rapid.T) {
		src := rapid.StringMatching(`[a-z :;{}()\n\t]{0,64}`).Draw(r, "src")
		buf := edit.NewBuffer(src)

		ops := rapid.IntRange(0, 8).Draw(r, "ops")
		for range ops {
			start := rapid.IntRange(0, len(src)).Draw(r, "start")
			end := rapid.IntRange(start, len(src)).Draw(r, "end")
			switch rapid.IntRange(0, 2).Draw(r, "op") {
			case 0:
				buf.Blank(start, end)
			case 1:
				buf.BlankKeepTerminator(start, end)
			default:
				keepStart := rapid.IntRange(start, end).Draw(r, "keepStart")
				keepEnd := rapid.IntRange(keepStart, end).Draw(r, "keepEnd")
				buf.DeleteExcept(start, end, keepStart, keepEnd)
			}
		}

		out, err := buf.Finalize()
		if err != nil {
			r.Fatalf("Finalize() error: %v", err)
		}
		if len(out) != len(src) {
			r.Fatalf("len(out) = %d, want %d", len(out), len(src))
		}
		if strings.Count(out, "\n") != strings.Count(src, "\n") {
			r.Fatalf("line count changed")
		}
		for i := range len(src) {
			if src[i] == '\n' && out[i] != '\n' {
				r.Fatalf("newline at %d overwritten", i)
			}
		}
	})
}
