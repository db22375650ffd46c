package edit_test

import (
	"strings"
	"testing"

	"github.com/yaklabco/tsblank/pkg/edit"
)

func TestGenerateDiff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		original  string
		modified  string
		wantNil   bool
		wantHunks int
		contains  []string
	}{
		{
			name:    "empty inputs",
			wantNil: true,
		},
		{
			name:     "identical content",
			original: "let x = 1;\n",
			modified: "let x = 1;\n",
			wantNil:  true,
		},
		{
			name:      "erased annotation",
			original:  "let x: number = 1;\nfoo(x);\n",
			modified:  "let x         = 1;\nfoo(x);\n",
			wantHunks: 1,
			contains:  []string{"-let x: number = 1;", "+let x         = 1;", " foo(x);"},
		},
		{
			name:      "enum grows a line",
			original:  "enum A { X }\n",
			modified:  "var A; (function (A) { A[A[\"X\"] = 0] = \"X\" })(A || (A = {}));\n",
			wantHunks: 1,
			contains:  []string{"-enum A { X }", "+var A;"},
		},
		{
			name:      "new file",
			modified:  "export {};\n",
			wantHunks: 1,
			contains:  []string{"+export {};"},
		},
		{
			name:      "emptied file",
			original:  "type T = 1;\n",
			wantHunks: 1,
			contains:  []string{"-type T = 1;"},
		},
		{
			name:      "missing trailing newline",
			original:  "a\nb",
			modified:  "a\nc",
			wantHunks: 1,
			contains:  []string{"-b", "+c"},
		},
		{
			name:      "nearby changes share a hunk",
			original:  "a\nb\nc\nd\ne\n",
			modified:  "a\nB\nc\nD\ne\n",
			wantHunks: 1,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			diff := edit.GenerateDiff("src/a.ts", []byte(testCase.original), []byte(testCase.modified))
			if testCase.wantNil {
				if diff != nil {
					t.Fatalf("GenerateDiff() = %+v, want nil", diff)
				}
				return
			}
			if diff == nil {
				t.Fatal("GenerateDiff() = nil, want diff")
			}
			if !diff.HasChanges() {
				t.Error("HasChanges() = false")
			}
			if len(diff.Hunks) != testCase.wantHunks {
				t.Errorf("got %d hunks, want %d", len(diff.Hunks), testCase.wantHunks)
			}

			out := diff.String()
			for _, want := range testCase.contains {
				if !strings.Contains(out, want) {
					t.Errorf("diff missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestGenerateDiff_SeparateHunks(t *testing.T) {
	t.Parallel()

	lines := make([]string, 20)
	for i := range lines {
		lines[i] = "stmt" + string(rune('a'+i)) + "();"
	}
	original := strings.Join(lines, "\n") + "\n"

	lines[1] = "changed1();"
	lines[17] = "changed17();"
	modified := strings.Join(lines, "\n") + "\n"

	diff := edit.GenerateDiff("a.ts", []byte(original), []byte(modified))
	if diff == nil {
		t.Fatal("GenerateDiff() = nil")
	}
	if len(diff.Hunks) != 2 {
		t.Fatalf("got %d hunks, want 2", len(diff.Hunks))
	}

	first := diff.Hunks[0]
	if first.OriginalStart != 1 || first.OriginalCount != 5 || first.ModifiedCount != 5 {
		t.Errorf("first hunk = @@ -%d,%d +%d,%d @@, want @@ -1,5 +1,5 @@",
			first.OriginalStart, first.OriginalCount, first.ModifiedStart, first.ModifiedCount)
	}
	if diff.Additions != 2 || diff.Deletions != 2 {
		t.Errorf("Additions=%d Deletions=%d, want 2 and 2", diff.Additions, diff.Deletions)
	}
}

func TestDiff_Headers(t *testing.T) {
	t.Parallel()

	var nilDiff *edit.Diff
	if nilDiff.String() != "" || nilDiff.FullString() != "" || nilDiff.GitHeader() != "" {
		t.Error("nil diff rendered non-empty output")
	}
	if nilDiff.HasChanges() {
		t.Error("nil diff HasChanges() = true")
	}

	diff := edit.GenerateDiff("/src/a.ts", []byte("x as T;\n"), []byte("x     ;\n"))
	if diff == nil {
		t.Fatal("GenerateDiff() = nil")
	}
	if got := diff.GitHeader(); got != "diff --git a/src/a.ts b/src/a.ts" {
		t.Errorf("GitHeader() = %q", got)
	}
	if !strings.HasPrefix(diff.String(), "--- a/src/a.ts\n+++ b/src/a.ts\n@@ -1,1 +1,1 @@\n") {
		t.Errorf("String() header:\n%s", diff.String())
	}
	if !strings.HasPrefix(diff.FullString(), "diff --git ") {
		t.Errorf("FullString() missing git header:\n%s", diff.FullString())
	}
}
