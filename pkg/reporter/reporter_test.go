package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/tsblank/pkg/config"
	"github.com/yaklabco/tsblank/pkg/edit"
	"github.com/yaklabco/tsblank/pkg/langdetect"
	"github.com/yaklabco/tsblank/pkg/mdcode"
	"github.com/yaklabco/tsblank/pkg/reporter"
	"github.com/yaklabco/tsblank/pkg/runner"
	"github.com/yaklabco/tsblank/pkg/transform"
	"github.com/yaklabco/tsblank/pkg/tsast"
)

var workDir = filepath.FromSlash("/work")

func sampleResult() *runner.Result {
	nsInput := "let a = 1;\nnamespace N { export const x = 1; }\n"
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: filepath.Join(workDir, "a.ts"),
				Result: &runner.FileResult{
					Path:       filepath.Join(workDir, "a.ts"),
					OutputPath: filepath.Join(workDir, "a.js"),
					Language:   langdetect.TypeScript,
					Input:      []byte(nsInput),
					Changed:    true,
					Written:    true,
					Diagnostics: []transform.Diagnostic{{
						Severity: transform.SeverityWarning,
						Code:     transform.CodeRuntimeNamespace,
						Message:  "namespace N has runtime statements",
						Offset:   11,
						Pos:      tsast.Position{Line: 2, Column: 1},
						NodeType: "internal_module",
					}},
				},
			},
			{
				Path:  filepath.Join(workDir, "bad.ts"),
				Error: errors.New("1:5: syntax error"),
			},
			{
				Path: filepath.Join(workDir, "docs.md"),
				Result: &runner.FileResult{
					Path:       filepath.Join(workDir, "docs.md"),
					OutputPath: filepath.Join(workDir, "docs.md"),
					Markdown:   true,
					Fences: &mdcode.Report{
						Rewritten: 1,
						Skipped: []mdcode.Skipped{{
							Pos:    tsast.Position{Line: 7, Column: 1},
							Reason: mdcode.ErrNotContiguous,
						}},
					},
				},
			},
			{
				Path:   filepath.Join(workDir, "ok.ts"),
				Result: &runner.FileResult{Path: filepath.Join(workDir, "ok.ts")},
			},
		},
		Stats: runner.Stats{
			FilesDiscovered: 4,
			FilesProcessed:  3,
			FilesChanged:    1,
			FilesWritten:    1,
			FilesErrored:    1,
			Diagnostics:     1,
			FencesRewritten: 1,
			FencesSkipped:   1,
		},
	}
}

func newReporter(t *testing.T, format config.OutputFormat, buf *bytes.Buffer) reporter.Reporter {
	t.Helper()

	rep, err := reporter.New(reporter.Options{
		Writer:      buf,
		Format:      format,
		Color:       "never",
		ShowContext: true,
		ShowSummary: true,
		WorkingDir:  workDir,
	})
	require.NoError(t, err)
	return rep
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	for _, format := range config.Formats() {
		_, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: format})
		require.NoError(t, err, format)
	}

	_, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: "sarif"})
	require.Error(t, err)
}

func TestTextReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	count, err := newReporter(t, config.FormatText, &buf).Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	out := buf.String()
	assert.Contains(t, out, "a.ts (1 diagnostic)\n")
	assert.Contains(t, out, "  a.ts:2:1  warning  namespace N has runtime statements  (runtime-namespace)\n")
	assert.Contains(t, out, "        namespace N { export const x = 1; }\n        ^\n")
	assert.Contains(t, out, "bad.ts: error: 1:5: syntax error\n")
	assert.Contains(t, out, "docs.md:7:1  warning  fence left unchanged: fence content is split by container markers\n")
	assert.NotContains(t, out, "ok.ts")
	assert.True(t, strings.HasSuffix(out, "3 files processed, 1 written, 1 failed, 1 diagnostic, 1 fence rewritten\n"), out)
}

func TestTextReporter_Empty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	count, err := newReporter(t, config.FormatText, &buf).Report(context.Background(), &runner.Result{})
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Equal(t, "No input files found.\n", buf.String())
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	count, err := newReporter(t, config.FormatJSON, &buf).Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	require.Len(t, output.Files, 4)
	first := output.Files[0]
	assert.Equal(t, "a.ts", first.Path)
	assert.Equal(t, "a.js", first.Output)
	assert.Equal(t, "typescript", first.Language)
	assert.True(t, first.Written)
	require.Len(t, first.Diagnostics, 1)
	assert.Equal(t, reporter.JSONDiagnostic{
		Code: "runtime-namespace", Severity: "warning", Message: "namespace N has runtime statements",
		Line: 2, Column: 1, Offset: 11, NodeType: "internal_module",
	}, first.Diagnostics[0])

	assert.Equal(t, "1:5: syntax error", output.Files[1].Error)
	require.NotNil(t, output.Files[2].Fences)
	assert.Equal(t, 7, output.Files[2].Fences.Skipped[0].Line)
	assert.Equal(t, 1, output.Summary.FilesErrored)
	assert.Equal(t, 4, output.Summary.FilesDiscovered)
}

func TestJSONReporter_Compact(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, Compact: true})
	_, err := rep.Report(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(buf.String(), "\n"))
	assert.Contains(t, buf.String(), `"files":[]`)
}

func TestDiffReporter(t *testing.T) {
	t.Parallel()

	outPath := filepath.Join(workDir, "src", "a.js")
	result := &runner.Result{Files: []runner.FileOutcome{{
		Path: filepath.Join(workDir, "src", "a.ts"),
		Result: &runner.FileResult{
			OutputPath: outPath,
			Changed:    true,
			Diff:       edit.GenerateDiff(outPath, []byte("old();\n"), []byte("let x    = 1;\n")),
		},
	}}}

	var buf bytes.Buffer
	count, err := newReporter(t, config.FormatDiff, &buf).Report(context.Background(), result)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	src := filepath.ToSlash(filepath.Join("src", "a.js"))
	out := buf.String()
	assert.Contains(t, out, "diff --git a/"+src+" b/"+src+"\n--- a/"+src+"\n+++ b/"+src+"\n@@ -1,1 +1,1 @@\n")
	assert.Contains(t, out, "-old();\n+let x    = 1;\n")
	assert.Equal(t, 1, strings.Count(out, "--- a/"), "headers must not repeat")
	assert.Contains(t, out, "1 file changed, 1 insertion(+), 1 deletion(-)\n")
}

func TestSummaryReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	count, err := newReporter(t, config.FormatSummary, &buf).Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	out := buf.String()
	assert.Contains(t, out, "File ")
	assert.Contains(t, out, "a.ts")
	assert.Contains(t, out, "written")
	assert.Contains(t, out, "failed")
	assert.NotContains(t, out, "ok.ts")
	assert.Contains(t, out, "Strip failed\n")
}
