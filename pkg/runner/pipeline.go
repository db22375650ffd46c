package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/yaklabco/tsblank/internal/logging"
	"github.com/yaklabco/tsblank/pkg/config"
	"github.com/yaklabco/tsblank/pkg/edit"
	"github.com/yaklabco/tsblank/pkg/fsutil"
	"github.com/yaklabco/tsblank/pkg/langdetect"
	"github.com/yaklabco/tsblank/pkg/mdcode"
	"github.com/yaklabco/tsblank/pkg/parser/treesitter"
	"github.com/yaklabco/tsblank/pkg/transform"
)

// Pipeline error categories.
var (
	ErrFileNotFound     = errors.New("file not found")
	ErrPermissionDenied = errors.New("permission denied")
	ErrTransformFailure = errors.New("transform failure")
	ErrWriteFailure     = errors.New("write failure")
)

// FileResult is the result of processing one input.
type FileResult struct {
	// Path is the input file.
	Path string

	// OutputPath is where the output goes.
	OutputPath string

	Language langdetect.Language
	Markdown bool

	// Input is the source content.
	Input []byte

	// Output is the generated content.
	Output []byte

	// Diagnostics are the non-fatal transform findings, positioned in the
	// input.
	Diagnostics []transform.Diagnostic

	// Fences is the fence report of a Markdown input.
	Fences *mdcode.Report

	// Changed is true when OutputPath is missing or holds other content.
	Changed bool

	// Diff is the change to OutputPath, set in dry-run mode.
	Diff *edit.Diff

	// Skipped is true if the input changed while it was processed.
	Skipped    bool
	SkipReason string

	BackupCreated bool
	Written       bool
}

// Summary returns a short description of what happened to the file.
func (fr *FileResult) Summary() string {
	switch {
	case fr.Skipped:
		return "skipped: " + fr.SkipReason
	case fr.Written && fr.BackupCreated:
		return "written (backup created)"
	case fr.Written:
		return "written"
	case fr.Changed:
		return "stale"
	default:
		return "up to date"
	}
}

// Processor strips one file at a time. It is safe for concurrent use.
type Processor struct {
	cfg      *config.Config
	root     string
	ts       *transform.Transformer
	tsx      *transform.Transformer
	markdown *mdcode.Rewriter
}

// NewProcessor creates a Processor for inputs under root.
func NewProcessor(cfg *config.Config, root string) *Processor {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	p := &Processor{
		cfg:  cfg,
		root: root,
		ts:   transform.New(treesitter.New(treesitter.DialectTS), transform.WithStrict(cfg.Strict)),
		tsx:  transform.New(treesitter.New(treesitter.DialectTSX), transform.WithStrict(cfg.Strict)),
	}
	p.markdown = mdcode.NewRewriter(p.Strip, mdcode.Options{
		Flavor:         mdcode.FlavorGFM,
		DetectUntagged: cfg.DetectUntaggedFences,
	})
	return p
}

// Strip transforms src with the grammar for lang.
func (p *Processor) Strip(ctx context.Context, lang langdetect.Language, src string) (*transform.Result, error) {
	if lang == langdetect.TSX {
		return p.tsx.Transform(ctx, src)
	}
	return p.ts.Transform(ctx, src)
}

// ProcessContent transforms in-memory content. name selects the language
// and whether the content is Markdown; unknown names are TypeScript.
func (p *Processor) ProcessContent(ctx context.Context, name string, content []byte) (*FileResult, error) {
	result := &FileResult{Path: name, Language: langdetect.FromPath(name), Input: content}

	if isMarkdown(name) {
		result.Markdown = true
		out, report, err := p.markdown.Rewrite(ctx, content)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTransformFailure, err)
		}
		result.Output = out
		result.Fences = report
		result.Diagnostics = report.Diagnostics
		return result, nil
	}

	if !result.Language.IsTypeScript() {
		result.Language = langdetect.TypeScript
	}
	res, err := p.Strip(ctx, result.Language, string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransformFailure, err)
	}
	result.Output = []byte(res.Output)
	result.Diagnostics = res.Diagnostics
	return result, nil
}

// ProcessFile runs the file pipeline:
//  1. Read and hash the input.
//  2. Transform it.
//  3. Compare with the existing output (check and dry-run stop here).
//  4. Check the input was not modified concurrently.
//  5. Back up the output it replaces (if enabled).
//  6. Write the output atomically.
func (p *Processor) ProcessFile(ctx context.Context, path string) (*FileResult, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, categorizeError(err)
	}

	result, err := p.ProcessContent(ctx, path, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.logFindings(ctx, result)

	result.OutputPath, err = OutputPath(p.root, p.cfg.OutDir, path)
	if err != nil {
		return nil, err
	}

	same, err := fsutil.ContentEqual(result.OutputPath, result.Output)
	if err != nil {
		return nil, categorizeError(err)
	}
	result.Changed = !same

	if p.cfg.DryRun && result.Changed {
		existing, err := os.ReadFile(result.OutputPath)
		if err != nil && !os.IsNotExist(err) {
			return nil, categorizeError(err)
		}
		result.Diff = edit.GenerateDiff(result.OutputPath, existing, result.Output)
	}
	if !result.Changed || p.cfg.Check || p.cfg.DryRun || p.cfg.Stdout {
		return result, nil
	}

	modified, err := fsutil.CheckModified(ctx, info)
	if err != nil {
		return nil, fmt.Errorf("check modified: %w", err)
	}
	if modified {
		result.Skipped = true
		result.SkipReason = "file modified during processing"
		return result, nil
	}

	if p.cfg.BackupsEnabled() {
		created, err := fsutil.CreateBackup(ctx, result.OutputPath, fsutil.BackupConfig{
			Enabled: true,
			Mode:    fsutil.BackupMode(p.cfg.Backups.Mode),
		})
		if err != nil {
			return nil, fmt.Errorf("create backup: %w", err)
		}
		result.BackupCreated = created
	}

	if err := fsutil.WriteAtomic(ctx, result.OutputPath, result.Output, info.Mode); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteFailure, err)
	}
	result.Written = true

	return result, nil
}

func (p *Processor) logFindings(ctx context.Context, result *FileResult) {
	logger := logging.FromContext(ctx)
	for _, diag := range result.Diagnostics {
		logger.Debug(diag.Message,
			logging.FieldPath, result.Path,
			logging.FieldLine, diag.Pos.Line,
			logging.FieldColumn, diag.Pos.Column,
			logging.FieldCode, diag.Code,
			logging.FieldNodeType, diag.NodeType,
		)
	}
	if result.Fences == nil {
		return
	}
	for _, skipped := range result.Fences.Skipped {
		logger.Debug("fence left unchanged",
			logging.FieldPath, result.Path,
			logging.FieldLine, skipped.Pos.Line,
			logging.FieldError, skipped.Reason,
		)
	}
}

func isMarkdown(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range MarkdownExtensions() {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// categorizeError wraps an error with its pipeline category.
func categorizeError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fsutil.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	}
	if errors.Is(err, fsutil.ErrPermissionDenied) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrPermissionDenied, err)
	}
	return err
}

// IsIOError reports whether err is a read or write failure rather than a
// transform failure.
func IsIOError(err error) bool {
	return errors.Is(err, ErrFileNotFound) ||
		errors.Is(err, ErrPermissionDenied) ||
		errors.Is(err, ErrWriteFailure)
}
