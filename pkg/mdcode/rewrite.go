package mdcode

import (
	"context"
	"fmt"
	"strings"

	"github.com/yaklabco/tsblank/pkg/edit"
	"github.com/yaklabco/tsblank/pkg/langdetect"
	"github.com/yaklabco/tsblank/pkg/transform"
	"github.com/yaklabco/tsblank/pkg/tsast"
)

// TransformFunc strips the types from one snippet of the given language.
type TransformFunc func(ctx context.Context, lang langdetect.Language, src string) (*transform.Result, error)

// Options configures a Rewriter.
type Options struct {
	// Flavor is the Markdown flavor used to find fences.
	Flavor string

	// DetectUntagged classifies fences without an info string and rewrites
	// those detected as TypeScript.
	DetectUntagged bool
}

// Rewriter rewrites the TypeScript fences of Markdown documents.
type Rewriter struct {
	extractor *Extractor
	strip     TransformFunc
	detect    bool
}

// NewRewriter creates a Rewriter that transforms snippets with strip.
func NewRewriter(strip TransformFunc, opts Options) *Rewriter {
	return &Rewriter{
		extractor: NewExtractor(opts.Flavor),
		strip:     strip,
		detect:    opts.DetectUntagged,
	}
}

// Skipped is a TypeScript fence left unchanged.
type Skipped struct {
	// Offset is the start of the fence content.
	Offset int
	Pos    tsast.Position
	Reason error
}

// Report describes one document rewrite.
type Report struct {
	// Rewritten counts the fences converted to JavaScript.
	Rewritten int

	// Skipped lists TypeScript fences that could not be converted. A
	// snippet that fails to parse or transform is skipped, not fatal.
	Skipped []Skipped

	// Diagnostics collects the transform diagnostics of rewritten fences,
	// positioned in the document.
	Diagnostics []transform.Diagnostic
}

// Rewrite returns src with every TypeScript fence converted. The fence tag
// becomes js or jsx.
func (r *Rewriter) Rewrite(ctx context.Context, src []byte) ([]byte, *Report, error) {
	fences, err := r.extractor.Fences(ctx, src)
	if err != nil {
		return nil, nil, err
	}

	report := &Report{}
	buf := edit.NewBuffer(string(src))
	lines := tsast.NewLines(string(src))
	for _, fence := range fences {
		lang := r.language(fence, src)
		if !lang.IsTypeScript() {
			continue
		}
		if !fence.Contiguous {
			report.Skipped = append(report.Skipped, Skipped{
				Offset: fence.CodeStart,
				Pos:    lines.Position(fence.CodeStart),
				Reason: ErrNotContiguous,
			})
			continue
		}

		res, err := r.strip(ctx, lang, string(fence.Code(src)))
		if err != nil {
			if ctx.Err() != nil {
				return nil, nil, fmt.Errorf("rewrite fences: %w", ctx.Err())
			}
			report.Skipped = append(report.Skipped, Skipped{
				Offset: fence.CodeStart,
				Pos:    lines.Position(fence.CodeStart),
				Reason: err,
			})
			continue
		}

		buf.Rewrite(fence.CodeStart, fence.CodeEnd, res.Output)
		if fence.TagStart >= 0 {
			buf.Rewrite(fence.TagStart, fence.TagEnd, lang.OutputFenceTag())
		}
		for _, d := range res.Diagnostics {
			d.Offset += fence.CodeStart
			d.Pos = lines.Position(d.Offset)
			report.Diagnostics = append(report.Diagnostics, d)
		}
		report.Rewritten++
	}

	out, err := buf.Finalize()
	if err != nil {
		return nil, nil, fmt.Errorf("apply fence rewrites: %w", err)
	}
	return []byte(out), report, nil
}

func (r *Rewriter) language(fence Fence, src []byte) langdetect.Language {
	if strings.TrimSpace(fence.Info) != "" {
		return langdetect.FromFenceInfo(fence.Info)
	}
	if !r.detect {
		return langdetect.Unknown
	}
	return langdetect.Detect(fence.Code(src))
}
