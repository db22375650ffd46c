// Package mdcode rewrites TypeScript code fences inside Markdown documents
// to JavaScript. Fences are located with goldmark; everything outside the
// rewritten fences is copied byte for byte.
package mdcode

import (
	"bytes"
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// Flavors accepted by NewExtractor.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Fence is a fenced code block located in a document.
type Fence struct {
	// Info is the fence info string, trimmed. Empty for untagged fences.
	Info string

	// TagStart and TagEnd bound the first word of the info string. Both
	// are -1 for untagged fences.
	TagStart, TagEnd int

	// CodeStart and CodeEnd bound the fence content.
	CodeStart, CodeEnd int

	// Contiguous is false when the content lines are interleaved with
	// container markers (block quotes, list indentation), so the content
	// cannot be replaced as one range.
	Contiguous bool
}

// Code returns the fence content from src.
func (f Fence) Code(src []byte) []byte {
	return src[f.CodeStart:f.CodeEnd]
}

// Extractor finds fenced code blocks.
type Extractor struct {
	md goldmark.Markdown
}

// NewExtractor creates an extractor for a Markdown flavor. Unknown flavors
// use CommonMark.
func NewExtractor(flavor string) *Extractor {
	var opts []goldmark.Option
	if flavor == FlavorGFM {
		opts = append(opts, goldmark.WithExtensions(extension.GFM))
	}
	return &Extractor{md: goldmark.New(opts...)}
}

// Fences returns the fenced code blocks of src in document order. Fences
// without content are omitted.
func (e *Extractor) Fences(ctx context.Context, src []byte) ([]Fence, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("extract fences: %w", err)
	}

	doc := e.md.Parser().Parse(text.NewReader(src))

	var fences []Fence
	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		block, ok := n.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}
		if fence, ok := newFence(block, src); ok {
			fences = append(fences, fence)
		}
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk markdown: %w", err)
	}
	return fences, nil
}

func newFence(block *ast.FencedCodeBlock, src []byte) (Fence, bool) {
	lines := block.Lines()
	if lines.Len() == 0 {
		return Fence{}, false
	}

	fence := Fence{
		TagStart:   -1,
		TagEnd:     -1,
		CodeStart:  lines.At(0).Start,
		CodeEnd:    lines.At(lines.Len() - 1).Stop,
		Contiguous: true,
	}
	for i := range lines.Len() {
		seg := lines.At(i)
		if seg.Padding != 0 || (i > 0 && seg.Start != lines.At(i-1).Stop) {
			fence.Contiguous = false
		}
	}

	if block.Info != nil {
		seg := block.Info.Segment
		info := seg.Value(src)
		fence.Info = string(info)
		tagLen := len(info)
		if i := bytes.IndexAny(info, " \t{"); i > 0 {
			tagLen = i
		}
		fence.TagStart, fence.TagEnd = seg.Start, seg.Start+tagLen
	}
	return fence, true
}
