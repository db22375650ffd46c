// Package treesitter provides a TypeScript parser built on the tree-sitter
// TypeScript and TSX grammars, producing tsast trees.
package treesitter

import (
	"context"
	"errors"
	"fmt"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/yaklabco/tsblank/pkg/tsast"
)

// Dialects supported by the parser.
const (
	DialectTS  = "typescript"
	DialectTSX = "tsx"
)

var (
	errPoolType = errors.New("treesitter: pool returned unexpected type")
	errNoRoot   = errors.New("treesitter: parse produced no root node")
)

// Parser parses TypeScript source. It is safe for concurrent use: each call
// takes its own tree-sitter parser from a pool.
type Parser struct {
	dialect string
	pool    sync.Pool
}

// New creates a parser for the given dialect. Unknown dialects default to
// DialectTS.
func New(dialect string) *Parser {
	d := dialectOrDefault(dialect)
	lang := languageFor(d)

	p := &Parser{dialect: d}
	p.pool = sync.Pool{
		New: func() any {
			tsParser := sitter.NewParser()
			tsParser.SetLanguage(lang)
			return tsParser
		},
	}
	return p
}

// Dialect returns the configured dialect.
func (p *Parser) Dialect() string {
	return p.dialect
}

// Parse parses src into a tree. Syntax errors are returned in the second
// result, in source order, with a nil tree; the error result is reserved for
// failures of the parser itself, including cancellation.
func (p *Parser) Parse(ctx context.Context, src []byte) (*tsast.Node, []tsast.SyntaxError, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("parse cancelled: %w", err)
	}

	tsParser, ok := p.pool.Get().(*sitter.Parser)
	if !ok {
		return nil, nil, errPoolType
	}
	defer p.pool.Put(tsParser)

	tree, err := tsParser.ParseCtx(ctx, nil, src)
	if err != nil {
		// A cancelled parse leaves the parser mid-parse; drop its state.
		tsParser.Reset()
		return nil, nil, fmt.Errorf("parse %s: %w", p.dialect, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.IsNull() {
		return nil, nil, errNoRoot
	}

	if root.HasError() {
		return nil, collectErrors(root, src), nil
	}

	return convert(root), nil, nil
}

func dialectOrDefault(dialect string) string {
	if dialect == DialectTSX {
		return DialectTSX
	}
	return DialectTS
}

func languageFor(dialect string) *sitter.Language {
	if dialect == DialectTSX {
		return tsx.GetLanguage()
	}
	return typescript.GetLanguage()
}
