package tsast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/tsblank/pkg/tsast"
)

// sampleTree models "let x: T = 1;".
func sampleTree() (string, *tsast.Node) {
	src := "let x: T = 1;"
	ident := &tsast.Node{Kind: tsast.KindIdentifier, Start: 4, End: 5}
	ann := &tsast.Node{Kind: tsast.KindTypeAnnotation, Start: 5, End: 8, Children: []*tsast.Node{
		{Kind: tsast.KindTypeIdentifier, Start: 7, End: 8},
	}}
	num := &tsast.Node{Kind: tsast.KindNumber, Start: 11, End: 12}
	decl := &tsast.Node{Kind: tsast.KindVariableDeclarator, Start: 4, End: 12, Children: []*tsast.Node{ident, ann, num}}
	lexical := &tsast.Node{Kind: tsast.KindLexicalDeclaration, Start: 0, End: 13, Children: []*tsast.Node{decl}}
	root := &tsast.Node{Kind: tsast.KindProgram, Start: 0, End: 13, Children: []*tsast.Node{lexical}}
	return src, root
}

func TestNodeAccessors(t *testing.T) {
	t.Parallel()

	src, root := sampleTree()
	decl := root.Children[0].Children[0]

	assert.Equal(t, "x: T = 1", decl.Text(src))
	assert.Equal(t, 8, decl.Len())
	assert.Equal(t, tsast.KindTypeAnnotation, decl.Child(tsast.KindTypeAnnotation, tsast.KindAssertsAnnotation).Kind)
	assert.Nil(t, decl.Child(tsast.KindString))
	assert.Len(t, decl.ChildrenOf(tsast.KindIdentifier, tsast.KindNumber), 2)
	assert.Equal(t, tsast.KindIdentifier, decl.FirstChild().Kind)
	assert.Equal(t, tsast.KindNumber, decl.LastChild().Kind)
	assert.Equal(t, decl.Children[2], decl.NextSibling(decl.Children[1]))
	assert.Nil(t, decl.NextSibling(decl.Children[2]))

	kept := decl.ChildrenExcept(func(n *tsast.Node) bool { return n.Kind.IsTypeAnnotation() })
	assert.Len(t, kept, 2)

	leaf := &tsast.Node{Kind: tsast.KindNumber}
	assert.Nil(t, leaf.FirstChild())
	assert.Nil(t, leaf.LastChild())
}

func TestNodeFlags(t *testing.T) {
	t.Parallel()

	n := &tsast.Node{Flags: tsast.FlagFor("declare") | tsast.FlagFor("?")}
	assert.True(t, n.Has(tsast.FlagDeclare))
	assert.True(t, n.Has(tsast.FlagDeclare|tsast.FlagOptional))
	assert.False(t, n.Has(tsast.FlagDeclare|tsast.FlagStatic))
	assert.Equal(t, "declare|?", n.Flags.String())
	assert.Equal(t, "0", tsast.Flags(0).String())
	assert.Equal(t, tsast.Flags(0), tsast.FlagFor("async"))
	assert.Equal(t, tsast.FlagTypeOnly, tsast.FlagFor("typeof"))
}

func TestNodeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "union_type", (&tsast.Node{Type: "union_type"}).Name())
	assert.Equal(t, "program", (&tsast.Node{Kind: tsast.KindProgram, Type: "program"}).Name())
	assert.Equal(t, "unknown", (&tsast.Node{}).Name())
}
