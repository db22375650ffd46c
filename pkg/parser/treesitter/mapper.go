package treesitter

import (
	"fmt"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/yaklabco/tsblank/pkg/tsast"
)

// maxSnippet bounds the source excerpt quoted in syntax error messages.
const maxSnippet = 24

// convert maps a tree-sitter subtree to tsast. Named children become
// children; anonymous children are recorded as flags; comments are dropped.
func convert(n *sitter.Node) *tsast.Node {
	typeName := n.Type()
	out := &tsast.Node{
		Kind:  tsast.KindOf(typeName),
		Type:  typeName,
		Start: int(n.StartByte()),
		End:   int(n.EndByte()),
	}

	count := int(n.ChildCount())
	for i := range count {
		child := n.Child(i)
		if child == nil {
			continue
		}
		if !child.IsNamed() {
			out.Flags |= tsast.FlagFor(child.Type())
			continue
		}
		if isComment(child.Type()) {
			continue
		}
		if out.Children == nil {
			out.Children = make([]*tsast.Node, 0, count-i)
		}
		out.Children = append(out.Children, convert(child))
	}

	return out
}

func isComment(typeName string) bool {
	return typeName == "comment" || typeName == "html_comment"
}

// collectErrors reports every ERROR and MISSING node, descending only into
// subtrees that contain errors. An ERROR node is reported once; its contents
// are not searched further.
func collectErrors(root *sitter.Node, src []byte) []tsast.SyntaxError {
	var errs []tsast.SyntaxError

	var visit func(n *sitter.Node)
	visit = func(n *sitter.Node) {
		switch {
		case n.IsMissing():
			errs = append(errs, syntaxError(n, fmt.Sprintf("missing %q", n.Type())))
			return
		case n.Type() == "ERROR":
			errs = append(errs, syntaxError(n, "unexpected "+snippet(src, n)))
			return
		case !n.HasError():
			return
		}
		for i := range int(n.ChildCount()) {
			if child := n.Child(i); child != nil {
				visit(child)
			}
		}
	}
	visit(root)

	if len(errs) == 0 {
		// HasError without a located node: report the root.
		errs = append(errs, syntaxError(root, "invalid syntax"))
	}
	return errs
}

func syntaxError(n *sitter.Node, msg string) tsast.SyntaxError {
	point := n.StartPoint()
	return tsast.SyntaxError{
		Offset:  int(n.StartByte()),
		Line:    int(point.Row) + 1,
		Column:  int(point.Column) + 1,
		Message: msg,
	}
}

// snippet quotes the start of a node's text on its first line.
func snippet(src []byte, n *sitter.Node) string {
	start, end := int(n.StartByte()), int(n.EndByte())
	if start >= end || end > len(src) {
		return "end of input"
	}
	text := string(src[start:end])
	if idx := strings.IndexAny(text, "\r\n"); idx >= 0 {
		text = text[:idx]
	}
	if len(text) > maxSnippet {
		cut := maxSnippet
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut] + "..."
	}
	return fmt.Sprintf("%q", text)
}
