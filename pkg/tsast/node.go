// Package tsast defines the positioned syntax tree that type erasure runs
// over: a closed set of node kinds, nodes carrying half-open byte ranges into
// the source, the pre-order walker that drives rules, and a line index for
// reporting positions.
//
// Trees are produced by a parser adapter (see pkg/parser/treesitter) and are
// read-only once built.
package tsast

import "strings"

// Flags records keyword and punctuation children that the tree keeps only as
// anonymous tokens, such as the "type" in "import type" or the "?" of an
// optional member.
type Flags uint16

// Node flags.
const (
	// FlagTypeOnly marks type-only imports, exports and specifiers.
	FlagTypeOnly Flags = 1 << iota
	// FlagDeclare marks members and declarations qualified with declare.
	FlagDeclare
	// FlagAbstract marks abstract members.
	FlagAbstract
	// FlagStatic marks static members.
	FlagStatic
	// FlagReadonly marks readonly members and parameters.
	FlagReadonly
	// FlagConst marks const enums.
	FlagConst
	// FlagOptional marks a "?" directly inside the node.
	FlagOptional
	// FlagDefinite marks a "!" directly inside the node.
	FlagDefinite
)

//nolint:gochecknoglobals // Read-only lookup table.
var flagTokens = map[string]Flags{
	"type":     FlagTypeOnly,
	"typeof":   FlagTypeOnly,
	"declare":  FlagDeclare,
	"abstract": FlagAbstract,
	"static":   FlagStatic,
	"readonly": FlagReadonly,
	"const":    FlagConst,
	"?":        FlagOptional,
	"!":        FlagDefinite,
}

// FlagFor returns the flag recorded for an anonymous token, or 0.
func FlagFor(token string) Flags {
	return flagTokens[token]
}

// String lists the set flags separated by '|'.
func (f Flags) String() string {
	if f == 0 {
		return "0"
	}
	names := []string{"type", "declare", "abstract", "static", "readonly", "const", "?", "!"}
	var parts []string
	for i, name := range names {
		if f&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// Node is a syntax node. Start and End are byte offsets into the source,
// half-open. Children holds the named children in source order; comments are
// not part of the tree.
type Node struct {
	// Kind is the node's category.
	Kind Kind

	// Type is the grammar's name for the node, kept for KindUnknown nodes.
	Type string

	Start int
	End   int

	Flags    Flags
	Children []*Node
}

// Has reports whether every flag in f is set on n.
func (n *Node) Has(f Flags) bool {
	return n.Flags&f == f
}

// Len returns the length of the node's range in bytes.
func (n *Node) Len() int {
	return n.End - n.Start
}

// Text returns the node's source text.
func (n *Node) Text(src string) string {
	return src[n.Start:n.End]
}

// Child returns the first direct child whose kind is one of kinds, or nil.
func (n *Node) Child(kinds ...Kind) *Node {
	for _, child := range n.Children {
		for _, kind := range kinds {
			if child.Kind == kind {
				return child
			}
		}
	}
	return nil
}

// ChildrenOf returns the direct children whose kind is one of kinds.
func (n *Node) ChildrenOf(kinds ...Kind) []*Node {
	var out []*Node
	for _, child := range n.Children {
		for _, kind := range kinds {
			if child.Kind == kind {
				out = append(out, child)
				break
			}
		}
	}
	return out
}

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// LastChild returns the last child, or nil.
func (n *Node) LastChild() *Node {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[len(n.Children)-1]
}

// NextSibling returns the child of n that follows child, or nil.
func (n *Node) NextSibling(child *Node) *Node {
	for i, c := range n.Children {
		if c == child && i+1 < len(n.Children) {
			return n.Children[i+1]
		}
	}
	return nil
}

// ChildrenExcept returns the children of n for which drop returns false.
func (n *Node) ChildrenExcept(drop func(*Node) bool) []*Node {
	out := make([]*Node, 0, len(n.Children))
	for _, child := range n.Children {
		if !drop(child) {
			out = append(out, child)
		}
	}
	return out
}

// Name returns the node's type name for display.
func (n *Node) Name() string {
	if n.Kind == KindUnknown && n.Type != "" {
		return n.Type
	}
	return n.Kind.String()
}
