package tsast

// Visitor decides, for each node the walk reaches, which nodes to descend
// into next. Returning nil stops descent below n; returning a different list
// than n.Children skips or substitutes subtrees. parent is nil for the root.
type Visitor interface {
	Visit(n, parent *Node) ([]*Node, error)
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(n, parent *Node) ([]*Node, error)

// Visit calls f(n, parent).
func (f VisitorFunc) Visit(n, parent *Node) ([]*Node, error) {
	return f(n, parent)
}

// Walk performs a depth-first pre-order traversal from root, descending into
// the nodes each Visit call returns. The parent passed for a node is the node
// whose Visit returned it. The walk stops at the first error.
func Walk(root *Node, v Visitor) error {
	if root == nil {
		return nil
	}
	return walk(root, nil, v)
}

func walk(n, parent *Node, v Visitor) error {
	next, err := v.Visit(n, parent)
	if err != nil {
		return err
	}
	for _, child := range next {
		if err := walk(child, n, v); err != nil {
			return err
		}
	}
	return nil
}

// Inspect calls fn for every node below and including root in pre-order.
// Children of a node are skipped when fn returns false for it.
func Inspect(root *Node, fn func(n *Node) bool) {
	if root == nil || !fn(root) {
		return
	}
	for _, child := range root.Children {
		Inspect(child, fn)
	}
}

// FindAll returns all nodes matching the predicate in pre-order.
func FindAll(root *Node, predicate func(n *Node) bool) []*Node {
	var result []*Node
	Inspect(root, func(n *Node) bool {
		if predicate(n) {
			result = append(result, n)
		}
		return true
	})
	return result
}

// FindFirst returns the first node in pre-order matching the predicate, or
// nil.
func FindFirst(root *Node, predicate func(n *Node) bool) *Node {
	var found *Node
	Inspect(root, func(n *Node) bool {
		if found != nil {
			return false
		}
		if predicate(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindByKind returns all nodes of the given kind.
func FindByKind(root *Node, kind Kind) []*Node {
	return FindAll(root, func(n *Node) bool {
		return n.Kind == kind
	})
}
