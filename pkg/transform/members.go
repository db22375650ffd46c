package transform

import (
	"strings"

	"github.com/yaklabco/tsblank/pkg/edit"
	"github.com/yaklabco/tsblank/pkg/scan"
	"github.com/yaklabco/tsblank/pkg/tsast"
)

// class blanks the "abstract" keyword of an abstract class. Implements
// clauses and type parameters are erased by their own rules.
func (e *eraser) class(n, _ *tsast.Node) ([]*tsast.Node, error) {
	if n.Kind != tsast.KindAbstractClassDeclaration && !n.Has(tsast.FlagAbstract) {
		return n.Children, nil
	}

	start, end := n.Start, n.End
	for _, child := range n.Children {
		if child.Kind == tsast.KindDecorator {
			start = child.End
			continue
		}
		end = child.Start
		break
	}
	if kw, ok := e.firstTokenOf(start, end, scan.KindAbstract); ok {
		e.buf.Blank(kw.Start, kw.End)
	}
	return n.Children, nil
}

// field handles a class property.
func (e *eraser) field(n, parent *tsast.Node) ([]*tsast.Node, error) {
	switch {
	case n.Has(tsast.FlagDeclare):
		e.buf.BlankKeepTerminator(n.Start, n.End)
		return nil, nil
	case n.Has(tsast.FlagAbstract):
		return e.signature(n, parent)
	default:
		return e.memberModifiers(n, parent, true)
	}
}

// method handles a class or object method.
func (e *eraser) method(n, parent *tsast.Node) ([]*tsast.Node, error) {
	return e.memberModifiers(n, parent, false)
}

// memberModifiers blanks the modifier keywords before a member name
// (public, private, protected, readonly, override) and the "?" or "!" after
// it.
//
// A member whose first erased token starts the member could merge with the
// member before it, as in "x = a\n private [k] = 1". For non-static,
// undecorated class members that token becomes a semicolon. A postfix token
// only qualifies on a field without an initializer.
func (e *eraser) memberModifiers(n, parent *tsast.Node, isField bool) ([]*tsast.Node, error) {
	name := memberName(n)
	if name == nil {
		return n.Children, nil
	}

	prefixStart := n.Start
	decorated := false
	for _, child := range n.Children {
		if child.Kind == tsast.KindDecorator {
			prefixStart = child.End
			decorated = true
		}
	}

	type removal struct {
		tok    scan.Token
		prefix bool
	}
	var removals []removal
	for tok := range e.tokens(prefixStart, name.Start) {
		switch tok.Kind {
		case scan.KindPublic, scan.KindPrivate, scan.KindProtected, scan.KindReadonly, scan.KindOverride:
			removals = append(removals, removal{tok: tok, prefix: true})
		}
	}
	if n.Has(tsast.FlagOptional) || n.Has(tsast.FlagDefinite) {
		end := n.End
		if next := n.NextSibling(name); next != nil {
			end = next.Start
		}
		if tok, ok := e.firstToken(name.End, end); ok && (tok.Kind == scan.KindQuestion || tok.Kind == scan.KindBang) {
			removals = append(removals, removal{tok: tok})
		}
	}

	terminate := parent != nil && parent.Kind == tsast.KindClassBody &&
		!n.Has(tsast.FlagStatic) && !decorated
	for i, r := range removals {
		canTerminate := r.prefix || (isField && !hasInitializer(n, name))
		if i == 0 && terminate && canTerminate {
			e.buf.ReplaceSameLength(r.tok.Start, r.tok.End,
				string(edit.Terminator)+strings.Repeat(" ", r.tok.Len()-1))
			continue
		}
		e.buf.Blank(r.tok.Start, r.tok.End)
	}

	return n.ChildrenExcept(func(c *tsast.Node) bool {
		return c.Kind == tsast.KindAccessibilityModifier || c.Kind == tsast.KindOverrideModifier
	}), nil
}

// memberName returns the property name node of a class member.
func memberName(n *tsast.Node) *tsast.Node {
	return n.Child(tsast.KindPropertyIdentifier, tsast.KindPrivatePropertyIdentifier,
		tsast.KindString, tsast.KindNumber, tsast.KindComputedPropertyName)
}

// hasInitializer reports whether a field has a value after its name and
// type.
func hasInitializer(n, name *tsast.Node) bool {
	for _, child := range n.Children {
		if child.Start >= name.End && child.Kind != tsast.KindDecorator && !child.Kind.IsTypeAnnotation() {
			return true
		}
	}
	return false
}
