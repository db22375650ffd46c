package transform

import (
	"github.com/yaklabco/tsblank/pkg/scan"
	"github.com/yaklabco/tsblank/pkg/tsast"
)

// importStatement erases type-only imports and rejects "import x =
// require()".
func (e *eraser) importStatement(n, _ *tsast.Node) ([]*tsast.Node, error) {
	if n.Has(tsast.FlagTypeOnly) {
		e.buf.Blank(n.Start, n.End)
		return nil, nil
	}
	if n.Child(tsast.KindImportRequireClause) != nil {
		return nil, e.unsupported(n, "import require")
	}
	return n.Children, nil
}

// exportStatement erases type-only exports and exports of declarations
// without runtime meaning. "export =" is rejected.
func (e *eraser) exportStatement(n, _ *tsast.Node) ([]*tsast.Node, error) {
	if n.Has(tsast.FlagTypeOnly) {
		e.buf.Blank(n.Start, n.End)
		return nil, nil
	}
	if decl := typeDeclaration(n); decl != nil {
		if decl.Kind == tsast.KindInternalModule || decl.Kind == tsast.KindModule {
			e.parents[decl] = n
			if !declarationOnly(decl) {
				e.warn(decl, CodeRuntimeNamespace, "namespace contains runtime code that is erased with it")
			}
		}
		e.buf.BlankKeepTerminator(n.Start, n.End)
		return nil, nil
	}

	var toks [3]scan.Token
	count := 0
	for tok := range e.tokens(n.Start, n.End) {
		toks[count] = tok
		count++
		if count == len(toks) {
			break
		}
	}
	if count >= 2 && toks[1].Kind == scan.KindAssign {
		return nil, e.unsupported(n, "export assignment")
	}
	// export as namespace X
	if count == 3 && toks[1].Kind == scan.KindAs && toks[2].Text == "namespace" {
		e.buf.Blank(n.Start, n.End)
		return nil, nil
	}
	return n.Children, nil
}

// typeDeclaration returns the declaration exported by n when it has no
// runtime meaning.
func typeDeclaration(n *tsast.Node) *tsast.Node {
	return n.Child(tsast.KindInterfaceDeclaration, tsast.KindTypeAliasDeclaration,
		tsast.KindFunctionSignature, tsast.KindAmbientDeclaration, tsast.KindInternalModule,
		tsast.KindModule)
}

// specifierList erases the type-only specifiers of an import or export
// list, each with the comma that follows it. The last specifier takes the
// comma before it instead.
func (e *eraser) specifierList(n, _ *tsast.Node) ([]*tsast.Node, error) {
	prevEnd := n.Start
	return n.ChildrenExcept(func(spec *tsast.Node) bool {
		defer func() { prevEnd = spec.End }()
		if !e.typeOnlySpecifier(spec) {
			return false
		}
		e.buf.Blank(spec.Start, spec.End)
		if comma, ok := e.firstToken(spec.End, n.End); ok && comma.Kind == scan.KindComma {
			e.buf.Blank(comma.Start, comma.End)
		} else if comma, ok := e.lastToken(prevEnd, spec.Start); ok && comma.Kind == scan.KindComma {
			e.buf.Blank(comma.Start, comma.End)
		}
		return true
	}), nil
}

// typeOnlySpecifier reports whether spec is "type X" or "type X as Y".
// "type as X" imports a binding named "type".
func (e *eraser) typeOnlySpecifier(spec *tsast.Node) bool {
	if spec.Kind != tsast.KindImportSpecifier && spec.Kind != tsast.KindExportSpecifier {
		return false
	}
	if !spec.Has(tsast.FlagTypeOnly) {
		return false
	}

	var kinds []scan.Kind
	for tok := range e.tokens(spec.Start, spec.End) {
		kinds = append(kinds, tok.Kind)
	}
	isRename := len(kinds) == 3 && kinds[0] == scan.KindType && kinds[1] == scan.KindAs
	return !isRename
}
