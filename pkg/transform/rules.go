package transform

import (
	"github.com/yaklabco/tsblank/pkg/edit"
	"github.com/yaklabco/tsblank/pkg/scan"
	"github.com/yaklabco/tsblank/pkg/tsast"
)

// ruleFunc handles one node. It returns the children to visit next; a nil
// slice stops the descent.
type ruleFunc func(e *eraser, n, parent *tsast.Node) ([]*tsast.Node, error)

// ruleFor returns the rule for kind, or nil when no rule exists and the
// node falls back to a plain descent with a diagnostic.
//
//nolint:cyclop,funlen // One arm per node kind.
func ruleFor(kind tsast.Kind) ruleFunc {
	switch kind {
	// Declarations with no runtime meaning. Blanked whole; a terminator
	// keeps the surrounding statements apart.
	case tsast.KindInterfaceDeclaration, tsast.KindTypeAliasDeclaration,
		tsast.KindAmbientDeclaration, tsast.KindFunctionSignature:
		return (*eraser).eraseBlock
	case tsast.KindInternalModule, tsast.KindModule:
		return (*eraser).namespace

	// Type syntax inside runtime constructs. Blanked in place.
	case tsast.KindTypeAnnotation, tsast.KindOptingTypeAnnotation, tsast.KindOmittingTypeAnnotation,
		tsast.KindAddingTypeAnnotation, tsast.KindAssertsAnnotation, tsast.KindTypePredicateAnnotation:
		return (*eraser).annotation
	case tsast.KindTypeArguments, tsast.KindImplementsClause, tsast.KindAccessibilityModifier,
		tsast.KindOverrideModifier:
		return (*eraser).eraseInline
	case tsast.KindIndexSignature, tsast.KindAbstractMethodSignature, tsast.KindMethodSignature:
		return (*eraser).signature
	case tsast.KindTypeParameters:
		return (*eraser).typeParameters

	// Expressions wrapping a runtime value.
	case tsast.KindAsExpression, tsast.KindSatisfiesExpression:
		return (*eraser).typeCheck
	case tsast.KindNonNullExpression:
		return (*eraser).nonNull
	case tsast.KindTypeAssertion:
		return (*eraser).typeAssertion
	case tsast.KindInstantiationExpression:
		return (*eraser).instantiation

	// Runtime constructs with type-only parts.
	case tsast.KindExpressionStatement:
		return (*eraser).expressionStatement
	case tsast.KindVariableDeclarator:
		return (*eraser).variableDeclarator
	case tsast.KindFormalParameters:
		return (*eraser).formalParameters
	case tsast.KindRequiredParameter, tsast.KindOptionalParameter:
		return (*eraser).parameter
	case tsast.KindArrowFunction:
		return (*eraser).arrowFunction
	case tsast.KindClassDeclaration, tsast.KindClass, tsast.KindAbstractClassDeclaration:
		return (*eraser).class
	case tsast.KindPublicFieldDefinition, tsast.KindFieldDefinition:
		return (*eraser).field
	case tsast.KindMethodDefinition:
		return (*eraser).method
	case tsast.KindEnumDeclaration:
		return (*eraser).enum
	case tsast.KindImportStatement:
		return (*eraser).importStatement
	case tsast.KindExportStatement:
		return (*eraser).exportStatement
	case tsast.KindNamedImports, tsast.KindExportClause:
		return (*eraser).specifierList
	case tsast.KindImportAlias:
		return (*eraser).importAlias

	// Plain JavaScript.
	case tsast.KindProgram, tsast.KindHashBangLine, tsast.KindEmptyStatement, tsast.KindStatementBlock,
		tsast.KindIfStatement, tsast.KindElseClause, tsast.KindSwitchStatement, tsast.KindSwitchBody,
		tsast.KindSwitchCase, tsast.KindSwitchDefault, tsast.KindForStatement, tsast.KindForInStatement,
		tsast.KindWhileStatement, tsast.KindDoStatement, tsast.KindTryStatement, tsast.KindCatchClause,
		tsast.KindFinallyClause, tsast.KindWithStatement, tsast.KindBreakStatement,
		tsast.KindContinueStatement, tsast.KindReturnStatement, tsast.KindThrowStatement,
		tsast.KindLabeledStatement, tsast.KindDebuggerStatement, tsast.KindStatementIdentifier,
		tsast.KindLexicalDeclaration, tsast.KindVariableDeclaration, tsast.KindFunctionDeclaration,
		tsast.KindGeneratorFunctionDeclaration, tsast.KindClassBody, tsast.KindClassHeritage,
		tsast.KindExtendsClause, tsast.KindClassStaticBlock, tsast.KindDecorator,
		tsast.KindDecoratorMemberExpression, tsast.KindDecoratorCallExpression,
		tsast.KindDecoratorParenthesizedExpression, tsast.KindImportClause, tsast.KindImportSpecifier,
		tsast.KindNamespaceImport, tsast.KindImportAttribute, tsast.KindImport, tsast.KindExportSpecifier,
		tsast.KindNamespaceExport, tsast.KindParenthesizedExpression, tsast.KindSequenceExpression,
		tsast.KindAssignmentExpression, tsast.KindAugmentedAssignmentExpression, tsast.KindAwaitExpression,
		tsast.KindUnaryExpression, tsast.KindBinaryExpression, tsast.KindTernaryExpression,
		tsast.KindUpdateExpression, tsast.KindNewExpression, tsast.KindYieldExpression,
		tsast.KindMemberExpression, tsast.KindSubscriptExpression, tsast.KindOptionalChain,
		tsast.KindCallExpression, tsast.KindArguments, tsast.KindObject, tsast.KindArray, tsast.KindPair,
		tsast.KindSpreadElement, tsast.KindFunctionExpression, tsast.KindGeneratorFunction,
		tsast.KindTemplateString, tsast.KindTemplateSubstitution, tsast.KindRegex, tsast.KindRegexPattern,
		tsast.KindRegexFlags, tsast.KindString, tsast.KindStringFragment, tsast.KindEscapeSequence,
		tsast.KindHTMLCharacterReference, tsast.KindNumber, tsast.KindIdentifier,
		tsast.KindPropertyIdentifier, tsast.KindShorthandPropertyIdentifier,
		tsast.KindShorthandPropertyIdentifierPattern, tsast.KindPrivatePropertyIdentifier, tsast.KindThis,
		tsast.KindSuper, tsast.KindTrue, tsast.KindFalse, tsast.KindNull, tsast.KindUndefined,
		tsast.KindMetaProperty, tsast.KindComputedPropertyName, tsast.KindNestedIdentifier,
		tsast.KindObjectPattern, tsast.KindArrayPattern, tsast.KindAssignmentPattern,
		tsast.KindObjectAssignmentPattern, tsast.KindPairPattern, tsast.KindRestPattern,
		tsast.KindJSXElement, tsast.KindJSXOpeningElement, tsast.KindJSXClosingElement,
		tsast.KindJSXSelfClosingElement, tsast.KindJSXAttribute, tsast.KindJSXExpression,
		tsast.KindJSXText, tsast.KindJSXNamespaceName, tsast.KindTypeIdentifier,
		tsast.KindEnumBody, tsast.KindEnumAssignment, tsast.KindImportRequireClause:
		return (*eraser).passThrough

	case tsast.KindUnknown:
	}
	return nil
}

func (e *eraser) passThrough(n, _ *tsast.Node) ([]*tsast.Node, error) {
	return n.Children, nil
}

func (e *eraser) eraseBlock(n, _ *tsast.Node) ([]*tsast.Node, error) {
	e.buf.BlankKeepTerminator(n.Start, n.End)
	return nil, nil
}

func (e *eraser) eraseInline(n, _ *tsast.Node) ([]*tsast.Node, error) {
	e.buf.Blank(n.Start, n.End)
	return nil, nil
}

func (e *eraser) annotation(n, _ *tsast.Node) ([]*tsast.Node, error) {
	if err := e.checkTypeBreaks(n); err != nil {
		return nil, err
	}
	e.buf.Blank(n.Start, n.End)
	return nil, nil
}

// checkTypeBreaks rejects array and indexed access types whose "[" starts a
// new line. At runtime that bracket belongs to the next statement, so
// blanking the type would drop it.
func (e *eraser) checkTypeBreaks(types ...*tsast.Node) error {
	var err error
	for _, typ := range types {
		tsast.Inspect(typ, func(n *tsast.Node) bool {
			if err != nil {
				return false
			}
			if n.Type != "lookup_type" && n.Type != "array_type" {
				return true
			}
			elem := n.FirstChild()
			if elem == nil {
				return true
			}
			if bracket, ok := e.firstTokenOf(elem.End, n.End, scan.KindLBracket); ok &&
				e.buf.HasNewline(elem.End, bracket.Start) {
				err = e.unsupported(n, `line break before "[" in a type`)
				return false
			}
			return true
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// signature erases a class member with no runtime part: an overload, an
// abstract method or an index signature. Inside a class body the first byte
// becomes a semicolon so the previous member cannot run into the next one.
func (e *eraser) signature(n, parent *tsast.Node) ([]*tsast.Node, error) {
	if parent != nil && parent.Kind == tsast.KindClassBody {
		e.buf.BlankKeepTerminator(n.Start, n.End)
		return nil, nil
	}
	e.buf.Blank(n.Start, n.End)
	return nil, nil
}

// namespace erases a namespace or module declaration. Bodies with runtime
// statements are erased too, with a warning.
func (e *eraser) namespace(n, _ *tsast.Node) ([]*tsast.Node, error) {
	if !declarationOnly(n) {
		e.warn(n, CodeRuntimeNamespace, "namespace contains runtime code that is erased with it")
	}
	e.buf.BlankKeepTerminator(n.Start, n.End)
	return nil, nil
}

// expressionStatement erases statements that only wrap a namespace.
func (e *eraser) expressionStatement(n, _ *tsast.Node) ([]*tsast.Node, error) {
	if len(n.Children) == 1 {
		if child := n.Children[0]; child.Kind == tsast.KindInternalModule || child.Kind == tsast.KindModule {
			e.parents[child] = n
			if _, err := e.namespace(child, n); err != nil {
				return nil, err
			}
			// Include the statement's own terminator.
			e.buf.Blank(child.End, n.End)
			return nil, nil
		}
	}
	return n.Children, nil
}

// typeParameters blanks a type parameter list. When it sits on a
// function-like node and a line break separates it from the parameter list,
// the opening parenthesis moves to the start of the erased list.
func (e *eraser) typeParameters(n, parent *tsast.Node) ([]*tsast.Node, error) {
	e.buf.Blank(n.Start, n.End)
	if parent == nil || !parent.Kind.IsFunctionLike() {
		return nil, nil
	}
	paren, ok := e.firstToken(n.End, parent.End)
	if ok && paren.Kind == scan.KindLParen && e.buf.HasNewline(n.Start, paren.Start) {
		e.buf.ReplaceSameLength(paren.Start, paren.End, " ")
		e.buf.ReplaceSameLength(n.Start, n.Start+1, "(")
	}
	return nil, nil
}

// typeCheck unwraps "x as T" and "x satisfies T". When the expression ends
// a statement that has no terminator of its own, a semicolon takes the
// place of the keyword so the next line cannot continue the expression.
func (e *eraser) typeCheck(n, parent *tsast.Node) ([]*tsast.Node, error) {
	inner := n.FirstChild()
	if inner == nil {
		return nil, nil
	}
	if err := e.checkTypeBreaks(n.Children[1:]...); err != nil {
		return nil, err
	}

	terminate := e.endsStatement(n)
	if accessTarget(n, parent) {
		// "b as T\n(c)" is two statements. The parser reads the second line
		// as a call of the first.
		next, ok := e.firstToken(n.End, parent.End)
		if !ok || !e.buf.HasNewline(n.End, next.Start) || !e.atStatementEnd(chainTop(n, e.parents)) {
			return nil, e.unsupported(n, "type assertion used as a call or member target")
		}
		terminate = true
	}

	e.buf.Blank(inner.End, n.End)
	if terminate {
		if kw, ok := e.firstToken(inner.End, n.End); ok {
			e.buf.ReplaceSameLength(kw.Start, kw.Start+1, string(edit.Terminator))
		}
	}
	return []*tsast.Node{inner}, nil
}

// accessTarget reports whether n is the unparenthesized callee of a call or
// the object of a member access or subscript.
func accessTarget(n, parent *tsast.Node) bool {
	if parent == nil || parent.FirstChild() != n {
		return false
	}
	switch parent.Kind {
	case tsast.KindCallExpression, tsast.KindMemberExpression, tsast.KindSubscriptExpression:
		return true
	default:
		return false
	}
}

// chainTop returns the outermost call, member access or subscript that n
// heads.
func chainTop(n *tsast.Node, parents map[*tsast.Node]*tsast.Node) *tsast.Node {
	for {
		parent := parents[n]
		if !accessTarget(n, parent) {
			return n
		}
		n = parent
	}
}

// endsStatement reports whether n is the last part of a statement-like
// ancestor that is not followed by a semicolon or comma.
func (e *eraser) endsStatement(n *tsast.Node) bool {
	if !e.atStatementEnd(n) {
		return false
	}
	next, ok := e.firstToken(n.End, len(e.src))
	return !ok || (next.Kind != scan.KindSemicolon && next.Kind != scan.KindComma)
}

// atStatementEnd reports whether n ends where a statement-like ancestor
// ends, not counting the ancestor's own semicolon.
func (e *eraser) atStatementEnd(n *tsast.Node) bool {
	for anc := e.parents[n]; anc != nil; anc = e.parents[anc] {
		if anc.End != n.End && !e.onlyTerminator(n.End, anc.End) {
			return false
		}
		if statementLike(anc.Kind) {
			return true
		}
	}
	return false
}

func (e *eraser) onlyTerminator(start, end int) bool {
	count := 0
	for tok := range e.tokens(start, end) {
		if tok.Kind != scan.KindSemicolon {
			return false
		}
		count++
	}
	return count == 1
}

func statementLike(kind tsast.Kind) bool {
	switch kind {
	case tsast.KindExpressionStatement, tsast.KindReturnStatement, tsast.KindThrowStatement,
		tsast.KindVariableDeclarator, tsast.KindLexicalDeclaration, tsast.KindVariableDeclaration,
		tsast.KindPublicFieldDefinition, tsast.KindFieldDefinition, tsast.KindExportStatement:
		return true
	default:
		return false
	}
}

// nonNull blanks the "!" of "x!".
func (e *eraser) nonNull(n, _ *tsast.Node) ([]*tsast.Node, error) {
	inner := n.FirstChild()
	if inner == nil {
		return nil, nil
	}
	if bang, ok := e.lastTokenOf(inner.End, n.End, scan.KindBang); ok {
		e.buf.Blank(bang.Start, bang.End)
	}
	return []*tsast.Node{inner}, nil
}

// typeAssertion keeps only the operand of "<T>x". An operand on a later
// line is wrapped in parentheses, since "return\n x" returns nothing.
func (e *eraser) typeAssertion(n, _ *tsast.Node) ([]*tsast.Node, error) {
	operand := n.LastChild()
	if operand == nil {
		return nil, nil
	}
	e.buf.DeleteExcept(n.Start, n.End, operand.Start, operand.End)
	if e.buf.HasNewline(n.Start, operand.Start) {
		e.buf.ReplaceSameLength(n.Start, n.Start+1, "(")
		e.buf.Insert(operand.End, ")")
	}
	return []*tsast.Node{operand}, nil
}

// instantiation keeps only the expression of "f<T>".
func (e *eraser) instantiation(n, _ *tsast.Node) ([]*tsast.Node, error) {
	expr := n.FirstChild()
	if expr == nil {
		return nil, nil
	}
	e.buf.DeleteExcept(n.Start, n.End, expr.Start, expr.End)
	return []*tsast.Node{expr}, nil
}

// variableDeclarator blanks the definite assignment "!" of "let x!: T".
func (e *eraser) variableDeclarator(n, _ *tsast.Node) ([]*tsast.Node, error) {
	if name := n.FirstChild(); name != nil && n.Has(tsast.FlagDefinite) {
		if bang, ok := e.firstTokenOf(name.End, n.End, scan.KindBang); ok {
			e.buf.Blank(bang.Start, bang.End)
		}
	}
	return n.Children, nil
}

// formalParameters erases a leading "this" parameter and its comma.
func (e *eraser) formalParameters(n, _ *tsast.Node) ([]*tsast.Node, error) {
	first := n.FirstChild()
	if first == nil || first.Kind != tsast.KindRequiredParameter {
		return n.Children, nil
	}
	pattern := first.FirstChild()
	if pattern == nil || pattern.Kind != tsast.KindThis {
		return n.Children, nil
	}

	e.buf.Blank(first.Start, first.End)
	if comma, ok := e.firstToken(first.End, n.End); ok && comma.Kind == scan.KindComma {
		e.buf.Blank(comma.Start, comma.End)
	}
	return n.Children[1:], nil
}

// parameter rejects parameter properties and blanks the "?" of optional
// parameters.
func (e *eraser) parameter(n, _ *tsast.Node) ([]*tsast.Node, error) {
	if n.Child(tsast.KindAccessibilityModifier, tsast.KindOverrideModifier) != nil || n.Has(tsast.FlagReadonly) {
		return nil, e.unsupported(n, "parameter property")
	}
	if n.Kind != tsast.KindOptionalParameter {
		return n.Children, nil
	}

	var pattern *tsast.Node
	for _, child := range n.Children {
		if child.Kind != tsast.KindDecorator {
			pattern = child
			break
		}
	}
	if pattern != nil {
		end := n.End
		if next := n.NextSibling(pattern); next != nil {
			end = next.Start
		}
		if q, ok := e.firstTokenOf(pattern.End, end, scan.KindQuestion); ok {
			e.buf.Blank(q.Start, q.End)
		}
	}
	return n.Children, nil
}

// arrowFunction blanks the return type of an arrow function. A closing
// parenthesis separated from "=>" by a line break in the erased type moves
// to the end of the type.
func (e *eraser) arrowFunction(n, _ *tsast.Node) ([]*tsast.Node, error) {
	var ret *tsast.Node
	for _, child := range n.Children {
		if child.Kind.IsTypeAnnotation() {
			ret = child
			break
		}
	}
	if ret == nil {
		return n.Children, nil
	}

	e.buf.Blank(ret.Start, ret.End)
	if paren, ok := e.lastToken(n.Start, ret.Start); ok &&
		paren.Kind == scan.KindRParen && e.buf.HasNewline(paren.End, ret.End) {
		e.buf.ReplaceSameLength(paren.Start, paren.End, " ")
		e.buf.ReplaceSameLength(ret.End-1, ret.End, ")")
	}
	return n.ChildrenExcept(func(c *tsast.Node) bool { return c == ret }), nil
}

// importAlias rejects "import A = B.C" unless it is type-only.
func (e *eraser) importAlias(n, _ *tsast.Node) ([]*tsast.Node, error) {
	if n.Has(tsast.FlagTypeOnly) {
		e.buf.Blank(n.Start, n.End)
		return nil, nil
	}
	return nil, e.unsupported(n, "import alias")
}

// declarationOnly reports whether erasing n removes no runtime code.
func declarationOnly(n *tsast.Node) bool {
	switch n.Kind {
	case tsast.KindInterfaceDeclaration, tsast.KindTypeAliasDeclaration, tsast.KindAmbientDeclaration,
		tsast.KindFunctionSignature, tsast.KindEmptyStatement:
		return true
	case tsast.KindInternalModule, tsast.KindModule:
		body := n.Child(tsast.KindStatementBlock)
		if body == nil {
			return true
		}
		for _, stmt := range body.Children {
			if !declarationOnly(stmt) {
				return false
			}
		}
		return true
	case tsast.KindExpressionStatement:
		return len(n.Children) == 1 && declarationOnly(n.Children[0])
	case tsast.KindImportStatement:
		return n.Has(tsast.FlagTypeOnly)
	case tsast.KindExportStatement:
		if n.Has(tsast.FlagTypeOnly) {
			return true
		}
		decl := typeDeclaration(n)
		return decl != nil && declarationOnly(decl)
	default:
		return false
	}
}
