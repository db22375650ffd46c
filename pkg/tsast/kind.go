package tsast

// Kind classifies a syntax node. The set is closed: grammar node types the
// package does not know map to KindUnknown, keeping their name in Node.Type.
type Kind uint16

// Node kinds.
const (
	KindUnknown Kind = iota

	// Program and statements.
	KindProgram
	KindHashBangLine
	KindExpressionStatement
	KindEmptyStatement
	KindStatementBlock
	KindIfStatement
	KindElseClause
	KindSwitchStatement
	KindSwitchBody
	KindSwitchCase
	KindSwitchDefault
	KindForStatement
	KindForInStatement
	KindWhileStatement
	KindDoStatement
	KindTryStatement
	KindCatchClause
	KindFinallyClause
	KindWithStatement
	KindBreakStatement
	KindContinueStatement
	KindReturnStatement
	KindThrowStatement
	KindLabeledStatement
	KindDebuggerStatement
	KindStatementIdentifier

	// Declarations.
	KindLexicalDeclaration
	KindVariableDeclaration
	KindVariableDeclarator
	KindFunctionDeclaration
	KindGeneratorFunctionDeclaration
	KindClassDeclaration
	KindClassBody
	KindClassHeritage
	KindExtendsClause
	KindClassStaticBlock
	KindMethodDefinition
	KindFieldDefinition
	KindPublicFieldDefinition
	KindDecorator
	KindDecoratorMemberExpression
	KindDecoratorCallExpression
	KindDecoratorParenthesizedExpression
	KindFormalParameters
	KindRequiredParameter
	KindOptionalParameter

	// Modules.
	KindImportStatement
	KindImportClause
	KindNamedImports
	KindImportSpecifier
	KindNamespaceImport
	KindImportAttribute
	KindImport
	KindExportStatement
	KindExportClause
	KindExportSpecifier
	KindNamespaceExport

	// Expressions.
	KindParenthesizedExpression
	KindSequenceExpression
	KindAssignmentExpression
	KindAugmentedAssignmentExpression
	KindAwaitExpression
	KindUnaryExpression
	KindBinaryExpression
	KindTernaryExpression
	KindUpdateExpression
	KindNewExpression
	KindYieldExpression
	KindMemberExpression
	KindSubscriptExpression
	KindOptionalChain
	KindCallExpression
	KindArguments
	KindObject
	KindArray
	KindPair
	KindSpreadElement
	KindFunctionExpression
	KindGeneratorFunction
	KindArrowFunction
	KindClass
	KindTemplateString
	KindTemplateSubstitution
	KindRegex
	KindRegexPattern
	KindRegexFlags
	KindString
	KindStringFragment
	KindEscapeSequence
	KindHTMLCharacterReference
	KindNumber
	KindIdentifier
	KindPropertyIdentifier
	KindShorthandPropertyIdentifier
	KindShorthandPropertyIdentifierPattern
	KindPrivatePropertyIdentifier
	KindThis
	KindSuper
	KindTrue
	KindFalse
	KindNull
	KindUndefined
	KindMetaProperty
	KindComputedPropertyName
	KindNestedIdentifier

	// Patterns.
	KindObjectPattern
	KindArrayPattern
	KindAssignmentPattern
	KindObjectAssignmentPattern
	KindPairPattern
	KindRestPattern

	// JSX.
	KindJSXElement
	KindJSXOpeningElement
	KindJSXClosingElement
	KindJSXSelfClosingElement
	KindJSXAttribute
	KindJSXExpression
	KindJSXText
	KindJSXNamespaceName

	// TypeScript.
	KindTypeIdentifier
	KindTypeAnnotation
	KindOptingTypeAnnotation
	KindOmittingTypeAnnotation
	KindAddingTypeAnnotation
	KindAssertsAnnotation
	KindTypePredicateAnnotation
	KindTypeParameters
	KindTypeArguments
	KindAsExpression
	KindSatisfiesExpression
	KindNonNullExpression
	KindTypeAssertion
	KindInstantiationExpression
	KindInterfaceDeclaration
	KindTypeAliasDeclaration
	KindEnumDeclaration
	KindEnumBody
	KindEnumAssignment
	KindAmbientDeclaration
	KindModule
	KindInternalModule
	KindAbstractClassDeclaration
	KindAbstractMethodSignature
	KindMethodSignature
	KindFunctionSignature
	KindIndexSignature
	KindImplementsClause
	KindAccessibilityModifier
	KindOverrideModifier
	KindImportAlias
	KindImportRequireClause

	kindCount
)

// NumKinds is the number of defined kinds, including KindUnknown.
const NumKinds = int(kindCount)

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = [kindCount]string{
	KindUnknown:                            "unknown",
	KindProgram:                            "program",
	KindHashBangLine:                       "hash_bang_line",
	KindExpressionStatement:                "expression_statement",
	KindEmptyStatement:                     "empty_statement",
	KindStatementBlock:                     "statement_block",
	KindIfStatement:                        "if_statement",
	KindElseClause:                         "else_clause",
	KindSwitchStatement:                    "switch_statement",
	KindSwitchBody:                         "switch_body",
	KindSwitchCase:                         "switch_case",
	KindSwitchDefault:                      "switch_default",
	KindForStatement:                       "for_statement",
	KindForInStatement:                     "for_in_statement",
	KindWhileStatement:                     "while_statement",
	KindDoStatement:                        "do_statement",
	KindTryStatement:                       "try_statement",
	KindCatchClause:                        "catch_clause",
	KindFinallyClause:                      "finally_clause",
	KindWithStatement:                      "with_statement",
	KindBreakStatement:                     "break_statement",
	KindContinueStatement:                  "continue_statement",
	KindReturnStatement:                    "return_statement",
	KindThrowStatement:                     "throw_statement",
	KindLabeledStatement:                   "labeled_statement",
	KindDebuggerStatement:                  "debugger_statement",
	KindStatementIdentifier:                "statement_identifier",
	KindLexicalDeclaration:                 "lexical_declaration",
	KindVariableDeclaration:                "variable_declaration",
	KindVariableDeclarator:                 "variable_declarator",
	KindFunctionDeclaration:                "function_declaration",
	KindGeneratorFunctionDeclaration:       "generator_function_declaration",
	KindClassDeclaration:                   "class_declaration",
	KindClassBody:                          "class_body",
	KindClassHeritage:                      "class_heritage",
	KindExtendsClause:                      "extends_clause",
	KindClassStaticBlock:                   "class_static_block",
	KindMethodDefinition:                   "method_definition",
	KindFieldDefinition:                    "field_definition",
	KindPublicFieldDefinition:              "public_field_definition",
	KindDecorator:                          "decorator",
	KindDecoratorMemberExpression:          "decorator_member_expression",
	KindDecoratorCallExpression:            "decorator_call_expression",
	KindDecoratorParenthesizedExpression:   "decorator_parenthesized_expression",
	KindFormalParameters:                   "formal_parameters",
	KindRequiredParameter:                  "required_parameter",
	KindOptionalParameter:                  "optional_parameter",
	KindImportStatement:                    "import_statement",
	KindImportClause:                       "import_clause",
	KindNamedImports:                       "named_imports",
	KindImportSpecifier:                    "import_specifier",
	KindNamespaceImport:                    "namespace_import",
	KindImportAttribute:                    "import_attribute",
	KindImport:                             "import",
	KindExportStatement:                    "export_statement",
	KindExportClause:                       "export_clause",
	KindExportSpecifier:                    "export_specifier",
	KindNamespaceExport:                    "namespace_export",
	KindParenthesizedExpression:            "parenthesized_expression",
	KindSequenceExpression:                 "sequence_expression",
	KindAssignmentExpression:               "assignment_expression",
	KindAugmentedAssignmentExpression:      "augmented_assignment_expression",
	KindAwaitExpression:                    "await_expression",
	KindUnaryExpression:                    "unary_expression",
	KindBinaryExpression:                   "binary_expression",
	KindTernaryExpression:                  "ternary_expression",
	KindUpdateExpression:                   "update_expression",
	KindNewExpression:                      "new_expression",
	KindYieldExpression:                    "yield_expression",
	KindMemberExpression:                   "member_expression",
	KindSubscriptExpression:                "subscript_expression",
	KindOptionalChain:                      "optional_chain",
	KindCallExpression:                     "call_expression",
	KindArguments:                          "arguments",
	KindObject:                             "object",
	KindArray:                              "array",
	KindPair:                               "pair",
	KindSpreadElement:                      "spread_element",
	KindFunctionExpression:                 "function_expression",
	KindGeneratorFunction:                  "generator_function",
	KindArrowFunction:                      "arrow_function",
	KindClass:                              "class",
	KindTemplateString:                     "template_string",
	KindTemplateSubstitution:               "template_substitution",
	KindRegex:                              "regex",
	KindRegexPattern:                       "regex_pattern",
	KindRegexFlags:                         "regex_flags",
	KindString:                             "string",
	KindStringFragment:                     "string_fragment",
	KindEscapeSequence:                     "escape_sequence",
	KindHTMLCharacterReference:             "html_character_reference",
	KindNumber:                             "number",
	KindIdentifier:                         "identifier",
	KindPropertyIdentifier:                 "property_identifier",
	KindShorthandPropertyIdentifier:        "shorthand_property_identifier",
	KindShorthandPropertyIdentifierPattern: "shorthand_property_identifier_pattern",
	KindPrivatePropertyIdentifier:          "private_property_identifier",
	KindThis:                               "this",
	KindSuper:                              "super",
	KindTrue:                               "true",
	KindFalse:                              "false",
	KindNull:                               "null",
	KindUndefined:                          "undefined",
	KindMetaProperty:                       "meta_property",
	KindComputedPropertyName:               "computed_property_name",
	KindNestedIdentifier:                   "nested_identifier",
	KindObjectPattern:                      "object_pattern",
	KindArrayPattern:                       "array_pattern",
	KindAssignmentPattern:                  "assignment_pattern",
	KindObjectAssignmentPattern:            "object_assignment_pattern",
	KindPairPattern:                        "pair_pattern",
	KindRestPattern:                        "rest_pattern",
	KindJSXElement:                         "jsx_element",
	KindJSXOpeningElement:                  "jsx_opening_element",
	KindJSXClosingElement:                  "jsx_closing_element",
	KindJSXSelfClosingElement:              "jsx_self_closing_element",
	KindJSXAttribute:                       "jsx_attribute",
	KindJSXExpression:                      "jsx_expression",
	KindJSXText:                            "jsx_text",
	KindJSXNamespaceName:                   "jsx_namespace_name",
	KindTypeIdentifier:                     "type_identifier",
	KindTypeAnnotation:                     "type_annotation",
	KindOptingTypeAnnotation:               "opting_type_annotation",
	KindOmittingTypeAnnotation:             "omitting_type_annotation",
	KindAddingTypeAnnotation:               "adding_type_annotation",
	KindAssertsAnnotation:                  "asserts_annotation",
	KindTypePredicateAnnotation:            "type_predicate_annotation",
	KindTypeParameters:                     "type_parameters",
	KindTypeArguments:                      "type_arguments",
	KindAsExpression:                       "as_expression",
	KindSatisfiesExpression:                "satisfies_expression",
	KindNonNullExpression:                  "non_null_expression",
	KindTypeAssertion:                      "type_assertion",
	KindInstantiationExpression:            "instantiation_expression",
	KindInterfaceDeclaration:               "interface_declaration",
	KindTypeAliasDeclaration:               "type_alias_declaration",
	KindEnumDeclaration:                    "enum_declaration",
	KindEnumBody:                           "enum_body",
	KindEnumAssignment:                     "enum_assignment",
	KindAmbientDeclaration:                 "ambient_declaration",
	KindModule:                             "module",
	KindInternalModule:                     "internal_module",
	KindAbstractClassDeclaration:           "abstract_class_declaration",
	KindAbstractMethodSignature:            "abstract_method_signature",
	KindMethodSignature:                    "method_signature",
	KindFunctionSignature:                  "function_signature",
	KindIndexSignature:                     "index_signature",
	KindImplementsClause:                   "implements_clause",
	KindAccessibilityModifier:              "accessibility_modifier",
	KindOverrideModifier:                   "override_modifier",
	KindImportAlias:                        "import_alias",
	KindImportRequireClause:                "import_require_clause",
}

// Grammar revisions renamed a few node types; both spellings map to one kind.
//
//nolint:gochecknoglobals // Read-only lookup table.
var kindAliases = map[string]Kind{
	"function":     KindFunctionExpression,
	"jsx_fragment": KindJSXElement,
}

//nolint:gochecknoglobals // Built once from kindNames.
var kindByName = func() map[string]Kind {
	byName := make(map[string]Kind, len(kindNames)+len(kindAliases))
	for kind, name := range kindNames {
		if Kind(kind) != KindUnknown {
			byName[name] = Kind(kind)
		}
	}
	for name, kind := range kindAliases {
		byName[name] = kind
	}
	return byName
}()

// KindOf returns the kind for a grammar node type name, or KindUnknown.
func KindOf(typeName string) Kind {
	return kindByName[typeName]
}

// String returns the grammar node type name of the kind.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// IsTypeAnnotation reports whether k is one of the annotation kinds that
// attach a type to a binding, parameter or return position.
func (k Kind) IsTypeAnnotation() bool {
	switch k {
	case KindTypeAnnotation, KindOptingTypeAnnotation, KindOmittingTypeAnnotation,
		KindAddingTypeAnnotation, KindAssertsAnnotation, KindTypePredicateAnnotation:
		return true
	default:
		return false
	}
}

// IsFunctionLike reports whether k declares a parameter list.
func (k Kind) IsFunctionLike() bool {
	switch k {
	case KindFunctionDeclaration, KindGeneratorFunctionDeclaration, KindFunctionExpression,
		KindGeneratorFunction, KindArrowFunction, KindMethodDefinition, KindFunctionSignature,
		KindMethodSignature, KindAbstractMethodSignature:
		return true
	default:
		return false
	}
}

// IsClassLike reports whether k is a class declaration or expression.
func (k Kind) IsClassLike() bool {
	return k == KindClassDeclaration || k == KindClass || k == KindAbstractClassDeclaration
}
