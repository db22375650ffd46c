// Package scan is a small TypeScript tokenizer for locating keywords and
// punctuation inside a node's byte range, below the granularity of the syntax
// tree. It does not build a tree and never fails: unrecognized input is
// returned as KindOther tokens.
package scan

// Kind classifies a token.
type Kind uint8

// Token kinds. Keywords that matter to type erasure get their own kind; every
// other word is KindIdent.
const (
	KindOther Kind = iota

	KindIdent
	KindPrivateName
	KindNumber
	KindString
	KindTemplate

	// Keywords.
	KindAbstract
	KindAs
	KindConst
	KindDeclare
	KindEnum
	KindImplements
	KindOverride
	KindPrivate
	KindProtected
	KindPublic
	KindReadonly
	KindSatisfies
	KindStatic
	KindType

	// Punctuation.
	KindArrow
	KindAssign
	KindAt
	KindBang
	KindColon
	KindComma
	KindDot
	KindEllipsis
	KindLBrace
	KindLBracket
	KindLParen
	KindOperator
	KindQuestion
	KindQuestionDot
	KindRBrace
	KindRBracket
	KindRParen
	KindSemicolon

	kindCount
)

//nolint:gochecknoglobals // Read-only lookup table.
var kindNames = [kindCount]string{
	KindOther:       "Other",
	KindIdent:       "Ident",
	KindPrivateName: "PrivateName",
	KindNumber:      "Number",
	KindString:      "String",
	KindTemplate:    "Template",
	KindAbstract:    "abstract",
	KindAs:          "as",
	KindConst:       "const",
	KindDeclare:     "declare",
	KindEnum:        "enum",
	KindImplements:  "implements",
	KindOverride:    "override",
	KindPrivate:     "private",
	KindProtected:   "protected",
	KindPublic:      "public",
	KindReadonly:    "readonly",
	KindSatisfies:   "satisfies",
	KindStatic:      "static",
	KindType:        "type",
	KindArrow:       "=>",
	KindAssign:      "=",
	KindAt:          "@",
	KindBang:        "!",
	KindColon:       ":",
	KindComma:       ",",
	KindDot:         ".",
	KindEllipsis:    "...",
	KindLBrace:      "{",
	KindLBracket:    "[",
	KindLParen:      "(",
	KindOperator:    "Operator",
	KindQuestion:    "?",
	KindQuestionDot: "?.",
	KindRBrace:      "}",
	KindRBracket:    "]",
	KindRParen:      ")",
	KindSemicolon:   ";",
}

// String returns the keyword or punctuation spelling for fixed tokens and a
// descriptive name for the rest.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsKeyword reports whether k is one of the contextual keywords the
// tokenizer distinguishes from plain identifiers.
func (k Kind) IsKeyword() bool {
	return k >= KindAbstract && k <= KindType
}

// IsAccessibility reports whether k is public, private or protected.
func (k Kind) IsAccessibility() bool {
	return k == KindPublic || k == KindPrivate || k == KindProtected
}

//nolint:gochecknoglobals // Read-only lookup table.
var keywords = map[string]Kind{
	"abstract":   KindAbstract,
	"as":         KindAs,
	"const":      KindConst,
	"declare":    KindDeclare,
	"enum":       KindEnum,
	"implements": KindImplements,
	"override":   KindOverride,
	"private":    KindPrivate,
	"protected":  KindProtected,
	"public":     KindPublic,
	"readonly":   KindReadonly,
	"satisfies":  KindSatisfies,
	"static":     KindStatic,
	"type":       KindType,
}

// LookupIdent returns the keyword kind for word, or KindIdent.
func LookupIdent(word string) Kind {
	if kind, ok := keywords[word]; ok {
		return kind
	}
	return KindIdent
}

// Token is a lexical token. Start and End are byte offsets relative to the
// scanned fragment, half-open.
type Token struct {
	Kind  Kind
	Start int
	End   int
	Text  string
}

// Len returns the token length in bytes.
func (t Token) Len() int {
	return t.End - t.Start
}

// Shift returns t with its offsets moved by delta, used to translate
// fragment-relative positions back into source offsets.
func (t Token) Shift(delta int) Token {
	t.Start += delta
	t.End += delta
	return t
}
