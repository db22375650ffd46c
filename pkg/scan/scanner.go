package scan

import (
	"iter"
	"unicode"
	"unicode/utf8"
)

// Scan returns the tokens of fragment in source order. Whitespace and
// comments are skipped. String and template literals are single tokens, so
// punctuation inside them is never reported.
//
// Regular expression literals are not recognized: '/' always scans as an
// operator. The tokenizer is only run over ranges the syntax tree has already
// classified, which never start inside a regular expression.
func Scan(fragment string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		s := scanner{src: fragment}
		for {
			tok, ok := s.next()
			if !ok || !yield(tok) {
				return
			}
		}
	}
}

// First returns the first token of fragment.
func First(fragment string) (Token, bool) {
	for tok := range Scan(fragment) {
		return tok, true
	}
	return Token{}, false
}

// FirstOf returns the first token of fragment whose kind is one of kinds.
func FirstOf(fragment string, kinds ...Kind) (Token, bool) {
	for tok := range Scan(fragment) {
		for _, k := range kinds {
			if tok.Kind == k {
				return tok, true
			}
		}
	}
	return Token{}, false
}

// Last returns the last token of fragment.
func Last(fragment string) (Token, bool) {
	var (
		last  Token
		found bool
	)
	for tok := range Scan(fragment) {
		last, found = tok, true
	}
	return last, found
}

// All collects the tokens of fragment into a slice.
func All(fragment string) []Token {
	var toks []Token
	for tok := range Scan(fragment) {
		toks = append(toks, tok)
	}
	return toks
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) peek(offset int) byte {
	if s.pos+offset < len(s.src) {
		return s.src[s.pos+offset]
	}
	return 0
}

func (s *scanner) token(kind Kind, start int) (Token, bool) {
	return Token{Kind: kind, Start: start, End: s.pos, Text: s.src[start:s.pos]}, true
}

func (s *scanner) next() (Token, bool) {
	s.skipTrivia()
	if s.pos >= len(s.src) {
		return Token{}, false
	}

	start := s.pos
	ch := s.src[s.pos]

	switch {
	case isIdentStart(ch):
		s.readIdent()
		return s.token(LookupIdent(s.src[start:s.pos]), start)
	case ch >= utf8.RuneSelf:
		r, size := utf8.DecodeRuneInString(s.src[s.pos:])
		s.pos += size
		if unicode.IsLetter(r) {
			s.readIdent()
			return s.token(KindIdent, start)
		}
		return s.token(KindOther, start)
	case isDigit(ch), ch == '.' && isDigit(s.peek(1)):
		s.readNumber()
		return s.token(KindNumber, start)
	}

	s.pos++

	switch ch {
	case '"', '\'':
		s.readString(ch)
		return s.token(KindString, start)
	case '`':
		s.readTemplate()
		return s.token(KindTemplate, start)
	case '#':
		if s.pos < len(s.src) && (isIdentStart(s.src[s.pos]) || s.src[s.pos] >= utf8.RuneSelf) {
			s.readIdent()
			return s.token(KindPrivateName, start)
		}
		return s.token(KindOther, start)
	case ',':
		return s.token(KindComma, start)
	case ';':
		return s.token(KindSemicolon, start)
	case ':':
		return s.token(KindColon, start)
	case '(':
		return s.token(KindLParen, start)
	case ')':
		return s.token(KindRParen, start)
	case '{':
		return s.token(KindLBrace, start)
	case '}':
		return s.token(KindRBrace, start)
	case '[':
		return s.token(KindLBracket, start)
	case ']':
		return s.token(KindRBracket, start)
	case '@':
		return s.token(KindAt, start)
	case '.':
		if s.peek(0) == '.' && s.peek(1) == '.' {
			s.pos += 2
			return s.token(KindEllipsis, start)
		}
		return s.token(KindDot, start)
	case '?':
		switch {
		case s.peek(0) == '.' && !isDigit(s.peek(1)):
			s.pos++
			return s.token(KindQuestionDot, start)
		case s.peek(0) == '?':
			s.pos++
			if s.peek(0) == '=' {
				s.pos++
			}
			return s.token(KindOperator, start)
		}
		return s.token(KindQuestion, start)
	case '!':
		if s.peek(0) == '=' {
			s.pos++
			if s.peek(0) == '=' {
				s.pos++
			}
			return s.token(KindOperator, start)
		}
		return s.token(KindBang, start)
	case '=':
		switch s.peek(0) {
		case '>':
			s.pos++
			return s.token(KindArrow, start)
		case '=':
			s.readOperator()
			return s.token(KindOperator, start)
		}
		return s.token(KindAssign, start)
	}

	if isOperator(ch) {
		s.readOperator()
		return s.token(KindOperator, start)
	}
	return s.token(KindOther, start)
}

func (s *scanner) skipTrivia() {
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f':
			s.pos++
		case ch == '/' && s.peek(1) == '/':
			s.skipLineComment()
		case ch == '/' && s.peek(1) == '*':
			s.skipBlockComment()
		case ch >= utf8.RuneSelf:
			r, size := utf8.DecodeRuneInString(s.src[s.pos:])
			if !unicode.IsSpace(r) && r != '\uFEFF' {
				return
			}
			s.pos += size
		default:
			return
		}
	}
}

func (s *scanner) skipLineComment() {
	for s.pos < len(s.src) && s.src[s.pos] != '\n' && s.src[s.pos] != '\r' {
		s.pos++
	}
}

func (s *scanner) skipBlockComment() {
	s.pos += 2
	for s.pos < len(s.src) {
		if s.src[s.pos] == '*' && s.peek(1) == '/' {
			s.pos += 2
			return
		}
		s.pos++
	}
}

func (s *scanner) readIdent() {
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		switch {
		case isIdentStart(ch) || isDigit(ch):
			s.pos++
		case ch >= utf8.RuneSelf:
			r, size := utf8.DecodeRuneInString(s.src[s.pos:])
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r) && !unicode.Is(unicode.Mc, r) {
				return
			}
			s.pos += size
		default:
			return
		}
	}
}

func (s *scanner) readNumber() {
	hex := s.peek(0) == '0' && (s.peek(1) == 'x' || s.peek(1) == 'X')
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		switch {
		case isDigit(ch) || isLetter(ch) || ch == '_' || ch == '.':
			s.pos++
		case (ch == '+' || ch == '-') && !hex && s.pos > 0 && (s.src[s.pos-1] == 'e' || s.src[s.pos-1] == 'E'):
			s.pos++
		default:
			return
		}
	}
}

// readString consumes a quoted literal after its opening quote. An
// unterminated literal ends at the line break.
func (s *scanner) readString(quote byte) {
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		switch ch {
		case '\\':
			s.pos += 2
			if s.pos > len(s.src) {
				s.pos = len(s.src)
			}
		case quote:
			s.pos++
			return
		case '\n', '\r':
			return
		default:
			s.pos++
		}
	}
}

// readTemplate consumes a template literal after its opening backtick,
// including any substitutions, which are tokenized recursively so that
// braces and backticks inside them balance.
func (s *scanner) readTemplate() {
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		switch {
		case ch == '\\':
			s.pos += 2
			if s.pos > len(s.src) {
				s.pos = len(s.src)
			}
		case ch == '`':
			s.pos++
			return
		case ch == '$' && s.peek(1) == '{':
			s.pos += 2
			s.skipSubstitution()
		default:
			s.pos++
		}
	}
}

func (s *scanner) skipSubstitution() {
	depth := 1
	for {
		tok, ok := s.next()
		if !ok {
			return
		}
		switch tok.Kind {
		case KindLBrace:
			depth++
		case KindRBrace:
			depth--
			if depth == 0 {
				return
			}
		default:
		}
	}
}

func (s *scanner) readOperator() {
	for s.pos < len(s.src) && isOperator(s.src[s.pos]) {
		// Comment openers end the operator run.
		if s.src[s.pos] == '/' && (s.peek(1) == '/' || s.peek(1) == '*') {
			return
		}
		s.pos++
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isIdentStart(ch byte) bool {
	return isLetter(ch) || ch == '_' || ch == '$' || ch == '\\'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isOperator(ch byte) bool {
	switch ch {
	case '+', '-', '*', '/', '%', '&', '|', '^', '~', '<', '>', '=':
		return true
	}
	return false
}
