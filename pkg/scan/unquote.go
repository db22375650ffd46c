package scan

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrBadString is returned by Unquote for text that is not a complete
// single- or double-quoted literal.
var ErrBadString = errors.New("malformed string literal")

// Unquote decodes a single- or double-quoted string literal, including
// escape sequences and line continuations.
func Unquote(lit string) (string, error) {
	if len(lit) < 2 {
		return "", fmt.Errorf("%w: %q", ErrBadString, lit)
	}
	quote := lit[0]
	if (quote != '"' && quote != '\'') || lit[len(lit)-1] != quote {
		return "", fmt.Errorf("%w: %q", ErrBadString, lit)
	}
	body := lit[1 : len(lit)-1]
	if !strings.ContainsRune(body, '\\') {
		return body, nil
	}

	var out strings.Builder
	out.Grow(len(body))
	for i := 0; i < len(body); {
		ch := body[i]
		if ch != '\\' {
			out.WriteByte(ch)
			i++
			continue
		}
		if i+1 >= len(body) {
			return "", fmt.Errorf("%w: trailing backslash in %q", ErrBadString, lit)
		}
		n, err := decodeEscape(&out, body[i+1:])
		if err != nil {
			return "", fmt.Errorf("%w: %s in %q", ErrBadString, err.Error(), lit)
		}
		i += 1 + n
	}
	return out.String(), nil
}

// decodeEscape writes the value of the escape sequence at the start of rest
// (just after the backslash) and returns how many bytes it consumed.
func decodeEscape(out *strings.Builder, rest string) (int, error) {
	ch := rest[0]
	switch ch {
	case 'n':
		out.WriteByte('\n')
	case 't':
		out.WriteByte('\t')
	case 'r':
		out.WriteByte('\r')
	case 'b':
		out.WriteByte('\b')
	case 'f':
		out.WriteByte('\f')
	case 'v':
		out.WriteByte('\v')
	case '0':
		if len(rest) > 1 && isDigit(rest[1]) {
			return 0, errors.New("octal escape")
		}
		out.WriteByte(0)
	case '\r':
		if len(rest) > 1 && rest[1] == '\n' {
			return 2, nil
		}
	case '\n':
	case 'x':
		if len(rest) < 3 {
			return 0, errors.New(`short \x escape`)
		}
		v, err := strconv.ParseUint(rest[1:3], 16, 8)
		if err != nil {
			return 0, errors.New(`bad \x escape`)
		}
		out.WriteRune(rune(v))
		return 3, nil
	case 'u':
		return decodeUnicodeEscape(out, rest)
	default:
		r, size := utf8.DecodeRuneInString(rest)
		// U+2028 and U+2029 are line continuations like '\n'.
		if r != '\u2028' && r != '\u2029' {
			out.WriteRune(r)
		}
		return size, nil
	}
	return 1, nil
}

func decodeUnicodeEscape(out *strings.Builder, rest string) (int, error) {
	if len(rest) > 1 && rest[1] == '{' {
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return 0, errors.New(`unterminated \u{} escape`)
		}
		v, err := strconv.ParseUint(rest[2:end], 16, 32)
		if err != nil || v > utf8.MaxRune {
			return 0, errors.New(`bad \u{} escape`)
		}
		out.WriteRune(rune(v))
		return end + 1, nil
	}
	if len(rest) < 5 {
		return 0, errors.New(`short \u escape`)
	}
	v, err := strconv.ParseUint(rest[1:5], 16, 16)
	if err != nil {
		return 0, errors.New(`bad \u escape`)
	}
	consumed := 5
	r := rune(v)
	// Combine a surrogate pair written as two escapes.
	if r >= 0xD800 && r < 0xDC00 && len(rest) >= 11 && rest[5] == '\\' && rest[6] == 'u' {
		if lo, err := strconv.ParseUint(rest[7:11], 16, 16); err == nil && lo >= 0xDC00 && lo < 0xE000 {
			r = (r-0xD800)<<10 + (rune(lo) - 0xDC00) + 0x10000
			consumed = 11
		}
	}
	out.WriteRune(r)
	return consumed, nil
}
