package transform

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/tsblank/pkg/scan"
	"github.com/yaklabco/tsblank/pkg/tsast"
)

// enum rewrites an enum declaration into the object initialization it
// compiles to:
//
//	enum Foo { A, B = 5 }
//
// becomes
//
//	var  Foo; (function (Foo) { Foo[Foo["A"] = 0] = "A"; Foo[Foo["B"] = 5] = "B" })(Foo || (Foo = {}));
//
// Text between the tokens, comments included, is kept in place. The "enum"
// keyword is overwritten with "var " so the rest of the header only needs
// rewrites of the name. "const" is blanked; const enums are emitted like
// any other enum.
func (e *eraser) enum(n, _ *tsast.Node) ([]*tsast.Node, error) {
	name := n.Child(tsast.KindIdentifier)
	body := n.Child(tsast.KindEnumBody)
	if name == nil || body == nil {
		return nil, e.unsupported(n, "enum without name or body")
	}
	enumName := name.Text(e.src)

	if n.Has(tsast.FlagConst) {
		if kw, ok := e.firstTokenOf(n.Start, name.Start, scan.KindConst); ok {
			e.buf.Blank(kw.Start, kw.End)
		}
	}
	kw, ok := e.firstTokenOf(n.Start, name.Start, scan.KindEnum)
	if !ok {
		return nil, e.unsupported(n, "enum without keyword")
	}
	e.buf.ReplaceSameLength(kw.Start, kw.End, "var ")
	e.buf.Rewrite(name.Start, name.End, fmt.Sprintf("%s; (function (%s)", enumName, enumName))

	lastValue := -1.0
	for _, member := range body.Children {
		key, init := member, (*tsast.Node)(nil)
		if member.Kind == tsast.KindEnumAssignment {
			key = member.FirstChild()
			if len(member.Children) > 1 {
				init = member.LastChild()
			}
		}

		keyName, err := e.enumKey(enumName, key)
		if err != nil {
			return nil, err
		}

		if v, ok := e.numericValue(init); ok {
			lastValue = v
		} else {
			lastValue++
		}

		quoted := quoteJS(keyName)
		e.buf.Rewrite(member.Start, member.End, fmt.Sprintf("%s[%s[%s] = %s] = %s",
			enumName, enumName, quoted, formatNumber(lastValue), quoted))

		if comma, ok := e.firstToken(member.End, body.End); ok && comma.Kind == scan.KindComma {
			e.buf.Rewrite(comma.Start, comma.End, ";")
		}
	}

	e.buf.Insert(n.End, fmt.Sprintf(")(%s || (%s = {}));", enumName, enumName))
	return nil, nil
}

// enumKey returns the member name of an identifier or string key.
func (e *eraser) enumKey(enumName string, key *tsast.Node) (string, error) {
	if key == nil {
		return "", &EnumMemberError{Enum: enumName, Member: "<missing>", Kind: "empty"}
	}
	text := key.Text(e.src)

	switch key.Kind {
	case tsast.KindPropertyIdentifier, tsast.KindIdentifier:
		return text, nil
	case tsast.KindString:
		s, err := scan.Unquote(text)
		if err != nil {
			return "", fmt.Errorf("enum %s member %s: %w", enumName, text, err)
		}
		return s, nil
	default:
		return "", &EnumMemberError{
			Enum:   enumName,
			Member: text,
			Kind:   key.Name(),
			Pos:    e.position(key.Start),
		}
	}
}

// numericValue returns the value of a numeric literal initializer,
// optionally signed.
func (e *eraser) numericValue(init *tsast.Node) (float64, bool) {
	if init == nil {
		return 0, false
	}
	switch init.Kind {
	case tsast.KindNumber:
		return parseNumber(init.Text(e.src))
	case tsast.KindUnaryExpression:
		operand := init.FirstChild()
		if operand == nil || operand.Kind != tsast.KindNumber {
			return 0, false
		}
		v, ok := parseNumber(operand.Text(e.src))
		if !ok {
			return 0, false
		}
		switch op := strings.TrimSpace(e.src[init.Start:operand.Start]); op {
		case "-":
			return -v, true
		case "+":
			return v, true
		}
	}
	return 0, false
}

// parseNumber parses a JavaScript numeric literal. BigInt literals are not
// numbers.
func parseNumber(lit string) (float64, bool) {
	lit = strings.ReplaceAll(lit, "_", "")
	if strings.HasSuffix(lit, "n") {
		return 0, false
	}
	if len(lit) > 1 && lit[0] == '0' {
		switch lit[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			v, err := strconv.ParseUint(lit, 0, 64)
			if err != nil {
				return 0, false
			}
			return float64(v), true
		}
	}
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// formatNumber renders v as JavaScript prints it for the values an enum
// counter reaches.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// quoteJS returns s as a double-quoted JavaScript string literal.
func quoteJS(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\x%02x`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
