// Package langdetect decides which inputs are TypeScript and which grammar
// parses them. It classifies file paths, Markdown fence info strings and
// untagged code snippets using go-enry.
package langdetect

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language is a detected source language.
type Language string

// Languages tsblank distinguishes.
const (
	Unknown    Language = ""
	TypeScript Language = "typescript"
	TSX        Language = "tsx"
	JavaScript Language = "javascript"
)

// IsTypeScript reports whether l is transformed by tsblank.
func (l Language) IsTypeScript() bool {
	return l == TypeScript || l == TSX
}

// OutputFenceTag is the fence tag used after transformation.
func (l Language) OutputFenceTag() string {
	if l == TSX {
		return "jsx"
	}
	return "js"
}

//nolint:gochecknoglobals // Read-only lookup table.
var extensionLanguages = map[string]Language{
	".ts":  TypeScript,
	".mts": TypeScript,
	".cts": TypeScript,
	".tsx": TSX,
}

// FromPath classifies a file by extension. go-enry resolves the
// extensions it knows; the module extensions it may not are looked up
// directly.
func FromPath(path string) Language {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := extensionLanguages[ext]; ok {
		return lang
	}
	lang, _ := enry.GetLanguageByExtension(path)
	return fromEnry(lang)
}

// IsDeclarationFile reports whether path is a .d.ts, .d.mts or .d.cts file.
func IsDeclarationFile(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	for _, suffix := range []string{".d.ts", ".d.mts", ".d.cts"} {
		if strings.HasSuffix(base, suffix) {
			return true
		}
	}
	return false
}

// FromFenceInfo classifies the info string of a Markdown code fence. Only
// the first word counts; attributes after it are ignored.
func FromFenceInfo(info string) Language {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return Unknown
	}
	tag := strings.ToLower(strings.Trim(fields[0], "{}."))
	switch tag {
	case "ts", "typescript", "mts", "cts":
		return TypeScript
	case "tsx":
		return TSX
	}
	lang, ok := enry.GetLanguageByAlias(tag)
	if !ok {
		return Unknown
	}
	return fromEnry(lang)
}

func fromEnry(lang string) Language {
	switch lang {
	case "TypeScript":
		return TypeScript
	case "TSX":
		return TSX
	case "JavaScript":
		return JavaScript
	default:
		return Unknown
	}
}

//nolint:gochecknoglobals // Compiled once.
var typeSyntax = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*(export\s+)?(interface|type)\s+[A-Za-z_$][\w$]*\s*(<[^>]*>)?\s*[={]`),
	regexp.MustCompile(`(?m)^\s*(export\s+)?(const\s+)?enum\s+[A-Za-z_$][\w$]*\s*\{`),
	regexp.MustCompile(`\)\s*:\s*[A-Za-z_$][\w$.<>\[\]| ]*\s*(\{|=>)`),
	regexp.MustCompile(`\b(let|const|var)\s+[A-Za-z_$][\w$]*\s*:\s*[A-Za-z_$]`),
	regexp.MustCompile(`\b(private|protected|public|readonly)\s+[A-Za-z_$#]`),
	regexp.MustCompile(`\bas\s+(const|any|unknown|string|number)\b`),
	regexp.MustCompile(`\bimport\s+type\b`),
}

// candidates are the languages the classifier chooses between.
//
//nolint:gochecknoglobals // Read-only candidate list.
var candidates = []string{"TypeScript", "TSX", "JavaScript", "JSON", "Shell", "Go", "Python"}

// Detect classifies an untagged snippet. Syntax only TypeScript has
// decides first; otherwise the go-enry classifier must be confident.
// JSX in TypeScript yields TSX.
func Detect(content []byte) Language {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return Unknown
	}
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		if l := fromEnry(lang); l != Unknown {
			return l
		}
		return Unknown
	}

	for _, re := range typeSyntax {
		if re.Match(content) {
			if looksLikeJSX(content) {
				return TSX
			}
			return TypeScript
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe {
		return fromEnry(lang)
	}
	return Unknown
}

func looksLikeJSX(content []byte) bool {
	return bytes.Contains(content, []byte("</")) || bytes.Contains(content, []byte("/>"))
}
