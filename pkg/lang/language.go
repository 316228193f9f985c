// Package lang holds the per-language lexical knowledge used by the
// symbol detector: file-extension detection, call/definition/property
// pattern tables, builtin vocabularies, and reserved-keyword filtering.
//
// Pattern matching is deliberately lexical. The tables trade full parse
// accuracy for speed and uniform coverage across seven languages.
package lang

import (
	"path/filepath"
	"strings"
)

// Language identifies a supported programming language.
type Language string

// String implements fmt.Stringer for toon serialization.
func (l Language) String() string {
	return string(l)
}

const (
	PHP        Language = "php"
	JavaScript Language = "javascript"
	TypeScript Language = "typescript"
	Python     Language = "python"
	CSharp     Language = "csharp"
	Go         Language = "go"
	Rust       Language = "rust"
)

// All lists every supported language in a stable order.
func All() []Language {
	return []Language{PHP, JavaScript, TypeScript, Python, CSharp, Go, Rust}
}

var extensionMap = map[string]Language{
	".php": PHP,
	".js":  JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
	".jsx": JavaScript,
	".ts":  TypeScript,
	".tsx": TypeScript,
	".mts": TypeScript,
	".py":  Python,
	".pyw": Python,
	".cs":  CSharp,
	".go":  Go,
	".rs":  Rust,
}

// Detect maps a file path to its language by extension, case-insensitively.
// The second return value is false when the extension is not recognized.
func Detect(path string) (Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	l, ok := extensionMap[ext]
	return l, ok
}

// Extensions returns the file extensions (including the leading dot)
// associated with a language.
func Extensions(l Language) []string {
	var exts []string
	for ext, lang := range extensionMap {
		if lang == l {
			exts = append(exts, ext)
		}
	}
	return exts
}

// Parse converts a string to a Language. Unknown values return false.
func Parse(s string) (Language, bool) {
	switch strings.ToLower(s) {
	case "php":
		return PHP, true
	case "javascript", "js":
		return JavaScript, true
	case "typescript", "ts":
		return TypeScript, true
	case "python", "py":
		return Python, true
	case "csharp", "c#", "cs":
		return CSharp, true
	case "go", "golang":
		return Go, true
	case "rust", "rs":
		return Rust, true
	}
	return "", false
}
