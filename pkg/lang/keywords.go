package lang

import "strings"

// reservedKeywords lists true language keywords that can never be
// function names. Function-like words (map, where, make, append) are
// deliberately absent: they are legitimate function names in many
// frameworks and filtering them would hide real hallucinations.
var reservedKeywords = newSet(
	// Control flow
	"if", "else", "elseif", "elif", "for", "while", "do", "switch", "case",
	"break", "continue", "return", "yield", "try", "catch", "finally",
	"throw", "throws", "raise",
	// Declarations
	"class", "interface", "trait", "struct", "enum", "function", "fn", "func", "def",
	"const", "let", "var", "static", "async", "await",
	// Modifiers
	"public", "private", "protected", "internal", "final", "abstract",
	"virtual", "override",
	// Literals and special values
	"true", "false", "null", "nil", "none", "undefined", "void",
	// Reserved type names
	"int", "float", "double", "bool", "boolean",
	// Special
	"this", "self", "super",
	// Module/import
	"import", "export", "default", "use", "namespace", "package", "module",
	// Rust
	"mod", "pub", "crate", "impl", "loop", "move", "mut", "ref", "unsafe",
	"extern", "dyn", "box",
	// Go
	"go", "defer", "chan", "select", "range", "type",
)

// IsValidSymbol reports whether name can be a real function or method
// name in the given language: at least two characters and not a reserved
// keyword. The keyword check is case-folded so capitalized forms are
// rejected too.
func IsValidSymbol(name string, l Language) bool {
	if len(name) < 2 {
		return false
	}
	return !reservedKeywords.Has(strings.ToLower(name))
}
