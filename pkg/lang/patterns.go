package lang

import "regexp"

// PropertyPattern matches a property access. Disallow lists runes that
// must not be the first non-space character after the match; this stands
// in for lookahead (RE2 has none) so that `obj.name(` is treated as a
// call, not a property.
type PropertyPattern struct {
	Regexp   *regexp.Regexp
	Disallow string
}

var callPatterns = map[Language][]*regexp.Regexp{
	PHP: {
		// Simple function call: functionName(...)
		regexp.MustCompile(`\b([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`),
		// Method call: $obj->methodName(...)
		regexp.MustCompile(`->\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`),
		// Static call: ClassName::methodName(...) - capture method only
		regexp.MustCompile(`(?:[A-Z][a-zA-Z0-9_]*)::([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`),
		// Null-safe method call: $obj?->methodName(...)
		regexp.MustCompile(`\?->\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`),
	},
	JavaScript: {
		regexp.MustCompile(`\b([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\(`),
		regexp.MustCompile(`\.\s*([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\(`),
		// Optional chaining: obj?.methodName(...)
		regexp.MustCompile(`\?\.\s*([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\(`),
	},
	TypeScript: {
		regexp.MustCompile(`\b([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\(`),
		regexp.MustCompile(`\.\s*([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\(`),
		regexp.MustCompile(`\?\.\s*([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\(`),
		// Generic call: methodName<Type>(...)
		regexp.MustCompile(`\b([a-zA-Z_$][a-zA-Z0-9_$]*)\s*<[^>]+>\s*\(`),
	},
	Python: {
		regexp.MustCompile(`\b([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`),
		regexp.MustCompile(`\.\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`),
	},
	CSharp: {
		regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\s*\(`),
		regexp.MustCompile(`\.\s*([A-Za-z_][A-Za-z0-9_]*)\s*\(`),
		// Static call: ClassName.MethodName(...) - capture method only
		regexp.MustCompile(`(?:[A-Z][A-Za-z0-9_]*)\s*\.\s*([A-Za-z_][A-Za-z0-9_]*)\s*\(`),
		regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\s*<[^>]+>\s*\(`),
		regexp.MustCompile(`await\s+(?:\w+\s*\.\s*)?([A-Za-z_][A-Za-z0-9_]*)\s*\(`),
		regexp.MustCompile(`\?\.\s*([A-Za-z_][A-Za-z0-9_]*)\s*\(`),
	},
	Go: {
		regexp.MustCompile(`\b([a-z][a-zA-Z0-9]*)\s*\(`),
		regexp.MustCompile(`\b([A-Z][a-zA-Z0-9]*)\s*\(`),
		regexp.MustCompile(`\.\s*([A-Z][a-zA-Z0-9]*)\s*\(`),
		// Package call: pkg.FunctionName(...) - capture function only
		regexp.MustCompile(`(?:[a-z][a-zA-Z0-9]*)\s*\.\s*([A-Z][a-zA-Z0-9]*)\s*\(`),
	},
	Rust: {
		regexp.MustCompile(`\b([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`),
		regexp.MustCompile(`\.\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`),
		// Turbofish: function_name::<Type>(...)
		regexp.MustCompile(`\b([a-zA-Z_][a-zA-Z0-9_]*)\s*::\s*<[^>]+>\s*\(`),
		// Associated function: Type::function_name(...) - capture function only
		regexp.MustCompile(`(?:[A-Z][a-zA-Z0-9]*)\s*::\s*([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`),
		// Macro call: macro_name!(...)
		regexp.MustCompile(`\b([a-z_][a-z0-9_]*)\s*!\s*[(\[]`),
	},
}

var definitionPatterns = map[Language][]*regexp.Regexp{
	PHP: {
		regexp.MustCompile(`function\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`),
		regexp.MustCompile(`(?:public|private|protected)\s+(?:static\s+)?function\s+([a-zA-Z_][a-zA-Z0-9_]*)\s*\(`),
	},
	JavaScript: {
		regexp.MustCompile(`function\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\(`),
		regexp.MustCompile(`(?:const|let|var)\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*=\s*(?:async\s*)?\([^)]*\)\s*=>`),
		regexp.MustCompile(`(?:const|let|var)\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*=\s*(?:async\s+)?function`),
		regexp.MustCompile(`(?m)^\s*(?:async\s+)?([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\([^)]*\)\s*\{`),
		regexp.MustCompile(`(?:static\s+)?(?:async\s+)?([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\([^)]*\)\s*\{`),
	},
	TypeScript: {
		regexp.MustCompile(`function\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*(?:<[^>]+>)?\s*\(`),
		regexp.MustCompile(`(?:const|let|var)\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*=\s*(?:async\s*)?\([^)]*\)\s*=>`),
		regexp.MustCompile(`(?:const|let|var)\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*=\s*(?:async\s+)?function`),
		regexp.MustCompile(`function\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*(?:<[^>]+>)?\s*\([^)]*\)\s*:\s*\w+`),
		regexp.MustCompile(`(?m)^\s*([a-zA-Z_$][a-zA-Z0-9_$]*)\s*(?:<[^>]+>)?\s*\([^)]*\)\s*:\s*\w+\s*;`),
		regexp.MustCompile(`(?:public|private|protected)\s+(?:static\s+)?(?:async\s+)?([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\(`),
		regexp.MustCompile(`static\s+(?:async\s+)?([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\(`),
		regexp.MustCompile(`async\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\([^)]*\)\s*:\s*\w+`),
		regexp.MustCompile(`abstract\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\([^)]*\)\s*:\s*\w+`),
		regexp.MustCompile(`(?m)^\s+([a-zA-Z_$][a-zA-Z0-9_$]*)\s*\([^)]*\)\s*:\s*\w+[^;]*\{`),
	},
	Python: {
		regexp.MustCompile(`def\s+([a-z_][a-z0-9_]*)\s*\(`),
		regexp.MustCompile(`async\s+def\s+([a-z_][a-z0-9_]*)\s*\(`),
		regexp.MustCompile(`class\s+([A-Z][a-zA-Z0-9_]*)\s*[:\(]`),
	},
	CSharp: {
		regexp.MustCompile(`(?:public|private|protected|internal)\s+(?:static\s+)?(?:async\s+)?(?:override\s+)?(?:virtual\s+)?(?:abstract\s+)?(?:\w+(?:<[^>]+>)?)\s+([A-Z][A-Za-z0-9_]*)\s*(?:<[^>]+>)?\s*\(`),
		regexp.MustCompile(`(?:public|private|protected|internal)\s+([A-Z][A-Za-z0-9_]*)\s*\([^)]*\)\s*(?::|{)`),
		regexp.MustCompile(`(?:public|private|protected|internal)\s+(?:static\s+)?(?:\w+(?:<[^>]+>)?)\s+([A-Z][A-Za-z0-9_]*)\s*\([^)]*\)\s*=>`),
		regexp.MustCompile(`(?m)^\s*(?:\w+(?:<[^>]+>)?)\s+([A-Z][A-Za-z0-9_]*)\s*\([^)]*\)\s*;`),
	},
	Go: {
		regexp.MustCompile(`func\s+([a-zA-Z][a-zA-Z0-9]*)\s*\(`),
		regexp.MustCompile(`func\s+\([^)]+\)\s+([A-Z][a-zA-Z0-9]*)\s*\(`),
		regexp.MustCompile(`type\s+([A-Z][a-zA-Z0-9]*)\s+struct\s*\{`),
		regexp.MustCompile(`type\s+([A-Z][a-zA-Z0-9]*)\s+interface\s*\{`),
	},
	Rust: {
		regexp.MustCompile(`fn\s+([a-z_][a-z0-9_]*)\s*(?:<[^>]+>)?\s*\(`),
		regexp.MustCompile(`pub\s+(?:async\s+)?fn\s+([a-z_][a-z0-9_]*)\s*(?:<[^>]+>)?\s*\(`),
		regexp.MustCompile(`(?:pub\s+)?struct\s+([A-Z][a-zA-Z0-9]*)`),
		regexp.MustCompile(`(?:pub\s+)?enum\s+([A-Z][a-zA-Z0-9]*)`),
		regexp.MustCompile(`(?:pub\s+)?trait\s+([A-Z][a-zA-Z0-9]*)`),
		regexp.MustCompile(`impl(?:<[^>]+>)?\s+([A-Z][a-zA-Z0-9]*)`),
	},
}

var propertyPatterns = map[Language][]PropertyPattern{
	PHP: {
		{Regexp: regexp.MustCompile(`(?:public|private|protected)\s+\$([a-zA-Z_][a-zA-Z0-9_]*)`)},
		{Regexp: regexp.MustCompile(`\$this\s*->\s*([a-zA-Z_][a-zA-Z0-9_]*)`)},
	},
	JavaScript: {
		{Regexp: regexp.MustCompile(`this\s*\.\s*([a-zA-Z_$][a-zA-Z0-9_$]*)`)},
		{Regexp: regexp.MustCompile(`\.([a-zA-Z_$][a-zA-Z0-9_$]*)`), Disallow: "("},
	},
	TypeScript: {
		{Regexp: regexp.MustCompile(`this\s*\.\s*([a-zA-Z_$][a-zA-Z0-9_$]*)`)},
		{Regexp: regexp.MustCompile(`\.([a-zA-Z_$][a-zA-Z0-9_$]*)`), Disallow: "<("},
	},
	Python: {
		{Regexp: regexp.MustCompile(`self\s*\.\s*([a-z_][a-z0-9_]*)\s*=`)},
		{Regexp: regexp.MustCompile(`self\s*\.\s*([a-z_][a-z0-9_]*)`)},
	},
	CSharp: {
		{Regexp: regexp.MustCompile(`(?:public|private|protected|internal)\s+(?:static\s+)?(?:virtual\s+)?(?:\w+(?:<[^>]+>)?)\s+([A-Z][A-Za-z0-9_]*)\s*\{\s*get`)},
		{Regexp: regexp.MustCompile(`(?:private|protected)\s+(?:readonly\s+)?(?:\w+(?:<[^>]+>)?)\s+(_[a-z][A-Za-z0-9_]*)\s*[;=]`)},
	},
	Go: {
		{Regexp: regexp.MustCompile(`\.([A-Z][a-zA-Z0-9]*)\b`), Disallow: "("},
	},
	Rust: {
		{Regexp: regexp.MustCompile(`\.([a-z_][a-z0-9_]*)`), Disallow: "(<"},
	},
}

var dynamicPatterns = map[Language][]*regexp.Regexp{
	PHP: {
		regexp.MustCompile(`\$\w+\s*\(`),          // $variable()
		regexp.MustCompile(`\$this\s*->\s*\$\w+`), // $this->$variable
		regexp.MustCompile(`call_user_func`),
		regexp.MustCompile(`call_user_func_array`),
		regexp.MustCompile(`__call\s*\(`),
		regexp.MustCompile(`ReflectionMethod`),
		regexp.MustCompile(`ReflectionClass`),
		regexp.MustCompile(`method_exists`),
		regexp.MustCompile(`property_exists`),
	},
	JavaScript: {
		regexp.MustCompile(`\[\s*\w+\s*\]\s*\(`), // obj[variable]()
		regexp.MustCompile(`eval\s*\(`),
		regexp.MustCompile(`Function\s*\(`),
		regexp.MustCompile(`apply\s*\(`),
		regexp.MustCompile(`call\s*\(`),
		regexp.MustCompile(`Reflect\.`),
		regexp.MustCompile(`Proxy\s*\(`),
	},
	TypeScript: {
		regexp.MustCompile(`\[\s*\w+\s*\]\s*\(`),
		regexp.MustCompile(`eval\s*\(`),
		regexp.MustCompile(`Function\s*\(`),
		regexp.MustCompile(`apply\s*\(`),
		regexp.MustCompile(`call\s*\(`),
		regexp.MustCompile(`Reflect\.`),
		regexp.MustCompile(`Proxy\s*\(`),
		regexp.MustCompile(`as\s+any`),
		regexp.MustCompile(`as\s+unknown`),
	},
	Python: {
		regexp.MustCompile(`getattr\s*\(`),
		regexp.MustCompile(`setattr\s*\(`),
		regexp.MustCompile(`hasattr\s*\(`),
		regexp.MustCompile(`__getattr__`),
		regexp.MustCompile(`__getattribute__`),
		regexp.MustCompile(`exec\s*\(`),
		regexp.MustCompile(`eval\s*\(`),
		regexp.MustCompile(`globals\s*\(`),
		regexp.MustCompile(`locals\s*\(`),
	},
	CSharp: {
		regexp.MustCompile(`GetMethod\s*\(`),
		regexp.MustCompile(`GetProperty\s*\(`),
		regexp.MustCompile(`Invoke\s*\(`),
		regexp.MustCompile(`typeof\s*\(`),
		regexp.MustCompile(`GetType\s*\(`),
		regexp.MustCompile(`Activator\.CreateInstance`),
		regexp.MustCompile(`dynamic\s+`),
		regexp.MustCompile(`ExpandoObject`),
	},
	Go: {
		regexp.MustCompile(`reflect\.`),
		regexp.MustCompile(`interface\s*\{\s*\}`),
	},
	Rust: {
		regexp.MustCompile(`Any`),
		regexp.MustCompile(`downcast`),
		regexp.MustCompile(`type_id`),
	},
}

// CallPatterns returns the compiled call-site patterns for a language.
func CallPatterns(l Language) []*regexp.Regexp {
	return callPatterns[l]
}

// DefinitionPatterns returns the compiled definition patterns for a language.
func DefinitionPatterns(l Language) []*regexp.Regexp {
	return definitionPatterns[l]
}

// PropertyPatterns returns the compiled property-access patterns for a language.
func PropertyPatterns(l Language) []PropertyPattern {
	return propertyPatterns[l]
}

// DynamicPatterns returns patterns indicating reflective or dynamic-dispatch
// code for a language.
func DynamicPatterns(l Language) []*regexp.Regexp {
	return dynamicPatterns[l]
}

// HasDynamicPatterns reports whether content uses reflective constructs
// (variable-named calls, eval, reflection APIs). Their presence means
// static resolution is unreliable for this file and confidence downstream
// must be reduced.
func HasDynamicPatterns(content string, l Language) bool {
	for _, re := range dynamicPatterns[l] {
		if re.MatchString(content) {
			return true
		}
	}
	return false
}
