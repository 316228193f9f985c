// Package confidence scores unresolved symbol references. A high score
// means the reference is likely a genuine hallucination; a low score
// means it is probably a false positive (external library, dynamic
// dispatch, framework convention).
package confidence

import (
	"regexp"
	"strings"

	"mirage/pkg/lang"
)

// Input carries the signals the calculator needs for one candidate.
type Input struct {
	Name       string
	Lang       lang.Language
	Content    string // full file content for context signals
	HasSimilar bool   // a near-miss known name exists (likely typo)
}

// Calculator produces a confidence score in [0.1, 1.0]. It is stateless
// and safe for concurrent use.
type Calculator struct{}

// New creates a confidence calculator.
func New() *Calculator {
	return &Calculator{}
}

var importPatterns = map[lang.Language]*regexp.Regexp{
	lang.PHP:        regexp.MustCompile(`use\s+\w+`),
	lang.JavaScript: regexp.MustCompile(`(?:import|require)\s*\(?`),
	lang.TypeScript: regexp.MustCompile(`(?:import|require)\s*\(?`),
	lang.Python:     regexp.MustCompile(`(?:import|from)\s+\w+`),
	lang.CSharp:     regexp.MustCompile(`using\s+\w+`),
	lang.Go:         regexp.MustCompile(`import\s+`),
	lang.Rust:       regexp.MustCompile(`use\s+\w+`),
}

var externalNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`^get[A-Z]`),
	regexp.MustCompile(`^set[A-Z]`),
	regexp.MustCompile(`^is[A-Z]`),
	regexp.MustCompile(`^has[A-Z]`),
	regexp.MustCompile(`^on[A-Z]`),
	regexp.MustCompile(`^handle[A-Z]`),
	regexp.MustCompile(`^fetch[A-Z]`),
	regexp.MustCompile(`Async$`),
	regexp.MustCompile(`Sync$`),
	regexp.MustCompile(`Callback$`),
	regexp.MustCompile(`Handler$`),
}

var commonVerbPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(get|set|is|has|can|should|will|did|on|before|after)`),
	regexp.MustCompile(`(?i)^(create|update|delete|find|fetch|load|save|store)`),
	regexp.MustCompile(`(?i)^(handle|process|execute|perform|run|start|stop)`),
	regexp.MustCompile(`(?i)^(init|setup|configure|validate|transform|convert)`),
	regexp.MustCompile(`(?i)^(add|remove|clear|reset|enable|disable)`),
}

var camelInSnakeLang = regexp.MustCompile(`^[a-z]+[A-Z]`)

// Score computes the confidence for one unresolved name. Starts at 1.0,
// applies each adjustment independently of the others, and clamps to
// [0.1, 1.0] at the end. Compound conditions stack without
// normalization.
func (c *Calculator) Score(in Input) float64 {
	score := 1.0

	if lang.IsCommonExternal(in.Name) {
		score -= 0.3
	}
	if hasManyImports(in.Content, in.Lang) {
		score -= 0.15
	}
	if lang.HasDynamicPatterns(in.Content, in.Lang) {
		score -= 0.25
	}
	if in.HasSimilar {
		// A near-miss suggests a typo of a real symbol: still worth
		// flagging, slightly more confidently.
		score += 0.1
	}
	if len(in.Name) <= 3 {
		score -= 0.2
	}
	if looksExternal(in.Name) {
		score -= 0.2
	}
	if isCommonVerbPattern(in.Name) {
		score -= 0.15
	}
	if namingMismatch(in.Name, in.Lang) {
		score -= 0.1
	}

	return clamp(score)
}

func clamp(v float64) float64 {
	if v < 0.1 {
		return 0.1
	}
	if v > 1.0 {
		return 1.0
	}
	return v
}

// hasManyImports reports whether the file carries more than 5
// import/module-reference statements. Many external dependencies
// correlate with more unresolved-but-legitimate names.
func hasManyImports(content string, l lang.Language) bool {
	re, ok := importPatterns[l]
	if !ok {
		return false
	}
	return len(re.FindAllStringIndex(content, 6)) > 5
}

// looksExternal reports whether the name follows a
// getter/setter/predicate/event-handler convention common in external
// library surfaces.
func looksExternal(name string) bool {
	for _, re := range externalNamePatterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// isCommonVerbPattern reports whether the name starts with a CRUD or
// lifecycle verb prefix.
func isCommonVerbPattern(name string) bool {
	for _, re := range commonVerbPatterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// namingMismatch reports camelCase in a snake_case-idiomatic language or
// snake_case in a camelCase-idiomatic language.
func namingMismatch(name string, l lang.Language) bool {
	switch l {
	case lang.Python, lang.Rust, lang.Go:
		return camelInSnakeLang.MatchString(name)
	case lang.PHP, lang.JavaScript, lang.TypeScript, lang.CSharp:
		return strings.Contains(name, "_") && !strings.HasPrefix(name, "_")
	}
	return false
}
