// Package extractor turns raw source text into call sites, local
// definitions, and property accesses using the lexical tables in
// pkg/lang. No parsing is involved; accuracy is bounded by what the
// per-language patterns can express.
package extractor

import (
	"strings"

	"mirage/pkg/lang"
)

// Call is a call site or property access found in source text.
// Line and Column are 1-based. Column is best-effort: string stripping
// shortens lines, so it can drift left of the on-disk position.
type Call struct {
	Name   string `json:"name" toon:"name"`
	Line   int    `json:"line" toon:"line"`
	Column int    `json:"column,omitempty" toon:"column,omitempty"`
}

// Extractor extracts symbols for one language.
type Extractor struct {
	lang lang.Language
}

// New creates an extractor bound to a language.
func New(l lang.Language) *Extractor {
	return &Extractor{lang: l}
}

// Language returns the language this extractor is bound to.
func (e *Extractor) Language() lang.Language {
	return e.lang
}

// Calls extracts function and method call sites from content,
// deduplicated by (name, line) in first-occurrence order. Lines inside
// multi-line comments or docstrings and whole-line comments are skipped;
// static string-literal contents are blanked first so prose inside
// strings never matches.
func (e *Extractor) Calls(content string) []Call {
	if content == "" {
		return nil
	}

	var calls []Call
	seen := make(map[callKey]struct{})
	skip := blockCommentLines(content, e.lang)

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lineNum := i + 1
		if _, ok := skip[lineNum]; ok {
			continue
		}
		if isCommentLine(line, e.lang) {
			continue
		}

		stripped := stripStrings(line, e.lang)

		for _, re := range lang.CallPatterns(e.lang) {
			for _, m := range re.FindAllStringSubmatchIndex(stripped, -1) {
				for g := 1; g*2 < len(m); g++ {
					start, end := m[g*2], m[g*2+1]
					if start < 0 {
						continue
					}
					name := stripped[start:end]
					if !lang.IsValidSymbol(name, e.lang) {
						continue
					}
					key := callKey{name, lineNum}
					if _, dup := seen[key]; dup {
						continue
					}
					seen[key] = struct{}{}
					calls = append(calls, Call{Name: name, Line: lineNum, Column: start + 1})
				}
			}
		}
	}

	return calls
}

type callKey struct {
	name string
	line int
}

// Definitions extracts every function, method, class, and type
// definition name from content. Definition patterns run over the whole
// text rather than per line because several span declaration prefixes.
func (e *Extractor) Definitions(content string) lang.Set {
	defs := lang.Set{}
	if content == "" {
		return defs
	}

	for _, re := range lang.DefinitionPatterns(e.lang) {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			for _, name := range m[1:] {
				if name != "" && lang.IsValidSymbol(name, e.lang) {
					defs[name] = struct{}{}
				}
			}
		}
	}

	return defs
}

// Properties extracts property and field accesses from non-comment
// lines. Property validation is more false-positive prone than call
// validation, so callers typically use this for indexing rather than
// flagging.
func (e *Extractor) Properties(content string) []Call {
	if content == "" {
		return nil
	}

	var props []Call
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lineNum := i + 1
		if isCommentLine(line, e.lang) {
			continue
		}

		for _, pat := range lang.PropertyPatterns(e.lang) {
			for _, m := range pat.Regexp.FindAllStringSubmatchIndex(line, -1) {
				if pat.Disallow != "" && nextRuneIn(line, m[1], pat.Disallow) {
					continue
				}
				start, end := m[2], m[3]
				if start < 0 {
					continue
				}
				name := line[start:end]
				if !lang.IsValidSymbol(name, e.lang) {
					continue
				}
				props = append(props, Call{Name: name, Line: lineNum, Column: start + 1})
			}
		}
	}

	return props
}

// nextRuneIn reports whether the first non-space byte at or after pos is
// one of chars. Stands in for negative lookahead.
func nextRuneIn(s string, pos int, chars string) bool {
	for i := pos; i < len(s); i++ {
		c := s[i]
		if c == ' ' || c == '\t' {
			continue
		}
		return strings.IndexByte(chars, c) >= 0
	}
	return false
}
