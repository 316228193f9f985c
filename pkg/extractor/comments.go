package extractor

import (
	"strings"

	"mirage/pkg/lang"
)

// blockCommentLines returns the 1-based line numbers that fall inside
// multi-line comments or docstrings and must be skipped entirely.
//
// Python uses a dedicated tracker for triple-quoted strings: the block
// closes only when the same triple-quote marker reappears, and a line
// carrying both the opener and the closer opens and closes in place.
// The C-family languages use a two-state scanner over /* and */.
func blockCommentLines(content string, l lang.Language) map[int]struct{} {
	skip := make(map[int]struct{})
	lines := strings.Split(content, "\n")

	if l == lang.Python {
		inDoc := false
		marker := ""

		for i, line := range lines {
			lineNum := i + 1
			found := ""
			for _, quote := range []string{`"""`, `'''`} {
				if strings.Contains(line, quote) {
					found = quote
					break
				}
			}

			switch {
			case found != "" && !inDoc:
				skip[lineNum] = struct{}{}
				if strings.Count(line, found) < 2 {
					inDoc = true
					marker = found
				}
			case found != "" && inDoc && found == marker:
				skip[lineNum] = struct{}{}
				inDoc = false
				marker = ""
			case inDoc:
				skip[lineNum] = struct{}{}
			}
		}
		return skip
	}

	inComment := false
	for i, line := range lines {
		lineNum := i + 1
		if inComment {
			skip[lineNum] = struct{}{}
			if strings.Contains(line, "*/") {
				inComment = false
			}
		} else if strings.Contains(line, "/*") {
			skip[lineNum] = struct{}{}
			if !strings.Contains(line, "*/") {
				inComment = true
			}
		}
	}
	return skip
}

// isCommentLine reports whether a line is blank or entirely a
// single-line comment for the language.
func isCommentLine(line string, l lang.Language) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return true
	}

	switch l {
	case lang.PHP:
		if strings.HasPrefix(trimmed, "#") {
			return true
		}
		fallthrough
	case lang.JavaScript, lang.TypeScript, lang.CSharp, lang.Go, lang.Rust:
		if strings.HasPrefix(trimmed, "//") ||
			strings.HasPrefix(trimmed, "/*") ||
			strings.HasPrefix(trimmed, "*") {
			return true
		}
	case lang.Python:
		if strings.HasPrefix(trimmed, "#") {
			return true
		}
	}

	return false
}
