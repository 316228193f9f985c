package extractor

import (
	"strings"

	"mirage/pkg/lang"
)

// stripStrings blanks the contents of ordinary string literals on a line
// so that prose inside them (HTML placeholders, SQL fragments, copy
// text) never matches a call pattern. Interpolated forms are preserved
// because they can contain genuine call expressions:
//
//   - double-quoted spans prefixed with f or $ (format/interpolated
//     strings), or containing a { marker
//   - Python single-quoted f-strings, or single-quoted spans with {
//   - JS/TS template literals containing a $ marker
//
// Delimiters stay in place; only static contents are removed. The
// scanner is hand-written because the distinguishing prefix check is a
// lookbehind, which RE2 cannot express.
func stripStrings(line string, l lang.Language) string {
	line = stripQuoted(line, '"', "f$", "{")
	if l == lang.Python {
		line = stripQuoted(line, '\'', "f", "{")
	} else {
		line = stripQuoted(line, '\'', "", "")
	}
	if l == lang.JavaScript || l == lang.TypeScript {
		line = stripTemplates(line)
	}
	return line
}

// stripQuoted blanks quote-delimited spans. A span is kept intact when
// the byte before the opening quote is in keepPrefix, when its contents
// include any byte of keepContains, or when it never closes on this
// line. Backslash escapes inside the span are honored.
func stripQuoted(line string, quote byte, keepPrefix, keepContains string) string {
	var b strings.Builder
	b.Grow(len(line))

	i := 0
	for i < len(line) {
		c := line[i]
		if c != quote {
			b.WriteByte(c)
			i++
			continue
		}

		prefixed := i > 0 && strings.IndexByte(keepPrefix, line[i-1]) >= 0

		// Find the closing quote, honoring escapes.
		j := i + 1
		closed := false
		for j < len(line) {
			if line[j] == '\\' && j+1 < len(line) {
				j += 2
				continue
			}
			if line[j] == quote {
				closed = true
				break
			}
			j++
		}

		if !closed {
			b.WriteString(line[i:])
			return b.String()
		}

		span := line[i+1 : j]
		if prefixed || (keepContains != "" && strings.ContainsAny(span, keepContains)) {
			b.WriteString(line[i : j+1])
		} else {
			b.WriteByte(quote)
			b.WriteByte(quote)
		}
		i = j + 1
	}

	return b.String()
}

// stripTemplates blanks backtick template literals that contain no $
// marker. Literals with ${...} hold real code and are left intact.
func stripTemplates(line string) string {
	var b strings.Builder
	b.Grow(len(line))

	i := 0
	for i < len(line) {
		c := line[i]
		if c != '`' {
			b.WriteByte(c)
			i++
			continue
		}

		j := strings.IndexByte(line[i+1:], '`')
		if j < 0 {
			b.WriteString(line[i:])
			return b.String()
		}
		j += i + 1

		span := line[i+1 : j]
		if strings.ContainsRune(span, '$') {
			b.WriteString(line[i : j+1])
		} else {
			b.WriteString("``")
		}
		i = j + 1
	}

	return b.String()
}
