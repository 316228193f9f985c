package validator

import (
	"fmt"
	"strings"
)

// FormatReport renders issues as a readable plain-text report, grouped
// by severity. High-confidence issues show at most 5 entries, medium at
// most 3, low only as a count.
func FormatReport(issues []Issue, mode Mode) string {
	if len(issues) == 0 {
		return "Symbol Validation: All symbols verified"
	}

	var high, medium, low []Issue
	for _, issue := range issues {
		switch issue.Severity() {
		case SeverityHigh:
			high = append(high, issue)
		case SeverityMedium:
			medium = append(medium, issue)
		default:
			low = append(low, issue)
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Symbol Validation: %d potential issues (mode: %s)\n\n", len(issues), mode)

	if len(high) > 0 {
		b.WriteString("HIGH CONFIDENCE (likely issues):\n")
		for i, issue := range high {
			if i >= 5 {
				fmt.Fprintf(&b, "  ... and %d more\n", len(high)-5)
				break
			}
			fmt.Fprintf(&b, "  %s() in %s:%d [%.0f%%]\n", issue.Name, issue.File, issue.Line, issue.Confidence*100)
			if len(issue.Suggestions) > 0 {
				top := issue.Suggestions
				if len(top) > 3 {
					top = top[:3]
				}
				fmt.Fprintf(&b, "    -> Did you mean: %s?\n", strings.Join(top, ", "))
			}
		}
		b.WriteString("\n")
	}

	if len(medium) > 0 {
		b.WriteString("MEDIUM CONFIDENCE (review recommended):\n")
		for i, issue := range medium {
			if i >= 3 {
				fmt.Fprintf(&b, "  ... and %d more\n", len(medium)-3)
				break
			}
			fmt.Fprintf(&b, "  %s() in %s:%d [%.0f%%]\n", issue.Name, issue.File, issue.Line, issue.Confidence*100)
		}
		b.WriteString("\n")
	}

	if len(low) > 0 {
		fmt.Fprintf(&b, "LOW CONFIDENCE: %d items (likely OK)\n\n", len(low))
	}

	if mode == ModeStrict && len(high) > 0 {
		b.WriteString("Switch to warn mode to proceed without blocking.")
	} else {
		b.WriteString("These are warnings only. Whitelist names to silence false positives.")
	}

	return b.String()
}
