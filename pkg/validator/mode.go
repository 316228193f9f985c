package validator

import (
	"fmt"
	"regexp"
	"strings"
)

// Mode governs whether unresolved symbol issues may ever block the
// caller's workflow.
type Mode string

const (
	// ModeOff disables validation entirely.
	ModeOff Mode = "off"
	// ModeWarn reports issues but never blocks. The safe default.
	ModeWarn Mode = "warn"
	// ModeStrict may block when enough very-high-confidence issues
	// accumulate. Opt-in only.
	ModeStrict Mode = "strict"
	// ModeAdaptive currently behaves like warn. Reserved for
	// context-sensitive tightening.
	ModeAdaptive Mode = "adaptive"
)

func (m Mode) String() string { return string(m) }

// ParseMode parses a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off":
		return ModeOff, nil
	case "warn", "":
		return ModeWarn, nil
	case "strict":
		return ModeStrict, nil
	case "adaptive":
		return ModeAdaptive, nil
	default:
		return ModeWarn, fmt.Errorf("unknown validation mode %q (want off, warn, strict, or adaptive)", s)
	}
}

// relaxedPathPatterns mark test, config, migration, and seed files.
// Those paths get warn-level checking regardless of the global default.
var relaxedPathPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)/test`),
	regexp.MustCompile(`(?i)/tests`),
	regexp.MustCompile(`(?i)Test\.`),
	regexp.MustCompile(`(?i)Spec\.`),
	regexp.MustCompile(`(?i)/config`),
	regexp.MustCompile(`(?i)/migrations`),
	regexp.MustCompile(`(?i)/seeds`),
	regexp.MustCompile(`(?i)\.config\.`),
	regexp.MustCompile(`(?i)\.env`),
}

// ModeForFile proposes a validation mode for one file path. User
// overrides win: strictFiles force strict, ignoreFiles force off.
// Test/config-looking paths resolve to warn, as does everything else.
// Critical-looking paths (controllers, services, handlers) are never
// auto-escalated to strict; only an explicit override selects it.
func ModeForFile(path string, strictFiles, ignoreFiles []string) Mode {
	for _, f := range strictFiles {
		if f == path {
			return ModeStrict
		}
	}
	for _, f := range ignoreFiles {
		if f == path {
			return ModeOff
		}
	}

	for _, re := range relaxedPathPatterns {
		if re.MatchString(path) {
			return ModeWarn
		}
	}

	return ModeWarn
}

// EffectiveMode resolves one mode for a batch of files. An explicit
// user strict or off wins outright. Otherwise strict is chosen only
// when every file independently resolves to strict; any disagreement
// falls back to warn.
func EffectiveMode(files []string, userMode Mode, strictFiles, ignoreFiles []string) Mode {
	if userMode == ModeStrict {
		return ModeStrict
	}
	if userMode == ModeOff {
		return ModeOff
	}

	if len(files) == 0 {
		return ModeWarn
	}
	for _, f := range files {
		if ModeForFile(f, strictFiles, ignoreFiles) != ModeStrict {
			return ModeWarn
		}
	}
	return ModeStrict
}

// ShouldBlock reports whether issues justify blocking under mode.
// Only strict can block, and only when at least 5 issues carry
// confidence strictly above 0.9.
func ShouldBlock(issues []Issue, mode Mode) bool {
	if mode != ModeStrict {
		return false
	}

	veryHigh := 0
	for _, issue := range issues {
		if issue.Confidence > 0.9 {
			veryHigh++
		}
	}
	return veryHigh >= 5
}
