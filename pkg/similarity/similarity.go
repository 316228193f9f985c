// Package similarity ranks near-miss symbol names so unresolved
// references can carry "did you mean" suggestions.
package similarity

import (
	"sort"
	"strings"
)

// DefaultThreshold is the minimum ratio for a name to count as similar.
const DefaultThreshold = 0.6

// Ratio measures the similarity of two strings as 2*M/T, where M is the
// length of their longest common subsequence and T the total length.
// 1.0 means identical, 0.0 means nothing in common. Comparison is
// case-folded.
func Ratio(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	total := len(a) + len(b)
	if total == 0 {
		return 1.0
	}
	return 2.0 * float64(lcs(a, b)) / float64(total)
}

// lcs computes the longest common subsequence length with a rolling
// single-row table.
func lcs(a, b string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

type scored struct {
	name  string
	ratio float64
}

// Similar returns the known names whose similarity to name meets
// DefaultThreshold, best first. max bounds the result; max <= 0 returns
// all matches.
func Similar(name string, known []string, max int) []string {
	var matches []scored
	for _, candidate := range known {
		if r := Ratio(name, candidate); r >= DefaultThreshold {
			matches = append(matches, scored{candidate, r})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].ratio > matches[j].ratio
	})

	if max > 0 && len(matches) > max {
		matches = matches[:max]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}
	return out
}
