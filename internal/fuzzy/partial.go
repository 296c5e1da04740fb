// Package fuzzy scores approximate string similarity for menu matching.
package fuzzy

import (
	"math"

	"github.com/pmezard/go-difflib/difflib"
)

// DefaultThreshold is the score a label must exceed to count as a match.
const DefaultThreshold = 80

// perfectRatio short-circuits alignment once a window is effectively equal.
const perfectRatio = 0.995

// Matches reports whether score exceeds threshold (exclusive).
func Matches(score, threshold int) bool {
	return score > threshold
}

// PartialRatio scores in [0, 100] how well the shorter string aligns with
// its best window in the longer one. Each matching block of a sequence
// matcher anchors a window the length of the shorter string; the best
// window ratio wins. Inputs are compared as given, so callers fold case
// and accents first. Either string empty scores 0.
func PartialRatio(a, b string) int {
	if a == "" || b == "" {
		return 0
	}
	shorter, longer := splitRunes(a), splitRunes(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	m := difflib.NewMatcher(shorter, longer)
	best := 0.0
	for _, block := range m.GetMatchingBlocks() {
		start := block.B - block.A
		if start < 0 {
			start = 0
		}
		end := start + len(shorter)
		if end > len(longer) {
			end = len(longer)
		}
		if start > end {
			start = end
		}

		r := difflib.NewMatcher(shorter, longer[start:end]).Ratio()
		if r > perfectRatio {
			return 100
		}
		if r > best {
			best = r
		}
	}
	return int(math.RoundToEven(100 * best))
}

func splitRunes(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
