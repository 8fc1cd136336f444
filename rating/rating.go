package rating

import (
	"math"
	"strconv"
	"strings"
)

// Phrase sets for textual ratings pulled from the survey component
// presets. Matching is case-insensitive substring containment, checked
// positive, then negative, then neutral; the first matching set wins.
var (
	positivePhrases = []string{
		"very satisfied",
		"satisfied",
		"excellent",
		"good",
		"like",
		"strongly agree",
		"agree",
	}
	negativePhrases = []string{
		"very dissatisfied",
		"dissatisfied",
		"poor",
		"bad",
		"dislike",
		"strongly disagree",
		"disagree",
	}
	neutralPhrases = []string{
		"neutral",
		"neither agree nor disagree",
		"average",
		"ok",
		"okay",
		"fair",
	}
)

// Normalize converts a raw rating value to the canonical 1..5 scale.
// Numeric values already in [1,5] pass through unchanged (they must be
// integral; fractional values are rejected). Values in (5,10] are
// remapped with round(v/2). Anything outside [1,10] is not a rating.
// Non-numeric values are matched against the phrase sets; an
// intensifier ("very"/"strongly") pushes positive matches to 5 and
// negative matches to 1. Returns ok=false when the value is not a
// recognizable rating.
func Normalize(raw string) (int, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}

	if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
		if v >= 1 && v <= 5 {
			n := int(v)
			if float64(n) != v {
				return 0, false
			}
			return n, true
		}
		if v > 5 && v <= 10 {
			return int(math.Round(v / 2)), true
		}
		return 0, false
	}

	lower := strings.ToLower(trimmed)
	intensified := strings.Contains(lower, "very") || strings.Contains(lower, "strongly")

	if containsAny(lower, positivePhrases) {
		if intensified {
			return 5, true
		}
		return 4, true
	}
	if containsAny(lower, negativePhrases) {
		if intensified {
			return 1, true
		}
		return 2, true
	}
	if containsAny(lower, neutralPhrases) {
		return 3, true
	}

	return 0, false
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if containsPhrase(lower, p) {
			return true
		}
	}
	return false
}

// containsPhrase matches p as a substring of s bounded by non-letter
// characters, so "dissatisfied" does not count as containing
// "satisfied".
func containsPhrase(s, p string) bool {
	for start := 0; ; {
		i := strings.Index(s[start:], p)
		if i < 0 {
			return false
		}
		i += start
		before := i == 0 || !isLetter(s[i-1])
		after := i+len(p) == len(s) || !isLetter(s[i+len(p)])
		if before && after {
			return true
		}
		start = i + 1
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
