package phrases

import (
	"regexp"
	"strings"
)

// Category phrase lists. Membership is lowercase substring containment,
// so a response can land in several categories at once.
var (
	praisePhrases = []string{
		"great", "excellent", "amazing", "love", "awesome", "fantastic",
		"helpful", "best", "perfect", "wonderful", "outstanding",
		"impressed", "impressive", "satisfied", "satisfaction",
		"easy", "intuitive", "user-friendly", "efficient",
	}
	bugPhrases = []string{
		"bug", "issue", "problem", "error", "crash", "broken",
		"not working", "doesn't work", "fails", "failure",
		"difficult", "hard", "confusing", "confused",
		"frustrated", "frustrating", "poor", "bad",
		"slow", "laggy", "stuck", "freezes",
	}
	suggestionPhrases = []string{
		"suggest", "suggestion", "recommend", "recommendation",
		"would be nice", "could be better", "improve",
		"enhancement", "feature request", "add", "missing",
	}
	urgentPhrases = []string{
		"urgent", "critical", "emergency", "immediate",
		"asap", "serious", "severe", "major",
		"blocking", "blocked", "showstopper", "show stopper",
		"production", "prod", "down", "outage",
	}
)

// demographicPatterns flag self-reported personal attribute data, which
// is excluded from sentiment and phrase analysis entirely.
var demographicPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:age|years old|\d{1,2}\s*(?:yo|years?))\b`),
	regexp.MustCompile(`(?i)\b(?:male|female|non-binary|gender|man|woman)\b`),
	regexp.MustCompile(`(?i)\b(?:from|lives? in|based in|location|country|city|region)\b`),
	regexp.MustCompile(`(?i)\b(?:work|job|profession|role|position|title|career)\b`),
	regexp.MustCompile(`(?i)\b(?:experience|years? of|background|expertise)\b`),
}

// Categories is the non-exclusive tag set for one text response.
type Categories struct {
	Praise     bool
	Bug        bool
	Suggestion bool
	Urgent     bool
}

// Classify tags the text against the four category phrase lists.
func Classify(text string) Categories {
	lower := strings.ToLower(text)
	return Categories{
		Praise:     containsAny(lower, praisePhrases),
		Bug:        containsAny(lower, bugPhrases),
		Suggestion: containsAny(lower, suggestionPhrases),
		Urgent:     containsAny(lower, urgentPhrases),
	}
}

// IsDemographic reports whether the text looks like self-reported
// personal attribute data (age, gender, location, occupation,
// experience).
func IsDemographic(text string) bool {
	for _, p := range demographicPatterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

func containsAny(lower string, phrases []string) bool {
	for _, p := range phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
