package sentiment

import "context"

const (
	LabelPositive = "positive"
	LabelNegative = "negative"
	LabelNeutral  = "neutral"
)

// Threshold is the minimum confidence for a positive or negative label
// to count as such; anything below it is treated as neutral.
const Threshold = 0.7

// Result is one sentiment classification. Score is in [0,1].
type Result struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Scorer classifies a text span as positive or negative with a
// confidence score. Implementations must return an error on failure
// rather than a low-confidence result, so callers can distinguish
// "could not score" from "scored as uncertain".
type Scorer interface {
	Classify(ctx context.Context, text string) (Result, error)
}

// Decide maps a raw result to the bucket label used for tallies and
// trend counters: positive or negative only above Threshold, neutral
// otherwise (including low-confidence positives and negatives).
func Decide(r Result) string {
	switch {
	case r.Label == LabelPositive && r.Score > Threshold:
		return LabelPositive
	case r.Label == LabelNegative && r.Score > Threshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
