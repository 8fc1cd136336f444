package analyzer

import (
	"context"
	"errors"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"feedback-analyzer/dto"
	"feedback-analyzer/logger"
	"feedback-analyzer/models"
	"feedback-analyzer/phrases"
	"feedback-analyzer/rating"
	"feedback-analyzer/sentiment"
	"feedback-analyzer/trends"
)

// Responses shorter than this are skipped by text analysis, as are
// responses flagged as demographic data.
const minTextLength = 10

// maxBucketEntries caps each text-analysis bucket in the summary.
const maxBucketEntries = 5

// Analyzer computes a FeedbackSummary from a batch of feedback records.
// It holds no state across calls; the sentiment scorer is the only
// injected dependency.
type Analyzer struct {
	scorer sentiment.Scorer
}

func New(scorer sentiment.Scorer) *Analyzer {
	return &Analyzer{scorer: scorer}
}

type pendingText struct {
	text       string
	title      string
	date       time.Time
	feedbackID string
}

// Analyze runs the full pipeline over the batch: rating normalization
// and histograms, text collection, sentiment scoring, phrase
// classification and trend accumulation, then finalizes averages,
// percentage distributions and sorted trend series.
//
// Individual scorer failures are logged and skipped; the batch only
// fails on context cancellation or when the scoring subsystem is
// unavailable outright.
func (a *Analyzer) Analyze(ctx context.Context, feedbacks []models.Feedback) (*dto.FeedbackSummary, error) {
	summary := dto.NewFeedbackSummary(len(feedbacks))
	tracker := trends.NewTracker()

	var pending []pendingText
	ratingSum := 0
	rawSum := 0

	for _, fb := range feedbacks {
		if len(fb.Responses) == 0 {
			continue
		}
		tracker.Register(fb.CreatedAt)

		// Map iteration order is randomized; walk componentIds sorted so
		// repeated runs over the same input produce identical summaries.
		componentIDs := make([]string, 0, len(fb.Responses))
		for id := range fb.Responses {
			componentIDs = append(componentIDs, id)
		}
		sort.Strings(componentIDs)

		for _, id := range componentIDs {
			resp := fb.Responses[id]
			if resp.Value == "" {
				continue
			}

			if models.IsRatingComponent(resp.ComponentType) {
				if n, ok := rating.Normalize(resp.Value); ok {
					summary.Statistics.RatingStats.Distribution[strconv.Itoa(n)]++
					summary.Statistics.RatingStats.Total++
					ratingSum += n
				}
				if resp.ComponentType == models.ComponentScale1To10 {
					if v, err := strconv.Atoi(strings.TrimSpace(resp.Value)); err == nil && v >= 1 && v <= 10 {
						summary.Statistics.OneToTen.Distribution[strconv.Itoa(v)]++
						summary.Statistics.OneToTen.Total++
						rawSum += v
					}
				}
				continue
			}

			if models.IsTextComponent(resp.ComponentType) && IsAnalyzableText(resp.Value) {
				pending = append(pending, pendingText{
					text:       resp.Value,
					title:      resp.Title,
					date:       fb.CreatedAt,
					feedbackID: fb.ID.Hex(),
				})
			}
		}
	}
	summary.Statistics.TextResponseCount = len(pending)

	totalScore := 0.0
	scored := 0
	tally := struct{ positive, negative, neutral int }{}

	for _, item := range pending {
		result, err := a.scorer.Classify(ctx, item.text)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			if errors.Is(err, sentiment.ErrUnavailable) {
				return nil, err
			}
			logger.ErrorWithFields("failed to score text response, skipping", logger.Fields{
				"error":       err.Error(),
				"feedback_id": item.feedbackID,
				"text":        truncate(item.text, 50),
			})
			continue
		}

		totalScore += result.Score
		scored++

		decision := sentiment.Decide(result)
		switch decision {
		case sentiment.LabelPositive:
			tally.positive++
			summary.TextAnalysis.TopStrengths = append(summary.TextAnalysis.TopStrengths,
				dto.TextEntry{Text: item.text, FeedbackID: item.feedbackID})
		case sentiment.LabelNegative:
			tally.negative++
			summary.TextAnalysis.TopConcerns = append(summary.TextAnalysis.TopConcerns,
				dto.TextEntry{Text: item.text, FeedbackID: item.feedbackID})
		default:
			tally.neutral++
		}

		cats := phrases.Classify(item.text)
		if cats.Suggestion {
			summary.TextAnalysis.Suggestions = append(summary.TextAnalysis.Suggestions,
				dto.TextEntry{Text: item.text, FeedbackID: item.feedbackID})
		}
		if cats.Urgent {
			summary.TextAnalysis.UrgentIssues = append(summary.TextAnalysis.UrgentIssues,
				dto.TextEntry{Text: item.text, FeedbackID: item.feedbackID})
		}

		tracker.Add(item.date, decision)
	}

	if scored > 0 {
		summary.Statistics.AverageSentiment = round2(totalScore / float64(scored))
		summary.SentimentDistribution = dto.SentimentDistribution{
			Positive: round2(float64(tally.positive) / float64(scored) * 100),
			Negative: round2(float64(tally.negative) / float64(scored) * 100),
			Neutral:  round2(float64(tally.neutral) / float64(scored) * 100),
		}
	}
	if summary.Statistics.RatingStats.Total > 0 {
		summary.Statistics.RatingStats.Average = round2(float64(ratingSum) / float64(summary.Statistics.RatingStats.Total))
	}
	if summary.Statistics.OneToTen.Total > 0 {
		summary.Statistics.OneToTen.Average = round2(float64(rawSum) / float64(summary.Statistics.OneToTen.Total))
	}

	summary.FeedbackTrends = tracker.Series()

	summary.TextAnalysis.TopStrengths = dedupeEntries(summary.TextAnalysis.TopStrengths)
	summary.TextAnalysis.TopConcerns = dedupeEntries(summary.TextAnalysis.TopConcerns)
	summary.TextAnalysis.Suggestions = dedupeEntries(summary.TextAnalysis.Suggestions)
	summary.TextAnalysis.UrgentIssues = dedupeEntries(summary.TextAnalysis.UrgentIssues)

	return summary, nil
}

// IsAnalyzableText reports whether a free-text answer is long enough
// for analysis and is not demographic data.
func IsAnalyzableText(value string) bool {
	return len(value) >= minTextLength && !phrases.IsDemographic(value)
}

// dedupeEntries removes exact (text, feedbackId) duplicates, keeping
// first occurrences, and caps the list.
func dedupeEntries(entries []dto.TextEntry) []dto.TextEntry {
	seen := map[dto.TextEntry]struct{}{}
	out := entries[:0]
	for _, e := range entries {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
		if len(out) == maxBucketEntries {
			break
		}
	}
	return out
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func truncate(s string, max int) string {
	rs := []rune(s)
	if len(rs) <= max {
		return s
	}
	return string(rs[:max])
}
