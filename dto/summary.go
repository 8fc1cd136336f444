package dto

import "strconv"

// FeedbackSummary is the aggregate analysis payload consumed by the
// dashboard and report renderers. Field names and nesting are a
// backward-compatibility contract; do not rename.
type FeedbackSummary struct {
	TextAnalysis          TextAnalysis          `json:"textAnalysis"`
	Statistics            Statistics            `json:"statistics"`
	SentimentDistribution SentimentDistribution `json:"sentimentDistribution"`
	FeedbackTrends        FeedbackTrends        `json:"feedbackTrends"`
}

// TextEntry ties a piece of free text back to the feedback it came from.
type TextEntry struct {
	Text       string `json:"text"`
	FeedbackID string `json:"feedbackId"`
}

type TextAnalysis struct {
	TopStrengths []TextEntry `json:"topStrengths"`
	TopConcerns  []TextEntry `json:"topConcerns"`
	Suggestions  []TextEntry `json:"suggestions"`
	UrgentIssues []TextEntry `json:"urgentIssues"`
}

// RatingStats holds count, mean and a per-value histogram. Distribution
// keys are the stringified rating values ("1".."5" or "1".."10").
type RatingStats struct {
	Total        int            `json:"total"`
	Average      float64        `json:"average"`
	Distribution map[string]int `json:"distribution"`
}

type Statistics struct {
	TotalFeedbacks    int         `json:"totalFeedbacks"`
	TextResponseCount int         `json:"textResponseCount"`
	AverageSentiment  float64     `json:"averageSentiment"`
	RatingStats       RatingStats `json:"ratingStats"`
	OneToTen          RatingStats `json:"1to10"`
}

// SentimentDistribution holds percentages that sum to 100 (within
// rounding) whenever any sentiment-bearing response was scored.
type SentimentDistribution struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
}

// TimelineTrend is one trend series. Positive and Negative are parallel
// arrays aligned to Labels, which are sorted ascending.
type TimelineTrend struct {
	Labels   []string `json:"labels"`
	Positive []int    `json:"positive"`
	Negative []int    `json:"negative"`
}

type FeedbackTrends struct {
	ByDay   TimelineTrend `json:"byDay"`
	ByWeek  TimelineTrend `json:"byWeek"`
	ByMonth TimelineTrend `json:"byMonth"`
}

// NewFeedbackSummary returns a zeroed summary shell with the rating
// histograms pre-seeded so empty buckets still serialize.
func NewFeedbackSummary(totalFeedbacks int) *FeedbackSummary {
	s := &FeedbackSummary{
		TextAnalysis: TextAnalysis{
			TopStrengths: []TextEntry{},
			TopConcerns:  []TextEntry{},
			Suggestions:  []TextEntry{},
			UrgentIssues: []TextEntry{},
		},
		Statistics: Statistics{
			TotalFeedbacks: totalFeedbacks,
			RatingStats:    RatingStats{Distribution: map[string]int{}},
			OneToTen:       RatingStats{Distribution: map[string]int{}},
		},
		FeedbackTrends: FeedbackTrends{
			ByDay:   TimelineTrend{Labels: []string{}, Positive: []int{}, Negative: []int{}},
			ByWeek:  TimelineTrend{Labels: []string{}, Positive: []int{}, Negative: []int{}},
			ByMonth: TimelineTrend{Labels: []string{}, Positive: []int{}, Negative: []int{}},
		},
	}
	for i := 1; i <= 5; i++ {
		s.Statistics.RatingStats.Distribution[strconv.Itoa(i)] = 0
	}
	for i := 1; i <= 10; i++ {
		s.Statistics.OneToTen.Distribution[strconv.Itoa(i)] = 0
	}
	return s
}
