package dto

// TrendingRemark is one deduplicated cluster of near-identical answers.
// Answer is the representative (first seen) text for the cluster.
type TrendingRemark struct {
	Question        string `json:"question"`
	Answer          string `json:"answer"`
	SentimentLabel  string `json:"sentimentLabel"`
	OccurrenceCount int    `json:"occurrenceCount"`
}
