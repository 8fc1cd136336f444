package services

import (
	"context"
	"errors"
	"sort"

	"go.mongodb.org/mongo-driver/mongo"

	"feedback-analyzer/analyzer"
	"feedback-analyzer/dto"
	"feedback-analyzer/logger"
	"feedback-analyzer/models"
	"feedback-analyzer/sentiment"
	"feedback-analyzer/similarity"
)

// ErrNoFeedbacks is returned when a survey is unknown or has no
// feedback submissions yet.
var ErrNoFeedbacks = errors.New("no feedbacks found")

// SurveyReader looks up surveys by their external id.
type SurveyReader interface {
	GetBySurveyID(ctx context.Context, surveyID string) (*models.Survey, error)
}

// FeedbackReader loads feedback batches for analysis.
type FeedbackReader interface {
	FindBySurveyID(ctx context.Context, surveyID string, limit int64) ([]models.Feedback, error)
}

// FeedbackService encapsulates the analysis use cases behind the API.
type FeedbackService struct {
	surveys   SurveyReader
	feedbacks FeedbackReader
	scorer    sentiment.Scorer
	embedder  similarity.Embedder
	batch     int64
}

func NewFeedbackService(surveys SurveyReader, feedbacks FeedbackReader, scorer sentiment.Scorer, embedder similarity.Embedder, batchLimit int) *FeedbackService {
	return &FeedbackService{
		surveys:   surveys,
		feedbacks: feedbacks,
		scorer:    scorer,
		embedder:  embedder,
		batch:     int64(batchLimit),
	}
}

// GetSummary loads the most recent feedback batch for a survey and
// runs the full analysis pipeline over it.
func (s *FeedbackService) GetSummary(ctx context.Context, surveyID string) (*dto.FeedbackSummary, error) {
	feedbacks, err := s.loadBatch(ctx, surveyID)
	if err != nil {
		return nil, err
	}
	return analyzer.New(s.scorer).Analyze(ctx, feedbacks)
}

// GetTrendingRemarks scores and clusters the text answers of the most
// recent feedback batch, returning the most frequent remarks.
func (s *FeedbackService) GetTrendingRemarks(ctx context.Context, surveyID string) ([]dto.TrendingRemark, error) {
	feedbacks, err := s.loadBatch(ctx, surveyID)
	if err != nil {
		return nil, err
	}

	var items []similarity.Item
	for _, fb := range feedbacks {
		componentIDs := make([]string, 0, len(fb.Responses))
		for id := range fb.Responses {
			componentIDs = append(componentIDs, id)
		}
		sort.Strings(componentIDs)

		for _, id := range componentIDs {
			resp := fb.Responses[id]
			if !models.IsTextComponent(resp.ComponentType) || resp.Value == "" {
				continue
			}
			if !analyzer.IsAnalyzableText(resp.Value) {
				continue
			}

			result, err := s.scorer.Classify(ctx, resp.Value)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				if errors.Is(err, sentiment.ErrUnavailable) {
					return nil, err
				}
				logger.ErrorWithFields("failed to score remark, skipping", logger.Fields{
					"error":       err.Error(),
					"feedback_id": fb.ID.Hex(),
				})
				continue
			}

			question := resp.Title
			if question == "" {
				question = "general"
			}
			items = append(items, similarity.Item{
				Question: question,
				Answer:   resp.Value,
				Label:    sentiment.Decide(result),
			})
		}
	}

	return similarity.Cluster(ctx, s.embedder, items), nil
}

func (s *FeedbackService) loadBatch(ctx context.Context, surveyID string) ([]models.Feedback, error) {
	if _, err := s.surveys.GetBySurveyID(ctx, surveyID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNoFeedbacks
		}
		return nil, err
	}

	feedbacks, err := s.feedbacks.FindBySurveyID(ctx, surveyID, s.batch)
	if err != nil {
		return nil, err
	}
	if len(feedbacks) == 0 {
		return nil, ErrNoFeedbacks
	}
	return feedbacks, nil
}
