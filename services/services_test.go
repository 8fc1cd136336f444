package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"feedback-analyzer/events"
	"feedback-analyzer/models"
	"feedback-analyzer/sentiment"
)

type fakeSurveys struct {
	known map[string]bool
}

func (f *fakeSurveys) GetBySurveyID(_ context.Context, surveyID string) (*models.Survey, error) {
	if !f.known[surveyID] {
		return nil, mongo.ErrNoDocuments
	}
	return &models.Survey{SurveyID: surveyID}, nil
}

type fakeFeedbacks struct {
	byID     map[string][]models.Feedback
	inserted []models.Feedback
	gotLimit int64
}

func (f *fakeFeedbacks) FindBySurveyID(_ context.Context, surveyID string, limit int64) ([]models.Feedback, error) {
	f.gotLimit = limit
	return f.byID[surveyID], nil
}

func (f *fakeFeedbacks) Insert(_ context.Context, fb *models.Feedback) error {
	fb.ID = primitive.NewObjectID()
	f.inserted = append(f.inserted, *fb)
	return nil
}

type keywordScorer struct{}

func (keywordScorer) Classify(_ context.Context, text string) (sentiment.Result, error) {
	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "terrible"), strings.Contains(lower, "broken"):
		return sentiment.Result{Label: sentiment.LabelNegative, Score: 0.95}, nil
	case strings.Contains(lower, "great"), strings.Contains(lower, "love"):
		return sentiment.Result{Label: sentiment.LabelPositive, Score: 0.9}, nil
	default:
		return sentiment.Result{Label: sentiment.LabelPositive, Score: 0.4}, nil
	}
}

func textFeedback(surveyID, text string) models.Feedback {
	return models.Feedback{
		ID:        primitive.NewObjectID(),
		SurveyID:  surveyID,
		CreatedAt: time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		Responses: map[string]models.Response{
			"q1": {ComponentType: models.ComponentTextbox, Value: text},
		},
	}
}

func TestGetSummaryUnknownSurvey(t *testing.T) {
	svc := NewFeedbackService(&fakeSurveys{}, &fakeFeedbacks{}, keywordScorer{}, nil, 100)

	_, err := svc.GetSummary(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNoFeedbacks)
}

func TestGetSummaryEmptySurvey(t *testing.T) {
	surveys := &fakeSurveys{known: map[string]bool{"s1": true}}
	svc := NewFeedbackService(surveys, &fakeFeedbacks{}, keywordScorer{}, nil, 100)

	_, err := svc.GetSummary(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrNoFeedbacks)
}

func TestGetSummaryAnalyzesBatch(t *testing.T) {
	surveys := &fakeSurveys{known: map[string]bool{"s1": true}}
	feedbacks := &fakeFeedbacks{byID: map[string][]models.Feedback{
		"s1": {textFeedback("s1", "This product is really great to use")},
	}}
	svc := NewFeedbackService(surveys, feedbacks, keywordScorer{}, nil, 100)

	summary, err := svc.GetSummary(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), feedbacks.gotLimit)
	assert.Equal(t, 1, summary.Statistics.TotalFeedbacks)
	assert.Equal(t, 1, summary.Statistics.TextResponseCount)
	require.Len(t, summary.TextAnalysis.TopStrengths, 1)
}

func TestGetTrendingRemarksClustersAndDefaultsQuestion(t *testing.T) {
	surveys := &fakeSurveys{known: map[string]bool{"s1": true}}
	feedbacks := &fakeFeedbacks{byID: map[string][]models.Feedback{
		"s1": {
			textFeedback("s1", "the dashboard is great"),
			textFeedback("s1", "The dashboard is great!"),
			textFeedback("s1", "everything feels terrible today"),
		},
	}}
	svc := NewFeedbackService(surveys, feedbacks, keywordScorer{}, nil, 100)

	remarks, err := svc.GetTrendingRemarks(context.Background(), "s1")
	require.NoError(t, err)
	require.Len(t, remarks, 2)

	assert.Equal(t, "the dashboard is great", remarks[0].Answer)
	assert.Equal(t, "general", remarks[0].Question)
	assert.Equal(t, sentiment.LabelPositive, remarks[0].SentimentLabel)
	assert.Equal(t, 2, remarks[0].OccurrenceCount)

	assert.Equal(t, sentiment.LabelNegative, remarks[1].SentimentLabel)
	assert.Equal(t, 1, remarks[1].OccurrenceCount)
}

type unavailableScorer struct{}

func (unavailableScorer) Classify(context.Context, string) (sentiment.Result, error) {
	return sentiment.Result{}, sentiment.ErrUnavailable
}

func TestGetTrendingRemarksPropagatesUnavailable(t *testing.T) {
	surveys := &fakeSurveys{known: map[string]bool{"s1": true}}
	feedbacks := &fakeFeedbacks{byID: map[string][]models.Feedback{
		"s1": {textFeedback("s1", "the dashboard is great")},
	}}
	svc := NewFeedbackService(surveys, feedbacks, unavailableScorer{}, nil, 100)

	_, err := svc.GetTrendingRemarks(context.Background(), "s1")
	assert.ErrorIs(t, err, sentiment.ErrUnavailable)
}

type fakePublisher struct {
	published []interface{}
}

func (f *fakePublisher) PublishEvent(_ context.Context, _ string, event interface{}) error {
	f.published = append(f.published, event)
	return nil
}

func TestHandleFeedbackCreatedStoresDocument(t *testing.T) {
	repo := &fakeFeedbacks{}
	pub := &fakePublisher{}
	svc := NewIngestService(repo, pub, "feedback.events")

	event := &events.FeedbackCreatedEvent{
		BaseEvent:  events.NewBase(events.FeedbackCreated, "api"),
		SurveyID:   "s1",
		CustomerID: "c1",
		Responses: map[string]events.SubmittedResponse{
			"q1": {ComponentType: models.ComponentTextbox, Value: "too slow on mobile", Title: "performance"},
		},
	}

	require.NoError(t, svc.HandleFeedbackCreated(context.Background(), event))
	require.Len(t, repo.inserted, 1)

	stored := repo.inserted[0]
	assert.Equal(t, "s1", stored.SurveyID)
	assert.Equal(t, "c1", stored.CustomerID)
	assert.Equal(t, "too slow on mobile", stored.Responses["q1"].Value)
	assert.Equal(t, "performance", stored.Responses["q1"].Title)
	assert.False(t, stored.ID.IsZero())

	require.Len(t, pub.published, 1)
	analyzed, ok := pub.published[0].(events.FeedbackAnalyzedEvent)
	require.True(t, ok)
	assert.Equal(t, events.FeedbackAnalyzed, analyzed.Type)
	assert.Equal(t, stored.ID.Hex(), analyzed.FeedbackID)
}

func TestHandleFeedbackCreatedRejectsBadPayload(t *testing.T) {
	svc := NewIngestService(&fakeFeedbacks{}, nil, "")

	err := svc.HandleFeedbackCreated(context.Background(), &events.FeedbackAnalyzedEvent{})
	assert.Error(t, err)

	err = svc.HandleFeedbackCreated(context.Background(), &events.FeedbackCreatedEvent{
		BaseEvent: events.NewBase(events.FeedbackCreated, "api"),
	})
	assert.Error(t, err)
}
