package services

import (
	"context"
	"fmt"

	"feedback-analyzer/events"
	"feedback-analyzer/logger"
	"feedback-analyzer/models"
)

// FeedbackWriter persists feedback submissions.
type FeedbackWriter interface {
	Insert(ctx context.Context, f *models.Feedback) error
}

// EventPublisher announces lifecycle events downstream.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic string, event interface{}) error
}

// IngestService consumes feedback submission events and persists them.
// The publisher is optional; when set, a feedback.analyzed event is
// emitted after each successful insert.
type IngestService struct {
	feedbacks FeedbackWriter
	publisher EventPublisher
	topic     string
}

func NewIngestService(feedbacks FeedbackWriter, publisher EventPublisher, topic string) *IngestService {
	return &IngestService{feedbacks: feedbacks, publisher: publisher, topic: topic}
}

// HandleFeedbackCreated maps a FeedbackCreatedEvent onto a feedback
// document and stores it. Wired as the kafka handler for
// feedback.created.
func (s *IngestService) HandleFeedbackCreated(ctx context.Context, event interface{}) error {
	created, ok := event.(*events.FeedbackCreatedEvent)
	if !ok {
		return fmt.Errorf("unexpected event payload: %T", event)
	}
	if created.SurveyID == "" {
		return fmt.Errorf("survey_id is required")
	}

	feedback := models.Feedback{
		SurveyID:   created.SurveyID,
		CustomerID: created.CustomerID,
		CreatedAt:  created.Timestamp,
		Responses:  make(map[string]models.Response, len(created.Responses)),
	}
	for id, resp := range created.Responses {
		feedback.Responses[id] = models.Response{
			ComponentType: resp.ComponentType,
			Value:         string(resp.Value),
			Title:         resp.Title,
		}
	}

	if err := s.feedbacks.Insert(ctx, &feedback); err != nil {
		return fmt.Errorf("failed to store feedback: %w", err)
	}

	logger.InfoWithFields("feedback stored", logger.Fields{
		"feedback_id": feedback.ID.Hex(),
		"survey_id":   feedback.SurveyID,
		"responses":   len(feedback.Responses),
	})

	if s.publisher != nil {
		analyzed := events.FeedbackAnalyzedEvent{
			BaseEvent:  events.NewBase(events.FeedbackAnalyzed, "ingester"),
			FeedbackID: feedback.ID.Hex(),
			SurveyID:   feedback.SurveyID,
		}
		if err := s.publisher.PublishEvent(ctx, s.topic, analyzed); err != nil {
			logger.WarnWithFields("failed to publish feedback.analyzed", logger.Fields{
				"error":       err.Error(),
				"feedback_id": feedback.ID.Hex(),
			})
		}
	}
	return nil
}
