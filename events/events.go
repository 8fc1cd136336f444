package events

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	FeedbackCreated  EventType = "feedback.created"
	FeedbackAnalyzed EventType = "feedback.analyzed"
)

// BaseEvent is the common envelope for all events.
type BaseEvent struct {
	ID        string    `json:"id"`
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
	Version   string    `json:"version"`
}

// NewBase builds the envelope with a fresh event id.
func NewBase(eventType EventType, source string) BaseEvent {
	return BaseEvent{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Source:    source,
		Version:   "1.0",
	}
}

// FlexString accepts either a JSON string or an array of strings;
// arrays are joined with single spaces. Survey widgets with multi-select
// submit arrays while everything else submits plain strings.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*f = FlexString(strings.Join(list, " "))
		return nil
	}
	return fmt.Errorf("value must be a string or an array of strings")
}

// SubmittedResponse is one answer inside a feedback submission event.
type SubmittedResponse struct {
	ComponentType string     `json:"componentType"`
	Value         FlexString `json:"value"`
	Title         string     `json:"title,omitempty"`
}

// FeedbackCreatedEvent announces a new feedback submission awaiting
// persistence.
type FeedbackCreatedEvent struct {
	BaseEvent
	SurveyID   string                       `json:"survey_id"`
	CustomerID string                       `json:"customer_id,omitempty"`
	Responses  map[string]SubmittedResponse `json:"responses"`
}

// FeedbackAnalyzedEvent announces that a submission was persisted and
// is visible to summary queries.
type FeedbackAnalyzedEvent struct {
	BaseEvent
	FeedbackID string `json:"feedback_id"`
	SurveyID   string `json:"survey_id"`
}

// SerializeEvent marshals an event and returns its type for the
// message header.
func SerializeEvent(event interface{}) ([]byte, EventType, error) {
	var eventType EventType

	switch e := event.(type) {
	case FeedbackCreatedEvent:
		eventType = e.Type
	case FeedbackAnalyzedEvent:
		eventType = e.Type
	default:
		return nil, "", fmt.Errorf("unknown event type: %T", event)
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal event: %w", err)
	}

	return data, eventType, nil
}

// DeserializeEvent unmarshals a payload into the struct matching its
// event type.
func DeserializeEvent(eventType EventType, data []byte) (interface{}, error) {
	var event interface{}

	switch eventType {
	case FeedbackCreated:
		event = &FeedbackCreatedEvent{}
	case FeedbackAnalyzed:
		event = &FeedbackAnalyzedEvent{}
	default:
		return nil, fmt.Errorf("unknown event type: %s", eventType)
	}

	if err := json.Unmarshal(data, event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return event, nil
}
