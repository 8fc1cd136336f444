package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Survey component types as stored on each response.
const (
	ComponentStar1To5   = "1to5stars"
	ComponentFace1To5   = "1to5faces"
	ComponentScale1To10 = "1to10"
	ComponentTextbox    = "textbox"
	ComponentText       = "text"
	ComponentInput      = "input"
)

// Response is a single answer inside a feedback submission.
// Value is always stored as a string; numeric ratings are stringified.
type Response struct {
	ComponentType string `bson:"component_type" json:"componentType"`
	Value         string `bson:"value" json:"value"`
	Title         string `bson:"title,omitempty" json:"title,omitempty"`
}

// Feedback represents one respondent's full submission to a survey.
// Collection: feedbacks
type Feedback struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	SurveyID   string              `bson:"survey_id" json:"survey_id"`
	CustomerID string              `bson:"customer_id,omitempty" json:"customer_id,omitempty"`
	CreatedAt  time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time           `bson:"updated_at" json:"updated_at"`
	Responses  map[string]Response `bson:"responses" json:"responses"`
}

// IsRatingComponent reports whether the component type carries a rating value.
func IsRatingComponent(componentType string) bool {
	switch componentType {
	case ComponentStar1To5, ComponentFace1To5, ComponentScale1To10:
		return true
	}
	return false
}

// IsTextComponent reports whether the component type carries free text.
func IsTextComponent(componentType string) bool {
	switch componentType {
	case ComponentTextbox, ComponentText, ComponentInput:
		return true
	}
	return false
}
