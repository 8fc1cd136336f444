package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Survey is the minimal survey document this service reads.
// Survey CRUD lives in another service; we only need existence checks
// and the title for report headers.
// Collection: surveys
type Survey struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SurveyID   string             `bson:"survey_id" json:"survey_id"`
	CustomerID string             `bson:"customer_id,omitempty" json:"customer_id,omitempty"`
	Title      string             `bson:"title" json:"title"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}
