package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"feedback-analyzer/models"
)

type SurveyRepository struct {
	col *mongo.Collection
}

func NewSurveyRepository(db *mongo.Database) *SurveyRepository {
	return &SurveyRepository{col: db.Collection("surveys")}
}

// GetBySurveyID returns a survey by its external id. Returns
// mongo.ErrNoDocuments when the survey does not exist.
func (r *SurveyRepository) GetBySurveyID(ctx context.Context, surveyID string) (*models.Survey, error) {
	var s models.Survey
	if err := r.col.FindOne(ctx, bson.M{"survey_id": surveyID}).Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
