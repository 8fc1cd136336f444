package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"feedback-analyzer/models"
)

type FeedbackRepository struct {
	col *mongo.Collection
}

func NewFeedbackRepository(db *mongo.Database) *FeedbackRepository {
	return &FeedbackRepository{col: db.Collection("feedbacks")}
}

// Insert persists a new feedback submission.
func (r *FeedbackRepository) Insert(ctx context.Context, f *models.Feedback) error {
	now := time.Now()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	f.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, f)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		f.ID = oid
	}
	return nil
}

// FindBySurveyID returns up to limit feedbacks for a survey, most
// recent first.
func (r *FeedbackRepository) FindBySurveyID(ctx context.Context, surveyID string, limit int64) ([]models.Feedback, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cur, err := r.col.Find(ctx, bson.M{"survey_id": surveyID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Feedback
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountBySurveyID returns the total number of feedbacks for a survey.
func (r *FeedbackRepository) CountBySurveyID(ctx context.Context, surveyID string) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"survey_id": surveyID})
}
