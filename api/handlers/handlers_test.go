package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"feedback-analyzer/api/handlers"
	"feedback-analyzer/dto"
	"feedback-analyzer/events"
	"feedback-analyzer/models"
	"feedback-analyzer/sentiment"
	"feedback-analyzer/services"
)

type stubSurveys struct{ known bool }

func (s stubSurveys) GetBySurveyID(context.Context, string) (*models.Survey, error) {
	if !s.known {
		return nil, mongo.ErrNoDocuments
	}
	return &models.Survey{SurveyID: "s1"}, nil
}

type stubFeedbacks struct{ items []models.Feedback }

func (s stubFeedbacks) FindBySurveyID(context.Context, string, int64) ([]models.Feedback, error) {
	return s.items, nil
}

type positiveScorer struct{}

func (positiveScorer) Classify(context.Context, string) (sentiment.Result, error) {
	return sentiment.Result{Label: sentiment.LabelPositive, Score: 0.9}, nil
}

type captureProducer struct {
	topic string
	event interface{}
}

func (p *captureProducer) PublishEvent(_ context.Context, topic string, event interface{}) error {
	p.topic = topic
	p.event = event
	return nil
}

func (p *captureProducer) Close() error { return nil }

func newTestRouter(svc *services.FeedbackService, producer *captureProducer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/surveys/:surveyId/summary", handlers.GetSummaryHandler(svc))
	r.POST("/surveys/:surveyId/feedbacks", handlers.SubmitFeedbackHandler(producer))
	return r
}

func TestGetSummaryHandlerReturns404ForUnknownSurvey(t *testing.T) {
	svc := services.NewFeedbackService(stubSurveys{}, stubFeedbacks{}, positiveScorer{}, nil, 100)
	r := newTestRouter(svc, &captureProducer{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/surveys/missing/summary", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no feedbacks found")
}

func TestGetSummaryHandlerReturnsSummary(t *testing.T) {
	feedbacks := stubFeedbacks{items: []models.Feedback{{
		ID:        primitive.NewObjectID(),
		SurveyID:  "s1",
		CreatedAt: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		Responses: map[string]models.Response{
			"q1": {ComponentType: models.ComponentStar1To5, Value: "5"},
		},
	}}}
	svc := services.NewFeedbackService(stubSurveys{known: true}, feedbacks, positiveScorer{}, nil, 100)
	r := newTestRouter(svc, &captureProducer{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/surveys/s1/summary", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var summary dto.FeedbackSummary
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Equal(t, 1, summary.Statistics.TotalFeedbacks)
	assert.Equal(t, 1, summary.Statistics.RatingStats.Distribution["5"])
}

func TestSubmitFeedbackHandlerPublishesEvent(t *testing.T) {
	producer := &captureProducer{}
	svc := services.NewFeedbackService(stubSurveys{known: true}, stubFeedbacks{}, positiveScorer{}, nil, 100)
	r := newTestRouter(svc, producer)

	body := `{"customerId":"c1","responses":{"q1":{"componentType":"textbox","value":["too slow","on mobile"]}}}`
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/surveys/s1/feedbacks", strings.NewReader(body)))

	require.Equal(t, http.StatusAccepted, w.Code)

	created, ok := producer.event.(events.FeedbackCreatedEvent)
	require.True(t, ok)
	assert.Equal(t, "s1", created.SurveyID)
	assert.Equal(t, "c1", created.CustomerID)
	assert.Equal(t, events.FlexString("too slow on mobile"), created.Responses["q1"].Value)
}

func TestSubmitFeedbackHandlerRejectsEmptyResponses(t *testing.T) {
	r := newTestRouter(
		services.NewFeedbackService(stubSurveys{known: true}, stubFeedbacks{}, positiveScorer{}, nil, 100),
		&captureProducer{},
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/surveys/s1/feedbacks", strings.NewReader(`{"responses":{}}`)))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
