package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"feedback-analyzer/events"
	"feedback-analyzer/kafka"
	"feedback-analyzer/sentiment"
	"feedback-analyzer/services"
)

// GetSummaryHandler godoc
// @Summary      Get feedback summary
// @Description  Aggregated sentiment, ratings and trend analysis for a survey
// @Tags         feedbacks
// @Param        surveyId  path  string  true  "Survey id"
// @Produce      json
// @Success      200  {object}  dto.FeedbackSummary
// @Failure      404  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /surveys/{surveyId}/summary [get]
func GetSummaryHandler(svc *services.FeedbackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		surveyID := c.Param("surveyId")

		summary, err := svc.GetSummary(c.Request.Context(), surveyID)
		if err != nil {
			writeAnalysisError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// GetTrendingRemarksHandler godoc
// @Summary      Get trending remarks
// @Description  Most frequent deduplicated text answers for a survey
// @Tags         feedbacks
// @Param        surveyId  path  string  true  "Survey id"
// @Produce      json
// @Success      200  {array}  dto.TrendingRemark
// @Failure      404  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /surveys/{surveyId}/trending [get]
func GetTrendingRemarksHandler(svc *services.FeedbackService) gin.HandlerFunc {
	return func(c *gin.Context) {
		surveyID := c.Param("surveyId")

		remarks, err := svc.GetTrendingRemarks(c.Request.Context(), surveyID)
		if err != nil {
			writeAnalysisError(c, err)
			return
		}
		c.JSON(http.StatusOK, remarks)
	}
}

// SubmitFeedbackRequest is the accepted body for feedback submission.
type SubmitFeedbackRequest struct {
	CustomerID string                              `json:"customerId"`
	Responses  map[string]events.SubmittedResponse `json:"responses" binding:"required"`
}

// SubmitFeedbackHandler godoc
// @Summary      Submit feedback
// @Description  Publish a feedback submission for asynchronous ingestion
// @Tags         feedbacks
// @Param        surveyId  path  string  true  "Survey id"
// @Param        body      body  SubmitFeedbackRequest  true  "Feedback responses"
// @Accept       json
// @Produce      json
// @Success      202  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /surveys/{surveyId}/feedbacks [post]
func SubmitFeedbackHandler(producer kafka.Producer) gin.HandlerFunc {
	return func(c *gin.Context) {
		surveyID := c.Param("surveyId")

		var req SubmitFeedbackRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if len(req.Responses) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "responses must not be empty"})
			return
		}

		event := events.FeedbackCreatedEvent{
			BaseEvent:  events.NewBase(events.FeedbackCreated, "api"),
			SurveyID:   surveyID,
			CustomerID: req.CustomerID,
			Responses:  req.Responses,
		}

		if err := producer.PublishEvent(c.Request.Context(), kafka.TopicFeedbackEvents, event); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"eventId": event.ID})
	}
}

func writeAnalysisError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNoFeedbacks):
		c.JSON(http.StatusNotFound, gin.H{"error": services.ErrNoFeedbacks.Error()})
	case errors.Is(err, sentiment.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "sentiment analysis unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
